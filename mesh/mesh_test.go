// SPDX-License-Identifier: MIT

package mesh_test

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/propslim/mesh"
	"github.com/katalvlaran/propslim/quadric"
)

// octahedron returns the unit octahedron: 0:+x 1:-x 2:+y 3:-y 4:+z 5:-z.
func octahedron(t *testing.T) *mesh.Model {
	t.Helper()
	pos := []mgl64.Vec3{{1, 0, 0}, {-1, 0, 0}, {0, 1, 0}, {0, -1, 0}, {0, 0, 1}, {0, 0, -1}}
	faces := [][3]int{
		{0, 2, 4}, {2, 1, 4}, {1, 3, 4}, {3, 0, 4},
		{2, 0, 5}, {1, 2, 5}, {3, 1, 5}, {0, 3, 5},
	}
	m, err := mesh.FromArrays(pos, nil, faces, nil)
	require.NoError(t, err)

	return m
}

// quadFan returns a flat 2×2 square split into four triangles around a centre.
func quadFan(t *testing.T) *mesh.Model {
	t.Helper()
	pos := []mgl64.Vec3{{-1, -1, 0}, {1, -1, 0}, {1, 1, 0}, {-1, 1, 0}, {0, 0, 0}}
	faces := [][3]int{{0, 1, 4}, {1, 2, 4}, {2, 3, 4}, {3, 0, 4}}
	m, err := mesh.FromArrays(pos, nil, faces, nil)
	require.NoError(t, err)

	return m
}

func TestFromArraysValidation(t *testing.T) {
	pos := []mgl64.Vec3{{0, 0, 0}, {1, 0, 0}, {0, 1, 0}}

	_, err := mesh.FromArrays(pos, make([][2]float64, 2), [][3]int{{0, 1, 2}}, nil)
	require.ErrorIs(t, err, mesh.ErrLengthMismatch)

	_, err = mesh.FromArrays(pos, nil, [][3]int{{0, 1, 2}}, []int{1, 2})
	require.ErrorIs(t, err, mesh.ErrLengthMismatch)

	_, err = mesh.FromArrays(pos, nil, [][3]int{{0, 1, 3}}, nil)
	require.ErrorIs(t, err, mesh.ErrIndexOutOfRange)

	_, err = mesh.FromArrays(pos, nil, [][3]int{{0, -1, 2}}, nil)
	require.ErrorIs(t, err, mesh.ErrIndexOutOfRange)

	_, err = mesh.FromArrays(pos, nil, [][3]int{{0, 1, 1}}, nil)
	require.ErrorIs(t, err, mesh.ErrDegenerateFace)

	m, err := mesh.FromArrays(pos, [][2]float64{{0, 0}, {1, 0}, {0, 1}}, [][3]int{{0, 1, 2}}, []int{7})
	require.NoError(t, err)
	require.True(t, m.HasTexCoords())
	require.Equal(t, 7, m.Face(0).Tag)
	require.Equal(t, [2]float64{1, 0}, m.TexCoord(1))
}

func TestHasTexCoordsRequiresEveryVertex(t *testing.T) {
	m := mesh.New()
	require.False(t, m.HasTexCoords())
	m.AddTexVertex(mgl64.Vec3{}, [2]float64{0.5, 0.5})
	require.True(t, m.HasTexCoords())
	m.AddVertex(mgl64.Vec3{1, 0, 0})
	require.False(t, m.HasTexCoords())
}

func TestOctahedronQueries(t *testing.T) {
	m := octahedron(t)

	require.Equal(t, 6, m.ValidVertexCount())
	require.Equal(t, 8, m.ValidFaceCount())
	require.True(t, m.IsClosedManifold())
	require.Equal(t, []int{0, 1, 2, 3}, m.VertexStar(4))
	require.Len(t, m.Neighbors(4), 4)
	require.ElementsMatch(t, []int{0, 3}, m.EdgeFaces(0, 4))
	require.False(t, m.IsBoundaryEdge(0, 4))
	require.Empty(t, m.EdgeFaces(4, 5))

	// Outward orientation: every face normal points away from the origin.
	for f := 0; f < m.FaceCount(); f++ {
		c := m.FaceCorners(f)
		centroid := c[0].Add(c[1]).Add(c[2]).Mul(1.0 / 3)
		require.Positive(t, m.FaceNormal(f).Dot(centroid), "face %d", f)
		require.InDelta(t, math.Sqrt(3)/2, m.FaceArea(f), 1e-12)
	}

	pts := m.FacePoints(0, quadric.Dim3)
	require.Equal(t, m.VertexPoint(0, quadric.Dim3), pts[0])
	require.Equal(t, 1.0, pts[0][0])
}

func TestQuadFanBoundary(t *testing.T) {
	m := quadFan(t)

	require.False(t, m.IsClosedManifold())
	require.True(t, m.IsBoundaryEdge(0, 1))
	require.True(t, m.IsBoundaryEdge(3, 0))
	require.False(t, m.IsBoundaryEdge(0, 4))

	counts := m.EdgeFaceCounts()
	require.Len(t, counts, 8)
	require.Equal(t, 1, counts[[2]int{0, 1}])
	require.Equal(t, 2, counts[[2]int{1, 4}])
}

func TestDegenerateFaceNormalIsZero(t *testing.T) {
	m, err := mesh.FromArrays([]mgl64.Vec3{{0, 0, 0}, {1, 0, 0}, {2, 0, 0}}, nil, [][3]int{{0, 1, 2}}, nil)
	require.NoError(t, err)
	require.Equal(t, mgl64.Vec3{}, m.FaceNormal(0))
	require.Zero(t, m.FaceArea(0))
}

func TestContractionSplitsDeadAndDelta(t *testing.T) {
	m := octahedron(t)

	c, err := m.ComputeContraction(0, 4)
	require.NoError(t, err)
	require.Equal(t, 0, c.V1)
	require.Equal(t, 4, c.V2)
	require.ElementsMatch(t, []int{0, 3}, c.DeadFaces)
	require.ElementsMatch(t, []int{1, 2}, c.DeltaFaces)

	// Computing does not mutate.
	require.Equal(t, 8, m.ValidFaceCount())
	require.True(t, m.VertexIsValid(4))

	require.True(t, m.LinkConditionHolds(0, 4))
	killed, err := m.ApplyContraction(c, m.VertexPoint(0, quadric.Dim3), quadric.Dim3)
	require.NoError(t, err)
	require.ElementsMatch(t, []int{0, 3}, killed)

	require.Equal(t, 5, m.ValidVertexCount())
	require.Equal(t, 6, m.ValidFaceCount())
	require.False(t, m.VertexIsValid(4))
	require.False(t, m.FaceIsValid(0))
	require.Empty(t, m.Neighbors(4))
	require.Equal(t, [3]int{2, 1, 0}, m.Face(1).V)
	require.Equal(t, [3]int{1, 3, 0}, m.Face(2).V)
	require.True(t, m.IsClosedManifold())

	for _, f := range m.Neighbors(0) {
		require.True(t, m.FaceIsValid(f))
		require.True(t, m.Face(f).Has(0))
	}
}

func TestContractionGuards(t *testing.T) {
	m := octahedron(t)

	_, err := m.ComputeContraction(0, 0)
	require.ErrorIs(t, err, mesh.ErrSameVertex)

	_, err = m.ComputeContraction(0, 6)
	require.ErrorIs(t, err, mesh.ErrIndexOutOfRange)

	require.NoError(t, m.Protect(2))
	require.True(t, m.IsProtected(2))
	_, err = m.ComputeContraction(2, 5)
	require.ErrorIs(t, err, mesh.ErrProtectedVertex)
	_, err = m.ComputeContraction(5, 2)
	require.ErrorIs(t, err, mesh.ErrProtectedVertex)
	require.NoError(t, m.Unprotect(2))
	require.False(t, m.IsProtected(2))
	require.ErrorIs(t, m.Protect(-1), mesh.ErrIndexOutOfRange)

	c, err := m.ComputeContraction(0, 4)
	require.NoError(t, err)
	_, err = m.ApplyContraction(c, m.VertexPoint(0, quadric.Dim3), quadric.Dim3)
	require.NoError(t, err)

	// Replaying a stale contraction leaves the model untouched.
	_, err = m.ApplyContraction(c, m.VertexPoint(0, quadric.Dim3), quadric.Dim3)
	require.ErrorIs(t, err, mesh.ErrStaleVertex)
	_, err = m.ComputeContraction(4, 2)
	require.ErrorIs(t, err, mesh.ErrStaleVertex)
	require.Equal(t, 6, m.ValidFaceCount())
	require.Equal(t, 5, m.ValidVertexCount())
}

func TestLinkConditionAndFinRemoval(t *testing.T) {
	m := octahedron(t)
	c, err := m.ComputeContraction(0, 4)
	require.NoError(t, err)
	_, err = m.ApplyContraction(c, m.VertexPoint(0, quadric.Dim3), quadric.Dim3)
	require.NoError(t, err)

	// 0 and 1 now share the three neighbours 2, 3 and 5 but only two faces.
	require.False(t, m.LinkConditionHolds(0, 1))
	require.True(t, m.LinkConditionHolds(0, 2))

	c, err = m.ComputeContraction(0, 1)
	require.NoError(t, err)
	killed, err := m.ApplyContraction(c, m.VertexPoint(0, quadric.Dim3), quadric.Dim3)
	require.NoError(t, err)

	// The two rewritten faces duplicate two existing ones and are removed as fins.
	require.ElementsMatch(t, []int{1, 2, 4, 5, 6, 7}, killed)
	require.Zero(t, m.ValidFaceCount())
	require.Equal(t, 4, m.ValidVertexCount())
	for v := 0; v < m.VertexCount(); v++ {
		require.Empty(t, m.Neighbors(v), "vertex %d", v)
	}
}

func TestApplyContractionTexCoords(t *testing.T) {
	pos := []mgl64.Vec3{{0, 0, 0}, {1, 0, 0}, {0, 1, 0}, {1, 1, 0}}
	uv := [][2]float64{{0, 0}, {1, 0}, {0, 1}, {1, 1}}
	faces := [][3]int{{0, 1, 2}, {1, 3, 2}}

	for _, dim := range []quadric.Dim{quadric.Dim3, quadric.Dim5} {
		m, err := mesh.FromArrays(pos, uv, faces, nil)
		require.NoError(t, err)
		c, err := m.ComputeContraction(1, 3)
		require.NoError(t, err)
		target := quadric.PointFrom(quadric.Dim5, mgl64.Vec3{1, 0.5, 0}, [2]float64{1, 0.5})
		_, err = m.ApplyContraction(c, target, dim)
		require.NoError(t, err)

		require.Equal(t, mgl64.Vec3{1, 0.5, 0}, m.Position(1))
		if dim == quadric.Dim5 {
			require.Equal(t, [2]float64{1, 0.5}, m.TexCoord(1))
		} else {
			require.Equal(t, [2]float64{1, 0}, m.TexCoord(1))
		}
		require.Equal(t, 1, m.ValidFaceCount())
	}
}

func TestFlipCount(t *testing.T) {
	m := quadFan(t)
	c, err := m.ComputeContraction(0, 4)
	require.NoError(t, err)
	require.ElementsMatch(t, []int{0, 3}, c.DeadFaces)
	require.ElementsMatch(t, []int{1, 2}, c.DeltaFaces)

	require.Zero(t, m.FlipCount(c, mgl64.Vec3{0, 0, 0}))
	require.Zero(t, m.FlipCount(c, mgl64.Vec3{-1, -1, 0}))
	require.Equal(t, 2, m.FlipCount(c, mgl64.Vec3{3, 3, 0}))
}

func TestCompact(t *testing.T) {
	m := octahedron(t)
	c, err := m.ComputeContraction(0, 4)
	require.NoError(t, err)
	_, err = m.ApplyContraction(c, m.VertexPoint(0, quadric.Dim3), quadric.Dim3)
	require.NoError(t, err)

	out := m.Compact()
	require.Len(t, out.Positions, 5)
	require.Len(t, out.Faces, 6)
	require.Len(t, out.Tags, 6)
	require.Nil(t, out.TexCoords)
	require.Equal(t, []int{0, 1, 2, 3, -1, 4}, out.VertexMap)
	for _, f := range out.Faces {
		for _, v := range f {
			require.GreaterOrEqual(t, v, 0)
			require.Less(t, v, 5)
		}
	}
	require.Equal(t, [3]int{2, 1, 0}, out.Faces[0])
}

func TestCompactKeepsTexCoords(t *testing.T) {
	m, err := mesh.FromArrays(
		[]mgl64.Vec3{{0, 0, 0}, {1, 0, 0}, {0, 1, 0}},
		[][2]float64{{0, 0}, {1, 0}, {0, 1}},
		[][3]int{{0, 1, 2}}, []int{3},
	)
	require.NoError(t, err)

	out := m.Compact()
	require.Equal(t, [][2]float64{{0, 0}, {1, 0}, {0, 1}}, out.TexCoords)
	require.Equal(t, []int{3}, out.Tags)
}

func square(t *testing.T, apex mgl64.Vec3, tags []int) *mesh.Compacted {
	t.Helper()
	m, err := mesh.FromArrays(
		[]mgl64.Vec3{{0, 0, 0}, {1, 0, 0}, {1, 1, 0}, apex},
		nil,
		[][3]int{{0, 1, 2}, {0, 2, 3}},
		tags,
	)
	require.NoError(t, err)

	return m.Compact()
}

func TestMergeQuads(t *testing.T) {
	polys := mesh.MergeQuads(square(t, mgl64.Vec3{0, 1, 0}, nil), 1e-3)
	require.Len(t, polys, 1)
	require.Equal(t, []int{2, 3, 0, 1}, polys[0].V)

	// Different tags never merge.
	polys = mesh.MergeQuads(square(t, mgl64.Vec3{0, 1, 0}, []int{1, 2}), 1e-3)
	require.Len(t, polys, 2)
	require.Equal(t, 1, polys[0].Tag)
	require.Equal(t, 2, polys[1].Tag)

	// A fold of about 55 degrees merges only under a loose angle limit.
	folded := square(t, mgl64.Vec3{0, 1, 1}, nil)
	require.Len(t, mesh.MergeQuads(folded, 0.1), 2)
	require.Len(t, mesh.MergeQuads(folded, math.Pi/2), 1)
}

func TestMergeQuadsRejectsConcave(t *testing.T) {
	// The fourth corner pulls the loop inward at corner 0.
	c := square(t, mgl64.Vec3{-1, -0.5, 0}, nil)
	require.Len(t, mesh.MergeQuads(c, math.Pi/2), 2)
}
