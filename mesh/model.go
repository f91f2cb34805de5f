// SPDX-License-Identifier: MIT

package mesh

import (
	"fmt"
	"sort"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/katalvlaran/propslim/quadric"
)

// Model is an indexed triangle mesh with tombstoned vertices and faces.
type Model struct {
	verts     []Vertex
	faces     []Face
	neighbors [][]int // neighbors[v] = valid faces incident to v

	texCount  int // vertices added through AddTexVertex
	liveVerts int
	liveFaces int
}

// New returns an empty model.
func New() *Model { return &Model{} }

// FromArrays builds a model from parallel arrays. texcoords may be nil; when
// given it must match positions in length. tags may be nil; when given it
// must match faces in length.
//
// Errors:
//   - ErrLengthMismatch, ErrIndexOutOfRange, ErrDegenerateFace.
func FromArrays(positions []mgl64.Vec3, texcoords [][2]float64, faces [][3]int, tags []int) (*Model, error) {
	if texcoords != nil && len(texcoords) != len(positions) {
		return nil, fmt.Errorf("FromArrays: %d texcoords for %d positions: %w", len(texcoords), len(positions), ErrLengthMismatch)
	}
	if tags != nil && len(tags) != len(faces) {
		return nil, fmt.Errorf("FromArrays: %d tags for %d faces: %w", len(tags), len(faces), ErrLengthMismatch)
	}

	m := &Model{
		verts:     make([]Vertex, 0, len(positions)),
		faces:     make([]Face, 0, len(faces)),
		neighbors: make([][]int, 0, len(positions)),
	}
	for i, p := range positions {
		if texcoords != nil {
			m.AddTexVertex(p, texcoords[i])
		} else {
			m.AddVertex(p)
		}
	}
	for i, f := range faces {
		tag := 0
		if tags != nil {
			tag = tags[i]
		}
		if _, err := m.AddTaggedFace(f[0], f[1], f[2], tag); err != nil {
			return nil, fmt.Errorf("FromArrays: face %d: %w", i, err)
		}
	}

	return m, nil
}

// AddVertex appends a live vertex and returns its index.
func (m *Model) AddVertex(pos mgl64.Vec3) int {
	m.verts = append(m.verts, Vertex{Pos: pos, flags: flagValid})
	m.neighbors = append(m.neighbors, nil)
	m.liveVerts++

	return len(m.verts) - 1
}

// AddTexVertex appends a live vertex with a texture coordinate.
func (m *Model) AddTexVertex(pos mgl64.Vec3, uv [2]float64) int {
	id := m.AddVertex(pos)
	m.verts[id].Tex = uv
	m.texCount++

	return id
}

// AddFace appends a live face with tag 0.
func (m *Model) AddFace(a, b, c int) (int, error) { return m.AddTaggedFace(a, b, c, 0) }

// AddTaggedFace appends a live face carrying a material/group tag.
//
// Errors:
//   - ErrIndexOutOfRange when a corner is not a known vertex.
//   - ErrDegenerateFace when corners repeat.
func (m *Model) AddTaggedFace(a, b, c, tag int) (int, error) {
	for _, v := range [3]int{a, b, c} {
		if !m.inRange(v) {
			return -1, fmt.Errorf("AddFace(%d,%d,%d): vertex %d: %w", a, b, c, v, ErrIndexOutOfRange)
		}
	}
	if a == b || b == c || a == c {
		return -1, fmt.Errorf("AddFace(%d,%d,%d): %w", a, b, c, ErrDegenerateFace)
	}
	id := len(m.faces)
	m.faces = append(m.faces, Face{V: [3]int{a, b, c}, Tag: tag, flags: flagValid})
	m.neighbors[a] = append(m.neighbors[a], id)
	m.neighbors[b] = append(m.neighbors[b], id)
	m.neighbors[c] = append(m.neighbors[c], id)
	m.liveFaces++

	return id, nil
}

func (m *Model) inRange(v int) bool { return v >= 0 && v < len(m.verts) }

// VertexCount returns the arena size, live or not.
func (m *Model) VertexCount() int { return len(m.verts) }

// FaceCount returns the arena size, live or not.
func (m *Model) FaceCount() int { return len(m.faces) }

// ValidVertexCount returns the number of live vertices.
func (m *Model) ValidVertexCount() int { return m.liveVerts }

// ValidFaceCount returns the number of live faces.
func (m *Model) ValidFaceCount() int { return m.liveFaces }

// HasTexCoords reports whether every vertex carries a texture coordinate.
func (m *Model) HasTexCoords() bool { return len(m.verts) > 0 && m.texCount == len(m.verts) }

// Vertex returns a copy of vertex v. v must be in range.
func (m *Model) Vertex(v int) Vertex { return m.verts[v] }

// Face returns a copy of face f. f must be in range.
func (m *Model) Face(f int) Face { return m.faces[f] }

// VertexIsValid reports whether v is in range and live.
func (m *Model) VertexIsValid(v int) bool { return m.inRange(v) && m.verts[v].Valid() }

// FaceIsValid reports whether f is in range and live.
func (m *Model) FaceIsValid(f int) bool { return f >= 0 && f < len(m.faces) && m.faces[f].Valid() }

// Protect pins v so it is never contracted.
func (m *Model) Protect(v int) error {
	if !m.inRange(v) {
		return fmt.Errorf("Protect(%d): %w", v, ErrIndexOutOfRange)
	}
	m.verts[v].flags |= flagProtected

	return nil
}

// Unprotect clears the pin on v.
func (m *Model) Unprotect(v int) error {
	if !m.inRange(v) {
		return fmt.Errorf("Unprotect(%d): %w", v, ErrIndexOutOfRange)
	}
	m.verts[v].flags &^= flagProtected

	return nil
}

// IsProtected reports whether v is pinned.
func (m *Model) IsProtected(v int) bool { return m.inRange(v) && m.verts[v].Protected() }

// Position returns the position of v.
func (m *Model) Position(v int) mgl64.Vec3 { return m.verts[v].Pos }

// TexCoord returns the texture coordinate of v.
func (m *Model) TexCoord(v int) [2]float64 { return m.verts[v].Tex }

// VertexPoint packs v into a quadric-space point of the given dimension.
func (m *Model) VertexPoint(v int, dim quadric.Dim) quadric.Point {
	return quadric.PointFrom(dim, m.verts[v].Pos, m.verts[v].Tex)
}

// Neighbors returns the valid faces incident to v. The slice is owned by the
// model and must not be modified; it is invalidated by the next contraction.
func (m *Model) Neighbors(v int) []int { return m.neighbors[v] }

// VertexStar returns the distinct vertices sharing a valid face with v, in
// ascending order.
func (m *Model) VertexStar(v int) []int {
	var star []int
	for _, f := range m.neighbors[v] {
		for _, u := range m.faces[f].V {
			if u != v {
				star = appendUnique(star, u)
			}
		}
	}
	sort.Ints(star)

	return star
}

// EdgeFaces returns the valid faces containing both a and b.
func (m *Model) EdgeFaces(a, b int) []int {
	var out []int
	for _, f := range m.neighbors[a] {
		if m.faces[f].Has(b) {
			out = append(out, f)
		}
	}

	return out
}

// IsBoundaryEdge reports whether exactly one valid face borders (a, b).
func (m *Model) IsBoundaryEdge(a, b int) bool { return len(m.EdgeFaces(a, b)) == 1 }

// FaceCorners returns the corner positions of f.
func (m *Model) FaceCorners(f int) [3]mgl64.Vec3 {
	v := m.faces[f].V

	return [3]mgl64.Vec3{m.verts[v[0]].Pos, m.verts[v[1]].Pos, m.verts[v[2]].Pos}
}

// FaceNormal returns the unit normal of f, or the zero vector when f is degenerate.
func (m *Model) FaceNormal(f int) mgl64.Vec3 {
	p := m.FaceCorners(f)

	return triangleNormal(p[0], p[1], p[2])
}

// FaceArea returns the area of f.
func (m *Model) FaceArea(f int) float64 {
	p := m.FaceCorners(f)

	return 0.5 * p[1].Sub(p[0]).Cross(p[2].Sub(p[0])).Len()
}

// FacePoints returns the corners of f as quadric-space points.
func (m *Model) FacePoints(f int, dim quadric.Dim) [3]quadric.Point {
	v := m.faces[f].V

	return [3]quadric.Point{m.VertexPoint(v[0], dim), m.VertexPoint(v[1], dim), m.VertexPoint(v[2], dim)}
}

// EdgeFaceCounts maps every undirected edge (lo, hi) of the valid faces to the
// number of valid faces bordering it.
func (m *Model) EdgeFaceCounts() map[[2]int]int {
	counts := make(map[[2]int]int, 3*m.liveFaces/2)
	for f := range m.faces {
		if !m.faces[f].Valid() {
			continue
		}
		v := m.faces[f].V
		for i := 0; i < 3; i++ {
			counts[edgeKey(v[i], v[(i+1)%3])]++
		}
	}

	return counts
}

// IsClosedManifold reports whether every edge of the valid faces borders
// exactly two faces.
func (m *Model) IsClosedManifold() bool {
	for _, n := range m.EdgeFaceCounts() {
		if n != 2 {
			return false
		}
	}

	return true
}

func edgeKey(a, b int) [2]int {
	if a > b {
		a, b = b, a
	}

	return [2]int{a, b}
}

func triangleNormal(a, b, c mgl64.Vec3) mgl64.Vec3 {
	n := b.Sub(a).Cross(c.Sub(a))
	l := n.Len()
	if l <= quadric.DegenerateEps {
		return mgl64.Vec3{}
	}

	return n.Mul(1 / l)
}

func appendUnique(s []int, v int) []int {
	for _, x := range s {
		if x == v {
			return s
		}
	}

	return append(s, v)
}

func removeValue(s []int, v int) []int {
	for i, x := range s {
		if x == v {
			return append(s[:i], s[i+1:]...)
		}
	}

	return s
}
