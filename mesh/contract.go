// SPDX-License-Identifier: MIT

package mesh

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/katalvlaran/propslim/quadric"
)

// checkPair validates a contraction request for (v1, v2).
func (m *Model) checkPair(v1, v2 int) error {
	if !m.inRange(v1) || !m.inRange(v2) {
		return ErrIndexOutOfRange
	}
	if v1 == v2 {
		return ErrSameVertex
	}
	if !m.verts[v1].Valid() || !m.verts[v2].Valid() {
		return ErrStaleVertex
	}
	if m.verts[v1].Protected() || m.verts[v2].Protected() {
		return ErrProtectedVertex
	}

	return nil
}

// ComputeContraction describes merging v2 into v1 without mutating the model.
//
// Errors:
//   - ErrIndexOutOfRange, ErrSameVertex.
//   - ErrStaleVertex when either endpoint was already merged away.
//   - ErrProtectedVertex when either endpoint is pinned.
//
// Complexity:
//   - Time O(deg(v2)), Space O(deg(v2)).
func (m *Model) ComputeContraction(v1, v2 int) (Contraction, error) {
	if err := m.checkPair(v1, v2); err != nil {
		return Contraction{}, fmt.Errorf("ComputeContraction(%d,%d): %w", v1, v2, err)
	}
	c := Contraction{V1: v1, V2: v2}
	for _, f := range m.neighbors[v2] {
		if m.faces[f].Has(v1) {
			c.DeadFaces = append(c.DeadFaces, f)
		} else {
			c.DeltaFaces = append(c.DeltaFaces, f)
		}
	}

	return c, nil
}

// ApplyContraction merges c.V2 into c.V1 and moves V1 to target. The texture
// coordinate of V1 is taken from target only when dim is Dim5.
//
// Implementation:
//  1. Re-validate the pair (the contraction may be stale).
//  2. Kill dead faces and unlink them from their corners.
//  3. Rewrite delta faces V2 → V1 and register them on V1.
//  4. Kill any face pair that became an exact duplicate (a zero-volume fin).
//  5. Tombstone V2.
//
// It returns the faces invalidated by this contraction, in kill order.
//
// Errors:
//   - same as ComputeContraction; the model is left untouched on error.
func (m *Model) ApplyContraction(c Contraction, target quadric.Point, dim quadric.Dim) ([]int, error) {
	v1, v2 := c.V1, c.V2

	// 1) Guard against stale or forbidden requests before mutating anything.
	if err := m.checkPair(v1, v2); err != nil {
		return nil, fmt.Errorf("ApplyContraction(%d,%d): %w", v1, v2, err)
	}

	m.verts[v1].Pos = target.Vec3()
	if dim == quadric.Dim5 {
		m.verts[v1].Tex = target.UV()
	}

	// 2) Dead faces degenerate into segments.
	killed := make([]int, 0, len(c.DeadFaces)+2)
	for _, f := range c.DeadFaces {
		if m.faces[f].Valid() {
			m.killFace(f)
			killed = append(killed, f)
		}
	}

	// 3) Surviving faces of v2 now hang off v1.
	for _, f := range c.DeltaFaces {
		if !m.faces[f].Valid() {
			continue
		}
		for i := range m.faces[f].V {
			if m.faces[f].V[i] == v2 {
				m.faces[f].V[i] = v1
			}
		}
		m.neighbors[v1] = append(m.neighbors[v1], f)
	}

	// 4) Rewriting can produce two faces over the same corner set.
	for _, f := range c.DeltaFaces {
		if !m.faces[f].Valid() {
			continue
		}
		if dup := m.findDuplicate(f); dup >= 0 {
			m.killFace(f)
			m.killFace(dup)
			killed = append(killed, f, dup)
		}
	}

	// 5) v2 is gone for good.
	m.neighbors[v2] = nil
	m.verts[v2].flags &^= flagValid
	m.liveVerts--

	return killed, nil
}

// killFace tombstones f and unlinks it from its corners.
func (m *Model) killFace(f int) {
	m.faces[f].flags &^= flagValid
	for _, v := range m.faces[f].V {
		m.neighbors[v] = removeValue(m.neighbors[v], f)
	}
	m.liveFaces--
}

// findDuplicate returns another valid face with the same corner set as f, or -1.
func (m *Model) findDuplicate(f int) int {
	v := m.faces[f].V
	for _, g := range m.neighbors[v[0]] {
		if g == f {
			continue
		}
		if m.faces[g].Has(v[1]) && m.faces[g].Has(v[2]) {
			return g
		}
	}

	return -1
}

// LinkConditionHolds reports whether merging a and b keeps the surface a
// 2-manifold: the vertices adjacent to both must be exactly the apexes of the
// faces bordering edge (a, b).
func (m *Model) LinkConditionHolds(a, b int) bool {
	starB := m.VertexStar(b)
	common := 0
	for _, u := range m.VertexStar(a) {
		if u == b {
			continue
		}
		for _, w := range starB {
			if w == u {
				common++
				break
			}
		}
	}

	var apexes []int
	for _, f := range m.EdgeFaces(a, b) {
		apexes = appendUnique(apexes, m.faces[f].Opposite(a, b))
	}

	return common == len(apexes)
}

// FlipCount returns how many surviving faces around the contraction would
// turn their normal by more than 90 degrees if V1 and V2 were moved to pos.
// Degenerate faces (before or after) are not counted.
func (m *Model) FlipCount(c Contraction, pos mgl64.Vec3) int {
	flips := 0
	check := func(f, moved int) {
		corners := m.FaceCorners(f)
		before := triangleNormal(corners[0], corners[1], corners[2])
		for i, v := range m.faces[f].V {
			if v == moved {
				corners[i] = pos
			}
		}
		after := triangleNormal(corners[0], corners[1], corners[2])
		if before.Dot(after) < 0 {
			flips++
		}
	}
	for _, f := range c.DeltaFaces {
		check(f, c.V2)
	}
	for _, f := range m.neighbors[c.V1] {
		if !m.faces[f].Has(c.V2) {
			check(f, c.V1)
		}
	}

	return flips
}
