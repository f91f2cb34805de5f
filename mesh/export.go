// SPDX-License-Identifier: MIT

package mesh

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// Compacted is a dense copy of the live part of a Model.
type Compacted struct {
	Positions []mgl64.Vec3
	TexCoords [][2]float64 // nil when the model carries no texcoords
	Faces     [][3]int
	Tags      []int // per-face tag, parallel to Faces
	VertexMap []int // VertexMap[old] = new index, or -1 for merged vertices
}

// Compact renumbers the live vertices in arena order and keeps the live faces.
//
// Complexity:
//   - Time O(V + F), Space O(V + F).
func (m *Model) Compact() *Compacted {
	out := &Compacted{
		Positions: make([]mgl64.Vec3, 0, m.liveVerts),
		Faces:     make([][3]int, 0, m.liveFaces),
		Tags:      make([]int, 0, m.liveFaces),
		VertexMap: make([]int, len(m.verts)),
	}
	tex := m.HasTexCoords()
	if tex {
		out.TexCoords = make([][2]float64, 0, m.liveVerts)
	}

	for v := range m.verts {
		if !m.verts[v].Valid() {
			out.VertexMap[v] = -1
			continue
		}
		out.VertexMap[v] = len(out.Positions)
		out.Positions = append(out.Positions, m.verts[v].Pos)
		if tex {
			out.TexCoords = append(out.TexCoords, m.verts[v].Tex)
		}
	}
	for f := range m.faces {
		if !m.faces[f].Valid() {
			continue
		}
		v := m.faces[f].V
		out.Faces = append(out.Faces, [3]int{out.VertexMap[v[0]], out.VertexMap[v[1]], out.VertexMap[v[2]]})
		out.Tags = append(out.Tags, m.faces[f].Tag)
	}

	return out
}

// Polygon is an exported face with three or four corners.
type Polygon struct {
	V   []int
	Tag int
}

// MergeQuads fuses pairs of adjacent triangles of c into quadrilaterals when
// they share a tag, their normals differ by at most maxAngle radians, they
// agree on orientation and the resulting quad is strictly convex. Triangles
// that find no partner are emitted unchanged. Pairing is greedy in face order.
//
// Complexity:
//   - Time O(F), Space O(F).
func MergeQuads(c *Compacted, maxAngle float64) []Polygon {
	n := len(c.Faces)
	normals := make([]mgl64.Vec3, n)
	edges := make(map[[2]int][]int, 3*n/2)
	for f, tri := range c.Faces {
		normals[f] = triangleNormal(c.Positions[tri[0]], c.Positions[tri[1]], c.Positions[tri[2]])
		for i := 0; i < 3; i++ {
			k := edgeKey(tri[i], tri[(i+1)%3])
			edges[k] = append(edges[k], f)
		}
	}
	cosLimit := math.Cos(maxAngle)

	used := make([]bool, n)
	out := make([]Polygon, 0, n)
	for f, tri := range c.Faces {
		if used[f] {
			continue
		}
		used[f] = true
		quad := []int(nil)
		for i := 0; i < 3 && quad == nil; i++ {
			a, b, apex := tri[i], tri[(i+1)%3], tri[(i+2)%3]
			shared := edges[edgeKey(a, b)]
			if len(shared) != 2 {
				continue
			}
			g := shared[0]
			if g == f {
				g = shared[1]
			}
			if used[g] || c.Tags[g] != c.Tags[f] {
				continue
			}
			if normals[f].Dot(normals[g]) < cosLimit || normals[f] == (mgl64.Vec3{}) {
				continue
			}
			d, ok := opposedApex(c.Faces[g], a, b)
			if !ok {
				continue
			}
			cand := []int{a, d, b, apex}
			if convexQuad(c.Positions, cand, normals[f]) {
				quad = cand
				used[g] = true
			}
		}
		if quad != nil {
			out = append(out, Polygon{V: quad, Tag: c.Tags[f]})
		} else {
			out = append(out, Polygon{V: []int{tri[0], tri[1], tri[2]}, Tag: c.Tags[f]})
		}
	}

	return out
}

// opposedApex returns the third corner of g when g traverses edge b→a, i.e.
// it is consistently oriented with a face traversing a→b.
func opposedApex(g [3]int, a, b int) (int, bool) {
	for i := 0; i < 3; i++ {
		if g[i] == b && g[(i+1)%3] == a {
			return g[(i+2)%3], true
		}
	}

	return -1, false
}

// convexQuad reports whether the loop q turns the same way as normal at every corner.
func convexQuad(pos []mgl64.Vec3, q []int, normal mgl64.Vec3) bool {
	for i := range q {
		p0 := pos[q[i]]
		p1 := pos[q[(i+1)%len(q)]]
		p2 := pos[q[(i+2)%len(q)]]
		if p1.Sub(p0).Cross(p2.Sub(p1)).Dot(normal) <= 0 {
			return false
		}
	}

	return true
}
