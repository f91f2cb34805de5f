// SPDX-License-Identifier: MIT
// Package: propslim/builder
//
// impl_solids.go: closed convex solids centred at the origin.
//
// Contract:
//   • Canonical vertices are emitted in ascending index order through cfg.place.
//   • Every face is oriented counter-clockwise seen from outside
//     (normal · centroid > 0 in canonical space).
//   • With cfg.uv, texture coordinates are the spherical projection of the
//     canonical position.
//
// Complexity:
//   • Time: O(V+F) for fixed solids; O(20·4^n) for Icosphere(n).

package builder

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/katalvlaran/propslim/mesh"
)

const (
	methodTetrahedron = "Tetrahedron"
	methodOctahedron  = "Octahedron"
	methodCube        = "Cube"
	methodIcosahedron = "Icosahedron"
	methodIcosphere   = "Icosphere"

	// MaxIcosphereSubdivisions bounds Icosphere at 20·4^7 = 327680 faces.
	MaxIcosphereSubdivisions = 7
)

// Tetrahedron returns a regular tetrahedron inscribed in the cube [-1,1]³.
// 4 vertices, 4 faces.
func Tetrahedron() Constructor {
	return func(m *mesh.Model, cfg builderConfig) error {
		pos := []mgl64.Vec3{{1, 1, 1}, {1, -1, -1}, {-1, 1, -1}, {-1, -1, 1}}
		faces := [][3]int{{0, 1, 2}, {0, 1, 3}, {0, 2, 3}, {1, 2, 3}}

		return emitSolid(m, cfg, methodTetrahedron, pos, faces)
	}
}

// Octahedron returns the regular octahedron with vertices on the unit axes,
// in the order +X, −X, +Y, −Y, +Z, −Z. 6 vertices, 8 faces.
func Octahedron() Constructor {
	return func(m *mesh.Model, cfg builderConfig) error {
		pos := []mgl64.Vec3{{1, 0, 0}, {-1, 0, 0}, {0, 1, 0}, {0, -1, 0}, {0, 0, 1}, {0, 0, -1}}
		faces := [][3]int{
			{0, 2, 4}, {2, 1, 4}, {1, 3, 4}, {3, 0, 4},
			{2, 0, 5}, {1, 2, 5}, {3, 1, 5}, {0, 3, 5},
		}

		return emitSolid(m, cfg, methodOctahedron, pos, faces)
	}
}

// Cube returns the cube [-1,1]³; vertex i has x, y, z = ±1 from bits 0, 1, 2.
// 8 vertices, 12 faces (two per side).
func Cube() Constructor {
	return func(m *mesh.Model, cfg builderConfig) error {
		pos := make([]mgl64.Vec3, 8)
		for i := range pos {
			pos[i] = mgl64.Vec3{bitSign(i, 0), bitSign(i, 1), bitSign(i, 2)}
		}
		quads := [][4]int{
			{0, 2, 6, 4}, {1, 3, 7, 5}, // x = ∓1
			{0, 1, 5, 4}, {2, 3, 7, 6}, // y = ∓1
			{0, 1, 3, 2}, {4, 5, 7, 6}, // z = ∓1
		}
		faces := make([][3]int, 0, 2*len(quads))
		for _, q := range quads {
			faces = append(faces, [3]int{q[0], q[1], q[2]}, [3]int{q[0], q[2], q[3]})
		}

		return emitSolid(m, cfg, methodCube, pos, faces)
	}
}

// Icosahedron returns the regular icosahedron with vertices at the cyclic
// permutations of (0, ±1, ±φ). 12 vertices, 20 faces.
func Icosahedron() Constructor {
	return func(m *mesh.Model, cfg builderConfig) error {
		pos, faces := icosahedron()

		return emitSolid(m, cfg, methodIcosahedron, pos, faces)
	}
}

// Icosphere returns a unit sphere made by splitting every icosahedron face
// into four n times and projecting new vertices onto the sphere.
// 10·4ⁿ+2 vertices, 20·4ⁿ faces.
//
// Errors:
//   - ErrTooSmall when n < 0; ErrTooLarge when n > MaxIcosphereSubdivisions.
func Icosphere(n int) Constructor {
	return func(m *mesh.Model, cfg builderConfig) error {
		if n < 0 {
			return builderErrorf(methodIcosphere, ErrTooSmall, "subdivisions=%d", n)
		}
		if n > MaxIcosphereSubdivisions {
			return builderErrorf(methodIcosphere, ErrTooLarge, "subdivisions=%d > %d", n, MaxIcosphereSubdivisions)
		}

		pos, faces := icosahedron()
		for i := range pos {
			pos[i] = pos[i].Normalize()
		}
		for level := 0; level < n; level++ {
			pos, faces = subdivide(pos, faces)
		}

		return emitSolid(m, cfg, methodIcosphere, pos, faces)
	}
}

// icosahedron returns canonical positions and the 20 faces found as the
// vertex triples that are pairwise at edge distance 2.
func icosahedron() ([]mgl64.Vec3, [][3]int) {
	phi := (1 + math.Sqrt(5)) / 2
	pos := make([]mgl64.Vec3, 0, 12)
	for _, s1 := range []float64{-1, 1} {
		for _, s2 := range []float64{-1, 1} {
			pos = append(pos,
				mgl64.Vec3{0, s1, s2 * phi},
				mgl64.Vec3{s1, s2 * phi, 0},
				mgl64.Vec3{s2 * phi, 0, s1},
			)
		}
	}

	const edge, tol = 2.0, 1e-9
	adjacent := func(a, b int) bool { return math.Abs(pos[a].Sub(pos[b]).Len()-edge) < tol }
	faces := make([][3]int, 0, 20)
	for a := 0; a < len(pos); a++ {
		for b := a + 1; b < len(pos); b++ {
			if !adjacent(a, b) {
				continue
			}
			for c := b + 1; c < len(pos); c++ {
				if adjacent(a, c) && adjacent(b, c) {
					faces = append(faces, [3]int{a, b, c})
				}
			}
		}
	}

	return pos, faces
}

// subdivide splits each face into four, sharing edge midpoints, and projects
// midpoints onto the unit sphere. Face orientation is preserved.
func subdivide(pos []mgl64.Vec3, faces [][3]int) ([]mgl64.Vec3, [][3]int) {
	mid := make(map[[2]int]int, 3*len(faces)/2)
	midpoint := func(a, b int) int {
		k := [2]int{a, b}
		if a > b {
			k = [2]int{b, a}
		}
		if v, ok := mid[k]; ok {
			return v
		}
		pos = append(pos, pos[a].Add(pos[b]).Normalize())
		mid[k] = len(pos) - 1

		return mid[k]
	}

	out := make([][3]int, 0, 4*len(faces))
	for _, f := range faces {
		a, b, c := f[0], f[1], f[2]
		ab, bc, ca := midpoint(a, b), midpoint(b, c), midpoint(c, a)
		out = append(out,
			[3]int{a, ab, ca},
			[3]int{b, bc, ab},
			[3]int{c, ca, bc},
			[3]int{ab, bc, ca},
		)
	}

	return pos, out
}

// emitSolid appends pos and faces to m, orienting each face outward.
func emitSolid(m *mesh.Model, cfg builderConfig, method string, pos []mgl64.Vec3, faces [][3]int) error {
	base := m.VertexCount()
	for _, p := range pos {
		if cfg.uv {
			m.AddTexVertex(cfg.place(p), sphericalUV(p))
		} else {
			m.AddVertex(cfg.place(p))
		}
	}
	for _, f := range faces {
		a, b, c := f[0], f[1], f[2]
		n := pos[b].Sub(pos[a]).Cross(pos[c].Sub(pos[a]))
		if n.Dot(pos[a].Add(pos[b]).Add(pos[c])) < 0 {
			b, c = c, b
		}
		if _, err := m.AddTaggedFace(base+a, base+b, base+c, cfg.tag); err != nil {
			return builderErrorf(method, ErrConstructFailed, "face %v: %v", f, err)
		}
	}

	return nil
}

// sphericalUV maps a direction to longitude/latitude texture space [0,1]².
func sphericalUV(p mgl64.Vec3) [2]float64 {
	l := p.Len()
	if l == 0 {
		return [2]float64{0.5, 0.5}
	}

	return [2]float64{
		0.5 + math.Atan2(p[2], p[0])/(2*math.Pi),
		0.5 + math.Asin(math.Max(-1, math.Min(1, p[1]/l)))/math.Pi,
	}
}

func bitSign(i, bit int) float64 {
	if i>>bit&1 == 1 {
		return 1
	}

	return -1
}
