// SPDX-License-Identifier: MIT
// Package: propslim/builder
//
// impl_sheets.go: open planar meshes in the canonical square [-1,1]² at z = 0.
//
// Contract:
//   • Faces are counter-clockwise seen from +Z.
//   • With cfg.uv, texture coordinates are the planar projection
//     ((x+1)/2, (y+1)/2) of the canonical position.

package builder

import (
	"github.com/go-gl/mathgl/mgl64"

	"github.com/katalvlaran/propslim/mesh"
)

const (
	methodGrid    = "Grid"
	methodQuadFan = "QuadFan"

	// MinGridDim is the smallest grid side, in cells.
	MinGridDim = 1
)

// Grid returns a rows×cols sheet of square cells, each split along its
// (i,j)–(i+1,j+1) diagonal. Vertex (i, j) has index j·(cols+1)+i.
// (rows+1)·(cols+1) vertices, 2·rows·cols faces.
//
// Errors:
//   - ErrTooSmall when rows or cols < MinGridDim.
func Grid(rows, cols int) Constructor {
	return func(m *mesh.Model, cfg builderConfig) error {
		if rows < MinGridDim || cols < MinGridDim {
			return builderErrorf(methodGrid, ErrTooSmall, "rows=%d cols=%d", rows, cols)
		}

		base := m.VertexCount()
		for j := 0; j <= rows; j++ {
			for i := 0; i <= cols; i++ {
				p := mgl64.Vec3{-1 + 2*float64(i)/float64(cols), -1 + 2*float64(j)/float64(rows), 0}
				emitPlanarVertex(m, cfg, p)
			}
		}

		stride := cols + 1
		for j := 0; j < rows; j++ {
			for i := 0; i < cols; i++ {
				a := base + j*stride + i
				b, c, d := a+1, a+stride+1, a+stride
				if err := emitFaces(m, cfg, methodGrid, [3]int{a, b, c}, [3]int{a, c, d}); err != nil {
					return err
				}
			}
		}

		return nil
	}
}

// QuadFan returns the square with corners 0..3 counter-clockwise from
// (-1,-1) and a centre vertex 4, split into four triangles around the centre.
// Every corner lies on the boundary. 5 vertices, 4 faces.
func QuadFan() Constructor {
	return func(m *mesh.Model, cfg builderConfig) error {
		base := m.VertexCount()
		for _, p := range []mgl64.Vec3{{-1, -1, 0}, {1, -1, 0}, {1, 1, 0}, {-1, 1, 0}, {0, 0, 0}} {
			emitPlanarVertex(m, cfg, p)
		}
		centre := base + 4

		return emitFaces(m, cfg, methodQuadFan,
			[3]int{base, base + 1, centre},
			[3]int{base + 1, base + 2, centre},
			[3]int{base + 2, base + 3, centre},
			[3]int{base + 3, base, centre},
		)
	}
}

func emitPlanarVertex(m *mesh.Model, cfg builderConfig, p mgl64.Vec3) int {
	if cfg.uv {
		return m.AddTexVertex(cfg.place(p), [2]float64{(p[0] + 1) / 2, (p[1] + 1) / 2})
	}

	return m.AddVertex(cfg.place(p))
}

func emitFaces(m *mesh.Model, cfg builderConfig, method string, faces ...[3]int) error {
	for _, f := range faces {
		if _, err := m.AddTaggedFace(f[0], f[1], f[2], cfg.tag); err != nil {
			return builderErrorf(method, ErrConstructFailed, "face %v: %v", f, err)
		}
	}

	return nil
}
