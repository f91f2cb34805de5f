// SPDX-License-Identifier: MIT
// Package: propslim/builder
//
// api.go: public entry points: the Build orchestrator and shape lookup.
//
// Design contract:
//   - One orchestrator: Build(opts, cons...). Creates the model, resolves cfg,
//     runs cons in order.
//   - Constructors are implemented in impl_*.go.
//   - Determinism: same options and constructor order ⇒ identical meshes.

package builder

import (
	"fmt"
	"sort"
	"strings"

	"github.com/katalvlaran/propslim/mesh"
)

// Constructor appends one mesh component to m using the resolved config.
// Constructors validate parameters early and return sentinel errors.
type Constructor func(m *mesh.Model, cfg builderConfig) error

// Build creates a new mesh.Model, resolves opts and applies all constructors
// in order. Any constructor error is wrapped with "Build: %w" and returned
// immediately.
//
// Complexity:
//   - Σ cost of each constructor; wrapper overhead O(len(cons)).
func Build(opts []Option, cons ...Constructor) (*mesh.Model, error) {
	m := mesh.New()
	cfg := newBuilderConfig(opts...)
	for i, fn := range cons {
		if fn == nil {
			return nil, fmt.Errorf("Build: nil constructor at index %d: %w", i, ErrConstructFailed)
		}
		if err := fn(m, cfg); err != nil {
			return nil, fmt.Errorf("Build: %w", err)
		}
	}

	return m, nil
}

// Shape names accepted by ShapeByName.
const (
	ShapeTetrahedron = "tetrahedron"
	ShapeOctahedron  = "octahedron"
	ShapeCube        = "cube"
	ShapeIcosahedron = "icosahedron"
	ShapeIcosphere   = "icosphere" // param: subdivisions
	ShapeGrid        = "grid"      // param: cells per side
	ShapeQuadFan     = "quadfan"
)

var shapes = map[string]func(param int) Constructor{
	ShapeTetrahedron: func(int) Constructor { return Tetrahedron() },
	ShapeOctahedron:  func(int) Constructor { return Octahedron() },
	ShapeCube:        func(int) Constructor { return Cube() },
	ShapeIcosahedron: func(int) Constructor { return Icosahedron() },
	ShapeIcosphere:   func(n int) Constructor { return Icosphere(n) },
	ShapeGrid:        func(n int) Constructor { return Grid(n, n) },
	ShapeQuadFan:     func(int) Constructor { return QuadFan() },
}

// ShapeByName returns the constructor registered under name (case-insensitive).
// param is the subdivision count for icosphere and the cells per side for
// grid; other shapes ignore it. Parameter validation happens when the
// constructor runs.
//
// Errors:
//   - ErrUnknownShape.
func ShapeByName(name string, param int) (Constructor, error) {
	mk, ok := shapes[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return nil, fmt.Errorf("ShapeByName(%q): %w", name, ErrUnknownShape)
	}

	return mk(param), nil
}

// Shapes lists the names ShapeByName accepts, sorted.
func Shapes() []string {
	out := make([]string, 0, len(shapes))
	for name := range shapes {
		out = append(out, name)
	}
	sort.Strings(out)

	return out
}
