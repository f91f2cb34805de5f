// SPDX-License-Identifier: MIT

package decimate_test

import (
	"context"
	"fmt"

	"github.com/katalvlaran/propslim/builder"
	"github.com/katalvlaran/propslim/decimate"
	"github.com/katalvlaran/propslim/mesh"
)

// ExampleDecimator_Decimate reduces a regular octahedron to a tetrahedron.
func ExampleDecimator_Decimate() {
	m, err := builder.Build(nil, builder.Octahedron())
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	d, err := decimate.New(m)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	res, err := d.Decimate(context.Background(), 4)
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	fmt.Println(res.State, res.Faces, res.Vertices, res.Contractions)
	fmt.Println("closed:", m.IsClosedManifold())

	// Output:
	// done 4 4 2
	// closed: true
}

// ExampleWithProtect shows that a fully pinned mesh cannot be simplified.
func ExampleWithProtect() {
	m, _ := builder.Build(nil, builder.Octahedron())
	d, _ := decimate.New(m, decimate.WithProtect(func(m *mesh.Model) {
		for v := 0; v < m.VertexCount(); v++ {
			_ = m.Protect(v)
		}
	}))
	res, _ := d.Decimate(context.Background(), 4)
	fmt.Println(res.State, res.Faces)

	// Output:
	// failed 8
}
