// SPDX-License-Identifier: MIT

package quadric

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl64"
)

// MaxDim is the largest supported quadric dimension.
const MaxDim = 5

// Dim is the dimension of a quadric's domain.
type Dim int

const (
	// Dim3 quadrics measure geometric error over (x, y, z).
	Dim3 Dim = 3
	// Dim5 quadrics measure error over (x, y, z, u, v).
	Dim5 Dim = 5
)

// Valid reports whether d is a supported dimension.
func (d Dim) Valid() bool { return d == Dim3 || d == Dim5 }

// String implements fmt.Stringer.
func (d Dim) String() string { return fmt.Sprintf("%dD", int(d)) }

// DegenerateEps bounds the edge and height lengths below which a triangle is
// treated as degenerate by FromTriangle.
const DegenerateEps = 1e-12

// Point is a position in quadric space. Only the first Dim entries are
// meaningful; the rest stay zero.
type Point [MaxDim]float64

// PointFrom packs a 3-D position and a texture coordinate into a Point.
// For Dim3 the texture coordinate is ignored.
func PointFrom(dim Dim, pos mgl64.Vec3, uv [2]float64) Point {
	p := Point{pos[0], pos[1], pos[2]}
	if dim == Dim5 {
		p[3], p[4] = uv[0], uv[1]
	}

	return p
}

// Vec3 returns the geometric part of p.
func (p Point) Vec3() mgl64.Vec3 { return mgl64.Vec3{p[0], p[1], p[2]} }

// UV returns the texture part of p (zero for Dim3 points).
func (p Point) UV() [2]float64 { return [2]float64{p[3], p[4]} }

// Sub returns p − q.
func (p Point) Sub(q Point) Point {
	for i := range p {
		p[i] -= q[i]
	}

	return p
}

// Lerp returns p + t·(q − p).
func (p Point) Lerp(q Point, t float64) Point {
	var out Point
	for i := range p {
		out[i] = p[i] + t*(q[i]-p[i])
	}

	return out
}

func dot(dim Dim, a, b Point) float64 {
	var s float64
	for i := 0; i < int(dim); i++ {
		s += a[i] * b[i]
	}

	return s
}
