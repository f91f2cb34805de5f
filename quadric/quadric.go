// SPDX-License-Identifier: MIT

package quadric

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/katalvlaran/propslim/matrix"
)

// Quadric is a symmetric quadratic error form Q(p) = pᵀAp + 2bᵀp + c.
// The zero value is not usable; create quadrics with New or a constructor.
type Quadric struct {
	dim  Dim
	a    [MaxDim][MaxDim]float64
	b    [MaxDim]float64
	c    float64
	area float64 // accumulated weight of the contributing primitives
}

// New returns the zero quadric of the given dimension.
// It panics when dim is not Dim3 or Dim5; that is a programming error.
func New(dim Dim) Quadric {
	if !dim.Valid() {
		panic("quadric: unsupported dimension " + dim.String())
	}

	return Quadric{dim: dim}
}

// FromTriangle builds the quadric measuring squared distance to the plane (or,
// for Dim5, the 2-flat) through p1, p2, p3.
//
// Implementation:
//   - Stage 1: orthonormal frame e1, e2 of the triangle by Gram–Schmidt.
//   - Stage 2: A = I − e1e1ᵀ − e2e2ᵀ, b = (p1·e1)e1 + (p1·e2)e2 − p1,
//     c = p1·p1 − (p1·e1)² − (p1·e2)².
//
// The form is unweighted; Area() reports the triangle area so the caller can
// apply an area weighting policy. ok is false, and the zero form is returned,
// when the triangle is degenerate (coincident or collinear corners).
func FromTriangle(dim Dim, p1, p2, p3 Point) (q Quadric, ok bool) {
	q = New(dim)
	n := int(dim)

	// 1) e1 = normalize(p2 − p1)
	e1 := p2.Sub(p1)
	l1 := math.Sqrt(dot(dim, e1, e1))
	if l1 <= DegenerateEps {
		return q, false
	}
	for i := 0; i < n; i++ {
		e1[i] /= l1
	}

	// 2) e2 = normalize((p3 − p1) − ((p3 − p1)·e1)e1)
	e2 := p3.Sub(p1)
	proj := dot(dim, e1, e2)
	for i := 0; i < n; i++ {
		e2[i] -= proj * e1[i]
	}
	l2 := math.Sqrt(dot(dim, e2, e2))
	if l2 <= DegenerateEps*math.Max(1, l1) {
		return q, false
	}
	for i := 0; i < n; i++ {
		e2[i] /= l2
	}

	// 3) Assemble A, b, c.
	p1e1 := dot(dim, p1, e1)
	p1e2 := dot(dim, p1, e2)
	var i, j int
	for i = 0; i < n; i++ {
		for j = 0; j < n; j++ {
			q.a[i][j] = -e1[i]*e1[j] - e2[i]*e2[j]
		}
		q.a[i][i]++
		q.b[i] = p1e1*e1[i] + p1e2*e2[i] - p1[i]
	}
	q.c = dot(dim, p1, p1) - p1e1*p1e1 - p1e2*p1e2
	q.area = 0.5 * l1 * l2

	return q, true
}

// FromPlane builds the rank-1 quadric (n·x + d)² acting on the geometric part
// of a dim-dimensional point. n should be unit length.
func FromPlane(dim Dim, n mgl64.Vec3, d float64) Quadric {
	q := New(dim)
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			q.a[i][j] = n[i] * n[j]
		}
		q.b[i] = d * n[i]
	}
	q.c = d * d

	return q
}

// BoundaryConstraint builds the discontinuity quadric of a boundary edge
// org→dest lying on a face with normal faceNormal: the plane containing the
// edge and perpendicular to the face. Area() is set to |dest − org|², the
// QSlim convention for area-weighted constraints. The result is unscaled;
// callers multiply by the boundary weight.
//
// ok is false when the edge is degenerate or parallel to the normal.
func BoundaryConstraint(dim Dim, org, dest, faceNormal mgl64.Vec3) (q Quadric, ok bool) {
	e := dest.Sub(org)
	n := e.Cross(faceNormal)
	l := n.Len()
	if l <= DegenerateEps {
		return New(dim), false
	}
	n = n.Mul(1 / l)
	q = FromPlane(dim, n, -n.Dot(org))
	q.area = e.Dot(e)

	return q, true
}

// Dim returns the quadric's dimension.
func (q *Quadric) Dim() Dim { return q.dim }

// Area returns the accumulated primitive weight.
func (q *Quadric) Area() float64 { return q.area }

// A returns the (i, j) entry of the quadratic term.
func (q *Quadric) A(i, j int) float64 { return q.a[i][j] }

// B returns the i-th entry of the linear term.
func (q *Quadric) B(i int) float64 { return q.b[i] }

// C returns the constant term.
func (q *Quadric) C() float64 { return q.c }

// Add accumulates o into q (q ← q + o). Both must share a dimension.
func (q *Quadric) Add(o *Quadric) {
	n := int(q.dim)
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			q.a[i][j] += o.a[i][j]
		}
		q.b[i] += o.b[i]
	}
	q.c += o.c
	q.area += o.area
}

// Sum returns q + o without modifying either operand.
func Sum(q, o Quadric) Quadric {
	q.Add(&o)

	return q
}

// Scale multiplies the form (A, b, c) by s. Area is left untouched.
func (q *Quadric) Scale(s float64) {
	n := int(q.dim)
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			q.a[i][j] *= s
		}
		q.b[i] *= s
	}
	q.c *= s
}

// Evaluate returns Q(p) = pᵀAp + 2bᵀp + c.
func (q *Quadric) Evaluate(p Point) float64 {
	n := int(q.dim)
	var sum, row float64
	for i := 0; i < n; i++ {
		row = 0
		for j := 0; j < n; j++ {
			row += q.a[i][j] * p[j]
		}
		sum += p[i]*row + 2*q.b[i]*p[i]
	}

	return sum + q.c
}

// Optimize returns the point minimizing Q by solving A·p = −b.
// ok is false when A is singular under matrix.DefaultTolerance.
func (q *Quadric) Optimize() (Point, bool) {
	return q.OptimizeWithTolerance(matrix.DefaultTolerance)
}

// OptimizeWithTolerance is Optimize with an explicit relative pivot tolerance.
func (q *Quadric) OptimizeWithTolerance(tol float64) (Point, bool) {
	n := int(q.dim)
	data := make([]float64, 0, n*n)
	rhs := make([]float64, n)
	for i := 0; i < n; i++ {
		data = append(data, q.a[i][:n]...)
		rhs[i] = -q.b[i]
	}
	a, err := matrix.NewDenseFrom(n, n, data)
	if err != nil {
		return Point{}, false
	}
	x, err := matrix.SolveWithTolerance(a, rhs, tol)
	if err != nil {
		return Point{}, false
	}
	var p Point
	copy(p[:n], x)

	return p, true
}

// OptimizeOnSegment minimizes Q along p1 + t·(p2 − p1), t ∈ [0, 1].
// ok is false when Q is constant along the segment direction.
func (q *Quadric) OptimizeOnSegment(p1, p2 Point) (Point, bool) {
	n := int(q.dim)
	d := p2.Sub(p1)

	// Q(p1 + t·d) = t²·dᵀAd + 2t·(dᵀAp1 + bᵀd) + Q(p1)
	var dAd, dAp1, bd float64
	for i := 0; i < n; i++ {
		var ad float64
		var ap float64
		for j := 0; j < n; j++ {
			ad += q.a[i][j] * d[j]
			ap += q.a[i][j] * p1[j]
		}
		dAd += d[i] * ad
		dAp1 += d[i] * ap
		bd += q.b[i] * d[i]
	}
	if math.Abs(dAd) <= DegenerateEps {
		return Point{}, false
	}
	t := -(dAp1 + bd) / dAd
	t = math.Max(0, math.Min(1, t))

	return p1.Lerp(p2, t), true
}

// Equal reports whether q and o agree entry-wise within tol.
func (q *Quadric) Equal(o *Quadric, tol float64) bool {
	if q.dim != o.dim {
		return false
	}
	n := int(q.dim)
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			if math.Abs(q.a[i][j]-o.a[i][j]) > tol {
				return false
			}
		}
		if math.Abs(q.b[i]-o.b[i]) > tol {
			return false
		}
	}

	return math.Abs(q.c-o.c) <= tol
}
