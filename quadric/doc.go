// SPDX-License-Identifier: MIT

// Package quadric implements the quadric error metric (QEM) used to score
// edge contractions.
//
// A Quadric is the quadratic form
//
//	Q(p) = pᵀ·A·p + 2·bᵀ·p + c
//
// over a D-dimensional point p. D is 3 for pure geometry and 5 when texture
// coordinates (u, v) participate; the dimension is fixed when a quadric is
// created and never changes afterwards.
//
// Constructors:
//
//   - FromTriangle:       squared distance to the (hyper)plane spanned by three points
//     (Garland–Heckbert generalized form, valid for D=3 and D=5).
//   - FromPlane:          rank-1 squared distance to a 3-D plane n·x + d = 0.
//   - BoundaryConstraint: plane through a boundary edge, perpendicular to its face.
//
// Algebra:
//
//   - Add / Scale:  pointwise accumulation; Add is commutative and associative.
//   - Evaluate:     error at a point.
//   - Optimize:     minimizer of Q by solving A·p = −b (fails when A is singular).
//   - OptimizeOnSegment: minimizer restricted to the segment [p1, p2].
//
// Degenerate triangles never panic: FromTriangle returns a zero form together
// with ok == false so the caller can log the face and continue.
//
// Storage is a fixed [5][5] array regardless of D so accumulating quadrics in
// the decimation hot loop does not allocate.
package quadric
