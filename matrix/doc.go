// SPDX-License-Identifier: MIT

// Package matrix provides the small dense linear-algebra kernels used by the
// quadric error metric: a row-major Dense matrix, LU factorization with
// partial pivoting, linear solves and inversion.
//
// The package is deliberately compact. Quadrics are at most 5×5, so every
// kernel favours determinism and clarity over blocking or SIMD tricks:
//
//   - Dense:   row-major storage, safe At/Set (errors instead of panics).
//   - LU:      Doolittle factorization with row pivoting, P·A = L·U.
//   - Solve:   A·x = b through LU; ErrSingular when a pivot collapses.
//   - Inverse: column-by-column solve against the identity.
//   - MatVec:  y = A·x.
//
// Singularity policy:
//
//	A pivot p is rejected when |p| ≤ Tolerance · max|A[i][j]|. The relative
//	test keeps the decision scale-invariant: a quadric built from a mesh in
//	millimetres and the same mesh in metres agree on which systems are solvable.
//
// Errors (sentinel):
//
//   - ErrBadShape          non-positive dimensions or mismatched data length.
//   - ErrOutOfRange        At/Set outside bounds.
//   - ErrDimensionMismatch operand shapes disagree (MatVec, Solve).
//   - ErrNonSquare         LU/Solve/Inverse on a rectangular matrix.
//   - ErrSingular          numerically rank-deficient system.
//   - ErrNaNInf            non-finite input to Set or NewDenseFrom.
//   - ErrNilMatrix         nil receiver or operand.
package matrix
