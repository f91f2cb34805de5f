// SPDX-License-Identifier: MIT
// Package matrix - LU factorization with partial pivoting, solves, inversion.
//
// Layout:
//   - LUFactors keeps L (unit lower, strictly below the diagonal) and U (upper,
//     diagonal included) packed in one row-major n×n buffer, plus the row
//     permutation produced by pivoting: P·A = L·U.
//
// Determinism:
//   - Pivot selection scans rows top-down and keeps the first maximum, so equal
//     inputs always produce bit-identical factors.

package matrix

import (
	"fmt"
	"math"
)

// DefaultTolerance is the relative pivot threshold used by LU, Solve and Inverse.
const DefaultTolerance = 1e-12

// LUFactors holds a packed P·A = L·U factorization.
type LUFactors struct {
	n    int       // order of the factored matrix
	lu   []float64 // packed L\U, row-major
	perm []int     // perm[i] = source row of A stored at row i
	sign float64   // permutation parity (+1 / -1), used by Det
}

// LU factors m with the default relative tolerance.
func LU(m *Dense) (*LUFactors, error) { return LUWithTolerance(m, DefaultTolerance) }

// LUWithTolerance factors m as P·A = L·U using row pivoting.
//
// Implementation:
//   - Stage 1: validate m (non-nil, square); copy into the packed buffer.
//   - Stage 2: for each column k pick the largest |a[i,k]|, i ≥ k; reject it when
//     it does not exceed tol·max|A|; swap rows; eliminate below the pivot.
//
// Errors:
//   - ErrNilMatrix, ErrNonSquare, ErrSingular.
//
// Complexity:
//   - Time O(n^3), Space O(n^2).
func LUWithTolerance(m *Dense, tol float64) (*LUFactors, error) {
	if m == nil {
		return nil, matrixErrorf(opLU, ErrNilMatrix)
	}
	if m.r != m.c {
		return nil, matrixErrorf(opLU, fmt.Errorf("%dx%d: %w", m.r, m.c, ErrNonSquare))
	}
	n := m.r
	f := &LUFactors{
		n:    n,
		lu:   make([]float64, n*n),
		perm: make([]int, n),
		sign: 1,
	}
	copy(f.lu, m.data)
	for i := range f.perm {
		f.perm[i] = i
	}

	threshold := tol * m.maxAbs()
	if threshold == 0 {
		// all-zero matrix, or tol == 0 with a zero pivot still caught below
		threshold = math.SmallestNonzeroFloat64
	}

	var i, j, k, p int
	var best, a, pivot, factor float64
	for k = 0; k < n; k++ {
		// 1) Partial pivot: largest magnitude in column k at or below the diagonal.
		p, best = k, math.Abs(f.lu[k*n+k])
		for i = k + 1; i < n; i++ {
			if a = math.Abs(f.lu[i*n+k]); a > best {
				p, best = i, a
			}
		}
		if best <= threshold {
			return nil, matrixErrorf(opLU, fmt.Errorf("column %d: %w", k, ErrSingular))
		}

		// 2) Swap rows k and p in the packed buffer and in the permutation.
		if p != k {
			for j = 0; j < n; j++ {
				f.lu[k*n+j], f.lu[p*n+j] = f.lu[p*n+j], f.lu[k*n+j]
			}
			f.perm[k], f.perm[p] = f.perm[p], f.perm[k]
			f.sign = -f.sign
		}

		// 3) Eliminate below the pivot, storing multipliers in L's slot.
		pivot = f.lu[k*n+k]
		for i = k + 1; i < n; i++ {
			factor = f.lu[i*n+k] / pivot
			f.lu[i*n+k] = factor
			if factor == 0 {
				continue
			}
			for j = k + 1; j < n; j++ {
				f.lu[i*n+j] -= factor * f.lu[k*n+j]
			}
		}
	}

	return f, nil
}

// Order returns n for an n×n factorization.
func (f *LUFactors) Order() int { return f.n }

// Det returns det(A) = sign(P) · Π U[i,i].
func (f *LUFactors) Det() float64 {
	det := f.sign
	for i := 0; i < f.n; i++ {
		det *= f.lu[i*f.n+i]
	}

	return det
}

// Solve returns x with A·x = b using the stored factors.
//
// Errors:
//   - ErrDimensionMismatch when len(b) != n.
//
// Complexity:
//   - Time O(n^2), Space O(n).
func (f *LUFactors) Solve(b []float64) ([]float64, error) {
	n := f.n
	if len(b) != n {
		return nil, matrixErrorf(opSolve, fmt.Errorf("len(b)=%d, n=%d: %w", len(b), n, ErrDimensionMismatch))
	}
	x := make([]float64, n)
	f.solveInto(b, x)

	return x, nil
}

// solveInto runs forward (L·y = P·b) then backward (U·x = y) substitution.
// x doubles as the y workspace.
func (f *LUFactors) solveInto(b, x []float64) {
	n := f.n
	var i, k int
	var sum float64
	for i = 0; i < n; i++ {
		sum = b[f.perm[i]]
		for k = 0; k < i; k++ {
			sum -= f.lu[i*n+k] * x[k]
		}
		x[i] = sum
	}
	for i = n - 1; i >= 0; i-- {
		sum = x[i]
		for k = i + 1; k < n; k++ {
			sum -= f.lu[i*n+k] * x[k]
		}
		x[i] = sum / f.lu[i*n+i]
	}
}

// Solve solves a·x = b with the default tolerance.
func Solve(a *Dense, b []float64) ([]float64, error) {
	return SolveWithTolerance(a, b, DefaultTolerance)
}

// SolveWithTolerance solves a·x = b, failing with ErrSingular when a pivot
// does not exceed tol·max|a|.
//
// Errors:
//   - ErrNilMatrix, ErrNonSquare, ErrSingular, ErrDimensionMismatch.
func SolveWithTolerance(a *Dense, b []float64, tol float64) ([]float64, error) {
	f, err := LUWithTolerance(a, tol)
	if err != nil {
		return nil, matrixErrorf(opSolve, err)
	}

	return f.Solve(b)
}

// Inverse computes a⁻¹ by solving against each canonical basis column.
//
// Errors:
//   - ErrNilMatrix, ErrNonSquare, ErrSingular.
//
// Complexity:
//   - Time O(n^3), Space O(n^2).
func Inverse(a *Dense) (*Dense, error) {
	f, err := LU(a)
	if err != nil {
		return nil, matrixErrorf(opInverse, err)
	}
	n := f.n
	inv := &Dense{r: n, c: n, data: make([]float64, n*n)}
	e := make([]float64, n)
	x := make([]float64, n)
	for col := 0; col < n; col++ {
		for i := range e {
			e[i] = 0
		}
		e[col] = 1
		f.solveInto(e, x)
		for i := 0; i < n; i++ {
			inv.data[i*n+col] = x[i]
		}
	}

	return inv, nil
}
