// SPDX-License-Identifier: MIT

// Package matrix: triangular factorizations and the solvers built on them.
//
//   - LU  : Doolittle without pivoting; an exactly-zero U[i][i] is replaced by
//     a tiny epsilon so the factors stay finite. Not numerically robust on
//     singular or ill-conditioned input; kept for its deterministic, pivot-free
//     factor layout.
//   - LUP : Doolittle with partial (row) pivoting. Solve, Det and Inverse use it
//     and report ErrSingular instead of producing meaningless numbers.
package matrix

import (
	"errors"
	"fmt"
	"math"
)

// LU computes the Doolittle factorization A = L*U with unit diagonal on L (no pivoting).
//
// Implementation:
//   - Stage 1: ValidateSquare; copy A; allocate Dense L,U; set diag(L)=1.
//   - Stage 2: for i=0..n-1, fill row i of U from accumulated sums, then
//     column i of L, dividing by U[i][i] (or pivotEpsilon when U[i][i] is 0/NaN).
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch (non-square).
//
// Complexity:
//   - Time O(n³), Space O(n²).
func LU(m Matrix, opts ...Option) (Matrix, Matrix, error) {
	if err := ValidateSquare(m); err != nil {
		return nil, nil, matrixErrorf(opLU, err)
	}
	a, err := toDense(m)
	if err != nil {
		return nil, nil, matrixErrorf(opLU, err)
	}
	o := gatherOptions(opts...)
	n := a.r

	L, err := Identity(n)
	if err != nil {
		return nil, nil, matrixErrorf(opLU, err)
	}
	U, err := NewDense(n, n)
	if err != nil {
		return nil, nil, matrixErrorf(opLU, err)
	}

	var (
		i, j, k int
		sum, u  float64
	)
	for i = 0; i < n; i++ {
		// row i of U
		for k = i; k < n; k++ {
			sum = ZeroSum
			for j = 0; j < i; j++ {
				sum += L.data[i*n+j] * U.data[j*n+k]
			}
			U.data[i*n+k] = a.data[i*n+k] - sum
		}
		// column i of L
		u = U.data[i*n+i]
		if u == 0 || math.IsNaN(u) {
			u = o.pivotEpsilon
		}
		for k = i + 1; k < n; k++ {
			sum = ZeroSum
			for j = 0; j < i; j++ {
				sum += L.data[k*n+j] * U.data[j*n+i]
			}
			L.data[k*n+i] = (a.data[k*n+i] - sum) / u
		}
	}

	return L, U, nil
}

// LUPFactor holds a partially pivoted factorization P*A = L*U packed into one
// matrix: the strict lower triangle is L (unit diagonal implied), the upper
// triangle including the diagonal is U.
type LUPFactor struct {
	lu   *Dense  // packed L and U
	perm []int   // perm[i] = original row now at position i
	sign float64 // +1/-1, parity of the row permutation
}

// LUP factorizes a square matrix with partial pivoting.
//
// Implementation:
//   - Stage 1: ValidateSquare; copy A.
//   - Stage 2: for each column k pick the row with the largest |a[i][k]| (i ≥ k),
//     swap it up, and eliminate below it storing multipliers in place.
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch, ErrSingular (max |pivot| ≤ singularTol or NaN).
//
// Complexity:
//   - Time O(n³), Space O(n²).
func LUP(m Matrix, opts ...Option) (*LUPFactor, error) {
	if err := ValidateSquare(m); err != nil {
		return nil, matrixErrorf(opLUP, err)
	}
	a, err := toDense(m)
	if err != nil {
		return nil, matrixErrorf(opLUP, err)
	}
	o := gatherOptions(opts...)
	n := a.r

	perm := make([]int, n)
	for i := range perm {
		perm[i] = i
	}
	sign := 1.0

	var (
		i, j, k, p int
		best, v, f float64
	)
	for k = 0; k < n; k++ {
		// choose pivot row
		p, best = k, math.Abs(a.data[k*n+k])
		for i = k + 1; i < n; i++ {
			if v = math.Abs(a.data[i*n+k]); v > best {
				p, best = i, v
			}
		}
		if math.IsNaN(best) || best <= o.singularTol {
			return nil, matrixErrorf(opLUP, fmt.Errorf("column %d: %w", k, ErrSingular))
		}
		if p != k {
			a.swapRows(p, k)
			perm[p], perm[k] = perm[k], perm[p]
			sign = -sign
		}
		// eliminate below pivot
		for i = k + 1; i < n; i++ {
			f = a.data[i*n+k] / a.data[k*n+k]
			a.data[i*n+k] = f
			for j = k + 1; j < n; j++ {
				a.data[i*n+j] -= f * a.data[k*n+j]
			}
		}
	}

	return &LUPFactor{lu: a, perm: perm, sign: sign}, nil
}

// Solve returns x with A*x = b using the stored factors.
// Errors: ErrDimensionMismatch when len(b) != n, ErrNilMatrix when b is nil.
// Complexity: O(n²).
func (f *LUPFactor) Solve(b []float64) ([]float64, error) {
	n := f.lu.r
	if err := ValidateVecLen(b, n); err != nil {
		return nil, matrixErrorf(opSolve, err)
	}
	x := make([]float64, n)
	var (
		i, k int
		sum  float64
	)
	// forward substitution: L*y = P*b (unit diagonal)
	for i = 0; i < n; i++ {
		sum = b[f.perm[i]]
		for k = 0; k < i; k++ {
			sum -= f.lu.data[i*n+k] * x[k]
		}
		x[i] = sum
	}
	// backward substitution: U*x = y
	for i = n - 1; i >= 0; i-- {
		sum = x[i]
		for k = i + 1; k < n; k++ {
			sum -= f.lu.data[i*n+k] * x[k]
		}
		x[i] = sum / f.lu.data[i*n+i]
	}

	return x, nil
}

// Det returns the determinant of the factorized matrix.
// Complexity: O(n).
func (f *LUPFactor) Det() float64 {
	n := f.lu.r
	d := f.sign
	for i := 0; i < n; i++ {
		d *= f.lu.data[i*n+i]
	}

	return d
}

// Solve returns x with a*x = b, factoring a with partial pivoting.
// Errors: ErrNilMatrix, ErrDimensionMismatch, ErrSingular.
// Complexity: O(n³).
func Solve(a Matrix, b []float64, opts ...Option) ([]float64, error) {
	f, err := LUP(a, opts...)
	if err != nil {
		return nil, matrixErrorf(opSolve, err)
	}

	return f.Solve(b)
}

// Det returns the determinant of a square matrix. A singular matrix yields 0
// without error.
// Errors: ErrNilMatrix, ErrDimensionMismatch.
// Complexity: O(n³).
func Det(m Matrix, opts ...Option) (float64, error) {
	f, err := LUP(m, opts...)
	switch {
	case err == nil:
		return f.Det(), nil
	case isSingular(err):
		return 0, nil
	default:
		return 0, matrixErrorf(opDet, err)
	}
}

// Inverse computes A^{-1} column by column from one LUP factorization.
// Errors: ErrNilMatrix, ErrDimensionMismatch, ErrSingular.
// Complexity: O(n³).
func Inverse(m Matrix, opts ...Option) (Matrix, error) {
	f, err := LUP(m, opts...)
	if err != nil {
		return nil, matrixErrorf(opInverse, err)
	}
	n := f.lu.r
	inv, err := NewDense(n, n)
	if err != nil {
		return nil, matrixErrorf(opInverse, err)
	}
	e := make([]float64, n)
	var col, i int
	var x []float64
	for col = 0; col < n; col++ {
		for i = range e {
			e[i] = 0
		}
		e[col] = 1
		if x, err = f.Solve(e); err != nil {
			return nil, matrixErrorf(opInverse, err)
		}
		for i = 0; i < n; i++ {
			inv.data[i*n+col] = x[i]
		}
	}

	return inv, nil
}

// isSingular reports whether err carries ErrSingular.
func isSingular(err error) bool { return errors.Is(err, ErrSingular) }
