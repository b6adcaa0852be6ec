// SPDX-License-Identifier: MIT

package matrix

import "math"

// Eigenvalues approximates the eigenvalues of a square matrix by unshifted QR
// iteration: A_{k+1} = R_k * Q_k where A_k = Q_k * R_k.
//
// Implementation:
//   - Stage 1: ValidateSquare; copy A.
//   - Stage 2: repeat for at most eigenIters iterations (DefaultEigenIterations);
//     when eigenTol > 0, stop early once every strictly-lower entry is ≤ eigenTol.
//   - Stage 3: return diag(A_k).
//
// Behavior highlights:
//   - Best-effort approximation. Converges reliably only for matrices with
//     real, well-separated eigenvalues (e.g. symmetric). For complex-conjugate
//     pairs or repeated eigenvalues the diagonal does not settle and the
//     returned values are not eigenvalues; no error is raised.
//   - The order of the result follows the diagonal, typically descending |λ|.
//
// Inputs:
//   - m: square matrix.
//   - opts: WithIterations, WithEigenTol.
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch (non-square).
//
// Complexity:
//   - Time O(iters·n³), Space O(n²).
func Eigenvalues(m Matrix, opts ...Option) ([]float64, error) {
	if err := ValidateSquare(m); err != nil {
		return nil, matrixErrorf(opEigenvalues, err)
	}
	ak, err := toDense(m)
	if err != nil {
		return nil, matrixErrorf(opEigenvalues, err)
	}
	o := gatherOptions(opts...)
	n := ak.r

	var (
		iter   int
		q, r   *Dense
		next   Matrix
		nextOK bool
	)
	for iter = 0; iter < o.eigenIters; iter++ {
		if o.eigenTol > 0 && lowerBelow(ak, o.eigenTol) {
			break
		}
		if q, r, err = qrDense(ak); err != nil {
			return nil, matrixErrorf(opEigenvalues, err)
		}
		if next, err = Mul(r, q); err != nil {
			return nil, matrixErrorf(opEigenvalues, err)
		}
		if ak, nextOK = next.(*Dense); !nextOK {
			return nil, matrixErrorf(opEigenvalues, ErrNilMatrix)
		}
	}

	values := make([]float64, n)
	for i := 0; i < n; i++ {
		values[i] = ak.data[i*n+i]
	}

	return values, nil
}

// lowerBelow reports whether every strictly-lower entry of a is at most tol.
// The scan stops at the first offending entry.
func lowerBelow(a *Dense, tol float64) bool {
	ok := true
	a.Do(func(i, j int, v float64) bool {
		if j < i && !(math.Abs(v) <= tol) {
			ok = false
		}
		return ok
	})

	return ok
}
