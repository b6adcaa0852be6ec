// SPDX-License-Identifier: MIT

package matrix

import "math"

// QR factors an m×n matrix as A = Q*R by modified Gram–Schmidt.
//
// Implementation:
//   - Stage 1: copy A into flat storage; allocate Q (m×n) and R (n×n) as zeros.
//   - Stage 2: for each column k, start from v = A[:,k]; for j < k project the
//     running v onto Q[:,j], record R[j][k] = <v, Q[:,j]> and subtract it.
//   - Stage 3: R[k][k] = ‖v‖; if it is non-zero, Q[:,k] = v/‖v‖.
//
// Behavior highlights:
//   - A zero residual leaves Q[:,k] all-zero (rank-deficient input yields a
//     degenerate Q column); this is not reported as an error.
//
// Errors:
//   - ErrNilMatrix.
//
// Complexity:
//   - Time O(m·n²), Space O(m·n + n²).
func QR(m Matrix) (Matrix, Matrix, error) {
	a, err := toDense(m)
	if err != nil {
		return nil, nil, matrixErrorf(opQR, err)
	}
	q, r, err := qrDense(a)
	if err != nil {
		return nil, nil, matrixErrorf(opQR, err)
	}

	return q, r, nil
}

// qrDense is the flat-storage kernel behind QR; Eigenvalues calls it directly
// on every iteration to avoid re-validating.
func qrDense(a *Dense) (*Dense, *Dense, error) {
	rows, cols := a.r, a.c
	q, err := NewDense(rows, cols)
	if err != nil {
		return nil, nil, err
	}
	r, err := NewDense(cols, cols)
	if err != nil {
		return nil, nil, err
	}

	var (
		i, j, k        int
		v              []float64 // running residual of column k
		dot, norm, inv float64
	)
	for k = 0; k < cols; k++ {
		if v, err = a.Col(k); err != nil {
			return nil, nil, err
		}
		for j = 0; j < k; j++ {
			dot = ZeroSum
			for i = 0; i < rows; i++ {
				dot += v[i] * q.data[i*cols+j]
			}
			r.data[j*cols+k] = dot
			for i = 0; i < rows; i++ {
				v[i] -= dot * q.data[i*cols+j]
			}
		}
		norm = ZeroSum
		for i = 0; i < rows; i++ {
			norm += v[i] * v[i]
		}
		norm = math.Sqrt(norm)
		r.data[k*cols+k] = norm
		if norm == 0 {
			continue // degenerate column stays zero
		}
		inv = 1 / norm
		for i = 0; i < rows; i++ {
			q.data[i*cols+k] = v[i] * inv
		}
	}

	return q, r, nil
}
