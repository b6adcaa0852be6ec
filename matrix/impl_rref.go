// SPDX-License-Identifier: MIT

package matrix

import "math"

// RREF reduces m to reduced row-echelon form by Gauss–Jordan elimination and
// reports its rank.
//
// Implementation:
//   - Stage 1: copy m into a private Dense (the input is never mutated).
//   - Stage 2: for each pivot row r, scan column `lead` from row r downward for
//     the first entry with |v| ≥ pivotTol. If none exists, advance `lead`
//     without advancing r. Otherwise swap that row into place, divide it by the
//     pivot, and eliminate column `lead` from every other row.
//   - Stage 3: rank = number of rows holding any |v| > rankTol.
//
// Inputs:
//   - m: any non-nil rectangular matrix.
//   - opts: WithPivotTol, WithRankTol.
//
// Returns:
//   - Matrix: the reduced copy.
//   - int   : rank.
//
// Errors:
//   - ErrNilMatrix.
//
// Determinism:
//   - First-fit pivot (not largest magnitude); identical inputs give identical output.
//
// Complexity:
//   - Time O(r²·c), Space O(r*c).
func RREF(m Matrix, opts ...Option) (Matrix, int, error) {
	a, err := toDense(m)
	if err != nil {
		return nil, 0, matrixErrorf(opRREF, err)
	}
	o := gatherOptions(opts...)
	rows, cols := a.r, a.c

	var (
		r, i, j, lead int
		pivot, f      float64
	)
	for r = 0; r < rows && lead < cols; {
		// find first usable pivot in column lead at or below row r
		i = r
		for i < rows && math.Abs(a.data[i*cols+lead]) < o.pivotTol {
			i++
		}
		if i == rows {
			lead++ // column exhausted; same pivot row, next column
			continue
		}
		a.swapRows(i, r)

		// normalize pivot row
		pivot = a.data[r*cols+lead]
		for j = 0; j < cols; j++ {
			a.data[r*cols+j] /= pivot
		}

		// eliminate column lead from all other rows
		for i = 0; i < rows; i++ {
			if i == r {
				continue
			}
			f = a.data[i*cols+lead]
			for j = 0; j < cols; j++ {
				a.data[i*cols+j] -= f * a.data[r*cols+j]
			}
		}
		lead++
		r++
	}

	return a, rankOf(a, o.rankTol), nil
}

// Rank returns the rank of m as computed by RREF.
// Errors: ErrNilMatrix.
func Rank(m Matrix, opts ...Option) (int, error) {
	_, rank, err := RREF(m, opts...)
	return rank, err
}

// rankOf counts rows of a holding any entry with magnitude above tol.
func rankOf(a *Dense, tol float64) int {
	var rank, i, j int
	for i = 0; i < a.r; i++ {
		for j = 0; j < a.c; j++ {
			if math.Abs(a.data[i*a.c+j]) > tol {
				rank++
				break
			}
		}
	}

	return rank
}
