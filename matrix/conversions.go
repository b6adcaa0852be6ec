// SPDX-License-Identifier: MIT

// Package matrix: conversions between [][]float64 (the caller-facing row-major
// form, e.g. decoded JSON) and the Matrix interface.
package matrix

import "fmt"

const (
	opFromRows = "NewFromRows"
	opToRows   = "ToRows"
)

// NewFromRows copies a rectangular row-slice into a fresh Dense.
//
// Implementation:
//   - Stage 1: ValidateRows (non-empty, rectangular).
//   - Stage 2: allocate Dense with the resolved numeric policy and copy row by row.
//
// Errors:
//   - ErrBadShape (no rows / empty row), ErrDimensionMismatch (ragged),
//     ErrNaNInf (non-finite entry with WithValidateNaNInf).
//
// Complexity:
//   - Time O(r*c), Space O(r*c). The input is never retained.
func NewFromRows(rows [][]float64, opts ...Option) (*Dense, error) {
	if err := ValidateRows(rows); err != nil {
		return nil, matrixErrorf(opFromRows, err)
	}
	o := gatherOptions(opts...)
	r, c := len(rows), len(rows[0])
	m, err := newDenseWithPolicy(r, c, o.validateNaNInf)
	if err != nil {
		return nil, matrixErrorf(opFromRows, err)
	}
	var i, j int
	for i = 0; i < r; i++ {
		for j = 0; j < c; j++ {
			if err = m.Set(i, j, rows[i][j]); err != nil {
				return nil, matrixErrorf(opFromRows, err)
			}
		}
	}

	return m, nil
}

// ToRows exports any Matrix into a freshly allocated [][]float64.
// Errors: ErrNilMatrix; At errors from foreign implementations.
// Complexity: O(r*c).
func ToRows(m Matrix) ([][]float64, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opToRows, err)
	}
	rows, cols := m.Rows(), m.Cols()
	out := make([][]float64, rows)

	var (
		i, j int
		v    float64
		err  error
	)
	// Fast-path: Row already returns a fresh copy.
	if d, ok := m.(*Dense); ok {
		for i = 0; i < rows; i++ {
			if out[i], err = d.Row(i); err != nil {
				return nil, matrixErrorf(opToRows, err)
			}
		}
		return out, nil
	}

	for i = 0; i < rows; i++ {
		out[i] = make([]float64, cols)
		for j = 0; j < cols; j++ {
			if v, err = m.At(i, j); err != nil {
				return nil, matrixErrorf(opToRows, fmt.Errorf("At(%d,%d): %w", i, j, err))
			}
			out[i][j] = v
		}
	}

	return out, nil
}

// toDense returns a private *Dense copy of m, whatever its implementation.
// Kernels call it once on entry and then work on flat storage only.
// Complexity: O(r*c).
func toDense(m Matrix) (*Dense, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, err
	}
	if d, ok := m.(*Dense); ok {
		return d.clone(), nil
	}
	rows, cols := m.Rows(), m.Cols()
	out, err := NewDense(rows, cols)
	if err != nil {
		return nil, err
	}
	var (
		i, j int
		v    float64
	)
	for i = 0; i < rows; i++ {
		for j = 0; j < cols; j++ {
			if v, err = m.At(i, j); err != nil {
				return nil, fmt.Errorf("At(%d,%d): %w", i, j, err)
			}
			out.data[i*cols+j] = v
		}
	}

	return out, nil
}
