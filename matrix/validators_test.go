// SPDX-License-Identifier: MIT
// Package matrix_test contains unit tests for the matrix validators and row conversions.
package matrix_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/gcalc/matrix"
)

// TestValidateSameShape covers nil inputs, matching and mismatched dimensions.
func TestValidateSameShape(t *testing.T) {
	t.Parallel()

	zeros := func(r, c int) matrix.Matrix { return MustDense(t, r, c) }

	tests := []struct {
		name    string
		a, b    matrix.Matrix
		wantErr error
	}{
		{"both nil", nil, nil, matrix.ErrNilMatrix},
		{"first nil", nil, zeros(2, 2), matrix.ErrNilMatrix},
		{"second nil", zeros(2, 2), nil, matrix.ErrNilMatrix},
		{"equal 2x3", zeros(2, 3), zeros(2, 3), nil},
		{"row mismatch", zeros(2, 3), zeros(3, 3), matrix.ErrDimensionMismatch},
		{"col mismatch", zeros(2, 3), zeros(2, 4), matrix.ErrDimensionMismatch},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			err := matrix.ValidateBinarySameShape(tc.a, tc.b)
			if tc.wantErr == nil {
				require.NoError(t, err)
				return
			}
			require.ErrorIs(t, err, tc.wantErr)
		})
	}
}

// TestValidateSquare covers nil inputs, square and non-square cases.
func TestValidateSquare(t *testing.T) {
	t.Parallel()

	var typedNil *matrix.Dense
	tests := []struct {
		name string
		m    matrix.Matrix
		want error
	}{
		{"nil", nil, matrix.ErrNilMatrix},
		{"typed nil", typedNil, matrix.ErrNilMatrix},
		{"1x1", MustDense(t, 1, 1), nil},
		{"3x3", MustDense(t, 3, 3), nil},
		{"2x3", MustDense(t, 2, 3), matrix.ErrDimensionMismatch},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			err := matrix.ValidateSquare(tc.m)
			if tc.want == nil {
				require.NoError(t, err)
				return
			}
			require.ErrorIs(t, err, tc.want)
		})
	}
}

// TestNewFromRows covers shape validation and the optional finite-only policy.
func TestNewFromRows(t *testing.T) {
	t.Parallel()

	_, err := matrix.NewFromRows(nil)
	require.ErrorIs(t, err, matrix.ErrBadShape)

	_, err = matrix.NewFromRows([][]float64{{}})
	require.ErrorIs(t, err, matrix.ErrBadShape)

	_, err = matrix.NewFromRows([][]float64{{1, 2}, {3}})
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)

	_, err = matrix.NewFromRows([][]float64{{1, math.NaN()}}, matrix.WithValidateNaNInf())
	require.ErrorIs(t, err, matrix.ErrNaNInf)

	src := [][]float64{{1, 2}, {3, 4}}
	m := MustRows(t, src)
	src[0][0] = 42
	require.Equal(t, 1.0, MustAt(t, m, 0, 0), "input must be copied")
}

// TestToRows round-trips through both the Dense fast path and the interface fallback.
func TestToRows(t *testing.T) {
	t.Parallel()

	want := [][]float64{{1, 2, 3}, {4, 5, 6}}
	m := MustRows(t, want)

	got, err := matrix.ToRows(m)
	require.NoError(t, err)
	require.Equal(t, want, got)

	got, err = matrix.ToRows(hide{m})
	require.NoError(t, err)
	require.Equal(t, want, got)

	_, err = matrix.ToRows(nil)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
}
