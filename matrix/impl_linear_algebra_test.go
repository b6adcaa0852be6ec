// Package matrix_test contains unit tests for the elementary kernels.
package matrix_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/gcalc/matrix"
)

func TestAddSub(t *testing.T) {
	t.Parallel()

	a := MustRows(t, [][]float64{{1, 2}, {3, 4}})
	b := MustRows(t, [][]float64{{10, 20}, {30, 40}})

	sum, err := matrix.Add(a, b)
	require.NoError(t, err)
	CompareClose(t, [][]float64{{11, 22}, {33, 44}}, sum, 0)

	diff, err := matrix.Sub(b, a)
	require.NoError(t, err)
	CompareClose(t, [][]float64{{9, 18}, {27, 36}}, diff, 0)

	_, err = matrix.Add(a, MustDense(t, 2, 3))
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)
	_, err = matrix.Sub(nil, a)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
}

// TestKernels_FastPathMatchesFallback ensures hiding the concrete type does not
// change results.
func TestKernels_FastPathMatchesFallback(t *testing.T) {
	t.Parallel()

	a := MustDense(t, 4, 3)
	b := MustDense(t, 3, 5)
	RandomFill(t, a, 1)
	RandomFill(t, b, 2)

	fast, err := matrix.Mul(a, b)
	require.NoError(t, err)
	slow, err := matrix.Mul(hide{a}, hide{b})
	require.NoError(t, err)
	MatricesClose(t, fast, slow, 1e-12)

	sumFast, err := matrix.Add(a, a)
	require.NoError(t, err)
	sumSlow, err := matrix.Add(hide{a}, a)
	require.NoError(t, err)
	MatricesClose(t, sumFast, sumSlow, 0)

	x := []float64{1, -2, 0.5}
	yFast, err := matrix.MatVec(a, x)
	require.NoError(t, err)
	ySlow, err := matrix.MatVec(hide{a}, x)
	require.NoError(t, err)
	require.InDeltaSlice(t, yFast, ySlow, 1e-12)
}

func TestMul(t *testing.T) {
	t.Parallel()

	a := MustRows(t, [][]float64{{1, 2, 3}, {4, 5, 6}})
	b := MustRows(t, [][]float64{{7, 8}, {9, 10}, {11, 12}})

	c, err := matrix.Mul(a, b)
	require.NoError(t, err)
	CompareClose(t, [][]float64{{58, 64}, {139, 154}}, c, 0)

	_, err = matrix.Mul(a, a)
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)
}

// TestMul_PropagatesNaN pins that a zero in A does not mask a NaN in B.
func TestMul_PropagatesNaN(t *testing.T) {
	t.Parallel()

	a := MustRows(t, [][]float64{{0, 1}})
	b := MustRows(t, [][]float64{{math.NaN()}, {1}})

	c, err := matrix.Mul(a, b)
	require.NoError(t, err)
	require.True(t, math.IsNaN(MustAt(t, c, 0, 0)))
}

func TestTransposeScale(t *testing.T) {
	t.Parallel()

	a := MustRows(t, [][]float64{{1, 2, 3}, {4, 5, 6}})

	at, err := matrix.Transpose(a)
	require.NoError(t, err)
	CompareClose(t, [][]float64{{1, 4}, {2, 5}, {3, 6}}, at, 0)

	at2, err := matrix.Transpose(hide{a})
	require.NoError(t, err)
	MatricesClose(t, at, at2, 0)

	s, err := matrix.Scale(a, -2)
	require.NoError(t, err)
	CompareClose(t, [][]float64{{-2, -4, -6}, {-8, -10, -12}}, s, 0)
	require.Equal(t, 1.0, MustAt(t, a, 0, 0), "Scale must not mutate input")
}

func TestMatVec(t *testing.T) {
	t.Parallel()

	a := MustRows(t, [][]float64{{1, 2}, {3, 4}, {5, 6}})
	y, err := matrix.MatVec(a, []float64{1, 1})
	require.NoError(t, err)
	require.Equal(t, []float64{3, 7, 11}, y)

	_, err = matrix.MatVec(a, []float64{1})
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)
	_, err = matrix.MatVec(a, nil)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
}

func TestScale_KeepsNaNPolicy(t *testing.T) {
	t.Parallel()

	strict, err := matrix.NewFromRows([][]float64{{1, 2}, {3, 4}}, matrix.WithValidateNaNInf())
	require.NoError(t, err)
	_, err = matrix.Scale(strict, math.Inf(1))
	require.ErrorIs(t, err, matrix.ErrNaNInf)

	loose := MustRows(t, [][]float64{{1, 0}})
	s, err := matrix.Scale(loose, math.Inf(1))
	require.NoError(t, err)
	require.True(t, math.IsInf(MustAt(t, s, 0, 0), 1))
	require.True(t, math.IsNaN(MustAt(t, s, 0, 1)), "0·Inf is NaN")
}
