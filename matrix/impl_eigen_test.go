package matrix_test

import (
	"sort"
	"testing"

	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/gcalc/matrix"
)

func TestEigenvalues_Symmetric2x2(t *testing.T) {
	t.Parallel()

	vals, err := matrix.Eigenvalues(MustRows(t, [][]float64{{2, 1}, {1, 2}}))
	require.NoError(t, err)
	require.InDeltaSlice(t, []float64{3, 1}, vals, 1e-9)
}

// TestEigenvalues_AgainstGonum compares with gonum's symmetric eigensolver on a
// tridiagonal matrix with well-separated spectrum.
func TestEigenvalues_AgainstGonum(t *testing.T) {
	t.Parallel()

	rows := [][]float64{{4, 1, 0}, {1, 3, 1}, {0, 1, 2}}
	got, err := matrix.Eigenvalues(MustRows(t, rows))
	require.NoError(t, err)

	sym := mat.NewSymDense(3, []float64{4, 1, 0, 1, 3, 1, 0, 1, 2})
	var es mat.EigenSym
	require.True(t, es.Factorize(sym, false))
	want := es.Values(nil)

	sort.Float64s(got)
	sort.Float64s(want)
	require.InDeltaSlice(t, want, got, 1e-8)
}

// TestEigenvalues_PlantedSpectrum builds A = Q·diag(λ)·Qᵀ with a random
// orthogonal Q and recovers λ in descending order.
func TestEigenvalues_PlantedSpectrum(t *testing.T) {
	t.Parallel()

	lambda := []float64{10, 5, 2, 1}
	n := len(lambda)

	r := MustDense(t, n, n)
	RandomFill(t, r, 7)
	q, _, err := matrix.QR(r)
	require.NoError(t, err)

	d := MustDense(t, n, n)
	for i, l := range lambda {
		require.NoError(t, d.Set(i, i, l))
	}
	qd, err := matrix.Mul(q, d)
	require.NoError(t, err)
	qt, err := matrix.Transpose(q)
	require.NoError(t, err)
	a, err := matrix.Mul(qd, qt)
	require.NoError(t, err)

	got, err := matrix.Eigenvalues(a)
	require.NoError(t, err)
	require.InDeltaSlice(t, lambda, got, 1e-6)
}

// TestEigenvalues_EarlyExit checks that a triangular input stops immediately
// when a tolerance is configured and still reports its diagonal.
func TestEigenvalues_EarlyExit(t *testing.T) {
	t.Parallel()

	a := MustRows(t, [][]float64{{5, 3}, {0, -2}})
	got, err := matrix.Eigenvalues(a, matrix.WithEigenTol(1e-12), matrix.WithIterations(1))
	require.NoError(t, err)
	require.Equal(t, []float64{5, -2}, got)
}

// TestEigenvalues_ComplexPairDoesNotConverge documents the known limitation:
// a rotation has eigenvalues ±i and the iteration returns its unchanged diagonal.
func TestEigenvalues_ComplexPairDoesNotConverge(t *testing.T) {
	t.Parallel()

	got, err := matrix.Eigenvalues(MustRows(t, [][]float64{{0, -1}, {1, 0}}))
	require.NoError(t, err)
	require.InDeltaSlice(t, []float64{0, 0}, got, 1e-12)
}

func TestEigenvalues_NonSquare(t *testing.T) {
	t.Parallel()

	_, err := matrix.Eigenvalues(MustDense(t, 2, 3))
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)
}
