package matrix_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/gcalc/matrix"
)

// requireQRProperties checks QᵀQ ≈ I, R upper-triangular and A ≈ Q·R.
func requireQRProperties(t *testing.T, a matrix.Matrix, tol float64) {
	t.Helper()

	q, r, err := matrix.QR(a)
	require.NoError(t, err)
	n := a.Cols()

	qt, err := matrix.Transpose(q)
	require.NoError(t, err)
	qtq, err := matrix.Mul(qt, q)
	require.NoError(t, err)
	id, err := matrix.Identity(n)
	require.NoError(t, err)
	MatricesClose(t, id, qtq, tol)

	var i, j int
	for i = 0; i < n; i++ {
		for j = 0; j < i; j++ {
			require.Zero(t, MustAt(t, r, i, j), "R[%d,%d] below diagonal", i, j)
		}
	}

	qr, err := matrix.Mul(q, r)
	require.NoError(t, err)
	MatricesClose(t, a, qr, tol)
}

func TestQR_Invertible(t *testing.T) {
	t.Parallel()

	requireQRProperties(t, MustRows(t, [][]float64{{12, -51, 4}, {6, 167, -68}, {-4, 24, -41}}), 1e-6)

	for _, n := range []int{2, 4, 6} {
		n := n
		t.Run(fmt.Sprintf("random %dx%d", n, n), func(t *testing.T) {
			a := MustDense(t, n, n)
			RandomFill(t, a, int64(n))
			requireQRProperties(t, a, 1e-6)
		})
	}
}

func TestQR_Tall(t *testing.T) {
	t.Parallel()

	a := MustRows(t, [][]float64{{1, 0}, {1, 1}, {1, 2}})
	q, r, err := matrix.QR(a)
	require.NoError(t, err)
	require.Equal(t, 3, q.Rows())
	require.Equal(t, 2, q.Cols())
	require.Equal(t, 2, r.Rows())
	requireQRProperties(t, a, 1e-9)
}

// TestQR_RankDeficient pins the degenerate-column behavior: a dependent column
// leaves a zero column in Q and a zero on R's diagonal, with no error.
func TestQR_RankDeficient(t *testing.T) {
	t.Parallel()

	a := MustRows(t, [][]float64{{1, 2}, {0, 0}})
	q, r, err := matrix.QR(a)
	require.NoError(t, err)
	require.Zero(t, MustAt(t, r, 1, 1))
	require.Zero(t, MustAt(t, q, 0, 1))
	require.Zero(t, MustAt(t, q, 1, 1))

	prod, err := matrix.Mul(q, r)
	require.NoError(t, err)
	MatricesClose(t, a, prod, 1e-12)
}

func TestQR_Nil(t *testing.T) {
	t.Parallel()

	_, _, err := matrix.QR(nil)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
}
