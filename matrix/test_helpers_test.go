// SPDX-License-Identifier: MIT
// Package matrix_test contains test helpers
//
// Purpose:
//   - Provide small, deterministic fixtures and comparison utilities for kernels.
//   - Keep fixture data finite unless a test is explicitly about NaN/Inf.

package matrix_test

import (
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/gcalc/matrix"
)

// hide wraps any Matrix to hide its concrete type from type assertions,
// forcing the generic At/Set fallback paths in code under test.
type hide struct{ matrix.Matrix }

// MustDense allocates an r×c *Dense or fails the test.
func MustDense(t *testing.T, r, c int) *matrix.Dense {
	t.Helper()
	m, err := matrix.NewDense(r, c)
	require.NoError(t, err)

	return m
}

// MustRows builds a *Dense from literal rows or fails the test.
func MustRows(t *testing.T, rows [][]float64) *matrix.Dense {
	t.Helper()
	m, err := matrix.NewFromRows(rows)
	require.NoError(t, err)

	return m
}

// MustAt reads m[i,j] or fails the test.
func MustAt(t *testing.T, m matrix.Matrix, i, j int) float64 {
	t.Helper()
	v, err := m.At(i, j)
	require.NoError(t, err)

	return v
}

// RandomFill fills m with deterministic U(-1,1) values by seed.
func RandomFill(t *testing.T, m matrix.Matrix, seed int64) {
	t.Helper()
	rng := rand.New(rand.NewSource(seed))
	var i, j int
	for i = 0; i < m.Rows(); i++ {
		for j = 0; j < m.Cols(); j++ {
			require.NoError(t, m.Set(i, j, rng.Float64()*2-1))
		}
	}
}

// CompareClose asserts |want[i][j] - got(i,j)| ≤ tol for every cell.
func CompareClose(t *testing.T, want [][]float64, got matrix.Matrix, tol float64) {
	t.Helper()
	require.Equal(t, len(want), got.Rows(), "rows")
	require.Equal(t, len(want[0]), got.Cols(), "cols")
	var i, j int
	for i = 0; i < len(want); i++ {
		for j = 0; j < len(want[i]); j++ {
			require.InDeltaf(t, want[i][j], MustAt(t, got, i, j), tol, "cell [%d,%d]", i, j)
		}
	}
}

// MatricesClose asserts a and b agree cell by cell within tol.
func MatricesClose(t *testing.T, a, b matrix.Matrix, tol float64) {
	t.Helper()
	want, err := matrix.ToRows(a)
	require.NoError(t, err)
	CompareClose(t, want, b, tol)
}

// Symmetric returns (R + Rᵀ)/2 for a random n×n R, which has real eigenvalues.
func Symmetric(t *testing.T, n int, seed int64) *matrix.Dense {
	t.Helper()
	r := MustDense(t, n, n)
	RandomFill(t, r, seed)
	s := MustDense(t, n, n)
	var i, j int
	for i = 0; i < n; i++ {
		for j = 0; j < n; j++ {
			require.NoError(t, s.Set(i, j, 0.5*(MustAt(t, r, i, j)+MustAt(t, r, j, i))))
		}
	}

	return s
}

// isFinite reports whether v is neither NaN nor ±Inf.
func isFinite(v float64) bool { return !math.IsNaN(v) && !math.IsInf(v, 0) }
