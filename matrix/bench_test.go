package matrix_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/gcalc/matrix"
)

func benchDense(b *testing.B, n int) *matrix.Dense {
	b.Helper()
	rng := rand.New(rand.NewSource(int64(n)))
	rows := make([][]float64, n)
	for i := range rows {
		rows[i] = make([]float64, n)
		for j := range rows[i] {
			rows[i][j] = rng.Float64()*2 - 1
		}
	}
	m, err := matrix.NewFromRows(rows)
	if err != nil {
		b.Fatal(err)
	}

	return m
}

func BenchmarkMul32(b *testing.B) {
	a := benchDense(b, 32)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = matrix.Mul(a, a)
	}
}

func BenchmarkQR32(b *testing.B) {
	a := benchDense(b, 32)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _, _ = matrix.QR(a)
	}
}

func BenchmarkSolve32(b *testing.B) {
	a := benchDense(b, 32)
	rhs := make([]float64, 32)
	for i := range rhs {
		rhs[i] = float64(i)
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = matrix.Solve(a, rhs)
	}
}

func BenchmarkEigenvalues8(b *testing.B) {
	a := benchDense(b, 8)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = matrix.Eigenvalues(a)
	}
}
