package integrate_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/gcalc/eval"
	"github.com/katalvlaran/gcalc/integrate"
)

func BenchmarkSimpson(b *testing.B) {
	f := func(x float64) eval.Result { return eval.Success(math.Exp(-x * x)) }
	for i := 0; i < b.N; i++ {
		_, _ = integrate.Simpson(f, -5, 5, integrate.DefaultSteps)
	}
}

func BenchmarkDouble(b *testing.B) {
	f := func(x, y float64) eval.Result { return eval.Success(math.Exp(-x*x - y*y)) }
	for i := 0; i < b.N; i++ {
		_, _ = integrate.Double(f, -2, 2, -2, 2, integrate.DefaultGrid, integrate.DefaultGrid)
	}
}
