// SPDX-License-Identifier: MIT

package regression

import (
	"errors"
	"fmt"
	"math"

	"github.com/katalvlaran/gcalc/matrix"
)

const (
	// MinDegree and MaxDegree bound the fitted polynomial degree.
	MinDegree = 1
	MaxDegree = 8

	// DefaultCurvePoints is the sample count used to draw a fitted curve.
	DefaultCurvePoints = 200
)

var (
	// ErrEmpty indicates that no y values were supplied.
	ErrEmpty = errors.New("regression: no data")

	// ErrLengthMismatch indicates len(xs) != len(ys).
	ErrLengthMismatch = errors.New("regression: x and y length mismatch")

	// ErrBadCurve indicates an invalid sampling request for Curve.
	ErrBadCurve = errors.New("regression: curve needs n >= 2 and finite lo <= hi")
)

// ClampDegree limits degree to [MinDegree, MaxDegree].
func ClampDegree(degree int) int {
	if degree < MinDegree {
		return MinDegree
	}
	if degree > MaxDegree {
		return MaxDegree
	}

	return degree
}

// PolyFit returns the coefficients c[0..d] (ascending powers) of the
// least-squares polynomial of degree d = ClampDegree(degree) through (xs, ys).
//
// Implementation:
//   - Stage 1: default xs to 0..len(ys)-1 when empty; validate lengths.
//   - Stage 2: V[i][p] = xs[i]^p; A = VᵀV; b = Vᵀy.
//   - Stage 3: solve A·c = b with partial pivoting (matrix.Solve).
//
// With fewer distinct abscissae than d+1 the system is singular and the
// wrapped matrix.ErrSingular is returned.
//
// Errors: ErrEmpty, ErrLengthMismatch, matrix.ErrSingular.
// Complexity: O(n·d²) to assemble, O(d³) to solve.
func PolyFit(xs, ys []float64, degree int) ([]float64, error) {
	if len(ys) == 0 {
		return nil, ErrEmpty
	}
	if len(xs) == 0 {
		xs = indices(len(ys))
	}
	if len(xs) != len(ys) {
		return nil, fmt.Errorf("%w: %d x values, %d y values", ErrLengthMismatch, len(xs), len(ys))
	}
	d := ClampDegree(degree)

	v, err := vandermonde(xs, d)
	if err != nil {
		return nil, fmt.Errorf("regression: PolyFit: %w", err)
	}
	vt, err := matrix.Transpose(v)
	if err != nil {
		return nil, fmt.Errorf("regression: PolyFit: %w", err)
	}
	a, err := matrix.Mul(vt, v)
	if err != nil {
		return nil, fmt.Errorf("regression: PolyFit: %w", err)
	}
	b, err := matrix.MatVec(vt, ys)
	if err != nil {
		return nil, fmt.Errorf("regression: PolyFit: %w", err)
	}
	coeffs, err := matrix.Solve(a, b)
	if err != nil {
		return nil, fmt.Errorf("regression: PolyFit degree %d: %w", d, err)
	}

	return coeffs, nil
}

// vandermonde builds the n×(d+1) matrix V[i][p] = xs[i]^p.
func vandermonde(xs []float64, d int) (*matrix.Dense, error) {
	v, err := matrix.NewDense(len(xs), d+1)
	if err != nil {
		return nil, err
	}
	var (
		i, p int
		pow  float64
	)
	for i = 0; i < len(xs); i++ {
		pow = 1
		for p = 0; p <= d; p++ {
			if err = v.Set(i, p, pow); err != nil {
				return nil, err
			}
			pow *= xs[i]
		}
	}

	return v, nil
}

func indices(n int) []float64 {
	out := make([]float64, n)
	for i := range out {
		out[i] = float64(i)
	}

	return out
}

// Eval evaluates Σ coeffs[p]·x^p by Horner's rule. Empty coeffs give 0.
func Eval(coeffs []float64, x float64) float64 {
	var y float64
	for p := len(coeffs) - 1; p >= 0; p-- {
		y = y*x + coeffs[p]
	}

	return y
}

// Curve samples the polynomial at n evenly spaced points from lo to hi
// inclusive and returns the abscissae and values.
// Errors: ErrBadCurve when n < 2, lo > hi or a bound is not finite.
func Curve(coeffs []float64, lo, hi float64, n int) ([]float64, []float64, error) {
	if n < 2 || lo > hi || math.IsNaN(lo) || math.IsInf(lo, 0) || math.IsNaN(hi) || math.IsInf(hi, 0) {
		return nil, nil, fmt.Errorf("%w: n=%d [%g, %g]", ErrBadCurve, n, lo, hi)
	}
	xs := make([]float64, n)
	ys := make([]float64, n)
	step := (hi - lo) / float64(n-1)
	for i := range xs {
		xs[i] = lo + float64(i)*step
		ys[i] = Eval(coeffs, xs[i])
	}

	return xs, ys, nil
}

// Residuals returns ys[i] - Eval(coeffs, xs[i]) and the coefficient of
// determination R². xs defaults to indices like PolyFit. R² is NaN when ys
// is constant.
// Errors: ErrEmpty, ErrLengthMismatch.
func Residuals(coeffs, xs, ys []float64) ([]float64, float64, error) {
	if len(ys) == 0 {
		return nil, 0, ErrEmpty
	}
	if len(xs) == 0 {
		xs = indices(len(ys))
	}
	if len(xs) != len(ys) {
		return nil, 0, fmt.Errorf("%w: %d x values, %d y values", ErrLengthMismatch, len(xs), len(ys))
	}
	var mean, ssRes, ssTot float64
	for _, y := range ys {
		mean += y
	}
	mean /= float64(len(ys))
	res := make([]float64, len(ys))
	for i := range ys {
		res[i] = ys[i] - Eval(coeffs, xs[i])
		ssRes += res[i] * res[i]
		ssTot += (ys[i] - mean) * (ys[i] - mean)
	}
	if ssTot == 0 {
		return res, math.NaN(), nil
	}

	return res, 1 - ssRes/ssTot, nil
}
