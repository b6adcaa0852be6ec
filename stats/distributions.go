// SPDX-License-Identifier: MIT

package stats

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat/distuv"
)

// DefaultCurvePoints is the sample count of NormalCurve and UniformCurve.
const DefaultCurvePoints = 201

// Point is one (x, density-or-mass) pair of a tabulated distribution.
type Point struct {
	X, P float64
}

func finite(x float64) bool { return !math.IsNaN(x) && !math.IsInf(x, 0) }

// NormalPDF is the density of N(mu, sigma²) at x.
// Errors: ErrBadParam unless mu is finite and sigma > 0.
func NormalPDF(x, mu, sigma float64) (float64, error) {
	if !finite(mu) || !finite(sigma) || sigma <= 0 {
		return 0, fmt.Errorf("%w: normal mu=%g sigma=%g", ErrBadParam, mu, sigma)
	}

	return distuv.Normal{Mu: mu, Sigma: sigma}.Prob(x), nil
}

// BinomialPMF is P(K = k) for K ~ Binomial(n, p). k outside [0, n] has mass 0.
// Errors: ErrBadParam unless n >= 0 and 0 <= p <= 1.
func BinomialPMF(k, n int, p float64) (float64, error) {
	if n < 0 || !(p >= 0 && p <= 1) {
		return 0, fmt.Errorf("%w: binomial n=%d p=%g", ErrBadParam, n, p)
	}
	if k < 0 || k > n {
		return 0, nil
	}
	// distuv.Binomial rejects the degenerate p = 0 and p = 1
	switch p {
	case 0:
		return indicator(k == 0), nil
	case 1:
		return indicator(k == n), nil
	}

	return distuv.Binomial{N: float64(n), P: p}.Prob(float64(k)), nil
}

// PoissonPMF is P(K = k) for K ~ Poisson(lambda). Negative k has mass 0.
// Errors: ErrBadParam unless lambda > 0 and finite.
func PoissonPMF(k int, lambda float64) (float64, error) {
	if !finite(lambda) || lambda <= 0 {
		return 0, fmt.Errorf("%w: poisson lambda=%g", ErrBadParam, lambda)
	}
	if k < 0 {
		return 0, nil
	}

	return distuv.Poisson{Lambda: lambda}.Prob(float64(k)), nil
}

// UniformPDF is the density of U(a, b) at x: 1/(b-a) on [a, b], else 0.
// Errors: ErrBadParam unless a < b, both finite.
func UniformPDF(x, a, b float64) (float64, error) {
	if !finite(a) || !finite(b) || b <= a {
		return 0, fmt.Errorf("%w: uniform a=%g b=%g", ErrBadParam, a, b)
	}
	if x < a || x > b {
		return 0, nil
	}

	return distuv.Uniform{Min: a, Max: b}.Prob(x), nil
}

func indicator(ok bool) float64 {
	if ok {
		return 1
	}

	return 0
}

// NormalCurve tabulates NormalPDF at n points spanning mu ± 4·sigma.
func NormalCurve(mu, sigma float64, n int) ([]Point, error) {
	if _, err := NormalPDF(mu, mu, sigma); err != nil {
		return nil, err
	}
	if n < 2 {
		return nil, fmt.Errorf("%w: n=%d", ErrBadParam, n)
	}
	d := distuv.Normal{Mu: mu, Sigma: sigma}
	xs := floats.Span(make([]float64, n), mu-4*sigma, mu+4*sigma)
	out := make([]Point, n)
	for i, x := range xs {
		out[i] = Point{X: x, P: d.Prob(x)}
	}

	return out, nil
}

// BinomialTable tabulates BinomialPMF for k = 0..n.
func BinomialTable(n int, p float64) ([]Point, error) {
	if n < 0 {
		return nil, fmt.Errorf("%w: binomial n=%d", ErrBadParam, n)
	}
	out := make([]Point, 0, n+1)
	for k := 0; k <= n; k++ {
		pk, err := BinomialPMF(k, n, p)
		if err != nil {
			return nil, err
		}
		out = append(out, Point{X: float64(k), P: pk})
	}

	return out, nil
}

// PoissonTableSize returns max(10, ⌈4·lambda⌉), the row count of
// PoissonTable. Callers bounding output size check it first.
func PoissonTableSize(lambda float64) float64 {
	return math.Max(10, math.Ceil(4*lambda))
}

// PoissonTable tabulates PoissonPMF for k = 0..PoissonTableSize(lambda)-1.
func PoissonTable(lambda float64) ([]Point, error) {
	if _, err := PoissonPMF(0, lambda); err != nil {
		return nil, err
	}
	out := make([]Point, int(PoissonTableSize(lambda)))
	for k := range out {
		pk, _ := PoissonPMF(k, lambda)
		out[k] = Point{X: float64(k), P: pk}
	}

	return out, nil
}

// UniformCurve tabulates UniformPDF at n points spanning the support widened
// by 20% on each side.
func UniformCurve(a, b float64, n int) ([]Point, error) {
	if _, err := UniformPDF(a, a, b); err != nil {
		return nil, err
	}
	if n < 2 {
		return nil, fmt.Errorf("%w: n=%d", ErrBadParam, n)
	}
	pad := 0.2 * (b - a)
	xs := floats.Span(make([]float64, n), a-pad, b+pad)
	out := make([]Point, n)
	for i, x := range xs {
		out[i].X = x
		out[i].P, _ = UniformPDF(x, a, b)
	}

	return out, nil
}
