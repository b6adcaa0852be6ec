// SPDX-License-Identifier: MIT

package roots

import (
	"errors"
	"fmt"
	"math"

	"github.com/katalvlaran/gcalc/eval"
)

var (
	// ErrBadInterval indicates lo > hi or a non-finite bound.
	ErrBadInterval = errors.New("roots: invalid interval")

	// ErrBadStep indicates a step that is not finite and positive.
	ErrBadStep = errors.New("roots: step must be finite and > 0")
)

// Interval is the closed scan domain [Lo, Hi].
type Interval struct {
	Lo, Hi float64
}

// Validate reports ErrBadInterval unless Lo <= Hi and both are finite.
func (iv Interval) Validate() error {
	if !finite(iv.Lo) || !finite(iv.Hi) || iv.Lo > iv.Hi {
		return fmt.Errorf("%w: [%g, %g]", ErrBadInterval, iv.Lo, iv.Hi)
	}

	return nil
}

// Find returns the roots of f on domain in scan order.
//
// Implementation:
//   - Stage 1: validate domain and step; sample f(lo).
//   - Stage 2: for i = 1, 2, … sample x_i = lo + i*step while x_i ≤ hi+1e-9.
//     With both neighbours finite:
//     |f(x_i)| < ExactTol records x_i;
//     f(x_{i-1})·f(x_i) < 0 records the bisection midpoint of that bracket.
//   - Stage 3: drop any root within DedupTol of an earlier one.
//
// Bisection keeps the half whose endpoint values differ in sign, stops after
// MaxIter halvings, when |f(mid)| < ResidualTol (collapsing onto mid), when the
// bracket is narrower than WidthTol, or at the first failed or non-finite mid.
// The recorded root is the final bracket's midpoint.
//
// Returns an empty (non-nil) slice when f fails everywhere.
//
// Errors: ErrBadInterval, ErrBadStep.
// Complexity: O((hi-lo)/step · MaxIter) evaluations of f.
func Find(f func(float64) eval.Result, domain Interval, step float64, opts ...Option) ([]float64, error) {
	if err := domain.Validate(); err != nil {
		return nil, err
	}
	if !finite(step) || step <= 0 {
		return nil, fmt.Errorf("%w: %g", ErrBadStep, step)
	}
	o := gatherOptions(opts...)

	var (
		found    []float64
		i        int
		x, prevX float64
		y, prevY eval.Result
		limit    = domain.Hi + upperSlack
	)
	prevX = domain.Lo
	prevY = f(prevX)
	for i = 1; ; i++ {
		x = domain.Lo + float64(i)*step
		if x > limit {
			break
		}
		y = f(x)
		if prevY.Finite() && y.Finite() {
			if math.Abs(y.Value) < o.exactTol {
				found = append(found, x)
			}
			if prevY.Value*y.Value < 0 {
				found = append(found, bisect(f, prevX, x, prevY.Value, &o))
			}
		}
		prevX, prevY = x, y
	}

	return dedup(found, o.dedupTol), nil
}

// Intersections returns the x where f and g agree, as the roots of f - g.
// A failure of either function at a sample counts as a failed sample.
func Intersections(f, g func(float64) eval.Result, domain Interval, step float64, opts ...Option) ([]float64, error) {
	return Find(eval.Sub(f, g), domain, step, opts...)
}

// bisect refines a sign-change bracket [a, b] with f(a) = fa.
func bisect(f func(float64) eval.Result, a, b, fa float64, o *Options) float64 {
	var (
		iter int
		m    float64
		fm   eval.Result
	)
	for iter = 0; iter < o.maxIter; iter++ {
		m = 0.5 * (a + b)
		fm = f(m)
		if !fm.Finite() {
			break
		}
		if math.Abs(fm.Value) < o.residualTol {
			a, b = m, m
			break
		}
		if fa*fm.Value < 0 {
			b = m
		} else {
			a, fa = m, fm.Value
		}
		if math.Abs(b-a) < o.widthTol {
			break
		}
	}

	return 0.5 * (a + b)
}

// dedup keeps each value unless it lies within tol of an already kept one.
// Complexity: O(n·k) for k kept values.
func dedup(xs []float64, tol float64) []float64 {
	out := make([]float64, 0, len(xs))
	for _, x := range xs {
		dup := false
		for _, u := range out {
			if math.Abs(u-x) < tol {
				dup = true
				break
			}
		}
		if !dup {
			out = append(out, x)
		}
	}

	return out
}

func finite(x float64) bool { return !math.IsNaN(x) && !math.IsInf(x, 0) }
