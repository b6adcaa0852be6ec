// SPDX-License-Identifier: MIT

package roots

import "math"

const (
	// DefaultMaxIter caps bisection iterations per bracket.
	DefaultMaxIter = 50

	// DefaultResidualTol stops bisection once |f(mid)| falls below it.
	DefaultResidualTol = 1e-12

	// DefaultWidthTol stops bisection once the bracket is narrower than it.
	DefaultWidthTol = 1e-12

	// DefaultExactTol records a sample as a root when |f(x)| is below it.
	DefaultExactTol = 1e-14

	// DefaultDedupTol merges roots closer than it, keeping the first.
	DefaultDedupTol = 1e-6

	// DefaultStep is the scan step used by the calculator front end.
	DefaultStep = 0.5

	// DefaultIntersectionStep is the scan step used for curve intersections.
	DefaultIntersectionStep = 0.2

	// DefaultLo and DefaultHi bound the calculator's default scan interval.
	DefaultLo = -50.0
	DefaultHi = 50.0

	// upperSlack extends the last sample so hi itself is scanned despite
	// floating-point rounding of lo+i*step.
	upperSlack = 1e-9
)

const (
	panicMaxIterInvalid = "roots: WithMaxIter: n must be > 0"
	panicTolInvalid     = "roots: tolerance must be finite, non-negative"
)

// Option configures Find and Intersections.
type Option func(*Options)

// Options holds the resolved tolerances.
type Options struct {
	maxIter     int
	residualTol float64
	widthTol    float64
	exactTol    float64
	dedupTol    float64
}

func gatherOptions(opts ...Option) Options {
	o := Options{
		maxIter:     DefaultMaxIter,
		residualTol: DefaultResidualTol,
		widthTol:    DefaultWidthTol,
		exactTol:    DefaultExactTol,
		dedupTol:    DefaultDedupTol,
	}
	for _, fn := range opts {
		if fn != nil {
			fn(&o)
		}
	}

	return o
}

func checkTol(tol float64) {
	if math.IsNaN(tol) || math.IsInf(tol, 0) || tol < 0 {
		panic(panicTolInvalid)
	}
}

// WithMaxIter sets the bisection iteration cap. Panics when n <= 0.
func WithMaxIter(n int) Option {
	if n <= 0 {
		panic(panicMaxIterInvalid)
	}

	return func(o *Options) { o.maxIter = n }
}

// WithResidualTol sets the |f(mid)| early-exit threshold.
func WithResidualTol(tol float64) Option {
	checkTol(tol)

	return func(o *Options) { o.residualTol = tol }
}

// WithWidthTol sets the bracket-width early-exit threshold.
func WithWidthTol(tol float64) Option {
	checkTol(tol)

	return func(o *Options) { o.widthTol = tol }
}

// WithExactTol sets the threshold under which a sample is itself a root.
func WithExactTol(tol float64) Option {
	checkTol(tol)

	return func(o *Options) { o.exactTol = tol }
}

// WithDedupTol sets the distance under which two roots are merged.
// Zero keeps every recorded root.
func WithDedupTol(tol float64) Option {
	checkTol(tol)

	return func(o *Options) { o.dedupTol = tol }
}
