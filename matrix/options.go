// SPDX-License-Identifier: MIT

// Package matrix: functional configuration for the numeric kernels. This file defines:
//   - Option / Options (functional options with internal state),
//   - documented defaults (constants),
//   - WithX constructors with strong validation (panic on nonsensical values),
//   - gatherOptions helper (internal) that resolves defaults.
//
// Design goals:
//   - Deterministic behavior: no global state, no implicit randomness.
//   - Every tolerance and iteration cap used by RREF/LU/Eigenvalues is a
//     knob here instead of an inline literal.
//   - Safe by construction: panic only on invalid parameters (programmer error).
package matrix

import "math"

// ---------- Defaults (single source of truth) ----------

const (
	// DefaultPivotTol is the magnitude below which an RREF pivot candidate is
	// treated as zero and the search moves to the next row.
	DefaultPivotTol = 1e-12

	// DefaultRankTol is the magnitude above which a reduced row counts toward rank.
	DefaultRankTol = 1e-10

	// DefaultPivotEpsilon replaces an exactly-zero U[i][i] in the non-pivoting LU.
	DefaultPivotEpsilon = 1e-12

	// DefaultSingularTol is the largest |pivot| LUP still treats as singular.
	DefaultSingularTol = 0.0

	// DefaultEigenIterations caps the unshifted QR iteration in Eigenvalues.
	DefaultEigenIterations = 80

	// DefaultEigenTol enables an early exit once every strictly-lower entry of
	// A_k is at most this magnitude. Zero keeps the fixed iteration count.
	DefaultEigenTol = 0.0

	// DefaultValidateNaNInf toggles strict finite-value validation on ingestion and Set.
	// Off by default: non-finite values flow through kernels unchanged.
	DefaultValidateNaNInf = false
)

// ---------- Internal panic messages (no magic strings) ----------

const (
	panicPivotTolInvalid   = "matrix: WithPivotTol: tol must be finite, non-negative"
	panicRankTolInvalid    = "matrix: WithRankTol: tol must be finite, non-negative"
	panicEpsilonInvalid    = "matrix: WithPivotEpsilon: eps must be finite, positive"
	panicSingularInvalid   = "matrix: WithSingularTol: tol must be finite, non-negative"
	panicIterationsInvalid = "matrix: WithIterations: n must be > 0"
	panicEigenTolInvalid   = "matrix: WithEigenTol: tol must be finite, non-negative"
)

// ---------- Public option type (functional) ----------

// Option mutates internal options. Safe to apply repeatedly (idempotent).
// Constructors MUST panic only on nonsensical values (programmer error).
type Option func(*Options)

// Options stores the effective configuration after applying Option setters.
// Fields are unexported; public entry points accept `...Option` and resolve
// them via gatherOptions.
type Options struct {
	pivotTol       float64 // RREF zero-pivot threshold
	rankTol        float64 // RREF rank threshold
	pivotEpsilon   float64 // LU zero-pivot substitute
	singularTol    float64 // LUP singular threshold
	eigenIters     int     // QR-iteration cap
	eigenTol       float64 // QR-iteration early exit (0 = off)
	validateNaNInf bool    // finite-only ingestion
}

// defaultOptions returns Options populated from the Default* constants.
func defaultOptions() Options {
	return Options{
		pivotTol:       DefaultPivotTol,
		rankTol:        DefaultRankTol,
		pivotEpsilon:   DefaultPivotEpsilon,
		singularTol:    DefaultSingularTol,
		eigenIters:     DefaultEigenIterations,
		eigenTol:       DefaultEigenTol,
		validateNaNInf: DefaultValidateNaNInf,
	}
}

// gatherOptions applies opts over the defaults in order; later options win.
// nil entries are skipped.
// Complexity: O(len(opts)).
func gatherOptions(opts ...Option) Options {
	o := defaultOptions()
	for _, fn := range opts {
		if fn != nil {
			fn(&o)
		}
	}

	return o
}

// isNonFinite reports whether x is NaN or ±Inf.
func isNonFinite(x float64) bool { return math.IsNaN(x) || math.IsInf(x, 0) }

// ---------- Constructors (WithX) ----------

// WithPivotTol sets the RREF zero-pivot threshold.
// Panics when tol is negative or non-finite.
func WithPivotTol(tol float64) Option {
	if isNonFinite(tol) || tol < 0 {
		panic(panicPivotTolInvalid)
	}

	return func(o *Options) { o.pivotTol = tol }
}

// WithRankTol sets the magnitude above which a reduced row counts toward rank.
// Panics when tol is negative or non-finite.
func WithRankTol(tol float64) Option {
	if isNonFinite(tol) || tol < 0 {
		panic(panicRankTolInvalid)
	}

	return func(o *Options) { o.rankTol = tol }
}

// WithPivotEpsilon sets the substitute used by LU for an exactly-zero U[i][i].
// Panics when eps is not a finite positive number.
//
// Notes:
//   - The substitute keeps the factorization finite; it does not make it
//     meaningful. Use LUP for solving.
func WithPivotEpsilon(eps float64) Option {
	if isNonFinite(eps) || eps <= 0 {
		panic(panicEpsilonInvalid)
	}

	return func(o *Options) { o.pivotEpsilon = eps }
}

// WithSingularTol sets the largest |pivot| that LUP treats as singular.
// Panics when tol is negative or non-finite.
func WithSingularTol(tol float64) Option {
	if isNonFinite(tol) || tol < 0 {
		panic(panicSingularInvalid)
	}

	return func(o *Options) { o.singularTol = tol }
}

// WithIterations sets the QR-iteration count used by Eigenvalues.
// Panics when n <= 0.
func WithIterations(n int) Option {
	if n <= 0 {
		panic(panicIterationsInvalid)
	}

	return func(o *Options) { o.eigenIters = n }
}

// WithEigenTol enables the Eigenvalues early exit at the given sub-diagonal magnitude.
// Panics when tol is negative or non-finite. Zero disables the early exit.
func WithEigenTol(tol float64) Option {
	if isNonFinite(tol) || tol < 0 {
		panic(panicEigenTolInvalid)
	}

	return func(o *Options) { o.eigenTol = tol }
}

// WithValidateNaNInf makes NewFromRows reject NaN/±Inf entries and makes the
// resulting Dense reject them on Set.
func WithValidateNaNInf() Option {
	return func(o *Options) { o.validateNaNInf = true }
}
