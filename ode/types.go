// SPDX-License-Identifier: MIT

package ode

import "errors"

const (
	// DefaultStep is the calculator's default step h.
	DefaultStep = 0.05

	// DefaultSteps is the calculator's default step count n.
	DefaultSteps = 200
)

var (
	// ErrBadSteps indicates a negative step count.
	ErrBadSteps = errors.New("ode: step count must be >= 0")

	// ErrBadStep indicates a non-finite step size or initial condition.
	ErrBadStep = errors.New("ode: step and initial condition must be finite")
)

// Solution is the sampled trajectory: Ys[i] approximates y(Xs[i]).
// Both slices have the same length.
type Solution struct {
	Xs []float64
	Ys []float64
}

// Len returns the number of points.
func (s Solution) Len() int { return len(s.Xs) }

// Final returns the last point.
func (s Solution) Final() (x, y float64) {
	n := len(s.Xs)
	if n == 0 {
		return 0, 0
	}

	return s.Xs[n-1], s.Ys[n-1]
}
