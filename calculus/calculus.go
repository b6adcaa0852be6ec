// SPDX-License-Identifier: MIT

package calculus

import (
	"errors"
	"fmt"
	"math"
	"strings"

	"github.com/katalvlaran/gcalc/eval"
)

const (
	// DerivativeStep is the central-difference half-width of Derivative.
	DerivativeStep = 1e-5

	// SecondDerivativeStep is the half-width of SecondDerivative.
	SecondDerivativeStep = 1e-3

	// limitRelStep scales the limit probe distance with |point|.
	limitRelStep = 1e-6

	// limitMinStep is the smallest limit probe distance.
	limitMinStep = 1e-9
)

var (
	// ErrUndefined indicates that f failed or was NaN at a probe point.
	ErrUndefined = errors.New("calculus: undefined at probe point")

	// ErrBadDirection is returned by ParseDirection for unknown input.
	ErrBadDirection = errors.New("calculus: unknown limit direction")
)

// Direction selects which side(s) Limit approaches from.
type Direction int

const (
	// Both averages the left and right probes.
	Both Direction = iota
	// Left probes at point - h.
	Left
	// Right probes at point + h.
	Right
)

// String implements fmt.Stringer.
func (d Direction) String() string {
	switch d {
	case Left:
		return "left"
	case Right:
		return "right"
	default:
		return "both"
	}
}

// ParseDirection accepts "left"/"-", "right"/"+" and "both"/"" (case-insensitive).
func ParseDirection(s string) (Direction, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "both", "0":
		return Both, nil
	case "left", "-", "-1":
		return Left, nil
	case "right", "+", "1":
		return Right, nil
	}

	return Both, fmt.Errorf("%w: %q", ErrBadDirection, s)
}

// LimitStep returns the probe distance used by Limit at point:
// max(1e-9, |point|·1e-6), or 1e-6 when point is 0.
func LimitStep(point float64) float64 {
	h := math.Abs(point) * limitRelStep
	if h == 0 {
		h = limitRelStep
	}

	return math.Max(limitMinStep, h)
}

// Limit estimates lim f(x) as x → point from dir by evaluating f at
// point ± LimitStep(point). Both returns the mean of the two probes, so a
// jump discontinuity yields the midpoint of the jump.
//
// ±Inf probes are returned as-is (a one-sided infinite limit); a failed
// probe or a NaN result is ErrUndefined.
func Limit(f func(float64) eval.Result, point float64, dir Direction) (float64, error) {
	h := LimitStep(point)

	var v float64
	switch dir {
	case Left:
		v = f(point - h).Float()
	case Right:
		v = f(point + h).Float()
	default:
		v = 0.5 * (f(point-h).Float() + f(point+h).Float())
	}
	if math.IsNaN(v) {
		return v, fmt.Errorf("%w: limit at %g (%s)", ErrUndefined, point, dir)
	}

	return v, nil
}

// Derivative returns the central difference (f(x0+h) - f(x0-h)) / 2h with
// h = DerivativeStep.
// Errors: ErrUndefined when either probe is failed or non-finite.
func Derivative(f func(float64) eval.Result, x0 float64) (float64, error) {
	y1, y0 := f(x0+DerivativeStep), f(x0-DerivativeStep)
	if !y1.Finite() || !y0.Finite() {
		return math.NaN(), fmt.Errorf("%w: derivative at %g", ErrUndefined, x0)
	}

	return (y1.Value - y0.Value) / (2 * DerivativeStep), nil
}

// SecondDerivative returns (f(x0+h) - 2f(x0) + f(x0-h)) / h² with
// h = SecondDerivativeStep.
// Errors: ErrUndefined when any probe is failed or non-finite.
func SecondDerivative(f func(float64) eval.Result, x0 float64) (float64, error) {
	const h = SecondDerivativeStep
	y1, y0, ym1 := f(x0+h), f(x0), f(x0-h)
	if !y1.Finite() || !y0.Finite() || !ym1.Finite() {
		return math.NaN(), fmt.Errorf("%w: second derivative at %g", ErrUndefined, x0)
	}

	return (y1.Value - 2*y0.Value + ym1.Value) / (h * h), nil
}

// Line is the tangent y = Y0 + Slope·(x - X0).
type Line struct {
	X0, Y0, Slope float64
}

// At evaluates the line at x.
func (l Line) At(x float64) float64 { return l.Y0 + l.Slope*(x-l.X0) }

// Intercept returns the line's value at x = 0.
func (l Line) Intercept() float64 { return l.At(0) }

// String renders the line in slope-intercept form.
func (l Line) String() string {
	b := l.Intercept()
	if b < 0 {
		return fmt.Sprintf("y = %g·x - %g", l.Slope, -b)
	}

	return fmt.Sprintf("y = %g·x + %g", l.Slope, b)
}

// Tangent returns the tangent line of f at x0.
// Errors: ErrUndefined when f(x0) or a derivative probe is failed or non-finite.
func Tangent(f func(float64) eval.Result, x0 float64) (Line, error) {
	y0 := f(x0)
	if !y0.Finite() {
		return Line{}, fmt.Errorf("%w: tangent at %g", ErrUndefined, x0)
	}
	slope, err := Derivative(f, x0)
	if err != nil {
		return Line{}, err
	}

	return Line{X0: x0, Y0: y0.Value, Slope: slope}, nil
}
