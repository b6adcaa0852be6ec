// SPDX-License-Identifier: MIT

package integrate

import (
	"errors"
	"fmt"
	"math"

	"github.com/katalvlaran/gcalc/eval"
)

const (
	// DefaultSteps is the Simpson subinterval count used by the calculator.
	DefaultSteps = 2000

	// DefaultGrid is the per-axis cell count of Double.
	DefaultGrid = 80
)

var (
	// ErrBadSteps indicates a non-positive subinterval count.
	ErrBadSteps = errors.New("integrate: steps must be > 0")

	// ErrBadBounds indicates a non-finite integration bound.
	ErrBadBounds = errors.New("integrate: bounds must be finite")
)

// Simpson approximates ∫_a^b f(x) dx with the composite Simpson rule.
//
// Implementation:
//   - dx = (b-a)/steps; sample x_i = a + i*dx for i = 0..steps.
//   - Weights 1, 4, 2, 4, …, 2, 4, 1 (w_i = 4 for odd i, 2 for even interior i).
//   - Result (dx/3)·Σ w_i·y_i, where a failed or non-finite y_i counts as 0.
//
// Behavior highlights:
//   - b < a integrates "backwards" and flips the sign; a == b returns 0.
//   - An odd steps is accepted. The last panel then carries weight 4 and the
//     rule loses its order; pass an even count for Simpson accuracy.
//   - Deterministic: identical inputs give bit-identical results.
//
// Errors: ErrBadSteps (steps <= 0), ErrBadBounds.
// Complexity: O(steps) evaluations of f.
func Simpson(f func(float64) eval.Result, a, b float64, steps int) (float64, error) {
	if steps <= 0 {
		return 0, fmt.Errorf("%w: got %d", ErrBadSteps, steps)
	}
	if !finite(a) || !finite(b) {
		return 0, fmt.Errorf("%w: [%g, %g]", ErrBadBounds, a, b)
	}

	var (
		i   int
		sum float64
		dx  = (b - a) / float64(steps)
	)
	for i = 0; i <= steps; i++ {
		sum += simpsonWeight(i, steps) * sample(f(a+float64(i)*dx))
	}

	return dx / 3 * sum, nil
}

func simpsonWeight(i, steps int) float64 {
	switch {
	case i == 0 || i == steps:
		return 1
	case i%2 == 1:
		return 4
	default:
		return 2
	}
}

// Double approximates ∬ f(x, y) dy dx over [x1,x2]×[y1,y2] on an nx×ny grid
// with the composite trapezoid rule.
//
// Implementation:
//   - hx = (x2-x1)/nx, hy = (y2-y1)/ny; nodes (x1+i*hx, y1+j*hy).
//   - Node weight is the product of per-axis weights (1/2 at the edges, 1 inside).
//   - Result hx·hy·Σ w_ij·f_ij; failed or non-finite samples count as 0.
//
// Errors: ErrBadSteps (nx or ny <= 0), ErrBadBounds.
// Complexity: O(nx·ny) evaluations of f.
func Double(f func(x, y float64) eval.Result, x1, x2, y1, y2 float64, nx, ny int) (float64, error) {
	if nx <= 0 || ny <= 0 {
		return 0, fmt.Errorf("%w: grid %d×%d", ErrBadSteps, nx, ny)
	}
	if !finite(x1) || !finite(x2) || !finite(y1) || !finite(y2) {
		return 0, fmt.Errorf("%w: [%g, %g]×[%g, %g]", ErrBadBounds, x1, x2, y1, y2)
	}

	var (
		i, j   int
		wx, x  float64
		sum    float64
		hx, hy = (x2 - x1) / float64(nx), (y2 - y1) / float64(ny)
	)
	for i = 0; i <= nx; i++ {
		x = x1 + float64(i)*hx
		wx = trapezoidWeight(i, nx)
		for j = 0; j <= ny; j++ {
			sum += wx * trapezoidWeight(j, ny) * sample(f(x, y1+float64(j)*hy))
		}
	}

	return sum * hx * hy, nil
}

func trapezoidWeight(i, n int) float64 {
	if i == 0 || i == n {
		return 0.5
	}

	return 1
}

// sample maps a failed or non-finite Result to 0.
func sample(r eval.Result) float64 {
	if !r.Finite() {
		return 0
	}

	return r.Value
}

func finite(x float64) bool { return !math.IsNaN(x) && !math.IsInf(x, 0) }
