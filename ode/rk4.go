// SPDX-License-Identifier: MIT

package ode

import (
	"fmt"
	"math"

	"github.com/katalvlaran/gcalc/eval"
)

// RK4 integrates y' = f(x, y) from (x0, y0) with n steps of size h.
//
// Algorithm Outline:
//  1. Xs[0] = x0, Ys[0] = y0.
//  2. For i = 0..n-1 with x = Xs[i], y = Ys[i]:
//     k1 = f(x, y)
//     k2 = f(x + h/2, y + h/2·k1)
//     k3 = f(x + h/2, y + h/2·k2)
//     k4 = f(x + h, y + h·k3)
//     Ys[i+1] = y + h/6·(k1 + 2k2 + 2k3 + k4)
//     Xs[i+1] = x0 + (i+1)·h
//
// The abscissae are computed from x0 rather than accumulated, so Xs has no
// drift. A negative h integrates backwards; h = 0 repeats the initial point.
//
// Errors:
//   - ErrBadSteps when n < 0.
//   - ErrBadStep when h, x0 or y0 is not finite.
//
// Complexity: 4n evaluations of f, O(n) memory.
func RK4(f func(x, y float64) eval.Result, x0, y0, h float64, n int) (Solution, error) {
	if n < 0 {
		return Solution{}, fmt.Errorf("%w: got %d", ErrBadSteps, n)
	}
	if !finite(h) || !finite(x0) || !finite(y0) {
		return Solution{}, fmt.Errorf("%w: h=%g x0=%g y0=%g", ErrBadStep, h, x0, y0)
	}

	sol := Solution{
		Xs: make([]float64, n+1),
		Ys: make([]float64, n+1),
	}
	sol.Xs[0], sol.Ys[0] = x0, y0

	var (
		i              int
		x, y           = x0, y0
		half           = 0.5 * h
		k1, k2, k3, k4 float64
	)
	for i = 0; i < n; i++ {
		k1 = f(x, y).Float()
		k2 = f(x+half, y+half*k1).Float()
		k3 = f(x+half, y+half*k2).Float()
		k4 = f(x+h, y+h*k3).Float()
		y += h / 6 * (k1 + 2*k2 + 2*k3 + k4)
		x = x0 + float64(i+1)*h
		sol.Xs[i+1], sol.Ys[i+1] = x, y
	}

	return sol, nil
}

func finite(v float64) bool { return !math.IsNaN(v) && !math.IsInf(v, 0) }
