// SPDX-License-Identifier: MIT

// Package gcalc is the numeric engine behind a graphing calculator: it turns
// user-typed expressions into functions and runs the classic numeric methods
// a plotting front end needs over them.
//
// 🚀 What is gcalc?
//
//	A small, deterministic library plus a CLI that brings together:
//		• Expression evaluation with an explicit Result and variable Context
//		• Root finding: sampled scan + bisection, curve intersections
//		• Integration: composite Simpson, 2-D trapezoid over a grid
//		• Calculus helpers: one-sided limits, derivatives, tangent lines
//		• ODEs: classic fourth-order Runge–Kutta
//		• Linear algebra: RREF, LU, QR, eigenvalues, Solve, Det, Inverse
//		• Statistics: descriptive summary, histograms, distribution tables
//		• Polynomial regression via the normal equations
//
// ✨ Conventions
//
//   - Evaluation never panics across a package boundary: a failed sample is
//     eval.Result{OK: false}, a bad argument is a sentinel error.
//   - Every numeric routine takes plain func(float64) eval.Result callbacks,
//     so closures and compiled expressions are interchangeable.
//   - Tolerances and iteration caps are exported defaults with functional
//     options where a caller may reasonably tune them.
//
// Packages:
//
//	eval/  expression compiler, Result, Context, variable Memory
//	roots/  Find, Intersections
//	integrate/  Simpson, Double
//	calculus/  Limit, Derivative, SecondDerivative, Tangent
//	ode/  RK4
//	matrix/  Dense, RREF, LU, LUP, QR, Eigenvalues, vector helpers
//	regression/  PolyFit, Curve, Residuals
//	stats/  Describe, Histogram, distribution curves and tables
//	cmd/gcalc/  cobra CLI wiring all of the above, configured with viper
//
// Quick example:
//
//	f := eval.Univariate(eval.MustCompile("x^2 - 2", "x"), nil, "x")
//	xs, _ := roots.Find(f, roots.Interval{Lo: -10, Hi: 10}, roots.DefaultStep)
//	// xs ≈ [-1.414214 1.414214]
//
//	go install github.com/katalvlaran/gcalc/cmd/gcalc@latest
package gcalc
