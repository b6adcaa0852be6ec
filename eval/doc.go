// SPDX-License-Identifier: MIT

// Package eval is the expression-evaluation boundary of the calculator engine.
//
// The numeric algorithms never see expression strings or evaluator errors. They
// call a function that returns a Result: either a success scalar or an explicit
// failure marker. This package provides:
//
//   - Result, the success/failure scalar every sample site consumes.
//   - Context, a caller-owned map of named values merged per call with the
//     evaluation variable(s). There is no global variable state.
//   - Memory, an explicit named-variable store that produces Contexts.
//   - Expression, the evaluation capability, with two implementations: Func
//     for plain Go closures and Compiled for expression strings parsed by
//     github.com/expr-lang/expr.
//   - Univariate and Bivariate, which bind one or two variables and yield the
//     func(float64) Result / func(x, y float64) Result shapes used by the
//     roots, integrate, calculus and ode packages.
//
// Expression syntax is expr-lang's, with ^ as power and a math environment:
// sin cos tan asin acos atan atan2 sinh cosh tanh exp ln log log10 log2 sqrt
// cbrt pow hypot mod sign, the builtins abs floor ceil round min max, and the
// constants pi and e. Every number literal is a float64, so "7/2" is 3.5 and
// large integer products saturate to ±Inf instead of wrapping. "a % b" is
// mod(a, b), the truncated remainder with the sign of a.
package eval
