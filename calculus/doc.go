// SPDX-License-Identifier: MIT

// Package calculus provides pointwise numeric calculus on a one-variable
// function: one-sided and two-sided limits, central-difference first and
// second derivatives, and the tangent line.
//
// Every operation evaluates f at a handful of points near x0. A failed or NaN
// evaluation surfaces as ErrUndefined; there is no retry with another step.
package calculus
