// SPDX-License-Identifier: MIT

// Package ode integrates first-order initial-value problems y' = f(x, y)
// with the classical fixed-step fourth-order Runge–Kutta method.
//
// There is no step-size control and no error estimate. A failed evaluation of
// f becomes NaN and propagates through every later point; the solver keeps
// stepping so that Solution always has n+1 points.
package ode
