// SPDX-License-Identifier: MIT

// Package integrate computes definite integrals by fixed-grid quadrature.
//
//   - Simpson: composite Simpson's rule in one variable.
//   - Double: composite trapezoid rule on a rectangle in two variables.
//
// Both treat a failed or non-finite sample as 0 and never report it. A
// singularity inside the interval therefore produces a finite, possibly
// meaningless number; callers that need to detect it should inspect the
// integrand themselves.
package integrate
