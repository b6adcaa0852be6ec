// SPDX-License-Identifier: MIT

// Package regression fits least-squares polynomials through the normal
// equations (VᵀV)c = Vᵀy, where V is the Vandermonde matrix of the
// abscissae. The system is assembled and solved with the matrix package.
//
// The normal equations square the condition number of V. High degrees on
// widely spread abscissae lose precision quickly; the degree is therefore
// clamped to [MinDegree, MaxDegree].
package regression
