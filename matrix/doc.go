// Package matrix is the linear-algebra toolkit of the calculator engine.
//
// The matrix package provides:
//
//   - Matrix, a small bounds-checked interface, and Dense, its row-major
//     implementation, plus NewFromRows/ToRows for [][]float64 input and output.
//   - Elementary kernels: Add, Sub, Mul, Transpose, Scale, MatVec.
//   - RREF (Gauss–Jordan) with rank, LU (Doolittle, no pivoting), LUP with
//     Solve/Det/Inverse, QR (modified Gram–Schmidt) and Eigenvalues
//     (unshifted QR iteration).
//   - Vector helpers: Dot, Cross, Norm.
//
// Every operation copies its input; caller matrices are never mutated.
// Shape problems surface as ErrDimensionMismatch; near-singular pivots in
// RREF/LU/QR are absorbed by tolerances (see options.go) rather than
// reported, while LUP-based solvers report ErrSingular.
package matrix
