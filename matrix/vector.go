// SPDX-License-Identifier: MIT

package matrix

import (
	"fmt"
	"math"
)

const (
	opDot   = "Dot"
	opCross = "Cross"
	opNorm  = "Norm"
)

// Dot returns Σ a[i]*b[i].
// Errors: ErrNilMatrix (nil operand), ErrDimensionMismatch (length differs).
// Complexity: O(n).
func Dot(a, b []float64) (float64, error) {
	if a == nil {
		return 0, matrixErrorf(opDot, ErrNilMatrix)
	}
	if err := ValidateVecLen(b, len(a)); err != nil {
		return 0, matrixErrorf(opDot, err)
	}
	sum := ZeroSum
	for i := range a {
		sum += a[i] * b[i]
	}

	return sum, nil
}

// Cross returns the 3-D cross product a × b.
// Errors: ErrDimensionMismatch unless both vectors have length 3.
// Complexity: O(1).
func Cross(a, b []float64) ([]float64, error) {
	if len(a) != 3 || len(b) != 3 {
		return nil, matrixErrorf(opCross, fmt.Errorf("len %d×%d, want 3×3: %w", len(a), len(b), ErrDimensionMismatch))
	}

	return []float64{
		a[1]*b[2] - a[2]*b[1],
		a[2]*b[0] - a[0]*b[2],
		a[0]*b[1] - a[1]*b[0],
	}, nil
}

// Norm returns the Euclidean length of a.
// Errors: ErrNilMatrix for a nil vector.
// Complexity: O(n).
func Norm(a []float64) (float64, error) {
	if a == nil {
		return 0, matrixErrorf(opNorm, ErrNilMatrix)
	}
	sum := ZeroSum
	for _, v := range a {
		sum += v * v
	}

	return math.Sqrt(sum), nil
}
