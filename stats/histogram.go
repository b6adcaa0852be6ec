// SPDX-License-Identifier: MIT

package stats

import (
	"fmt"
	"math"
	"sort"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// Bin is one histogram bucket [Lo, Hi). The last bin also holds Hi.
type Bin struct {
	Lo, Hi float64
	Count  int
}

// SturgesBins returns ⌈log2(n)⌉ + 1, the default bin count for n samples.
func SturgesBins(n int) int {
	if n <= 1 {
		return 1
	}

	return int(math.Ceil(math.Log2(float64(n)))) + 1
}

// Histogram counts the finite values of data into bins equal-width buckets
// spanning [min, max]. bins <= 0 selects SturgesBins.
//
// A constant sample yields a single bucket holding every value.
// Errors: ErrEmpty when data has no finite value.
// Complexity: O(n log n + bins).
func Histogram(data []float64, bins int) ([]Bin, error) {
	xs := Finite(data)
	if len(xs) == 0 {
		return nil, ErrEmpty
	}
	if bins <= 0 {
		bins = SturgesBins(len(xs))
	}
	sort.Float64s(xs)
	lo, hi := xs[0], xs[len(xs)-1]
	if lo == hi {
		return []Bin{{Lo: lo, Hi: hi, Count: len(xs)}}, nil
	}

	dividers := floats.Span(make([]float64, bins+1), lo, hi)
	// stat.Histogram needs every x strictly below the last divider
	dividers[bins] = math.Nextafter(hi, math.Inf(1))
	counts := stat.Histogram(nil, dividers, xs, nil)
	if len(counts) != bins {
		return nil, fmt.Errorf("%w: got %d counts for %d bins", ErrBadParam, len(counts), bins)
	}

	out := make([]Bin, bins)
	for i := range out {
		out[i] = Bin{Lo: dividers[i], Hi: dividers[i+1], Count: int(counts[i])}
	}
	out[bins-1].Hi = hi

	return out, nil
}
