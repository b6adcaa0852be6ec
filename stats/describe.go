// SPDX-License-Identifier: MIT

package stats

import (
	"errors"
	"fmt"
	"math"
	"sort"
	"strconv"
	"strings"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

var (
	// ErrEmpty indicates no finite data.
	ErrEmpty = errors.New("stats: no finite data")

	// ErrBadParam indicates an invalid distribution or histogram parameter.
	ErrBadParam = errors.New("stats: invalid parameter")

	// ErrBadList indicates a list entry that is empty, not a number or not finite.
	ErrBadList = errors.New("stats: invalid list entry")
)

// Summary is the descriptive statistics of a sample.
type Summary struct {
	N      int
	Mean   float64
	Median float64
	Std    float64 // sample standard deviation (n-1); 0 when N == 1
	Min    float64
	Max    float64
}

// Describe summarizes the finite values of data. data is not modified.
//
// The median of an even-sized sample is the mean of the two middle values.
// Errors: ErrEmpty when data has no finite value.
// Complexity: O(n log n).
func Describe(data []float64) (Summary, error) {
	xs := Finite(data)
	if len(xs) == 0 {
		return Summary{}, ErrEmpty
	}
	sort.Float64s(xs)

	s := Summary{
		N:      len(xs),
		Mean:   stat.Mean(xs, nil),
		Median: median(xs),
		Min:    floats.Min(xs),
		Max:    floats.Max(xs),
	}
	if s.N > 1 {
		s.Std = stat.StdDev(xs, nil)
	}

	return s, nil
}

// median expects sorted, non-empty xs.
func median(xs []float64) float64 {
	n := len(xs)
	if n%2 == 1 {
		return xs[n/2]
	}

	return 0.5 * (xs[n/2-1] + xs[n/2])
}

// Finite returns a copy of data without NaN and ±Inf.
func Finite(data []float64) []float64 {
	out := make([]float64, 0, len(data))
	for _, v := range data {
		if !math.IsNaN(v) && !math.IsInf(v, 0) {
			out = append(out, v)
		}
	}

	return out
}

// ParseList parses a comma-separated list of finite numbers. A blank s is the
// empty list. Positions are preserved, so two lists parsed side by side stay
// paired entry for entry.
// Errors: ErrBadList naming the first entry that is empty, does not parse or
// is NaN/±Inf.
func ParseList(s string) ([]float64, error) {
	if strings.TrimSpace(s) == "" {
		return nil, nil
	}
	fields := strings.Split(s, ",")
	out := make([]float64, len(fields))
	for i, field := range fields {
		field = strings.TrimSpace(field)
		v, err := strconv.ParseFloat(field, 64)
		if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
			return nil, fmt.Errorf("%w: entry %d is %q", ErrBadList, i+1, field)
		}
		out[i] = v
	}

	return out, nil
}
