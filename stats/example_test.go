package stats_test

import (
	"fmt"

	"github.com/katalvlaran/gcalc/stats"
)

func ExampleDescribe() {
	xs, _ := stats.ParseList("2, 4, 4, 4, 5, 5, 7, 9")
	s, _ := stats.Describe(xs)
	fmt.Printf("n=%d mean=%.2f median=%.2f min=%g max=%g\n", s.N, s.Mean, s.Median, s.Min, s.Max)
	// Output: n=8 mean=5.00 median=4.50 min=2 max=9
}
