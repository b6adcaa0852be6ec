// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"math"
	"strings"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/gcalc/regression"
	"github.com/katalvlaran/gcalc/stats"
)

func newFitCmd(a *app) *cobra.Command {
	var (
		xsRaw, ysRaw string
		degree       int
	)
	cmd := &cobra.Command{
		Use:   "fit --y LIST [--x LIST] [--degree N]",
		Short: "Least-squares polynomial fit",
		Args:  cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			return a.run("fit", func() error {
				xs, err := stats.ParseList(xsRaw)
				if err != nil {
					return fmt.Errorf("--x: %w", err)
				}
				ys, err := stats.ParseList(ysRaw)
				if err != nil {
					return fmt.Errorf("--y: %w", err)
				}
				coeffs, err := regression.PolyFit(xs, ys, degree)
				if err != nil {
					return err
				}
				_, r2, err := regression.Residuals(coeffs, xs, ys)
				if err != nil {
					return err
				}
				a.printf("coeffs\t%s\n", a.nums(coeffs))
				a.printf("r2\t%s\n", a.num(r2))
				return nil
			})
		},
	}
	cmd.Flags().StringVar(&xsRaw, "x", "", "comma-separated x values (default 0..n-1)")
	cmd.Flags().StringVar(&ysRaw, "y", "", "comma-separated y values")
	cmd.Flags().IntVar(&degree, "degree", regression.MinDegree,
		fmt.Sprintf("polynomial degree, clamped to [%d, %d]", regression.MinDegree, regression.MaxDegree))

	return cmd
}

func newStatsCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "stats LIST",
		Short: "Descriptive statistics of a comma-separated list",
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			return a.run("stats", func() error {
				xs, err := stats.ParseList(args[0])
				if err != nil {
					return err
				}
				s, err := stats.Describe(xs)
				if err != nil {
					return err
				}
				a.printf("n\t%d\nmean\t%s\nmedian\t%s\nstd\t%s\nmin\t%s\nmax\t%s\n",
					s.N, a.num(s.Mean), a.num(s.Median), a.num(s.Std), a.num(s.Min), a.num(s.Max))
				return nil
			})
		},
	}
}

func newHistCmd(a *app) *cobra.Command {
	var bins int
	cmd := &cobra.Command{
		Use:   "hist LIST",
		Short: "Histogram of a comma-separated list",
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			return a.run("hist", func() error {
				xs, err := stats.ParseList(args[0])
				if err != nil {
					return err
				}
				hs, err := stats.Histogram(xs, bins)
				if err != nil {
					return err
				}
				for _, b := range hs {
					a.printf("%s\t%s\t%d\n", a.num(b.Lo), a.num(b.Hi), b.Count)
				}
				return nil
			})
		},
	}
	cmd.Flags().IntVar(&bins, "bins", 0, "bucket count (0 = Sturges' rule)")

	return cmd
}

func newDistCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "dist normal MU SIGMA | binomial N P | poisson LAMBDA | uniform A B",
		Short: "Tabulate a probability distribution",
		Args:  cobra.MinimumNArgs(2),
		RunE: func(_ *cobra.Command, args []string) error {
			return a.run("dist", func() error {
				kind := strings.ToLower(args[0])
				params, err := a.numbers(args[1:])
				if err != nil {
					return err
				}
				pts, err := tabulate(kind, params)
				if err != nil {
					return err
				}
				for _, p := range pts {
					a.printf("%s\t%s\n", a.num(p.X), a.num(p.P))
				}
				return nil
			})
		},
	}
}

// maxTableRows bounds the rows of a discrete distribution table.
const maxTableRows = 10000

func tabulate(kind string, params []float64) ([]stats.Point, error) {
	want := map[string]int{"normal": 2, "binomial": 2, "poisson": 1, "uniform": 2}
	n, ok := want[kind]
	if !ok {
		return nil, fmt.Errorf("%w: unknown distribution %q", errUsage, kind)
	}
	if len(params) != n {
		return nil, fmt.Errorf("%w: %s takes %d parameter(s), got %d", errUsage, kind, n, len(params))
	}
	switch kind {
	case "normal":
		return stats.NormalCurve(params[0], params[1], stats.DefaultCurvePoints)
	case "binomial":
		n := params[0]
		if n != math.Trunc(n) {
			return nil, fmt.Errorf("%w: binomial n must be an integer, got %g", errUsage, n)
		}
		if n+1 > maxTableRows {
			return nil, fmt.Errorf("%w: binomial n=%g exceeds %d table rows", errUsage, n, maxTableRows)
		}
		return stats.BinomialTable(int(n), params[1])
	case "poisson":
		if rows := stats.PoissonTableSize(params[0]); rows > maxTableRows {
			return nil, fmt.Errorf("%w: poisson lambda=%g needs %g table rows, limit %d", errUsage, params[0], rows, maxTableRows)
		}
		return stats.PoissonTable(params[0])
	default:
		return stats.UniformCurve(params[0], params[1], stats.DefaultCurvePoints)
	}
}
