// SPDX-License-Identifier: MIT

package main

import (
	"github.com/spf13/cobra"

	"github.com/katalvlaran/gcalc/calculus"
	"github.com/katalvlaran/gcalc/integrate"
	"github.com/katalvlaran/gcalc/ode"
	"github.com/katalvlaran/gcalc/roots"
)

func newEvalCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "eval EXPR",
		Short: "Evaluate an expression with the bound variables",
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			return a.run("eval", func() error {
				c, err := a.compile(args[0])
				if err != nil {
					return err
				}
				r := c.Eval(a.mem.Snapshot())
				if !r.OK {
					a.println("undefined")
					return nil
				}
				a.println(a.num(r.Value))
				return nil
			})
		},
	}
}

// domainFlags registers --lo/--hi/--step. Unset flags fall back to config.
func domainFlags(a *app, cmd *cobra.Command, stepKey string) {
	f := cmd.Flags()
	f.Float64("lo", a.v.GetFloat64(keyRootsLo), "scan interval start")
	f.Float64("hi", a.v.GetFloat64(keyRootsHi), "scan interval end")
	f.Float64("step", a.v.GetFloat64(stepKey), "scan step")
}

func (a *app) domain(cmd *cobra.Command) roots.Interval {
	return roots.Interval{
		Lo: a.floatFlag(cmd, "lo", keyRootsLo),
		Hi: a.floatFlag(cmd, "hi", keyRootsHi),
	}
}

func newRootsCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "roots EXPR",
		Short: "Find real roots of f(x) by scan and bisection",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.run("roots", func() error {
				f, err := a.univariate(args[0])
				if err != nil {
					return err
				}
				xs, err := roots.Find(f, a.domain(cmd), a.floatFlag(cmd, "step", keyRootsStep))
				if err != nil {
					return err
				}
				a.printRoots(xs)
				return nil
			})
		},
	}
	domainFlags(a, cmd, keyRootsStep)

	return cmd
}

func newIntersectCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "intersect F G",
		Short: "Find x where f(x) = g(x)",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.run("intersect", func() error {
				f, err := a.univariate(args[0])
				if err != nil {
					return err
				}
				g, err := a.univariate(args[1])
				if err != nil {
					return err
				}
				xs, err := roots.Intersections(f, g, a.domain(cmd), a.floatFlag(cmd, "step", keyIntersectStep))
				if err != nil {
					return err
				}
				for _, x := range xs {
					a.printf("%s\t%s\n", a.num(x), a.num(f(x).Float()))
				}
				if len(xs) == 0 {
					a.println("none")
				}
				return nil
			})
		},
	}
	domainFlags(a, cmd, keyIntersectStep)

	return cmd
}

func (a *app) printRoots(xs []float64) {
	if len(xs) == 0 {
		a.println("none")
		return
	}
	for _, x := range xs {
		a.println(a.num(x))
	}
}

func newIntegrateCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "integrate EXPR A B",
		Short: "Definite integral of f(x) over [A, B] (composite Simpson)",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.run("integrate", func() error {
				f, err := a.univariate(args[0])
				if err != nil {
					return err
				}
				bounds, err := a.numbers(args[1:])
				if err != nil {
					return err
				}
				v, err := integrate.Simpson(f, bounds[0], bounds[1], a.intFlag(cmd, "steps", keyIntegrateSteps))
				if err != nil {
					return err
				}
				a.println(a.num(v))
				return nil
			})
		},
	}
	cmd.Flags().Int("steps", a.v.GetInt(keyIntegrateSteps), "Simpson subintervals")

	return cmd
}

func newDblIntCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "dblint EXPR X1 X2 Y1 Y2",
		Short: "Double integral of f(x, y) over a rectangle (2-D trapezoid)",
		Args:  cobra.ExactArgs(5),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.run("dblint", func() error {
				f, err := a.bivariate(args[0])
				if err != nil {
					return err
				}
				b, err := a.numbers(args[1:])
				if err != nil {
					return err
				}
				n := a.intFlag(cmd, "grid", keyIntegrateGrid)
				v, err := integrate.Double(f, b[0], b[1], b[2], b[3], n, n)
				if err != nil {
					return err
				}
				a.println(a.num(v))
				return nil
			})
		},
	}
	cmd.Flags().Int("grid", a.v.GetInt(keyIntegrateGrid), "cells per axis")

	return cmd
}

func newLimitCmd(a *app) *cobra.Command {
	var dir string
	cmd := &cobra.Command{
		Use:   "limit EXPR POINT",
		Short: "Numeric limit of f(x) as x approaches POINT",
		Args:  cobra.ExactArgs(2),
		RunE: func(_ *cobra.Command, args []string) error {
			return a.run("limit", func() error {
				d, err := calculus.ParseDirection(dir)
				if err != nil {
					return err
				}
				f, err := a.univariate(args[0])
				if err != nil {
					return err
				}
				p, err := a.number(args[1])
				if err != nil {
					return err
				}
				v, err := calculus.Limit(f, p, d)
				if err != nil {
					return err
				}
				a.println(a.num(v))
				return nil
			})
		},
	}
	cmd.Flags().StringVar(&dir, "dir", "both", "approach side: left, right or both")

	return cmd
}

func newDerivCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "deriv EXPR X0",
		Short: "First and second numeric derivative of f at X0",
		Args:  cobra.ExactArgs(2),
		RunE: func(_ *cobra.Command, args []string) error {
			return a.run("deriv", func() error {
				f, err := a.univariate(args[0])
				if err != nil {
					return err
				}
				x0, err := a.number(args[1])
				if err != nil {
					return err
				}
				d1, err := calculus.Derivative(f, x0)
				if err != nil {
					return err
				}
				a.printf("f'\t%s\n", a.num(d1))
				if d2, err := calculus.SecondDerivative(f, x0); err == nil {
					a.printf("f''\t%s\n", a.num(d2))
				}
				return nil
			})
		},
	}
}

func newTangentCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "tangent EXPR X0",
		Short: "Tangent line of f at X0",
		Args:  cobra.ExactArgs(2),
		RunE: func(_ *cobra.Command, args []string) error {
			return a.run("tangent", func() error {
				f, err := a.univariate(args[0])
				if err != nil {
					return err
				}
				x0, err := a.number(args[1])
				if err != nil {
					return err
				}
				l, err := calculus.Tangent(f, x0)
				if err != nil {
					return err
				}
				a.printf("slope\t%s\nintercept\t%s\n", a.num(l.Slope), a.num(l.Intercept()))
				return nil
			})
		},
	}
}

func newODECmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "ode EXPR X0 Y0",
		Short: "Solve y' = f(x, y), y(X0) = Y0 with fixed-step RK4",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.run("ode", func() error {
				f, err := a.bivariate(args[0])
				if err != nil {
					return err
				}
				ic, err := a.numbers(args[1:])
				if err != nil {
					return err
				}
				h, n := a.floatFlag(cmd, "h", keyODEStep), a.intFlag(cmd, "n", keyODESteps)
				sol, err := ode.RK4(f, ic[0], ic[1], h, n)
				if err != nil {
					return err
				}
				for i := range sol.Xs {
					a.printf("%s\t%s\n", a.num(sol.Xs[i]), a.num(sol.Ys[i]))
				}
				return nil
			})
		},
	}
	cmd.Flags().Float64("h", a.v.GetFloat64(keyODEStep), "step size")
	cmd.Flags().Int("n", a.v.GetInt(keyODESteps), "number of steps")

	return cmd
}
