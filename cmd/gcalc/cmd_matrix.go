// SPDX-License-Identifier: MIT

package main

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/gcalc/matrix"
)

// parseMatrix reads a JSON array of rows, e.g. [[1,2],[3,4]].
func parseMatrix(src string) (*matrix.Dense, error) {
	var rows [][]float64
	if err := json.Unmarshal([]byte(src), &rows); err != nil {
		return nil, fmt.Errorf("%w: matrix must be a JSON array of rows: %w", errUsage, err)
	}

	return matrix.NewFromRows(rows)
}

// loadMatrix parses src and logs its shape.
func (a *app) loadMatrix(src string) (*matrix.Dense, error) {
	m, err := parseMatrix(src)
	if err != nil {
		return nil, err
	}
	r, c := m.Shape()
	a.log.Debug("matrix parsed", "rows", r, "cols", c)

	return m, nil
}

// parseVector reads a JSON array of numbers, e.g. [1,2,3].
func parseVector(src string) ([]float64, error) {
	var v []float64
	if err := json.Unmarshal([]byte(src), &v); err != nil {
		return nil, fmt.Errorf("%w: vector must be a JSON array: %w", errUsage, err)
	}

	return v, nil
}

func (a *app) printMatrix(label string, m matrix.Matrix) error {
	rows, err := matrix.ToRows(m)
	if err != nil {
		return err
	}
	if label != "" {
		a.println(label + ":")
	}
	for _, r := range rows {
		a.println(a.nums(r))
	}

	return nil
}

// matrixCmd builds a one-argument matrix subcommand.
func matrixCmd(a *app, use, short string, fn func(cmd *cobra.Command, m *matrix.Dense) error) *cobra.Command {
	return &cobra.Command{
		Use:   use + " JSON",
		Short: short,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.run(use, func() error {
				m, err := a.loadMatrix(args[0])
				if err != nil {
					return err
				}
				return fn(cmd, m)
			})
		},
	}
}

// matrixPairCmd builds a two-matrix subcommand printing op(A, B).
func matrixPairCmd(a *app, use, short string, op func(x, y matrix.Matrix) (matrix.Matrix, error)) *cobra.Command {
	return &cobra.Command{
		Use:   use + " A_JSON B_JSON",
		Short: short,
		Args:  cobra.ExactArgs(2),
		RunE: func(_ *cobra.Command, args []string) error {
			return a.run(use, func() error {
				x, err := a.loadMatrix(args[0])
				if err != nil {
					return err
				}
				y, err := a.loadMatrix(args[1])
				if err != nil {
					return err
				}
				res, err := op(x, y)
				if err != nil {
					return err
				}
				return a.printMatrix("", res)
			})
		},
	}
}

func newAddCmd(a *app) *cobra.Command {
	return matrixPairCmd(a, "add", "Matrix sum A + B", matrix.Add)
}

func newSubCmd(a *app) *cobra.Command {
	return matrixPairCmd(a, "sub", "Matrix difference A - B", matrix.Sub)
}

func newMulCmd(a *app) *cobra.Command {
	return matrixPairCmd(a, "mul", "Matrix product A·B", matrix.Mul)
}

func newTransposeCmd(a *app) *cobra.Command {
	return matrixCmd(a, "transpose", "Transpose", func(_ *cobra.Command, m *matrix.Dense) error {
		t, err := matrix.Transpose(m)
		if err != nil {
			return err
		}
		return a.printMatrix("", t)
	})
}

func newScaleCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "scale A_JSON K",
		Short: "Multiply every entry of A by the scalar K",
		Args:  cobra.ExactArgs(2),
		RunE: func(_ *cobra.Command, args []string) error {
			return a.run("scale", func() error {
				m, err := a.loadMatrix(args[0])
				if err != nil {
					return err
				}
				k, err := a.number(args[1])
				if err != nil {
					return err
				}
				res, err := matrix.Scale(m, k)
				if err != nil {
					return err
				}
				return a.printMatrix("", res)
			})
		},
	}
}

func newRREFCmd(a *app) *cobra.Command {
	return matrixCmd(a, "rref", "Reduced row echelon form and rank", func(_ *cobra.Command, m *matrix.Dense) error {
		r, rank, err := matrix.RREF(m)
		if err != nil {
			return err
		}
		if err = a.printMatrix("", r); err != nil {
			return err
		}
		a.printf("rank\t%d\n", rank)
		return nil
	})
}

func newLUCmd(a *app) *cobra.Command {
	return matrixCmd(a, "lu", "LU factorization without pivoting (Doolittle)", func(_ *cobra.Command, m *matrix.Dense) error {
		l, u, err := matrix.LU(m)
		if err != nil {
			return err
		}
		if err = a.printMatrix("L", l); err != nil {
			return err
		}
		return a.printMatrix("U", u)
	})
}

func newQRCmd(a *app) *cobra.Command {
	return matrixCmd(a, "qr", "QR factorization (modified Gram-Schmidt)", func(_ *cobra.Command, m *matrix.Dense) error {
		q, r, err := matrix.QR(m)
		if err != nil {
			return err
		}
		if err = a.printMatrix("Q", q); err != nil {
			return err
		}
		return a.printMatrix("R", r)
	})
}

func newEigCmd(a *app) *cobra.Command {
	cmd := matrixCmd(a, "eig", "Eigenvalues by unshifted QR iteration", func(cmd *cobra.Command, m *matrix.Dense) error {
		n := a.intFlag(cmd, "iterations", keyEigenIterations)
		if n <= 0 {
			return fmt.Errorf("%w: iterations must be > 0, got %d", errUsage, n)
		}
		vals, err := matrix.Eigenvalues(m, matrix.WithIterations(n))
		if err != nil {
			return err
		}
		a.println(a.nums(vals))
		return nil
	})
	cmd.Flags().Int("iterations", a.v.GetInt(keyEigenIterations), "QR iterations")

	return cmd
}

func newDetCmd(a *app) *cobra.Command {
	return matrixCmd(a, "det", "Determinant", func(_ *cobra.Command, m *matrix.Dense) error {
		d, err := matrix.Det(m)
		if err != nil {
			return err
		}
		a.println(a.num(d))
		return nil
	})
}

func newInvCmd(a *app) *cobra.Command {
	return matrixCmd(a, "inv", "Inverse", func(_ *cobra.Command, m *matrix.Dense) error {
		inv, err := matrix.Inverse(m)
		if err != nil {
			return err
		}
		return a.printMatrix("", inv)
	})
}

func newSolveCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "solve A_JSON B_JSON",
		Short: "Solve A·x = b with partial pivoting",
		Args:  cobra.ExactArgs(2),
		RunE: func(_ *cobra.Command, args []string) error {
			return a.run("solve", func() error {
				m, err := a.loadMatrix(args[0])
				if err != nil {
					return err
				}
				b, err := parseVector(args[1])
				if err != nil {
					return err
				}
				x, err := matrix.Solve(m, b)
				if err != nil {
					return err
				}
				a.println(a.nums(x))
				return nil
			})
		},
	}
}

func newVecCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "vec dot|cross|norm U_JSON [V_JSON]",
		Short: "Vector dot product, 3-D cross product or Euclidean norm",
		Args:  cobra.RangeArgs(2, 3),
		RunE: func(_ *cobra.Command, args []string) error {
			return a.run("vec", func() error {
				u, err := parseVector(args[1])
				if err != nil {
					return err
				}
				if args[0] == "norm" {
					n, err := matrix.Norm(u)
					if err != nil {
						return err
					}
					a.println(a.num(n))
					return nil
				}
				if len(args) != 3 {
					return fmt.Errorf("%w: %s needs two vectors", errUsage, args[0])
				}
				v, err := parseVector(args[2])
				if err != nil {
					return err
				}
				switch args[0] {
				case "dot":
					d, err := matrix.Dot(u, v)
					if err != nil {
						return err
					}
					a.println(a.num(d))
				case "cross":
					c, err := matrix.Cross(u, v)
					if err != nil {
						return err
					}
					a.println(a.nums(c))
				default:
					return fmt.Errorf("%w: unknown vector op %q", errUsage, args[0])
				}
				return nil
			})
		},
	}
}
