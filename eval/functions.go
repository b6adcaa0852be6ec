// SPDX-License-Identifier: MIT

package eval

import (
	"fmt"
	"math"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/ast"
)

// unary lists the one-argument math functions of the environment.
var unary = map[string]func(float64) float64{
	"sin":   math.Sin,
	"cos":   math.Cos,
	"tan":   math.Tan,
	"asin":  math.Asin,
	"acos":  math.Acos,
	"atan":  math.Atan,
	"sinh":  math.Sinh,
	"cosh":  math.Cosh,
	"tanh":  math.Tanh,
	"exp":   math.Exp,
	"ln":    math.Log,
	"log10": math.Log10,
	"log2":  math.Log2,
	"sqrt":  math.Sqrt,
	"cbrt":  math.Cbrt,
	"sign":  sign,
}

// binary lists the two-argument math functions of the environment.
var binary = map[string]func(float64, float64) float64{
	"pow":   math.Pow,
	"atan2": math.Atan2,
	"hypot": math.Hypot,
	"mod":   math.Mod, // also the target of the % operator
}

// builtins are provided by expr-lang itself and accept mixed int/float input.
var builtins = []string{"abs", "floor", "ceil", "round", "min", "max"}

// constants are visible in every evaluation unless the Context rebinds them.
var constants = map[string]float64{
	"pi": math.Pi,
	"e":  math.E,
}

func sign(x float64) float64 {
	switch {
	case x > 0:
		return 1
	case x < 0:
		return -1
	default:
		return x // keeps ±0 and NaN
	}
}

func isFunctionName(name string) bool {
	if _, ok := unary[name]; ok {
		return true
	}
	if _, ok := binary[name]; ok {
		return true
	}
	if name == "log" {
		return true
	}
	for _, b := range builtins {
		if b == name {
			return true
		}
	}

	return false
}

// toFloat converts any numeric value produced by expr-lang to float64.
func toFloat(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case int:
		return float64(n), true
	case int8:
		return float64(n), true
	case int16:
		return float64(n), true
	case int32:
		return float64(n), true
	case int64:
		return float64(n), true
	case uint:
		return float64(n), true
	case uint8:
		return float64(n), true
	case uint16:
		return float64(n), true
	case uint32:
		return float64(n), true
	case uint64:
		return float64(n), true
	default:
		return 0, false
	}
}

func floatArgs(name string, want int, params []any) ([]float64, error) {
	if len(params) != want {
		return nil, fmt.Errorf("%s: want %d argument(s), got %d", name, want, len(params))
	}
	out := make([]float64, want)
	var ok bool
	for i, p := range params {
		if out[i], ok = toFloat(p); !ok {
			return nil, fmt.Errorf("%s: argument %d is %T, not a number", name, i+1, p)
		}
	}

	return out, nil
}

// functionOptions registers the math environment with the expr-lang compiler.
func functionOptions() []expr.Option {
	opts := make([]expr.Option, 0, len(unary)+len(binary)+2)
	for name, fn := range unary {
		name, fn := name, fn
		opts = append(opts, expr.Function(name, func(params ...any) (any, error) {
			args, err := floatArgs(name, 1, params)
			if err != nil {
				return nil, err
			}
			return fn(args[0]), nil
		}))
	}
	for name, fn := range binary {
		name, fn := name, fn
		opts = append(opts, expr.Function(name, func(params ...any) (any, error) {
			args, err := floatArgs(name, 2, params)
			if err != nil {
				return nil, err
			}
			return fn(args[0], args[1]), nil
		}))
	}
	// log(x) is natural, log(x, b) is base b
	opts = append(opts, expr.Function("log", func(params ...any) (any, error) {
		if len(params) == 2 {
			args, err := floatArgs("log", 2, params)
			if err != nil {
				return nil, err
			}
			return math.Log(args[0]) / math.Log(args[1]), nil
		}
		args, err := floatArgs("log", 1, params)
		if err != nil {
			return nil, err
		}
		return math.Log(args[0]), nil
	}))

	return append(opts, expr.Patch(floatLiterals{}))
}

// floatLiterals makes every number literal a float64 so integer-only
// arithmetic cannot wrap around, and rewrites a % b as mod(a, b) since
// expr-lang defines % for integers only. The tree is walked bottom-up, so the
// operands of % are already floats when the operator is rewritten.
type floatLiterals struct{}

func (floatLiterals) Visit(node *ast.Node) {
	switch n := (*node).(type) {
	case *ast.IntegerNode:
		ast.Patch(node, &ast.FloatNode{Value: float64(n.Value)})
	case *ast.BinaryNode:
		if n.Operator == "%" {
			ast.Patch(node, &ast.CallNode{
				Callee:    &ast.IdentifierNode{Value: "mod"},
				Arguments: []ast.Node{n.Left, n.Right},
			})
		}
	}
}
