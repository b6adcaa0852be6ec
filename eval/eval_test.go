package eval_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/gcalc/eval"
)

func TestCompile_Arithmetic(t *testing.T) {
	t.Parallel()

	tests := []struct {
		src  string
		x    float64
		want float64
	}{
		{"x^2 - 2", 3, 7},
		{"x**3", 2, 8},
		{"2*x + 1", 0.5, 2},
		{"1/2", 0, 0.5},
		{"sin(pi/2)", 0, 1},
		{"ln(e)", 0, 1},
		{"log(8, 2)", 0, 3},
		{"log10(1000)", 0, 3},
		{"sqrt(x)", 16, 4},
		{"abs(-x)", 2.5, 2.5},
		{"max(x, 3)", 7, 7},
		{"pow(x, 0.5)", 9, 3},
		{"floor(x)", 2.7, 2},
		{"sign(-x)", 4, -1},
	}
	for _, tc := range tests {
		t.Run(tc.src, func(t *testing.T) {
			c, err := eval.Compile(tc.src, "x")
			require.NoError(t, err)
			r := c.Eval(eval.Context{"x": tc.x})
			require.True(t, r.OK, "evaluation failed")
			require.InDelta(t, tc.want, r.Value, 1e-12)
		})
	}
}

func TestCompile_ParseError(t *testing.T) {
	t.Parallel()

	for _, src := range []string{"", "   ", "x +* 2", "sin(x"} {
		_, err := eval.Compile(src, "x")
		require.ErrorIs(t, err, eval.ErrParse, "src %q", src)
	}

	_, err := eval.Compile("x", "1bad")
	require.ErrorIs(t, err, eval.ErrBadName)
}

func TestEval_Failures(t *testing.T) {
	t.Parallel()

	// undefined name
	r := eval.MustCompile("y + 1", "x").Eval(eval.Context{"x": 1})
	require.False(t, r.OK)
	require.True(t, math.IsNaN(r.Value))

	// non-numeric result
	r = eval.MustCompile("x > 1", "x").Eval(eval.Context{"x": 2})
	require.False(t, r.OK)

	// wrong arity
	r = eval.MustCompile("pow(x)", "x").Eval(eval.Context{"x": 2})
	require.False(t, r.OK)
}

func TestEval_NonFiniteIsSuccess(t *testing.T) {
	t.Parallel()

	r := eval.MustCompile("1/x", "x").Eval(eval.Context{"x": 0})
	require.True(t, r.OK)
	require.False(t, r.Finite())
	require.True(t, math.IsInf(r.Value, 1))

	r = eval.MustCompile("sqrt(x)", "x").Eval(eval.Context{"x": -1})
	require.True(t, r.OK)
	require.False(t, r.Finite())
}

func TestEval_ContextShadowsConstant(t *testing.T) {
	t.Parallel()

	c := eval.MustCompile("e + 1")
	require.InDelta(t, math.E+1, c.Eval(nil).Value, 1e-12)
	require.Equal(t, 3.0, c.Eval(eval.Context{"e": 2}).Value)
}

func TestMissing(t *testing.T) {
	t.Parallel()

	c := eval.MustCompile("a*x^2 + b*sin(x) + pi", "x")
	require.Equal(t, []string{"a", "b"}, c.Missing(nil))
	require.Equal(t, []string{"b"}, c.Missing(eval.Context{"a": 1}))
	require.Empty(t, c.Missing(eval.Context{"a": 1, "b": 2}))
	require.Equal(t, []string{"x"}, c.Vars())
}

func TestFunc_RecoversPanic(t *testing.T) {
	t.Parallel()

	f := eval.Func(func(eval.Context) float64 { panic("boom") })
	require.False(t, f.Eval(nil).OK)

	g := eval.Func(func(ctx eval.Context) float64 { return ctx["x"] * 2 })
	require.Equal(t, eval.Success(6), g.Eval(eval.Context{"x": 3}))
}

func TestResult(t *testing.T) {
	t.Parallel()

	require.True(t, eval.Success(1).Finite())
	require.False(t, eval.Success(math.Inf(-1)).Finite())
	require.False(t, eval.Failure().Finite())
	require.True(t, math.IsNaN(eval.Failure().Float()))
	require.Equal(t, 2.0, eval.Success(2).Float())
}

func TestContext_WithDoesNotMutate(t *testing.T) {
	t.Parallel()

	base := eval.Context{"a": 1}
	next := base.With("x", 5)
	require.Equal(t, eval.Context{"a": 1}, base)
	require.Equal(t, eval.Context{"a": 1, "x": 5}, next)
	require.Equal(t, []string{"a", "x"}, next.Names())
}

func TestUnivariateAndBivariate(t *testing.T) {
	t.Parallel()

	ctx := eval.Context{"k": 3}
	f := eval.Univariate(eval.MustCompile("k*x", "x"), ctx, "x")
	require.Equal(t, 6.0, f(2).Value)
	require.Equal(t, 9.0, f(3).Value)
	require.NotContains(t, ctx, "x", "caller context untouched")

	g := eval.Bivariate(eval.MustCompile("x*y + k", "x", "y"), ctx, "x", "y")
	require.Equal(t, 9.0, g(2, 3).Value)

	d := eval.Sub(f, eval.Univariate(eval.MustCompile("x"), nil, "x"))
	require.Equal(t, 4.0, d(2).Value)
	require.False(t, eval.Sub(f, func(float64) eval.Result { return eval.Failure() })(1).OK)
}

func TestCompile_LiteralsAreFloats(t *testing.T) {
	t.Parallel()

	tests := []struct {
		src  string
		want float64
	}{
		{"10000000000 * 10000000000", 1e20},
		{"9223372036854775807 + 9223372036854775807", 2 * 9223372036854775807.0},
		{"-3000000000 * 4000000000", -1.2e19},
		{"7 / 2", 3.5},
		{"7 % 2", 1},
		{"7.5 % 2", 1.5},
		{"-7 % 3", -1},
		{"mod(10, 4)", 2},
	}
	for _, tc := range tests {
		t.Run(tc.src, func(t *testing.T) {
			r := eval.MustCompile(tc.src).Eval(nil)
			require.True(t, r.OK, "evaluation failed")
			require.Equal(t, tc.want, r.Value)
		})
	}

	// % on a bound variable takes the same path
	r := eval.MustCompile("x % 3", "x").Eval(eval.Context{"x": 10.5})
	require.True(t, r.OK)
	require.InDelta(t, 1.5, r.Value, 1e-12)

	// a remainder by zero is NaN, reported as a successful non-finite value
	r = eval.MustCompile("5 % 0").Eval(nil)
	require.True(t, r.OK)
	require.True(t, math.IsNaN(r.Value))
}
