// SPDX-License-Identifier: MIT

package eval

// Univariate binds name and returns the one-argument sampler used by the
// numeric algorithms. ctx is copied once; every call rebinds name on that
// private copy, so the returned function must not be called concurrently.
func Univariate(e Expression, ctx Context, name string) func(float64) Result {
	env := ctx.With(name, 0)

	return func(x float64) Result {
		env[name] = x
		return e.Eval(env)
	}
}

// Bivariate binds xName and yName and returns a two-argument sampler.
// The same single-goroutine rule as Univariate applies.
func Bivariate(e Expression, ctx Context, xName, yName string) func(x, y float64) Result {
	env := ctx.With(xName, 0)
	env[yName] = 0

	return func(x, y float64) Result {
		env[xName] = x
		env[yName] = y
		return e.Eval(env)
	}
}

// Sub returns the sampler of f(x) - g(x). A failure of either side fails.
func Sub(f, g func(float64) Result) func(float64) Result {
	return func(x float64) Result {
		a, b := f(x), g(x)
		if !a.OK || !b.OK {
			return Failure()
		}
		return Success(a.Value - b.Value)
	}
}
