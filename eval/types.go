// SPDX-License-Identifier: MIT

package eval

import (
	"errors"
	"math"
	"sort"
)

var (
	// ErrParse wraps every expression compile error.
	ErrParse = errors.New("eval: parse error")

	// ErrBadName is returned when a variable name is not an identifier or
	// shadows a built-in function.
	ErrBadName = errors.New("eval: invalid variable name")
)

// Result is the outcome of evaluating an expression at one point.
// OK=false marks a failure (undefined name, domain error, non-numeric value).
// A successful Result may still hold NaN or ±Inf; see Finite.
type Result struct {
	Value float64
	OK    bool
}

// Success wraps v as a successful Result.
func Success(v float64) Result { return Result{Value: v, OK: true} }

// Failure is the failed Result. Its Value is NaN.
func Failure() Result { return Result{Value: math.NaN()} }

// Finite reports whether r succeeded with a finite value.
func (r Result) Finite() bool {
	return r.OK && !math.IsNaN(r.Value) && !math.IsInf(r.Value, 0)
}

// Float returns Value for a success and NaN for a failure.
func (r Result) Float() float64 {
	if !r.OK {
		return math.NaN()
	}

	return r.Value
}

// Context maps names to values for one evaluation. It is owned by the caller
// and never shared implicitly between evaluations.
type Context map[string]float64

// With returns a copy of c with name bound to v. c is not modified.
// Complexity: O(len(c)).
func (c Context) With(name string, v float64) Context {
	out := make(Context, len(c)+1)
	for k, val := range c {
		out[k] = val
	}
	out[name] = v

	return out
}

// Clone returns a shallow copy of c (nil stays an empty, non-nil Context).
func (c Context) Clone() Context {
	out := make(Context, len(c))
	for k, v := range c {
		out[k] = v
	}

	return out
}

// Names returns the bound names in lexical order.
func (c Context) Names() []string {
	names := make([]string, 0, len(c))
	for k := range c {
		names = append(names, k)
	}
	sort.Strings(names)

	return names
}

// Expression is anything that can be evaluated against a Context.
type Expression interface {
	Eval(ctx Context) Result
}

// Func adapts a Go function to Expression. A panic inside f becomes a
// failed Result.
type Func func(ctx Context) float64

// Eval implements Expression.
func (f Func) Eval(ctx Context) (res Result) {
	defer func() {
		if recover() != nil {
			res = Failure()
		}
	}()

	return Success(f(ctx))
}
