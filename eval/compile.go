// SPDX-License-Identifier: MIT

package eval

import (
	"fmt"
	"sort"
	"strings"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/ast"
	"github.com/expr-lang/expr/parser"
	"github.com/expr-lang/expr/vm"
)

// Compiled is an expression string compiled once and evaluated many times.
// A Compiled is immutable and may be shared; the Contexts passed to Eval are not.
type Compiled struct {
	src    string
	vars   []string
	idents []string
	prog   *vm.Program
}

// Compile parses src with the math environment.
//
// vars names the evaluation variables the caller will bind per call (for
// example "x", or "x" and "y"). They only affect Missing; any name may still
// be supplied through the Context at evaluation time.
//
// Errors:
//   - ErrParse (wrapping the expr-lang diagnostic) for empty or malformed src.
//   - ErrBadName for a var that is not a valid variable name.
func Compile(src string, vars ...string) (*Compiled, error) {
	if strings.TrimSpace(src) == "" {
		return nil, fmt.Errorf("%w: empty expression", ErrParse)
	}
	for _, v := range vars {
		if err := ValidateName(v); err != nil {
			return nil, err
		}
	}

	tree, err := parser.Parse(src)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrParse, err)
	}
	prog, err := expr.Compile(src, functionOptions()...)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrParse, err)
	}

	c := &Compiled{
		src:    src,
		vars:   append([]string(nil), vars...),
		idents: collectIdents(tree.Node),
		prog:   prog,
	}

	return c, nil
}

// MustCompile is Compile that panics on error. Intended for literals in
// tests and examples.
func MustCompile(src string, vars ...string) *Compiled {
	c, err := Compile(src, vars...)
	if err != nil {
		panic(err)
	}

	return c
}

// Source returns the expression text.
func (c *Compiled) Source() string { return c.src }

// String implements fmt.Stringer.
func (c *Compiled) String() string { return c.src }

// Vars returns the evaluation variables given to Compile.
func (c *Compiled) Vars() []string { return append([]string(nil), c.vars...) }

// Missing lists the free names of the expression that neither the
// evaluation variables, the constants nor ctx provide. An expression with
// missing names evaluates to a failed Result.
func (c *Compiled) Missing(ctx Context) []string {
	var out []string
	for _, id := range c.idents {
		if _, ok := ctx[id]; ok {
			continue
		}
		if _, ok := constants[id]; ok {
			continue
		}
		if contains(c.vars, id) {
			continue
		}
		out = append(out, id)
	}

	return out
}

// Eval implements Expression. Runtime errors, panics, undefined names and
// non-numeric values (booleans, strings) yield Failure. Numeric results,
// including NaN and ±Inf, yield Success.
// Complexity: O(len(ctx)) for the environment plus the program itself.
func (c *Compiled) Eval(ctx Context) Result {
	env := make(map[string]any, len(constants)+len(ctx))
	for k, v := range constants {
		env[k] = v
	}
	for k, v := range ctx {
		env[k] = v
	}

	return c.run(env)
}

func (c *Compiled) run(env map[string]any) (res Result) {
	defer func() {
		if recover() != nil {
			res = Failure()
		}
	}()

	out, err := expr.Run(c.prog, env)
	if err != nil {
		return Failure()
	}
	v, ok := toFloat(out)
	if !ok {
		return Failure()
	}

	return Success(v)
}

// identVisitor records identifier nodes that are not environment functions.
type identVisitor struct {
	seen map[string]struct{}
}

func (v *identVisitor) Visit(node *ast.Node) {
	if n, ok := (*node).(*ast.IdentifierNode); ok && !isFunctionName(n.Value) {
		v.seen[n.Value] = struct{}{}
	}
}

func collectIdents(root ast.Node) []string {
	v := &identVisitor{seen: make(map[string]struct{})}
	ast.Walk(&root, v)
	out := make([]string, 0, len(v.seen))
	for id := range v.seen {
		out = append(out, id)
	}
	sort.Strings(out)

	return out
}

func contains(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}

	return false
}
