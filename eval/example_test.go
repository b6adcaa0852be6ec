package eval_test

import (
	"fmt"

	"github.com/katalvlaran/gcalc/eval"
)

func ExampleCompile() {
	mem := &eval.Memory{}
	_ = mem.Store("a", 2)

	c, err := eval.Compile("a*x^2 + 1", "x")
	if err != nil {
		fmt.Println(err)
		return
	}
	f := eval.Univariate(c, mem.Snapshot(), "x")
	fmt.Println(f(3).Value, f(3).OK)
	fmt.Println(c.Eval(eval.Context{"x": 1}).OK) // a is not bound here
	// Output:
	// 19 true
	// false
}
