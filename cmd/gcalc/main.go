// SPDX-License-Identifier: MIT

// Command gcalc runs the calculator's numeric methods from the command line.
//
// Usage:
//
//	gcalc roots "x^2 - 2" --lo -5 --hi 5 --step 0.1
//	gcalc integrate "sin(x)" 0 pi
//	gcalc ode "y" 0 1 --h 0.01 --n 100
//	gcalc eig '[[2,1],[1,2]]'
//	gcalc fit --x 0,1,2,3 --y 1,3,5,7 --degree 1
//	gcalc --var a=2 tangent "a*x^2" 1
//
// Numeric arguments are expressions themselves ("pi/2", "2*a"). Named values
// come from --var, the memory section of the config file, in that order of
// precedence. Memory names keep their case. A --var value may use config
// memory but not another --var.
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "gcalc:", err)
		os.Exit(1)
	}
}
