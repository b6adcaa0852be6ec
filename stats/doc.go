// SPDX-License-Identifier: MIT

// Package stats holds the calculator's statistics panel: descriptive
// statistics, histograms and four probability distributions. The numeric
// work is delegated to gonum (stat, floats, stat/distuv); this package adds
// input cleaning, parameter validation and the tabulation ranges used for
// display.
package stats
