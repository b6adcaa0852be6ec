// SPDX-License-Identifier: MIT

// Package roots locates real zeros of a one-variable function on a bounded
// interval.
//
// Find scans the interval at a fixed step, refines every sign change by
// bisection, records samples that are already (numerically) zero, and
// deduplicates the result. Samples that fail or are non-finite break the scan's
// continuity: no sign change is inferred across them. This makes poles such as
// 1/x invisible to the scan instead of producing a spurious root.
//
// Intersections applies the same procedure to f - g.
//
// Roots closer together than the scan step may be missed, and a root where f
// touches zero without crossing (x^2 at 0) is only found when a sample lands on
// it within ExactTol. Both are properties of the scan, not errors.
package roots
