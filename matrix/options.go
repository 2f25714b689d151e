// SPDX-License-Identifier: MIT

// Package matrix: numeric policy defaults.
// This file is the single source of truth for the package-wide numeric
// constants. Keep defaults here, not inline at call sites, so that every
// constructor and validator reads the same policy.

package matrix

// Numeric policy.
const (
	// DefaultEpsilon defines the non-negative tolerance used by approximate
	// comparisons in callers (e.g. solution verification). Structural
	// invariants inside this package (swap, storage) are exact and do not
	// consult it.
	DefaultEpsilon = 1e-9

	// DefaultValidateNaNInf toggles strict finite-value validation on Set and
	// Apply. Enabled by default: a dense solver fed a NaN produces NaN
	// everywhere, so rejection at ingestion is the cheapest diagnosis point.
	DefaultValidateNaNInf = true
)
