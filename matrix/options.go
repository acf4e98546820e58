// SPDX-License-Identifier: MIT

// Package matrix: functional configuration for the numeric kernels.
// This file defines:
//   - Option / Options (functional options with internal state),
//   - documented defaults (constants),
//   - WithX constructors with strong validation (panic on nonsensical values),
//   - gatherOptions helper (internal) that enforces invariants.
//
// Design goals:
//   - Deterministic behavior: no global state, no implicit randomness.
//   - No dead switches: each knob impacts behavior and is covered by tests.
//   - Safe by construction: panic only on invalid parameters (programmer error).
package matrix

import "math"

// ---------- Defaults (single source of truth) ----------

const (
	// DefaultPivotTolerance is the non-negative threshold below which a pivot
	// magnitude is treated as zero during LU/Inverse. Zero means exact-zero
	// detection only, mirroring the strictest deterministic policy.
	DefaultPivotTolerance = 1e-12

	// DefaultValidateInput toggles the finite-value pre-scan of kernel inputs.
	// When enabled, LU/Inverse reject matrices containing NaN or ±Inf with
	// ErrNaNInf before any arithmetic runs.
	DefaultValidateInput = true
)

// ---------- Internal panic messages (no magic strings) ----------

const panicPivotTolInvalid = "matrix: WithPivotTolerance: tol must be finite, non-negative"

// ---------- Public option type (functional) ----------

// Option mutates internal options. Safe to apply repeatedly (idempotent).
// Constructors MUST panic only on nonsensical values (programmer error).
type Option func(*Options)

// Options stores the effective configuration after applying Option setters.
// Fields are unexported to prevent external mutation; public entry points
// accept `...Option` and internally resolve them via gatherOptions.
type Options struct {
	pivotTol      float64 // >= 0; DefaultPivotTolerance
	validateInput bool    // DefaultValidateInput
}

// WithPivotTolerance sets the singularity threshold used by LU and Inverse:
// a pivot p with |p| <= tol aborts the factorization with ErrSingular.
//
// Inputs:
//   - tol: non-negative finite threshold (0 restores exact-zero detection).
//
// Errors:
//   - Panics with a stable message when tol is NaN, ±Inf or negative.
//
// Complexity: O(1).
func WithPivotTolerance(tol float64) Option {
	if math.IsNaN(tol) || math.IsInf(tol, 0) || tol < 0 {
		panic(panicPivotTolInvalid)
	}

	return func(o *Options) { o.pivotTol = tol }
}

// WithInputValidation toggles the finite-value pre-scan of kernel inputs.
// Disable only when the caller guarantees finite data and the O(r*c) scan
// cost matters.
//
// Complexity: O(1).
func WithInputValidation(enabled bool) Option {
	return func(o *Options) { o.validateInput = enabled }
}

// gatherOptions resolves defaults, applies setters in order and returns the
// effective configuration. Internal; kernels call it exactly once per entry.
func gatherOptions(opts ...Option) Options {
	o := Options{
		pivotTol:      DefaultPivotTolerance,
		validateInput: DefaultValidateInput,
	}
	for _, opt := range opts {
		opt(&o)
	}

	return o
}
