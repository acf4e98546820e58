// SPDX-License-Identifier: MIT

// Package inverse: functional configuration for the solve-or-cached
// retrieval. This file defines:
//   - Option / Options (functional options with internal state),
//   - documented defaults,
//   - WithX constructors with strong validation (panic on nonsensical values),
//   - gatherOptions helper (internal) that enforces invariants.
//
// Design goals:
//   - Deterministic behavior: no global state beyond the default log sink.
//   - No dead switches: each knob impacts behavior and is covered by tests.
//   - Safe by construction: panic only on invalid parameters (programmer error).
package inverse

import (
	"os"

	"github.com/rs/zerolog"

	"github.com/katalvlaran/matcache/matrix"
)

// panicNilInverter is the stable message for a nil Inverter (no magic strings).
const panicNilInverter = "inverse: WithInverter: inverter must be non-nil"

// defaultLogger writes human-readable diagnostic notices to stderr.
// Purely observational: nothing in this package branches on logger output.
var defaultLogger = zerolog.New(os.Stderr).With().Timestamp().Logger()

// Option mutates internal options. Safe to apply repeatedly (idempotent).
// Constructors MUST panic only on nonsensical values (programmer error).
type Option func(*Options)

// Options stores the effective configuration after applying Option setters.
// Fields are unexported to prevent external mutation; public entry points
// accept `...Option` and internally resolve them via gatherOptions.
type Options struct {
	inverter  Inverter        // numerical collaborator; matrix.Inverse by default
	logger    zerolog.Logger  // sink for the cache-hit diagnostic event
	solveOpts []matrix.Option // extra parameters forwarded to the inverter
}

// WithInverter swaps the numerical collaborator used on a cache miss.
// Use a counting stub in tests or GonumInverter for the gonum backend.
//
// Errors:
//   - Panics with a stable message when f is nil.
//
// Complexity: O(1).
func WithInverter(f Inverter) Option {
	if f == nil {
		panic(panicNilInverter)
	}

	return func(o *Options) { o.inverter = f }
}

// WithLogger redirects the cache-hit diagnostic event to l.
// Pass zerolog.Nop() to silence it entirely.
// Complexity: O(1).
func WithLogger(l zerolog.Logger) Option {
	return func(o *Options) { o.logger = l }
}

// WithSolveOptions appends matrix-level parameters (pivot tolerance, input
// validation policy) forwarded verbatim to the inverter on a cache miss.
// Incompatible parameters surface as the inverter's own failure.
// Complexity: O(1).
func WithSolveOptions(opts ...matrix.Option) Option {
	return func(o *Options) { o.solveOpts = append(o.solveOpts, opts...) }
}

// gatherOptions resolves defaults, applies setters in order and returns the
// effective configuration. Internal; Inverse calls it exactly once per entry.
func gatherOptions(opts ...Option) Options {
	o := Options{
		inverter: matrix.Inverse,
		logger:   defaultLogger,
	}
	for _, opt := range opts {
		opt(&o)
	}

	return o
}
