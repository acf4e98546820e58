// SPDX-License-Identifier: MIT
// Package inverse: the solve-or-cached retrieval algorithm.

package inverse

import (
	"github.com/katalvlaran/matcache/matrix"
)

// Inverter is the external collaborator performing the actual numerical
// solve of A·X = I for X. It must fail (rather than panic) when the input
// is not square, is singular within its numerical tolerance, or when the
// forwarded parameters are incompatible with the input — and its failures
// must stay errors.Is-matchable against the matrix package sentinels.
//
// matrix.Inverse satisfies this contract and is the default; GonumInverter
// is the gonum-backed alternative.
type Inverter func(m matrix.Matrix, opts ...matrix.Option) (matrix.Matrix, error)

// Inverse returns the inverse of the current source, computing it only if
// it is not already cached.
//
// Implementation:
//   - Stage 1: Under the instance lock, query the cache slot. On a hit,
//     emit the cache-hit diagnostic event and return the stored value
//     unchanged — no recomputation, no side effects on the container.
//   - Stage 2: On a miss, invoke the configured Inverter with the source
//     and any forwarded solve parameters, store the result in the slot and
//     return it.
//
// Behavior highlights:
//   - The whole check→compute→store sequence runs under one lock shared
//     with SetSource: at most one in-flight computation per instance, and
//     an inverse computed for a replaced source is never stored.
//   - Inverter failures are propagated unchanged (never caught, masked or
//     retried) and leave the cache slot empty.
//
// Inputs:
//   - opts: WithInverter, WithLogger, WithSolveOptions.
//
// Returns:
//   - matrix.Matrix: the cached or freshly computed inverse.
//
// Errors:
//   - Whatever the Inverter reports: matrix.ErrNilMatrix,
//     matrix.ErrDimensionMismatch (non-square), matrix.ErrSingular,
//     matrix.ErrNaNInf — matchable via errors.Is.
//
// Complexity:
//   - O(1) on a hit; the Inverter's own cost on a miss (O(n³) for the
//     default LU-based kernel).
//
// Notes:
//   - Results are floating point: the product of the source with the
//     returned inverse approximates the identity, with residues on the
//     order of machine epsilon scaled by the condition number. That is a
//     property of the Inverter, not of this cache.
func (c *CachedMatrix) Inverse(opts ...Option) (matrix.Matrix, error) {
	o := gatherOptions(opts...)

	// One mutual-exclusion scope for the whole read-check-write sequence.
	c.mu.Lock()
	defer c.mu.Unlock()

	// Cache hit: emit the diagnostic event and return the stored value.
	if c.inverse != nil {
		o.logger.Info().
			Int("rows", c.inverse.Rows()).
			Int("cols", c.inverse.Cols()).
			Msg("inverse: cache hit, returning stored inverse")

		return c.inverse, nil
	}

	// Cache miss: delegate to the collaborator with forwarded parameters.
	inv, err := o.inverter(c.source, o.solveOpts...)
	if err != nil {
		// Propagate unchanged; the slot stays empty so a corrected source
		// (or corrected parameters) can succeed on a later call.
		return nil, err
	}

	// Populate the slot and return the freshly computed inverse.
	c.inverse = inv

	return inv, nil
}
