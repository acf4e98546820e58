// SPDX-License-Identifier: MIT
// Package inverse: gonum-backed Inverter.
//
// GonumInverter is the ecosystem alternative to the in-house LU kernel:
// same call contract, same sentinel surface, different numerics (gonum
// applies partial pivoting and its own conditioning checks, so it tolerates
// inputs the deterministic non-pivoting kernel rejects).

package inverse

import (
	"fmt"

	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/matcache/matrix"
)

// tagGonum labels errors surfaced by the gonum adapter.
const tagGonum = "GonumInverter"

// GonumInverter computes A⁻¹ via gonum.org/v1/gonum/mat. It satisfies the
// Inverter contract, so it plugs into CachedMatrix.Inverse through
// WithInverter(GonumInverter).
//
// Implementation:
//   - Stage 1: Validate m (not nil, square) — gonum panics on non-square
//     inputs, so the shape sentinel is raised here instead.
//   - Stage 2: Copy into a mat.Dense, invert, copy the result back into a
//     fresh matrix.Dense.
//
// Inputs:
//   - m: non-nil square matrix (n×n).
//   - opts: accepted for contract compatibility and intentionally unused —
//     gonum applies its own pivoting and conditioning policy, so the
//     in-house pivot tolerance does not translate.
//
// Returns:
//   - matrix.Matrix: Dense(n×n) containing A⁻¹.
//
// Errors:
//   - matrix.ErrNilMatrix, matrix.ErrDimensionMismatch (validation),
//     matrix.ErrSingular when gonum reports a singular or effectively
//     singular input (the gonum condition detail is preserved in the
//     message, the sentinel stays errors.Is-matchable).
//
// Complexity:
//   - Time O(n³), Space O(n²) for the two conversion copies plus gonum's
//     own workspace.
func GonumInverter(m matrix.Matrix, opts ...matrix.Option) (matrix.Matrix, error) {
	_ = opts // see Inputs: gonum manages its own numerical policy

	// Validate input non-nil and square
	if err := matrix.ValidateSquareNonNil(m); err != nil {
		return nil, fmt.Errorf("%s: %w", tagGonum, err)
	}

	// Copy into gonum's row-major dense storage.
	n := m.Rows()
	data := make([]float64, n*n)
	var i, j int
	var v float64
	for i = 0; i < n; i++ {
		for j = 0; j < n; j++ {
			v, _ = m.At(i, j) // shape validated above; At errors are not expected
			data[i*n+j] = v
		}
	}
	src := mat.NewDense(n, n, data)

	// Invert; gonum reports singular / ill-conditioned inputs as an error.
	var out mat.Dense
	if err := out.Inverse(src); err != nil {
		return nil, fmt.Errorf("%s: %w (gonum: %v)", tagGonum, matrix.ErrSingular, err)
	}

	// Copy the result back into this package's Dense type.
	res, err := matrix.NewDense(n, n)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", tagGonum, err)
	}
	for i = 0; i < n; i++ {
		for j = 0; j < n; j++ {
			_ = res.Set(i, j, out.At(i, j)) // in-range by construction
		}
	}

	return res, nil
}
