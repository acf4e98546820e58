// SPDX-License-Identifier: MIT
// Package matrix: numeric kernels (Mul, LU, Inverse).
//
// Purpose:
//   - Declare the canonical linear-algebra kernels used by the cached-inverse
//     container and its tests.
//   - Define operation tags and shared constants for determinism and error
//     reporting.
//
// Notes:
//   - All kernels use the central validators and wrap sentinels with their
//     operation tag via matrixErrorf at the facade.
//   - No pivoting anywhere: identical inputs produce bit-identical outputs.

package matrix

import (
	"fmt"
	"math"
)

// ZeroSum is the initial accumulator value for substitution and dot products.
const ZeroSum = 0.0

// Operation name constants for unified error wrapping and reducing magic strings.
const (
	opMul     = "Mul"
	opLU      = "LU"
	opInverse = "Inverse"
)

// matrixErrorf wraps err with an operation tag, preserving the original error
// via %w so errors.Is/As still match the sentinel. Call only when err != nil.
//
// Complexity: O(1).
func matrixErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// Mul performs standard matrix multiplication C = A × B (no aliasing).
//
// Implementation:
//   - Stage 1: Validate A, B (not nil) and inner dimensions (A.Cols == B.Rows).
//   - Stage 2: If A and B are *Dense, use i→k→j with row-major strides and
//     zero-skip on A[i,k]; otherwise use i→j→k via At/Set.
//
// Inputs:
//   - a: left matrix with shape (r × n).
//   - b: right matrix with shape (n × c).
//
// Returns:
//   - Matrix: new Dense C with shape (r × c).
//
// Errors:
//   - ErrNilMatrix (nil input), ErrDimensionMismatch (inner mismatch).
//
// Determinism:
//   - Fixed loop orders (i→k→j fast path, i→j→k fallback).
//
// Complexity:
//   - Time O(r*n*c), Space O(r*c).
//
// AI-Hints:
//   - Keep both operands as *Dense to unlock the flat-slice fast path.
func Mul(a, b Matrix) (Matrix, error) {
	// Validate inputs via canonical validator
	if err := ValidateMulCompatible(a, b); err != nil {
		return nil, matrixErrorf(opMul, err)
	}

	// Allocate result Dense
	aRows, aCols, bCols := a.Rows(), a.Cols(), b.Cols()
	res, err := NewDense(aRows, bCols)
	if err != nil {
		return nil, matrixErrorf(opMul, err)
	}

	var (
		i, j, k         int // loop iterators (deterministic order)
		av, bv, current float64
	)
	// Fast path for two Dense operands: row-major accumulation into res.data.
	if da, okA := a.(*Dense); okA {
		if db, okB := b.(*Dense); okB {
			var baseA, baseB, baseR int
			for i = 0; i < aRows; i++ {
				baseA = i * aCols
				baseR = i * bCols
				for k = 0; k < aCols; k++ {
					av = da.data[baseA+k]
					if av == 0 {
						continue // skip zero for performance
					}
					baseB = k * bCols
					for j = 0; j < bCols; j++ {
						res.data[baseR+j] += av * db.data[baseB+j]
					}
				}
			}

			return res, nil
		}
	}

	// Fallback: generic interface triple loop (i→j→k).
	for i = 0; i < aRows; i++ {
		for j = 0; j < bCols; j++ {
			current = ZeroSum
			for k = 0; k < aCols; k++ {
				av, err = a.At(i, k)
				if err != nil {
					return nil, matrixErrorf(opMul, fmt.Errorf("At(%d,%d): %w", i, k, err))
				}
				if av == 0 {
					continue // skip zero for performance
				}
				bv, err = b.At(k, j)
				if err != nil {
					return nil, matrixErrorf(opMul, fmt.Errorf("At(%d,%d): %w", k, j, err))
				}
				current += av * bv // accumulate product
			}
			if err = res.Set(i, j, current); err != nil {
				return nil, matrixErrorf(opMul, fmt.Errorf("Set(%d,%d): %w", i, j, err))
			}
		}
	}

	return res, nil
}

// LU computes the Doolittle factorization A = L*U with unit diagonal on L
// (no pivoting).
//
// Implementation:
//   - Stage 1: Validate m (not nil, square; finite entries under the input
//     policy); allocate Dense L, U; set diag(L)=1.
//   - Stage 2: For i=0..n-1, build row i of U and column i of L in fixed
//     order, guarding each pivot against the configured tolerance.
//
// Inputs:
//   - m: square Matrix (n×n).
//   - opts: WithPivotTolerance, WithInputValidation.
//
// Returns:
//   - Matrix: L (unit lower triangular).
//   - Matrix: U (upper triangular).
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch, ErrNaNInf (input policy),
//     ErrSingular (|U[i,i]| <= tolerance during factorization).
//
// Determinism:
//   - Fixed i→{j≥i} for U, then {j>i}→i for L; no pivoting.
//
// Complexity:
//   - Time O(n³), Space O(n²).
//
// AI-Hints:
//   - Numerical stability requires pivoting upstream; this kernel trades
//     stability for reproducibility. Precondition ill-scaled inputs first.
func LU(m Matrix, opts ...Option) (Matrix, Matrix, error) {
	// Resolve the effective options once per entry.
	o := gatherOptions(opts...)

	// Validate input non-nil and square
	if err := ValidateSquareNonNil(m); err != nil {
		return nil, nil, matrixErrorf(opLU, err)
	}
	// Enforce the finite-value input policy when enabled
	if o.validateInput {
		if err := ValidateFinite(m); err != nil {
			return nil, nil, matrixErrorf(opLU, err)
		}
	}

	// Allocate L and U
	n := m.Rows()
	lRaw, err := NewDense(n, n)
	if err != nil {
		return nil, nil, matrixErrorf(opLU, err)
	}
	uRaw, err := NewDense(n, n)
	if err != nil {
		return nil, nil, matrixErrorf(opLU, err)
	}

	// Initialize L diagonal to 1 (unit lower triangular)
	for i := 0; i < n; i++ {
		lRaw.data[i*n+i] = 1.0
	}

	// Detect fast path on *Dense
	mRaw, useFast := m.(*Dense)
	var i, j, k int // loop iterators
	var sum, pivot float64
	if useFast {
		// Fast path: operate directly on flat slices.
		var baseI, baseJ int
		for i = 0; i < n; i++ {
			baseI = i * n
			// Compute U[i][j] for j >= i
			for j = i; j < n; j++ {
				sum = ZeroSum
				for k = 0; k < i; k++ {
					sum += lRaw.data[baseI+k] * uRaw.data[k*n+j]
				}
				uRaw.data[baseI+j] = mRaw.data[baseI+j] - sum
			}

			// Pivot guard: tolerance-based singularity detection
			if math.Abs(uRaw.data[baseI+i]) <= o.pivotTol {
				return nil, nil, matrixErrorf(opLU, ErrSingular)
			}
			pivot = uRaw.data[baseI+i]

			// Compute L[j][i] for j > i
			for j = i + 1; j < n; j++ {
				sum = ZeroSum
				baseJ = j * n
				for k = 0; k < i; k++ {
					sum += lRaw.data[baseJ+k] * uRaw.data[k*n+i]
				}
				lRaw.data[baseJ+i] = (mRaw.data[baseJ+i] - sum) / pivot
			}
		}

		return lRaw, uRaw, nil
	}

	// Fallback: generic interface path via At.
	var a, l, u float64
	for i = 0; i < n; i++ {
		// Compute U[i][j] for j >= i
		for j = i; j < n; j++ {
			sum = ZeroSum
			for k = 0; k < i; k++ {
				l = lRaw.data[i*n+k] // L is always *Dense here
				u = uRaw.data[k*n+j]
				sum += l * u
			}
			a, err = m.At(i, j)
			if err != nil {
				return nil, nil, matrixErrorf(opLU, fmt.Errorf("At(%d,%d): %w", i, j, err))
			}
			uRaw.data[i*n+j] = a - sum
		}

		// Pivot guard (generic path)
		pivot = uRaw.data[i*n+i]
		if math.Abs(pivot) <= o.pivotTol {
			return nil, nil, matrixErrorf(opLU, ErrSingular)
		}

		// Compute L[j][i] for j > i
		for j = i + 1; j < n; j++ {
			sum = ZeroSum
			for k = 0; k < i; k++ {
				sum += lRaw.data[j*n+k] * uRaw.data[k*n+i]
			}
			a, err = m.At(j, i)
			if err != nil {
				return nil, nil, matrixErrorf(opLU, fmt.Errorf("At(%d,%d): %w", j, i, err))
			}
			lRaw.data[j*n+i] = (a - sum) / pivot
		}
	}

	return lRaw, uRaw, nil
}

// Inverse computes A⁻¹ using Doolittle LU factorization without pivoting
// (deterministic). Produces a new Dense matrix; does not mutate the input.
//
// Implementation:
//   - Stage 1: Factorize via LU(m, opts...) → L (unit lower), U (upper).
//     Allocate inv(n×n) and workspace vectors y, x of length n.
//   - Stage 2: For each canonical basis column e_col: forward solve
//     L*y = e_col (top-down), backward solve U*x = y (bottom-up, pivots
//     guarded by LU), write x into column col of inv.
//
// Inputs:
//   - m: non-nil square matrix (n×n), assumed invertible; singularity within
//     the pivot tolerance is detected, not assumed away.
//   - opts: WithPivotTolerance, WithInputValidation (forwarded to LU).
//
// Returns:
//   - Matrix: Dense(n×n) containing A⁻¹.
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch, ErrNaNInf, ErrSingular — all
//     surfaced from LU and wrapped with the Inverse tag.
//
// Determinism:
//   - Fixed traversal (col↑, forward i↑, backward i↓) and no pivoting →
//     identical results for identical inputs.
//
// Complexity:
//   - Time O(n³), Space O(n²).
//
// Notes:
//   - Floating-point contract: A·Inverse(A) approximates I_n; off-identity
//     residues scale with machine epsilon times the condition number of A.
//     Downstream comparisons must use a tolerance, never exact equality.
//   - If only A⁻¹·b is needed, solve via LU once instead of forming A⁻¹.
//
// AI-Hints:
//   - Satisfies the inverse.Inverter contract; it is the default collaborator
//     of the cached container.
func Inverse(m Matrix, opts ...Option) (Matrix, error) {
	// LU performs all validation (nil, square, finite, singular).
	lMat, uMat, err := LU(m, opts...)
	if err != nil {
		return nil, matrixErrorf(opInverse, err)
	}

	// Prepare result container and scratch arrays
	n := m.Rows()
	inv, err := NewDense(n, n)
	if err != nil {
		return nil, matrixErrorf(opInverse, err)
	}

	// LU always returns *Dense factors; assert once and use flat indexing.
	ld := lMat.(*Dense)
	ud := uMat.(*Dense)

	var (
		col, i, k int // loop iterators
		sum       float64
		y         = make([]float64, n) // forward substitution workspace
		x         = make([]float64, n) // backward substitution workspace
		baseI     int                  // row-major stride helper
	)
	for col = 0; col < n; col++ {
		// Forward substitution: L*y = e_col
		for i = 0; i < n; i++ {
			sum = ZeroSum
			baseI = i * n
			for k = 0; k < i; k++ {
				sum += ld.data[baseI+k] * y[k]
			}
			if i == col {
				y[i] = 1.0 - sum
			} else {
				y[i] = -sum
			}
		}
		// Backward substitution: U*x = y (pivots already guarded by LU)
		for i = n - 1; i >= 0; i-- {
			sum = ZeroSum
			baseI = i * n
			for k = i + 1; k < n; k++ {
				sum += ud.data[baseI+k] * x[k]
			}
			x[i] = (y[i] - sum) / ud.data[baseI+i]
		}
		// Write x into column col of inv
		for i = 0; i < n; i++ {
			inv.data[i*n+col] = x[i]
		}
	}

	return inv, nil
}
