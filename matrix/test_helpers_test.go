// SPDX-License-Identifier: MIT
// Package matrix_test contains test helpers
//
// Purpose:
//   - Provide small, deterministic test fixtures and utilities for kernels.
//   - Keep all data finite and well-formed to avoid numeric-policy interference.

package matrix_test

import (
	"errors"
	"math"
	"math/rand"
	"testing"

	"github.com/katalvlaran/matcache/matrix"
)

// hide WRAPS any Matrix to hide its concrete type from type assertions.
// Use hide{X} in tests to force non-*Dense (fallback) paths in the kernels.
type hide struct{ matrix.Matrix }

// MustDense allocates an r×c *Dense or fails the test (fatal on error).
func MustDense(t *testing.T, r, c int) *matrix.Dense {
	t.Helper()
	m, err := matrix.NewDense(r, c)
	if err != nil {
		t.Fatalf("NewDense(%d,%d): %v", r, c, err)
	}

	return m
}

// MustFromRows builds a *Dense from row data or fails the test.
func MustFromRows(t *testing.T, rows [][]float64) *matrix.Dense {
	t.Helper()
	m, err := matrix.NewDenseFromRows(rows)
	if err != nil {
		t.Fatalf("NewDenseFromRows: %v", err)
	}

	return m
}

// IdentityDense returns an n×n identity matrix or fails the test.
func IdentityDense(t *testing.T, n int) *matrix.Dense {
	t.Helper()
	m, err := matrix.NewIdentity(n)
	if err != nil {
		t.Fatalf("NewIdentity(%d): %v", n, err)
	}

	return m
}

// MustSet assigns m[i,j] = v or fails the test.
func MustSet(t *testing.T, m matrix.Matrix, i, j int, v float64) {
	t.Helper()
	if err := m.Set(i, j, v); err != nil {
		t.Fatalf("Set(%d,%d,%g): %v", i, j, v, err)
	}
}

// MustAt reads m[i,j] or fails the test.
func MustAt(t *testing.T, m matrix.Matrix, i, j int) float64 {
	t.Helper()
	v, err := m.At(i, j)
	if err != nil {
		t.Fatalf("At(%d,%d): %v", i, j, err)
	}

	return v
}

// RandWellConditioned returns an n×n diagonally dominant matrix seeded
// deterministically. Strict diagonal dominance keeps the condition number
// small, so inversion round-trips stay well within test tolerances.
func RandWellConditioned(t *testing.T, n int, seed int64) *matrix.Dense {
	t.Helper()
	rng := rand.New(rand.NewSource(seed))
	m := MustDense(t, n, n)
	var i, j int
	var rowSum float64
	for i = 0; i < n; i++ {
		rowSum = 0
		for j = 0; j < n; j++ {
			if i == j {
				continue
			}
			v := rng.Float64()*2 - 1 // uniform in (-1, 1)
			MustSet(t, m, i, j, v)
			rowSum += math.Abs(v)
		}
		// Dominant diagonal: |a_ii| > Σ|a_ij|, guarantees invertibility.
		MustSet(t, m, i, i, rowSum+1.0)
	}

	return m
}

// CompareExact fails the test unless m equals want element-for-element.
func CompareExact(t *testing.T, want [][]float64, m matrix.Matrix) {
	t.Helper()
	if m.Rows() != len(want) || m.Cols() != len(want[0]) {
		t.Fatalf("shape mismatch: want %dx%d, got %dx%d", len(want), len(want[0]), m.Rows(), m.Cols())
	}
	for i := range want {
		for j := range want[i] {
			if got := MustAt(t, m, i, j); got != want[i][j] {
				t.Fatalf("at [%d,%d]: want %g, got %g", i, j, want[i][j], got)
			}
		}
	}
}

// CompareClose fails the test unless |a[i,j]-b[i,j]| <= atol everywhere.
func CompareClose(t *testing.T, a, b matrix.Matrix, atol float64) {
	t.Helper()
	if a.Rows() != b.Rows() || a.Cols() != b.Cols() {
		t.Fatalf("shape mismatch: %dx%d vs %dx%d", a.Rows(), a.Cols(), b.Rows(), b.Cols())
	}
	var i, j int
	var av, bv float64
	for i = 0; i < a.Rows(); i++ {
		for j = 0; j < a.Cols(); j++ {
			av = MustAt(t, a, i, j)
			bv = MustAt(t, b, i, j)
			if math.Abs(av-bv) > atol {
				t.Fatalf("at [%d,%d]: |%g - %g| > %g", i, j, av, bv, atol)
			}
		}
	}
}

// AssertErrorIs fails the test unless errors.Is(err, target).
func AssertErrorIs(t *testing.T, err, target error) {
	t.Helper()
	if !errors.Is(err, target) {
		t.Fatalf("want errors.Is(err, %v), got: %v", target, err)
	}
}

// ExpectPanic fails the test unless fn panics.
func ExpectPanic(t *testing.T, fn func()) {
	t.Helper()
	defer func() {
		if recover() == nil {
			t.Fatalf("expected panic, got none")
		}
	}()
	fn()
}
