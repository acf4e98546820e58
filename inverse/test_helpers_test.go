// SPDX-License-Identifier: MIT
// Package inverse_test contains test helpers
//
// Purpose:
//   - Provide deterministic fixtures for the cached container tests.
//   - Provide a call-counting Inverter stub to observe hit/miss behavior.

package inverse_test

import (
	"errors"
	"math"
	"testing"

	"github.com/katalvlaran/matcache/matrix"
)

// mustFromRows builds a *Dense from row data or fails the test.
func mustFromRows(t *testing.T, rows [][]float64) *matrix.Dense {
	t.Helper()
	m, err := matrix.NewDenseFromRows(rows)
	if err != nil {
		t.Fatalf("NewDenseFromRows: %v", err)
	}

	return m
}

// mustAt reads m[i,j] or fails the test.
func mustAt(t *testing.T, m matrix.Matrix, i, j int) float64 {
	t.Helper()
	v, err := m.At(i, j)
	if err != nil {
		t.Fatalf("At(%d,%d): %v", i, j, err)
	}

	return v
}

// compareClose fails the test unless |a[i,j]-b[i,j]| <= atol everywhere.
func compareClose(t *testing.T, a, b matrix.Matrix, atol float64) {
	t.Helper()
	if a.Rows() != b.Rows() || a.Cols() != b.Cols() {
		t.Fatalf("shape mismatch: %dx%d vs %dx%d", a.Rows(), a.Cols(), b.Rows(), b.Cols())
	}
	var i, j int
	for i = 0; i < a.Rows(); i++ {
		for j = 0; j < a.Cols(); j++ {
			av, bv := mustAt(t, a, i, j), mustAt(t, b, i, j)
			if math.Abs(av-bv) > atol {
				t.Fatalf("at [%d,%d]: |%g - %g| > %g", i, j, av, bv, atol)
			}
		}
	}
}

// assertErrorIs fails the test unless errors.Is(err, target).
func assertErrorIs(t *testing.T, err, target error) {
	t.Helper()
	if !errors.Is(err, target) {
		t.Fatalf("want errors.Is(err, %v), got: %v", target, err)
	}
}

// countingInverter wraps the default kernel and counts invocations; when
// fail is set it reports that error instead of computing. Solve runs the
// collaborator under the container lock, so calls needs no extra guarding
// even in the concurrency tests.
type countingInverter struct {
	calls int
	fail  error
}

// invert satisfies the inverse.Inverter signature.
func (ci *countingInverter) invert(m matrix.Matrix, opts ...matrix.Option) (matrix.Matrix, error) {
	ci.calls++
	if ci.fail != nil {
		return nil, ci.fail
	}

	return matrix.Inverse(m, opts...)
}
