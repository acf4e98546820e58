// SPDX-License-Identifier: MIT
// Package inverse: the cache-carrying container.
//
// CachedMatrix is an explicit struct with private fields and accessor
// methods — no shared mutable closures, no sentinel values standing in for
// "absent". The inverse slot is nil when empty; CachedInverse exposes it
// with comma-ok semantics so a legitimate zero matrix is never mistaken
// for an empty cache.

package inverse

import (
	"sync"

	"github.com/katalvlaran/matcache/matrix"
)

// CachedMatrix binds one source matrix to a lazily-computed inverse slot.
//
// The container exclusively owns both fields between calls; the single
// mutex guards every accessor as well as the solve-or-cached sequence in
// Inverse, so concurrent use is safe: at most one computation is in flight
// per instance and SetSource can never interleave with a pending store.
//
// Invariant: whenever the slot is populated, it holds the inverse of the
// source currently held. Enforced structurally — the only transitions are
// SetSource (always clears) and the store step of Inverse (runs under the
// same lock as its check).
type CachedMatrix struct {
	mu      sync.Mutex    // guards source and inverse as one unit
	source  matrix.Matrix // the matrix being inverted
	inverse matrix.Matrix // cached inverse; nil means the slot is empty
}

// NewCachedMatrix wraps an initial source matrix; the cache starts empty.
// No squareness or invertibility validation happens here — by contract it
// is deferred to inversion time, where the Inverter reports it.
// Complexity: O(1); the source is referenced, not copied.
func NewCachedMatrix(src matrix.Matrix) *CachedMatrix {
	return &CachedMatrix{source: src}
}

// SetSource replaces the held source matrix with m and unconditionally
// clears the cached inverse, regardless of whether m differs from the
// previous source (equality is intentionally not checked).
// Total over its inputs: no validation, no error conditions.
// Complexity: O(1).
func (c *CachedMatrix) SetSource(m matrix.Matrix) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.source = m
	c.inverse = nil // any mutation of the source invalidates the cache
}

// Source returns the currently held source matrix. No copy is made; the
// caller must not mutate the result while the container is in use, since a
// mutated source would silently invalidate a populated cache.
// Complexity: O(1).
func (c *CachedMatrix) Source() matrix.Matrix {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.source
}

// SetCachedInverse stores inv as the cached inverse, overwriting any
// previous value. The caller is trusted to supply the actual inverse of the
// current source; no verification is performed here.
// Complexity: O(1).
func (c *CachedMatrix) SetCachedInverse(inv matrix.Matrix) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.inverse = inv
}

// CachedInverse returns the stored inverse and true when the slot is
// populated, or (nil, false) when it is empty. The boolean is the only
// absence signal — callers must not compare the matrix against zero.
// Complexity: O(1).
func (c *CachedMatrix) CachedInverse() (matrix.Matrix, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.inverse == nil {
		return nil, false
	}

	return c.inverse, true
}
