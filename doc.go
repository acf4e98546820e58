// Package matcache memoizes expensive matrix inversions: compute A⁻¹ once,
// on first demand, and return the stored result on every later request —
// until the source matrix is replaced.
//
// 🚀 What is matcache?
//
//	A small, deterministic library built from two subpackages:
//		• matrix/  — dense storage, validators, sentinel errors and the
//		  Mul / LU / Inverse kernels (the numerical collaborator)
//		• inverse/ — the CachedMatrix container with its invalidation-aware
//		  inverse slot and the solve-or-cached retrieval
//
// ✨ Why choose matcache?
//
//   - One-slot by design — exactly one source matrix, at most one inverse;
//     no eviction, no TTL, no keyed lookup to configure or get wrong
//   - Rock-solid invalidation — replacing the source always drops the cache
//   - Pluggable numerics — the default pure-Go LU kernel, or gonum through
//     inverse.GonumInverter; failures keep their sentinel identity either way
//   - Safe under concurrency — one lock per instance covers the whole
//     check-compute-store sequence
//
// Quick example:
//
//	m, _ := matrix.NewDenseFromRows([][]float64{{2, 0}, {0, 2}})
//	cm := inverse.NewCachedMatrix(m)
//
//	inv, _ := cm.Inverse() // computed: [[0.5, 0], [0, 0.5]]
//	inv, _ = cm.Inverse()  // cache hit: same value, no recomputation
//
//	cm.SetSource(m2)       // cache dropped, next call recomputes
//
// See matrix/doc.go for the numerical contract and inverse/doc.go for the
// cache-slot state machine.
package matcache
