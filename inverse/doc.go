// Package inverse memoizes the inverse of a square, invertible matrix:
// computed once on first demand, stored alongside its source, and returned
// unchanged on every later request until the source is replaced.
//
// 🚀 What is a CachedMatrix?
//
//	A container binding one source matrix to a lazily-computed inverse slot:
//	  • NewCachedMatrix — wrap a source, cache starts empty
//	  • SetSource       — replace the source, unconditionally drop the cache
//	  • CachedInverse   — comma-ok access to the stored inverse
//	  • Inverse         — solve-or-cached retrieval (the whole point)
//
// ✨ Guarantees:
//
//   - A present cached inverse always belongs to the source currently held;
//     any SetSource clears it, even when the new matrix equals the old one.
//   - A failed inversion never populates the slot — the cache stays empty
//     and a later call with a corrected source may succeed.
//   - One mutex covers check → compute → store and SetSource: at most one
//     in-flight computation per instance, and a stale inverse is never
//     stored over a source that changed mid-flight.
//
// The numerical work is delegated to an Inverter collaborator. The default
// is matrix.Inverse (the in-house LU kernel); GonumInverter plugs in
// gonum.org/v1/gonum/mat instead. Either way, Inverter failures propagate
// unchanged and keep their sentinel identity for errors.Is.
//
// Cache-slot state machine: {Empty, Populated}. Initial state Empty.
// Empty→Populated on a successful store; Populated→Empty on any SetSource;
// Populated→Populated on overwrite. Nothing leaves Empty except a solve.
//
// ⚙️ Usage:
//
//	cm := inverse.NewCachedMatrix(m)
//	inv, err := cm.Inverse()            // computes and stores
//	inv, err = cm.Inverse()             // cache hit, no recomputation
//	cm.SetSource(m2)                    // cache dropped
//
// A cache hit emits one human-readable diagnostic event through the
// configured zerolog logger; it never affects control flow or the returned
// value. Silence it with inverse.WithLogger(zerolog.Nop()).
package inverse
