// Package matrix provides the compact dense linear-algebra kernel used by
// matcache: a row-major Dense type, strict validators, sentinel errors and
// deterministic Mul / LU / Inverse routines.
//
// 🚀 What lives here?
//
//	The numeric collaborator of the cached-inverse container:
//	  • Dense — row-major float64 storage with bounds-checked access
//	  • Mul — plain matrix multiplication C = A × B
//	  • LU — Doolittle factorization without pivoting (deterministic)
//	  • Inverse — A⁻¹ via LU plus triangular solves per identity column
//
// ✨ Conventions:
//
//   - Sentinel errors only — match with errors.Is(err, matrix.ErrSingular)
//   - Central validators — every kernel fails fast on nil/shape violations
//   - Fast path on *Dense flat slices, interface fallback via At/Set
//   - Functional options — pivot tolerance and input validation policy
//
// Numerical contract: results are floating point. The product of a matrix
// with its computed inverse approximates the identity; off-diagonal residues
// on the order of machine epsilon scaled by the condition number are
// expected and must be tolerated by downstream comparisons.
//
// See examples in example_test.go and the cached container in package
// inverse.
package matrix
