// Package matrix provides the array contract and the dense linear-algebra
// kernels that lvpoly's polynomial routines are built on.
//
// The matrix package provides:
//
//   - Array, a read-only row-major view with shape, implemented by *Dense and
//     by the zero-copy adapters Vector[T], Column[T] and Range.
//   - Dense, a row-major float64 matrix with error-returning At/Set.
//   - Gram (X·Xᵗ), MatVec and the Gauss-Jordan inverter Invert/Inverse.
//   - Validators shared by every kernel (ValidateArray, ValidateVector, ...).
//
// Invert does no pivot search. It is meant for the symmetric positive-definite
// normal matrices produced by least-squares fitting, not as a general solver.
//
// See the examples in this package and poly for usage patterns.
package matrix
