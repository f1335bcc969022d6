// SPDX-License-Identifier: MIT

// Package matrix: the two contracts consumed by numeric kernels.
//
//   - Array is the read-only flat numeric buffer with shape metadata. Every
//     kernel in lvpoly consumes its inputs through Array and never branches
//     on the concrete container.
//   - Matrix is the mutable two-dimensional view used by linear-algebra
//     helpers (Gram, MatVec, Inverse).
package matrix

// Array is a flat, row-major numeric buffer with known length and shape.
//
// Contract:
//   - Len() == rows*cols for the values returned by Shape().
//   - Float(i) reads the i-th element in row-major order, widened to float64.
//     Callers guarantee 0 ≤ i < Len(); implementations may panic otherwise,
//     as slices do.
//   - Shape distinguishes a 1×n row vector from an n×1 column and from a
//     proper matrix (both dimensions > 1).
//
// Complexity: all methods are expected O(1).
type Array interface {
	// Len returns the number of elements.
	Len() int

	// Float returns element i (row-major) as float64.
	Float(i int) float64

	// Shape returns (rows, cols).
	Shape() (rows, cols int)
}

// Matrix represents a two-dimensional mutable array of float64 values.
//
// Complexity notes: all methods are expected O(1) except Clone (O(r*c)).
type Matrix interface {
	// Rows returns the number of rows in the matrix.
	Rows() int

	// Cols returns the number of columns in the matrix.
	Cols() int

	// At retrieves the element at position (i, j).
	// Returns ErrOutOfRange if i<0, i>=Rows(), j<0 or j>=Cols().
	At(i, j int) (float64, error)

	// Set assigns the value v at position (i, j).
	// Returns ErrOutOfRange if indices are invalid.
	Set(i, j int, v float64) error

	// Clone returns a deep copy of the matrix.
	Clone() Matrix
}

// Number is the set of element types Vector and Column widen to float64.
type Number interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 |
		~float32 | ~float64
}
