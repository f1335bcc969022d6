// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set (unified, consistent).
// This file defines ONLY package-level sentinel errors used across the matrix
// package. All kernels MUST return these sentinels and tests MUST check them
// via errors.Is. No kernel should panic on user-triggered error conditions.

package matrix

import "errors"

// NOTE ON NAMING & PREFIXING
// --------------------------
// Every message is prefixed with "matrix: ..." for consistency and to allow
// easy grepping across logs. Kernels wrap these sentinels with an operation
// tag via matrixErrorf; callers match with errors.Is.

var (
	// ErrInvalidDimensions indicates that requested matrix dimensions are negative,
	// or non-positive where the constructor requires a non-empty shape.
	ErrInvalidDimensions = errors.New("matrix: dimensions must be > 0")

	// ErrOutOfRange indicates that an index (row, column or flat) is outside valid bounds.
	// Public indexers (At/Set) MUST return this, not panic.
	ErrOutOfRange = errors.New("matrix: index out of range")

	// ErrDimensionMismatch indicates incompatible dimensions between operands,
	// e.g. a vector whose length differs from the number of matrix columns.
	ErrDimensionMismatch = errors.New("matrix: dimension mismatch")

	// ErrNonSquare signals that a square matrix was required but the input wasn't.
	ErrNonSquare = errors.New("matrix: matrix is not square")

	// ErrNilMatrix indicates that a nil Matrix, Array or vector argument was used.
	ErrNilMatrix = errors.New("matrix: nil receiver")

	// ErrSingular is returned when a zero pivot is encountered during Gauss-Jordan
	// inversion. The scheme does not search for pivots, so a zero on the
	// diagonal is terminal.
	ErrSingular = errors.New("matrix: singular matrix")

	// ErrNotVector signals that a one-dimensional array (1×n or n×1) was required
	// but both dimensions are greater than one.
	ErrNotVector = errors.New("matrix: array is not one-dimensional")
)
