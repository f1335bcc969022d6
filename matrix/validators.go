// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//  - Provide a single, canonical source of truth for common validation checks.
//  - Keep kernels/facades minimal by delegating shape/nil checks here.
//  - Return sentinel errors wrapped with the validator tag so call sites can wrap uniformly.
//
// Determinism & Performance:
//  - All checks are pure, deterministic, O(1) and allocate nothing on success.
//
// Note:
//  - Each composite validator follows a fixed sequence (NotNil → Shape).

package matrix

import "fmt"

// validatorErrorf wraps an underlying error with the given validator tag.
func validatorErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// ValidateNotNil ensures the matrix reference is non-nil.
// Complexity: O(1).
func ValidateNotNil(m Matrix) error {
	if m == nil {
		return validatorErrorf("ValidateNotNil", ErrNilMatrix)
	}

	return nil
}

// ValidateSquare checks that m is non-nil and square (Rows == Cols).
// Errors: ErrNilMatrix if nil, ErrNonSquare otherwise.
// Complexity: O(1).
func ValidateSquare(m Matrix) error {
	if err := ValidateNotNil(m); err != nil {
		return err
	}
	if m.Rows() != m.Cols() {
		return validatorErrorf("ValidateSquare", ErrNonSquare)
	}

	return nil
}

// ValidateVecLen ensures the vector is non-nil and has exactly n elements.
// Complexity: O(1).
func ValidateVecLen(x []float64, n int) error {
	// Disallow nil vectors to avoid subtle bugs in MatVec-like routines.
	if x == nil {
		return validatorErrorf("ValidateVecLen", ErrNilMatrix)
	}
	if len(x) != n {
		return validatorErrorf("ValidateVecLen", ErrDimensionMismatch)
	}

	return nil
}

// ValidateArray ensures a is non-nil and that its length agrees with its shape.
// Complexity: O(1).
func ValidateArray(a Array) error {
	if a == nil {
		return validatorErrorf("ValidateArray", ErrNilMatrix)
	}
	rows, cols := a.Shape()
	if rows < 0 || cols < 0 {
		return validatorErrorf("ValidateArray", ErrInvalidDimensions)
	}
	if rows*cols != a.Len() {
		return validatorErrorf("ValidateArray", ErrDimensionMismatch)
	}

	return nil
}

// ValidateVector runs ValidateArray and then requires a one-dimensional shape.
// Errors: ErrNilMatrix, ErrInvalidDimensions, ErrDimensionMismatch, ErrNotVector.
// Complexity: O(1).
func ValidateVector(a Array) error {
	if err := ValidateArray(a); err != nil {
		return err
	}
	if !IsVector(a) {
		return validatorErrorf("ValidateVector", ErrNotVector)
	}

	return nil
}
