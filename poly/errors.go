// SPDX-License-Identifier: MIT
// Package poly: sentinel error set.
// Every kernel validates eagerly and returns an error wrapping one of these
// sentinels; callers match with errors.Is. No kernel panics on user input.

package poly

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidArgument covers every argument the kernels reject before computing:
	// empty coefficients, mismatched lengths, too few samples for the requested
	// degree, out-of-range degree or sample count, and arrays that are not 1-D.
	ErrInvalidArgument = errors.New("poly: invalid argument")

	// ErrSingularMatrix is the fitting refinement of ErrInvalidArgument: the
	// normal matrix Xᵗ·X could not be inverted. errors.Is matches both sentinels.
	ErrSingularMatrix = fmt.Errorf("%w: could not invert Vandermonde matrix", ErrInvalidArgument)
)

// Detail messages appended to ErrInvalidArgument.
const (
	msgNoCoefficients   = "polynomial must have at least one coefficient"
	msgNotArray         = "input data must be an array"
	msgUnequalLength    = "input vectors must be of equal length"
	msgDegreesOfFreedom = "more degrees of freedom than data points"
	msgDegreeRange      = "degree out of range"
	msgTooManySamples   = "too many data points"
	msgInterpShape      = "interp is defined for 1D arrays of equal length"
)

// Operation tags used by polyErrorf.
const (
	opPolyval   = "Polyval"
	opPolyfit   = "Polyfit"
	opPolyfitXY = "PolyfitXY"
	opInterp    = "Interp"
)

// polyErrorf wraps err with an operation tag, preserving it for errors.Is.
func polyErrorf(op string, err error) error {
	return fmt.Errorf("%s: %w", op, err)
}

// invalidArgument builds an ErrInvalidArgument with a detail message and, when
// cause is non-nil, the underlying matrix sentinel as a second wrapped error.
func invalidArgument(msg string, cause error) error {
	if cause == nil {
		return fmt.Errorf("%w: %s", ErrInvalidArgument, msg)
	}

	return fmt.Errorf("%w: %s: %w", ErrInvalidArgument, msg, cause)
}
