// SPDX-License-Identifier: MIT

package poly

import (
	"slices"

	"github.com/katalvlaran/lvpoly/matrix"
)

const (
	// MaxDegree is the largest degree Polyfit accepts.
	MaxDegree = 255

	// MaxSamples is the largest number of (x, y) pairs Polyfit accepts.
	MaxSamples = 65535
)

// Polyfit fits a polynomial of the given degree to y sampled at x = 0, 1, …, n-1.
// It is PolyfitXY with x = matrix.Arange(y.Len()).
//
// The result is a (degree+1)×1 column, highest degree first.
func Polyfit(y matrix.Array, degree int) (*matrix.Dense, error) {
	if y == nil {
		return nil, polyErrorf(opPolyfit, invalidArgument(msgNotArray, nil))
	}

	return fit(opPolyfit, matrix.Arange(y.Len()), y, degree)
}

// PolyfitXY fits a polynomial of the given degree to the pairs (x[i], y[i]) by
// ordinary least squares.
//
// Implementation:
//   - Stage 1: validate x and y (1-D, equal length), degree ∈ [0, MaxDegree],
//     n ≤ MaxSamples, and n ≥ degree.
//   - Stage 2: design matrix X, (degree+1)×n, X[j,i] = x[i]^j built by repeated
//     multiplication down each column.
//   - Stage 3: P = X·Xᵗ (matrix.Gram), inverted in place by matrix.Invert.
//   - Stage 4: β = P⁻¹·(X·y), reversed to highest degree first.
//
// Behavior highlights:
//   - n == degree passes validation; the normal matrix is then rank deficient and
//     the call fails with ErrSingularMatrix. Only n < degree is rejected up front.
//   - A pivot is treated as zero when |pivot| < matrix.PivotEpsilon. The threshold
//     is absolute, not relative to the scale of x: samples with tiny magnitude
//     (e.g. x = 1e-9, 2e-9, …) fail with ErrSingularMatrix even when pairwise
//     distinct. Rescale x to order one before fitting.
//   - Otherwise a singular result diagnoses duplicate or near-duplicate x samples.
//   - X and P are transient and released on return, including the error path.
//
// Errors:
//   - ErrInvalidArgument for nil or non-1-D input, len(x) != len(y), degree out of
//     range, too many samples, or n < degree.
//   - ErrSingularMatrix (also matches ErrInvalidArgument) when P is not invertible.
//
// Complexity:
//   - Time O(n·d² + d³), Space O(n·d + d²), d = degree+1.
func PolyfitXY(x, y matrix.Array, degree int) (*matrix.Dense, error) {
	if x == nil || y == nil {
		return nil, polyErrorf(opPolyfitXY, invalidArgument(msgNotArray, nil))
	}
	if x.Len() != y.Len() {
		return nil, polyErrorf(opPolyfitXY, invalidArgument(msgUnequalLength, nil))
	}

	return fit(opPolyfitXY, x, y, degree)
}

// PolyfitSlice is PolyfitXY over plain slices. A nil x selects the implicit
// x = 0, 1, …, n-1 of Polyfit. The result is a slice of degree+1 coefficients.
func PolyfitSlice(x, y []float64, degree int) ([]float64, error) {
	var (
		out *matrix.Dense
		err error
	)
	if x == nil {
		out, err = Polyfit(matrix.Vector[float64](y), degree)
	} else {
		out, err = PolyfitXY(matrix.Vector[float64](x), matrix.Vector[float64](y), degree)
	}
	if err != nil {
		return nil, err
	}

	return out.RawData(), nil
}

// fit runs the shared validation and the normal-equations solve.
func fit(op string, x, y matrix.Array, degree int) (*matrix.Dense, error) {
	// Stage 1: validation, before any allocation.
	if err := matrix.ValidateVector(x); err != nil {
		return nil, polyErrorf(op, invalidArgument(msgNotArray, err))
	}
	if err := matrix.ValidateVector(y); err != nil {
		return nil, polyErrorf(op, invalidArgument(msgNotArray, err))
	}
	if degree < 0 || degree > MaxDegree {
		return nil, polyErrorf(op, invalidArgument(msgDegreeRange, nil))
	}
	n := y.Len()
	if n > MaxSamples {
		return nil, polyErrorf(op, invalidArgument(msgTooManySamples, nil))
	}
	if n < degree {
		return nil, polyErrorf(op, invalidArgument(msgDegreesOfFreedom, nil))
	}
	rows := degree + 1

	// Stage 2: design matrix, row j holds x^j; row 0 is all ones.
	X, err := matrix.Zeros(rows, n)
	if err != nil {
		return nil, polyErrorf(op, err)
	}
	xt := X.RawData()
	var (
		i, j int
		xi   float64
	)
	for i = 0; i < n; i++ {
		xi = x.Float(i)
		xt[i] = 1
		for j = 1; j < rows; j++ {
			xt[j*n+i] = xt[(j-1)*n+i] * xi
		}
	}

	// Stage 3: normal matrix and its inverse.
	P, err := matrix.Gram(X)
	if err != nil {
		return nil, polyErrorf(op, err)
	}
	if !matrix.Invert(P) {
		return nil, polyErrorf(op, ErrSingularMatrix)
	}

	// Stage 4: β = P⁻¹·(X·y), then highest degree first.
	xy, err := matrix.MatVec(X, matrix.Floats(y))
	if err != nil {
		return nil, polyErrorf(op, err)
	}
	beta, err := matrix.MatVec(P, xy)
	if err != nil {
		return nil, polyErrorf(op, err)
	}
	slices.Reverse(beta)

	out, err := matrix.NewDenseFrom(rows, 1, beta)
	if err != nil {
		return nil, polyErrorf(op, err)
	}

	return out, nil
}
