// SPDX-License-Identifier: MIT

package poly

import "github.com/katalvlaran/lvpoly/matrix"

// Polyval evaluates the polynomial p at every element of x.
//
// p is ordered highest degree first: p[0]·xᵈ + p[1]·xᵈ⁻¹ + … + p[d], d = len(p)-1.
// A single coefficient is a constant function.
//
// Implementation:
//   - Stage 1: validate p (non-empty) and x (non-nil, consistent shape).
//   - Stage 2: allocate the result with the shape of x.
//   - Stage 3: Horner per point, y = p[0]; y = y*x + p[k] for k = 1..d.
//
// Behavior highlights:
//   - Every element of x is evaluated in row-major order, whatever its shape.
//   - A zero-length x yields a zero-length result of the same shape.
//   - NaN and ±Inf in p or x propagate through the arithmetic unchanged.
//
// Errors:
//   - ErrInvalidArgument for empty p or a nil/inconsistent x.
//
// Complexity:
//   - Time O(len(x)·d), Space O(len(x)) for the result.
func Polyval(p []float64, x matrix.Array, opts ...Option) (*matrix.Dense, error) {
	if len(p) == 0 {
		return nil, polyErrorf(opPolyval, invalidArgument(msgNoCoefficients, nil))
	}
	if err := matrix.ValidateArray(x); err != nil {
		return nil, polyErrorf(opPolyval, invalidArgument(msgNotArray, err))
	}
	o := gatherOptions(opts...)

	out, err := matrix.NewDenseLike(x)
	if err != nil {
		return nil, polyErrorf(opPolyval, invalidArgument(msgNotArray, err))
	}

	// Private copy: the caller may reuse p while workers are running.
	c := make([]float64, len(p))
	copy(c, p)

	dst := out.RawData()
	forEachChunk(len(dst), o, func(lo, hi int) {
		for i := lo; i < hi; i++ {
			dst[i] = horner(c, x.Float(i))
		}
	})

	return out, nil
}

// PolyvalSlice is Polyval over plain slices.
func PolyvalSlice(p, x []float64, opts ...Option) ([]float64, error) {
	out, err := Polyval(p, matrix.Vector[float64](x), opts...)
	if err != nil {
		return nil, err
	}

	return out.RawData(), nil
}

// horner evaluates c (highest degree first) at x.
func horner(c []float64, x float64) float64 {
	y := c[0]
	for k := 1; k < len(c); k++ {
		y = y*x + c[k]
	}

	return y
}
