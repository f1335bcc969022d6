// SPDX-License-Identifier: MIT

package poly

import "github.com/katalvlaran/lvpoly/matrix"

// Interp evaluates the piecewise-linear function through (xp[k], fp[k]) at
// every element of x.
//
// xp must be sorted ascending; this is the caller's responsibility and is not
// checked. Outside the knots the result is clamped:
//
//	x <= xp[0]   → WithLeft value, or fp[0]
//	x >= xp[n-1] → WithRight value, or fp[n-1]
//
// Inside, a binary search finds lo, hi = lo+1 with xp[lo] < x <= xp[hi] and
// returns fp[lo] + (x-xp[lo])·(fp[hi]-fp[lo])/(xp[hi]-xp[lo]).
//
// Behavior highlights:
//   - The result has the shape of x.
//   - Repeated knots are fine on sorted xp: the bracket always has positive
//     width. On unsorted xp the result is unspecified and may be ±Inf or NaN.
//   - A NaN query yields NaN.
//
// Errors:
//   - ErrInvalidArgument if any array is nil, xp or fp is not 1-D, either has
//     fewer than two elements, or their lengths differ.
//
// Complexity:
//   - Time O(m·log n), Space O(m) for the result.
func Interp(x, xp, fp matrix.Array, opts ...Option) (*matrix.Dense, error) {
	if err := matrix.ValidateArray(x); err != nil {
		return nil, polyErrorf(opInterp, invalidArgument(msgNotArray, err))
	}
	if err := matrix.ValidateVector(xp); err != nil {
		return nil, polyErrorf(opInterp, invalidArgument(msgInterpShape, err))
	}
	if err := matrix.ValidateVector(fp); err != nil {
		return nil, polyErrorf(opInterp, invalidArgument(msgInterpShape, err))
	}
	n := xp.Len()
	if n < 2 || fp.Len() < 2 || n != fp.Len() {
		return nil, polyErrorf(opInterp, invalidArgument(msgInterpShape, nil))
	}
	o := gatherOptions(opts...)

	out, err := matrix.NewDenseLike(x)
	if err != nil {
		return nil, polyErrorf(opInterp, invalidArgument(msgNotArray, err))
	}

	s := segments{
		xp:      xp,
		fp:      fp,
		xpLeft:  xp.Float(0),
		xpRight: xp.Float(n - 1),
		left:    fp.Float(0),
		right:   fp.Float(n - 1),
	}
	if o.hasLeft {
		s.left = o.left
	}
	if o.hasRight {
		s.right = o.right
	}

	dst := out.RawData()
	forEachChunk(len(dst), o, func(lo, hi int) {
		for i := lo; i < hi; i++ {
			dst[i] = s.at(x.Float(i))
		}
	})

	return out, nil
}

// InterpSlice is Interp over plain slices.
func InterpSlice(x, xp, fp []float64, opts ...Option) ([]float64, error) {
	out, err := Interp(matrix.Vector[float64](x), matrix.Vector[float64](xp), matrix.Vector[float64](fp), opts...)
	if err != nil {
		return nil, err
	}

	return out.RawData(), nil
}

// segments holds the knots and the resolved boundary values of one Interp call.
type segments struct {
	xp, fp          matrix.Array
	xpLeft, xpRight float64
	left, right     float64
}

// at returns the interpolated or clamped value for a single query point.
func (s *segments) at(v float64) float64 {
	if v <= s.xpLeft {
		return s.left
	}
	if v >= s.xpRight {
		return s.right
	}

	// Invariant: xp[lo] < v <= xp[hi].
	lo, hi := 0, s.xp.Len()-1
	var mid int
	for hi-lo > 1 {
		mid = lo + (hi-lo)/2
		if v <= s.xp.Float(mid) {
			hi = mid
		} else {
			lo = mid
		}
	}
	x0, x1 := s.xp.Float(lo), s.xp.Float(hi)
	f0, f1 := s.fp.Float(lo), s.fp.Float(hi)

	return f0 + (v-x0)*(f1-f0)/(x1-x0)
}
