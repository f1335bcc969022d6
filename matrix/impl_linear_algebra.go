// SPDX-License-Identifier: MIT
// Package matrix provides the small set of dense linear-algebra kernels used by
// least-squares fitting: the Gram product X·Xᵗ, matrix-vector product, and
// Gauss-Jordan inversion (in place, and as an error-returning facade).
//
// Notes:
//   - All kernels use the central validators and wrap sentinels via matrixErrorf.
//   - Every kernel has a *Dense fast-path on the flat buffer and an interface fallback.

package matrix

import (
	"fmt"
	"math"
)

// ZeroSum is the initial sum value for dot products and similar accumulations.
const ZeroSum = 0.0

// PivotEpsilon is the magnitude below which a Gauss-Jordan pivot is treated as zero.
// It is the float64 machine epsilon rounded up, applied as an absolute threshold.
const PivotEpsilon = 2.3e-16

// Operation name constants for unified error wrapping and reducing magic strings.
const (
	opGram    = "Gram"
	opInverse = "Inverse"
	opMatVec  = "MatVec"
)

// matrixErrorf wraps err with an operation tag, preserving the original error via %w.
// Use only when err != nil to avoid creating a non-nil wrapper around a nil cause.
func matrixErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// Invert replaces the square matrix m with its inverse using Gauss-Jordan
// elimination against an augmented identity.
//
// Implementation:
//   - Stage 1: allocate the identity companion u (n×n).
//   - Stage 2: for each column k, use m[k,k] as the pivot as-is (no row search or
//     reordering) and eliminate column k from every other row of m, applying the
//     same row operation to u.
//   - Stage 3: normalize each row of m and u by the remaining diagonal of m.
//   - Stage 4: copy u into m.
//
// Behavior highlights:
//   - Returns false when a pivot has magnitude < PivotEpsilon, and when m is nil
//     or not square. On false the contents of m are unspecified.
//   - m is owned exclusively by this call for its duration; no other buffer aliases it.
//
// Notes:
//   - Without pivot search this is not a general-purpose inverter. It is exact
//     enough for well-conditioned symmetric positive-definite input such as the
//     normal matrix Xᵗ·X built from pairwise distinct samples; a false result on
//     such input diagnoses duplicate or near-duplicate samples.
//
// Complexity:
//   - Time O(n^3), Space O(n^2) for the companion.
func Invert(m *Dense) bool {
	if m == nil || m.r != m.c {
		return false
	}
	n := m.r
	a := m.data

	// Stage 1: identity companion.
	u := make([]float64, n*n)
	for i := 0; i < n; i++ {
		u[i*n+i] = 1
	}

	// Stage 2: column-by-column elimination with the diagonal as pivot.
	var (
		k, i, j    int
		pivot, f   float64
		rowK, rowI int
	)
	for k = 0; k < n; k++ {
		rowK = k * n
		pivot = a[rowK+k]
		if math.Abs(pivot) < PivotEpsilon {
			return false
		}
		for i = 0; i < n; i++ {
			if i == k {
				continue
			}
			rowI = i * n
			f = a[rowI+k] / pivot
			for j = 0; j < n; j++ {
				a[rowI+j] -= f * a[rowK+j]
				u[rowI+j] -= f * u[rowK+j]
			}
		}
	}

	// Stage 3: scale rows so that the left block becomes the identity.
	for i = 0; i < n; i++ {
		rowI = i * n
		pivot = a[rowI+i]
		for j = 0; j < n; j++ {
			a[rowI+j] /= pivot
			u[rowI+j] /= pivot
		}
	}

	// Stage 4: hand the inverse back through m.
	copy(a, u)

	return true
}

// Inverse returns the inverse of the square matrix m without mutating it.
//
// Implementation:
//   - Stage 1: ValidateSquare(m).
//   - Stage 2: copy m into a fresh Dense (flat copy on the *Dense fast-path).
//   - Stage 3: Invert the copy; a false result maps to ErrSingular.
//
// Errors:
//   - ErrNilMatrix, ErrNonSquare, ErrSingular.
//
// Complexity:
//   - Time O(n^3), Space O(n^2).
func Inverse(m Matrix) (Matrix, error) {
	if err := ValidateSquare(m); err != nil {
		return nil, matrixErrorf(opInverse, err)
	}

	var work *Dense
	if d, ok := m.(*Dense); ok {
		work = d.Clone().(*Dense)
	} else {
		n := m.Rows()
		var err error
		if work, err = newDenseZeroOK(n, n); err != nil {
			return nil, matrixErrorf(opInverse, err)
		}
		var v float64
		for i := 0; i < n; i++ {
			for j := 0; j < n; j++ {
				if v, err = m.At(i, j); err != nil {
					return nil, matrixErrorf(opInverse, fmt.Errorf("At(%d,%d): %w", i, j, err))
				}
				work.data[i*n+j] = v
			}
		}
	}

	if !Invert(work) {
		return nil, matrixErrorf(opInverse, ErrSingular)
	}

	return work, nil
}

// Gram computes the symmetric product P = X·Xᵗ of shape rows×rows,
// P[r,c] = Σ_k X[r,k]·X[c,k].
//
// Implementation:
//   - Stage 1: ValidateNotNil; allocate P.
//   - Stage 2: fill the upper triangle (c ≥ r) in fixed r→c order and mirror it.
//
// Behavior highlights:
//   - Exact symmetry by construction: P[c,r] is a copy of P[r,c], not a recomputation.
//
// Errors:
//   - ErrNilMatrix, ErrInvalidDimensions (X with zero rows).
//
// Complexity:
//   - Time O(rows²·cols), Space O(rows²).
func Gram(x Matrix) (*Dense, error) {
	if err := ValidateNotNil(x); err != nil {
		return nil, matrixErrorf(opGram, err)
	}
	rows, cols := x.Rows(), x.Cols()
	p, err := NewDense(rows, rows)
	if err != nil {
		return nil, matrixErrorf(opGram, err)
	}

	var (
		r, c, k int
		sum     float64
	)
	// Fast-path: flat row-major dot products.
	if d, ok := x.(*Dense); ok {
		var baseR, baseC int
		for r = 0; r < rows; r++ {
			baseR = r * cols
			for c = r; c < rows; c++ {
				baseC = c * cols
				sum = ZeroSum
				for k = 0; k < cols; k++ {
					sum += d.data[baseR+k] * d.data[baseC+k]
				}
				p.data[r*rows+c] = sum
				p.data[c*rows+r] = sum
			}
		}

		return p, nil
	}

	// Fallback: interface reads via At.
	var xr, xc float64
	for r = 0; r < rows; r++ {
		for c = r; c < rows; c++ {
			sum = ZeroSum
			for k = 0; k < cols; k++ {
				if xr, err = x.At(r, k); err != nil {
					return nil, matrixErrorf(opGram, fmt.Errorf("At(%d,%d): %w", r, k, err))
				}
				if xc, err = x.At(c, k); err != nil {
					return nil, matrixErrorf(opGram, fmt.Errorf("At(%d,%d): %w", c, k, err))
				}
				sum += xr * xc
			}
			p.data[r*rows+c] = sum
			p.data[c*rows+r] = sum
		}
	}

	return p, nil
}

// MatVec computes y = m * x for a column vector x.
//
// Contract: m non-nil; x non-nil; len(x) == m.Cols().
// Fast-path: *Dense performs one pass per row with flat indexing.
// Determinism: fixed i→j loop order.
// Complexity: Time O(r*c), Space O(r) for y.
func MatVec(m Matrix, x []float64) ([]float64, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opMatVec, err)
	}
	if err := ValidateVecLen(x, m.Cols()); err != nil {
		return nil, matrixErrorf(opMatVec, err)
	}
	rows, cols := m.Rows(), m.Cols()
	y := make([]float64, rows)

	// Fast-path: *Dense allows flat, row-major dot-products.
	if d, ok := m.(*Dense); ok {
		var i, j, base int
		var acc float64
		for i = 0; i < d.r; i++ {
			acc = ZeroSum
			base = i * d.c
			for j = 0; j < d.c; j++ {
				acc += d.data[base+j] * x[j]
			}
			y[i] = acc
		}

		return y, nil
	}

	// Fallback: interface-based dot-products via At.
	var i, j int
	var mv float64
	var err error
	for i = 0; i < rows; i++ {
		y[i] = ZeroSum
		for j = 0; j < cols; j++ {
			if mv, err = m.At(i, j); err != nil {
				return nil, matrixErrorf(opMatVec, fmt.Errorf("At(%d,%d): %w", i, j, err))
			}
			y[i] += mv * x[j]
		}
	}

	return y, nil
}
