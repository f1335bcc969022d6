// SPDX-License-Identifier: MIT

// Package matrix - Dense storage (row-major) & safe accessors.
//
// Purpose:
//   - Provide a cache-friendly row-major buffer with the explicit index formula i*cols + j.
//   - Guarantee safety at the public surface: At/Set return errors instead of panicking.
//   - Keep algorithmic determinism (fixed loop orders, no map iteration).
//   - Serve as the single result container of every lvpoly kernel; Dense is also an Array.
//
// AI-Hints:
//   - Prefer fast-paths on *Dense in hot algebra (see impl_linear_algebra.go): operate on the flat data slice directly.
//   - RawData exposes the backing slice for kernels that fill a freshly allocated result.
//
// Complexity quicksheet:
//   - NewDense: O(r*c) zero-init; At/Set/Float: O(1); Clone: O(r*c).

package matrix

import (
	"fmt"
	"strings"
)

// ---------- error context tags ----------

const (
	ctxAt   = "At"   // method tag used in error wrappers
	ctxSet  = "Set"  // method tag used in error wrappers
	ctxFrom = "From" // ctor tag for NewDenseFrom
)

// ---------- Formatting literals  ----------
const (
	_fmtRowOpen  = "["
	_fmtRowClose = "]\n"
	_fmtSep      = ", "
)

// denseErrorf wraps an error with a uniform Dense context and callsite indices.
//
// Implementation:
//   - Stage 1: format "Dense.<method>(row,col): %w".
//
// Complexity:
//   - Time O(1), Space O(1).
func denseErrorf(method string, row, col int, err error) error {
	return fmt.Errorf("Dense.%s(%d,%d): %w", method, row, col, err)
}

// Dense is a concrete row-major matrix.
//   - r,c hold dimensions (rows, cols).
//   - data is a flat buffer of length r*c in row-major order (offset = i*c + j).
type Dense struct {
	r, c int       // row and column counts (>=0; zero allowed only through Zeros/NewDenseFrom/NewDenseLike)
	data []float64 // contiguous row-major storage (len == r*c)
}

// Compile-time assertions for interface & fmt.Stringer conformance.
var (
	_ Matrix       = (*Dense)(nil) // *Dense implements our public Matrix interface
	_ Array        = (*Dense)(nil) // and the read-only Array contract
	_ fmt.Stringer = (*Dense)(nil)
)

// NewDense creates an r×c zero matrix using row-major storage.
//
// Implementation:
//   - Stage 1: validate rows>0 && cols>0; else ErrInvalidDimensions.
//   - Stage 2: allocate zero-filled buffer.
//
// Behavior highlights:
//   - No panics on user errors; returns sentinel errors.
//   - Public constructor forbids empty dimensions to avoid accidental 0×0 matrices.
//     Use NewDenseFrom or NewDenseLike when an empty shape is legitimate.
//
// Errors:
//   - ErrInvalidDimensions (shape contract violation).
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func NewDense(rows, cols int) (*Dense, error) {
	// Validate shape.
	if rows <= 0 || cols <= 0 {
		return nil, ErrInvalidDimensions
	}

	return newDenseZeroOK(rows, cols)
}

// NewDenseFrom wraps a copy of data as a rows×cols matrix.
// Empty shapes (rows==0 or cols==0) are legal as long as len(data) == rows*cols.
//
// Errors:
//   - ErrInvalidDimensions if rows<0 or cols<0.
//   - ErrDimensionMismatch if len(data) != rows*cols.
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func NewDenseFrom(rows, cols int, data []float64) (*Dense, error) {
	if rows < 0 || cols < 0 {
		return nil, ErrInvalidDimensions
	}
	if len(data) != rows*cols {
		return nil, denseErrorf(ctxFrom, rows, cols, ErrDimensionMismatch)
	}
	buf := make([]float64, len(data))
	copy(buf, data)

	return &Dense{r: rows, c: cols, data: buf}, nil
}

// NewDenseLike allocates a zero matrix with the same shape as a.
// The result of every shape-preserving kernel (Polyval, Interp) is built here.
//
// Errors:
//   - ErrNilMatrix if a is nil.
//   - ErrInvalidDimensions if a reports a negative shape.
//   - ErrDimensionMismatch if a.Len() disagrees with its shape.
func NewDenseLike(a Array) (*Dense, error) {
	if a == nil {
		return nil, ErrNilMatrix
	}
	rows, cols := a.Shape()
	if rows < 0 || cols < 0 {
		return nil, ErrInvalidDimensions
	}
	if a.Len() != rows*cols {
		return nil, ErrDimensionMismatch
	}

	return newDenseZeroOK(rows, cols)
}

// Zeros allocates a rows×cols zero matrix and, unlike NewDense, accepts empty
// shapes (rows==0 or cols==0). Kernels use it for transient workspaces whose
// size is derived from caller data.
//
// Errors:
//   - ErrInvalidDimensions if rows<0 or cols<0.
func Zeros(rows, cols int) (*Dense, error) { return newDenseZeroOK(rows, cols) }

// newDenseZeroOK is an internal constructor that allows rows==0 or cols==0.
//
// Complexity:
//   - Time O(rows*cols), Space O(rows*cols).
func newDenseZeroOK(rows, cols int) (*Dense, error) {
	if rows < 0 || cols < 0 {
		return nil, ErrInvalidDimensions
	}
	// Zero-length buffer is legal when rows==0 or cols==0 (len == rows*cols).
	return &Dense{r: rows, c: cols, data: make([]float64, rows*cols)}, nil
}

// Rows returns the row count. No side effects.
// Complexity: O(1).
func (m *Dense) Rows() int { return m.r }

// Cols returns the column count. No side effects.
// Complexity: O(1).
func (m *Dense) Cols() int { return m.c }

// Shape packs Rows() and Cols() into a single call for convenience.
// Complexity: O(1).
func (m *Dense) Shape() (rows, cols int) { return m.r, m.c }

// Len returns rows*cols.
func (m *Dense) Len() int { return len(m.data) }

// Float returns the i-th element in row-major order.
func (m *Dense) Float(i int) float64 { return m.data[i] }

// RawData returns the backing row-major slice. Writes are visible in m.
// Intended for kernels that fill a freshly allocated result; do not retain
// the slice beyond the lifetime of m.
func (m *Dense) RawData() []float64 { return m.data }

// indexOf computes the flat index for (row, col) or returns ErrOutOfRange.
//
// Implementation:
//   - Stage 1: check 0 ≤ row < r and 0 ≤ col < c.
//   - Stage 2: compute row*c + col.
//
// Complexity:
//   - Time O(1).
func (m *Dense) indexOf(method string, row, col int) (int, error) {
	if row < 0 || row >= m.r || col < 0 || col >= m.c {
		return 0, denseErrorf(method, row, col, ErrOutOfRange)
	}

	return row*m.c + col, nil
}

// At returns the value at (row, col) or ErrOutOfRange.
// Complexity: O(1).
func (m *Dense) At(row, col int) (float64, error) {
	idx, err := m.indexOf(ctxAt, row, col)
	if err != nil {
		return 0, err
	}

	return m.data[idx], nil
}

// Set stores v at (row, col) or returns ErrOutOfRange.
// NaN and ±Inf are stored as-is: kernels propagate IEEE-754 semantics.
// Complexity: O(1).
func (m *Dense) Set(row, col int, v float64) error {
	idx, err := m.indexOf(ctxSet, row, col)
	if err != nil {
		return err
	}
	m.data[idx] = v

	return nil
}

// Clone returns a deep copy (new buffer, same shape).
// Complexity: O(r*c).
func (m *Dense) Clone() Matrix {
	buf := make([]float64, len(m.data))
	copy(buf, m.data)

	return &Dense{r: m.r, c: m.c, data: buf}
}

// String provides a readable row-wise dump for diagnostics.
// Each row is rendered as "[v0, v1, ...]" followed by a newline; %g formatting.
// Complexity: O(r*c).
func (m *Dense) String() string {
	var sb strings.Builder
	var i, j int
	for i = 0; i < m.r; i++ {
		sb.WriteString(_fmtRowOpen)
		for j = 0; j < m.c; j++ {
			if j > 0 {
				sb.WriteString(_fmtSep)
			}
			fmt.Fprintf(&sb, "%g", m.data[i*m.c+j])
		}
		sb.WriteString(_fmtRowClose)
	}

	return sb.String()
}
