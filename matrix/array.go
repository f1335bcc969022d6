// SPDX-License-Identifier: MIT

// Package matrix - Array adapters over plain Go values.
//
// Kernels accept anything that satisfies Array. The adapters below cover the
// common host values: typed slices (row or column shaped) and integer ranges.
// Widening to float64 happens on read, so no intermediate buffer is built.

package matrix

// Vector adapts a slice of any Number type as a 1×n row array.
type Vector[T Number] []T

// Len returns len(v).
func (v Vector[T]) Len() int { return len(v) }

// Float returns v[i] widened to float64.
func (v Vector[T]) Float(i int) float64 { return float64(v[i]) }

// Shape reports (1, len(v)).
func (v Vector[T]) Shape() (rows, cols int) { return 1, len(v) }

// Column adapts a slice of any Number type as an n×1 column array.
type Column[T Number] []T

// Len returns len(c).
func (c Column[T]) Len() int { return len(c) }

// Float returns c[i] widened to float64.
func (c Column[T]) Float(i int) float64 { return float64(c[i]) }

// Shape reports (len(c), 1).
func (c Column[T]) Shape() (rows, cols int) { return len(c), 1 }

// Range is an arithmetic progression start, start+step, ... stopping before stop,
// with the usual half-open semantics for both positive and negative steps.
// A Range is a 1×n array and never materializes its elements.
type Range struct {
	start, stop, step int
}

// NewRange validates step and returns the progression [start, stop) by step.
//
// Errors:
//   - ErrInvalidDimensions if step == 0.
func NewRange(start, stop, step int) (Range, error) {
	if step == 0 {
		return Range{}, ErrInvalidDimensions
	}

	return Range{start: start, stop: stop, step: step}, nil
}

// Arange returns 0, 1, ..., n-1 (empty when n <= 0).
func Arange(n int) Range { return Range{start: 0, stop: n, step: 1} }

// Len returns the number of elements in the progression.
// Complexity: O(1).
func (r Range) Len() int {
	switch {
	case r.step > 0 && r.start < r.stop:
		return (r.stop - r.start + r.step - 1) / r.step
	case r.step < 0 && r.start > r.stop:
		return (r.start - r.stop - r.step - 1) / -r.step
	default:
		return 0
	}
}

// Float returns start + i*step.
func (r Range) Float(i int) float64 { return float64(r.start + i*r.step) }

// Shape reports (1, Len()).
func (r Range) Shape() (rows, cols int) { return 1, r.Len() }

// Floats copies the elements of a into a new []float64 in row-major order.
// A nil Array yields nil.
// Complexity: O(a.Len()).
func Floats(a Array) []float64 {
	if a == nil {
		return nil
	}
	n := a.Len()
	out := make([]float64, n)
	for i := 0; i < n; i++ {
		out[i] = a.Float(i)
	}

	return out
}

// IsVector reports whether a is one-dimensional: at least one of its
// dimensions equals one (1×n, n×1, 1×1) or the array is empty.
func IsVector(a Array) bool {
	rows, cols := a.Shape()

	return rows <= 1 || cols <= 1
}
