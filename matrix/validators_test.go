// SPDX-License-Identifier: MIT
// Package matrix_test contains unit tests for the matrix validators.
package matrix_test

import (
	"errors"
	"testing"

	"github.com/katalvlaran/lvpoly/matrix"
	"github.com/stretchr/testify/require"
)

// badShape reports a shape that disagrees with its length.
type badShape struct{ matrix.Vector[float64] }

func (badShape) Shape() (rows, cols int) { return 2, 2 }

// TestValidateSquare covers nil inputs, square and non-square cases.
func TestValidateSquare(t *testing.T) {
	t.Parallel()

	dense := func(r, c int) matrix.Matrix {
		m, err := matrix.NewDense(r, c)
		require.NoError(t, err)
		return m
	}

	tests := []struct {
		name string
		m    matrix.Matrix
		want error
	}{
		{"nil", nil, matrix.ErrNilMatrix},
		{"1x1", dense(1, 1), nil},
		{"3x3", dense(3, 3), nil},
		{"2x3", dense(2, 3), matrix.ErrNonSquare},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			err := matrix.ValidateSquare(tc.m)
			if tc.want == nil {
				require.NoError(t, err)
			} else {
				require.Error(t, err)
				require.Truef(t, errors.Is(err, tc.want),
					"expected errors.Is(%v, %v)", err, tc.want)
			}
		})
	}
}

// TestValidateVecLen covers nil, mismatched and matching vectors.
func TestValidateVecLen(t *testing.T) {
	t.Parallel()

	require.ErrorIs(t, matrix.ValidateVecLen(nil, 0), matrix.ErrNilMatrix)
	require.ErrorIs(t, matrix.ValidateVecLen([]float64{1}, 2), matrix.ErrDimensionMismatch)
	require.NoError(t, matrix.ValidateVecLen([]float64{1, 2}, 2))
}

// TestValidateVector covers every rejection branch of ValidateArray/ValidateVector.
func TestValidateVector(t *testing.T) {
	t.Parallel()

	square, err := matrix.NewDense(2, 2)
	require.NoError(t, err)

	tests := []struct {
		name string
		a    matrix.Array
		want error
	}{
		{"nil", nil, matrix.ErrNilMatrix},
		{"inconsistent shape", badShape{matrix.Vector[float64]{1}}, matrix.ErrDimensionMismatch},
		{"matrix", square, matrix.ErrNotVector},
		{"row", matrix.Vector[int]{1, 2}, nil},
		{"column", matrix.Column[int]{1, 2}, nil},
		{"empty", matrix.Vector[float64]{}, nil},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			err := matrix.ValidateVector(tc.a)
			if tc.want == nil {
				require.NoError(t, err)
			} else {
				require.ErrorIs(t, err, tc.want)
			}
		})
	}
}
