package poly_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/lvpoly/matrix"
	"github.com/katalvlaran/lvpoly/poly"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestInterp_Midpoint checks a single linear segment.
func TestInterp_Midpoint(t *testing.T) {
	out, err := poly.InterpSlice([]float64{5}, []float64{0, 10}, []float64{0, 100})
	require.NoError(t, err)
	assert.Equal(t, []float64{50}, out)
}

// TestInterp_Knots verifies that querying at the knots returns fp.
func TestInterp_Knots(t *testing.T) {
	xp := []float64{-3, -1.5, 0, 0.1, 2, 7.25, 100}
	fp := []float64{4, -2, 0.5, 9, 9, -30, 1e3}

	out, err := poly.InterpSlice(xp, xp, fp)
	require.NoError(t, err)
	require.Len(t, out, len(fp))
	for i := range fp {
		assert.InDeltaf(t, fp[i], out[i], 1e-9, "knot %d", i)
	}
}

// TestInterp_Segments checks values strictly between knots on several segments.
func TestInterp_Segments(t *testing.T) {
	xp := []float64{0, 1, 2, 4, 8}
	fp := []float64{0, 10, 0, 20, 20}

	out, err := poly.InterpSlice([]float64{0.5, 1.5, 3, 6, 7.9}, xp, fp)
	require.NoError(t, err)
	want := []float64{5, 5, 10, 20, 20}
	for i := range want {
		assert.InDelta(t, want[i], out[i], 1e-12)
	}
}

// TestInterp_Clamping checks the default and overridden boundary values.
func TestInterp_Clamping(t *testing.T) {
	xp := []float64{1, 2, 3}
	fp := []float64{10, 20, 30}
	x := []float64{-5, 1, 3, 99}

	out, err := poly.InterpSlice(x, xp, fp)
	require.NoError(t, err)
	assert.Equal(t, []float64{10, 10, 30, 30}, out)

	out, err = poly.InterpSlice(x, xp, fp, poly.WithLeft(-1), poly.WithRight(math.Inf(1)))
	require.NoError(t, err)
	assert.Equal(t, -1.0, out[0])
	assert.Equal(t, -1.0, out[1], "x == xp[0] takes the left value")
	assert.True(t, math.IsInf(out[2], 1), "x == xp[n-1] takes the right value")
	assert.True(t, math.IsInf(out[3], 1))
}

// TestInterp_Errors covers every argument rejection.
func TestInterp_Errors(t *testing.T) {
	square, err := matrix.NewDense(2, 2)
	require.NoError(t, err)
	x := matrix.Vector[float64]{1}

	tests := []struct {
		name      string
		x, xp, fp matrix.Array
	}{
		{"length mismatch", x, matrix.Vector[float64]{0, 1, 2}, matrix.Vector[float64]{0, 1}},
		{"xp too short", x, matrix.Vector[float64]{0}, matrix.Vector[float64]{0}},
		{"fp too short", x, matrix.Vector[float64]{0, 1}, matrix.Vector[float64]{0}},
		{"xp not 1-D", x, square, matrix.Vector[float64]{0, 1, 2, 3}},
		{"fp not 1-D", x, matrix.Vector[float64]{0, 1, 2, 3}, square},
		{"nil x", nil, matrix.Vector[float64]{0, 1}, matrix.Vector[float64]{0, 1}},
		{"nil xp", x, nil, matrix.Vector[float64]{0, 1}},
		{"nil fp", x, matrix.Vector[float64]{0, 1}, nil},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := poly.Interp(tc.x, tc.xp, tc.fp)
			require.ErrorIs(t, err, poly.ErrInvalidArgument)
		})
	}
}

// TestInterp_ColumnKnots accepts n×1 knots and integer values.
func TestInterp_ColumnKnots(t *testing.T) {
	out, err := poly.Interp(matrix.Vector[float64]{0.5}, matrix.Column[int]{0, 1}, matrix.Column[int]{2, 4})
	require.NoError(t, err)
	assert.Equal(t, []float64{3}, out.RawData())
}

// TestInterp_ShapePreserved returns a result with the query's shape.
func TestInterp_ShapePreserved(t *testing.T) {
	x, err := matrix.NewDenseFrom(2, 2, []float64{0, 0.25, 0.5, 1})
	require.NoError(t, err)

	out, err := poly.Interp(x, matrix.Vector[float64]{0, 1}, matrix.Vector[float64]{0, 4})
	require.NoError(t, err)
	rows, cols := out.Shape()
	assert.Equal(t, 2, rows)
	assert.Equal(t, 2, cols)
	assert.Equal(t, []float64{0, 1, 2, 4}, out.RawData())
}

// TestInterp_NaNQuery yields NaN for a NaN query point.
func TestInterp_NaNQuery(t *testing.T) {
	out, err := poly.InterpSlice([]float64{math.NaN()}, []float64{0, 1, 2}, []float64{0, 1, 2})
	require.NoError(t, err)
	assert.True(t, math.IsNaN(out[0]))
}

// TestInterp_EmptyQuery yields an empty result.
func TestInterp_EmptyQuery(t *testing.T) {
	out, err := poly.InterpSlice([]float64{}, []float64{0, 1}, []float64{0, 1})
	require.NoError(t, err)
	assert.Empty(t, out)
}

// TestInterp_ParallelMatchesSequential checks bit-identical results across workers.
func TestInterp_ParallelMatchesSequential(t *testing.T) {
	xp := make([]float64, 64)
	fp := make([]float64, 64)
	for i := range xp {
		xp[i] = float64(i * i)
		fp[i] = math.Sin(float64(i))
	}
	x := make([]float64, 5000)
	for i := range x {
		x[i] = float64(i) - 100
	}

	seq, err := poly.InterpSlice(x, xp, fp, poly.WithLeft(-2))
	require.NoError(t, err)
	par, err := poly.InterpSlice(x, xp, fp, poly.WithLeft(-2), poly.WithWorkers(3), poly.WithChunkSize(128))
	require.NoError(t, err)
	assert.Equal(t, seq, par)
}
