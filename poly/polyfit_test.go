package poly_test

import (
	"errors"
	"math/rand"
	"slices"
	"testing"

	"github.com/katalvlaran/lvpoly/matrix"
	"github.com/katalvlaran/lvpoly/poly"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

// TestPolyfit_LinearRoundTrip fits y = a·i + b on the implicit grid and re-evaluates it.
func TestPolyfit_LinearRoundTrip(t *testing.T) {
	const a, b = 3.0, 2.0
	y := make([]float64, 10)
	for i := range y {
		y[i] = a*float64(i) + b
	}

	coef, err := poly.Polyfit(matrix.Vector[float64](y), 1)
	require.NoError(t, err)
	require.Equal(t, 2, coef.Rows())
	require.Equal(t, 1, coef.Cols(), "result is a column vector")
	assert.InDelta(t, a, coef.Float(0), 1e-9)
	assert.InDelta(t, b, coef.Float(1), 1e-9)

	back, err := poly.Polyval(coef.RawData(), matrix.Arange(len(y)))
	require.NoError(t, err)
	assert.True(t, floats.EqualApprox(y, back.RawData(), 1e-9), "got %v", back.RawData())
}

// TestPolyfitXY_Quadratic recovers an exact quadratic from explicit samples.
func TestPolyfitXY_Quadratic(t *testing.T) {
	x := []float64{-2, -1, 0, 1, 2, 3}
	y := make([]float64, len(x))
	for i, v := range x {
		y[i] = 2*v*v - 3*v + 1
	}

	coef, err := poly.PolyfitXY(matrix.Vector[float64](x), matrix.Column[float64](y), 2)
	require.NoError(t, err)
	assert.True(t, floats.EqualApprox([]float64{2, -3, 1}, coef.RawData(), 1e-9), "got %v", coef.RawData())
}

// TestPolyfitXY_DegreeZero returns the mean of y.
func TestPolyfitXY_DegreeZero(t *testing.T) {
	coef, err := poly.PolyfitXY(matrix.Vector[float64]{1, 2, 3}, matrix.Vector[float64]{4, 6, 11}, 0)
	require.NoError(t, err)
	require.Equal(t, 1, coef.Len())
	assert.InDelta(t, 7.0, coef.Float(0), 1e-12)
}

// TestPolyfit_MatchesGonumQR compares the normal-equations solve with a QR least-squares solve.
func TestPolyfit_MatchesGonumQR(t *testing.T) {
	const (
		n      = 60
		degree = 3
	)
	rng := rand.New(rand.NewSource(2020))
	x := make([]float64, n)
	y := make([]float64, n)
	for i := range x {
		x[i] = -1 + 2*float64(i)/float64(n-1)
		y[i] = 0.5*x[i]*x[i]*x[i] - x[i]*x[i] + 0.25*x[i] + 3 + 0.05*rng.NormFloat64()
	}

	// Reference: Vandermonde (lowest power first) solved with QR.
	a := mat.NewDense(n, degree+1, nil)
	for i := range x {
		for j, p := 0, 1.0; j <= degree; j, p = j+1, p*x[i] {
			a.Set(i, j, p)
		}
	}
	var qr mat.QR
	qr.Factorize(a)
	ref := mat.NewVecDense(degree+1, nil)
	require.NoError(t, qr.SolveVecTo(ref, false, mat.NewVecDense(n, y)))
	want := slices.Clone(ref.RawVector().Data)
	slices.Reverse(want)

	got, err := poly.PolyfitSlice(x, y, degree)
	require.NoError(t, err)
	assert.True(t, floats.EqualApprox(want, got, 1e-8), "want %v, got %v", want, got)
}

// TestPolyfitXY_UnequalLength rejects mismatched x/y.
func TestPolyfitXY_UnequalLength(t *testing.T) {
	_, err := poly.PolyfitXY(matrix.Vector[float64]{0, 1, 2}, matrix.Vector[float64]{0, 1}, 1)
	require.ErrorIs(t, err, poly.ErrInvalidArgument)
	assert.False(t, errors.Is(err, poly.ErrSingularMatrix))
}

// TestPolyfit_DegreeBoundary pins the n < degree rule: n == degree passes validation
// (and then fails as singular), n == degree-1 is rejected up front.
func TestPolyfit_DegreeBoundary(t *testing.T) {
	// n = 1 < degree = 2: precondition failure.
	_, err := poly.Polyfit(matrix.Vector[float64]{1}, 2)
	require.ErrorIs(t, err, poly.ErrInvalidArgument)
	assert.False(t, errors.Is(err, poly.ErrSingularMatrix), "must fail before any computation")

	// n = 2 == degree: accepted by validation, normal matrix is rank deficient.
	_, err = poly.Polyfit(matrix.Vector[float64]{1, 2}, 2)
	require.ErrorIs(t, err, poly.ErrSingularMatrix)

	// n = 3 > degree = 2: exact interpolation.
	coef, err := poly.Polyfit(matrix.Vector[float64]{1, 2, 5}, 2)
	require.NoError(t, err)
	assert.True(t, floats.EqualApprox([]float64{1, 0, 1}, coef.RawData(), 1e-9), "got %v", coef.RawData())
}

// TestPolyfitXY_IdenticalX detects duplicate samples as a singular normal matrix.
func TestPolyfitXY_IdenticalX(t *testing.T) {
	_, err := poly.PolyfitXY(matrix.Vector[float64]{2, 2, 2, 2}, matrix.Vector[float64]{1, 2, 3, 4}, 1)
	require.ErrorIs(t, err, poly.ErrSingularMatrix)
	require.ErrorIs(t, err, poly.ErrInvalidArgument, "singular is a refinement of invalid argument")
}

// TestPolyfitXY_SmallScaleX pins the absolute pivot threshold: distinct x of
// magnitude 1e-9 fail as singular, the same data rescaled to order one fits.
func TestPolyfitXY_SmallScaleX(t *testing.T) {
	y := []float64{1, 2, 3, 4}

	_, err := poly.PolyfitSlice([]float64{1e-9, 2e-9, 3e-9, 4e-9}, y, 1)
	require.ErrorIs(t, err, poly.ErrSingularMatrix)

	coef, err := poly.PolyfitSlice([]float64{1, 2, 3, 4}, y, 1)
	require.NoError(t, err)
	assert.True(t, floats.EqualApprox([]float64{1, 0}, coef, 1e-9), "got %v", coef)
}

// TestPolyfit_DegreeRange rejects negative degrees and degrees above MaxDegree.
func TestPolyfit_DegreeRange(t *testing.T) {
	y := matrix.Arange(300)

	_, err := poly.Polyfit(y, -1)
	require.ErrorIs(t, err, poly.ErrInvalidArgument)

	_, err = poly.Polyfit(y, poly.MaxDegree+1)
	require.ErrorIs(t, err, poly.ErrInvalidArgument)
}

// TestPolyfit_TooManySamples rejects inputs above MaxSamples instead of wrapping.
func TestPolyfit_TooManySamples(t *testing.T) {
	_, err := poly.Polyfit(matrix.Arange(poly.MaxSamples+1), 1)
	require.ErrorIs(t, err, poly.ErrInvalidArgument)
}

// TestPolyfit_NotVector rejects a proper matrix as sample input.
func TestPolyfit_NotVector(t *testing.T) {
	m, err := matrix.NewDense(2, 2)
	require.NoError(t, err)

	_, err = poly.Polyfit(m, 1)
	require.ErrorIs(t, err, poly.ErrInvalidArgument)
	require.ErrorIs(t, err, matrix.ErrNotVector)

	_, err = poly.Polyfit(nil, 1)
	require.ErrorIs(t, err, poly.ErrInvalidArgument)

	_, err = poly.PolyfitXY(nil, matrix.Vector[float64]{1}, 0)
	require.ErrorIs(t, err, poly.ErrInvalidArgument)
}

// TestPolyfit_EmptyInput has n == degree == 0 and therefore fails as singular.
func TestPolyfit_EmptyInput(t *testing.T) {
	_, err := poly.Polyfit(matrix.Vector[float64]{}, 0)
	require.ErrorIs(t, err, poly.ErrSingularMatrix)
}

// TestPolyfit_IntegerSamples checks widening of integer x/y inputs.
func TestPolyfit_IntegerSamples(t *testing.T) {
	coef, err := poly.PolyfitXY(matrix.Vector[int]{1, 2, 3, 4}, matrix.Vector[uint16]{3, 5, 7, 9}, 1)
	require.NoError(t, err)
	assert.True(t, floats.EqualApprox([]float64{2, 1}, coef.RawData(), 1e-9), "got %v", coef.RawData())
}

// TestPolyfitSlice covers the implicit and explicit slice forms.
func TestPolyfitSlice(t *testing.T) {
	implicit, err := poly.PolyfitSlice(nil, []float64{1, 3, 5, 7}, 1)
	require.NoError(t, err)
	assert.True(t, floats.EqualApprox([]float64{2, 1}, implicit, 1e-9))

	explicit, err := poly.PolyfitSlice([]float64{10, 20, 30}, []float64{1, 3, 5}, 1)
	require.NoError(t, err)
	assert.True(t, floats.EqualApprox([]float64{0.2, -1}, explicit, 1e-9))

	_, err = poly.PolyfitSlice([]float64{1}, []float64{1, 2}, 1)
	require.ErrorIs(t, err, poly.ErrInvalidArgument)
}
