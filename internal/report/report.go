// Package report summarises polytool results: goodness-of-fit statistics for a
// fitted polynomial and a rendered plot of samples against a curve.
package report

import (
	"errors"
	"fmt"
	"math"

	"github.com/katalvlaran/lvpoly/poly"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// ErrNoData is returned when a report is requested for an empty sample set.
var ErrNoData = errors.New("report: no samples")

// Fit is the serialisable outcome of `polytool fit`.
type Fit struct {
	Name         string    `json:"name,omitempty" yaml:"name,omitempty"`
	Degree       int       `json:"degree" yaml:"degree"`
	Samples      int       `json:"samples" yaml:"samples"`
	Coefficients []float64 `json:"coefficients" yaml:"coefficients"`
	// RSquared is omitted when y has zero variance and R² is undefined.
	RSquared *float64 `json:"r_squared,omitempty" yaml:"r_squared,omitempty"`
	RMS      float64  `json:"rms" yaml:"rms"`
}

// Values is the serialisable outcome of `polytool eval` and `polytool interp`.
type Values struct {
	X []float64 `json:"x" yaml:"x"`
	Y []float64 `json:"y" yaml:"y"`
}

// NewFit evaluates coef (highest degree first) at x and compares the
// predictions with y. x and y must have equal, non-zero length.
func NewFit(name string, x, y, coef []float64, opts ...poly.Option) (*Fit, error) {
	if len(y) == 0 {
		return nil, ErrNoData
	}
	if len(x) != len(y) {
		return nil, fmt.Errorf("report: x and y differ in length (%d vs %d)", len(x), len(y))
	}
	pred, err := poly.PolyvalSlice(coef, x, opts...)
	if err != nil {
		return nil, err
	}

	f := &Fit{
		Name:         name,
		Degree:       len(coef) - 1,
		Samples:      len(y),
		Coefficients: coef,
		RMS:          floats.Distance(pred, y, 2) / math.Sqrt(float64(len(y))),
	}
	if r2 := stat.RSquaredFrom(pred, y, nil); !math.IsNaN(r2) && !math.IsInf(r2, 0) {
		f.RSquared = &r2
	}

	return f, nil
}

// ImplicitX returns 0, 1, …, n-1, the abscissae Polyfit assumes when x is omitted.
func ImplicitX(n int) []float64 {
	x := make([]float64, n)
	for i := range x {
		x[i] = float64(i)
	}

	return x
}
