package report

import (
	"fmt"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
)

// DefaultCurveSamples is the number of points a curve is evaluated at.
const DefaultCurveSamples = 256

// Curve evaluates a model at every element of xs.
type Curve func(xs []float64) ([]float64, error)

// PlotSpec describes the rendered figure. The image format follows the file
// extension accepted by plot.Save (.png, .svg, .pdf, .eps, .jpg, .tif).
type PlotSpec struct {
	Title      string
	CurveLabel string
	WidthCM    float64
	HeightCM   float64
	Samples    int // curve resolution; DefaultCurveSamples when < 2
}

// RenderPlot draws the (x, y) samples as a scatter and curve as a line over
// [min(x), max(x)], and saves the figure to path.
func RenderPlot(path string, spec PlotSpec, x, y []float64, curve Curve) error {
	if len(x) == 0 || len(x) != len(y) {
		return ErrNoData
	}
	n := spec.Samples
	if n < 2 {
		n = DefaultCurveSamples
	}

	p := plot.New()
	p.Title.Text = spec.Title
	p.X.Label.Text = "x"
	p.Y.Label.Text = "y"
	p.Add(plotter.NewGrid())

	pts := make(plotter.XYs, len(x))
	for i := range x {
		pts[i].X, pts[i].Y = x[i], y[i]
	}
	scatter, err := plotter.NewScatter(pts)
	if err != nil {
		return fmt.Errorf("report: scatter: %w", err)
	}
	p.Add(scatter)
	p.Legend.Add("samples", scatter)

	xs := floats.Span(make([]float64, n), floats.Min(x), floats.Max(x))
	ys, err := curve(xs)
	if err != nil {
		return err
	}
	line, err := plotter.NewLine(xyPairs(xs, ys))
	if err != nil {
		return fmt.Errorf("report: curve: %w", err)
	}
	p.Add(line)
	if spec.CurveLabel != "" {
		p.Legend.Add(spec.CurveLabel, line)
	}

	w := vg.Length(spec.WidthCM) * vg.Centimeter
	h := vg.Length(spec.HeightCM) * vg.Centimeter
	if err = p.Save(w, h, path); err != nil {
		return fmt.Errorf("report: save %s: %w", path, err)
	}

	return nil
}

func xyPairs(xs, ys []float64) plotter.XYs {
	pts := make(plotter.XYs, len(xs))
	for i := range xs {
		pts[i].X, pts[i].Y = xs[i], ys[i]
	}

	return pts
}
