package main

import (
	"errors"
	"flag"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/katalvlaran/lvpoly/internal/config"
	"github.com/katalvlaran/lvpoly/internal/dataset"
	"github.com/katalvlaran/lvpoly/internal/report"
	"github.com/katalvlaran/lvpoly/poly"
)

// errUsage reports a flag error that the flag package has already printed.
var errUsage = errors.New("usage")

// common holds the flags every subcommand accepts.
type common struct {
	format  string
	workers int
	plot    string
}

func (a *app) flagSet(name string, c *common) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(a.stderr)
	fs.StringVar(&c.format, "format", a.cfg.Format, "output format: json or yaml")
	fs.IntVar(&c.workers, "workers", a.cfg.Workers, "goroutines used for evaluation")
	fs.StringVar(&c.plot, "plot", "", "render a plot to this file (.png, .svg, .pdf)")

	return fs
}

func (a *app) parse(fs *flag.FlagSet, c *common, args []string) error {
	if err := fs.Parse(args); err != nil {
		return errUsage
	}
	if c.workers < 1 {
		return fmt.Errorf("-workers must be >= 1, got %d", c.workers)
	}
	switch c.format {
	case config.FormatJSON, config.FormatYAML:
	default:
		return fmt.Errorf("-format must be %q or %q, got %q", config.FormatJSON, config.FormatYAML, c.format)
	}

	return nil
}

func (a *app) emit(c *common, v any) error {
	return dataset.Encode(a.stdout, v, dataset.Format(c.format))
}

func (a *app) plotSpec(title, label string) report.PlotSpec {
	return report.PlotSpec{
		Title:      title,
		CurveLabel: label,
		WidthCM:    a.cfg.WidthCM,
		HeightCM:   a.cfg.HeightCM,
	}
}

// runFit implements `polytool fit`.
func runFit(a *app, args []string) error {
	var (
		c      common
		in     string
		degree int
	)
	fs := a.flagSet("fit", &c)
	fs.StringVar(&in, "in", "", "dataset file (required)")
	fs.IntVar(&degree, "deg", 1, "polynomial degree")
	if err := a.parse(fs, &c, args); err != nil {
		return err
	}
	if in == "" {
		return errors.New("fit: -in is required")
	}

	start := time.Now()
	d, err := dataset.Load(in)
	if err != nil {
		return err
	}
	coef, err := poly.PolyfitSlice(d.X, d.Y, degree)
	if err != nil {
		return err
	}
	x := d.X
	if x == nil {
		x = report.ImplicitX(len(d.Y))
	}
	workers := poly.WithWorkers(c.workers)
	res, err := report.NewFit(d.Name, x, d.Y, coef, workers)
	if err != nil {
		return err
	}
	a.log.Info("fitted",
		zap.String("in", in),
		zap.Int("degree", degree),
		zap.Int("samples", len(d.Y)),
		zap.Float64("rms", res.RMS),
		zap.Duration("duration", time.Since(start)),
	)

	if c.plot != "" {
		curve := func(xs []float64) ([]float64, error) { return poly.PolyvalSlice(coef, xs, workers) }
		spec := a.plotSpec(fmt.Sprintf("%s degree %d", d.Name, degree), "fit")
		if err = report.RenderPlot(c.plot, spec, x, d.Y, curve); err != nil {
			return err
		}
		a.log.Debug("plot written", zap.String("path", c.plot))
	}

	return a.emit(&c, res)
}

// runEval implements `polytool eval`.
func runEval(a *app, args []string) error {
	var (
		c              common
		in, coefs, xsS string
	)
	fs := a.flagSet("eval", &c)
	fs.StringVar(&coefs, "coef", "", "comma-separated coefficients, highest degree first (required)")
	fs.StringVar(&xsS, "x", "", "comma-separated query points")
	fs.StringVar(&in, "in", "", "dataset whose x values are the query points")
	if err := a.parse(fs, &c, args); err != nil {
		return err
	}

	start := time.Now()
	p, err := dataset.ParseFloats(coefs)
	if err != nil {
		return err
	}
	x, err := queryPoints(xsS, in)
	if err != nil {
		return err
	}
	y, err := poly.PolyvalSlice(p, x, poly.WithWorkers(c.workers))
	if err != nil {
		return err
	}
	a.log.Info("evaluated",
		zap.Int("degree", len(p)-1),
		zap.Int("points", len(x)),
		zap.Duration("duration", time.Since(start)),
	)

	return a.emit(&c, report.Values{X: x, Y: y})
}

// runInterp implements `polytool interp`.
func runInterp(a *app, args []string) error {
	var (
		c           common
		in, xsS     string
		left, right float64
	)
	fs := a.flagSet("interp", &c)
	fs.StringVar(&in, "in", "", "dataset of knots: x is xp, y is fp (required)")
	fs.StringVar(&xsS, "x", "", "comma-separated query points (required)")
	fs.Float64Var(&left, "left", 0, "value for x <= xp[0] (default fp[0])")
	fs.Float64Var(&right, "right", 0, "value for x >= xp[n-1] (default fp[n-1])")
	if err := a.parse(fs, &c, args); err != nil {
		return err
	}
	if in == "" || xsS == "" {
		return errors.New("interp: -in and -x are required")
	}

	opts := []poly.Option{poly.WithWorkers(c.workers)}
	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "left":
			opts = append(opts, poly.WithLeft(left))
		case "right":
			opts = append(opts, poly.WithRight(right))
		}
	})

	start := time.Now()
	knots, err := dataset.Load(in)
	if err != nil {
		return err
	}
	xp := knots.X
	if xp == nil {
		xp = report.ImplicitX(len(knots.Y))
	}
	x, err := dataset.ParseFloats(xsS)
	if err != nil {
		return err
	}
	y, err := poly.InterpSlice(x, xp, knots.Y, opts...)
	if err != nil {
		return err
	}
	a.log.Info("interpolated",
		zap.String("in", in),
		zap.Int("knots", len(xp)),
		zap.Int("points", len(x)),
		zap.Duration("duration", time.Since(start)),
	)

	if c.plot != "" {
		curve := func(xs []float64) ([]float64, error) { return poly.InterpSlice(xs, xp, knots.Y, opts...) }
		if err = report.RenderPlot(c.plot, a.plotSpec(knots.Name, "interp"), xp, knots.Y, curve); err != nil {
			return err
		}
		a.log.Debug("plot written", zap.String("path", c.plot))
	}

	return a.emit(&c, report.Values{X: x, Y: y})
}

// queryPoints takes points from a comma list, or else from a dataset's x
// (0..n-1 when the dataset has no x column).
func queryPoints(list, in string) ([]float64, error) {
	if list != "" {
		return dataset.ParseFloats(list)
	}
	if in == "" {
		return nil, errors.New("eval: one of -x or -in is required")
	}
	d, err := dataset.Load(in)
	if err != nil {
		return nil, err
	}
	if d.X == nil {
		return report.ImplicitX(len(d.Y)), nil
	}

	return d.X, nil
}
