// Package poly evaluates, fits and interpolates real-valued polynomials and
// piecewise-linear functions over lvpoly/matrix arrays.
//
// 🚀 What is in the box?
//
//	Three stateless kernels, each consuming matrix.Array inputs and returning a
//	freshly allocated *matrix.Dense owned by the caller:
//	  • Polyval — Horner evaluation of p[0]·xⁿ + … + p[n] at every query point
//	  • Polyfit / PolyfitXY — ordinary least squares via the normal equations,
//	    solved with the Gauss-Jordan inverter matrix.Invert
//	  • Interp — binary-search linear interpolation with clamping outside [xp[0], xp[n-1]]
//
// ✨ Key properties:
//   - coefficients are ordered highest degree first, for both Polyfit output and
//     Polyval input, so Polyval(Polyfit(y, d)) reproduces the fitted curve
//   - plain float64 arithmetic; NaN and ±Inf propagate, nothing is clamped silently
//   - inputs are validated up front; the only mid-algorithm failure is a singular
//     normal matrix (ErrSingularMatrix), which diagnoses duplicate x samples
//   - WithWorkers(n) splits Polyval/Interp across goroutines with bit-identical results
//
// ⚙️ Usage:
//
//	import (
//	  "github.com/katalvlaran/lvpoly/matrix"
//	  "github.com/katalvlaran/lvpoly/poly"
//	)
//
//	coef, err := poly.PolyfitXY(matrix.Vector[float64]{0, 1, 2}, matrix.Vector[float64]{1, 3, 5}, 1)
//	// coef is a 2×1 column: [2, 1]
//	y, err := poly.Polyval(coef.RawData(), matrix.Arange(5))
//	f, err := poly.Interp(matrix.Vector[float64]{2.5}, xp, fp, poly.WithLeft(0), poly.WithRight(1))
//
// Performance:
//
//   - Polyval: O(m·deg)
//   - Polyfit: O(n·deg²) to build Xᵗ·X plus O(deg³) for the inversion
//   - Interp:  O(m·log n)
package poly
