// Package lvpoly is a small numeric toolkit for one-dimensional polynomial
// work: evaluation, least-squares fitting and piecewise-linear interpolation
// over plain Go slices, integer ranges and dense row-major arrays.
//
// 🚀 What is lvpoly?
//
//	A pure-Go library plus a command-line tool:
//		• matrix/ — the Array contract, Dense storage, Vector/Column/Range adapters,
//		            Gram product, matrix-vector product, Gauss-Jordan inversion
//		• poly/   — Polyval (Horner), Polyfit/PolyfitXY (normal equations), Interp
//		• cmd/polytool — fit, eval and interp over YAML/TOML/JSON/CSV datasets,
//		            with goodness-of-fit statistics and optional plots
//
// ✨ Why lvpoly?
//
//   - Predictable – eager validation, sentinel errors matched with errors.Is
//   - Deterministic – fixed loop orders; parallel evaluation is bit-identical
//   - Shape-aware – results keep the shape of the query array
//
// Quick example:
//
//	coef, _ := poly.PolyfitXY(matrix.Vector[float64]{0, 1, 2}, matrix.Vector[float64]{1, 2, 5}, 2)
//	y, _ := poly.Polyval(coef.RawData(), matrix.Arange(4)) // [1 2 5 10]
//
//	go get github.com/katalvlaran/lvpoly
package lvpoly
