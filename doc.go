// Package lutfit turns numerical lookup tables into small closed-form
// expressions — fit once, evaluate anywhere a texture fetch is too expensive.
//
// 🚀 What is lutfit?
//
//	A deterministic, batch-oriented fitting library that replaces a 2D
//	lookup table (such as a precomputed shading integral) with a compact
//	algebraic approximation:
//		• lut/  — load and validate R×C sample tables from flat text files
//		• poly/ — 2D monomial bases, design matrices, expression formatting
//		• fit/  — linear least squares and rational Levenberg–Marquardt fits
//		• viz/  — residual and surface heatmaps for eyeballing fit quality
//
// ✨ Why choose lutfit?
//
//   - Deterministic – fixed basis order, fixed formatting, no ambient state
//   - Honest contracts – sentinel errors for every failure mode, no panics
//     on user input, non-convergence reported rather than hidden
//   - Guarded rationals – a fitted denominator is verified positive over
//     the whole sample grid before a model is ever returned
//   - Pure batch – one invocation, one fit, one printed expression + MSE
//
// Typical flow:
//
//	table → lut.LoadFile → fit.Fit → Result.Model.Format → print + MSE
//
// Quick example:
//
//	t, _ := lut.LoadFile("sheen_lut_data.txt", 128, 128)
//	res, _ := fit.Fit(t, fit.DefaultOptions())
//	expr, _ := res.Model.Format(poly.ShortestPrecision)
//	fmt.Println(expr.Numerator, "/", expr.Denominator, "MSE:", res.MSE)
//
// Dive into the per-package docs and examples/ for full walkthroughs.
//
//	go get github.com/katalvlaran/lutfit
package lutfit
