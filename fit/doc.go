// Package fit solves for closed-form approximations of lut.Table samples:
// plain polynomials by exact linear least squares, and rational functions
// (polynomial ratio) by damped Gauss–Newton (Levenberg–Marquardt).
//
// 🚀 What does fit do?
//
//	Given an immutable sample table and a basis configuration, it produces
//	a read-only Model — coefficient vectors index-aligned with their
//	poly.Basis — plus the mean squared error over the full grid:
//
//	  linear:    f(r,cos_theta) = N(r,cos_theta)
//	  rational:  f(r,cos_theta) = N(r,cos_theta) / (1 + M(r,cos_theta))
//
//	The rational denominator's constant term is pinned to 1 (and excluded
//	from M's basis), resolving the scale ambiguity inherent in fitting a
//	ratio.
//
// ✨ Contracts worth knowing:
//
//   - Rank-deficient linear systems are fatal (ErrRankDeficient); no
//     minimum-norm fallback is returned. See the policy note in linear.go.
//   - Rational non-convergence is NOT fatal: the best coefficients found
//     are returned with Result.Converged=false and the iteration count.
//   - A fitted denominator is verified ≥ MinDenominator at every sample
//     before a Model is exposed; violations are fatal
//     (ErrDenominatorVanishes). No partial model ever escapes.
//   - Everything is a stateless function of (Table, Options); there is no
//     package-level mutable state and no hidden default degree.
//
// ⚙️ Usage:
//
//	opts := fit.DefaultOptions()        // rational, numerator 5, denominator 3
//	res, err := fit.Fit(table, opts)
//	if err != nil { ... }               // fatal: no usable model
//	if !res.Converged { ... }           // warning: budget exhausted
//	expr, _ := res.Model.Format(poly.ShortestPrecision)
//	fmt.Println(expr, res.MSE)
//
// Complexity: linear O(N·K²); rational O(iterations · N·K²) with
// N = Rows×Cols samples and K basis terms.
package fit
