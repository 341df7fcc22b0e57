// SPDX-License-Identifier: MIT
// Package fit: sentinel error set.
// All fitters return these sentinels (wrapped with stage context) and tests
// match them via errors.Is. Basis-level errors from package poly
// (ErrNegativeDegree, ErrEmptyBasis, ErrLengthMismatch) are forwarded
// wrapped, never swallowed. Fatal errors never come with a Model.

package fit

import "errors"

var (
	// ErrNilTable indicates a nil *lut.Table argument.
	ErrNilTable = errors.New("fit: nil table")

	// ErrNilModel indicates a nil *Model argument.
	ErrNilModel = errors.New("fit: nil model")

	// ErrUnknownMode indicates an Options.Mode outside {ModeLinear, ModeRational}.
	ErrUnknownMode = errors.New("fit: unknown fitting mode")

	// ErrBadOptions indicates out-of-range option values (negative degree,
	// non-positive iteration budget or tolerance).
	ErrBadOptions = errors.New("fit: invalid options")

	// ErrRankDeficient is returned when the linear-mode design matrix does
	// not have full column rank (or is numerically too ill-conditioned to
	// solve). Policy: fatal, no minimum-norm fallback — see linear.go.
	ErrRankDeficient = errors.New("fit: design matrix is rank-deficient")

	// ErrDenominatorVanishes is returned when a rational fit's denominator
	// 1+M drops below MinDenominator (or changes sign) anywhere on the
	// sample grid. Such a fit is rejected outright.
	ErrDenominatorVanishes = errors.New("fit: denominator vanishes on the sample grid")
)
