// SPDX-License-Identifier: MIT
// Package fit - unified dispatcher for the fitting pipeline.
//
// Fit is the canonical entry point: it validates options once and routes to
// the mode-specific solver (Linear / Rational). Both solvers are stateless
// functions of (Table, configuration) → Result.
//
// Design principles:
//   - Deterministic: fixed basis order, no randomness, no ambient state.
//   - Strict sentinels: only errors from errors.go (plus wrapped poly/lut
//     sentinels); no fmt.Errorf where a sentinel suffices.
//   - Fatal vs warning: unusable fits are errors; an exhausted iteration
//     budget is Result.Converged=false alongside otherwise-valid output.

package fit

import "github.com/katalvlaran/lutfit/lut"

// Result holds the outcome of a fitting run.
type Result struct {
	// Model is the fitted, validated model. Never partial: on fatal errors
	// no Result is returned at all.
	Model *Model

	// MSE is the mean squared error of Model over the full sample grid.
	MSE float64

	// Converged is true when the solver met its tolerance. Linear solves
	// are exact and always converged; rational solves report false when
	// the iteration budget ran out (the best coefficients found are kept).
	Converged bool

	// Iterations is the number of Levenberg–Marquardt iterations spent
	// (0 for linear mode).
	Iterations int
}

// Fit routes to the solver selected by opts.Mode.
//
// Contracts:
//   - t must be non-nil (ErrNilTable);
//   - opts must pass validation (ErrBadOptions);
//   - opts.Mode must be ModeLinear or ModeRational (ErrUnknownMode).
//
// Errors: those of the underlying solver — ErrRankDeficient (linear),
// ErrDenominatorVanishes (rational).
func Fit(t *lut.Table, opts Options) (Result, error) {
	if t == nil {
		return Result{}, ErrNilTable
	}
	if err := opts.validate(); err != nil {
		return Result{}, err
	}

	switch opts.Mode {
	case ModeLinear:
		return Linear(t, opts.Degree)
	case ModeRational:
		return Rational(t, opts)
	default:
		return Result{}, ErrUnknownMode
	}
}
