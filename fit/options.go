// SPDX-License-Identifier: MIT
// Package fit: configuration for both fitting modes.
// DEFAULTS below are the single source of truth; DefaultOptions MUST mirror
// them. The defaults reproduce the reference sheen-LUT fit: a rational
// function with numerator degree 5 and denominator degree 3.

package fit

import "fmt"

// Mode selects the fitting algorithm.
type Mode int

const (
	// ModeLinear fits a plain polynomial by exact linear least squares.
	ModeLinear Mode = iota

	// ModeRational fits N/(1+M) by Levenberg–Marquardt over all
	// numerator and denominator coefficients jointly.
	ModeRational
)

// String implements fmt.Stringer for diagnostics.
func (m Mode) String() string {
	switch m {
	case ModeLinear:
		return "linear"
	case ModeRational:
		return "rational"
	default:
		return fmt.Sprintf("Mode(%d)", int(m))
	}
}

const (
	// DefaultLinearDegree is the polynomial degree used by ModeLinear when
	// options come from DefaultOptions.
	DefaultLinearDegree = 5

	// DefaultNumeratorDegree is the rational numerator's total degree.
	DefaultNumeratorDegree = 5

	// DefaultDenominatorDegree is the rational denominator's total degree,
	// kept lower than the numerator to avoid overfitting.
	DefaultDenominatorDegree = 3

	// DefaultMaxIterations bounds the Levenberg–Marquardt outer loop.
	DefaultMaxIterations = 200

	// DefaultTolerance is the relative SSR-decrease threshold below which
	// the rational fit is declared converged.
	DefaultTolerance = 1e-12

	// MinDenominator is the positivity floor for the rational denominator
	// 1+M over the sample grid. A fit whose denominator dips below this
	// anywhere is rejected with ErrDenominatorVanishes.
	MinDenominator = 1e-6
)

// Options configures a Fit run. The zero value is NOT usable; start from
// DefaultOptions and adjust.
//
// Fields:
//   - Mode          — ModeLinear or ModeRational.
//   - Degree        — polynomial degree (ModeLinear only).
//   - NumDegree     — numerator degree (ModeRational); may exceed DenDegree.
//   - DenDegree     — denominator degree (ModeRational); its constant term
//     is always pinned to 1 and never fitted. 0 means M ≡ 0.
//   - MaxIterations — LM iteration budget (ModeRational); exhausting it is
//     reported via Result.Converged=false, not an error.
//   - Tolerance     — relative SSR-decrease convergence threshold.
//   - WarmStart     — seed the numerator from a linear fit of NumDegree
//     before LM (recommended: fewer iterations, fewer poor local minima).
//     false starts from all-zero coefficients.
type Options struct {
	Mode          Mode
	Degree        int
	NumDegree     int
	DenDegree     int
	MaxIterations int
	Tolerance     float64
	WarmStart     bool
}

// DefaultOptions returns the documented defaults (rational 5/3 fit).
func DefaultOptions() Options {
	return Options{
		Mode:          ModeRational,
		Degree:        DefaultLinearDegree,
		NumDegree:     DefaultNumeratorDegree,
		DenDegree:     DefaultDenominatorDegree,
		MaxIterations: DefaultMaxIterations,
		Tolerance:     DefaultTolerance,
		WarmStart:     true,
	}
}

// validate enforces option invariants shared by both modes.
func (o Options) validate() error {
	if o.Degree < 0 || o.NumDegree < 0 || o.DenDegree < 0 {
		return fmt.Errorf("fit: negative degree: %w", ErrBadOptions)
	}
	if o.MaxIterations < 1 {
		return fmt.Errorf("fit: MaxIterations=%d: %w", o.MaxIterations, ErrBadOptions)
	}
	if o.Tolerance <= 0 {
		return fmt.Errorf("fit: Tolerance=%g: %w", o.Tolerance, ErrBadOptions)
	}

	return nil
}
