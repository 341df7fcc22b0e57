// SPDX-License-Identifier: MIT

package fit

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/lutfit/lut"
	"github.com/katalvlaran/lutfit/poly"
)

// Model is a fitted closed-form approximation: a numerator basis with its
// coefficient vector, plus — in rational mode — a constant-free denominator
// basis whose implicit constant term is 1. Read-only after construction;
// constructors copy every slice and accessors return copies.
type Model struct {
	mode      Mode
	numBasis  poly.Basis
	numCoeffs []float64
	denBasis  poly.Basis
	denCoeffs []float64
}

// NewLinearModel pairs a basis with its coefficient vector.
// Errors: poly.ErrEmptyBasis, poly.ErrLengthMismatch (wrapped).
func NewLinearModel(b poly.Basis, coeffs []float64) (*Model, error) {
	if len(b) == 0 {
		return nil, fmt.Errorf("fit: NewLinearModel: %w", poly.ErrEmptyBasis)
	}
	if len(coeffs) != len(b) {
		return nil, fmt.Errorf("fit: NewLinearModel: %d coeffs for %d terms: %w",
			len(coeffs), len(b), poly.ErrLengthMismatch)
	}

	return &Model{
		mode:      ModeLinear,
		numBasis:  cloneBasis(b),
		numCoeffs: cloneFloats(coeffs),
	}, nil
}

// NewRationalModel pairs numerator and denominator bases with their
// coefficient vectors and verifies the denominator over t's sample grid:
// 1+M must stay ≥ MinDenominator at every sample. Since M(0,0)=0 pins the
// denominator to exactly 1 at the grid origin, any negative value elsewhere
// implies a sign change; both cases are rejected.
//
// Errors: ErrNilTable, poly.ErrEmptyBasis (numerator), poly.ErrLengthMismatch,
// ErrDenominatorVanishes. A Model is returned only when all checks pass —
// never a partial one.
func NewRationalModel(numB poly.Basis, numC []float64, denB poly.Basis, denC []float64, t *lut.Table) (*Model, error) {
	if t == nil {
		return nil, fmt.Errorf("fit: NewRationalModel: %w", ErrNilTable)
	}
	if len(numB) == 0 {
		return nil, fmt.Errorf("fit: NewRationalModel: numerator: %w", poly.ErrEmptyBasis)
	}
	if len(numC) != len(numB) {
		return nil, fmt.Errorf("fit: NewRationalModel: numerator: %d coeffs for %d terms: %w",
			len(numC), len(numB), poly.ErrLengthMismatch)
	}
	if len(denC) != len(denB) {
		return nil, fmt.Errorf("fit: NewRationalModel: denominator: %d coeffs for %d terms: %w",
			len(denC), len(denB), poly.ErrLengthMismatch)
	}

	m := &Model{
		mode:      ModeRational,
		numBasis:  cloneBasis(numB),
		numCoeffs: cloneFloats(numC),
		denBasis:  cloneBasis(denB),
		denCoeffs: cloneFloats(denC),
	}

	// Denominator guard: sweep every sample coordinate.
	for row := 0; row < t.Rows(); row++ {
		for col := 0; col < t.Cols(); col++ {
			q := 1 + m.denBasis.Eval(m.denCoeffs, t.RCoord(row), t.CosCoord(col))
			if q < MinDenominator {
				return nil, fmt.Errorf("fit: NewRationalModel: 1+M=%g at (row=%d,col=%d): %w",
					q, row, col, ErrDenominatorVanishes)
			}
		}
	}

	return m, nil
}

// Mode reports whether the model is a plain polynomial or a rational.
func (m *Model) Mode() Mode { return m.mode }

// Eval computes the fitted function at normalized coordinates
// (r, cos_theta) ∈ [0,1]². Term order inside each basis only affects
// floating-point noise; the value is a plain sum (or ratio of sums).
func (m *Model) Eval(r, cos float64) float64 {
	n := m.numBasis.Eval(m.numCoeffs, r, cos)
	if m.mode == ModeLinear {
		return n
	}

	return n / (1 + m.denBasis.Eval(m.denCoeffs, r, cos))
}

// NumeratorBasis returns a copy of the numerator basis.
func (m *Model) NumeratorBasis() poly.Basis { return cloneBasis(m.numBasis) }

// NumeratorCoeffs returns a copy of the numerator coefficient vector,
// index-aligned with NumeratorBasis.
func (m *Model) NumeratorCoeffs() []float64 { return cloneFloats(m.numCoeffs) }

// DenominatorBasis returns a copy of the denominator basis (nil for
// linear models). The implicit constant term 1 is not represented.
func (m *Model) DenominatorBasis() poly.Basis { return cloneBasis(m.denBasis) }

// DenominatorCoeffs returns a copy of the denominator coefficient vector.
func (m *Model) DenominatorCoeffs() []float64 { return cloneFloats(m.denCoeffs) }

// Expression is the printable form of a Model. Denominator is empty for
// linear models; for rational models it always starts with the literal
// constant "1".
type Expression struct {
	Numerator   string
	Denominator string
}

// String renders "(N) / (D)" for rationals and plain "N" otherwise.
func (e Expression) String() string {
	if e.Denominator == "" {
		return e.Numerator
	}

	return "(" + e.Numerator + ") / (" + e.Denominator + ")"
}

// Format renders the model deterministically: same model and precision,
// same text. prec follows strconv.FormatFloat's 'g' verb; pass
// poly.ShortestPrecision for exact round-trip coefficients. Terms with
// |c| < poly.DropEpsilon are omitted (see poly.FormatExpression).
func (m *Model) Format(prec int) (Expression, error) {
	num, err := poly.FormatExpression(m.numBasis, m.numCoeffs, prec)
	if err != nil {
		return Expression{}, fmt.Errorf("fit: Format: numerator: %w", err)
	}
	if m.mode == ModeLinear {
		return Expression{Numerator: num}, nil
	}

	den, err := poly.FormatExpression(m.denBasis, m.denCoeffs, prec)
	if err != nil {
		return Expression{}, fmt.Errorf("fit: Format: denominator: %w", err)
	}

	return Expression{Numerator: num, Denominator: joinDenominator(den)}, nil
}

// joinDenominator prepends the pinned "+1" constant to a formatted M.
// FormatExpression renders an all-dropped M as "0", and a leading negative
// term carries its sign on the coefficient, so three shapes suffice.
func joinDenominator(den string) string {
	switch {
	case den == "0":
		return "1"
	case strings.HasPrefix(den, "-"):
		return "1 - " + den[1:]
	default:
		return "1 + " + den
	}
}

func cloneBasis(b poly.Basis) poly.Basis {
	if b == nil {
		return nil
	}
	cp := make(poly.Basis, len(b))
	copy(cp, b)

	return cp
}

func cloneFloats(v []float64) []float64 {
	if v == nil {
		return nil
	}
	cp := make([]float64, len(v))
	copy(cp, v)

	return cp
}
