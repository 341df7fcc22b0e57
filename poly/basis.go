// SPDX-License-Identifier: MIT

package poly

import (
	"errors"
	"fmt"
)

var (
	// ErrNegativeDegree is returned when a basis is requested for D < 0.
	ErrNegativeDegree = errors.New("poly: degree must be >= 0")

	// ErrEmptyBasis is returned when an operation needs at least one term
	// (e.g. a design matrix cannot have zero columns).
	ErrEmptyBasis = errors.New("poly: basis has no terms")

	// ErrLengthMismatch indicates a coefficient slice whose length differs
	// from the basis it is paired with.
	ErrLengthMismatch = errors.New("poly: coefficient count does not match basis")

	// ErrSampleMismatch indicates coordinate arrays of differing lengths.
	ErrSampleMismatch = errors.New("poly: sample arrays length mismatch")

	// ErrNoSamples indicates empty coordinate arrays.
	ErrNoSamples = errors.New("poly: no sample points")
)

// Term is a single monomial exponent pair: r^I * cos_theta^J.
type Term struct {
	I int // exponent of r
	J int // exponent of cos_theta
}

// Basis is an ordered monomial set. Order is generation order and must be
// treated as immutable — design-matrix columns and formatted expression
// terms are index-aligned with it.
type Basis []Term

// BasisSize returns the number of terms in a full basis of total degree d,
// i.e. C(d+2,2) = (d+1)(d+2)/2.
func BasisSize(d int) int {
	return (d + 1) * (d + 2) / 2
}

// NewBasis enumerates all (I,J) with I+J ≤ degree, I ascending then J
// ascending. degree=0 yields the single constant term (0,0).
// Complexity: O(degree²).
func NewBasis(degree int) (Basis, error) {
	if degree < 0 {
		return nil, fmt.Errorf("poly: NewBasis(%d): %w", degree, ErrNegativeDegree)
	}

	b := make(Basis, 0, BasisSize(degree))
	for i := 0; i <= degree; i++ {
		for j := 0; j <= degree-i; j++ {
			b = append(b, Term{I: i, J: j})
		}
	}

	return b, nil
}

// NewBasisNoConstant enumerates the same terms as NewBasis minus (0,0).
// Used for rational denominators, where the constant term is fixed at 1
// to resolve the scale ambiguity of a ratio. degree=0 yields an empty
// basis (the denominator is then identically 1).
func NewBasisNoConstant(degree int) (Basis, error) {
	full, err := NewBasis(degree)
	if err != nil {
		return nil, err
	}

	b := make(Basis, 0, len(full)-1)
	for _, t := range full {
		if t.I+t.J == 0 {
			continue
		}
		b = append(b, t)
	}

	return b, nil
}

// MaxDegree returns the largest I+J over the basis, or -1 for an empty one.
func (b Basis) MaxDegree() int {
	d := -1
	for _, t := range b {
		if t.I+t.J > d {
			d = t.I + t.J
		}
	}

	return d
}

// Eval computes Σ coeffs[k] * r^I_k * c^J_k in basis order.
// Hot path: len(coeffs) must equal len(b); callers construct validated
// pairs (see fit.Model) so no per-call check is done here.
func (b Basis) Eval(coeffs []float64, r, c float64) float64 {
	var sum float64
	for k, t := range b {
		sum += coeffs[k] * powInt(r, t.I) * powInt(c, t.J)
	}

	return sum
}

// powInt computes x^n for n ≥ 0 by repeated multiplication. Exact for
// n=0 (1) and n=1 (x); exponents here are tiny (≤ fitting degree), so a
// plain loop beats math.Pow and keeps results deterministic across
// platforms.
func powInt(x float64, n int) float64 {
	p := 1.0
	for ; n > 0; n-- {
		p *= x
	}

	return p
}
