// SPDX-License-Identifier: MIT
// Package poly: deterministic sum-of-terms expression rendering.
//
// The formatter is data-driven: it walks the (Term, coefficient) pairs in
// basis order and renders text directly — no symbolic-algebra engine is
// involved, so the output order and spelling are fully reproducible.

package poly

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// DropEpsilon is the magnitude below which a coefficient is treated as
// zero and its term omitted from formatted output.
const DropEpsilon = 1e-12

// ShortestPrecision selects strconv's shortest round-trip rendering: the
// printed coefficient parses back to the exact same float64.
const ShortestPrecision = -1

// Variable spellings used in formatted expressions.
const (
	varR   = "r"
	varCos = "cos_theta"
)

// FormatExpression renders Σ coeffs[k]·r^I_k·cos_theta^J_k as text.
//
// Rules (all deterministic):
//   - terms appear in basis order, never re-sorted;
//   - coefficients with |c| < DropEpsilon are omitted;
//   - signs are folded into " + " / " - " separators (a leading negative
//     term renders as "-c*…");
//   - exponent 1 renders bare ("r"), exponent 0 omits the variable;
//   - coefficients use strconv.FormatFloat('g', prec); pass
//     ShortestPrecision for exact round-trip text;
//   - if every term is dropped the result is "0".
//
// Errors: ErrLengthMismatch when len(coeffs) != len(b).
func FormatExpression(b Basis, coeffs []float64, prec int) (string, error) {
	if len(coeffs) != len(b) {
		return "", fmt.Errorf("poly: FormatExpression: %d coeffs for %d terms: %w",
			len(coeffs), len(b), ErrLengthMismatch)
	}

	var sb strings.Builder
	wrote := false
	for k, t := range b {
		c := coeffs[k]
		if math.Abs(c) < DropEpsilon {
			continue
		}

		if wrote {
			if c < 0 {
				sb.WriteString(" - ")
			} else {
				sb.WriteString(" + ")
			}
			c = math.Abs(c)
		}
		sb.WriteString(formatTerm(t, c, prec))
		wrote = true
	}

	if !wrote {
		return "0", nil
	}

	return sb.String(), nil
}

// formatTerm renders a single "coef[*r^I][*cos_theta^J]" factor chain.
// The sign of coef is rendered as-is; separators are the caller's job.
func formatTerm(t Term, coef float64, prec int) string {
	parts := make([]string, 0, 3)
	parts = append(parts, strconv.FormatFloat(coef, 'g', prec, 64))
	if t.I > 0 {
		parts = append(parts, formatVar(varR, t.I))
	}
	if t.J > 0 {
		parts = append(parts, formatVar(varCos, t.J))
	}

	return strings.Join(parts, "*")
}

// formatVar renders "name" for exponent 1 and "name^e" otherwise.
func formatVar(name string, e int) string {
	if e == 1 {
		return name
	}

	return name + "^" + strconv.Itoa(e)
}
