// Package poly provides 2D monomial bases over (r, cos_theta), design
// matrices for least-squares fitting, and deterministic expression
// formatting.
//
// 🚀 What is a poly.Basis?
//
//	An ordered list of exponent pairs (I, J), each meaning the monomial
//
//	  r^I * cos_theta^J
//
//	with I+J ≤ D for a chosen maximum total degree D. The generation order
//	is fixed — I ascending, then J ascending within each I — and is the
//	single source of truth shared by design-matrix columns, coefficient
//	vectors and formatted expression terms. Reordering any one of them
//	without the others corrupts the coefficient↔term mapping.
//
// ✨ Key features:
//
//   - NewBasis(D): all C(D+2,2) monomials with I+J ≤ D
//   - NewBasisNoConstant(D): same minus (0,0) — denominator bases, where
//     the constant is pinned to 1 by the rational model
//   - DesignMatrix: N×K gonum matrix, column k = r^I_k * cos_theta^J_k
//   - FormatExpression: stable sum-of-terms text, tiny coefficients dropped
//
// ⚙️ Usage:
//
//	b, _ := poly.NewBasis(2)        // 1, cos_theta, cos_theta², r, r·cos_theta, r²
//	A, _ := poly.DesignMatrix(b, rs, cs)
//	s, _ := poly.FormatExpression(b, coeffs, poly.ShortestPrecision)
//
// Determinism: no randomness, no ambient state; identical inputs yield
// byte-identical output.
package poly
