// SPDX-License-Identifier: MIT
// Package fit: exact polynomial least squares via QR.
//
// RANK-DEFICIENCY POLICY (documented choice): rank-deficient or numerically
// near-singular design matrices are FATAL. A minimum-norm fallback would
// silently hand back wildly oscillating coefficients that format into
// useless expressions, so Linear refuses instead and returns
// ErrRankDeficient. This can happen when the degree is large relative to
// the sample count; shrink the degree or enlarge the table.

package fit

import (
	"fmt"

	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/lutfit/lut"
	"github.com/katalvlaran/lutfit/poly"
)

// Linear fits a degree-`degree` polynomial to t by minimizing
// ||A·c − v||² exactly (QR factorization, no iteration).
//
// Stage 1 (Basis): enumerate the monomials, build the design matrix over
// the table's normalized coordinates.
// Stage 2 (Solve): QR least squares for the coefficient vector.
// Stage 3 (Finalize): wrap into a validated Model, compute MSE.
//
// Errors: ErrNilTable, poly.ErrNegativeDegree (wrapped), ErrRankDeficient.
// Complexity: O(N·K²) with N samples and K = C(degree+2,2) terms.
func Linear(t *lut.Table, degree int) (Result, error) {
	if t == nil {
		return Result{}, fmt.Errorf("fit: Linear: %w", ErrNilTable)
	}

	basis, err := poly.NewBasis(degree)
	if err != nil {
		return Result{}, fmt.Errorf("fit: Linear: %w", err)
	}

	rs, cs := t.Coords()
	a, err := poly.DesignMatrix(basis, rs, cs)
	if err != nil {
		return Result{}, fmt.Errorf("fit: Linear: %w", err)
	}

	coeffs, err := solveLeastSquares(a, t.Values())
	if err != nil {
		return Result{}, fmt.Errorf("fit: Linear(degree=%d): %w", degree, err)
	}

	model, err := NewLinearModel(basis, coeffs)
	if err != nil {
		return Result{}, err
	}
	mse, err := MSE(model, t)
	if err != nil {
		return Result{}, err
	}

	return Result{Model: model, MSE: mse, Converged: true, Iterations: 0}, nil
}

// solveLeastSquares solves min ||a·x − v||² by QR and extracts x as a
// plain slice. Fewer samples than columns can never have full column
// rank, so that case short-circuits; gonum reports near-singular systems
// through the solve error, which is mapped onto ErrRankDeficient.
func solveLeastSquares(a *mat.Dense, v []float64) ([]float64, error) {
	rows, cols := a.Dims()
	if rows < cols {
		return nil, fmt.Errorf("fit: %d samples for %d terms: %w", rows, cols, ErrRankDeficient)
	}

	var qr mat.QR
	qr.Factorize(a)

	x := mat.NewVecDense(cols, nil)
	if err := qr.SolveVecTo(x, false, mat.NewVecDense(rows, v)); err != nil {
		return nil, fmt.Errorf("fit: QR solve: %v: %w", err, ErrRankDeficient)
	}

	out := make([]float64, cols)
	for k := range out {
		out[k] = x.AtVec(k)
	}

	return out, nil
}
