package fit_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/lutfit/fit"
	"github.com/katalvlaran/lutfit/lut"
	"github.com/katalvlaran/lutfit/poly"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// rationalTarget is a known in-bounds rational function:
// N degree 2, M degree 1 with an everywhere-positive denominator.
func rationalTarget(t *testing.T) (func(r, c float64) float64, []float64, []float64) {
	t.Helper()
	numB, _ := poly.NewBasis(2)
	denB, _ := poly.NewBasisNoConstant(1) // (0,1)=cos_theta, (1,0)=r

	numC := []float64{0.2, 0.5, -0.1, 0.3, 0.4, -0.2}
	denC := []float64{0.25, 0.5} // Q = 1 + 0.25*cos + 0.5*r ∈ [1, 1.75]
	require.Len(t, numC, len(numB))
	require.Len(t, denC, len(denB))

	f := func(r, c float64) float64 {
		return numB.Eval(numC, r, c) / (1 + denB.Eval(denC, r, c))
	}

	return f, numC, denC
}

// TestRational_RecoversSyntheticRational: data generated from a rational
// function within the configured degrees must converge to MSE below 1e-4
// (in practice far below) inside the default budget.
func TestRational_RecoversSyntheticRational(t *testing.T) {
	f, _, _ := rationalTarget(t)
	tbl := synthTable(t, 32, 32, f)

	opts := fit.DefaultOptions()
	opts.NumDegree = 2
	opts.DenDegree = 1

	res, err := fit.Rational(tbl, opts)
	require.NoError(t, err)
	assert.True(t, res.Converged, "within budget on in-model data")
	assert.Less(t, res.MSE, 1e-4)
	assert.Equal(t, fit.ModeRational, res.Model.Mode())
}

// TestRational_ZeroStart reproduces the reference behavior: no warm
// start, all-zero initial guess, same convergence expectation.
func TestRational_ZeroStart(t *testing.T) {
	f, _, _ := rationalTarget(t)
	tbl := synthTable(t, 32, 32, f)

	opts := fit.DefaultOptions()
	opts.NumDegree = 2
	opts.DenDegree = 1
	opts.WarmStart = false

	res, err := fit.Rational(tbl, opts)
	require.NoError(t, err)
	assert.Less(t, res.MSE, 1e-4)
}

// TestRational_NonConvergenceWarning: a one-iteration budget on data the
// model cannot represent exactly must return the best-found model with
// Converged=false — a warning, not an error.
func TestRational_NonConvergenceWarning(t *testing.T) {
	tbl := synthTable(t, 16, 16, func(r, c float64) float64 {
		return math.Sin(3*r) * math.Cos(2*c)
	})

	opts := fit.DefaultOptions()
	opts.NumDegree = 3
	opts.DenDegree = 2
	opts.MaxIterations = 1
	opts.WarmStart = false

	res, err := fit.Rational(tbl, opts)
	require.NoError(t, err, "budget exhaustion is not fatal")
	assert.False(t, res.Converged)
	assert.NotNil(t, res.Model, "best-found coefficients are kept")
	assert.LessOrEqual(t, res.Iterations, 1)
}

// TestRational_DenominatorGuard: a model whose denominator crosses zero
// inside the sampled domain must be rejected, never returned.
func TestRational_DenominatorGuard(t *testing.T) {
	tbl, err := lut.New(8, 8, make([]float64, 64))
	require.NoError(t, err)

	numB, _ := poly.NewBasis(1)
	denB, _ := poly.NewBasisNoConstant(1)

	// Q = 1 - 2r vanishes at r=0.5 and is negative beyond it.
	m, err := fit.NewRationalModel(numB, []float64{1, 0, 0}, denB, []float64{0, -2}, tbl)
	assert.ErrorIs(t, err, fit.ErrDenominatorVanishes)
	assert.Nil(t, m, "no partial model on a fatal guard failure")
}

// TestRational_DenominatorDegreeZero: DenDegree=0 leaves M ≡ 0; the fit
// degenerates to an iteratively solved polynomial with denominator "1".
func TestRational_DenominatorDegreeZero(t *testing.T) {
	basis, _ := poly.NewBasis(1)
	coeffs := []float64{0.5, 0.25, -0.75}
	tbl := synthTable(t, 16, 16, func(r, c float64) float64 {
		return basis.Eval(coeffs, r, c)
	})

	opts := fit.DefaultOptions()
	opts.NumDegree = 1
	opts.DenDegree = 0

	res, err := fit.Rational(tbl, opts)
	require.NoError(t, err)
	assert.Less(t, res.MSE, 1e-12)

	expr, err := res.Model.Format(poly.ShortestPrecision)
	require.NoError(t, err)
	assert.Equal(t, "1", expr.Denominator)
}

// TestRational_BadOptions covers option validation.
func TestRational_BadOptions(t *testing.T) {
	tbl, _ := lut.New(2, 2, []float64{0, 0, 0, 0})

	opts := fit.DefaultOptions()
	opts.MaxIterations = 0
	_, err := fit.Rational(tbl, opts)
	assert.ErrorIs(t, err, fit.ErrBadOptions)

	opts = fit.DefaultOptions()
	opts.Tolerance = 0
	_, err = fit.Rational(tbl, opts)
	assert.ErrorIs(t, err, fit.ErrBadOptions)

	opts = fit.DefaultOptions()
	opts.NumDegree = -2
	_, err = fit.Rational(tbl, opts)
	assert.ErrorIs(t, err, fit.ErrBadOptions)

	_, err = fit.Rational(nil, fit.DefaultOptions())
	assert.ErrorIs(t, err, fit.ErrNilTable)
}
