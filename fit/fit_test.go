package fit_test

import (
	"testing"

	"github.com/katalvlaran/lutfit/fit"
	"github.com/katalvlaran/lutfit/lut"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestFit_RoutesLinear checks dispatcher routing and option plumbing for
// linear mode.
func TestFit_RoutesLinear(t *testing.T) {
	tbl := synthTable(t, 8, 8, func(_, _ float64) float64 { return 0.25 })

	opts := fit.DefaultOptions()
	opts.Mode = fit.ModeLinear
	opts.Degree = 0

	res, err := fit.Fit(tbl, opts)
	require.NoError(t, err)
	assert.Equal(t, fit.ModeLinear, res.Model.Mode())
	assert.InDelta(t, 0.25, res.Model.NumeratorCoeffs()[0], 1e-12)
}

// TestFit_RoutesRational checks default routing (rational mode).
func TestFit_RoutesRational(t *testing.T) {
	f, _, _ := rationalTarget(t)
	tbl := synthTable(t, 16, 16, f)

	opts := fit.DefaultOptions()
	opts.NumDegree = 2
	opts.DenDegree = 1

	res, err := fit.Fit(tbl, opts)
	require.NoError(t, err)
	assert.Equal(t, fit.ModeRational, res.Model.Mode())
	assert.Less(t, res.MSE, 1e-4)
}

// TestFit_UnknownMode rejects modes outside the enum.
func TestFit_UnknownMode(t *testing.T) {
	tbl, _ := lut.New(2, 2, make([]float64, 4))

	opts := fit.DefaultOptions()
	opts.Mode = fit.Mode(42)

	_, err := fit.Fit(tbl, opts)
	assert.ErrorIs(t, err, fit.ErrUnknownMode)
}

// TestFit_NilTable rejects a nil table before touching options.
func TestFit_NilTable(t *testing.T) {
	_, err := fit.Fit(nil, fit.DefaultOptions())
	assert.ErrorIs(t, err, fit.ErrNilTable)
}

// TestMode_String covers diagnostic spellings.
func TestMode_String(t *testing.T) {
	assert.Equal(t, "linear", fit.ModeLinear.String())
	assert.Equal(t, "rational", fit.ModeRational.String())
	assert.Equal(t, "Mode(7)", fit.Mode(7).String())
}
