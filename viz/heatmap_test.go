package viz_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/katalvlaran/lutfit/fit"
	"github.com/katalvlaran/lutfit/lut"
	"github.com/katalvlaran/lutfit/poly"
	"github.com/katalvlaran/lutfit/viz"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// testModel returns a small table and a degree-1 model over it.
func testModel(t *testing.T) (*lut.Table, *fit.Model) {
	t.Helper()
	data := make([]float64, 16)
	for k := range data {
		data[k] = float64(k) / 16
	}
	tbl, err := lut.New(4, 4, data)
	require.NoError(t, err)

	basis, _ := poly.NewBasis(1)
	m, err := fit.NewLinearModel(basis, []float64{0.1, 0.2, 0.3})
	require.NoError(t, err)

	return tbl, m
}

// TestSaveResidualHeatmap writes a non-empty PNG to a temp dir.
func TestSaveResidualHeatmap(t *testing.T) {
	tbl, m := testModel(t)
	path := filepath.Join(t.TempDir(), "resid.png")

	require.NoError(t, viz.SaveResidualHeatmap(tbl, m, path))

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Positive(t, info.Size())
}

// TestSaveSurfaceHeatmap writes a non-empty PNG to a temp dir.
func TestSaveSurfaceHeatmap(t *testing.T) {
	tbl, m := testModel(t)
	path := filepath.Join(t.TempDir(), "surface.png")

	require.NoError(t, viz.SaveSurfaceHeatmap(tbl, m, path))

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Positive(t, info.Size())
}

// TestSave_NilInputs rejects nil arguments.
func TestSave_NilInputs(t *testing.T) {
	tbl, m := testModel(t)

	assert.ErrorIs(t, viz.SaveResidualHeatmap(nil, m, "x.png"), viz.ErrNilInput)
	assert.ErrorIs(t, viz.SaveSurfaceHeatmap(tbl, nil, "x.png"), viz.ErrNilInput)
}
