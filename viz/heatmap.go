// SPDX-License-Identifier: MIT

package viz

import (
	"errors"
	"fmt"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/palette"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"

	"github.com/katalvlaran/lutfit/fit"
	"github.com/katalvlaran/lutfit/lut"
)

// ErrNilInput indicates a nil table or model argument.
var ErrNilInput = errors.New("viz: nil table or model")

// paletteColors is the number of bands in the heatmap palette.
const paletteColors = 64

// plotSide is the square output size.
const plotSide = 14 * vg.Centimeter

// sampleGrid adapts a (Table, per-cell value function) pair to
// plotter.GridXYZ. x is cos_theta, y is r.
type sampleGrid struct {
	t *lut.Table
	z func(row, col int) float64
}

func (g sampleGrid) Dims() (c, r int)   { return g.t.Cols(), g.t.Rows() }
func (g sampleGrid) Z(c, r int) float64 { return g.z(r, c) }
func (g sampleGrid) X(c int) float64    { return g.t.CosCoord(c) }
func (g sampleGrid) Y(r int) float64    { return g.t.RCoord(r) }

// SaveResidualHeatmap writes a PNG of f(sample) − v(sample) over the grid.
func SaveResidualHeatmap(t *lut.Table, m *fit.Model, path string) error {
	if t == nil || m == nil {
		return fmt.Errorf("viz: SaveResidualHeatmap: %w", ErrNilInput)
	}

	g := sampleGrid{t: t, z: func(row, col int) float64 {
		v, _ := t.At(row, col) // indices come from the grid walk, always valid
		return m.Eval(t.RCoord(row), t.CosCoord(col)) - v
	}}

	return save(g, "fit residuals", path)
}

// SaveSurfaceHeatmap writes a PNG of the fitted surface f over the grid.
func SaveSurfaceHeatmap(t *lut.Table, m *fit.Model, path string) error {
	if t == nil || m == nil {
		return fmt.Errorf("viz: SaveSurfaceHeatmap: %w", ErrNilInput)
	}

	g := sampleGrid{t: t, z: func(row, col int) float64 {
		return m.Eval(t.RCoord(row), t.CosCoord(col))
	}}

	return save(g, "fitted surface", path)
}

// save renders one heatmap to path.
func save(g sampleGrid, title, path string) error {
	h := plotter.NewHeatMap(g, palette.Heat(paletteColors, 1))

	p := plot.New()
	p.Title.Text = title
	p.X.Label.Text = "cos_theta"
	p.Y.Label.Text = "r"
	p.Add(h)

	if err := p.Save(plotSide, plotSide, path); err != nil {
		return fmt.Errorf("viz: save %q: %w", path, err)
	}

	return nil
}
