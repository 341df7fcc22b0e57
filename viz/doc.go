// Package viz renders fit diagnostics as PNG heatmaps: the fitted surface
// and the per-sample residuals over the table's normalized coordinate grid.
//
// ⚙️ Usage:
//
//	err := viz.SaveResidualHeatmap(table, res.Model, "residuals.png")
//	err = viz.SaveSurfaceHeatmap(table, res.Model, "surface.png")
//
// Axes follow the table convention: x is cos_theta (columns), y is r
// (rows). Rendering is a convenience for eyeballing fits; nothing in the
// fitting pipeline depends on it.
package viz
