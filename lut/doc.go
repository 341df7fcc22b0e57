// Package lut loads and holds 2D sample tables — the ground truth that the
// fit package approximates with closed-form expressions.
//
// 🚀 What is a lut.Table?
//
//	An immutable R×C grid of finite float64 samples, stored row-major in a
//	flat slice. Each cell (row, col) carries the value of the underlying
//	function at the normalized coordinates
//
//	  r         = row / (R-1)   // e.g. sheen roughness in [0,1]
//	  cos_theta = col / (C-1)   // e.g. NdotV in [0,1]
//
//	The axis convention is fixed: rows map to r, columns to cos_theta.
//
// ✨ Accepted input shapes (all plain text):
//
//   - bracketed comma list:  [0.0, 0.125, 0.25, ...]   (row-major)
//   - whitespace-separated value stream, one or more values per line
//   - "row col value" triplets, one cell per line, any line order
//
// ⚙️ Usage:
//
//	t, err := lut.LoadFile("thirdparty/sheen_lut_data.txt", 128, 128)
//	if err != nil {
//	  // ErrSampleCount / ErrNotNumeric / ErrNotFinite / ErrBadShape
//	}
//	v, _ := t.At(3, 7)
//
// Validation is strict and up-front: the total sample count must equal
// R×C exactly and every value must be finite. A Table is never mutated
// after construction.
package lut
