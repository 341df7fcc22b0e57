// SPDX-License-Identifier: MIT

package lut

import (
	"fmt"
	"math"
)

// MinDim is the smallest legal extent per axis. One point cannot span the
// normalized [0,1] coordinate range, so 2 is the floor.
const MinDim = 2

// Table is an immutable row-major grid of finite samples.
// rows is R, cols is C, and data holds R*C elements in row-major order.
type Table struct {
	rows, cols int
	data       []float64 // flat backing storage, length == rows*cols
}

// New creates a Table from an in-memory value slice.
// Stage 1 (Validate): shape >= MinDim per axis, len(data) == rows*cols,
// every value finite.
// Stage 2 (Prepare): copy data so the caller cannot mutate the Table later.
// Stage 3 (Finalize): return the Table or a sentinel error.
// Complexity: O(rows*cols) time and memory.
func New(rows, cols int, data []float64) (*Table, error) {
	if rows < MinDim || cols < MinDim {
		return nil, fmt.Errorf("lut: New(%d,%d): %w", rows, cols, ErrBadShape)
	}
	if len(data) != rows*cols {
		return nil, fmt.Errorf("lut: New: got %d samples, want %d: %w",
			len(data), rows*cols, ErrSampleCount)
	}
	for k, v := range data {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return nil, fmt.Errorf("lut: New: sample %d: %w", k, ErrNotFinite)
		}
	}

	cp := make([]float64, len(data))
	copy(cp, data)

	return &Table{rows: rows, cols: cols, data: cp}, nil
}

// Rows returns the number of rows (the r / roughness axis extent).
func (t *Table) Rows() int { return t.rows }

// Cols returns the number of columns (the cos_theta axis extent).
func (t *Table) Cols() int { return t.cols }

// Len returns the total sample count rows*cols.
func (t *Table) Len() int { return len(t.data) }

// At retrieves the sample at (row, col) with bounds checking.
// Public indexers return ErrOutOfRange rather than panicking.
func (t *Table) At(row, col int) (float64, error) {
	if row < 0 || row >= t.rows || col < 0 || col >= t.cols {
		return 0, fmt.Errorf("lut: At(%d,%d): %w", row, col, ErrOutOfRange)
	}

	return t.data[row*t.cols+col], nil
}

// Value returns the k-th sample in row-major order without bounds overhead.
// k must be in [0, Len()); this is the hot-path accessor used by fitters
// that already iterate over valid flat indices.
func (t *Table) Value(k int) float64 { return t.data[k] }

// Values returns a copy of all samples in row-major order.
func (t *Table) Values() []float64 {
	cp := make([]float64, len(t.data))
	copy(cp, t.data)

	return cp
}

// RCoord maps a row index to its normalized r coordinate row/(R-1).
func (t *Table) RCoord(row int) float64 {
	return float64(row) / float64(t.rows-1)
}

// CosCoord maps a column index to its normalized cos_theta coordinate
// col/(C-1).
func (t *Table) CosCoord(col int) float64 {
	return float64(col) / float64(t.cols-1)
}

// Coords returns the flattened per-sample coordinate arrays (rs, cs), both
// of length Len(), aligned with Value/Values ordering: sample k sits at
// rs[k] = (k/C)/(R-1), cs[k] = (k%C)/(C-1).
// Fresh slices are returned on every call; the Table stays immutable.
// Complexity: O(rows*cols).
func (t *Table) Coords() (rs, cs []float64) {
	n := len(t.data)
	rs = make([]float64, n)
	cs = make([]float64, n)
	var k int
	for row := 0; row < t.rows; row++ {
		r := t.RCoord(row)
		for col := 0; col < t.cols; col++ {
			rs[k] = r
			cs[k] = t.CosCoord(col)
			k++
		}
	}

	return rs, cs
}
