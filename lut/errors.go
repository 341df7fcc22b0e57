// SPDX-License-Identifier: MIT
// Package lut: sentinel error set.
// All loader and Table constructors MUST return these sentinels (optionally
// wrapped with positional context via fmt.Errorf("...: %w", Err)) and tests
// MUST match them via errors.Is. No function in this package panics on
// malformed user input.

package lut

import "errors"

var (
	// ErrBadShape is returned when the requested grid shape is unusable:
	// rows or cols below MinDim (normalized coordinates need at least two
	// points per axis to span [0,1]).
	ErrBadShape = errors.New("lut: rows and cols must be >= 2")

	// ErrSampleCount indicates that the parsed sample count does not match
	// rows*cols, or that a triplet input addressed a cell twice / left a
	// cell unset.
	ErrSampleCount = errors.New("lut: sample count does not match grid size")

	// ErrNotNumeric indicates a token that could not be parsed as a float,
	// or a triplet row/col that is not an integer in range.
	ErrNotNumeric = errors.New("lut: non-numeric value in input")

	// ErrNotFinite indicates a NaN or ±Inf sample; tables must hold only
	// finite values.
	ErrNotFinite = errors.New("lut: NaN or Inf sample value")

	// ErrOutOfRange indicates a row or column index outside the grid.
	ErrOutOfRange = errors.New("lut: index out of range")
)
