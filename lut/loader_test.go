package lut_test

import (
	"strings"
	"testing"

	"github.com/katalvlaran/lutfit/lut"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestLoad_Bracketed parses the original "[v, v, ...]" dump format.
func TestLoad_Bracketed(t *testing.T) {
	in := "[0.0, 0.25, 0.5, 0.75]"
	tbl, err := lut.Load(strings.NewReader(in), 2, 2)
	require.NoError(t, err)

	v, _ := tbl.At(0, 1)
	assert.Equal(t, 0.25, v)
	v, _ = tbl.At(1, 0)
	assert.Equal(t, 0.5, v, "bracketed list is row-major")
}

// TestLoad_Stream parses a plain whitespace-separated value stream.
func TestLoad_Stream(t *testing.T) {
	in := "0 0.25\n0.5\t0.75\n"
	tbl, err := lut.Load(strings.NewReader(in), 2, 2)
	require.NoError(t, err)

	v, _ := tbl.At(1, 1)
	assert.Equal(t, 0.75, v)
}

// TestLoad_Triplets parses "row col value" lines in shuffled order.
func TestLoad_Triplets(t *testing.T) {
	in := `
1 1 0.75
0 0 0.0
1 0 0.5
0 1 0.25
`
	tbl, err := lut.Load(strings.NewReader(in), 2, 2)
	require.NoError(t, err)

	v, _ := tbl.At(1, 0)
	assert.Equal(t, 0.5, v)
}

// TestLoad_TripletDuplicateCell rejects a cell addressed twice.
func TestLoad_TripletDuplicateCell(t *testing.T) {
	in := "0 0 1\n0 0 2\n0 1 3\n1 0 4\n"
	_, err := lut.Load(strings.NewReader(in), 2, 2)
	assert.ErrorIs(t, err, lut.ErrSampleCount)
}

// TestLoad_TripletIndexOutOfRange rejects indices outside the grid.
func TestLoad_TripletIndexOutOfRange(t *testing.T) {
	in := "0 0 1\n0 1 2\n1 0 3\n2 1 4\n"
	_, err := lut.Load(strings.NewReader(in), 2, 2)
	assert.ErrorIs(t, err, lut.ErrOutOfRange)
}

// TestLoad_CountMismatch rejects short and long inputs.
func TestLoad_CountMismatch(t *testing.T) {
	_, err := lut.Load(strings.NewReader("[1, 2, 3]"), 2, 2)
	assert.ErrorIs(t, err, lut.ErrSampleCount, "3 values for a 2×2 grid")

	_, err = lut.Load(strings.NewReader("1 2 3 4 5"), 2, 2)
	assert.ErrorIs(t, err, lut.ErrSampleCount, "5 values for a 2×2 grid")
}

// TestLoad_NotNumeric rejects unparseable tokens.
func TestLoad_NotNumeric(t *testing.T) {
	_, err := lut.Load(strings.NewReader("[1, 2, oops, 4]"), 2, 2)
	assert.ErrorIs(t, err, lut.ErrNotNumeric)
}

// TestLoad_NotFinite rejects textual NaN/Inf, which strconv happily parses.
func TestLoad_NotFinite(t *testing.T) {
	_, err := lut.Load(strings.NewReader("[1, 2, NaN, 4]"), 2, 2)
	assert.ErrorIs(t, err, lut.ErrNotFinite)

	_, err = lut.Load(strings.NewReader("1 2 +Inf 4"), 2, 2)
	assert.ErrorIs(t, err, lut.ErrNotFinite)
}

// TestLoad_BadShape rejects degenerate grid requests before reading.
func TestLoad_BadShape(t *testing.T) {
	_, err := lut.Load(strings.NewReader("[1]"), 1, 1)
	assert.ErrorIs(t, err, lut.ErrBadShape)
}
