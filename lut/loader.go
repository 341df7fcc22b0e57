// SPDX-License-Identifier: MIT
// Package lut: text loaders for sample tables.
//
// Three flat-text shapes are accepted (see doc.go). Detection is
// deterministic:
//  1. input starting with '[' and ending with ']' → bracketed comma list;
//  2. otherwise, if every non-empty line has exactly three fields →
//     "row col value" triplets;
//  3. otherwise → whitespace-separated row-major value stream.
//
// All failures map onto the package sentinels and abort before any fitting
// can observe a partially built table.

package lut

import (
	"fmt"
	"io"
	"math"
	"os"
	"strconv"
	"strings"
)

// tripletFields is the exact field count that marks a "row col value" line.
const tripletFields = 3

// LoadFile opens path and delegates to Load.
func LoadFile(path string, rows, cols int) (*Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("lut: LoadFile: %w", err)
	}
	defer f.Close()

	return Load(f, rows, cols)
}

// Load reads an entire text source and parses it into a rows×cols Table.
// Stage 1 (Read): slurp the source; table inputs are small (a 128×128
// table is ~300 KB of text), so whole-buffer parsing keeps detection simple.
// Stage 2 (Detect+Parse): route to the bracketed / triplet / stream parser.
// Stage 3 (Finalize): validate through New (count, finiteness, shape).
// Complexity: O(bytes) time, O(rows*cols) memory.
func Load(r io.Reader, rows, cols int) (*Table, error) {
	if rows < MinDim || cols < MinDim {
		return nil, fmt.Errorf("lut: Load(%d,%d): %w", rows, cols, ErrBadShape)
	}

	raw, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("lut: Load: %w", err)
	}
	text := strings.TrimSpace(string(raw))

	switch {
	case strings.HasPrefix(text, "[") && strings.HasSuffix(text, "]"):
		return parseBracketed(text, rows, cols)
	case isTriplets(text):
		return parseTriplets(text, rows, cols)
	default:
		return parseStream(text, rows, cols)
	}
}

// parseBracketed handles "[v0, v1, ...]" — the format of the original LUT
// dump this package was built to read. Values are row-major.
func parseBracketed(text string, rows, cols int) (*Table, error) {
	body := strings.TrimSpace(text[1 : len(text)-1])
	if body == "" {
		return nil, fmt.Errorf("lut: Load: empty list: %w", ErrSampleCount)
	}

	parts := strings.Split(body, ",")
	data := make([]float64, 0, len(parts))
	for k, p := range parts {
		v, err := parseValue(strings.TrimSpace(p))
		if err != nil {
			return nil, fmt.Errorf("lut: Load: element %d: %w", k, err)
		}
		data = append(data, v)
	}

	return New(rows, cols, data)
}

// isTriplets reports whether every non-empty line of text has exactly
// three whitespace-separated fields.
func isTriplets(text string) bool {
	seen := false
	for _, line := range strings.Split(text, "\n") {
		fields := strings.Fields(line)
		if len(fields) == 0 {
			continue
		}
		if len(fields) != tripletFields {
			return false
		}
		seen = true
	}

	return seen
}

// parseTriplets handles one "row col value" cell per line, in any line
// order. Every cell must be set exactly once.
func parseTriplets(text string, rows, cols int) (*Table, error) {
	data := make([]float64, rows*cols)
	filled := make([]bool, rows*cols)
	count := 0

	for ln, line := range strings.Split(text, "\n") {
		fields := strings.Fields(line)
		if len(fields) == 0 {
			continue
		}

		row, err := parseIndex(fields[0], rows)
		if err != nil {
			return nil, fmt.Errorf("lut: Load: line %d: row %q: %w", ln+1, fields[0], err)
		}
		col, err := parseIndex(fields[1], cols)
		if err != nil {
			return nil, fmt.Errorf("lut: Load: line %d: col %q: %w", ln+1, fields[1], err)
		}
		v, err := parseValue(fields[2])
		if err != nil {
			return nil, fmt.Errorf("lut: Load: line %d: %w", ln+1, err)
		}

		k := row*cols + col
		if filled[k] {
			return nil, fmt.Errorf("lut: Load: line %d: cell (%d,%d) set twice: %w",
				ln+1, row, col, ErrSampleCount)
		}
		filled[k] = true
		data[k] = v
		count++
	}

	if count != rows*cols {
		return nil, fmt.Errorf("lut: Load: got %d triplets, want %d: %w",
			count, rows*cols, ErrSampleCount)
	}

	return New(rows, cols, data)
}

// parseStream handles a plain whitespace-separated value stream, row-major.
func parseStream(text string, rows, cols int) (*Table, error) {
	fields := strings.Fields(text)
	data := make([]float64, 0, len(fields))
	for k, f := range fields {
		v, err := parseValue(f)
		if err != nil {
			return nil, fmt.Errorf("lut: Load: value %d: %w", k, err)
		}
		data = append(data, v)
	}

	return New(rows, cols, data)
}

// parseValue parses a single sample token, mapping parse failures to
// ErrNotNumeric and non-finite values to ErrNotFinite.
// Note: strconv accepts "NaN"/"Inf" spellings, so finiteness must be
// checked here and not left to New alone.
func parseValue(tok string) (float64, error) {
	v, err := strconv.ParseFloat(tok, 64)
	if err != nil {
		return 0, fmt.Errorf("%q: %w", tok, ErrNotNumeric)
	}
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, fmt.Errorf("%q: %w", tok, ErrNotFinite)
	}

	return v, nil
}

// parseIndex parses a grid index token and bounds-checks it against limit.
func parseIndex(tok string, limit int) (int, error) {
	i, err := strconv.Atoi(tok)
	if err != nil {
		return 0, ErrNotNumeric
	}
	if i < 0 || i >= limit {
		return 0, ErrOutOfRange
	}

	return i, nil
}
