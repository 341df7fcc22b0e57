// SPDX-License-Identifier: MIT

package fit

import (
	"fmt"

	"github.com/katalvlaran/lutfit/lut"
)

// MSE evaluates m at every sample coordinate of t and returns the mean
// squared error (1/N)·Σ (f(sample_k) - v_k)² over all N = Rows×Cols
// samples. Evaluation goes through Model.Eval, so the result is invariant
// to the model's internal term order (up to floating-point noise).
// No side effects; t and m are read-only.
// Complexity: O(N·K).
func MSE(m *Model, t *lut.Table) (float64, error) {
	if m == nil {
		return 0, fmt.Errorf("fit: MSE: %w", ErrNilModel)
	}
	if t == nil {
		return 0, fmt.Errorf("fit: MSE: %w", ErrNilTable)
	}

	var sum float64
	var k int
	for row := 0; row < t.Rows(); row++ {
		r := t.RCoord(row)
		for col := 0; col < t.Cols(); col++ {
			d := m.Eval(r, t.CosCoord(col)) - t.Value(k)
			sum += d * d
			k++
		}
	}

	return sum / float64(t.Len()), nil
}
