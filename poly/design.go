// SPDX-License-Identifier: MIT

package poly

import (
	"fmt"

	"gonum.org/v1/gonum/mat"
)

// DesignMatrix builds the N×K feature matrix for basis b over the flattened
// sample coordinates (rs, cs): cell (s, k) = rs[s]^I_k * cs[s]^J_k.
//
// Contracts:
//   - len(rs) == len(cs) > 0 (ErrSampleMismatch / ErrNoSamples otherwise);
//   - b must have at least one term (ErrEmptyBasis otherwise);
//   - column order k is exactly basis order — coefficient vectors solved
//     against this matrix are index-aligned with b.
//
// Complexity: O(N·K·D) time, O(N·K) memory.
func DesignMatrix(b Basis, rs, cs []float64) (*mat.Dense, error) {
	if len(b) == 0 {
		return nil, fmt.Errorf("poly: DesignMatrix: %w", ErrEmptyBasis)
	}
	if len(rs) != len(cs) {
		return nil, fmt.Errorf("poly: DesignMatrix: len(rs)=%d len(cs)=%d: %w",
			len(rs), len(cs), ErrSampleMismatch)
	}
	if len(rs) == 0 {
		return nil, fmt.Errorf("poly: DesignMatrix: %w", ErrNoSamples)
	}

	a := mat.NewDense(len(rs), len(b), nil)
	for s := 0; s < len(rs); s++ {
		for k, t := range b {
			a.Set(s, k, powInt(rs[s], t.I)*powInt(cs[s], t.J))
		}
	}

	return a, nil
}
