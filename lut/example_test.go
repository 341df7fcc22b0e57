package lut_test

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/lutfit/lut"
)

// ExampleLoad demonstrates loading a tiny 2×2 table from the bracketed
// list format and reading it back through the coordinate convention:
// rows are the r axis, columns the cos_theta axis.
func ExampleLoad() {
	src := strings.NewReader("[0.0, 0.1, 0.2, 0.3]")

	t, err := lut.Load(src, 2, 2)
	if err != nil {
		fmt.Println("error:", err)

		return
	}

	v, _ := t.At(1, 0) // row 1 → r=1, col 0 → cos_theta=0
	fmt.Printf("rows=%d cols=%d v(r=1,cos=0)=%v\n", t.Rows(), t.Cols(), v)
	// Output:
	// rows=2 cols=2 v(r=1,cos=0)=0.2
}
