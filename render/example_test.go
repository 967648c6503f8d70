package render_test

import (
	"os"

	"github.com/katalvlaran/ratgauss/matrix"
	"github.com/katalvlaran/ratgauss/render"
)

func ExampleSolution() {
	m, _ := matrix.FromInts([][]int32{{3, 2, 1}, {1, 4, 2}})
	x, _ := matrix.Gauss(m)
	_ = render.Solution(os.Stdout, x, render.DefaultOptions())
	// Output:
	// The value of the variable 1 is: 0 (0/1).
	// The value of the variable 2 is: 0.5 (1/2).
}
