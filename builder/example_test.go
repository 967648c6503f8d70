package builder_test

import (
	"fmt"

	"github.com/katalvlaran/ratgauss/builder"
	"github.com/katalvlaran/ratgauss/matrix"
)

// ExampleBuildSystem plants x = (1, 2, 3) into a tridiagonal system.
func ExampleBuildSystem() {
	fx, err := builder.BuildSystem(builder.Tridiagonal(3))
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Print(fx.Aug)
	x, _ := matrix.Gauss(fx.Aug)
	fmt.Println(x)
	// Output:
	// [2, -1, 0, 0]
	// [-1, 2, -1, 0]
	// [0, -1, 2, 4]
	// [1 2 3]
}
