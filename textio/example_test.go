package textio_test

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/ratgauss/matrix"
	"github.com/katalvlaran/ratgauss/textio"
)

func ExampleReadSystem() {
	m, err := textio.ReadSystem(strings.NewReader("2 1 5\n1 -1 1\n"))
	if err != nil {
		fmt.Println(err)
		return
	}
	x, _ := matrix.Gauss(m)
	fmt.Println(x[0], x[1])
	// Output:
	// 2 1
}
