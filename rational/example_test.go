package rational_test

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/ratgauss/rational"
)

// ExampleSub subtracts two fractions with different denominators.
func ExampleSub() {
	a := rational.MustNew(8, 3)
	b := rational.MustNew(4, 2)

	d, _ := rational.Sub(a, b)
	fmt.Println(d, d.FloatString(3))
	// Output:
	// 2/3 0.667
}

// ExampleInv shows that inverting zero is reported, not silently ignored.
func ExampleInv() {
	_, err := rational.Inv(rational.Zero)
	fmt.Println(errors.Is(err, rational.ErrZeroInverse))
	// Output:
	// true
}
