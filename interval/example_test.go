// File: interval/example_test.go
package interval_test

import (
	"fmt"

	"github.com/katalvlaran/ndrange/interval"
)

// ExamplePairs demonstrates reading one axis of a limits encoding:
// the flat sequence (-1, 4, 6, 8) is the union [-1,4] ∪ [6,8].
func ExamplePairs() {
	pairs, _ := interval.Pairs(interval.Of(-1, 4, 6, 8))
	for _, iv := range pairs {
		fmt.Println(iv, "width", iv.Width())
	}

	// Output:
	// [-1, 4] width 5
	// [6, 8] width 2
}

// ExampleInterval_Covers demonstrates the wildcard-aware covering
// relation: exact endpoint matches or declared open ends, nothing else.
func ExampleInterval_Covers() {
	target := interval.Interval{Lower: interval.Finite(1), Upper: interval.Finite(4)}
	openAbove := interval.Interval{Lower: interval.Finite(1), Upper: interval.AnyUpper}
	wider := interval.Interval{Lower: interval.Finite(0), Upper: interval.Finite(5)}

	fmt.Println(openAbove.Covers(target))
	fmt.Println(wider.Covers(target))

	// Output:
	// true
	// false
}
