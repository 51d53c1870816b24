package baseline_test

import (
	"fmt"

	"github.com/cwbudde/algo-mwd/dsp/baseline"
)

func ExampleRestore() {
	trapezoid := []float64{0, 0, 1, 5, 9, 9, 9, 5, 1, 0}

	restored, err := baseline.Restore(trapezoid, []int{2}, baseline.Params{FitWindow: 0, Length: 6})
	if err != nil {
		panic(err)
	}

	fmt.Println(restored)

	// Output:
	// [0 0 1 1 1 1 1 1 1 0]
}
