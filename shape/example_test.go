package shape_test

import (
	"fmt"

	"github.com/dijetlab/resonance-shapes/shape"
)

func ExampleNormalize() {
	binning, err := shape.NewBinning([]float64{0, 500, 1000, 1500, 2000})
	if err != nil {
		panic(err)
	}

	// Raw simulated counts; negative bins are clamped before rescaling.
	s, err := shape.Normalize(1000, binning, []float64{20, 60, -3, 20})
	if err != nil {
		panic(err)
	}

	fmt.Printf("m = %.0f GeV, integral = %.2f\n", s.Mass(), s.Integral())
	fmt.Printf("contents = %.2f\n", s.Contents())

	// Output:
	// m = 1000 GeV, integral = 1.00
	// contents = [0.20 0.60 0.00 0.20]
}
