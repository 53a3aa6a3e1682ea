package morph_test

import (
	"fmt"
	"math"

	"github.com/dijetlab/resonance-shapes/morph"
	"github.com/dijetlab/resonance-shapes/shape"
)

func ExampleEngine_Interpolate() {
	binning, err := shape.UniformBinning(300, 0, 3000)
	if err != nil {
		panic(err)
	}

	group := shape.NewGroup(binning)

	// Two simulated mass points with a resonance peak at the mass.
	for _, mass := range []float64{1000.0, 2000.0} {
		centers := binning.Centers()
		raw := make([]float64, len(centers))

		for i, c := range centers {
			d := (c - mass) / 100
			raw[i] = math.Exp(-0.5 * d * d)
		}

		s, err := shape.Normalize(mass, binning, raw)
		if err != nil {
			panic(err)
		}

		if err := group.Add(s); err != nil {
			panic(err)
		}
	}

	engine := morph.NewEngine()

	res, err := engine.Interpolate(group, 1500)
	if err != nil {
		panic(err)
	}

	peak := binning.Centers()[res.Shape.PeakBin()]
	fmt.Printf("provenance: %s\n", res.Provenance)
	fmt.Printf("peak within a bin of 1500: %v\n", math.Abs(peak-1500) <= 10)
	fmt.Printf("integral: %.4f\n", res.Shape.Integral())

	// Output:
	// provenance: interpolated
	// peak within a bin of 1500: true
	// integral: 1.0000
}
