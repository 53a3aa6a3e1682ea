package shape

import (
	"fmt"
	"math"

	"github.com/cwbudde/algo-vecmath"
)

// normTolerance is the accepted deviation of a pre-normalized shape's
// integral from unity.
const normTolerance = 1e-6

// Shape is a mass-associated, unit-integral distribution on a Binning.
// Shapes are immutable once constructed.
type Shape struct {
	mass     float64
	binning  Binning
	contents []float64
}

// New constructs a Shape from already-normalized bin contents. Contents
// must be non-negative, finite, match the binning's bin count, and sum to
// unity within tolerance.
func New(mass float64, binning Binning, contents []float64) (Shape, error) {
	if err := validateContents(binning, contents); err != nil {
		return Shape{}, err
	}

	total := vecmath.Sum(contents)
	if math.Abs(total-1) > normTolerance {
		return Shape{}, fmt.Errorf("%w: integral %g for m = %g GeV", ErrNotNormalized, total, mass)
	}

	out := make([]float64, len(contents))
	copy(out, contents)

	return Shape{mass: mass, binning: binning, contents: out}, nil
}

// Normalize converts a raw simulated distribution into a Shape on the
// given binning. Negative and NaN bins are clamped to zero before the
// contents are rescaled to unit integral. A raw distribution with zero
// total integral cannot be normalized.
func Normalize(mass float64, binning Binning, raw []float64) (Shape, error) {
	if len(raw) != binning.NBins() {
		return Shape{}, fmt.Errorf("%w: %d bin contents on a %d-bin binning", ErrMalformedInput, len(raw), binning.NBins())
	}

	contents := make([]float64, len(raw))
	for i, v := range raw {
		if math.IsNaN(v) || v < 0 {
			continue
		}

		if math.IsInf(v, 0) {
			return Shape{}, fmt.Errorf("%w: infinite content in bin %d for m = %g GeV", ErrMalformedInput, i, mass)
		}

		contents[i] = v
	}

	total := vecmath.Sum(contents)
	if total <= 0 {
		return Shape{}, fmt.Errorf("%w: zero total integral for m = %g GeV", ErrMalformedInput, mass)
	}

	vecmath.ScaleBlockInPlace(contents, 1/total)

	return Shape{mass: mass, binning: binning, contents: contents}, nil
}

func validateContents(binning Binning, contents []float64) error {
	if len(contents) != binning.NBins() {
		return fmt.Errorf("%w: %d bin contents on a %d-bin binning", ErrMalformedInput, len(contents), binning.NBins())
	}

	for i, v := range contents {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return fmt.Errorf("%w: non-finite content in bin %d", ErrMalformedInput, i)
		}

		if v < 0 {
			return fmt.Errorf("%w: negative content %g in bin %d", ErrMalformedInput, v, i)
		}
	}

	return nil
}

// Mass returns the resonance mass the shape is associated with, in GeV.
func (s Shape) Mass() float64 { return s.mass }

// Binning returns the shape's binning.
func (s Shape) Binning() Binning { return s.binning }

// NBins returns the number of bins.
func (s Shape) NBins() int { return len(s.contents) }

// Contents returns a copy of the bin contents.
func (s Shape) Contents() []float64 {
	out := make([]float64, len(s.contents))
	copy(out, s.contents)

	return out
}

// Content returns the content of bin i.
func (s Shape) Content(i int) float64 { return s.contents[i] }

// Integral returns the sum of bin contents (unity within tolerance).
func (s Shape) Integral() float64 { return vecmath.Sum(s.contents) }

// CDF returns the cumulative distribution evaluated at each bin edge:
// N+1 non-decreasing values from 0 at the first edge to the shape's
// integral at the last.
func (s Shape) CDF() []float64 {
	out := make([]float64, len(s.contents)+1)
	for i, v := range s.contents {
		out[i+1] = out[i] + v
	}

	return out
}

// PeakBin returns the index of the bin with the largest content.
func (s Shape) PeakBin() int {
	best := 0
	for i, v := range s.contents {
		if v > s.contents[best] {
			best = i
		}
	}

	return best
}
