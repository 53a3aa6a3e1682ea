package grid

import (
	"errors"
	"fmt"
	"math"
)

// Errors returned by grid construction.
var (
	ErrInvalidStep  = errors.New("grid: step must be positive")
	ErrInvalidRange = errors.New("grid: stop must not be below start")
)

// stepTolerance absorbs floating-point drift when deciding whether the
// last regular step lands on the range endpoint.
const stepTolerance = 1e-9

// Masses returns the ascending target masses start, start+step, ... up to
// and including stop. The endpoint is always part of the grid even when
// the range is not a whole number of steps.
func Masses(start, stop, step float64) ([]float64, error) {
	if step <= 0 {
		return nil, fmt.Errorf("%w: %g", ErrInvalidStep, step)
	}

	if stop < start {
		return nil, fmt.Errorf("%w: [%g, %g]", ErrInvalidRange, start, stop)
	}

	span := stop - start
	n := int(math.Floor(span/step + stepTolerance))

	out := make([]float64, 0, n+2)
	for i := 0; i <= n; i++ {
		out = append(out, start+float64(i)*step)
	}

	if stop-out[len(out)-1] > stepTolerance*math.Max(1, math.Abs(stop)) {
		out = append(out, stop)
	} else {
		out[len(out)-1] = stop
	}

	return out, nil
}
