package morph

import (
	"fmt"
	"math"

	"github.com/cwbudde/algo-vecmath"

	"github.com/dijetlab/resonance-shapes/shape"
)

// degenerateTolerance is the minimum fraction of the probability grid's
// interior quantiles that must land inside the binning. The quantiles at
// p = 0 and p = 1 stay pinned to the simulated supports and carry no
// information about where the blend puts its mass; a blend whose
// remaining quantiles all fall outside the binning leaves only a
// renormalizable sliver behind, and rescaling that sliver would amplify
// numerical noise into an arbitrary shape.
const degenerateTolerance = 1e-6

// Result is a synthesized shape for one requested target mass.
type Result struct {
	// Mass is the requested target mass. For ClampToNearest results it
	// may differ from Shape.Mass().
	Mass       float64
	Shape      shape.Shape
	Provenance Provenance
}

// Engine synthesizes shapes at arbitrary target masses by quantile
// morphing between the two bracketing simulated shapes. An Engine is a
// pure function of its inputs and safe for concurrent use.
type Engine struct {
	cfg   Config
	probs []float64
}

// NewEngine creates an interpolation engine with the given options.
func NewEngine(opts ...Option) *Engine {
	cfg := ApplyOptions(opts...)

	return &Engine{
		cfg:   cfg,
		probs: probabilityGrid(cfg.ProbabilityGridSize),
	}
}

// Config returns the engine's effective configuration.
func (e *Engine) Config() Config { return e.cfg }

// Interpolate returns a shape at target. A target matching a simulated
// mass point within tolerance passes through unchanged; an in-range
// target is morphed between its bracketing neighbors; an out-of-range
// target is handled per the configured extrapolation policy.
func (e *Engine) Interpolate(g *shape.Group, target float64) (Result, error) {
	if g == nil || g.Len() < 2 {
		return Result{}, ErrTooFewShapes
	}

	if s, ok := e.exactMatch(g, target); ok {
		return Result{Mass: target, Shape: s, Provenance: Exact}, nil
	}

	if target < g.MinMass() || target > g.MaxMass() {
		return e.extrapolate(g, target)
	}

	lo, hi := g.Bracket(target)

	s, err := e.morph(lo, hi, target)
	if err != nil {
		return Result{}, err
	}

	return Result{Mass: target, Shape: s, Provenance: Interpolated}, nil
}

func (e *Engine) exactMatch(g *shape.Group, target float64) (shape.Shape, bool) {
	for _, m := range g.Masses() {
		scale := math.Max(1, math.Abs(m))
		if math.Abs(target-m) <= e.cfg.MassTolerance*scale {
			s, _ := g.Shape(m)

			return s, true
		}
	}

	return shape.Shape{}, false
}

func (e *Engine) extrapolate(g *shape.Group, target float64) (Result, error) {
	switch e.cfg.Extrapolation {
	case ClampToNearest:
		return Result{Mass: target, Shape: g.Nearest(target), Provenance: Extrapolated}, nil

	case LinearExtrapolate:
		lo, hi := g.Bracket(target)

		s, err := e.morph(lo, hi, target)
		if err != nil {
			return Result{}, err
		}

		return Result{Mass: target, Shape: s, Provenance: Extrapolated}, nil

	default:
		return Result{}, ErrOutOfRange
	}
}

// morph performs quantile (horizontal) morphing between lo and hi,
// producing a shape at target on the same binning.
func (e *Engine) morph(lo, hi shape.Shape, target float64) (shape.Shape, error) {
	binning := lo.Binning()
	edges := binning.Edges()

	loContents := lo.Contents()
	hiContents := hi.Contents()

	// Two copies of the same distribution reproduce it for any weight.
	if sliceEqual(loContents, hiContents) {
		return shape.New(target, binning, loContents)
	}

	w := (target - lo.Mass()) / (hi.Mass() - lo.Mass())

	cdfLo := CDF(loContents)
	cdfHi := CDF(hiContents)

	// Blend the two quantile functions on the probability grid.
	quantiles := make([]float64, len(e.probs))
	for i, p := range e.probs {
		qLo := InvertCDF(cdfLo, edges, p)
		qHi := InvertCDF(cdfHi, edges, p)
		quantiles[i] = (1-w)*qLo + w*qHi
	}

	// Extrapolation weights outside [0,1] can locally invert the blend;
	// EvalCDF requires a non-decreasing quantile sequence.
	for i := 1; i < len(quantiles); i++ {
		if quantiles[i] < quantiles[i-1] {
			quantiles[i] = quantiles[i-1]
		}
	}

	// The p = 0 and p = 1 quantiles are pinned to the simulated supports
	// regardless of the weight; only the interior quantiles tell whether
	// the blend keeps any mass inside the binning.
	inside := 0
	for _, q := range quantiles[1 : len(quantiles)-1] {
		if q >= edges[0] && q <= edges[len(edges)-1] {
			inside++
		}
	}

	if interior := len(quantiles) - 2; float64(inside) < degenerateTolerance*float64(interior) {
		return shape.Shape{}, fmt.Errorf("%w: m = %g GeV", ErrDegenerateShape, target)
	}

	// Re-bin: evaluate the blended CDF at each bin edge and difference.
	contents := make([]float64, binning.NBins())
	prev := EvalCDF(quantiles, e.probs, edges[0])

	for i := range contents {
		next := EvalCDF(quantiles, e.probs, edges[i+1])

		if d := next - prev; d > 0 {
			contents[i] = d
		}

		prev = next
	}

	total := vecmath.Sum(contents)
	if total <= 0 {
		return shape.Shape{}, fmt.Errorf("%w: m = %g GeV", ErrDegenerateShape, target)
	}

	vecmath.ScaleBlockInPlace(contents, 1/total)

	return shape.New(target, binning, contents)
}

func sliceEqual(a, b []float64) bool {
	if len(a) != len(b) {
		return false
	}

	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}

	return true
}
