package shape

import (
	"fmt"
	"math"
	"sort"
)

// binningTolerance is the accepted per-edge deviation when comparing a
// new shape's binning against the group's established binning.
const binningTolerance = 1e-9

// Group is the full set of simulated shapes for one physics
// process/category, keyed by resonance mass. The binning is fixed at
// construction and every added shape must carry it.
type Group struct {
	binning   Binning
	overwrite bool
	masses    []float64
	shapes    map[float64]Shape
}

// GroupOption mutates group construction behavior.
type GroupOption func(*Group)

// WithOverwrite allows a later Add at an existing mass to replace the
// stored shape instead of failing.
func WithOverwrite() GroupOption {
	return func(g *Group) { g.overwrite = true }
}

// NewGroup creates an empty group on the given binning.
func NewGroup(binning Binning, opts ...GroupOption) *Group {
	g := &Group{
		binning: binning,
		shapes:  make(map[float64]Shape),
	}

	for _, opt := range opts {
		if opt != nil {
			opt(g)
		}
	}

	return g
}

// Add stores a shape under its mass. Adding a shape whose binning
// disagrees with the group's fails with ErrInconsistentBinning. Adding a
// second shape at an existing mass fails with ErrDuplicateMass unless the
// contents are identical or the group was built with WithOverwrite.
func (g *Group) Add(s Shape) error {
	if !s.binning.Equal(g.binning, binningTolerance) {
		return fmt.Errorf("%w: shape for m = %g GeV", ErrInconsistentBinning, s.mass)
	}

	if prev, ok := g.shapes[s.mass]; ok {
		if sameContents(prev.contents, s.contents) {
			return nil
		}

		if !g.overwrite {
			return fmt.Errorf("%w: m = %g GeV", ErrDuplicateMass, s.mass)
		}

		g.shapes[s.mass] = s

		return nil
	}

	g.shapes[s.mass] = s

	idx := sort.SearchFloat64s(g.masses, s.mass)
	g.masses = append(g.masses, 0)
	copy(g.masses[idx+1:], g.masses[idx:])
	g.masses[idx] = s.mass

	return nil
}

func sameContents(a, b []float64) bool {
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

// Binning returns the group's binning.
func (g *Group) Binning() Binning { return g.binning }

// Len returns the number of stored mass points.
func (g *Group) Len() int { return len(g.masses) }

// Masses returns the stored mass values in strictly increasing order.
func (g *Group) Masses() []float64 {
	out := make([]float64, len(g.masses))
	copy(out, g.masses)

	return out
}

// Shape returns the shape stored at exactly the given mass.
func (g *Group) Shape(mass float64) (Shape, bool) {
	s, ok := g.shapes[mass]

	return s, ok
}

// MinMass returns the lowest stored mass. The group must be non-empty.
func (g *Group) MinMass() float64 { return g.masses[0] }

// MaxMass returns the highest stored mass. The group must be non-empty.
func (g *Group) MaxMass() float64 { return g.masses[len(g.masses)-1] }

// Nearest returns the stored shape whose mass is closest to target.
// The group must be non-empty.
func (g *Group) Nearest(target float64) Shape {
	best := g.masses[0]
	for _, m := range g.masses[1:] {
		if math.Abs(m-target) < math.Abs(best-target) {
			best = m
		}
	}

	return g.shapes[best]
}

// Bracket returns the two stored shapes used to synthesize a shape at
// target: the nearest neighbors below and above for an in-range target,
// or the two nearest-edge mass points when target lies outside the
// simulated range. The group must hold at least two shapes.
func (g *Group) Bracket(target float64) (lo, hi Shape) {
	n := len(g.masses)

	switch {
	case target <= g.masses[0]:
		return g.shapes[g.masses[0]], g.shapes[g.masses[1]]
	case target >= g.masses[n-1]:
		return g.shapes[g.masses[n-2]], g.shapes[g.masses[n-1]]
	}

	// First stored mass >= target.
	idx := sort.SearchFloat64s(g.masses, target)

	return g.shapes[g.masses[idx-1]], g.shapes[g.masses[idx]]
}
