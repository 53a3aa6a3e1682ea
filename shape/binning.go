package shape

import (
	"fmt"
	"math"
	"sort"
)

// Binning is an ordered set of N+1 strictly increasing bin edges defining
// N bins. It is shared identically across all shapes in one group.
type Binning struct {
	edges []float64
}

// NewBinning validates edges and returns a Binning. Edges must contain at
// least two strictly increasing, finite values.
func NewBinning(edges []float64) (Binning, error) {
	if len(edges) < 2 {
		return Binning{}, fmt.Errorf("%w: need at least 2 bin edges, got %d", ErrMalformedInput, len(edges))
	}

	for i, e := range edges {
		if math.IsNaN(e) || math.IsInf(e, 0) {
			return Binning{}, fmt.Errorf("%w: non-finite bin edge at index %d", ErrMalformedInput, i)
		}

		if i > 0 && e <= edges[i-1] {
			return Binning{}, fmt.Errorf("%w: bin edges not strictly increasing at index %d", ErrMalformedInput, i)
		}
	}

	out := make([]float64, len(edges))
	copy(out, edges)

	return Binning{edges: out}, nil
}

// UniformBinning returns n equal-width bins spanning [lo, hi].
func UniformBinning(n int, lo, hi float64) (Binning, error) {
	if n < 1 || hi <= lo {
		return Binning{}, fmt.Errorf("%w: invalid uniform binning (%d bins over [%g, %g])", ErrMalformedInput, n, lo, hi)
	}

	edges := make([]float64, n+1)
	width := (hi - lo) / float64(n)

	for i := range edges {
		edges[i] = lo + float64(i)*width
	}
	edges[n] = hi

	return Binning{edges: edges}, nil
}

// standardDijetEdges is the standard dijet mass binning in GeV, with bin
// widths tracking the detector mass resolution.
var standardDijetEdges = []float64{
	1, 3, 6, 10, 16, 23, 31, 40, 50, 61, 74, 88, 103, 119, 137, 156, 176,
	197, 220, 244, 270, 296, 325, 354, 386, 419, 453, 489, 526, 565, 606,
	649, 693, 740, 788, 838, 890, 944, 1000, 1058, 1118, 1181, 1246, 1313,
	1383, 1455, 1530, 1607, 1687, 1770, 1856, 1945, 2037, 2132, 2231, 2332,
	2438, 2546, 2659, 2775, 2895, 3019, 3147, 3279, 3416, 3558, 3704, 3854,
	4010, 4171, 4337, 4509, 4686, 4869, 5058, 5253, 5455, 5663, 5877, 6099,
	6328, 6564, 6808, 7060, 7320, 7589, 7866, 8152, 8447, 8752, 9067, 9391,
	9726, 10072, 10430, 10798, 11179, 11571, 11977, 12395, 12827, 13272,
	13732, 14000,
}

// StandardDijetBinning returns the standard dijet mass binning used for
// resonance searches (103 bins from 1 GeV to 14 TeV).
func StandardDijetBinning() Binning {
	edges := make([]float64, len(standardDijetEdges))
	copy(edges, standardDijetEdges)

	return Binning{edges: edges}
}

// NBins returns the number of bins.
func (b Binning) NBins() int {
	if len(b.edges) == 0 {
		return 0
	}

	return len(b.edges) - 1
}

// Edges returns a copy of the bin edges.
func (b Binning) Edges() []float64 {
	out := make([]float64, len(b.edges))
	copy(out, b.edges)

	return out
}

// Edge returns the i-th bin edge.
func (b Binning) Edge(i int) float64 { return b.edges[i] }

// Min returns the lowest edge.
func (b Binning) Min() float64 { return b.edges[0] }

// Max returns the highest edge.
func (b Binning) Max() float64 { return b.edges[len(b.edges)-1] }

// Centers returns the bin centers.
func (b Binning) Centers() []float64 {
	out := make([]float64, b.NBins())
	for i := range out {
		out[i] = 0.5 * (b.edges[i] + b.edges[i+1])
	}

	return out
}

// Widths returns the bin widths.
func (b Binning) Widths() []float64 {
	out := make([]float64, b.NBins())
	for i := range out {
		out[i] = b.edges[i+1] - b.edges[i]
	}

	return out
}

// FindBin returns the index of the bin containing x, or -1 if x lies
// outside the binning. The upper edge of the last bin is inclusive.
func (b Binning) FindBin(x float64) int {
	n := len(b.edges)
	if n < 2 || x < b.edges[0] || x > b.edges[n-1] {
		return -1
	}

	if x == b.edges[n-1] {
		return n - 2
	}

	// First edge strictly above x; x belongs to the bin below it.
	idx := sort.SearchFloat64s(b.edges, x)
	if idx < n && b.edges[idx] == x {
		return idx
	}

	return idx - 1
}

// Equal reports whether two binnings have the same edges within an
// absolute tolerance tol per edge.
func (b Binning) Equal(other Binning, tol float64) bool {
	if len(b.edges) != len(other.edges) {
		return false
	}

	for i := range b.edges {
		if math.Abs(b.edges[i]-other.edges[i]) > tol {
			return false
		}
	}

	return true
}
