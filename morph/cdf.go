package morph

import "sort"

// CDF returns the cumulative distribution of bin contents evaluated at
// each bin edge: len(contents)+1 non-decreasing values starting at 0.
func CDF(contents []float64) []float64 {
	out := make([]float64, len(contents)+1)
	for i, v := range contents {
		out[i+1] = out[i] + v
	}

	return out
}

// InvertCDF returns the quantile for probability p of a piecewise-linear
// CDF tabulated at the given edges: the lowest position x with
// cdf(x) >= p. Flat runs in the CDF (zero-content bins) therefore map to
// their left end, which keeps the inverse well defined.
//
// cdf and edges must have equal length, cdf non-decreasing.
func InvertCDF(cdf, edges []float64, p float64) float64 {
	n := len(cdf)

	if p <= cdf[0] {
		return edges[0]
	}

	if p > cdf[n-1] {
		p = cdf[n-1]
	}

	// Lowest index with cdf[idx] >= p; a run of equal values yields its
	// first element, the leftmost inverse.
	idx := sort.SearchFloat64s(cdf, p)
	if cdf[idx] == p {
		return edges[idx]
	}

	t := (p - cdf[idx-1]) / (cdf[idx] - cdf[idx-1])

	return edges[idx-1] + t*(edges[idx]-edges[idx-1])
}

// EvalCDF evaluates the inverse of a tabulated quantile function: the
// cumulative probability at position x, given quantile positions for the
// probabilities in probs. A vertical run in the quantile sequence (point
// mass) is counted entirely once x reaches it.
//
// quantiles and probs must have equal length and be non-decreasing.
func EvalCDF(quantiles, probs []float64, x float64) float64 {
	n := len(quantiles)

	if x < quantiles[0] {
		return probs[0]
	}

	if x >= quantiles[n-1] {
		return probs[n-1]
	}

	// Largest index with quantiles[idx] <= x.
	idx := sort.Search(n, func(i int) bool { return quantiles[i] > x }) - 1

	t := (x - quantiles[idx]) / (quantiles[idx+1] - quantiles[idx])

	return probs[idx] + t*(probs[idx+1]-probs[idx])
}

// probabilityGrid returns steps+1 equally spaced values spanning [0, 1].
func probabilityGrid(steps int) []float64 {
	out := make([]float64, steps+1)
	for i := range out {
		out[i] = float64(i) / float64(steps)
	}
	out[steps] = 1

	return out
}
