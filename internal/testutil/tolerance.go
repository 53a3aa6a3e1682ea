package testutil

import (
	"math"
	"testing"
)

// RequireSliceNearlyEqual fails t if got and want differ in length or if
// any element pair exceeds eps (absolute tolerance).
func RequireSliceNearlyEqual(t *testing.T, got, want []float64, eps float64) {
	t.Helper()
	if len(got) != len(want) {
		t.Fatalf("length mismatch: got %d, want %d", len(got), len(want))
	}
	for i := range got {
		diff := math.Abs(got[i] - want[i])
		if diff > eps {
			t.Fatalf("index %d: got %v, want %v (diff %v > eps %v)", i, got[i], want[i], diff, eps)
		}
	}
}

// RequireFinite fails t if any element is NaN or Inf.
func RequireFinite(t *testing.T, data []float64) {
	t.Helper()
	for i, v := range data {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			t.Fatalf("index %d: non-finite value %v", i, v)
		}
	}
}

// RequireUnitSum fails t if the elements do not sum to 1 within eps.
func RequireUnitSum(t *testing.T, data []float64, eps float64) {
	t.Helper()
	sum := 0.0
	for _, v := range data {
		sum += v
	}
	if math.Abs(sum-1) > eps {
		t.Fatalf("sum %v deviates from 1 by more than %v", sum, eps)
	}
}

// RequireNonDecreasing fails t at the first element below its
// predecessor.
func RequireNonDecreasing(t *testing.T, data []float64) {
	t.Helper()
	for i := 1; i < len(data); i++ {
		if data[i] < data[i-1] {
			t.Fatalf("index %d: %v < %v, sequence decreases", i, data[i], data[i-1])
		}
	}
}
