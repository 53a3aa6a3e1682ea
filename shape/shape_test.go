package shape

import (
	"errors"
	"math"
	"testing"

	"github.com/dijetlab/resonance-shapes/internal/testutil"
)

func mustBinning(t *testing.T, edges []float64) Binning {
	t.Helper()

	b, err := NewBinning(edges)
	if err != nil {
		t.Fatal(err)
	}

	return b
}

func TestNormalizeRescales(t *testing.T) {
	b := mustBinning(t, []float64{0, 1, 2, 3, 4})

	s, err := Normalize(1000, b, []float64{1, 3, 4, 2})
	if err != nil {
		t.Fatal(err)
	}

	testutil.RequireSliceNearlyEqual(t, s.Contents(), []float64{0.1, 0.3, 0.4, 0.2}, 1e-12)
	testutil.RequireUnitSum(t, s.Contents(), 1e-12)

	if s.Mass() != 1000 {
		t.Fatalf("mass = %v, want 1000", s.Mass())
	}
}

func TestNormalizeClampsNegativeAndNaN(t *testing.T) {
	b := mustBinning(t, []float64{0, 1, 2, 3, 4})

	s, err := Normalize(1000, b, []float64{-5, math.NaN(), 1, 3})
	if err != nil {
		t.Fatal(err)
	}

	testutil.RequireSliceNearlyEqual(t, s.Contents(), []float64{0, 0, 0.25, 0.75}, 1e-12)
}

func TestNormalizeRejectsBadInput(t *testing.T) {
	b := mustBinning(t, []float64{0, 1, 2})

	for _, tc := range []struct {
		name string
		raw  []float64
	}{
		{name: "zero integral", raw: []float64{0, 0}},
		{name: "all clamped", raw: []float64{-1, math.NaN()}},
		{name: "length mismatch", raw: []float64{1, 2, 3}},
		{name: "infinite content", raw: []float64{1, math.Inf(1)}},
	} {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Normalize(1000, b, tc.raw)
			if !errors.Is(err, ErrMalformedInput) {
				t.Fatalf("got %v, want ErrMalformedInput", err)
			}
		})
	}
}

func TestNewRejectsUnnormalized(t *testing.T) {
	b := mustBinning(t, []float64{0, 1, 2})

	if _, err := New(1000, b, []float64{0.5, 0.6}); !errors.Is(err, ErrNotNormalized) {
		t.Fatalf("got %v, want ErrNotNormalized", err)
	}

	if _, err := New(1000, b, []float64{-0.5, 1.5}); !errors.Is(err, ErrMalformedInput) {
		t.Fatalf("negative content: got %v, want ErrMalformedInput", err)
	}
}

func TestShapeImmutable(t *testing.T) {
	b := mustBinning(t, []float64{0, 1, 2})
	contents := []float64{0.5, 0.5}

	s, err := New(1000, b, contents)
	if err != nil {
		t.Fatal(err)
	}

	contents[0] = 99
	if s.Content(0) != 0.5 {
		t.Fatalf("shape shares caller's slice: content(0) = %v", s.Content(0))
	}

	s.Contents()[1] = -1
	if s.Content(1) != 0.5 {
		t.Fatalf("Contents() exposes internal slice: content(1) = %v", s.Content(1))
	}
}

func TestShapeCDF(t *testing.T) {
	b := mustBinning(t, []float64{0, 1, 2, 3, 4})

	s, err := New(1000, b, []float64{0.1, 0.4, 0.3, 0.2})
	if err != nil {
		t.Fatal(err)
	}

	cdf := s.CDF()
	testutil.RequireSliceNearlyEqual(t, cdf, []float64{0, 0.1, 0.5, 0.8, 1}, 1e-12)
	testutil.RequireNonDecreasing(t, cdf)
}

func TestShapePeakBin(t *testing.T) {
	b := mustBinning(t, []float64{0, 1, 2, 3, 4})

	s, err := New(1000, b, []float64{0.1, 0.2, 0.6, 0.1})
	if err != nil {
		t.Fatal(err)
	}

	if got := s.PeakBin(); got != 2 {
		t.Fatalf("PeakBin = %d, want 2", got)
	}
}
