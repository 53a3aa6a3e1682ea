package extract

import (
	"fmt"
	"io"
	"math"

	"gopkg.in/yaml.v3"

	"github.com/dijetlab/resonance-shapes/morph"
)

// perGeVBins is the size of the 1-GeV grid the stored PDF is spread on,
// covering the full dijet mass range [0, 14 TeV).
const perGeVBins = 14000

// ResultRecord is one interpolated shape in an output table.
type ResultRecord struct {
	Mass       float64   `yaml:"mass"`
	Provenance string    `yaml:"provenance"`
	Contents   []float64 `yaml:"contents,flow"`
	CDF        []float64 `yaml:"cdf,flow,omitempty"`
	PDF        []float64 `yaml:"pdf,flow,omitempty"`
}

// ResultTable is the serialized output of one grid run.
type ResultTable struct {
	Group  string         `yaml:"group,omitempty"`
	Model  string         `yaml:"model,omitempty"`
	Edges  []float64      `yaml:"edges,flow"`
	Shapes []ResultRecord `yaml:"shapes"`
}

// ResultOption mutates result-table construction.
type ResultOption func(*resultConfig)

type resultConfig struct {
	storeCDF bool
	storePDF bool
}

// WithStoredCDF additionally stores each shape's cumulative distribution
// alongside its bin contents.
func WithStoredCDF() ResultOption {
	return func(cfg *resultConfig) { cfg.storeCDF = true }
}

// WithStoredPDF additionally stores each shape as a 1-GeV-binned density,
// spreading every coarse bin's content uniformly over the GeV bins it
// covers.
func WithStoredPDF() ResultOption {
	return func(cfg *resultConfig) { cfg.storePDF = true }
}

// NewResultTable builds an output table from a grid run's results.
// Results are assumed mass-ordered, as the scheduler returns them.
func NewResultTable(group string, results []morph.Result, opts ...ResultOption) *ResultTable {
	var cfg resultConfig

	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}

	t := &ResultTable{
		Group: group,
		Model: ModelFromGroup(group),
	}

	for _, res := range results {
		if t.Edges == nil {
			t.Edges = res.Shape.Binning().Edges()
		}

		rec := ResultRecord{
			Mass:       res.Mass,
			Provenance: res.Provenance.String(),
			Contents:   res.Shape.Contents(),
		}
		if cfg.storeCDF {
			rec.CDF = res.Shape.CDF()
		}
		if cfg.storePDF {
			rec.PDF = perGeVSpread(res.Shape.Binning().Edges(), rec.Contents)
		}

		t.Shapes = append(t.Shapes, rec)
	}

	return t
}

// perGeVSpread flattens a coarse-binned shape onto the 1-GeV grid. Each
// coarse bin's content is divided evenly among the whole GeV bins inside
// it, so the result integrates to the same total.
func perGeVSpread(edges, contents []float64) []float64 {
	pdf := make([]float64, perGeVBins)

	for i, c := range contents {
		first := int(math.Floor(edges[i] + 0.5))
		last := int(math.Floor(edges[i+1] - 0.5))

		if first < 0 {
			first = 0
		}
		if last >= len(pdf) {
			last = len(pdf) - 1
		}
		if last < first {
			last = first
		}

		val := c / float64(last-first+1)
		for j := first; j <= last && j < len(pdf); j++ {
			pdf[j] = val
		}
	}

	return pdf
}

// WriteTo writes the result table as YAML.
func (t *ResultTable) WriteTo(w io.Writer) error {
	enc := yaml.NewEncoder(w)
	defer enc.Close()

	if err := enc.Encode(t); err != nil {
		return fmt.Errorf("extract: writing results %q: %w", t.Group, err)
	}

	return nil
}
