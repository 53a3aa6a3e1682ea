package extract

import (
	"fmt"
	"io"
	"sort"

	"gopkg.in/yaml.v3"

	"github.com/dijetlab/resonance-shapes/shape"
)

// Point is one (mass, contents) record of a lookup table.
type Point struct {
	Mass     float64   `yaml:"mass"`
	Contents []float64 `yaml:"contents,flow"`
}

// Table is the compact lookup table a shape group serializes to: the
// shared bin edges plus the mass-ordered normalized shapes.
type Table struct {
	Group  string    `yaml:"group,omitempty"`
	Model  string    `yaml:"model,omitempty"`
	Edges  []float64 `yaml:"edges,flow"`
	Points []Point   `yaml:"points"`
}

// FromGroup serializes a group into its lookup table, points sorted by
// mass.
func FromGroup(name string, g *shape.Group) *Table {
	t := &Table{
		Group: name,
		Model: ModelFromGroup(name),
		Edges: g.Binning().Edges(),
	}

	for _, m := range g.Masses() {
		s, _ := g.Shape(m)
		t.Points = append(t.Points, Point{Mass: m, Contents: s.Contents()})
	}

	return t
}

// ToGroup reconstructs a validated shape group from the table.
func (t *Table) ToGroup() (*shape.Group, error) {
	binning, err := shape.NewBinning(t.Edges)
	if err != nil {
		return nil, fmt.Errorf("extract: table %q: %w", t.Group, err)
	}

	// Tables are mass-ordered on disk, but tolerate hand-edited files.
	points := make([]Point, len(t.Points))
	copy(points, t.Points)
	sort.Slice(points, func(i, j int) bool { return points[i].Mass < points[j].Mass })

	g := shape.NewGroup(binning)

	for _, p := range points {
		s, err := shape.New(p.Mass, binning, p.Contents)
		if err != nil {
			return nil, fmt.Errorf("extract: table %q, m = %g GeV: %w", t.Group, p.Mass, err)
		}

		if err := g.Add(s); err != nil {
			return nil, fmt.Errorf("extract: table %q: %w", t.Group, err)
		}
	}

	return g, nil
}

// WriteTo writes the table as YAML.
func (t *Table) WriteTo(w io.Writer) error {
	enc := yaml.NewEncoder(w)
	defer enc.Close()

	if err := enc.Encode(t); err != nil {
		return fmt.Errorf("extract: writing table %q: %w", t.Group, err)
	}

	return nil
}

// ReadTable reads a YAML lookup table.
func ReadTable(r io.Reader) (*Table, error) {
	var t Table
	if err := yaml.NewDecoder(r).Decode(&t); err != nil {
		return nil, fmt.Errorf("extract: reading table: %w", err)
	}

	return &t, nil
}

// RawShape is an unnormalized simulated distribution as produced by the
// upstream histogramming step: arbitrary-scale contents, optionally with
// the bin edges they were filled on.
type RawShape struct {
	Mass     float64   `yaml:"mass"`
	Edges    []float64 `yaml:"edges,flow,omitempty"`
	Contents []float64 `yaml:"contents,flow"`
}

// ReadRawShape reads a YAML raw distribution file.
func ReadRawShape(r io.Reader) (*RawShape, error) {
	var raw RawShape
	if err := yaml.NewDecoder(r).Decode(&raw); err != nil {
		return nil, fmt.Errorf("extract: reading raw shape: %w", err)
	}

	return &raw, nil
}
