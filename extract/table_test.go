package extract

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/dijetlab/resonance-shapes/morph"
	"github.com/dijetlab/resonance-shapes/shape"
)

func testGroup(t *testing.T) *shape.Group {
	t.Helper()

	binning, err := shape.NewBinning([]float64{0, 500, 1000, 1500, 2000})
	require.NoError(t, err)

	g := shape.NewGroup(binning)

	for _, tc := range []struct {
		mass     float64
		contents []float64
	}{
		{mass: 2000, contents: []float64{0.1, 0.2, 0.3, 0.4}},
		{mass: 1000, contents: []float64{0.4, 0.3, 0.2, 0.1}},
	} {
		s, err := shape.New(tc.mass, binning, tc.contents)
		require.NoError(t, err)
		require.NoError(t, g.Add(s))
	}

	return g
}

func TestTableRoundTrip(t *testing.T) {
	g := testGroup(t)
	table := FromGroup("RSGToQQ_kMpl01", g)

	require.Equal(t, "RSGToQQ_kMpl01", table.Group)
	require.Equal(t, "qq", table.Model)
	require.Len(t, table.Points, 2)

	// Points are mass-ordered regardless of insertion order.
	require.Equal(t, 1000.0, table.Points[0].Mass)
	require.Equal(t, 2000.0, table.Points[1].Mass)

	var buf bytes.Buffer
	require.NoError(t, table.WriteTo(&buf))

	read, err := ReadTable(&buf)
	require.NoError(t, err)
	require.Equal(t, table.Group, read.Group)
	require.Equal(t, table.Edges, read.Edges)
	require.Equal(t, table.Points, read.Points)

	back, err := read.ToGroup()
	require.NoError(t, err)
	require.Equal(t, g.Masses(), back.Masses())

	orig, _ := g.Shape(1000)
	loaded, ok := back.Shape(1000)
	require.True(t, ok)
	require.Equal(t, orig.Contents(), loaded.Contents())
}

func TestToGroupRejectsMalformedTable(t *testing.T) {
	table := &Table{
		Group: "X",
		Edges: []float64{0, 1},
		Points: []Point{
			{Mass: 1000, Contents: []float64{0.5, 0.5}},
		},
	}

	// Edge count no longer matches the contents.
	_, err := table.ToGroup()
	require.ErrorIs(t, err, shape.ErrMalformedInput)

	table = &Table{
		Group:  "X",
		Edges:  []float64{0, 1, 1},
		Points: nil,
	}

	_, err = table.ToGroup()
	require.ErrorIs(t, err, shape.ErrMalformedInput)

	table = &Table{
		Group: "X",
		Edges: []float64{0, 1, 2},
		Points: []Point{
			{Mass: 1000, Contents: []float64{0.9, 0.9}},
		},
	}

	_, err = table.ToGroup()
	require.ErrorIs(t, err, shape.ErrNotNormalized)
}

func TestReadRawShape(t *testing.T) {
	raw, err := ReadRawShape(bytes.NewReader([]byte("mass: 1000\ncontents: [1, 2, 3]\n")))
	require.NoError(t, err)
	require.Equal(t, 1000.0, raw.Mass)
	require.Equal(t, []float64{1, 2, 3}, raw.Contents)
	require.Empty(t, raw.Edges)
}

func TestResultTable(t *testing.T) {
	g := testGroup(t)
	eng := morph.NewEngine()

	var results []morph.Result

	for _, m := range []float64{1000.0, 1500.0, 2000.0} {
		res, err := eng.Interpolate(g, m)
		require.NoError(t, err)

		results = append(results, res)
	}

	table := NewResultTable("QstarToJJ", results)
	require.Equal(t, "qg", table.Model)
	require.Len(t, table.Shapes, 3)
	require.Equal(t, "exact", table.Shapes[0].Provenance)
	require.Equal(t, "interpolated", table.Shapes[1].Provenance)
	require.Empty(t, table.Shapes[0].CDF)

	var buf bytes.Buffer
	require.NoError(t, table.WriteTo(&buf))
	require.Contains(t, buf.String(), "provenance: interpolated")

	// With the stored-CDF option every record carries its cumulative
	// distribution.
	withCDF := NewResultTable("QstarToJJ", results, WithStoredCDF())
	require.Len(t, withCDF.Shapes[0].CDF, 5)
	require.InDelta(t, 1, withCDF.Shapes[0].CDF[4], 1e-9)
}
