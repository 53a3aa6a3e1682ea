package extract

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/dijetlab/resonance-shapes/morph"
)

func TestPerGeVSpread(t *testing.T) {
	pdf := perGeVSpread([]float64{0, 2, 5}, []float64{0.4, 0.6})
	require.Len(t, pdf, perGeVBins)

	// [0, 2) splits over two GeV bins, [2, 5) over three.
	require.Equal(t, 0.2, pdf[0])
	require.Equal(t, 0.2, pdf[1])
	require.Equal(t, 0.2, pdf[2])
	require.Equal(t, 0.2, pdf[4])
	require.Equal(t, 0.0, pdf[5])

	var sum float64
	for _, v := range pdf {
		sum += v
	}

	require.InDelta(t, 1, sum, 1e-12)
}

func TestResultTableStoredPDF(t *testing.T) {
	g := testGroup(t)
	eng := morph.NewEngine()

	res, err := eng.Interpolate(g, 1500)
	require.NoError(t, err)

	table := NewResultTable("RSGravitonToQQbar", []morph.Result{res}, WithStoredPDF())
	require.Len(t, table.Shapes, 1)
	require.Empty(t, table.Shapes[0].CDF)
	require.Len(t, table.Shapes[0].PDF, perGeVBins)

	// The spread conserves each coarse bin's content.
	var sum float64
	for _, v := range table.Shapes[0].PDF[:500] {
		sum += v
	}

	require.InDelta(t, table.Shapes[0].Contents[0], sum, 1e-9)
}
