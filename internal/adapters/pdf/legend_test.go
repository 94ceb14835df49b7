package pdf

import (
	"testing"

	"github.com/josebatistam/Astroinformatics-II/internal/core/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/vg/draw"
	"gonum.org/v1/plot/vg/vgpdf"
)

func legendHeight(p *plot.Plot) float64 {
	c := draw.New(vgpdf.New(singleWidth, singleHeight))
	return float64(p.Legend.Rectangle(c).Size().Y)
}

func TestPanelLegend(t *testing.T) {
	axes := domain.Axes{Title: "X-Y", XLabel: "X (Mpc)", YLabel: "Y (Mpc)"}
	bright := domain.Series{Label: "Bright", Tone: domain.ToneBright, X: []float64{1, 2}, Y: []float64{3, 4}}
	faint := domain.Series{Label: "Faint", Tone: domain.ToneFaint, X: []float64{5}, Y: []float64{6}}

	single, err := panelPlot(axes, false, bright)
	require.NoError(t, err)
	assert.Zero(t, legendHeight(single))

	one, err := panelPlot(axes, true, bright)
	require.NoError(t, err)
	assert.Positive(t, legendHeight(one))

	both, err := panelPlot(axes, true, bright, faint)
	require.NoError(t, err)
	assert.Greater(t, legendHeight(both), legendHeight(one))

	unlabelled, err := panelPlot(axes, true, domain.Series{X: []float64{1}, Y: []float64{1}})
	require.NoError(t, err)
	assert.Zero(t, legendHeight(unlabelled))
}

func TestSkyPlotHasNoLegend(t *testing.T) {
	p, err := skyPlot(domain.Axes{}, domain.Series{Label: "Clusters", X: []float64{0.5}, Y: []float64{0.2}})
	require.NoError(t, err)
	assert.Zero(t, legendHeight(p))
}
