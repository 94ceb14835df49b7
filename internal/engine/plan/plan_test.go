package plan_test

import (
	"path/filepath"
	"testing"

	"github.com/josebatistam/Astroinformatics-II/internal/core/domain"
	"github.com/josebatistam/Astroinformatics-II/internal/engine/plan"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fixture() *domain.Bundle {
	return &domain.Bundle{
		LonRad:             []float64{0.1, 0.2, 0.3, 0.4},
		LatRad:             []float64{-0.1, 0.0, 0.1, 0.2},
		HasDistance:        []bool{true, false, true, true},
		Richness:           []int8{0, 1, 2, 3},
		M10:                []float64{16.5, 15.0, 17.0, 18.1},
		LuminosityDistance: []float64{100, -99.0, 200, 300},
		X:                  []float64{1, 2, 3},
		Y:                  []float64{4, 5, 6},
		Z:                  []float64{7, 8, 9},
		Bright:             []bool{true, false, false},
		Faint:              []bool{false, true, true},
	}
}

func TestBuild_Order(t *testing.T) {
	reqs := plan.Build(fixture(), "plots")
	require.Len(t, reqs, 6)

	wantStems := []string{
		plan.StemAllSky, plan.StemAll, plan.StemBright, plan.StemFaint, plan.StemBoth, plan.StemRichness,
	}
	wantKinds := []domain.PlotKind{
		domain.KindSingle, domain.KindDual, domain.KindDual, domain.KindDual, domain.KindQuad, domain.KindSingle,
	}
	for i, req := range reqs {
		assert.Equal(t, wantStems[i], req.Name())
		assert.Equal(t, wantKinds[i], req.Kind())
		assert.Equal(t, filepath.Join("plots", wantStems[i]+".pdf"), req.Target())
		assert.NotEmpty(t, req.Heading())
	}
}

func TestBuild_AllSky(t *testing.T) {
	req, ok := plan.Build(fixture(), "out")[0].(domain.SingleSeries)
	require.True(t, ok)

	assert.Equal(t, domain.Hammer, req.Projection)
	assert.Equal(t, []float64{0.1, 0.2, 0.3, 0.4}, req.Panel.Series.X)
	assert.Equal(t, []float64{-0.1, 0.0, 0.1, 0.2}, req.Panel.Series.Y)
}

func TestBuild_Subsets(t *testing.T) {
	reqs := plan.Build(fixture(), "out")

	all := reqs[1].(domain.DualSeries)
	assert.Equal(t, []float64{1, 2, 3}, all.Left.Series.X)
	assert.Equal(t, []float64{4, 5, 6}, all.Left.Series.Y)
	assert.Equal(t, []float64{7, 8, 9}, all.Right.Series.Y)
	assert.Equal(t, "X-Y Projection", all.Left.Axes.Title)
	assert.Equal(t, "X-Z Projection", all.Right.Axes.Title)

	bright := reqs[2].(domain.DualSeries)
	assert.Equal(t, []float64{1}, bright.Left.Series.X)
	assert.Equal(t, []float64{4}, bright.Left.Series.Y)
	assert.Equal(t, []float64{7}, bright.Right.Series.Y)
	assert.Equal(t, domain.ToneBright, bright.Left.Series.Tone)

	faint := reqs[3].(domain.DualSeries)
	assert.Equal(t, []float64{2, 3}, faint.Left.Series.X)
	assert.Equal(t, []float64{5, 6}, faint.Left.Series.Y)
	assert.Equal(t, []float64{8, 9}, faint.Right.Series.Y)
	assert.Equal(t, domain.ToneFaint, faint.Right.Series.Tone)
}

func TestBuild_Overlay(t *testing.T) {
	both := plan.Build(fixture(), "out")[4].(domain.QuadSeries)

	assert.Equal(t, plan.LabelBright, both.Left.Primary.Label)
	assert.Equal(t, plan.LabelFaint, both.Left.Secondary.Label)
	assert.Equal(t, []float64{4}, both.Left.Primary.Y)
	assert.Equal(t, []float64{5, 6}, both.Left.Secondary.Y)
	assert.Equal(t, []float64{7}, both.Right.Primary.Y)
	assert.Equal(t, []float64{8, 9}, both.Right.Secondary.Y)
}

func TestBuild_RichnessDistance(t *testing.T) {
	req := plan.Build(fixture(), "out")[5].(domain.SingleSeries)

	assert.Equal(t, domain.Rectangular, req.Projection)
	assert.Equal(t, []float64{100, 200, 300}, req.Panel.Series.X)
	assert.Equal(t, []float64{0, 2, 3}, req.Panel.Series.Y)
}

func TestBuild_EmptyBundle(t *testing.T) {
	reqs := plan.Build(&domain.Bundle{}, "out")
	require.Len(t, reqs, 6)

	for _, req := range reqs {
		switch r := req.(type) {
		case domain.SingleSeries:
			assert.Zero(t, r.Panel.Series.Len())
		case domain.DualSeries:
			assert.Zero(t, r.Left.Series.Len())
			assert.Zero(t, r.Right.Series.Len())
		case domain.QuadSeries:
			assert.Zero(t, r.Left.Primary.Len())
			assert.Zero(t, r.Right.Secondary.Len())
		}
	}
}
