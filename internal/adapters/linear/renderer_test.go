package linear_test

import (
	"bytes"
	"context"
	"errors"
	"slices"
	"sync"
	"testing"

	"github.com/josebatistam/Astroinformatics-II/internal/adapters/linear"
	"github.com/josebatistam/Astroinformatics-II/internal/core/domain"
	"github.com/josebatistam/Astroinformatics-II/internal/engine/plan"
	"github.com/sebdah/goldie/v2"
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

func TestRenderer_Summary(t *testing.T) {
	t.Setenv("NO_COLOR", "1")

	var buf bytes.Buffer
	r := linear.NewRenderer(&buf)

	reqs := plan.Build(fixture(), "plots")
	slices.Reverse(reqs)
	for _, req := range reqs {
		require.NoError(t, r.Render(context.Background(), req))
	}
	assert.Empty(t, buf.String(), "nothing is written before Flush")

	require.NoError(t, r.Flush())

	g := goldie.New(t)
	g.Assert(t, "summary", buf.Bytes())
}

func TestRenderer_ConcurrentRenderIsOrdered(t *testing.T) {
	t.Setenv("NO_COLOR", "1")

	var sequential, concurrent bytes.Buffer
	reqs := plan.Build(fixture(), "plots")

	seq := linear.NewRenderer(&sequential)
	for _, req := range reqs {
		require.NoError(t, seq.Render(context.Background(), req))
	}
	require.NoError(t, seq.Flush())

	con := linear.NewRenderer(&concurrent)
	var wg sync.WaitGroup
	for _, req := range reqs {
		wg.Go(func() {
			assert.NoError(t, con.Render(context.Background(), req))
		})
	}
	wg.Wait()
	require.NoError(t, con.Flush())

	assert.Equal(t, sequential.String(), concurrent.String())
}

func TestRenderer_FlushClearsBuffer(t *testing.T) {
	t.Setenv("NO_COLOR", "1")

	var buf bytes.Buffer
	r := linear.NewRenderer(&buf)

	require.NoError(t, r.Render(context.Background(), plan.Build(fixture(), "plots")[0]))
	require.NoError(t, r.Flush())
	first := buf.Len()
	require.NotZero(t, first)

	require.NoError(t, r.Flush())
	assert.Equal(t, first, buf.Len())
}

func TestRenderer_UnknownRequest(t *testing.T) {
	r := linear.NewRenderer(&bytes.Buffer{})

	err := r.Render(context.Background(), nil)
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrUnknownPlotKind))
}

func TestRenderer_CanceledContext(t *testing.T) {
	r := linear.NewRenderer(&bytes.Buffer{})
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := r.Render(ctx, plan.Build(fixture(), "plots")[0])
	assert.ErrorIs(t, err, context.Canceled)
}
