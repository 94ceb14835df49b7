package commands_test

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/josebatistam/Astroinformatics-II/cmd/abell/commands"
	"github.com/josebatistam/Astroinformatics-II/internal/app"
	"github.com/josebatistam/Astroinformatics-II/internal/build"
	"github.com/josebatistam/Astroinformatics-II/internal/core/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type mockApp struct {
	prepareFunc func(ctx context.Context, opts app.PrepareOptions) error
	plotFunc    func(ctx context.Context, opts app.PlotOptions) error
	cleanFunc   func(ctx context.Context, opts app.CleanOptions) error
	distFunc    func(ctx context.Context, opts app.DistanceOptions) error
	jsonLogs    bool
}

func (m *mockApp) Prepare(ctx context.Context, opts app.PrepareOptions) error {
	if m.prepareFunc != nil {
		return m.prepareFunc(ctx, opts)
	}
	return nil
}

func (m *mockApp) Plot(ctx context.Context, opts app.PlotOptions) error {
	if m.plotFunc != nil {
		return m.plotFunc(ctx, opts)
	}
	return nil
}

func (m *mockApp) Clean(ctx context.Context, opts app.CleanOptions) error {
	if m.cleanFunc != nil {
		return m.cleanFunc(ctx, opts)
	}
	return nil
}

func (m *mockApp) Distances(ctx context.Context, opts app.DistanceOptions) error {
	if m.distFunc != nil {
		return m.distFunc(ctx, opts)
	}
	return nil
}

func (m *mockApp) SetJSONLogs(enable bool) {
	m.jsonLogs = enable
}

func TestCommands_Prepare(t *testing.T) {
	t.Run("wires flags correctly", func(t *testing.T) {
		var captured app.PrepareOptions
		called := false

		mock := &mockApp{
			prepareFunc: func(_ context.Context, opts app.PrepareOptions) error {
				captured = opts
				called = true
				return nil
			},
		}

		cli := commands.New(mock)
		cli.SetArgs([]string{
			"prepare", "--rebuild",
			"--catalog", "data/custom.dat",
			"--cache", "tmp/custom.bundle",
			"-c", "other.yaml",
			"--timings",
		})

		require.NoError(t, cli.Execute(context.Background()))
		assert.True(t, called)
		assert.True(t, captured.Rebuild)
		assert.Equal(t, app.Settings{
			ConfigPath:  "other.yaml",
			CatalogPath: "data/custom.dat",
			CachePath:   "tmp/custom.bundle",
			Timings:     true,
		}, captured.Settings)
		assert.False(t, mock.jsonLogs)
	})

	t.Run("defaults", func(t *testing.T) {
		var captured app.PrepareOptions
		mock := &mockApp{
			prepareFunc: func(_ context.Context, opts app.PrepareOptions) error {
				captured = opts
				return nil
			},
		}

		cli := commands.New(mock)
		cli.SetArgs([]string{"prepare"})

		require.NoError(t, cli.Execute(context.Background()))
		assert.False(t, captured.Rebuild)
		assert.Equal(t, app.Settings{ConfigPath: domain.ConfigFileName}, captured.Settings)
	})

	t.Run("returns error on failure", func(t *testing.T) {
		mock := &mockApp{
			prepareFunc: func(_ context.Context, _ app.PrepareOptions) error {
				return errors.New("simulated error")
			},
		}

		cli := commands.New(mock)
		cli.SetArgs([]string{"prepare"})
		cli.SetOutput(new(bytes.Buffer), new(bytes.Buffer))

		err := cli.Execute(context.Background())
		require.Error(t, err)
		assert.Contains(t, err.Error(), "simulated error")
	})

	t.Run("rejects arguments", func(t *testing.T) {
		cli := commands.New(&mockApp{})
		cli.SetArgs([]string{"prepare", "extra"})
		cli.SetOutput(new(bytes.Buffer), new(bytes.Buffer))

		require.Error(t, cli.Execute(context.Background()))
	})
}

func TestCommands_Plot(t *testing.T) {
	var captured app.PlotOptions
	mock := &mockApp{
		plotFunc: func(_ context.Context, opts app.PlotOptions) error {
			captured = opts
			return nil
		},
	}

	cli := commands.New(mock)
	cli.SetArgs([]string{"plot", "--format", "summary", "-o", "figures", "--json"})

	require.NoError(t, cli.Execute(context.Background()))
	assert.Equal(t, domain.FormatSummary, captured.Format)
	assert.Equal(t, "figures", captured.OutDir)
	assert.True(t, mock.jsonLogs)
}

func TestCommands_Clean(t *testing.T) {
	var captured app.CleanOptions
	mock := &mockApp{
		cleanFunc: func(_ context.Context, opts app.CleanOptions) error {
			captured = opts
			return nil
		},
	}

	cli := commands.New(mock)
	cli.SetArgs([]string{"clean", "--cache", "x.bundle"})

	require.NoError(t, cli.Execute(context.Background()))
	assert.Equal(t, "x.bundle", captured.CachePath)
}

func TestCommands_Lumdist(t *testing.T) {
	t.Run("defaults to the concordance model", func(t *testing.T) {
		var captured app.DistanceOptions
		mock := &mockApp{
			distFunc: func(_ context.Context, opts app.DistanceOptions) error {
				captured = opts
				return nil
			},
		}

		out := new(bytes.Buffer)
		cli := commands.New(mock)
		cli.SetOutput(out, new(bytes.Buffer))
		cli.SetArgs([]string{"lumdist", "redshifts.txt", "--timings"})

		require.NoError(t, cli.Execute(context.Background()))
		assert.Equal(t, "redshifts.txt", captured.Input)
		assert.Equal(t, domain.DefaultCosmology, captured.Cosmology)
		assert.Same(t, out, captured.Out)
		assert.True(t, captured.Timings)
	})

	t.Run("cosmology flags", func(t *testing.T) {
		var captured app.DistanceOptions
		mock := &mockApp{
			distFunc: func(_ context.Context, opts app.DistanceOptions) error {
				captured = opts
				return nil
			},
		}

		cli := commands.New(mock)
		cli.SetArgs([]string{"lumdist", "z.txt", "--h0", "67.4", "--omega-m", "0.315", "--omega-lambda", "0.685"})

		require.NoError(t, cli.Execute(context.Background()))
		assert.Equal(t, domain.Cosmology{H0: 67.4, OmegaM: 0.315, OmegaV: 0.685}, captured.Cosmology)
	})

	t.Run("requires the table argument", func(t *testing.T) {
		cli := commands.New(&mockApp{})
		cli.SetArgs([]string{"lumdist"})
		cli.SetOutput(new(bytes.Buffer), new(bytes.Buffer))

		require.Error(t, cli.Execute(context.Background()))
	})
}

func TestCommands_Version(t *testing.T) {
	cli := commands.New(&mockApp{})

	buf := new(bytes.Buffer)
	cli.SetOutput(buf, buf)
	cli.SetArgs([]string{"version"})

	require.NoError(t, cli.Execute(context.Background()))
	assert.Contains(t, buf.String(), "abell version "+build.Version)
}
