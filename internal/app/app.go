// Package app implements the application layer for abell.
package app

import (
	"context"
	"fmt"
	"runtime"

	"github.com/josebatistam/Astroinformatics-II/internal/core/domain"
	"github.com/josebatistam/Astroinformatics-II/internal/core/ports"
	"github.com/josebatistam/Astroinformatics-II/internal/engine/pipeline"
	"github.com/josebatistam/Astroinformatics-II/internal/engine/plan"
	"go.trai.ch/zerr"
	"golang.org/x/sync/errgroup"
)

// StageRender is the span name of the rendering stage.
const StageRender = "render"

// App represents the main application logic.
type App struct {
	configLoader  ports.ConfigLoader
	catalogLoader ports.CatalogLoader
	store         ports.BundleStore
	logger        ports.Logger
	tracer        ports.Tracer
	pipeline      *pipeline.Pipeline
	renderers     map[domain.Format]ports.Renderer
	jobs          int
}

// New creates a new App instance.
func New(
	configLoader ports.ConfigLoader,
	catalogLoader ports.CatalogLoader,
	store ports.BundleStore,
	log ports.Logger,
	tracer ports.Tracer,
	renderers map[domain.Format]ports.Renderer,
) *App {
	return &App{
		configLoader:  configLoader,
		catalogLoader: catalogLoader,
		store:         store,
		logger:        log,
		tracer:        tracer,
		pipeline:      pipeline.New(catalogLoader, store, tracer, log),
		renderers:     renderers,
		jobs:          runtime.NumCPU(),
	}
}

// WithJobs bounds the number of plots rendered concurrently. Values below one are ignored.
func (a *App) WithJobs(n int) *App {
	if n > 0 {
		a.jobs = n
	}
	return a
}

// SetJSONLogs switches the logger to JSON output when it supports it.
func (a *App) SetJSONLogs(enable bool) {
	if l, ok := a.logger.(interface{ SetJSON(bool) }); ok {
		l.SetJSON(enable)
	}
}

// Settings are the options shared by every command.
// Empty paths fall back to the configuration file, then to the defaults.
type Settings struct {
	ConfigPath  string
	CatalogPath string
	CachePath   string
	Timings     bool
}

// PrepareOptions configuration for the Prepare method.
type PrepareOptions struct {
	Settings
	Rebuild bool
}

// PlotOptions configuration for the Plot method.
type PlotOptions struct {
	Settings
	Format domain.Format
	OutDir string
}

// CleanOptions configuration for the Clean method.
type CleanOptions struct {
	Settings
}

// Prepare builds or restores the bundle and reports its statistics.
func (a *App) Prepare(ctx context.Context, opts PrepareOptions) error {
	cfg, err := a.resolve(opts.Settings)
	if err != nil {
		return err
	}
	defer a.reportTimings(opts.Timings)

	var (
		b      *domain.Bundle
		origin = pipeline.OriginCatalog
	)
	if opts.Rebuild {
		b, err = a.pipeline.Rebuild(ctx, cfg.CatalogPath, cfg.CachePath)
	} else {
		b, origin, err = a.pipeline.LoadOrBuild(ctx, cfg.CatalogPath, cfg.CachePath)
	}
	if err != nil {
		return err
	}

	st := b.Stats()
	a.logger.Info(fmt.Sprintf("prepared %d clusters from %s: %d with distance, %d bright, %d faint",
		st.Clusters, origin, st.WithDistance, st.Bright, st.Faint))
	return nil
}

// Plot prepares the bundle and renders every figure in the requested format.
func (a *App) Plot(ctx context.Context, opts PlotOptions) error {
	cfg, err := a.resolve(opts.Settings)
	if err != nil {
		return err
	}
	if opts.Format != "" {
		cfg.Format = opts.Format
	}
	if opts.OutDir != "" {
		cfg.OutputDir = opts.OutDir
	}

	renderer, ok := a.renderers[cfg.Format]
	if !ok {
		return zerr.With(zerr.Wrap(domain.ErrUnknownFormat, string(cfg.Format)), "format", string(cfg.Format))
	}
	defer a.reportTimings(opts.Timings)

	b, _, err := a.pipeline.LoadOrBuild(ctx, cfg.CatalogPath, cfg.CachePath)
	if err != nil {
		return err
	}

	reqs := plan.Build(b, cfg.OutputDir)
	if err := a.render(ctx, renderer, reqs); err != nil {
		return err
	}

	if cfg.Format == domain.FormatPDF {
		a.logger.Info(fmt.Sprintf("rendered %d plots to %s", len(reqs), cfg.OutputDir))
	}
	return nil
}

func (a *App) render(ctx context.Context, renderer ports.Renderer, reqs []domain.PlotRequest) error {
	ctx, span := a.tracer.Start(ctx, StageRender, ports.WithAttribute("abell.plots", len(reqs)))
	defer span.End()

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(a.jobs)
	for _, req := range reqs {
		g.Go(func() error {
			if err := renderer.Render(gctx, req); err != nil {
				return zerr.With(zerr.Wrap(err, "plot "+req.Name()), "plot", req.Name())
			}
			return nil
		})
	}

	err := g.Wait()
	if f, ok := renderer.(ports.Flusher); ok && err == nil {
		err = f.Flush()
	}
	if err != nil {
		span.RecordError(err)
		return err
	}
	return nil
}

// Clean removes the cache artifact.
func (a *App) Clean(_ context.Context, opts CleanOptions) error {
	cfg, err := a.resolve(opts.Settings)
	if err != nil {
		return err
	}

	if err := a.store.Remove(cfg.CachePath); err != nil {
		return err
	}
	a.logger.Info(fmt.Sprintf("removed %s", cfg.CachePath))
	return nil
}

// resolve loads the configuration file and applies the command line overrides.
func (a *App) resolve(s Settings) (*domain.Config, error) {
	path := s.ConfigPath
	if path == "" {
		path = domain.ConfigFileName
	}

	cfg, err := a.configLoader.Load(path)
	if err != nil {
		return nil, zerr.Wrap(err, "failed to load configuration")
	}

	if s.CatalogPath != "" {
		cfg.CatalogPath = s.CatalogPath
	}
	if s.CachePath != "" {
		cfg.CachePath = s.CachePath
	}
	return cfg, nil
}

func (a *App) reportTimings(enabled bool) {
	if !enabled {
		return
	}
	for _, t := range a.tracer.Timings() {
		a.logger.Stage(t)
	}
}
