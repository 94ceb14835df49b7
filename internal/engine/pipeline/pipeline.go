// Package pipeline prepares the derived bundle from the catalog, going through the
// on-disk cache when possible.
package pipeline

import (
	"context"
	"errors"
	"fmt"

	"github.com/josebatistam/Astroinformatics-II/internal/core/domain"
	"github.com/josebatistam/Astroinformatics-II/internal/core/ports"
	"go.trai.ch/zerr"
)

// Stage names reported through the tracer.
const (
	StageRestore   = "restore"
	StageLoad      = "load"
	StageTransform = "transform"
	StagePersist   = "persist"
)

// Origin tells where a bundle came from.
type Origin int

const (
	// OriginCache means the bundle was restored from the cache artifact.
	OriginCache Origin = iota
	// OriginCatalog means the bundle was built from the catalog and persisted.
	OriginCatalog
)

// String returns the origin name.
func (o Origin) String() string {
	if o == OriginCache {
		return "cache"
	}
	return "catalog"
}

// Pipeline loads, transforms and caches the catalog.
type Pipeline struct {
	loader ports.CatalogLoader
	store  ports.BundleStore
	tracer ports.Tracer
	logger ports.Logger
}

// New creates a new Pipeline.
func New(loader ports.CatalogLoader, store ports.BundleStore, tracer ports.Tracer, logger ports.Logger) *Pipeline {
	return &Pipeline{
		loader: loader,
		store:  store,
		tracer: tracer,
		logger: logger,
	}
}

// LoadOrBuild returns the bundle stored at cachePath if there is one. Otherwise it
// loads the catalog at catalogPath, transforms it and persists the result at
// cachePath before returning it.
//
// A cache artifact that exists but cannot be decoded fails with
// domain.ErrCacheCorrupt; it is never rebuilt silently. An artifact that cannot be
// opened at all is treated as absent.
func (p *Pipeline) LoadOrBuild(ctx context.Context, catalogPath, cachePath string) (*domain.Bundle, Origin, error) {
	b, err := p.restore(ctx, cachePath)
	switch {
	case errors.Is(err, domain.ErrCacheUnreadable):
		p.logger.Warn(fmt.Sprintf("cache artifact %s is unreadable, rebuilding", cachePath))
	case err != nil:
		return nil, OriginCache, err
	case b != nil:
		return b, OriginCache, nil
	}

	b, err = p.build(ctx, catalogPath, cachePath)
	if err != nil {
		return nil, OriginCatalog, err
	}
	return b, OriginCatalog, nil
}

// Rebuild ignores any existing cache artifact, builds the bundle from the catalog
// and replaces the artifact.
func (p *Pipeline) Rebuild(ctx context.Context, catalogPath, cachePath string) (*domain.Bundle, error) {
	return p.build(ctx, catalogPath, cachePath)
}

func (p *Pipeline) restore(ctx context.Context, cachePath string) (*domain.Bundle, error) {
	_, span := p.tracer.Start(ctx, StageRestore, ports.WithAttribute("abell.cache", cachePath))
	defer span.End()

	b, err := p.store.Get(cachePath)
	if err != nil {
		span.RecordError(err)
		return nil, err
	}
	span.SetAttribute("abell.hit", b != nil)
	return b, nil
}

func (p *Pipeline) build(ctx context.Context, catalogPath, cachePath string) (*domain.Bundle, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	records, err := p.load(ctx, catalogPath)
	if err != nil {
		return nil, err
	}

	b, err := p.transform(ctx, records)
	if err != nil {
		return nil, err
	}

	if err := p.persist(ctx, cachePath, b); err != nil {
		return nil, err
	}
	return b, nil
}

func (p *Pipeline) load(ctx context.Context, catalogPath string) ([]domain.CatalogRecord, error) {
	_, span := p.tracer.Start(ctx, StageLoad, ports.WithAttribute("abell.catalog", catalogPath))
	defer span.End()

	records, err := p.loader.Load(catalogPath)
	if err != nil {
		span.RecordError(err)
		return nil, err
	}
	span.SetAttribute("abell.rows", len(records))
	return records, nil
}

func (p *Pipeline) transform(ctx context.Context, records []domain.CatalogRecord) (*domain.Bundle, error) {
	_, span := p.tracer.Start(ctx, StageTransform)
	defer span.End()

	b := Transform(records)
	if err := b.Validate(); err != nil {
		err = zerr.Wrap(err, "transform produced an inconsistent bundle")
		span.RecordError(err)
		return nil, err
	}
	span.SetAttribute("abell.valid", b.ValidLen())
	return b, nil
}

func (p *Pipeline) persist(ctx context.Context, cachePath string, b *domain.Bundle) error {
	_, span := p.tracer.Start(ctx, StagePersist, ports.WithAttribute("abell.cache", cachePath))
	defer span.End()

	if err := p.store.Put(cachePath, b); err != nil {
		span.RecordError(err)
		return err
	}
	return nil
}
