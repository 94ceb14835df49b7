package ports

import (
	"context"

	"github.com/josebatistam/Astroinformatics-II/internal/core/domain"
)

// Renderer turns plot requests into artifacts.
// Implementations must be safe for concurrent use; requests are rendered in parallel.
//
//go:generate mockgen -source=renderer.go -destination=mocks/mock_renderer.go -package=mocks
type Renderer interface {
	// Render draws a single request.
	// Unknown request kinds fail with domain.ErrUnknownPlotKind.
	Render(ctx context.Context, req domain.PlotRequest) error
}

// Flusher is implemented by renderers that buffer their output until every request
// of a run has been rendered.
type Flusher interface {
	// Flush writes the buffered output.
	Flush() error
}
