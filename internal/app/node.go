package app

import (
	"context"

	"github.com/grindlemire/graft"
	"github.com/josebatistam/Astroinformatics-II/internal/adapters/cas"       //nolint:depguard // Wired in app layer
	"github.com/josebatistam/Astroinformatics-II/internal/adapters/catalog"   //nolint:depguard // Wired in app layer
	"github.com/josebatistam/Astroinformatics-II/internal/adapters/config"    //nolint:depguard // Wired in app layer
	"github.com/josebatistam/Astroinformatics-II/internal/adapters/linear"    //nolint:depguard // Wired in app layer
	"github.com/josebatistam/Astroinformatics-II/internal/adapters/logger"    //nolint:depguard // Wired in app layer
	"github.com/josebatistam/Astroinformatics-II/internal/adapters/pdf"       //nolint:depguard // Wired in app layer
	"github.com/josebatistam/Astroinformatics-II/internal/adapters/telemetry" //nolint:depguard // Wired in app layer
	"github.com/josebatistam/Astroinformatics-II/internal/core/domain"
	"github.com/josebatistam/Astroinformatics-II/internal/core/ports"
)

const (
	// AppNodeID is the unique identifier for the main App Graft node.
	AppNodeID graft.ID = "app.main"
	// ComponentsNodeID is the unique identifier for the App components Graft node.
	ComponentsNodeID graft.ID = "app.components"
)

func init() {
	// App Node
	graft.Register(graft.Node[*App]{
		ID:        AppNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			config.NodeID,
			catalog.NodeID,
			cas.NodeID,
			logger.NodeID,
			telemetry.TracerNodeID,
			pdf.NodeID,
			linear.NodeID,
		},
		Run: runAppNode,
	})

	// Components Node
	graft.Register(graft.Node[*Components]{
		ID:        ComponentsNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			AppNodeID,
			logger.NodeID,
		},
		Run: func(ctx context.Context) (*Components, error) {
			app, err := graft.Dep[*App](ctx)
			if err != nil {
				return nil, err
			}

			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}

			return NewComponents(app, log), nil
		},
	})
}

func runAppNode(ctx context.Context) (*App, error) {
	configLoader, err := graft.Dep[ports.ConfigLoader](ctx)
	if err != nil {
		return nil, err
	}

	catalogLoader, err := graft.Dep[ports.CatalogLoader](ctx)
	if err != nil {
		return nil, err
	}

	store, err := graft.Dep[ports.BundleStore](ctx)
	if err != nil {
		return nil, err
	}

	log, err := graft.Dep[ports.Logger](ctx)
	if err != nil {
		return nil, err
	}

	tracer, err := graft.Dep[ports.Tracer](ctx)
	if err != nil {
		return nil, err
	}

	pdfRenderer, err := graft.Dep[*pdf.Renderer](ctx)
	if err != nil {
		return nil, err
	}

	summaryRenderer, err := graft.Dep[*linear.Renderer](ctx)
	if err != nil {
		return nil, err
	}

	return New(configLoader, catalogLoader, store, log, tracer, map[domain.Format]ports.Renderer{
		domain.FormatPDF:     pdfRenderer,
		domain.FormatSummary: summaryRenderer,
	}), nil
}
