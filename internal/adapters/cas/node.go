package cas

import (
	"context"

	"github.com/grindlemire/graft"
	"github.com/josebatistam/Astroinformatics-II/internal/core/ports"
)

// NodeID is the unique identifier for the bundle store Graft node.
const NodeID graft.ID = "adapter.bundle_store"

func init() {
	graft.Register(graft.Node[ports.BundleStore]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.BundleStore, error) {
			store, err := NewStore()
			if err != nil {
				return nil, err
			}
			return store, nil
		},
	})
}
