package ports

import "github.com/josebatistam/Astroinformatics-II/internal/core/domain"

// BundleStore persists the derived bundle between runs.
//
//go:generate mockgen -source=store.go -destination=mocks/mock_store.go -package=mocks
type BundleStore interface {
	// Get restores the bundle stored at path.
	// Returns nil, nil if no artifact exists.
	Get(path string) (*domain.Bundle, error)

	// Put stores the bundle at path, replacing any previous artifact.
	Put(path string, bundle *domain.Bundle) error

	// Remove deletes the artifact at path. A missing artifact is not an error.
	Remove(path string) error
}
