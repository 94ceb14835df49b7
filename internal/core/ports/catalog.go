package ports

import "github.com/josebatistam/Astroinformatics-II/internal/core/domain"

// CatalogLoader reads the source catalog and redshift tables.
//
//go:generate mockgen -source=catalog.go -destination=mocks/mock_catalog.go -package=mocks
type CatalogLoader interface {
	// Load parses the catalog at path and returns its records in file order.
	// It fails with domain.ErrSourceUnavailable when the file cannot be read and
	// with domain.ErrMalformedRow when a data row cannot be parsed.
	Load(path string) ([]domain.CatalogRecord, error)

	// LoadRedshifts parses the ra, dec, z table at path with the same header,
	// blank line and error rules as Load.
	LoadRedshifts(path string) ([]domain.RedshiftRecord, error)
}
