package domain

import (
	"errors"

	"go.trai.ch/zerr"
)

var (
	// ErrSourceUnavailable is returned when the catalog file is missing or unreadable and no cache exists.
	ErrSourceUnavailable = zerr.New("catalog source unavailable")

	// ErrMalformedRow is returned when a catalog data row cannot be parsed.
	ErrMalformedRow = zerr.New("malformed catalog row")

	// ErrCacheCorrupt is returned when a cache artifact exists but cannot be decoded into a well-formed bundle.
	ErrCacheCorrupt = zerr.New("cache artifact is corrupt")

	// ErrCacheUnreadable is returned when a cache artifact exists but cannot be opened.
	ErrCacheUnreadable = zerr.New("cache artifact is unreadable")

	// ErrCacheWriteFailed is returned when the cache artifact cannot be persisted.
	ErrCacheWriteFailed = zerr.New("failed to write cache artifact")

	// ErrCacheRemoveFailed is returned when the cache artifact cannot be removed.
	ErrCacheRemoveFailed = zerr.New("failed to remove cache artifact")

	// ErrInvalidBundle is returned when a bundle violates its structural invariants.
	ErrInvalidBundle = zerr.New("invalid derived bundle")

	// ErrConfigReadFailed is returned when the config file cannot be read.
	ErrConfigReadFailed = zerr.New("failed to read config file")

	// ErrConfigParseFailed is returned when the config file cannot be parsed.
	ErrConfigParseFailed = zerr.New("failed to parse config file")

	// ErrUnknownFormat is returned when an output format has no registered renderer.
	ErrUnknownFormat = zerr.New("unknown output format")

	// ErrUnknownPlotKind is returned when a renderer receives a plot request it cannot draw.
	ErrUnknownPlotKind = zerr.New("unknown plot request kind")

	// ErrRenderFailed is returned when a plot cannot be rendered.
	ErrRenderFailed = zerr.New("failed to render plot")

	// ErrInvalidCosmology is returned when cosmological parameters cannot describe a model.
	ErrInvalidCosmology = zerr.New("invalid cosmological parameters")
)

// MetadataValue walks the error tree and returns the first metadata value
// attached under key.
func MetadataValue(err error, key string) (any, bool) {
	if err == nil {
		return nil, false
	}

	if m, ok := err.(interface{ Metadata() map[string]any }); ok {
		if v, found := m.Metadata()[key]; found {
			return v, true
		}
	}

	switch u := err.(type) {
	case interface{ Unwrap() []error }:
		for _, e := range u.Unwrap() {
			if v, ok := MetadataValue(e, key); ok {
				return v, true
			}
		}
	case interface{ Unwrap() error }:
		return MetadataValue(u.Unwrap(), key)
	}

	return nil, false
}

// RowOf returns the 1-based catalog row carried by a malformed row error.
func RowOf(err error) (int, bool) {
	if !errors.Is(err, ErrMalformedRow) {
		return 0, false
	}
	v, ok := MetadataValue(err, "row")
	if !ok {
		return 0, false
	}
	row, ok := v.(int)
	return row, ok
}
