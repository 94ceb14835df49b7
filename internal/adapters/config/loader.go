// Package config provides the configuration loader for abell.
package config

import (
	"bytes"
	"errors"
	"io"
	"io/fs"
	"path/filepath"

	"github.com/josebatistam/Astroinformatics-II/internal/core/domain"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

// Loader implements ports.ConfigLoader using a YAML file.
type Loader struct {
	FS FileSystem
}

// NewLoader creates a new Loader reading from the OS filesystem.
func NewLoader() *Loader {
	return &Loader{FS: NewOSFS()}
}

// Load reads the configuration file at path and merges it over domain.DefaultConfig.
// Relative paths in the file are resolved against the directory holding it.
func (l *Loader) Load(path string) (*domain.Config, error) {
	cfg := domain.DefaultConfig()

	data, err := l.FS.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return &cfg, nil
		}
		return nil, zerr.With(errors.Join(domain.ErrConfigReadFailed, err), "path", path)
	}

	var file Abellfile
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&file); err != nil && !errors.Is(err, io.EOF) {
		return nil, zerr.With(errors.Join(domain.ErrConfigParseFailed, err), "path", path)
	}

	base := filepath.Dir(path)
	if file.Catalog != "" {
		cfg.CatalogPath = resolve(base, file.Catalog)
	}
	if file.Cache != "" {
		cfg.CachePath = resolve(base, file.Cache)
	}
	if file.Output != "" {
		cfg.OutputDir = resolve(base, file.Output)
	}
	if file.Format != "" {
		format, err := ParseFormat(file.Format)
		if err != nil {
			return nil, zerr.With(err, "path", path)
		}
		cfg.Format = format
	}

	return &cfg, nil
}

// ParseFormat validates an output format name.
func ParseFormat(s string) (domain.Format, error) {
	switch f := domain.Format(s); f {
	case domain.FormatPDF, domain.FormatSummary:
		return f, nil
	default:
		return "", zerr.With(zerr.Wrap(domain.ErrUnknownFormat, s), "format", s)
	}
}

func resolve(base, p string) string {
	if filepath.IsAbs(p) {
		return p
	}
	return filepath.Join(base, p)
}
