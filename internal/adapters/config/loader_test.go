package config_test

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/josebatistam/Astroinformatics-II/internal/adapters/config"
	"github.com/josebatistam/Astroinformatics-II/internal/core/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type failingFS struct{ err error }

func (f failingFS) ReadFile(string) ([]byte, error) { return nil, f.err }

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), domain.ConfigFileName)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoader_MissingFileUsesDefaults(t *testing.T) {
	t.Parallel()

	cfg, err := config.NewLoader().Load(filepath.Join(t.TempDir(), "abell.yaml"))
	require.NoError(t, err)
	assert.Equal(t, domain.DefaultConfig(), *cfg)
}

func TestLoader_Load(t *testing.T) {
	t.Parallel()

	path := writeConfig(t, `
catalog: catalogs/abell.dat
cache: /var/cache/abell.bundle
output: out
format: summary
`)
	dir := filepath.Dir(path)

	cfg, err := config.NewLoader().Load(path)
	require.NoError(t, err)
	assert.Equal(t, domain.Config{
		CatalogPath: filepath.Join(dir, "catalogs", "abell.dat"),
		CachePath:   "/var/cache/abell.bundle",
		OutputDir:   filepath.Join(dir, "out"),
		Format:      domain.FormatSummary,
	}, *cfg)
}

func TestLoader_PartialFile(t *testing.T) {
	t.Parallel()

	path := writeConfig(t, "output: figures\n")

	cfg, err := config.NewLoader().Load(path)
	require.NoError(t, err)

	want := domain.DefaultConfig()
	want.OutputDir = filepath.Join(filepath.Dir(path), "figures")
	assert.Equal(t, want, *cfg)
}

func TestLoader_EmptyFile(t *testing.T) {
	t.Parallel()

	cfg, err := config.NewLoader().Load(writeConfig(t, ""))
	require.NoError(t, err)
	assert.Equal(t, domain.DefaultConfig(), *cfg)
}

func TestLoader_Errors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		content string
		wantErr error
	}{
		{name: "invalid yaml", content: "catalog: [unterminated", wantErr: domain.ErrConfigParseFailed},
		{name: "unknown key", content: "catalgo: x.dat\n", wantErr: domain.ErrConfigParseFailed},
		{name: "unknown format", content: "format: png\n", wantErr: domain.ErrUnknownFormat},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			cfg, err := config.NewLoader().Load(writeConfig(t, tt.content))
			require.Error(t, err)
			assert.Nil(t, cfg)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestLoader_ReadFailure(t *testing.T) {
	t.Parallel()

	boom := errors.New("permission denied")
	loader := &config.Loader{FS: failingFS{err: boom}}

	_, err := loader.Load("abell.yaml")
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrConfigReadFailed)
	assert.ErrorIs(t, err, boom)
}

func TestParseFormat(t *testing.T) {
	t.Parallel()

	f, err := config.ParseFormat("pdf")
	require.NoError(t, err)
	assert.Equal(t, domain.FormatPDF, f)

	f, err = config.ParseFormat("summary")
	require.NoError(t, err)
	assert.Equal(t, domain.FormatSummary, f)

	_, err = config.ParseFormat("svg")
	assert.ErrorIs(t, err, domain.ErrUnknownFormat)
}
