// Package cas implements the on-disk store for the derived bundle.
package cas

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/josebatistam/Astroinformatics-II/internal/core/domain"
	"go.trai.ch/zerr"
)

// Store implements ports.BundleStore with one artifact file per path.
type Store struct {
	codec *Codec
}

// NewStore creates a new Store.
func NewStore() (*Store, error) {
	codec, err := NewCodec()
	if err != nil {
		return nil, err
	}
	return &Store{codec: codec}, nil
}

// Get restores the bundle stored at path.
func (s *Store) Get(path string) (*domain.Bundle, error) {
	//nolint:gosec // Path is provided by the user on purpose.
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}
		return nil, zerr.With(errors.Join(domain.ErrCacheUnreadable, err), "path", path)
	}

	b, err := s.codec.Decode(data)
	if err != nil {
		return nil, zerr.With(err, "path", path)
	}
	return b, nil
}

// Put stores the bundle at path.
// The artifact is written to a temporary file in the same directory, synced and
// renamed over path, so readers never observe a partial file.
func (s *Store) Put(path string, b *domain.Bundle) error {
	data, err := s.codec.Encode(b)
	if err != nil {
		return zerr.With(errors.Join(domain.ErrCacheWriteFailed, err), "path", path)
	}

	if err := writeAtomic(path, data); err != nil {
		return zerr.With(errors.Join(domain.ErrCacheWriteFailed, err), "path", path)
	}
	return nil
}

// Remove deletes the artifact at path.
func (s *Store) Remove(path string) error {
	if err := os.Remove(path); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return zerr.With(errors.Join(domain.ErrCacheRemoveFailed, err), "path", path)
	}
	return nil
}

func writeAtomic(path string, data []byte) (err error) {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, domain.DirPerm); err != nil {
		return err
	}

	tmp, err := os.CreateTemp(dir, filepath.Base(path)+".tmp-*")
	if err != nil {
		return err
	}
	defer func() {
		if err != nil {
			_ = tmp.Close()
			_ = os.Remove(tmp.Name())
		}
	}()

	if _, err = tmp.Write(data); err != nil {
		return err
	}
	if err = tmp.Sync(); err != nil {
		return err
	}
	if err = tmp.Chmod(domain.FilePerm); err != nil {
		return err
	}
	if err = tmp.Close(); err != nil {
		return err
	}
	return os.Rename(tmp.Name(), path)
}
