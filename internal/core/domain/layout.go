package domain

import "path/filepath"

const (
	// AbellDirName is the name of the internal workspace directory.
	AbellDirName = ".abell"

	// CacheFileName is the name of the derived bundle cache artifact.
	CacheFileName = "abellN1989.bundle"

	// CatalogFileName is the default name of the source catalog.
	CatalogFileName = "abellN1989.dat"

	// ConfigFileName is the name of the optional project configuration file.
	ConfigFileName = "abell.yaml"

	// DefaultOutputDir is the directory plots are written to.
	DefaultOutputDir = "plots"

	// DirPerm is the default permission for directories (rwxr-x---).
	DirPerm = 0o750

	// FilePerm is the default permission for files (rw-r--r--).
	FilePerm = 0o644
)

// DefaultAbellPath returns the default root directory for abell metadata.
func DefaultAbellPath() string {
	return AbellDirName
}

// DefaultCachePath returns the default path of the bundle cache artifact.
// It joins .abell and the cache file name.
func DefaultCachePath() string {
	return filepath.Join(AbellDirName, CacheFileName)
}

// DefaultCatalogPath returns the default path of the source catalog.
func DefaultCatalogPath() string {
	return filepath.Join("data", CatalogFileName)
}
