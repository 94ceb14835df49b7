package domain

import "time"

// Config holds the file locations and output settings of a run.
type Config struct {
	CatalogPath string
	CachePath   string
	OutputDir   string
	Format      Format
}

// DefaultConfig returns the configuration used when no config file is present.
func DefaultConfig() Config {
	return Config{
		CatalogPath: DefaultCatalogPath(),
		CachePath:   DefaultCachePath(),
		OutputDir:   DefaultOutputDir,
		Format:      FormatPDF,
	}
}

// StageTiming is the measured duration of one pipeline stage.
type StageTiming struct {
	Name     string
	Duration time.Duration
	Failed   bool
}
