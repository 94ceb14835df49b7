package config

// Abellfile represents the structure of the abell.yaml configuration file.
type Abellfile struct {
	Catalog string `yaml:"catalog"`
	Cache   string `yaml:"cache"`
	Output  string `yaml:"output"`
	Format  string `yaml:"format"`
}
