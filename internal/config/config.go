package config

// Config represents the full application configuration.
type Config struct {
	// Select lists the codes to report; empty selects everything.
	Select []string `yaml:"select"`

	// Ignore lists the codes to suppress globally.
	Ignore []string `yaml:"ignore"`

	// PerFileIgnores maps file patterns to ignored codes using the
	// `pattern[,pattern...]: CODE[,CODE...]` syntax.
	PerFileIgnores string `yaml:"perFileIgnores"`

	// Exclude lists glob patterns for files that are never reported.
	Exclude []string `yaml:"exclude"`

	Git           GitConfig           `yaml:"git"`
	Output        OutputConfig        `yaml:"output"`
	Store         StoreConfig         `yaml:"store"`
	Observability ObservabilityConfig `yaml:"observability"`
}

type GitConfig struct {
	RepositoryDir string `yaml:"repositoryDir"`
	BaseRef       string `yaml:"baseRef"`
}

type OutputConfig struct {
	Directory string `yaml:"directory"`
}

// StoreConfig configures the baseline persistence layer.
type StoreConfig struct {
	Enabled bool   `yaml:"enabled"`
	Path    string `yaml:"path"`
}

// ObservabilityConfig configures logging.
type ObservabilityConfig struct {
	Logging LoggingConfig `yaml:"logging"`
}

// LoggingConfig configures the structured logger.
type LoggingConfig struct {
	Enabled bool   `yaml:"enabled"`
	Level   string `yaml:"level"`  // debug, info, error
	Format  string `yaml:"format"` // json, human
}

// Merge combines multiple configuration instances, prioritising the latter ones.
func Merge(configs ...Config) Config {
	result := Config{}
	for _, cfg := range configs {
		result = merge(result, cfg)
	}
	return result
}

func merge(base, overlay Config) Config {
	result := base

	if len(overlay.Select) > 0 {
		result.Select = overlay.Select
	}
	if len(overlay.Ignore) > 0 {
		result.Ignore = overlay.Ignore
	}
	if overlay.PerFileIgnores != "" {
		result.PerFileIgnores = overlay.PerFileIgnores
	}
	if len(overlay.Exclude) > 0 {
		result.Exclude = overlay.Exclude
	}
	result.Git = chooseGit(base.Git, overlay.Git)
	result.Output = chooseOutput(base.Output, overlay.Output)
	result.Store = chooseStore(base.Store, overlay.Store)
	result.Observability = chooseObservability(base.Observability, overlay.Observability)

	return result
}

func chooseGit(base, overlay GitConfig) GitConfig {
	result := base
	if overlay.RepositoryDir != "" {
		result.RepositoryDir = overlay.RepositoryDir
	}
	if overlay.BaseRef != "" {
		result.BaseRef = overlay.BaseRef
	}
	return result
}

func chooseOutput(base, overlay OutputConfig) OutputConfig {
	if overlay.Directory != "" {
		return overlay
	}
	return base
}

func chooseStore(base, overlay StoreConfig) StoreConfig {
	if overlay.Enabled || overlay.Path != "" {
		return overlay
	}
	return base
}

func chooseObservability(base, overlay ObservabilityConfig) ObservabilityConfig {
	result := base
	if overlay.Logging.Enabled || overlay.Logging.Level != "" || overlay.Logging.Format != "" {
		result.Logging = overlay.Logging
	}
	return result
}
