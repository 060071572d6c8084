package types

import "time"

// StoreConfig holds settings for the quote store.
type StoreConfig struct {
	// Path is the SQLite database file (default "quickcite.db").
	Path string `json:"path" yaml:"path" mapstructure:"path"`
}

// SortOrder orders listed quotes by capture time.
type SortOrder string

const (
	SortNewest SortOrder = "newest"
	SortOldest SortOrder = "oldest"
)

// DisplayConfig holds presentation defaults for the CLI.
type DisplayConfig struct {
	// SortOrder is "newest" (default) or "oldest".
	SortOrder SortOrder `json:"sort_order" yaml:"sort_order" mapstructure:"sort_order"`

	// Style is the default citation style (default "mla").
	Style Style `json:"style" yaml:"style" mapstructure:"style"`
}

// ExportConfig selects what the plain-text export includes.
type ExportConfig struct {
	IncludeMLA      bool `json:"include_mla" yaml:"include_mla" mapstructure:"include_mla"`
	IncludeAPA      bool `json:"include_apa" yaml:"include_apa" mapstructure:"include_apa"`
	IncludeChicago  bool `json:"include_chicago" yaml:"include_chicago" mapstructure:"include_chicago"`
	IncludeMetadata bool `json:"include_metadata" yaml:"include_metadata" mapstructure:"include_metadata"`
}

// Styles returns the styles enabled in the export preferences, in
// MLA, APA, Chicago order.
func (e ExportConfig) Styles() []Style {
	var styles []Style
	if e.IncludeMLA {
		styles = append(styles, StyleMLA)
	}
	if e.IncludeAPA {
		styles = append(styles, StyleAPA)
	}
	if e.IncludeChicago {
		styles = append(styles, StyleChicago)
	}
	return styles
}

// CacheConfig controls the rendered-citation cache.
type CacheConfig struct {
	// TTL is how long a rendered citation stays cached (default 10m).
	TTL time.Duration `json:"ttl" yaml:"ttl" mapstructure:"ttl"`
}

// ReliabilityConfig points at optional reliability rules.
type ReliabilityConfig struct {
	// RulesFile is a YAML file of domain and TLD rules. Empty uses defaults.
	RulesFile string `json:"rules_file" yaml:"rules_file" mapstructure:"rules_file"`
}

// LogConfig configures the zap logger.
type LogConfig struct {
	// Level is a zap level name (default "info").
	Level string `json:"level" yaml:"level" mapstructure:"level"`

	// Format is "json" (default) or "console".
	Format string `json:"format" yaml:"format" mapstructure:"format"`
}

// Config groups every setting quickcite reads.
type Config struct {
	Store       StoreConfig       `json:"store" yaml:"store" mapstructure:"store"`
	Display     DisplayConfig     `json:"display" yaml:"display" mapstructure:"display"`
	Export      ExportConfig      `json:"export" yaml:"export" mapstructure:"export"`
	Cache       CacheConfig       `json:"cache" yaml:"cache" mapstructure:"cache"`
	Reliability ReliabilityConfig `json:"reliability" yaml:"reliability" mapstructure:"reliability"`
	Log         LogConfig         `json:"log" yaml:"log" mapstructure:"log"`
}
