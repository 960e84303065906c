// Package config provides configuration management for the application.
// It handles loading, validation, and access to configuration values from
// a YAML file and environment variables using viper, with sane defaults
// when neither provides a value.
package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/viper"

	"github.com/ethodata/datascout/internal/domain"
	"github.com/ethodata/datascout/internal/fetcher"
	"github.com/ethodata/datascout/internal/logger"
	"github.com/ethodata/datascout/internal/pipeline"
)

// envPrefix namespaces the environment variables read by viper, e.g.
// DATASCOUT_EXPORT_FORMAT overrides export.format.
const envPrefix = "DATASCOUT"

// Export format values.
const (
	FormatCSV  = "csv"
	FormatJSON = "json"
	FormatBoth = "both"
)

// ExportConfig holds exporter configuration.
type ExportConfig struct {
	// Format selects the export encoding: csv, json, or both
	Format string `mapstructure:"format" yaml:"format"`
	// CSVPath is the CSV destination
	CSVPath string `mapstructure:"csv_path" yaml:"csv_path"`
	// JSONPath is the JSON destination
	JSONPath string `mapstructure:"json_path" yaml:"json_path"`
}

// Config represents the application configuration.
type Config struct {
	// Logging holds logger configuration
	Logging logger.Config `mapstructure:"logging" yaml:"logging"`
	// Fetch holds fetcher configuration
	Fetch fetcher.Config `mapstructure:"fetch" yaml:"fetch"`
	// Pipeline holds worker pool configuration
	Pipeline pipeline.Config `mapstructure:"pipeline" yaml:"pipeline"`
	// Export holds exporter configuration
	Export ExportConfig `mapstructure:"export" yaml:"export"`
	// Sources lists endpoints appended to the built-in registry
	Sources []domain.SourceEndpoint `mapstructure:"sources" yaml:"sources"`
}

// Load reads configuration from the given file path (optional) and the
// environment, applies defaults, and validates the result.
func Load(cfgFile string) (*Config, error) {
	v := viper.New()

	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
	} else {
		v.SetConfigName("datascout")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("./config")
	}

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("read config: %w", err)
		}
		// No config file is fine; defaults and environment apply.
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}

	cfg.applyDefaults()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// setDefaults registers defaults used when neither the config file nor the
// environment provides a value.
func setDefaults(v *viper.Viper) {
	v.SetDefault("logging.level", string(logger.InfoLevel))
	v.SetDefault("logging.encoding", "console")
	v.SetDefault("export.format", FormatBoth)
	v.SetDefault("export.csv_path", "datasets_summary.csv")
	v.SetDefault("export.json_path", "datasets_summary.json")
}

// applyDefaults fills zero-value fields after unmarshalling.
func (c *Config) applyDefaults() {
	c.Fetch = c.Fetch.WithDefaults()
	c.Pipeline = c.Pipeline.WithDefaults()

	if c.Export.Format == "" {
		c.Export.Format = FormatBoth
	}
	if c.Export.CSVPath == "" {
		c.Export.CSVPath = "datasets_summary.csv"
	}
	if c.Export.JSONPath == "" {
		c.Export.JSONPath = "datasets_summary.json"
	}
}

// Validate checks the configuration for values no command can run with.
func (c *Config) Validate() error {
	switch c.Export.Format {
	case FormatCSV, FormatJSON, FormatBoth:
	default:
		return fmt.Errorf("export: unknown format %q", c.Export.Format)
	}

	for i := range c.Sources {
		if c.Sources[i].URL == "" {
			return fmt.Errorf("sources[%d]: missing URL", i)
		}
	}

	return nil
}
