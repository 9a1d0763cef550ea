package config

import (
	"github.com/sdejongh/treediff/pkg/models"
)

// Config represents the application configuration
type Config struct {
	Diff     models.DiffOptions `yaml:"diff"`
	Snapshot SnapshotConfig     `yaml:"snapshot"`
	Output   OutputConfig       `yaml:"output"`
	Logging  LoggingConfig      `yaml:"logging"`
	Exclude  []string           `yaml:"exclude"`
}

// SnapshotConfig holds capture-related settings
type SnapshotConfig struct {
	IncludeHidden bool `yaml:"include_hidden"`
	Progress      bool `yaml:"progress"` // Show progress bar while capturing
}

// OutputConfig holds output-related settings
type OutputConfig struct {
	Format     string `yaml:"format"`      // "human", "json", "markdown" or "html"
	Color      bool   `yaml:"color"`       // Colorize text output
	HumanSizes bool   `yaml:"human_sizes"` // Render sizes in human-friendly units
	Quiet      bool   `yaml:"quiet"`       // Suppress non-error output
}

// LoggingConfig holds logging-related settings
type LoggingConfig struct {
	Enabled bool   `yaml:"enabled"`
	Format  string `yaml:"format"` // "json" or "text"
	Level   string `yaml:"level"`  // "debug", "info", "warn", "error"
	File    string `yaml:"file"`   // Log file path (empty = disabled)
}

// Default returns the default configuration
func Default() *Config {
	return &Config{
		Diff: models.DefaultDiffOptions(),
		Snapshot: SnapshotConfig{
			IncludeHidden: false,
			Progress:      true,
		},
		Output: OutputConfig{
			Format:     "human",
			Color:      true,
			HumanSizes: true,
			Quiet:      false,
		},
		Logging: LoggingConfig{
			Enabled: false,
			Format:  "json",
			Level:   "info",
			File:    "",
		},
		Exclude: []string{
			"*.tmp",
			".git/",
			"node_modules/",
		},
	}
}

// Validate checks if the configuration is valid
func (c *Config) Validate() error {
	if err := c.Diff.Validate(); err != nil {
		return err
	}

	validFormats := map[string]bool{"human": true, "json": true, "markdown": true, "html": true}
	if !validFormats[c.Output.Format] {
		return &models.ValidationError{
			Field:   "output.format",
			Message: "must be 'human', 'json', 'markdown' or 'html'",
		}
	}

	validLogFormats := map[string]bool{"json": true, "text": true}
	if !validLogFormats[c.Logging.Format] {
		return &models.ValidationError{
			Field:   "logging.format",
			Message: "must be 'json' or 'text'",
		}
	}

	validLogLevels := map[string]bool{"debug": true, "info": true, "warn": true, "error": true}
	if !validLogLevels[c.Logging.Level] {
		return &models.ValidationError{
			Field:   "logging.level",
			Message: "must be 'debug', 'info', 'warn', or 'error'",
		}
	}

	return nil
}
