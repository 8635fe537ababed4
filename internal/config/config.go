package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"gopkg.in/yaml.v3"
)

// Config represents the optional extrato.yaml configuration. Every field
// has a default that matches the pipeline's stock behavior, so the file
// only exists to override.
type Config struct {
	// DefaultFormat is the statement format assumed when --format is
	// not given.
	DefaultFormat string `yaml:"default_format"`
	// Template is a workbook copied to seed each batch output file.
	Template string `yaml:"template,omitempty"`
	// RunLog is a CSV file appended with one row per pipeline run.
	RunLog string `yaml:"run_log,omitempty"`
	// PreserveFormatting copies reference-row styles onto new ledger
	// rows.
	PreserveFormatting bool `yaml:"preserve_formatting"`
	// MaxColWidth caps ledger column widths after a write.
	MaxColWidth float64 `yaml:"max_col_width"`
}

// Default returns the stock configuration.
func Default() *Config {
	return &Config{
		DefaultFormat:      "sicoob",
		PreserveFormatting: true,
		MaxColWidth:        50,
	}
}

// Load reads an extrato.yaml file from disk.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config: %w", err)
	}
	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	return cfg, nil
}

// LoadOrDefault reads the config at path, falling back to defaults when
// the file does not exist.
func LoadOrDefault(path string) (*Config, error) {
	cfg, err := Load(path)
	if errors.Is(err, fs.ErrNotExist) {
		return Default(), nil
	}
	if err != nil {
		return nil, err
	}
	return cfg, nil
}

// Save writes a Config to a YAML file.
func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}
	return nil
}
