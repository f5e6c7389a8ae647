// Package config loads loadaudit settings from an optional YAML file.
package config

import (
	"fmt"
	"os"

	"github.com/ukaji3/loadaudit-go/pkg/loadaudit"
	"github.com/ukaji3/loadaudit-go/pkg/loadaudit/reconcile"
	"gopkg.in/yaml.v3"
)

// DefaultPath is the config file read when --config is not given.
const DefaultPath = "loadaudit.yaml"

// Config represents the complete application configuration.
type Config struct {
	Workbook WorkbookConfig `yaml:"workbook"`
	Audit    AuditConfig    `yaml:"audit"`
	Server   ServerConfig   `yaml:"server"`
	Logging  LoggingConfig  `yaml:"logging"`
}

// WorkbookConfig locates the input workbook.
type WorkbookConfig struct {
	Path  string `yaml:"path"`
	Sheet string `yaml:"sheet"`
	// HeaderRow is the 1-based row holding the column names.
	HeaderRow int `yaml:"header_row"`
}

// AuditConfig holds reconciliation settings.
type AuditConfig struct {
	Sort           string `yaml:"sort"`
	LenientHeaders bool   `yaml:"lenient_headers"`
	CheckBlocks    bool   `yaml:"check_blocks"`
}

// ServerConfig holds dashboard settings.
type ServerConfig struct {
	Addr  string `yaml:"addr"`
	Watch bool   `yaml:"watch"`
}

// LoggingConfig holds logger settings.
type LoggingConfig struct {
	Level  string `yaml:"level"`  // debug, info, warn, error
	Format string `yaml:"format"` // json, console
}

// DefaultConfig returns the built-in configuration.
func DefaultConfig() *Config {
	return &Config{
		Workbook: WorkbookConfig{
			Path:      loadaudit.DefaultWorkbook,
			Sheet:     loadaudit.DefaultSheet,
			HeaderRow: loadaudit.DefaultHeaderRow + 1,
		},
		Audit: AuditConfig{
			Sort:        "sheet",
			CheckBlocks: true,
		},
		Server: ServerConfig{
			Addr: ":8501",
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "console",
		},
	}
}

// Load loads configuration from a YAML file. An empty path reads DefaultPath
// and yields the defaults when that file is absent; a path given explicitly
// must exist.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	optional := path == ""
	if optional {
		path = DefaultPath
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if optional && os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks values that cannot be repaired by defaults.
func (c *Config) Validate() error {
	if c.Workbook.Path == "" {
		return fmt.Errorf("workbook.path must not be empty")
	}
	if c.Workbook.HeaderRow < 1 {
		return fmt.Errorf("workbook.header_row must be 1 or greater, got %d", c.Workbook.HeaderRow)
	}
	if _, err := reconcile.ParseOrder(c.Audit.Sort); err != nil {
		return fmt.Errorf("audit.sort: %w", err)
	}
	switch c.Logging.Format {
	case "json", "console":
	default:
		return fmt.Errorf("logging.format must be json or console, got %q", c.Logging.Format)
	}
	return nil
}

// LoadOptions converts the workbook and audit sections to loader options.
func (c *Config) LoadOptions() loadaudit.Options {
	headerRow := c.Workbook.HeaderRow - 1
	return loadaudit.Options{
		Sheet:          c.Workbook.Sheet,
		HeaderRow:      &headerRow,
		LenientHeaders: c.Audit.LenientHeaders,
		CheckBlocks:    c.Audit.CheckBlocks,
	}
}
