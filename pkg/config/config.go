// Package config handles converter configuration via YAML files and
// environment variables.
//
// Configuration Precedence (highest to lowest):
//  1. Environment variables (NORNICDB_CONVERT_*)
//  2. Config file (convert.yaml)
//  3. Built-in defaults
//
// Example Usage:
//
//	cfg, err := config.LoadFromFile(config.FindConfigFile())
//	if err != nil {
//		log.Fatalf("Invalid config: %v", err)
//	}
//	c, err := convert.FromConfig(cfg)
//
// Environment Variables:
//   - NORNICDB_CONVERT_LIST_SIZE_HINT=100
//   - NORNICDB_CONVERT_LOG_PARSE_FAILURES=true
//   - NORNICDB_CONVERT_LOGGER="std", "zap" or "nop"
//   - NORNICDB_CONVERT_LOG_LEVEL="error"
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// Logger backends.
const (
	LoggerStd = "std"
	LoggerZap = "zap"
	LoggerNop = "nop"
)

// Config holds converter settings.
type Config struct {
	// ListSizeHint is the initial capacity for lists drained from iterators.
	// Default: 100
	ListSizeHint int

	// LogParseFailures enables diagnostics for unparseable numeric strings.
	// Default: true
	LogParseFailures bool

	// Logger selects the diagnostic backend: "std", "zap" or "nop".
	// Default: "std"
	Logger string

	// LogLevel is the minimum level for the zap backend.
	// Default: "error"
	LogLevel string
}

// YAMLConfig represents the YAML configuration file structure.
type YAMLConfig struct {
	Convert struct {
		ListSizeHint     int    `yaml:"list_size_hint"`
		LogParseFailures *bool  `yaml:"log_parse_failures"`
		Logger           string `yaml:"logger"`
		LogLevel         string `yaml:"log_level"`
	} `yaml:"convert"`
}

// LoadDefaults returns the built-in defaults.
func LoadDefaults() *Config {
	return &Config{
		ListSizeHint:     100,
		LogParseFailures: true,
		Logger:           LoggerStd,
		LogLevel:         "error",
	}
}

// LoadFromEnv returns defaults overridden by environment variables.
func LoadFromEnv() *Config {
	config := LoadDefaults()
	applyEnvVars(config)
	return config
}

// LoadFromFile loads defaults, then the YAML file at configPath, then
// environment variables. A missing file is not an error.
func LoadFromFile(configPath string) (*Config, error) {
	config := LoadDefaults()

	if configPath != "" {
		data, err := os.ReadFile(configPath)
		switch {
		case err == nil:
			var yamlCfg YAMLConfig
			if err := yaml.Unmarshal(data, &yamlCfg); err != nil {
				return nil, fmt.Errorf("failed to parse config file: %w", err)
			}
			if yamlCfg.Convert.ListSizeHint > 0 {
				config.ListSizeHint = yamlCfg.Convert.ListSizeHint
			}
			if yamlCfg.Convert.LogParseFailures != nil {
				config.LogParseFailures = *yamlCfg.Convert.LogParseFailures
			}
			if yamlCfg.Convert.Logger != "" {
				config.Logger = yamlCfg.Convert.Logger
			}
			if yamlCfg.Convert.LogLevel != "" {
				config.LogLevel = yamlCfg.Convert.LogLevel
			}
		case os.IsNotExist(err):
		default:
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	applyEnvVars(config)
	return config, nil
}

func applyEnvVars(config *Config) {
	config.ListSizeHint = getEnvInt("NORNICDB_CONVERT_LIST_SIZE_HINT", config.ListSizeHint)
	config.LogParseFailures = getEnvBool("NORNICDB_CONVERT_LOG_PARSE_FAILURES", config.LogParseFailures)
	config.Logger = strings.ToLower(getEnv("NORNICDB_CONVERT_LOGGER", config.Logger))
	config.LogLevel = strings.ToLower(getEnv("NORNICDB_CONVERT_LOG_LEVEL", config.LogLevel))
}

// Validate checks the configuration for invalid values.
func (c *Config) Validate() error {
	if c.ListSizeHint <= 0 {
		return fmt.Errorf("invalid list size hint: %d", c.ListSizeHint)
	}
	switch c.Logger {
	case LoggerStd, LoggerZap, LoggerNop:
	default:
		return fmt.Errorf("unknown logger %q (want std, zap or nop)", c.Logger)
	}
	switch c.LogLevel {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("unknown log level %q", c.LogLevel)
	}
	return nil
}

// String returns a representation suitable for logging.
func (c *Config) String() string {
	return fmt.Sprintf("Config{ListSizeHint: %d, LogParseFailures: %v, Logger: %s, LogLevel: %s}",
		c.ListSizeHint, c.LogParseFailures, c.Logger, c.LogLevel)
}

// FindConfigFile searches for convert.yaml in standard locations.
// Returns the first path found, or "" if none exist.
// Search order:
//  1. ~/.nornicdb/convert.yaml
//  2. Current working directory (convert.yaml)
//  3. ~/.config/nornicdb/convert.yaml
func FindConfigFile() string {
	var candidates []string

	if home, err := os.UserHomeDir(); err == nil {
		candidates = append(candidates, filepath.Join(home, ".nornicdb", "convert.yaml"))
	}
	candidates = append(candidates, "convert.yaml")
	if home, err := os.UserHomeDir(); err == nil {
		candidates = append(candidates, filepath.Join(home, ".config", "nornicdb", "convert.yaml"))
	}

	for _, path := range candidates {
		if _, err := os.Stat(path); err == nil {
			return path
		}
	}
	return ""
}

// Helper functions for environment variable parsing

func getEnv(key, defaultVal string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return defaultVal
}

func getEnvInt(key string, defaultVal int) int {
	if val := os.Getenv(key); val != "" {
		if i, err := strconv.Atoi(val); err == nil {
			return i
		}
	}
	return defaultVal
}

func getEnvBool(key string, defaultVal bool) bool {
	if val := os.Getenv(key); val != "" {
		val = strings.ToLower(val)
		return val == "true" || val == "1" || val == "yes" || val == "on"
	}
	return defaultVal
}
