// Package config loads the tradepulse client configuration from a YAML file
// with environment variable overrides.
package config

import (
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// ---------------------------------------------------------------------------
// Configuration structs
// ---------------------------------------------------------------------------

// Config is the top-level configuration for the tradepulse client.
type Config struct {
	Storage Storage `yaml:"storage"`
	AI      AI      `yaml:"ai"`
	Logging Logging `yaml:"logging"`
}

// Storage holds paths for local device storage.
type Storage struct {
	DataDir    string `yaml:"data_dir"`
	SQLitePath string `yaml:"sqlite_path"`
}

// AI holds the credential and model id for the assistant collaborator.
type AI struct {
	APIKey string `yaml:"api_key"`
	Model  string `yaml:"model"`
}

// Logging configures the application logger. Logs go to File so they do not
// interleave with the terminal UI; an empty File means stderr.
type Logging struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
	File   string `yaml:"file"`
}

// ---------------------------------------------------------------------------
// Loading
// ---------------------------------------------------------------------------

// Default returns the built-in configuration used when no config file exists.
func Default() *Config {
	cfg := &Config{
		Storage: Storage{DataDir: defaultDataDir()},
		AI:      AI{Model: "gemini-3-flash-preview"},
		Logging: Logging{Level: "info", Format: "json"},
	}
	applyDerivedDefaults(cfg)
	applyEnvOverrides(cfg)
	return cfg
}

// Load reads the YAML configuration file at the given path, parses it into a
// Config struct, and then applies defaults and environment overrides.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	cfg := &Config{}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}

	if cfg.Storage.DataDir == "" {
		cfg.Storage.DataDir = defaultDataDir()
	}
	if cfg.AI.Model == "" {
		cfg.AI.Model = "gemini-3-flash-preview"
	}
	if cfg.Logging.Level == "" {
		cfg.Logging.Level = "info"
	}
	if cfg.Logging.Format == "" {
		cfg.Logging.Format = "json"
	}
	applyDerivedDefaults(cfg)
	applyEnvOverrides(cfg)

	return cfg, nil
}

// applyDerivedDefaults fills paths that derive from the data directory.
func applyDerivedDefaults(cfg *Config) {
	if cfg.Storage.SQLitePath == "" {
		cfg.Storage.SQLitePath = filepath.Join(cfg.Storage.DataDir, "tradepulse.db")
	}
	if cfg.Logging.File == "" {
		cfg.Logging.File = filepath.Join(cfg.Storage.DataDir, "tradepulse.log")
	}
}

// applyEnvOverrides checks well-known environment variables and overrides the
// corresponding configuration fields when they are set.
func applyEnvOverrides(cfg *Config) {
	if v := os.Getenv("DATA_DIR"); v != "" {
		cfg.Storage.DataDir = v
	}
	if v := os.Getenv("TRADEPULSE_DB"); v != "" {
		cfg.Storage.SQLitePath = v
	}
	if v := os.Getenv("LOG_LEVEL"); v != "" {
		cfg.Logging.Level = v
	}
	if v := os.Getenv("TRADEPULSE_LOG"); v != "" {
		cfg.Logging.File = v
	}
	if v := os.Getenv("TRADEPULSE_MODEL"); v != "" {
		cfg.AI.Model = v
	}

	if v := os.Getenv("API_KEY"); v != "" {
		cfg.AI.APIKey = v
	}
	// Canonical SDK env var (highest priority).
	if v := os.Getenv("GEMINI_API_KEY"); v != "" {
		cfg.AI.APIKey = v
	}
}

// defaultDataDir places local storage under the user config directory,
// falling back to the working directory when none is available.
func defaultDataDir() string {
	base, err := os.UserConfigDir()
	if err != nil {
		return ".tradepulse"
	}
	return filepath.Join(base, "tradepulse")
}
