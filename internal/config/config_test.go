package config

import (
	"os"
	"path/filepath"
	"testing"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "tradepulse.yaml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("writing temp config: %v", err)
	}
	return path
}

func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{"DATA_DIR", "TRADEPULSE_DB", "TRADEPULSE_LOG", "TRADEPULSE_MODEL", "LOG_LEVEL", "API_KEY", "GEMINI_API_KEY"} {
		os.Unsetenv(key)
	}
}

func TestLoadFull(t *testing.T) {
	clearEnv(t)
	path := writeConfig(t, `
storage:
  data_dir: "/tmp/tradepulse/data"
  sqlite_path: "/tmp/tradepulse/tradepulse.db"
ai:
  api_key: "test-key"
  model: "gemini-3-flash-preview"
logging:
  level: "debug"
  format: "text"
  file: "/tmp/tradepulse/tradepulse.log"
`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() returned error: %v", err)
	}

	if cfg.Storage.DataDir != "/tmp/tradepulse/data" {
		t.Errorf("Storage.DataDir = %q, want %q", cfg.Storage.DataDir, "/tmp/tradepulse/data")
	}
	if cfg.Storage.SQLitePath != "/tmp/tradepulse/tradepulse.db" {
		t.Errorf("Storage.SQLitePath = %q, want %q", cfg.Storage.SQLitePath, "/tmp/tradepulse/tradepulse.db")
	}
	if cfg.AI.APIKey != "test-key" {
		t.Errorf("AI.APIKey = %q, want %q", cfg.AI.APIKey, "test-key")
	}
	if cfg.AI.Model != "gemini-3-flash-preview" {
		t.Errorf("AI.Model = %q, want %q", cfg.AI.Model, "gemini-3-flash-preview")
	}
	if cfg.Logging.Level != "debug" {
		t.Errorf("Logging.Level = %q, want %q", cfg.Logging.Level, "debug")
	}
	if cfg.Logging.Format != "text" {
		t.Errorf("Logging.Format = %q, want %q", cfg.Logging.Format, "text")
	}
}

func TestLoadDerivedDefaults(t *testing.T) {
	clearEnv(t)
	path := writeConfig(t, `
storage:
  data_dir: "/var/lib/tradepulse"
`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() returned error: %v", err)
	}

	wantDB := filepath.Join("/var/lib/tradepulse", "tradepulse.db")
	if cfg.Storage.SQLitePath != wantDB {
		t.Errorf("Storage.SQLitePath = %q, want derived %q", cfg.Storage.SQLitePath, wantDB)
	}
	wantLog := filepath.Join("/var/lib/tradepulse", "tradepulse.log")
	if cfg.Logging.File != wantLog {
		t.Errorf("Logging.File = %q, want derived %q", cfg.Logging.File, wantLog)
	}
	if cfg.AI.Model != "gemini-3-flash-preview" {
		t.Errorf("AI.Model = %q, want default model", cfg.AI.Model)
	}
	if cfg.Logging.Level != "info" {
		t.Errorf("Logging.Level = %q, want default info", cfg.Logging.Level)
	}
}

func TestLoadEnvOverrides(t *testing.T) {
	clearEnv(t)
	path := writeConfig(t, `
storage:
  data_dir: "/original/data"
ai:
  api_key: "yaml-key"
`)

	t.Setenv("DATA_DIR", "/env/data")
	t.Setenv("GEMINI_API_KEY", "env-key")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() returned error: %v", err)
	}

	if cfg.Storage.DataDir != "/env/data" {
		t.Errorf("Storage.DataDir = %q, want %q (env override)", cfg.Storage.DataDir, "/env/data")
	}
	if cfg.AI.APIKey != "env-key" {
		t.Errorf("AI.APIKey = %q, want %q (env override)", cfg.AI.APIKey, "env-key")
	}
	// The derived SQLite path comes from the YAML data dir; only DATA_DIR
	// itself was overridden.
	wantDB := filepath.Join("/original/data", "tradepulse.db")
	if cfg.Storage.SQLitePath != wantDB {
		t.Errorf("Storage.SQLitePath = %q, want %q", cfg.Storage.SQLitePath, wantDB)
	}
}

func TestAPIKeyPrecedence(t *testing.T) {
	clearEnv(t)
	path := writeConfig(t, `
ai:
  api_key: "yaml-key"
`)

	t.Setenv("API_KEY", "legacy-key")
	t.Setenv("GEMINI_API_KEY", "canonical-key")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() returned error: %v", err)
	}
	if cfg.AI.APIKey != "canonical-key" {
		t.Errorf("AI.APIKey = %q, want GEMINI_API_KEY to win", cfg.AI.APIKey)
	}
}

func TestDefaultWithoutFile(t *testing.T) {
	clearEnv(t)

	cfg := Default()
	if cfg.Storage.DataDir == "" {
		t.Error("Default() left DataDir empty")
	}
	if cfg.Storage.SQLitePath == "" {
		t.Error("Default() left SQLitePath empty")
	}
	if cfg.AI.Model != "gemini-3-flash-preview" {
		t.Errorf("Default() model = %q, want gemini-3-flash-preview", cfg.AI.Model)
	}
}

func TestLoadShippedExample(t *testing.T) {
	clearEnv(t)
	cfg, err := Load(filepath.Join("..", "..", "config", "tradepulse.yaml"))
	if err != nil {
		t.Fatalf("Load() returned error: %v", err)
	}

	if cfg.AI.Model != "gemini-3-flash-preview" {
		t.Errorf("AI.Model = %q, want gemini-3-flash-preview", cfg.AI.Model)
	}
	if cfg.Logging.Level != "info" || cfg.Logging.Format != "json" {
		t.Errorf("Logging = %q/%q, want info/json", cfg.Logging.Level, cfg.Logging.Format)
	}
	if cfg.Storage.DataDir == "" || cfg.Storage.SQLitePath == "" || cfg.Logging.File == "" {
		t.Errorf("derived paths not filled: %+v", cfg)
	}
}
