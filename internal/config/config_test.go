// ABOUTME: Tests for configuration loading and parsing
// ABOUTME: Covers YAML loading, env var expansion, validation, and defaults

package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()

	configPath := filepath.Join(t.TempDir(), "roster.yaml")
	if err := os.WriteFile(configPath, []byte(content), 0644); err != nil {
		t.Fatalf("writing config: %v", err)
	}
	return configPath
}

func TestLoad_ValidConfig(t *testing.T) {
	configPath := writeConfig(t, `
server:
  api_addr: "0.0.0.0:8080"
  public_addr: "0.0.0.0:8081"

database:
  path: "./test.db"

auth:
  jwt_secret: "0123456789abcdef0123456789abcdef"
  token_ttl: "12h"

logging:
  level: "debug"
  format: "json"
`)

	cfg, err := Load(configPath)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.Server.APIAddr != "0.0.0.0:8080" {
		t.Errorf("APIAddr = %q", cfg.Server.APIAddr)
	}
	if cfg.Server.PublicAddr != "0.0.0.0:8081" {
		t.Errorf("PublicAddr = %q", cfg.Server.PublicAddr)
	}
	if cfg.Database.Path != "./test.db" {
		t.Errorf("Database.Path = %q", cfg.Database.Path)
	}
	if cfg.Auth.TokenTTL != 12*time.Hour {
		t.Errorf("TokenTTL = %v, want 12h", cfg.Auth.TokenTTL)
	}
	if cfg.Logging.Level != "debug" || cfg.Logging.Format != "json" {
		t.Errorf("Logging = %+v", cfg.Logging)
	}
}

func TestLoad_Defaults(t *testing.T) {
	configPath := writeConfig(t, `
database:
  path: "./test.db"

auth:
  jwt_secret: "0123456789abcdef0123456789abcdef"
`)

	cfg, err := Load(configPath)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.Server.APIAddr != ":3000" {
		t.Errorf("APIAddr default = %q, want :3000", cfg.Server.APIAddr)
	}
	if cfg.Server.PublicAddr != ":3001" {
		t.Errorf("PublicAddr default = %q, want :3001", cfg.Server.PublicAddr)
	}
	if cfg.Auth.TokenTTL != 24*time.Hour {
		t.Errorf("TokenTTL default = %v, want 24h", cfg.Auth.TokenTTL)
	}
	if cfg.Logging.Level != "info" {
		t.Errorf("Logging.Level default = %q, want info", cfg.Logging.Level)
	}
}

func TestLoad_EnvExpansion(t *testing.T) {
	t.Setenv("ROSTER_TEST_SECRET", "0123456789abcdef0123456789abcdef")

	configPath := writeConfig(t, `
database:
  path: "./test.db"

auth:
  jwt_secret: "${ROSTER_TEST_SECRET}"
`)

	cfg, err := Load(configPath)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.Auth.JWTSecret != "0123456789abcdef0123456789abcdef" {
		t.Errorf("JWTSecret = %q, env var not expanded", cfg.Auth.JWTSecret)
	}
}

func TestLoad_MissingSecret(t *testing.T) {
	configPath := writeConfig(t, `
database:
  path: "./test.db"
`)

	_, err := Load(configPath)
	if err == nil || !strings.Contains(err.Error(), "jwt_secret") {
		t.Errorf("Load() error = %v, want jwt_secret validation failure", err)
	}
}

func TestLoad_ShortSecret(t *testing.T) {
	configPath := writeConfig(t, `
database:
  path: "./test.db"

auth:
  jwt_secret: "too-short"
`)

	_, err := Load(configPath)
	if err == nil || !strings.Contains(err.Error(), "jwt_secret") {
		t.Errorf("Load() error = %v, want jwt_secret length failure", err)
	}
}

func TestLoad_MissingDatabasePath(t *testing.T) {
	configPath := writeConfig(t, `
auth:
  jwt_secret: "0123456789abcdef0123456789abcdef"
`)

	_, err := Load(configPath)
	if err == nil || !strings.Contains(err.Error(), "database.path") {
		t.Errorf("Load() error = %v, want database.path validation failure", err)
	}
}

func TestLoad_BadDuration(t *testing.T) {
	configPath := writeConfig(t, `
database:
  path: "./test.db"

auth:
  jwt_secret: "0123456789abcdef0123456789abcdef"
  token_ttl: "one day"
`)

	_, err := Load(configPath)
	if err == nil || !strings.Contains(err.Error(), "token_ttl") {
		t.Errorf("Load() error = %v, want token_ttl parse failure", err)
	}
}

func TestLoad_NegativeTokenTTL(t *testing.T) {
	configPath := writeConfig(t, `
database:
  path: "./test.db"

auth:
  jwt_secret: "0123456789abcdef0123456789abcdef"
  token_ttl: "-1h"
`)

	_, err := Load(configPath)
	if err == nil || !strings.Contains(err.Error(), "must not be negative") {
		t.Errorf("Load() error = %v, want negative token_ttl rejection", err)
	}
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "does-not-exist.yaml"))
	if err == nil {
		t.Error("Load() should fail for a missing file")
	}
}
