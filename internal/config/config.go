// ABOUTME: Configuration loading and parsing for roster services
// ABOUTME: Supports YAML files with environment variable expansion and duration parsing

package config

import (
	"fmt"
	"os"
	"regexp"
	"time"

	"github.com/rosterhq/roster/internal/auth"
	"gopkg.in/yaml.v3"
)

// Config represents the complete roster configuration, shared by both the
// interactive API service and the public API service.
type Config struct {
	Server   ServerConfig   `yaml:"server"`
	Database DatabaseConfig `yaml:"database"`
	Auth     AuthConfig     `yaml:"auth"`
	Logging  LoggingConfig  `yaml:"logging"`
}

// ServerConfig holds listen address configuration
type ServerConfig struct {
	// APIAddr is the listen address for the interactive API (register/login/candidates)
	APIAddr string `yaml:"api_addr"`
	// PublicAddr is the listen address for the API-key-protected public API
	PublicAddr string `yaml:"public_addr"`
}

// DatabaseConfig holds database configuration
type DatabaseConfig struct {
	Path string `yaml:"path"`
}

// AuthConfig holds authentication configuration
type AuthConfig struct {
	// JWTSecret signs session tokens. Set it via ${ROSTER_JWT_SECRET} rather
	// than inline so the secret never lands in the config file.
	JWTSecret string `yaml:"jwt_secret"`

	// TokenTTL is how long issued session tokens stay valid
	TokenTTL time.Duration `yaml:"-"`

	// Raw string value for YAML unmarshaling
	TokenTTLRaw string `yaml:"token_ttl"`
}

// LoggingConfig holds logging configuration
type LoggingConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

// Load reads a configuration file from the given path and returns a parsed Config.
// Environment variables in the format ${VAR_NAME} are expanded.
// Duration strings are parsed into time.Duration values.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	// Expand environment variables in the raw YAML content
	expandedData := expandEnvVars(string(data))

	var cfg Config
	if err := yaml.Unmarshal([]byte(expandedData), &cfg); err != nil {
		return nil, fmt.Errorf("parsing config file: %w", err)
	}

	if err := parseDurations(&cfg); err != nil {
		return nil, fmt.Errorf("parsing durations: %w", err)
	}

	cfg.applyDefaults()

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("validating config: %w", err)
	}

	return &cfg, nil
}

// expandEnvVars replaces ${VAR_NAME} patterns with the corresponding environment variable values.
// If the environment variable is not set, it is replaced with an empty string.
func expandEnvVars(s string) string {
	re := regexp.MustCompile(`\$\{([^}]+)\}`)

	return re.ReplaceAllStringFunc(s, func(match string) string {
		varName := re.FindStringSubmatch(match)[1]
		return os.Getenv(varName)
	})
}

// applyDefaults fills in defaults for optional fields.
func (c *Config) applyDefaults() {
	if c.Server.APIAddr == "" {
		c.Server.APIAddr = ":3000"
	}
	if c.Server.PublicAddr == "" {
		c.Server.PublicAddr = ":3001"
	}
	if c.Auth.TokenTTL == 0 {
		c.Auth.TokenTTL = auth.DefaultTokenTTL
	}
	if c.Logging.Level == "" {
		c.Logging.Level = "info"
	}
}

// Validate checks that all required configuration fields are present and valid.
// Returns an error describing the first validation failure encountered.
func (c *Config) Validate() error {
	if c.Database.Path == "" {
		return fmt.Errorf("database.path is required")
	}

	if c.Auth.JWTSecret == "" {
		return fmt.Errorf("auth.jwt_secret is required (set ROSTER_JWT_SECRET and reference it as ${ROSTER_JWT_SECRET})")
	}
	if len(c.Auth.JWTSecret) < auth.MinSecretLength {
		return fmt.Errorf("auth.jwt_secret must be at least %d bytes, got %d", auth.MinSecretLength, len(c.Auth.JWTSecret))
	}

	if c.Auth.TokenTTL < 0 {
		return fmt.Errorf("auth.token_ttl must not be negative, got %s", c.Auth.TokenTTL)
	}

	return nil
}

// parseDurations converts the raw duration strings into time.Duration values
func parseDurations(cfg *Config) error {
	var err error

	if cfg.Auth.TokenTTLRaw != "" {
		cfg.Auth.TokenTTL, err = time.ParseDuration(cfg.Auth.TokenTTLRaw)
		if err != nil {
			return fmt.Errorf("parsing token_ttl %q: %w", cfg.Auth.TokenTTLRaw, err)
		}
	}

	return nil
}
