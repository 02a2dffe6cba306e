package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"
	_ "time/tzdata"

	"github.com/caarlos0/env/v11"
	"gopkg.in/yaml.v3"

	"flavortown/internal/storage"
)

// Config holds flavortown settings. Values come from defaults, then the YAML
// file, then FLAVORTOWN_* environment variables.
type Config struct {
	// DBPath is the SQLite state file.
	DBPath string `yaml:"db_path" env:"FLAVORTOWN_DB_PATH"`
	// Timezone names the IANA zone used for calendar days. "Local" or empty
	// means the system zone.
	Timezone string `yaml:"timezone" env:"FLAVORTOWN_TIMEZONE"`
	// SessionIdle is how long a play session survives between commands.
	// Zero makes every process its own session.
	SessionIdle time.Duration `yaml:"session_idle" env:"FLAVORTOWN_SESSION_IDLE"`

	Log LogConfig `yaml:"log"`
}

type LogConfig struct {
	Level  string `yaml:"level" env:"FLAVORTOWN_LOG_LEVEL"`   // debug, info, warn, error
	Format string `yaml:"format" env:"FLAVORTOWN_LOG_FORMAT"` // json or console
}

func DefaultConfig() *Config {
	dbPath, err := storage.DefaultDBPath()
	if err != nil {
		dbPath = filepath.Join(".flavortown", "state.db")
	}
	return &Config{
		DBPath:      dbPath,
		Timezone:    "Local",
		SessionIdle: 30 * time.Minute,
		Log: LogConfig{
			Level:  "warn",
			Format: "console",
		},
	}
}

// DefaultPath returns ~/.flavortown/config.yaml.
func DefaultPath() string {
	return filepath.Join(homeDir(), ".flavortown", "config.yaml")
}

// Load reads the YAML file at path and applies environment overrides. A
// missing file yields the defaults.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	switch {
	case err == nil:
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config: %w", err)
		}
	case errors.Is(err, os.ErrNotExist):
	default:
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	if err := ParseEnv(cfg); err != nil {
		return nil, err
	}
	cfg.DBPath = expandHome(cfg.DBPath)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// ParseEnv loads configuration from environment variables.
func ParseEnv(target any) error {
	if err := env.Parse(target); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}
	return nil
}

func (c *Config) Validate() error {
	if strings.TrimSpace(c.DBPath) == "" {
		return errors.New("config: db_path is empty")
	}
	if _, err := c.Location(); err != nil {
		return err
	}
	if c.SessionIdle < 0 {
		return errors.New("config: session_idle must not be negative")
	}
	switch strings.ToLower(c.Log.Level) {
	case "", "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("config: unknown log level %q", c.Log.Level)
	}
	switch strings.ToLower(c.Log.Format) {
	case "", "json", "console":
	default:
		return fmt.Errorf("config: unknown log format %q", c.Log.Format)
	}
	return nil
}

// Location resolves Timezone.
func (c *Config) Location() (*time.Location, error) {
	tz := strings.TrimSpace(c.Timezone)
	if tz == "" || strings.EqualFold(tz, "local") {
		return time.Local, nil
	}
	loc, err := time.LoadLocation(tz)
	if err != nil {
		return nil, fmt.Errorf("config: timezone %q: %w", tz, err)
	}
	return loc, nil
}

// Save writes the configuration as YAML, creating the directory.
func (c *Config) Save(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}
	return nil
}

func homeDir() string {
	home, err := os.UserHomeDir()
	if err != nil || home == "" {
		return "."
	}
	return home
}

func expandHome(p string) string {
	if p == "~" {
		return homeDir()
	}
	if strings.HasPrefix(p, "~/") {
		return filepath.Join(homeDir(), p[2:])
	}
	return p
}
