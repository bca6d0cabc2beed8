// Package config loads server and CLI configuration.
//
// Precedence, lowest first: built-in defaults, the YAML file named by
// STUDYFLOW_CONFIG, then environment variables. A .env file in the working
// directory is loaded into the environment first, without overriding
// variables that are already set.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Config holds application configuration.
type Config struct {
	Server  ServerConfig  `yaml:"server"`
	AI      AIConfig      `yaml:"ai"`
	Logging LoggingConfig `yaml:"logging"`
}

// ServerConfig configures the HTTP server and local storage.
type ServerConfig struct {
	Port         int    `yaml:"port"`
	DatabasePath string `yaml:"database_path"`

	// StaticPath is an optional directory with a built frontend.
	// Empty disables static file serving.
	StaticPath string `yaml:"static_path"`
}

// AIConfig configures the AI gateway.
type AIConfig struct {
	APIKey string `yaml:"api_key"`
	Model  string `yaml:"model"`

	// Timeout bounds each AI call ("30s", "2m"). Empty means no timeout.
	Timeout string `yaml:"timeout"`
}

// LoggingConfig configures logging.
type LoggingConfig struct {
	Level string `yaml:"level"` // debug, info, warn, error
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Server: ServerConfig{
			Port:         8080,
			DatabasePath: "./data/studyflow.db",
		},
		AI: AIConfig{
			Model: "gemini-2.5-flash",
		},
		Logging: LoggingConfig{
			Level: "info",
		},
	}
}

// Load builds the configuration from defaults, the optional YAML file and
// the environment.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("failed to load .env: %w", err)
	}

	cfg := Default()
	if path := os.Getenv("STUDYFLOW_CONFIG"); path != "" {
		if err := cfg.LoadFile(path); err != nil {
			return nil, err
		}
	}
	if err := cfg.applyEnv(); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// LoadFile overlays the YAML file at path onto cfg.
func (c *Config) LoadFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read config file: %w", err)
	}
	if err := yaml.Unmarshal(data, c); err != nil {
		return fmt.Errorf("failed to parse config file %s: %w", path, err)
	}
	return nil
}

func (c *Config) applyEnv() error {
	if v := os.Getenv("PORT"); v != "" {
		port, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("invalid PORT %q: %w", v, err)
		}
		c.Server.Port = port
	}
	c.Server.DatabasePath = getEnv("DB_PATH", c.Server.DatabasePath)
	c.Server.StaticPath = getEnv("STATIC_PATH", c.Server.StaticPath)

	// API_KEY is the name the web client used.
	c.AI.APIKey = getEnv("GEMINI_API_KEY", getEnv("API_KEY", c.AI.APIKey))
	c.AI.Model = getEnv("GEMINI_MODEL", c.AI.Model)
	c.AI.Timeout = getEnv("AI_TIMEOUT", c.AI.Timeout)

	c.Logging.Level = getEnv("LOG_LEVEL", c.Logging.Level)
	return nil
}

// Validate checks values that cannot be checked while parsing.
func (c *Config) Validate() error {
	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		return fmt.Errorf("invalid port %d", c.Server.Port)
	}
	if c.Server.DatabasePath == "" {
		return fmt.Errorf("database path is required")
	}
	if _, err := c.AI.TimeoutDuration(); err != nil {
		return err
	}
	return nil
}

// TimeoutDuration parses AI.Timeout. An empty value is zero (no timeout).
func (a AIConfig) TimeoutDuration() (time.Duration, error) {
	if a.Timeout == "" {
		return 0, nil
	}
	d, err := time.ParseDuration(a.Timeout)
	if err != nil {
		return 0, fmt.Errorf("invalid AI timeout %q: %w", a.Timeout, err)
	}
	if d < 0 {
		return 0, fmt.Errorf("invalid AI timeout %q: negative", a.Timeout)
	}
	return d, nil
}

// getEnv reads an environment variable or returns a default value
func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
