// Package config loads service settings from defaults, an optional YAML
// file and ANIME_SERVICE_* environment variables.
package config

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/spf13/viper"

	"github.com/msomdec/anime-service/internal/repository/sqlite"
)

const (
	envPrefix   = "ANIME_SERVICE"
	defaultAddr = ":8080"
)

// Store drivers.
const (
	DriverMemory = "memory"
	DriverSQLite = "sqlite"
)

// Config holds all configuration for the service.
type Config struct {
	Server   ServerConfig   `mapstructure:"server"`
	Store    StoreConfig    `mapstructure:"store"`
	Fixtures FixturesConfig `mapstructure:"fixtures"`
	Logging  LoggingConfig  `mapstructure:"logging"`
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Addr            string        `mapstructure:"addr"`
	APIKeyHeader    string        `mapstructure:"api_key_header"`
	ShutdownTimeout time.Duration `mapstructure:"shutdown_timeout"`
}

// StoreConfig selects the repository backend.
type StoreConfig struct {
	Driver string `mapstructure:"driver"`
	DSN    string `mapstructure:"dsn"`
}

// FixturesConfig points at the seed data file. Empty means the embedded set.
type FixturesConfig struct {
	Path string `mapstructure:"path"`
}

// LoggingConfig holds structured logging settings.
type LoggingConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// Load reads configuration. When path is empty, config.yaml in the working
// directory is used if present.
func Load(path string) (*Config, error) {
	v := viper.New()

	v.SetDefault("server.addr", defaultAddr)
	v.SetDefault("server.api_key_header", "x-api-key")
	v.SetDefault("server.shutdown_timeout", 5*time.Second)
	v.SetDefault("store.driver", DriverMemory)
	v.SetDefault("store.dsn", sqlite.MemoryDSN)
	v.SetDefault("fixtures.path", "")
	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.format", "multi")

	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
	}

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	_ = v.BindEnv("port", "PORT")

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if path != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("reading config: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshalling config: %w", err)
	}

	// PORT is honored for platforms that inject it, unless an address was
	// configured explicitly.
	if port := v.GetString("port"); port != "" && cfg.Server.Addr == defaultAddr {
		cfg.Server.Addr = ":" + port
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("validating config: %w", err)
	}
	return &cfg, nil
}

// Validate checks that the configuration is usable.
func (c *Config) Validate() error {
	if c.Server.Addr == "" {
		return fmt.Errorf("server.addr must not be empty")
	}
	if c.Server.APIKeyHeader == "" {
		return fmt.Errorf("server.api_key_header must not be empty")
	}
	if c.Server.ShutdownTimeout <= 0 {
		return fmt.Errorf("server.shutdown_timeout must be greater than 0")
	}
	switch c.Store.Driver {
	case DriverMemory:
	case DriverSQLite:
		if c.Store.DSN == "" {
			return fmt.Errorf("store.dsn must not be empty for the sqlite driver")
		}
	default:
		return fmt.Errorf("store.driver must be %q or %q, got %q", DriverMemory, DriverSQLite, c.Store.Driver)
	}
	if _, err := c.Logging.SlogLevel(); err != nil {
		return err
	}
	switch c.Logging.Format {
	case "text", "json", "multi":
	default:
		return fmt.Errorf("logging.format must be text, json or multi, got %q", c.Logging.Format)
	}
	return nil
}

// SlogLevel parses Level into a slog.Level.
func (l LoggingConfig) SlogLevel() (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(l.Level)); err != nil {
		return 0, fmt.Errorf("logging.level: %w", err)
	}
	return level, nil
}
