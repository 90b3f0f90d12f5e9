// Package config loads the service configuration from defaults, an optional
// config file and the environment.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"
	"time"

	"github.com/spf13/viper"
	"go.uber.org/zap/zapcore"
)

// Config represents the application configuration
type Config struct {
	Debug    bool
	LogLevel string
	Server   ServerConfig
	Database DatabaseConfig
	Health   HealthConfig
}

// ServerConfig represents HTTP server configuration
type ServerConfig struct {
	Port            int
	CORSOrigins     []string
	ShutdownTimeout time.Duration
}

// DatabaseConfig represents database connectivity configuration
type DatabaseConfig struct {
	URL             string
	QueryTimeout    time.Duration
	MaxOpenConns    int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration
	AutoMigrate     bool
}

// HealthConfig configures the health-check probe.
type HealthConfig struct {
	Query string
}

var defaults = map[string]any{
	"DEBUG":                false,
	"LOG_LEVEL":            "info",
	"WEB_PORT":             8000,
	"CORS_ORIGINS":         "*",
	"SHUTDOWN_TIMEOUT":     "10s",
	"DB_QUERY_TIMEOUT":     "5s",
	"DB_MAX_OPEN_CONNS":    10,
	"DB_MAX_IDLE_CONNS":    5,
	"DB_CONN_MAX_LIFETIME": "30m",
	"AUTO_MIGRATE":         true,
	"HEALTH_QUERY":         "SELECT 1",
}

// LoadConfig reads configuration. paths are optional config files (any format
// viper understands); missing files are skipped. Environment variables always
// win over file values.
func LoadConfig(paths ...string) (*Config, error) {
	v := viper.New()
	for key, value := range defaults {
		v.SetDefault(key, value)
	}
	v.AutomaticEnv()

	for _, path := range paths {
		v.SetConfigFile(path)
		if err := v.MergeInConfig(); err != nil {
			var notFound viper.ConfigFileNotFoundError
			if errors.As(err, &notFound) || isMissingFile(err) {
				continue
			}
			return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
		}
	}

	return fromViper(v)
}

func fromViper(v *viper.Viper) (*Config, error) {
	cfg := &Config{
		Debug:    v.GetBool("DEBUG"),
		LogLevel: v.GetString("LOG_LEVEL"),
		Server: ServerConfig{
			Port:            v.GetInt("WEB_PORT"),
			CORSOrigins:     splitList(v.GetString("CORS_ORIGINS")),
			ShutdownTimeout: v.GetDuration("SHUTDOWN_TIMEOUT"),
		},
		Database: DatabaseConfig{
			URL:             v.GetString("DB_URL"),
			QueryTimeout:    v.GetDuration("DB_QUERY_TIMEOUT"),
			MaxOpenConns:    v.GetInt("DB_MAX_OPEN_CONNS"),
			MaxIdleConns:    v.GetInt("DB_MAX_IDLE_CONNS"),
			ConnMaxLifetime: v.GetDuration("DB_CONN_MAX_LIFETIME"),
			AutoMigrate:     v.GetBool("AUTO_MIGRATE"),
		},
		Health: HealthConfig{
			Query: v.GetString("HEALTH_QUERY"),
		},
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks the configuration for values the service cannot start with.
func (c *Config) Validate() error {
	if c.Database.URL == "" {
		return fmt.Errorf("DB_URL is required")
	}
	if _, err := zapcore.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("LOG_LEVEL %q is not a valid level", c.LogLevel)
	}
	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		return fmt.Errorf("WEB_PORT must be between 1 and 65535, got %d", c.Server.Port)
	}
	if c.Database.QueryTimeout <= 0 {
		return fmt.Errorf("DB_QUERY_TIMEOUT must be positive")
	}
	if c.Database.MaxOpenConns < 0 || c.Database.MaxIdleConns < 0 {
		return fmt.Errorf("connection pool sizes must be non-negative")
	}
	if c.Database.MaxOpenConns > 0 && c.Database.MaxIdleConns > c.Database.MaxOpenConns {
		return fmt.Errorf("DB_MAX_IDLE_CONNS cannot be greater than DB_MAX_OPEN_CONNS")
	}
	if strings.TrimSpace(c.Health.Query) == "" {
		return fmt.Errorf("HEALTH_QUERY must not be empty")
	}
	for _, origin := range c.Server.CORSOrigins {
		if origin != "*" && !strings.HasPrefix(origin, "http://") && !strings.HasPrefix(origin, "https://") {
			return fmt.Errorf("CORS_ORIGINS entry %q must be \"*\" or start with http:// or https://", origin)
		}
	}
	return nil
}

// Addr returns the listen address for the HTTP server.
func (c *Config) Addr() string {
	return fmt.Sprintf(":%d", c.Server.Port)
}

func isMissingFile(err error) bool {
	return errors.Is(err, fs.ErrNotExist)
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
