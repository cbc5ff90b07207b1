package config

import (
	"fmt"

	"github.com/kelseyhightower/envconfig"

	"github.com/codeforge-ide/codeforge/backend/internal/fs"
)

// Config holds all application configuration.
type Config struct {
	Server     ServerConfig
	Filesystem FilesystemConfig
	Logging    LogConfig
	RateLimit  RateLimitConfig
}

// ServerConfig holds HTTP server configuration.
type ServerConfig struct {
	Port string `envconfig:"PORT" default:"8000"`
	Host string `envconfig:"HOST" default:"0.0.0.0"`
}

// FilesystemConfig holds filesystem service configuration.
type FilesystemConfig struct {
	Overwrite           bool `envconfig:"FS_OVERWRITE" default:"false"`
	CreateParentDirs    bool `envconfig:"FS_CREATE_PARENT_DIRS" default:"true"`
	PreservePermissions bool `envconfig:"FS_PRESERVE_PERMISSIONS" default:"true"`
	FollowSymlinks      bool `envconfig:"FS_FOLLOW_SYMLINKS" default:"false"`
	WatchBuffer         int  `envconfig:"FS_WATCH_BUFFER" default:"256"`
}

// LogConfig holds logging configuration.
type LogConfig struct {
	Level       string `envconfig:"LOG_LEVEL" default:"info"`
	Development bool   `envconfig:"LOG_DEV" default:"false"`
}

// RateLimitConfig holds rate limiting configuration.
type RateLimitConfig struct {
	RequestsPerSecond int  `envconfig:"RATE_LIMIT_RPS" default:"100"`
	Burst             int  `envconfig:"RATE_LIMIT_BURST" default:"200"`
	Enabled           bool `envconfig:"RATE_LIMIT_ENABLED" default:"true"`
}

// FSConfig converts the filesystem section into the service's config
// record.
func (c *Config) FSConfig() fs.Config {
	return fs.Config{
		Overwrite:           c.Filesystem.Overwrite,
		CreateParentDirs:    c.Filesystem.CreateParentDirs,
		PreservePermissions: c.Filesystem.PreservePermissions,
		FollowSymlinks:      c.Filesystem.FollowSymlinks,
	}
}

// Load loads configuration from environment variables.
func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	return &cfg, nil
}

// LoadOrDefault loads configuration from environment or returns default.
func LoadOrDefault() *Config {
	cfg, err := Load()
	if err != nil {
		return Default()
	}
	return cfg
}

// Default returns default configuration.
func Default() *Config {
	return &Config{
		Server: ServerConfig{
			Port: "8000",
			Host: "0.0.0.0",
		},
		Filesystem: FilesystemConfig{
			Overwrite:           false,
			CreateParentDirs:    true,
			PreservePermissions: true,
			FollowSymlinks:      false,
			WatchBuffer:         256,
		},
		Logging: LogConfig{
			Level:       "info",
			Development: false,
		},
		RateLimit: RateLimitConfig{
			RequestsPerSecond: 100,
			Burst:             200,
			Enabled:           true,
		},
	}
}
