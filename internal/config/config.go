// Tessera - Multi-Tenant Event Ticketing Platform
// Copyright 2026 Tessera Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tessera-hq/tessera

// Package config provides centralized configuration for all Tessera
// components: HTTP server, PostgreSQL storage, the resolved-view cache,
// API pagination, security, and logging.
//
// Configuration Loading Order (Koanf v2):
//  1. Defaults: built-in sensible defaults for all optional settings
//  2. Config File: optional YAML config file (config.yaml)
//  3. Environment Variables: override any setting
//
// Thread safety: Config is immutable after Load() and safe for concurrent
// read access from multiple goroutines.
package config

import (
	"time"
)

// Config holds all application configuration loaded from environment
// variables and config files.
type Config struct {
	Server   ServerConfig   `koanf:"server"`
	Database DatabaseConfig `koanf:"database"`
	Cache    CacheConfig    `koanf:"cache"`
	API      APIConfig      `koanf:"api"`
	Security SecurityConfig `koanf:"security"`
	Logging  LoggingConfig  `koanf:"logging"`
}

// ServerConfig holds HTTP server settings.
//
// Environment Variables:
//   - SERVER_HOST: bind address (default: 0.0.0.0)
//   - SERVER_PORT: listen port (default: 8787)
//   - SERVER_TIMEOUT: read/write timeout (default: 30s)
//   - ENVIRONMENT: development or production (default: development)
type ServerConfig struct {
	Host        string        `koanf:"host"`
	Port        int           `koanf:"port"`
	Timeout     time.Duration `koanf:"timeout"`
	Environment string        `koanf:"environment"`
}

// DatabaseConfig holds PostgreSQL connection settings.
//
// Environment Variables:
//   - DATABASE_URL: PostgreSQL DSN (required)
//   - DATABASE_MAX_OPEN_CONNS / DATABASE_MAX_IDLE_CONNS: pool sizing
//   - DATABASE_CONN_MAX_LIFETIME: connection recycling interval
//   - DATABASE_AUTO_MIGRATE: run schema migration at startup (default: true)
type DatabaseConfig struct {
	URL             string        `koanf:"url"`
	MaxOpenConns    int           `koanf:"max_open_conns"`
	MaxIdleConns    int           `koanf:"max_idle_conns"`
	ConnMaxLifetime time.Duration `koanf:"conn_max_lifetime"`
	AutoMigrate     bool          `koanf:"auto_migrate"`
}

// CacheConfig holds settings for the badger-backed resolved-view cache
// serving the public event page.
//
// Environment Variables:
//   - CACHE_ENABLED: enable the resolved-view cache (default: true)
//   - CACHE_PATH: badger data directory (default: /data/tessera/cache)
//   - CACHE_IN_MEMORY: keep the cache off disk (default: false; tests use true)
//   - CACHE_TTL: resolved-view entry lifetime (default: 5m)
//   - CACHE_GC_INTERVAL: badger value-log GC cadence (default: 10m)
type CacheConfig struct {
	Enabled    bool          `koanf:"enabled"`
	Path       string        `koanf:"path"`
	InMemory   bool          `koanf:"in_memory"`
	TTL        time.Duration `koanf:"ttl"`
	GCInterval time.Duration `koanf:"gc_interval"`
}

// APIConfig holds pagination and response limits.
type APIConfig struct {
	DefaultPageSize int `koanf:"default_page_size"`
	MaxPageSize     int `koanf:"max_page_size"`
}

// SecurityConfig holds authentication and rate limiting settings.
//
// Environment Variables:
//   - JWT_SECRET: 32+ character secret for bearer token verification
//   - SECURITY_TOKEN_TTL: token lifetime for tokens issued by tooling
//   - SECURITY_AUTH_DISABLED: disable authentication (development ONLY)
//   - SECURITY_RATE_LIMIT_REQS / SECURITY_RATE_LIMIT_WINDOW: admin surfaces
//   - SECURITY_PUBLIC_RATE_LIMIT_REQS: public event page limiter
//   - CORS_ORIGINS: comma-separated allowed origins
type SecurityConfig struct {
	JWTSecret           string        `koanf:"jwt_secret"`
	TokenTTL            time.Duration `koanf:"token_ttl"`
	AuthDisabled        bool          `koanf:"auth_disabled"`
	RateLimitReqs       int           `koanf:"rate_limit_reqs"`
	RateLimitWindow     time.Duration `koanf:"rate_limit_window"`
	RateLimitDisabled   bool          `koanf:"rate_limit_disabled"`
	PublicRateLimitReqs int           `koanf:"public_rate_limit_reqs"`
	CORSOrigins         []string      `koanf:"cors_origins"`
}

// LoggingConfig holds log level and output format.
type LoggingConfig struct {
	Level  string `koanf:"level"`
	Format string `koanf:"format"`
	Caller bool   `koanf:"caller"`
}

// IsDevelopment returns true when the server runs in development mode.
func (c *Config) IsDevelopment() bool {
	return c.Server.Environment != "production"
}

// Load reads configuration from defaults, an optional YAML file, and
// environment variables, then validates it.
func Load() (*Config, error) {
	return LoadWithKoanf()
}
