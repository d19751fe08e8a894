// Tessera - Multi-Tenant Event Ticketing Platform
// Copyright 2026 Tessera Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tessera-hq/tessera

package config

import (
	"errors"
	"fmt"
	"strings"
)

// Validation errors returned by Config.Validate.
var (
	// ErrMissingDatabaseURL indicates DATABASE_URL was not configured.
	ErrMissingDatabaseURL = errors.New("database URL is required (set DATABASE_URL)")

	// ErrMissingJWTSecret indicates authentication is enabled without a secret.
	ErrMissingJWTSecret = errors.New("JWT secret is required when authentication is enabled (set JWT_SECRET)")

	// ErrWeakJWTSecret indicates the JWT secret is too short for HS256.
	ErrWeakJWTSecret = errors.New("JWT secret must be at least 32 characters")
)

const minJWTSecretLength = 32

// Validate checks the configuration for missing or malformed values.
// It is called automatically by Load.
func (c *Config) Validate() error {
	if c.Server.Port < 1 || c.Server.Port > 65535 {
		return fmt.Errorf("server port must be between 1 and 65535, got %d", c.Server.Port)
	}

	if c.Server.Timeout <= 0 {
		return fmt.Errorf("server timeout must be positive, got %s", c.Server.Timeout)
	}

	if strings.TrimSpace(c.Database.URL) == "" {
		return ErrMissingDatabaseURL
	}

	if !c.Security.AuthDisabled {
		secret := strings.TrimSpace(c.Security.JWTSecret)
		if secret == "" {
			return ErrMissingJWTSecret
		}
		if len(secret) < minJWTSecretLength {
			return ErrWeakJWTSecret
		}
	}

	if c.API.DefaultPageSize < 1 {
		return fmt.Errorf("default page size must be positive, got %d", c.API.DefaultPageSize)
	}
	if c.API.MaxPageSize < c.API.DefaultPageSize {
		return fmt.Errorf("max page size (%d) must be >= default page size (%d)",
			c.API.MaxPageSize, c.API.DefaultPageSize)
	}

	if c.Cache.Enabled && !c.Cache.InMemory && strings.TrimSpace(c.Cache.Path) == "" {
		return fmt.Errorf("cache path is required when the cache is enabled on disk")
	}
	if c.Cache.Enabled && c.Cache.TTL <= 0 {
		return fmt.Errorf("cache TTL must be positive, got %s", c.Cache.TTL)
	}

	if !c.Security.RateLimitDisabled {
		if c.Security.RateLimitReqs < 1 {
			return fmt.Errorf("rate limit requests must be positive, got %d", c.Security.RateLimitReqs)
		}
		if c.Security.RateLimitWindow <= 0 {
			return fmt.Errorf("rate limit window must be positive, got %s", c.Security.RateLimitWindow)
		}
	}

	return nil
}
