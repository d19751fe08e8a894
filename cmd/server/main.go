// Tessera - Multi-Tenant Event Ticketing Platform
// Copyright 2026 Tessera Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tessera-hq/tessera

// Package main is the entry point for the Tessera API server.
//
// Tessera is a multi-tenant event ticketing platform. This binary
// serves the theme catalog, tenant event administration, the theme
// editor endpoints (save, preview, live preview over WebSocket) and
// the public event pages.
//
// # Application Architecture
//
// The server initializes components in the following order:
//
//  1. Configuration: Koanf v2 layered loading (defaults, config.yaml, environment)
//  2. Database: PostgreSQL via gorm, with optional schema auto-migration
//  3. Cache: Badger-backed resolved-view cache for public event pages
//  4. Auth: JWT verification and Casbin RBAC enforcement
//  5. HTTP Server: chi router under a suture supervisor tree
//
// # Configuration
//
// Settings are loaded via Koanf v2 with layered sources (highest
// priority wins): environment variables, config.yaml, built-in
// defaults. The only required settings are DATABASE_URL and
// JWT_SECRET (32+ characters).
//
// # Signal Handling
//
// The server shuts down gracefully on SIGINT and SIGTERM: the
// supervisor tree stops accepting work, the HTTP server drains
// in-flight requests (10s timeout), then the cache and database
// connections close.
package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/tessera-hq/tessera/internal/api"
	"github.com/tessera-hq/tessera/internal/auth"
	"github.com/tessera-hq/tessera/internal/authz"
	"github.com/tessera-hq/tessera/internal/cache"
	"github.com/tessera-hq/tessera/internal/config"
	"github.com/tessera-hq/tessera/internal/database"
	"github.com/tessera-hq/tessera/internal/logging"
	"github.com/tessera-hq/tessera/internal/supervisor"
)

func main() {
	// Load configuration first to get logging settings.
	cfg, err := config.Load()
	if err != nil {
		logging.Fatal().Err(err).Msg("Failed to load configuration")
	}

	logging.Init(logging.Config{
		Level:  cfg.Logging.Level,
		Format: cfg.Logging.Format,
		Caller: cfg.Logging.Caller,
	})

	logging.Info().
		Str("environment", cfg.Server.Environment).
		Bool("auth_disabled", cfg.Security.AuthDisabled).
		Bool("cache_enabled", cfg.Cache.Enabled).
		Msg("Starting Tessera")

	db, err := database.New(&cfg.Database)
	if err != nil {
		logging.Fatal().Err(err).Msg("Failed to initialize database")
	}
	defer func() {
		if err := db.Close(); err != nil {
			logging.Error().Err(err).Msg("Error closing database")
		}
	}()

	// Nil when disabled; every cache method tolerates the nil receiver.
	viewCache, err := cache.New(&cfg.Cache)
	if err != nil {
		logging.Fatal().Err(err).Msg("Failed to initialize resolved-view cache")
	}
	defer func() {
		if err := viewCache.Close(); err != nil {
			logging.Error().Err(err).Msg("Error closing cache")
		}
	}()

	jwtManager, err := auth.NewJWTManager(&cfg.Security)
	if err != nil {
		logging.Fatal().Err(err).Msg("Failed to initialize JWT manager")
	}
	authMW := auth.NewMiddleware(jwtManager, cfg.Security.AuthDisabled)

	enforcer, err := authz.NewEnforcer(authz.DefaultEnforcerConfig())
	if err != nil {
		logging.Fatal().Err(err).Msg("Failed to initialize RBAC enforcer")
	}
	defer enforcer.Close()
	authzMW := authz.NewMiddleware(enforcer)

	handler := api.NewHandler(db, viewCache, cfg)
	chiMW := api.NewChiMiddleware(api.ChiMiddlewareFromConfig(&cfg.Security))
	router := api.NewRouter(handler, authMW, authzMW, chiMW)

	server := &http.Server{
		Addr:         fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port),
		Handler:      router.Setup(),
		ReadTimeout:  cfg.Server.Timeout,
		WriteTimeout: cfg.Server.Timeout,
		IdleTimeout:  60 * time.Second,
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// sutureslog expects slog; the adapter bridges to zerolog.
	tree := supervisor.NewTree(logging.NewSlogLogger(), supervisor.DefaultTreeConfig())

	if viewCache != nil {
		tree.AddStorageService(supervisor.NewCacheGCService(viewCache, cfg.Cache.GCInterval))
	}
	tree.AddAPIService(supervisor.NewHTTPServerService(server, 10*time.Second))
	logging.Info().Str("addr", server.Addr).Msg("HTTP server service added")

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		sig := <-sigCh
		logging.Info().Str("signal", sig.String()).Msg("Received shutdown signal")
		cancel()
	}()

	errCh := tree.ServeBackground(ctx)

	select {
	case <-ctx.Done():
		logging.Info().Msg("Context canceled, waiting for supervisor to finish")
	case err := <-errCh:
		if err != nil && !errors.Is(err, context.Canceled) {
			logging.Error().Err(err).Msg("Supervisor tree error")
		}
	}

	// Drain the error channel so the tree finishes shutting down.
	for err := range errCh {
		if err != nil && !errors.Is(err, context.Canceled) {
			logging.Error().Err(err).Msg("Supervisor shutdown error")
		}
	}

	unstopped, _ := tree.UnstoppedServiceReport()
	for _, svc := range unstopped {
		logging.Warn().Str("service", svc.Name).Msg("Service failed to stop within timeout")
	}

	logging.Info().Msg("Tessera stopped gracefully")
}
