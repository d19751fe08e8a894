// Tessera - Multi-Tenant Event Ticketing Platform
// Copyright 2026 Tessera Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tessera-hq/tessera

// Package testinfra provides Docker-backed test infrastructure built on
// testcontainers-go. Everything here is gated behind the integration
// build tag; unit tests run against sqlite and never touch Docker.
//
// The main entry point is NewPostgresContainer, which starts a
// disposable Postgres instance and hands back a DSN ready for
// database.New:
//
//	pg, err := testinfra.NewPostgresContainer(ctx)
//	if err != nil {
//	    t.Fatal(err)
//	}
//	defer pg.Terminate(ctx)
//
//	db, err := database.New(&config.DatabaseConfig{URL: pg.DSN, AutoMigrate: true})
package testinfra
