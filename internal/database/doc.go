// Tessera - Multi-Tenant Event Ticketing Platform
// Copyright 2026 Tessera Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tessera-hq/tessera

/*
Package database provides the persistent store for Tessera, backed by
PostgreSQL through gorm. Nested theme state (customization, content, SEO
settings) is stored in JSONB columns; tests run the same store against an
in-memory SQLite database.

The DB type wraps the gorm handle and exposes per-entity data access
methods. Theme-state writes are transactional whole-object replacements
guarded by an optional version check; everything else is conventional CRUD
scoped by tenant.
*/
package database
