// Tessera - Multi-Tenant Event Ticketing Platform
// Copyright 2026 Tessera Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tessera-hq/tessera

// Package api provides the HTTP surface: chi routing, middleware wiring,
// and handlers for the theme catalog, tenant events, theme state saves,
// live preview, ticketing, and the public event page.
//
// Handler methods are split across files by concern:
//   - handlers.go: Handler struct and constructor
//   - handlers_helpers.go: envelope/respond helpers and error mapping
//   - handlers_health.go: health and readiness endpoints
//   - handlers_themes.go: platform-admin theme catalog CRUD
//   - handlers_tenant_themes.go: available/purchased listing and purchase
//   - handlers_events.go: tenant event CRUD
//   - handlers_event_theme.go: theme-state save (switch/reset, versioning)
//   - handlers_preview.go: draft preview, HTTP and WebSocket
//   - handlers_tickets.go: ticket types and per-tier feature lists
//   - handlers_public.go: public resolved event page
//
// All responses use the models.APIResponse envelope. Error codes are
// documented on models.APIError.
package api
