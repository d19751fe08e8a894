// Tessera - Multi-Tenant Event Ticketing Platform
// Copyright 2026 Tessera Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tessera-hq/tessera

// Package middleware provides HTTP middleware shared across the router:
// request ID propagation wired into the logging context, Prometheus
// request instrumentation, and gzip response compression.
//
// All middleware uses the func(http.Handler) http.Handler shape so it
// composes with chi's Use.
package middleware
