// Tessera - Multi-Tenant Event Ticketing Platform
// Copyright 2026 Tessera Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tessera-hq/tessera

package api

import (
	"net/http"
	"time"

	"github.com/gorilla/websocket"

	"github.com/tessera-hq/tessera/internal/auth"
	"github.com/tessera-hq/tessera/internal/authz"
	"github.com/tessera-hq/tessera/internal/cache"
	"github.com/tessera-hq/tessera/internal/config"
	"github.com/tessera-hq/tessera/internal/database"
	"github.com/tessera-hq/tessera/internal/logging"
	"github.com/tessera-hq/tessera/internal/models"
)

// Handler contains dependencies for API handlers.
type Handler struct {
	db        *database.DB
	cache     *cache.ResolvedViewCache
	config    *config.Config
	startTime time.Time
}

// NewHandler creates the API handler. The cache may be nil when the
// resolved-view cache is disabled.
func NewHandler(db *database.DB, viewCache *cache.ResolvedViewCache, cfg *config.Config) *Handler {
	return &Handler{
		db:        db,
		cache:     viewCache,
		config:    cfg,
		startTime: time.Now(),
	}
}

// subjectFor returns the authenticated subject or writes a 401. The
// authenticate middleware normally guarantees a subject; this guards
// handlers mounted without it.
func subjectFor(w http.ResponseWriter, r *http.Request) (*auth.AuthSubject, bool) {
	subject, ok := auth.SubjectFromContext(r.Context())
	if !ok {
		respondError(w, http.StatusUnauthorized, "AUTH_REQUIRED", "authentication required", nil)
		return nil, false
	}
	return subject, true
}

// requireTenantAccess verifies the subject may touch the tenant owning
// the addressed resource. Platform admins pass; everyone else must
// belong to the tenant.
func requireTenantAccess(w http.ResponseWriter, r *http.Request, event *models.Event) (*auth.AuthSubject, bool) {
	subject, ok := subjectFor(w, r)
	if !ok {
		return nil, false
	}
	if !authz.CheckTenantAccess(subject, event.TenantID) {
		logging.Ctx(r.Context()).Warn().
			Str("subject", subject.ID).
			Str("event_tenant", event.TenantID.String()).
			Msg("Cross-tenant access denied")
		respondError(w, http.StatusForbidden, "FORBIDDEN", "resource belongs to another tenant", nil)
		return nil, false
	}
	return subject, true
}

// invalidateView drops the cached public view after a write that feeds
// into it. A failed drop is logged but never fails the write; the entry
// expires on its own TTL.
func (h *Handler) invalidateView(r *http.Request, slug string) {
	if err := h.cache.Invalidate(r.Context(), slug); err != nil {
		logging.Ctx(r.Context()).Warn().Err(err).
			Str("slug", sanitizeLogValue(slug)).
			Msg("Resolved-view invalidation failed")
	}
}

// getUpgrader creates a WebSocket upgrader with origin checking for the
// live preview socket.
func (h *Handler) getUpgrader() websocket.Upgrader {
	return websocket.Upgrader{
		ReadBufferSize:   1024,
		WriteBufferSize:  1024,
		CheckOrigin:      h.checkWebSocketOrigin,
		HandshakeTimeout: 10 * time.Second,
	}
}

// checkWebSocketOrigin validates preview socket origins against the
// configured CORS origins. Browser sockets always carry Origin; requests
// without one are rejected.
func (h *Handler) checkWebSocketOrigin(r *http.Request) bool {
	origin := r.Header.Get("Origin")
	if origin == "" {
		logging.Warn().Msg("WebSocket connection rejected: missing Origin header")
		return false
	}
	if h.config == nil {
		return true
	}
	for _, allowed := range h.config.Security.CORSOrigins {
		if allowed == "*" || allowed == origin {
			return true
		}
	}
	logging.Warn().Str("origin", sanitizeLogValue(origin)).Msg("WebSocket connection rejected from unauthorized origin")
	return false
}
