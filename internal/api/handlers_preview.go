// Tessera - Multi-Tenant Event Ticketing Platform
// Copyright 2026 Tessera Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tessera-hq/tessera

/*
handlers_preview.go - Draft Preview Endpoints

Preview resolves a client-side draft against a template without touching
persisted state. The POST variant is a one-shot resolve; the WebSocket
variant keeps resolving as the editor types, one resolved view per draft
message, so the preview pane tracks the draft live.
*/

package api

import (
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/gorilla/websocket"

	"github.com/tessera-hq/tessera/internal/logging"
	"github.com/tessera-hq/tessera/internal/metrics"
	"github.com/tessera-hq/tessera/internal/models"
	"github.com/tessera-hq/tessera/internal/theme"
	"github.com/tessera-hq/tessera/internal/validation"
)

// EventThemePreview resolves a draft against a template without persisting.
// ThemeID defaults to the event's current template, so the editor can
// preview a candidate switch before confirming the reset.
// POST /api/v1/tenant-admin/events/{id}/theme/preview
func (h *Handler) EventThemePreview(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	ctx := r.Context()

	id, ok := pathUUID(w, chi.URLParam(r, "id"), "event id")
	if !ok {
		return
	}

	event, err := h.db.GetEvent(ctx, id)
	if err != nil {
		respondStoreError(w, err)
		return
	}
	if _, ok := requireTenantAccess(w, r, event); !ok {
		return
	}

	var req models.ThemePreviewRequest
	if !decodeBody(w, r, &req) {
		return
	}

	view, err := h.previewResolve(r, event, &req)
	if err != nil {
		if errors.Is(err, theme.ErrMissingTheme) {
			respondError(w, http.StatusBadRequest, "VALIDATION_ERROR",
				"no theme template to preview against", nil)
			return
		}
		respondStoreError(w, err)
		return
	}

	respondOK(w, http.StatusOK, view, start)
}

// previewResolve overlays the draft request onto the event's persisted
// state and resolves it against the requested template.
func (h *Handler) previewResolve(r *http.Request, event *models.Event, req *models.ThemePreviewRequest) (*models.ResolvedView, error) {
	resolveStart := time.Now()

	templateID := event.ThemeID
	if req.ThemeID != nil {
		templateID = req.ThemeID
	}
	if templateID == nil {
		return nil, theme.ErrMissingTheme
	}

	template, err := h.db.GetThemeTemplate(r.Context(), *templateID)
	if err != nil {
		return nil, err
	}

	state := event.ThemeState()
	if req.ThemeContent != nil {
		state.ThemeContent = *req.ThemeContent
	}
	if req.ThemeCustomization != nil {
		state.ThemeCustomization = *req.ThemeCustomization
	}

	view, err := theme.Resolve(template, state)
	if err != nil {
		metrics.RecordThemeResolution("error", time.Since(resolveStart))
		return nil, err
	}
	metrics.RecordThemeResolution("resolved", time.Since(resolveStart))
	return view, nil
}

// previewSocketReply is one frame sent back over the preview socket.
// Exactly one of View and Error is set.
type previewSocketReply struct {
	Status string               `json:"status"`
	View   *models.ResolvedView `json:"view,omitempty"`
	Error  string               `json:"error,omitempty"`
}

// EventThemePreviewWS upgrades to a WebSocket and resolves each draft
// message the editor sends, replying with the resolved view. Nothing is
// persisted; closing the socket discards the draft.
// GET /api/v1/tenant-admin/events/{id}/theme/preview/ws
func (h *Handler) EventThemePreviewWS(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	id, ok := pathUUID(w, chi.URLParam(r, "id"), "event id")
	if !ok {
		return
	}

	event, err := h.db.GetEvent(ctx, id)
	if err != nil {
		respondStoreError(w, err)
		return
	}
	if _, ok := requireTenantAccess(w, r, event); !ok {
		return
	}

	upgrader := h.getUpgrader()
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		// Upgrade already wrote the HTTP error response.
		metrics.WSErrors.WithLabelValues("upgrade_failed").Inc()
		logging.Ctx(ctx).Warn().Err(err).Msg("preview socket upgrade failed")
		return
	}
	defer conn.Close()

	metrics.WSConnections.Inc()
	defer metrics.WSConnections.Dec()

	log := logging.Ctx(ctx).With().Str("event_id", id.String()).Logger()
	log.Debug().Msg("preview socket opened")

	for {
		var req models.ThemePreviewRequest
		if err := conn.ReadJSON(&req); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) {
				metrics.WSErrors.WithLabelValues("read_failed").Inc()
				log.Warn().Err(err).Msg("preview socket read failed")
			}
			return
		}

		reply := previewSocketReply{Status: "success"}
		if verr := validation.ValidateStruct(&req); verr != nil {
			reply = previewSocketReply{Status: "error", Error: verr.Error()}
		} else if view, err := h.previewResolve(r, event, &req); err != nil {
			reply = previewSocketReply{Status: "error", Error: err.Error()}
		} else {
			reply.View = view
		}

		if err := conn.WriteJSON(reply); err != nil {
			metrics.WSErrors.WithLabelValues("write_failed").Inc()
			log.Warn().Err(err).Msg("preview socket write failed")
			return
		}
		metrics.WSMessagesSent.Inc()
	}
}
