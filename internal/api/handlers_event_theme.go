// Tessera - Multi-Tenant Event Ticketing Platform
// Copyright 2026 Tessera Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tessera-hq/tessera

/*
handlers_event_theme.go - Theme-State Save Endpoint

PUT /tenant-admin/events/{id}/theme is the single write path for an
event's theme state. Every editor surface goes through it, so the switch
and conflict policies enforced here hold uniformly:

  - First adoption (event has no template yet): themeContent is seeded
    from the template's defaultContent. No confirmation needed; there is
    nothing to lose.
  - Switch to a different template: requires confirmReset. The server
    reseeds themeContent from the new template's defaultContent and
    clears customization color overrides, which were tuned against the
    old template's palette. Without confirmReset the request fails with
    RESET_REQUIRED and nothing changes.
  - expectedVersion, when supplied, must match the stored themeVersion
    or the save fails with SAVE_CONFLICT. Absent, last-write-wins.
*/

package api

import (
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/tessera-hq/tessera/internal/database"
	"github.com/tessera-hq/tessera/internal/logging"
	"github.com/tessera-hq/tessera/internal/metrics"
	"github.com/tessera-hq/tessera/internal/models"
)

// EventThemeUpdate replaces an event's theme state whole-object.
// PUT /api/v1/tenant-admin/events/{id}/theme
func (h *Handler) EventThemeUpdate(w http.ResponseWriter, r *http.Request) {
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

	var req models.UpdateEventThemeRequest
	if !decodeBody(w, r, &req) {
		return
	}

	repl := database.ThemeStateReplacement{
		ThemeID:            req.ThemeID,
		ThemeContent:       req.ThemeContent,
		ThemeCustomization: req.ThemeCustomization,
		SEOSettings:        req.SEOSettings,
		ExpectedVersion:    req.ExpectedVersion,
	}

	adopting := req.ThemeID != nil && event.ThemeID == nil
	switching := req.ThemeID != nil && event.ThemeID != nil && *req.ThemeID != *event.ThemeID

	if switching && !req.ConfirmReset {
		respondError(w, http.StatusConflict, "RESET_REQUIRED",
			"switching templates resets theme content; retry with confirmReset", nil)
		return
	}

	if adopting || switching {
		entitled, err := h.db.TenantMayAdoptTheme(ctx, event.TenantID, *req.ThemeID)
		if err != nil {
			respondStoreError(w, err)
			return
		}
		if !entitled {
			respondError(w, http.StatusForbidden, "FORBIDDEN",
				"tenant is not entitled to this theme", nil)
			return
		}

		template, err := h.db.GetThemeTemplate(ctx, *req.ThemeID)
		if err != nil {
			respondStoreError(w, err)
			return
		}

		// The new template's defaults supersede any content carried in
		// the same request; the editor reloads the seeded state after a
		// switch rather than trusting its stale draft.
		seeded := template.DefaultContent
		repl.ThemeContent = &seeded

		if switching {
			custom := event.ThemeCustomization
			custom.Colors = nil
			repl.ThemeCustomization = &custom
			metrics.ThemeSwitchResets.Inc()
		}
	}

	updated, err := h.db.ReplaceEventThemeState(ctx, id, repl)
	if err != nil {
		if errors.Is(err, database.ErrVersionConflict) {
			metrics.ThemeSaveConflicts.Inc()
			logging.Ctx(ctx).Warn().
				Str("event_id", id.String()).
				Int64("stored_version", event.ThemeVersion).
				Msg("theme save rejected on version conflict")
		}
		respondStoreError(w, err)
		return
	}

	h.invalidateView(r, event.Slug)

	respondOK(w, http.StatusOK, updated, start)
}
