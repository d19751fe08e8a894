// Tessera - Multi-Tenant Event Ticketing Platform
// Copyright 2026 Tessera Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tessera-hq/tessera

/*
handlers_public.go - Public Event Page Endpoint

GET /public/events/{slug} serves everything a renderer needs for an
event's public page: event basics, tenant identity and the resolved
theme view. An event without an adopted template is not an error; the
renderer gets state "theme_not_assigned" with the event basics and
shows its fallback page.

Resolved views are cached by slug. A hit skips the resolver and is
flagged in the response metadata; event and tenant basics always come
from the database so base-field edits show up immediately.
*/

package api

import (
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"gorm.io/datatypes"

	"github.com/tessera-hq/tessera/internal/logging"
	"github.com/tessera-hq/tessera/internal/metrics"
	"github.com/tessera-hq/tessera/internal/models"
	"github.com/tessera-hq/tessera/internal/theme"
)

// Public page states.
const (
	publicStateResolved     = "resolved"
	publicStateThemeMissing = "theme_not_assigned"
)

// publicEventInfo is the subset of event fields exposed without auth.
type publicEventInfo struct {
	Name        string                      `json:"name"`
	Slug        string                      `json:"slug"`
	Description string                      `json:"description,omitempty"`
	VenueName   string                      `json:"venueName,omitempty"`
	City        string                      `json:"city,omitempty"`
	StartsAt    time.Time                   `json:"startsAt"`
	EndsAt      time.Time                   `json:"endsAt"`
	Status      string                      `json:"status"`
	Gallery     datatypes.JSONSlice[string] `json:"gallery,omitempty"`
}

// publicTenantInfo is the subset of tenant fields exposed without auth.
type publicTenantInfo struct {
	Name         string             `json:"name"`
	Slug         string             `json:"slug"`
	ContactEmail string             `json:"contactEmail,omitempty"`
	SocialLinks  models.SocialLinks `json:"socialLinks,omitempty"`
}

// publicEventPayload is the public endpoint's data block.
type publicEventPayload struct {
	State       string               `json:"state"`
	Event       publicEventInfo      `json:"event"`
	Tenant      *publicTenantInfo    `json:"tenant,omitempty"`
	View        *models.ResolvedView `json:"view,omitempty"`
	TicketTypes []models.TicketType  `json:"ticketTypes,omitempty"`
}

// PublicEvent serves the public page data for one event.
// GET /public/events/{slug}
func (h *Handler) PublicEvent(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	ctx := r.Context()

	slug := chi.URLParam(r, "slug")
	if slug == "" {
		respondError(w, http.StatusBadRequest, "VALIDATION_ERROR", "event slug required", nil)
		return
	}

	event, err := h.db.GetEventBySlug(ctx, slug)
	if err != nil {
		respondStoreError(w, err)
		return
	}

	payload := publicEventPayload{
		State: publicStateResolved,
		Event: publicEventInfo{
			Name:        event.Name,
			Slug:        event.Slug,
			Description: event.Description,
			VenueName:   event.VenueName,
			City:        event.City,
			StartsAt:    event.StartsAt,
			EndsAt:      event.EndsAt,
			Status:      event.Status,
			Gallery:     event.Gallery,
		},
		TicketTypes: event.TicketTypes,
	}
	if event.Tenant != nil {
		payload.Tenant = &publicTenantInfo{
			Name:         event.Tenant.Name,
			Slug:         event.Tenant.Slug,
			ContactEmail: event.Tenant.ContactEmail,
			SocialLinks:  event.Tenant.SocialLinks,
		}
	}

	if view, err := h.cache.Get(ctx, slug); err == nil {
		payload.View = view
		respondJSON(w, http.StatusOK, &models.APIResponse{
			Status: "success",
			Data:   payload,
			Metadata: models.Metadata{
				Timestamp: time.Now().UTC(),
				Cached:    true,
			},
		})
		return
	}

	resolveStart := time.Now()
	view, err := theme.ResolveEvent(event)
	switch {
	case errors.Is(err, theme.ErrMissingTheme):
		metrics.RecordThemeResolution(publicStateThemeMissing, time.Since(resolveStart))
		payload.State = publicStateThemeMissing
	case err != nil:
		// Resolution failures isolate to this event's render; nothing
		// persisted is affected.
		metrics.RecordThemeResolution("error", time.Since(resolveStart))
		respondError(w, http.StatusInternalServerError, "DATABASE_ERROR",
			"failed to resolve event theme", err)
		return
	default:
		metrics.RecordThemeResolution(publicStateResolved, time.Since(resolveStart))
		payload.View = view

		if err := h.cache.Set(ctx, slug, view); err != nil {
			logging.Ctx(ctx).Warn().Err(err).
				Str("slug", sanitizeLogValue(slug)).
				Msg("Resolved-view cache store failed")
		}
	}

	respondOK(w, http.StatusOK, payload, start)
}
