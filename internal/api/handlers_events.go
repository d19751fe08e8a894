// Tessera - Multi-Tenant Event Ticketing Platform
// Copyright 2026 Tessera Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tessera-hq/tessera

package api

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"gorm.io/datatypes"

	"github.com/tessera-hq/tessera/internal/models"
)

// EventCreate creates an event owned by the caller's tenant. Theme state
// starts empty; adoption happens later through the theme endpoint.
// POST /api/v1/tenant-admin/events
func (h *Handler) EventCreate(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	subject, ok := subjectFor(w, r)
	if !ok {
		return
	}

	var req models.CreateEventRequest
	if !decodeBody(w, r, &req) {
		return
	}

	event := &models.Event{
		TenantID:    subject.TenantID,
		Name:        req.Name,
		Slug:        req.Slug,
		Description: req.Description,
		VenueName:   req.VenueName,
		City:        req.City,
		StartsAt:    req.StartsAt,
		EndsAt:      req.EndsAt,
		Status:      req.Status,
		Gallery:     datatypes.JSONSlice[string](req.Gallery),
	}
	if event.Status == "" {
		event.Status = models.EventStatusDraft
	}
	if err := h.db.CreateEvent(r.Context(), event); err != nil {
		respondStoreError(w, err)
		return
	}

	respondOK(w, http.StatusCreated, event, start)
}

// EventList returns the caller's tenant's events, paginated.
// GET /api/v1/tenant-admin/events?page=1&per_page=20
func (h *Handler) EventList(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	subject, ok := subjectFor(w, r)
	if !ok {
		return
	}
	page, perPage := h.pagination(r)

	events, total, err := h.db.ListEvents(r.Context(), subject.TenantID, page, perPage)
	if err != nil {
		respondStoreError(w, err)
		return
	}

	respondOK(w, http.StatusOK, models.ListResponse{
		Items:      events,
		Pagination: paginationInfo(page, perPage, total),
	}, start)
}

// EventGet returns one event with its theme state and ticket types.
// GET /api/v1/tenant-admin/events/{id}
func (h *Handler) EventGet(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	id, ok := pathUUID(w, chi.URLParam(r, "id"), "event id")
	if !ok {
		return
	}

	event, err := h.db.GetEvent(r.Context(), id)
	if err != nil {
		respondStoreError(w, err)
		return
	}
	if _, ok := requireTenantAccess(w, r, event); !ok {
		return
	}

	respondOK(w, http.StatusOK, event, start)
}

// EventUpdate replaces an event's base fields. The theme state is not
// touched here; the public resolved view is still invalidated because the
// base fields feed into it.
// PUT /api/v1/tenant-admin/events/{id}
func (h *Handler) EventUpdate(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	id, ok := pathUUID(w, chi.URLParam(r, "id"), "event id")
	if !ok {
		return
	}

	event, err := h.db.GetEvent(r.Context(), id)
	if err != nil {
		respondStoreError(w, err)
		return
	}
	if _, ok := requireTenantAccess(w, r, event); !ok {
		return
	}

	var req models.UpdateEventRequest
	if !decodeBody(w, r, &req) {
		return
	}

	oldSlug := event.Slug
	event.Name = req.Name
	event.Slug = req.Slug
	event.Description = req.Description
	event.VenueName = req.VenueName
	event.City = req.City
	event.StartsAt = req.StartsAt
	event.EndsAt = req.EndsAt
	if req.Status != "" {
		event.Status = req.Status
	}
	event.Gallery = datatypes.JSONSlice[string](req.Gallery)

	if err := h.db.UpdateEvent(r.Context(), event); err != nil {
		respondStoreError(w, err)
		return
	}

	h.invalidateView(r, oldSlug)
	if event.Slug != oldSlug {
		h.invalidateView(r, event.Slug)
	}

	respondOK(w, http.StatusOK, event, start)
}

// EventDelete removes an event together with its embedded theme state,
// ticket types and sessions.
// DELETE /api/v1/tenant-admin/events/{id}
func (h *Handler) EventDelete(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	id, ok := pathUUID(w, chi.URLParam(r, "id"), "event id")
	if !ok {
		return
	}

	event, err := h.db.GetEvent(r.Context(), id)
	if err != nil {
		respondStoreError(w, err)
		return
	}
	if _, ok := requireTenantAccess(w, r, event); !ok {
		return
	}

	if err := h.db.DeleteEvent(r.Context(), id); err != nil {
		respondStoreError(w, err)
		return
	}
	h.invalidateView(r, event.Slug)

	respondOK(w, http.StatusOK, map[string]string{"deleted": id.String()}, start)
}
