// Tessera - Multi-Tenant Event Ticketing Platform
// Copyright 2026 Tessera Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tessera-hq/tessera

package api

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/tessera-hq/tessera/internal/models"
)

// ThemeCreate adds a theme template to the platform catalog.
// POST /api/v1/platform-admin/themes
func (h *Handler) ThemeCreate(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	var req models.ThemeTemplateRequest
	if !decodeBody(w, r, &req) {
		return
	}

	template := &models.ThemeTemplate{
		Name:              req.Name,
		Description:       req.Description,
		Category:          req.Category,
		Status:            req.Status,
		IsPremium:         req.IsPremium,
		Price:             req.Price,
		DefaultProperties: req.DefaultProperties,
		DefaultContent:    req.DefaultContent,
	}
	if err := h.db.CreateThemeTemplate(r.Context(), template); err != nil {
		respondStoreError(w, err)
		return
	}

	respondOK(w, http.StatusCreated, template, start)
}

// ThemeList returns the catalog, optionally filtered by status.
// GET /api/v1/platform-admin/themes?status=active&page=1&per_page=20
func (h *Handler) ThemeList(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	page, perPage := h.pagination(r)

	templates, total, err := h.db.ListThemeTemplates(r.Context(), r.URL.Query().Get("status"), page, perPage)
	if err != nil {
		respondStoreError(w, err)
		return
	}

	respondOK(w, http.StatusOK, models.ListResponse{
		Items:      templates,
		Pagination: paginationInfo(page, perPage, total),
	}, start)
}

// ThemeGet returns one template.
// GET /api/v1/platform-admin/themes/{id}
func (h *Handler) ThemeGet(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	id, ok := pathUUID(w, chi.URLParam(r, "id"), "theme id")
	if !ok {
		return
	}

	template, err := h.db.GetThemeTemplate(r.Context(), id)
	if err != nil {
		respondStoreError(w, err)
		return
	}

	respondOK(w, http.StatusOK, template, start)
}

// ThemeUpdate fully replaces a template's definition. Events keep their
// adopted template by reference; edits here flow into future resolutions.
// PUT /api/v1/platform-admin/themes/{id}
func (h *Handler) ThemeUpdate(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	id, ok := pathUUID(w, chi.URLParam(r, "id"), "theme id")
	if !ok {
		return
	}

	var req models.ThemeTemplateRequest
	if !decodeBody(w, r, &req) {
		return
	}

	template := &models.ThemeTemplate{
		ID:                id,
		Name:              req.Name,
		Description:       req.Description,
		Category:          req.Category,
		Status:            req.Status,
		IsPremium:         req.IsPremium,
		Price:             req.Price,
		DefaultProperties: req.DefaultProperties,
		DefaultContent:    req.DefaultContent,
	}
	if err := h.db.UpdateThemeTemplate(r.Context(), template); err != nil {
		respondStoreError(w, err)
		return
	}

	updated, err := h.db.GetThemeTemplate(r.Context(), id)
	if err != nil {
		respondStoreError(w, err)
		return
	}

	respondOK(w, http.StatusOK, updated, start)
}

// ThemeDelete removes a template from the catalog. Events referencing it
// keep their override state; their resolution degrades to the
// theme-not-assigned terminal state.
// DELETE /api/v1/platform-admin/themes/{id}
func (h *Handler) ThemeDelete(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	id, ok := pathUUID(w, chi.URLParam(r, "id"), "theme id")
	if !ok {
		return
	}

	if err := h.db.DeleteThemeTemplate(r.Context(), id); err != nil {
		respondStoreError(w, err)
		return
	}

	respondOK(w, http.StatusOK, map[string]string{"deleted": id.String()}, start)
}
