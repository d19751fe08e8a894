// Tessera - Multi-Tenant Event Ticketing Platform
// Copyright 2026 Tessera Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tessera-hq/tessera

package api

import (
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/tessera-hq/tessera/internal/database"
	"github.com/tessera-hq/tessera/internal/models"
)

// ThemesAvailable lists the templates the caller's tenant may adopt:
// every active free template plus the premium ones the tenant purchased.
// GET /api/v1/tenant-admin/themes
func (h *Handler) ThemesAvailable(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	subject, ok := subjectFor(w, r)
	if !ok {
		return
	}

	templates, err := h.db.ListAvailableThemes(r.Context(), subject.TenantID)
	if err != nil {
		respondStoreError(w, err)
		return
	}

	respondOK(w, http.StatusOK, templates, start)
}

// ThemesPurchased lists the caller's tenant's completed theme purchases.
// GET /api/v1/tenant-admin/themes/purchased
func (h *Handler) ThemesPurchased(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	subject, ok := subjectFor(w, r)
	if !ok {
		return
	}

	purchases, err := h.db.ListPurchasedThemes(r.Context(), subject.TenantID)
	if err != nil {
		respondStoreError(w, err)
		return
	}

	respondOK(w, http.StatusOK, purchases, start)
}

// ThemePurchase records a premium theme purchase for the caller's tenant.
// Payment capture happens upstream; this endpoint only grants the
// entitlement. Free themes need no purchase and are rejected here.
// POST /api/v1/tenant-admin/themes/{id}/purchase
func (h *Handler) ThemePurchase(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	subject, ok := subjectFor(w, r)
	if !ok {
		return
	}

	themeID, ok := pathUUID(w, chi.URLParam(r, "id"), "theme id")
	if !ok {
		return
	}

	template, err := h.db.GetThemeTemplate(r.Context(), themeID)
	if err != nil {
		respondStoreError(w, err)
		return
	}
	if !template.IsPremium {
		respondError(w, http.StatusBadRequest, "VALIDATION_ERROR",
			"theme is free and requires no purchase", nil)
		return
	}
	if template.Status != models.ThemeStatusActive {
		respondError(w, http.StatusBadRequest, "VALIDATION_ERROR",
			"theme is not available for purchase", nil)
		return
	}

	purchase := &models.ThemePurchase{
		TenantID: subject.TenantID,
		ThemeID:  themeID,
	}
	if err := h.db.CreateThemePurchase(r.Context(), purchase); err != nil {
		if errors.Is(err, database.ErrDuplicateSlug) {
			respondError(w, http.StatusConflict, "VALIDATION_ERROR",
				"theme already purchased", nil)
			return
		}
		respondStoreError(w, err)
		return
	}

	respondOK(w, http.StatusCreated, purchase, start)
}
