// Tessera - Multi-Tenant Event Ticketing Platform
// Copyright 2026 Tessera Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tessera-hq/tessera

package api

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/tessera-hq/tessera/internal/database"
	"github.com/tessera-hq/tessera/internal/models"
	"github.com/tessera-hq/tessera/internal/theme"
)

// ticketTenantCheck loads a ticket type together with its owning event and
// verifies the caller's tenant owns it.
func (h *Handler) ticketTenantCheck(w http.ResponseWriter, r *http.Request, id uuid.UUID) (*models.TicketType, *models.Event, bool) {
	ticket, err := h.db.GetTicketType(r.Context(), id)
	if err != nil {
		respondStoreError(w, err)
		return nil, nil, false
	}
	event, err := h.db.GetEvent(r.Context(), ticket.EventID)
	if err != nil {
		respondStoreError(w, err)
		return nil, nil, false
	}
	if _, ok := requireTenantAccess(w, r, event); !ok {
		return nil, nil, false
	}
	return ticket, event, true
}

// TicketTypeCreate adds a ticket tier to an event the caller's tenant owns.
// POST /api/v1/tenant-admin/ticket-types
func (h *Handler) TicketTypeCreate(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	var req models.TicketTypeRequest
	if !decodeBody(w, r, &req) {
		return
	}

	event, err := h.db.GetEvent(r.Context(), req.EventID)
	if err != nil {
		respondStoreError(w, err)
		return
	}
	if _, ok := requireTenantAccess(w, r, event); !ok {
		return
	}

	ticket := &models.TicketType{
		EventID:  req.EventID,
		Name:     req.Name,
		Price:    req.Price,
		Currency: req.Currency,
		Quantity: req.Quantity,
		Position: req.Position,
	}
	if err := h.db.CreateTicketType(r.Context(), ticket); err != nil {
		respondStoreError(w, err)
		return
	}
	h.invalidateView(r, event.Slug)

	respondOK(w, http.StatusCreated, ticket, start)
}

// TicketTypeUpdate replaces a ticket tier's definition. The sold counter is
// owned by the purchase flow and survives the replace.
// PUT /api/v1/tenant-admin/ticket-types/{id}
func (h *Handler) TicketTypeUpdate(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	id, ok := pathUUID(w, chi.URLParam(r, "id"), "ticket type id")
	if !ok {
		return
	}

	ticket, event, ok := h.ticketTenantCheck(w, r, id)
	if !ok {
		return
	}

	var req models.TicketTypeRequest
	if !decodeBody(w, r, &req) {
		return
	}
	if req.EventID != ticket.EventID {
		respondError(w, http.StatusBadRequest, "VALIDATION_ERROR",
			"ticket type cannot move between events", nil)
		return
	}

	ticket.Name = req.Name
	ticket.Price = req.Price
	ticket.Currency = req.Currency
	ticket.Quantity = req.Quantity
	ticket.Position = req.Position

	if err := h.db.UpdateTicketType(r.Context(), ticket); err != nil {
		respondStoreError(w, err)
		return
	}
	h.invalidateView(r, event.Slug)

	respondOK(w, http.StatusOK, ticket, start)
}

// TicketTypeDelete removes a ticket tier and its feature list inside the
// event's themeContent, so resolution never renders features for a tier
// that no longer exists.
// DELETE /api/v1/tenant-admin/ticket-types/{id}
func (h *Handler) TicketTypeDelete(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	id, ok := pathUUID(w, chi.URLParam(r, "id"), "ticket type id")
	if !ok {
		return
	}

	ticket, event, ok := h.ticketTenantCheck(w, r, id)
	if !ok {
		return
	}

	if err := h.db.DeleteTicketType(r.Context(), ticket.ID); err != nil {
		respondStoreError(w, err)
		return
	}

	draft, err := theme.LoadDraft(event)
	if err != nil {
		respondError(w, http.StatusInternalServerError, "DATABASE_ERROR",
			"failed to load theme state", err)
		return
	}
	draft.RemoveTicketFeatures(ticket.ID.String())

	if _, err := h.db.ReplaceEventThemeState(r.Context(), event.ID, database.ThemeStateReplacement{
		ThemeContent: &draft.State.ThemeContent,
	}); err != nil {
		respondStoreError(w, err)
		return
	}
	h.invalidateView(r, event.Slug)

	respondOK(w, http.StatusOK, map[string]string{"deleted": ticket.ID.String()}, start)
}

// TicketFeaturesUpdate replaces the ordered feature list for one ticket
// tier inside the event's themeContent.
// PUT /api/v1/tenant-admin/events/{id}/ticket-features/{ticketTypeID}
func (h *Handler) TicketFeaturesUpdate(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	eventID, ok := pathUUID(w, chi.URLParam(r, "id"), "event id")
	if !ok {
		return
	}
	ticketTypeID, ok := pathUUID(w, chi.URLParam(r, "ticketTypeID"), "ticket type id")
	if !ok {
		return
	}

	event, err := h.db.GetEvent(r.Context(), eventID)
	if err != nil {
		respondStoreError(w, err)
		return
	}
	if _, ok := requireTenantAccess(w, r, event); !ok {
		return
	}

	ticket, err := h.db.GetTicketType(r.Context(), ticketTypeID)
	if err != nil {
		respondStoreError(w, err)
		return
	}
	if ticket.EventID != event.ID {
		respondError(w, http.StatusBadRequest, "VALIDATION_ERROR",
			"ticket type does not belong to this event", nil)
		return
	}

	var req models.TicketFeaturesRequest
	if !decodeBody(w, r, &req) {
		return
	}

	draft, err := theme.LoadDraft(event)
	if err != nil {
		respondError(w, http.StatusInternalServerError, "DATABASE_ERROR",
			"failed to load theme state", err)
		return
	}
	draft.SetTicketFeatures(ticket.ID.String(), req.Features)

	updated, err := h.db.ReplaceEventThemeState(r.Context(), event.ID, database.ThemeStateReplacement{
		ThemeContent: &draft.State.ThemeContent,
	})
	if err != nil {
		respondStoreError(w, err)
		return
	}
	h.invalidateView(r, event.Slug)

	respondOK(w, http.StatusOK, updated, start)
}
