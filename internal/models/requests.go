// Tessera - Multi-Tenant Event Ticketing Platform
// Copyright 2026 Tessera Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tessera-hq/tessera

/*
requests.go - API Request DTOs

Request bodies are decoded into these structures and validated with
go-playground/validator before any handler logic runs. Custom tags
(slug, sectionid) are registered in internal/validation.
*/

package models

import (
	"time"

	"github.com/google/uuid"
)

// ThemeTemplateRequest creates or fully replaces a theme template.
// Platform-admin only.
type ThemeTemplateRequest struct {
	Name              string          `json:"name" validate:"required,max=120"`
	Description       string          `json:"description" validate:"max=2000"`
	Category          string          `json:"category" validate:"max=60"`
	Status            string          `json:"status" validate:"required,oneof=active inactive draft"`
	IsPremium         bool            `json:"isPremium"`
	Price             float64         `json:"price" validate:"gte=0"`
	DefaultProperties ThemeProperties `json:"defaultProperties" validate:"required"`
	DefaultContent    SectionContent  `json:"defaultContent"`
}

// CreateEventRequest creates an event. Theme state starts empty; the event
// adopts a template later through the theme endpoint.
type CreateEventRequest struct {
	Name        string    `json:"name" validate:"required,max=200"`
	Slug        string    `json:"slug" validate:"required,slug,max=120"`
	Description string    `json:"description" validate:"max=5000"`
	VenueName   string    `json:"venueName" validate:"max=200"`
	City        string    `json:"city" validate:"max=120"`
	StartsAt    time.Time `json:"startsAt"`
	EndsAt      time.Time `json:"endsAt"`
	Status      string    `json:"status" validate:"omitempty,oneof=draft published cancelled"`
	Gallery     []string  `json:"gallery" validate:"omitempty,dive,url"`
}

// UpdateEventRequest replaces an event's base fields. Theme state is
// untouched by this request; it has its own endpoint.
type UpdateEventRequest struct {
	Name        string    `json:"name" validate:"required,max=200"`
	Slug        string    `json:"slug" validate:"required,slug,max=120"`
	Description string    `json:"description" validate:"max=5000"`
	VenueName   string    `json:"venueName" validate:"max=200"`
	City        string    `json:"city" validate:"max=120"`
	StartsAt    time.Time `json:"startsAt"`
	EndsAt      time.Time `json:"endsAt"`
	Status      string    `json:"status" validate:"omitempty,oneof=draft published cancelled"`
	Gallery     []string  `json:"gallery" validate:"omitempty,dive,url"`
}

// UpdateEventThemeRequest replaces an event's theme state whole-object.
// Each supplied field fully replaces its persisted counterpart; partial
// patch semantics are not supported at this layer.
//
// Switching ThemeID to a different template requires ConfirmReset; the
// server then reseeds themeContent from the new template's defaults.
// ExpectedVersion, when supplied, must match the event's current
// ThemeVersion or the save is rejected with SAVE_CONFLICT. Absent, the
// save is last-write-wins.
type UpdateEventThemeRequest struct {
	ThemeID            *uuid.UUID          `json:"themeId"`
	ConfirmReset       bool                `json:"confirmReset"`
	ExpectedVersion    *int64              `json:"expectedVersion" validate:"omitempty,gte=0"`
	ThemeContent       *SectionContent     `json:"themeContent"`
	ThemeCustomization *ThemeCustomization `json:"themeCustomization"`
	SEOSettings        *SEOSettings        `json:"seoSettings"`
}

// ThemePreviewRequest resolves a draft against a template without
// persisting anything. ThemeID defaults to the event's current template.
type ThemePreviewRequest struct {
	ThemeID            *uuid.UUID          `json:"themeId"`
	ThemeContent       *SectionContent     `json:"themeContent"`
	ThemeCustomization *ThemeCustomization `json:"themeCustomization"`
}

// TicketTypeRequest creates or fully replaces a ticket type.
type TicketTypeRequest struct {
	EventID  uuid.UUID `json:"eventId" validate:"required"`
	Name     string    `json:"name" validate:"required,max=120"`
	Price    float64   `json:"price" validate:"gte=0"`
	Currency string    `json:"currency" validate:"required,len=3,uppercase"`
	Quantity int       `json:"quantity" validate:"gte=0"`
	Position int       `json:"position" validate:"gte=0"`
}

// TicketFeaturesRequest replaces the ordered feature list for one ticket
// type inside the event's themeContent.
type TicketFeaturesRequest struct {
	Features []string `json:"features" validate:"required,dive,max=300"`
}
