// Tessera - Multi-Tenant Event Ticketing Platform
// Copyright 2026 Tessera Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tessera-hq/tessera

/*
event.go - Event, Tenant and Theme-State Models

An Event carries its theme state embedded: themeId references the adopted
ThemeTemplate, themeCustomization holds style-token and visibility
overrides, themeContent holds sparse per-section content overrides.
Theme state is created empty at event creation, seeded from the template's
defaultContent on first adoption, replaced whole-object on every save, and
deleted with the event.

ThemeVersion increments on every theme-state save and backs the optional
optimistic-concurrency check on the theme update endpoint.
*/

package models

import (
	"database/sql/driver"
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// Event lifecycle states.
const (
	EventStatusDraft     = "draft"
	EventStatusPublished = "published"
	EventStatusCancelled = "cancelled"
)

// ValidEventStatuses contains all valid event states for validation.
var ValidEventStatuses = []string{EventStatusDraft, EventStatusPublished, EventStatusCancelled}

// Tenant is an organizer account. Its slug namespaces public event pages
// and its contact details feed the resolved view's site info.
type Tenant struct {
	ID           uuid.UUID   `gorm:"type:uuid;primaryKey" json:"id"`
	Name         string      `gorm:"not null" json:"name"`
	Slug         string      `gorm:"uniqueIndex;not null" json:"slug"`
	ContactEmail string      `json:"contactEmail"`
	SocialLinks  SocialLinks `gorm:"type:jsonb" json:"socialLinks"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// BeforeCreate assigns an ID when the caller did not provide one.
func (t *Tenant) BeforeCreate(_ *gorm.DB) error {
	if t.ID == uuid.Nil {
		t.ID = uuid.New()
	}
	return nil
}

// SocialLinks maps a network name (twitter, facebook, ...) to a profile URL.
type SocialLinks map[string]string

// Value implements driver.Valuer for JSONB storage.
func (s SocialLinks) Value() (driver.Value, error) { return jsonValue(s) }

// Scan implements sql.Scanner for JSONB storage.
func (s *SocialLinks) Scan(src interface{}) error { return jsonScan(s, src) }

// Event is the central entity: a tenant's ticketed event, its public page
// identified by slug, with theme state embedded.
type Event struct {
	ID       uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	TenantID uuid.UUID `gorm:"type:uuid;not null;index" json:"tenantId"`
	Tenant   *Tenant   `gorm:"foreignKey:TenantID" json:"tenant,omitempty"`

	Name        string    `gorm:"not null" json:"name"`
	Slug        string    `gorm:"uniqueIndex;not null" json:"slug"`
	Description string    `json:"description"`
	VenueName   string    `json:"venueName"`
	City        string    `json:"city"`
	StartsAt    time.Time `json:"startsAt"`
	EndsAt      time.Time `json:"endsAt"`
	Status      string    `gorm:"not null;default:draft;index" json:"status"`

	// Gallery is the ordered list of image URLs shown by the gallery
	// section. The section's heading copy lives in themeContent.
	Gallery datatypes.JSONSlice[string] `json:"gallery"`

	// Theme state. ThemeID is nil until the event adopts a template;
	// resolution without a template yields the theme-not-assigned state.
	ThemeID            *uuid.UUID         `gorm:"type:uuid;index" json:"themeId"`
	Theme              *ThemeTemplate     `gorm:"foreignKey:ThemeID" json:"theme,omitempty"`
	ThemeCustomization ThemeCustomization `gorm:"type:jsonb" json:"themeCustomization"`
	ThemeContent       SectionContent     `gorm:"type:jsonb" json:"themeContent"`
	SEOSettings        SEOSettings        `gorm:"type:jsonb" json:"seoSettings"`
	ThemeVersion       int64              `gorm:"not null;default:0" json:"themeVersion"`

	TicketTypes []TicketType   `gorm:"foreignKey:EventID" json:"ticketTypes,omitempty"`
	Sessions    []EventSession `gorm:"foreignKey:EventID" json:"sessions,omitempty"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// BeforeCreate assigns an ID when the caller did not provide one.
func (e *Event) BeforeCreate(_ *gorm.DB) error {
	if e.ID == uuid.Nil {
		e.ID = uuid.New()
	}
	return nil
}

// ThemeState bundles the event's override structures for the resolver and
// the draft helpers.
func (e *Event) ThemeState() EventThemeState {
	return EventThemeState{
		ThemeCustomization: e.ThemeCustomization,
		ThemeContent:       e.ThemeContent,
		SEOSettings:        e.SEOSettings,
	}
}

// EventThemeState is the per-event override data layered on top of a
// ThemeTemplate. Any or all fields may be empty.
type EventThemeState struct {
	ThemeCustomization ThemeCustomization `json:"themeCustomization"`
	ThemeContent       SectionContent     `json:"themeContent"`
	SEOSettings        SEOSettings        `json:"seoSettings"`
}

// ThemeCustomization holds per-event style-token overrides and section
// visibility flags. Only overridden color/font roles are present; absent
// roles fall back to the template defaults.
type ThemeCustomization struct {
	Colors map[string]string `json:"colors,omitempty"`
	Fonts  map[string]string `json:"fonts,omitempty"`
	Logo   *string           `json:"logo,omitempty"`

	SectionVisibility SectionVisibility `json:"sectionVisibility,omitempty"`
}

// Value implements driver.Valuer for JSONB storage.
func (c ThemeCustomization) Value() (driver.Value, error) { return jsonValue(c) }

// Scan implements sql.Scanner for JSONB storage.
func (c *ThemeCustomization) Scan(src interface{}) error { return jsonScan(c, src) }

// SectionVisibility maps a section identifier to a visibility flag.
// Absence of a key means visible: visibility is opt-out, not opt-in.
// Stored values for the non-toggleable sections (branding, hero, footer)
// are ignored by resolution.
type SectionVisibility map[string]bool

// SEOSettings carries page metadata, independent of theme content.
type SEOSettings struct {
	MetaTitle       string `json:"metaTitle,omitempty"`
	MetaDescription string `json:"metaDescription,omitempty"`
}

// Value implements driver.Valuer for JSONB storage.
func (s SEOSettings) Value() (driver.Value, error) { return jsonValue(s) }

// Scan implements sql.Scanner for JSONB storage.
func (s *SEOSettings) Scan(src interface{}) error { return jsonScan(s, src) }

// TicketType is a purchasable ticket tier. Display copy for the tickets
// section and the per-tier feature lists live in themeContent, not here.
type TicketType struct {
	ID      uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	EventID uuid.UUID `gorm:"type:uuid;not null;index" json:"eventId"`

	Name     string  `gorm:"not null" json:"name"`
	Price    float64 `json:"price"`
	Currency string  `gorm:"not null;default:USD" json:"currency"`
	Quantity int     `json:"quantity"`
	Sold     int     `json:"sold"`
	Position int     `json:"position"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// BeforeCreate assigns an ID when the caller did not provide one.
func (t *TicketType) BeforeCreate(_ *gorm.DB) error {
	if t.ID == uuid.Nil {
		t.ID = uuid.New()
	}
	return nil
}

// EventSession is a schedule entry shown by the schedule section.
// Read-only from the theme editor's perspective.
type EventSession struct {
	ID      uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	EventID uuid.UUID `gorm:"type:uuid;not null;index" json:"eventId"`

	Title    string    `gorm:"not null" json:"title"`
	Speaker  string    `json:"speaker"`
	Location string    `json:"location"`
	StartsAt time.Time `json:"startsAt"`
	EndsAt   time.Time `json:"endsAt"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// BeforeCreate assigns an ID when the caller did not provide one.
func (s *EventSession) BeforeCreate(_ *gorm.DB) error {
	if s.ID == uuid.Nil {
		s.ID = uuid.New()
	}
	return nil
}
