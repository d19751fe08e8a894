// Tessera - Multi-Tenant Event Ticketing Platform
// Copyright 2026 Tessera Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tessera-hq/tessera

package models

import (
	"database/sql/driver"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Theme template lifecycle states.
const (
	ThemeStatusActive   = "active"
	ThemeStatusInactive = "inactive"
	ThemeStatusDraft    = "draft"
)

// ValidThemeStatuses contains all valid template states for validation.
var ValidThemeStatuses = []string{ThemeStatusActive, ThemeStatusInactive, ThemeStatusDraft}

// Semantic color roles defined by a theme's default properties.
const (
	ColorRolePrimary    = "primary"
	ColorRoleSecondary  = "secondary"
	ColorRoleBackground = "background"
	ColorRoleText       = "text"
	ColorRoleAccent     = "accent"
)

// Font roles defined by a theme's default properties.
const (
	FontRoleHeading = "heading"
	FontRoleBody    = "body"
)

// ThemeTemplate is a platform-level, shareable visual style definition with
// default content and style tokens. Templates are authored by platform
// admins and are immutable from the tenant/event perspective: tenants only
// adopt them, they never edit them.
type ThemeTemplate struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	Name        string    `gorm:"not null" json:"name"`
	Description string    `json:"description"`
	Category    string    `gorm:"index" json:"category"`
	Status      string    `gorm:"not null;default:draft;index" json:"status"`
	IsPremium   bool      `json:"isPremium"`

	// Price is meaningful only when IsPremium is true.
	Price float64 `json:"price"`

	DefaultProperties ThemeProperties `gorm:"type:jsonb" json:"defaultProperties"`
	DefaultContent    SectionContent  `gorm:"type:jsonb" json:"defaultContent"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// BeforeCreate assigns an ID when the caller did not provide one.
func (t *ThemeTemplate) BeforeCreate(_ *gorm.DB) error {
	if t.ID == uuid.Nil {
		t.ID = uuid.New()
	}
	return nil
}

// ThemeProperties holds a template's default style tokens: a mapping of
// semantic color role to hex value and of font role to font family name.
type ThemeProperties struct {
	Colors map[string]string `json:"colors"`
	Fonts  map[string]string `json:"fonts"`
}

// Value implements driver.Valuer for JSONB storage.
func (p ThemeProperties) Value() (driver.Value, error) { return jsonValue(p) }

// Scan implements sql.Scanner for JSONB storage.
func (p *ThemeProperties) Scan(src interface{}) error { return jsonScan(p, src) }

// Value implements driver.Valuer for JSONB storage.
func (c SectionContent) Value() (driver.Value, error) { return jsonValue(c) }

// Scan implements sql.Scanner for JSONB storage.
func (c *SectionContent) Scan(src interface{}) error { return jsonScan(c, src) }

// Purchase entitlement states.
const (
	PurchaseStatusCompleted = "completed"
	PurchaseStatusRefunded  = "refunded"
)

// ThemePurchase records a tenant's entitlement to a premium template.
// Free templates need no purchase row.
type ThemePurchase struct {
	ID       uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	TenantID uuid.UUID `gorm:"type:uuid;not null;index:idx_purchase_tenant_theme,unique" json:"tenantId"`
	ThemeID  uuid.UUID `gorm:"type:uuid;not null;index:idx_purchase_tenant_theme,unique" json:"themeId"`

	Theme *ThemeTemplate `gorm:"foreignKey:ThemeID" json:"theme,omitempty"`

	Status      string    `gorm:"not null;default:completed" json:"status"`
	PurchasedAt time.Time `json:"purchasedAt"`
}

// BeforeCreate assigns an ID and purchase timestamp when absent.
func (p *ThemePurchase) BeforeCreate(_ *gorm.DB) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	if p.PurchasedAt.IsZero() {
		p.PurchasedAt = time.Now().UTC()
	}
	return nil
}
