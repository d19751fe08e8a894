// Tessera - Multi-Tenant Event Ticketing Platform
// Copyright 2026 Tessera Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tessera-hq/tessera

package models

// ResolvedView is the fully merged, visibility-filtered structure handed to
// renderers. It is the output contract of theme resolution: same inputs
// always produce the same ResolvedView.
type ResolvedView struct {
	StyleOverrides StyleOverrides `json:"styleOverrides"`
	Assets         Assets         `json:"assets"`
	SiteInfo       SiteInfo       `json:"siteInfo"`

	// Sections holds the merged content. Toggleable sections hidden by
	// the event's visibility flags are nil here and absent from
	// VisibleSections.
	Sections SectionContent `json:"sections"`

	// VisibleSections lists the section identifiers included in Sections,
	// in canonical page order.
	VisibleSections []string `json:"visibleSections"`
}

// StyleOverrides carries the resolved style tokens: template defaults with
// per-event overrides applied per role.
type StyleOverrides struct {
	Colors map[string]string `json:"colors"`
	Fonts  map[string]string `json:"fonts"`
}

// Assets carries the resolved top-level image assets.
type Assets struct {
	LogoURL       string `json:"logoUrl,omitempty"`
	HeroBannerURL string `json:"heroBannerUrl,omitempty"`
}

// SiteInfo carries event and tenant identity for page chrome.
type SiteInfo struct {
	Title        string            `json:"title"`
	Description  string            `json:"description,omitempty"`
	ContactEmail string            `json:"contactEmail,omitempty"`
	SocialLinks  map[string]string `json:"socialLinks,omitempty"`
}
