// Tessera - Multi-Tenant Event Ticketing Platform
// Copyright 2026 Tessera Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tessera-hq/tessera

package theme

// Section identifiers. These are the keys used by sectionVisibility and
// the resolved view's visibleSections list.
const (
	SectionBranding = "branding"
	SectionHero     = "hero"
	SectionAbout    = "about"
	SectionFeatures = "features"
	SectionTickets  = "tickets"
	SectionSchedule = "schedule"
	SectionSpeakers = "speakers"
	SectionVenue    = "venue"
	SectionGallery  = "gallery"
	SectionFAQ      = "faq"
	SectionFooter   = "footer"
)

// SectionOrder is the canonical page order of all sections.
var SectionOrder = []string{
	SectionBranding,
	SectionHero,
	SectionAbout,
	SectionFeatures,
	SectionTickets,
	SectionSchedule,
	SectionSpeakers,
	SectionVenue,
	SectionGallery,
	SectionFAQ,
	SectionFooter,
}

// toggleableSections holds the sections an operator may hide. Branding,
// hero and footer are always rendered; a stored visibility flag for them
// is ignored rather than rejected.
var toggleableSections = map[string]bool{
	SectionAbout:    true,
	SectionFeatures: true,
	SectionTickets:  true,
	SectionSchedule: true,
	SectionSpeakers: true,
	SectionVenue:    true,
	SectionGallery:  true,
	SectionFAQ:      true,
}

// Toggleable reports whether operators may hide the section.
func Toggleable(section string) bool {
	return toggleableSections[section]
}

// IsValidSection reports whether the identifier names a known section.
func IsValidSection(section string) bool {
	if toggleableSections[section] {
		return true
	}
	switch section {
	case SectionBranding, SectionHero, SectionFooter:
		return true
	}
	return false
}

// sectionVisible applies the opt-out visibility model: a section is
// visible unless an explicit false flag is stored, and the non-toggleable
// sections are visible no matter what is stored.
func sectionVisible(section string, visibility map[string]bool) bool {
	if !Toggleable(section) {
		return true
	}
	visible, ok := visibility[section]
	if !ok {
		return true
	}
	return visible
}
