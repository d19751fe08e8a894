// Tessera - Multi-Tenant Event Ticketing Platform
// Copyright 2026 Tessera Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tessera-hq/tessera

package theme

import (
	"fmt"

	json "github.com/goccy/go-json"
	"github.com/google/uuid"

	"github.com/tessera-hq/tessera/internal/models"
)

// Draft is an in-memory, editable copy of an event's theme state. Edits
// mutate the draft only; the persisted event is untouched until the caller
// saves the whole state through the API layer. A failed save therefore
// leaves the draft intact for retry.
//
// Section accessors allocate their section on first use, so callers can
// set fields without nil checks and without disturbing sibling sections.
type Draft struct {
	ThemeID *uuid.UUID
	State   models.EventThemeState
}

// LoadDraft deep-copies the event's theme state into an editable draft.
// Maps that may be absent on the loaded event are initialized to empty so
// downstream accessors never hit a nil map. Legacy flat-array content
// shapes are normalized to the canonical nested shape during the copy.
func LoadDraft(event *models.Event) (*Draft, error) {
	state, err := cloneState(event.ThemeState())
	if err != nil {
		return nil, fmt.Errorf("failed to copy theme state: %w", err)
	}

	draft := &Draft{State: state}
	if event.ThemeID != nil {
		id := *event.ThemeID
		draft.ThemeID = &id
	}

	if draft.State.ThemeCustomization.Colors == nil {
		draft.State.ThemeCustomization.Colors = map[string]string{}
	}
	if draft.State.ThemeCustomization.Fonts == nil {
		draft.State.ThemeCustomization.Fonts = map[string]string{}
	}
	if draft.State.ThemeCustomization.SectionVisibility == nil {
		draft.State.ThemeCustomization.SectionVisibility = models.SectionVisibility{}
	}
	if draft.State.ThemeContent.TicketFeatures == nil {
		draft.State.ThemeContent.TicketFeatures = map[string][]string{}
	}

	return draft, nil
}

// cloneState deep-copies theme state through its JSON form. The copy never
// shares maps, slices or pointers with the source, and decoding applies
// the same shape normalization as any other read path.
func cloneState(state models.EventThemeState) (models.EventThemeState, error) {
	raw, err := json.Marshal(state)
	if err != nil {
		return models.EventThemeState{}, err
	}
	var out models.EventThemeState
	if err := json.Unmarshal(raw, &out); err != nil {
		return models.EventThemeState{}, err
	}
	return out, nil
}

// SetColor overrides one color role. An empty value falls back to the
// template default at resolution time.
func (d *Draft) SetColor(role, value string) {
	d.State.ThemeCustomization.Colors[role] = value
}

// SetFont overrides one font role.
func (d *Draft) SetFont(role, value string) {
	d.State.ThemeCustomization.Fonts[role] = value
}

// SetLogo overrides the logo asset URL.
func (d *Draft) SetLogo(url string) {
	d.State.ThemeCustomization.Logo = &url
}

// SetSEO replaces the SEO settings.
func (d *Draft) SetSEO(seo models.SEOSettings) {
	d.State.SEOSettings = seo
}

// ToggleVisibility flips a section's visibility flag. A section with no
// stored flag is visible, so the first toggle hides it. Toggling a
// non-toggleable section (branding, hero, footer) is a no-op.
func (d *Draft) ToggleVisibility(section string) {
	if !Toggleable(section) {
		return
	}
	visibility := d.State.ThemeCustomization.SectionVisibility
	current, ok := visibility[section]
	if !ok {
		visibility[section] = false
		return
	}
	visibility[section] = !current
}

// Hero returns the hero section override, allocating it on first use.
func (d *Draft) Hero() *models.HeroContent {
	if d.State.ThemeContent.Hero == nil {
		d.State.ThemeContent.Hero = &models.HeroContent{}
	}
	return d.State.ThemeContent.Hero
}

// About returns the about section override, allocating it on first use.
func (d *Draft) About() *models.AboutContent {
	if d.State.ThemeContent.About == nil {
		d.State.ThemeContent.About = &models.AboutContent{}
	}
	return d.State.ThemeContent.About
}

// Features returns the features section override, allocating it on first use.
func (d *Draft) Features() *models.FeaturesContent {
	if d.State.ThemeContent.Features == nil {
		d.State.ThemeContent.Features = &models.FeaturesContent{}
	}
	return d.State.ThemeContent.Features
}

// Tickets returns the tickets section override, allocating it on first use.
func (d *Draft) Tickets() *models.TicketsContent {
	if d.State.ThemeContent.Tickets == nil {
		d.State.ThemeContent.Tickets = &models.TicketsContent{}
	}
	return d.State.ThemeContent.Tickets
}

// Schedule returns the schedule section override, allocating it on first use.
func (d *Draft) Schedule() *models.ScheduleContent {
	if d.State.ThemeContent.Schedule == nil {
		d.State.ThemeContent.Schedule = &models.ScheduleContent{}
	}
	return d.State.ThemeContent.Schedule
}

// Speakers returns the speakers section override, allocating it on first use.
func (d *Draft) Speakers() *models.SpeakersContent {
	if d.State.ThemeContent.Speakers == nil {
		d.State.ThemeContent.Speakers = &models.SpeakersContent{}
	}
	return d.State.ThemeContent.Speakers
}

// Venue returns the venue section override, allocating it on first use.
func (d *Draft) Venue() *models.VenueContent {
	if d.State.ThemeContent.Venue == nil {
		d.State.ThemeContent.Venue = &models.VenueContent{}
	}
	return d.State.ThemeContent.Venue
}

// Gallery returns the gallery section override, allocating it on first use.
func (d *Draft) Gallery() *models.GalleryContent {
	if d.State.ThemeContent.Gallery == nil {
		d.State.ThemeContent.Gallery = &models.GalleryContent{}
	}
	return d.State.ThemeContent.Gallery
}

// FAQ returns the faq section override, allocating it on first use.
func (d *Draft) FAQ() *models.FAQContent {
	if d.State.ThemeContent.FAQ == nil {
		d.State.ThemeContent.FAQ = &models.FAQContent{}
	}
	return d.State.ThemeContent.FAQ
}

// Footer returns the footer section override, allocating it on first use.
func (d *Draft) Footer() *models.FooterContent {
	if d.State.ThemeContent.Footer == nil {
		d.State.ThemeContent.Footer = &models.FooterContent{}
	}
	return d.State.ThemeContent.Footer
}
