// Tessera - Multi-Tenant Event Ticketing Platform
// Copyright 2026 Tessera Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tessera-hq/tessera

package theme

import (
	"github.com/tessera-hq/tessera/internal/models"
)

// Resolve merges a theme template with an event's override state into the
// view a renderer consumes. It is a pure function: no I/O, inputs are never
// mutated, and the output shares no mutable data with either input.
//
// A nil template returns ErrMissingTheme; callers map it to the
// theme-not-assigned state rather than failing the request.
func Resolve(template *models.ThemeTemplate, state models.EventThemeState) (*models.ResolvedView, error) {
	if template == nil {
		return nil, ErrMissingTheme
	}

	view := &models.ResolvedView{
		StyleOverrides: models.StyleOverrides{
			Colors: mergeRoles(template.DefaultProperties.Colors, state.ThemeCustomization.Colors),
			Fonts:  mergeRoles(template.DefaultProperties.Fonts, state.ThemeCustomization.Fonts),
		},
		VisibleSections: make([]string, 0, len(SectionOrder)),
	}

	visibility := map[string]bool(state.ThemeCustomization.SectionVisibility)
	defaults := template.DefaultContent
	overrides := state.ThemeContent

	for _, section := range SectionOrder {
		if !sectionVisible(section, visibility) {
			continue
		}

		switch section {
		case SectionBranding:
			// Carries no content payload; the logo lives in assets and
			// the colors in styleOverrides.
		case SectionHero:
			view.Sections.Hero = mergeHero(defaults.Hero, overrides.Hero)
		case SectionAbout:
			view.Sections.About = mergeAbout(defaults.About, overrides.About)
		case SectionFeatures:
			view.Sections.Features = mergeFeatures(defaults.Features, overrides.Features)
		case SectionTickets:
			view.Sections.Tickets = mergeTickets(defaults.Tickets, overrides.Tickets)
			view.Sections.TicketFeatures = pickTicketFeatures(overrides.TicketFeatures, defaults.TicketFeatures)
		case SectionSchedule:
			view.Sections.Schedule = mergeSchedule(defaults.Schedule, overrides.Schedule)
		case SectionSpeakers:
			view.Sections.Speakers = mergeSpeakers(defaults.Speakers, overrides.Speakers)
		case SectionVenue:
			view.Sections.Venue = mergeVenue(defaults.Venue, overrides.Venue)
		case SectionGallery:
			view.Sections.Gallery = mergeGallery(defaults.Gallery, overrides.Gallery)
		case SectionFAQ:
			view.Sections.FAQ = mergeFAQ(defaults.FAQ, overrides.FAQ)
		case SectionFooter:
			view.Sections.Footer = mergeFooter(defaults.Footer, overrides.Footer)
		}

		view.VisibleSections = append(view.VisibleSections, section)
	}

	if state.ThemeCustomization.Logo != nil && *state.ThemeCustomization.Logo != "" {
		view.Assets.LogoURL = *state.ThemeCustomization.Logo
	}
	if view.Sections.Hero != nil && view.Sections.Hero.BackgroundImage != nil {
		view.Assets.HeroBannerURL = *view.Sections.Hero.BackgroundImage
	}

	view.SiteInfo.Title = state.SEOSettings.MetaTitle
	view.SiteInfo.Description = state.SEOSettings.MetaDescription

	return view, nil
}

// ResolveEvent resolves an event against its loaded template and fills the
// site info the renderer needs from the event and tenant records. The
// event's Theme association must already be loaded; a nil Theme returns
// ErrMissingTheme.
func ResolveEvent(event *models.Event) (*models.ResolvedView, error) {
	view, err := Resolve(event.Theme, event.ThemeState())
	if err != nil {
		return nil, err
	}

	if view.SiteInfo.Title == "" {
		view.SiteInfo.Title = event.Name
	}
	if view.SiteInfo.Description == "" {
		view.SiteInfo.Description = event.Description
	}
	if event.Tenant != nil {
		view.SiteInfo.ContactEmail = event.Tenant.ContactEmail
		if len(event.Tenant.SocialLinks) > 0 {
			links := make(map[string]string, len(event.Tenant.SocialLinks))
			for name, url := range event.Tenant.SocialLinks {
				links[name] = url
			}
			view.SiteInfo.SocialLinks = links
		}
	}

	return view, nil
}

// mergeRoles applies per-role overrides on top of the template defaults.
// Only non-empty override values win; an empty color or font value falls
// back to the default. Override roles unknown to the template pass through.
func mergeRoles(defaults, overrides map[string]string) map[string]string {
	merged := make(map[string]string, len(defaults))
	for role, value := range defaults {
		merged[role] = value
	}
	for role, value := range overrides {
		if value != "" {
			merged[role] = value
		}
	}
	return merged
}

// pickStr implements scalar override precedence: the override wins when
// present, including an explicit empty string. The result never aliases
// either input.
func pickStr(override, def *string) *string {
	if override != nil {
		return cloneStr(override)
	}
	return cloneStr(def)
}

func cloneStr(p *string) *string {
	if p == nil {
		return nil
	}
	v := *p
	return &v
}

// pickList implements wholesale list replacement: a defined override list,
// even empty, replaces the default in full. An undefined (nil) override
// list keeps the default.
func pickList[T any](override, def []T) []T {
	src := def
	if override != nil {
		src = override
	}
	if src == nil {
		return nil
	}
	out := make([]T, len(src))
	copy(out, src)
	return out
}

func pickTicketFeatures(override, def map[string][]string) map[string][]string {
	src := def
	if override != nil {
		src = override
	}
	if src == nil {
		return nil
	}
	out := make(map[string][]string, len(src))
	for id, features := range src {
		out[id] = append([]string(nil), features...)
	}
	return out
}

func mergeHero(def, override *models.HeroContent) *models.HeroContent {
	if def == nil && override == nil {
		return nil
	}
	var d, o models.HeroContent
	if def != nil {
		d = *def
	}
	if override != nil {
		o = *override
	}
	return &models.HeroContent{
		Title:           pickStr(o.Title, d.Title),
		Subtitle:        pickStr(o.Subtitle, d.Subtitle),
		CTAText:         pickStr(o.CTAText, d.CTAText),
		CTALink:         pickStr(o.CTALink, d.CTALink),
		BackgroundImage: pickStr(o.BackgroundImage, d.BackgroundImage),
	}
}

func mergeAbout(def, override *models.AboutContent) *models.AboutContent {
	if def == nil && override == nil {
		return nil
	}
	var d, o models.AboutContent
	if def != nil {
		d = *def
	}
	if override != nil {
		o = *override
	}
	return &models.AboutContent{
		Heading:    pickStr(o.Heading, d.Heading),
		SubHeading: pickStr(o.SubHeading, d.SubHeading),
		Content:    pickStr(o.Content, d.Content),
		Image:      pickStr(o.Image, d.Image),
		Stats:      pickList(o.Stats, d.Stats),
	}
}

func mergeFeatures(def, override *models.FeaturesContent) *models.FeaturesContent {
	if def == nil && override == nil {
		return nil
	}
	var d, o models.FeaturesContent
	if def != nil {
		d = *def
	}
	if override != nil {
		o = *override
	}
	return &models.FeaturesContent{
		Heading:    pickStr(o.Heading, d.Heading),
		SubHeading: pickStr(o.SubHeading, d.SubHeading),
		Features:   pickList(o.Features, d.Features),
	}
}

func mergeTickets(def, override *models.TicketsContent) *models.TicketsContent {
	if def == nil && override == nil {
		return nil
	}
	var d, o models.TicketsContent
	if def != nil {
		d = *def
	}
	if override != nil {
		o = *override
	}
	return &models.TicketsContent{
		Heading:     pickStr(o.Heading, d.Heading),
		SubHeading:  pickStr(o.SubHeading, d.SubHeading),
		Description: pickStr(o.Description, d.Description),
	}
}

func mergeSchedule(def, override *models.ScheduleContent) *models.ScheduleContent {
	if def == nil && override == nil {
		return nil
	}
	var d, o models.ScheduleContent
	if def != nil {
		d = *def
	}
	if override != nil {
		o = *override
	}
	return &models.ScheduleContent{
		Heading:     pickStr(o.Heading, d.Heading),
		SubHeading:  pickStr(o.SubHeading, d.SubHeading),
		Description: pickStr(o.Description, d.Description),
	}
}

func mergeSpeakers(def, override *models.SpeakersContent) *models.SpeakersContent {
	if def == nil && override == nil {
		return nil
	}
	var d, o models.SpeakersContent
	if def != nil {
		d = *def
	}
	if override != nil {
		o = *override
	}
	merged := &models.SpeakersContent{
		Heading:    pickStr(o.Heading, d.Heading),
		SubHeading: pickStr(o.SubHeading, d.SubHeading),
	}
	src := d.Speakers
	if o.Speakers != nil {
		src = o.Speakers
	}
	if src != nil {
		merged.Speakers = make([]models.Speaker, len(src))
		for i, speaker := range src {
			copied := speaker
			if speaker.Social != nil {
				copied.Social = make(map[string]string, len(speaker.Social))
				for network, url := range speaker.Social {
					copied.Social[network] = url
				}
			}
			merged.Speakers[i] = copied
		}
	}
	return merged
}

func mergeVenue(def, override *models.VenueContent) *models.VenueContent {
	if def == nil && override == nil {
		return nil
	}
	var d, o models.VenueContent
	if def != nil {
		d = *def
	}
	if override != nil {
		o = *override
	}
	return &models.VenueContent{
		Heading:    pickStr(o.Heading, d.Heading),
		SubHeading: pickStr(o.SubHeading, d.SubHeading),
		Address:    pickStr(o.Address, d.Address),
		MapURL:     pickStr(o.MapURL, d.MapURL),
		Directions: pickStr(o.Directions, d.Directions),
		Parking:    pickStr(o.Parking, d.Parking),
	}
}

func mergeGallery(def, override *models.GalleryContent) *models.GalleryContent {
	if def == nil && override == nil {
		return nil
	}
	var d, o models.GalleryContent
	if def != nil {
		d = *def
	}
	if override != nil {
		o = *override
	}
	return &models.GalleryContent{
		Heading:    pickStr(o.Heading, d.Heading),
		SubHeading: pickStr(o.SubHeading, d.SubHeading),
	}
}

func mergeFAQ(def, override *models.FAQContent) *models.FAQContent {
	if def == nil && override == nil {
		return nil
	}
	var d, o models.FAQContent
	if def != nil {
		d = *def
	}
	if override != nil {
		o = *override
	}
	return &models.FAQContent{
		Heading:     pickStr(o.Heading, d.Heading),
		SubHeading:  pickStr(o.SubHeading, d.SubHeading),
		Description: pickStr(o.Description, d.Description),
		Items:       pickList(o.Items, d.Items),
	}
}

func mergeFooter(def, override *models.FooterContent) *models.FooterContent {
	if def == nil && override == nil {
		return nil
	}
	var d, o models.FooterContent
	if def != nil {
		d = *def
	}
	if override != nil {
		o = *override
	}
	merged := &models.FooterContent{
		CopyrightText: pickStr(o.CopyrightText, d.CopyrightText),
		Description:   pickStr(o.Description, d.Description),
	}
	socials := d.Socials
	if o.Socials != nil {
		socials = o.Socials
	}
	if socials != nil {
		copied := *socials
		merged.Socials = &copied
	}
	return merged
}
