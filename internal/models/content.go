// Tessera - Multi-Tenant Event Ticketing Platform
// Copyright 2026 Tessera Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tessera-hq/tessera

/*
content.go - Theme Content Schema

This file defines the per-section content structure shared by a theme
template's defaultContent and an event's themeContent overrides.

Scalar fields are pointers so that an absent key (fall back to the template
default) is distinguishable from an explicit empty string (override to
blank). List fields carry the same distinction through nil vs empty slices:
a nil slice means the event does not define the list and the template
default applies in full; a non-nil slice, even empty, replaces the default
wholesale. List fields therefore never use omitempty.

The features, speakers and faq sections historically stored their list in
two JSON shapes: a flat array directly under the section key, or an object
nesting the list under a same-named key. Both shapes are accepted on read;
the nested object is the canonical shape all writers produce.
*/

package models

import (
	"bytes"

	json "github.com/goccy/go-json"
)

// SectionContent is the full per-section content structure. A template's
// defaultContent populates every section; an event's themeContent is a
// sparse instance where nil sections fall back to the template.
type SectionContent struct {
	Hero     *HeroContent     `json:"hero,omitempty"`
	About    *AboutContent    `json:"about,omitempty"`
	Features *FeaturesContent `json:"features,omitempty"`
	Tickets  *TicketsContent  `json:"tickets,omitempty"`
	Schedule *ScheduleContent `json:"schedule,omitempty"`
	Speakers *SpeakersContent `json:"speakers,omitempty"`
	Venue    *VenueContent    `json:"venue,omitempty"`
	Gallery  *GalleryContent  `json:"gallery,omitempty"`
	FAQ      *FAQContent      `json:"faq,omitempty"`
	Footer   *FooterContent   `json:"footer,omitempty"`

	// TicketFeatures maps a TicketType ID to its ordered list of feature
	// strings. Stored inside themeContent, separate from the TicketType
	// record itself.
	TicketFeatures map[string][]string `json:"ticketFeatures,omitempty"`
}

// HeroContent is the landing banner section.
type HeroContent struct {
	Title           *string `json:"title,omitempty"`
	Subtitle        *string `json:"subtitle,omitempty"`
	CTAText         *string `json:"ctaText,omitempty"`
	CTALink         *string `json:"ctaLink,omitempty"`
	BackgroundImage *string `json:"backgroundImage,omitempty"`
}

// AboutContent describes the event and its headline statistics.
type AboutContent struct {
	Heading    *string `json:"heading,omitempty"`
	SubHeading *string `json:"subHeading,omitempty"`
	Content    *string `json:"content,omitempty"`
	Image      *string `json:"image,omitempty"`
	Stats      []Stat  `json:"stats"`
}

// Stat is a single headline statistic, displayed in list order.
type Stat struct {
	Value string `json:"value"`
	Label string `json:"label"`
}

// FeaturesContent lists event highlights. Accepts the legacy flat-array
// shape on read; see UnmarshalJSON.
type FeaturesContent struct {
	Heading    *string   `json:"heading,omitempty"`
	SubHeading *string   `json:"subHeading,omitempty"`
	Features   []Feature `json:"features"`
}

// Feature is a single highlight entry.
type Feature struct {
	Icon        string `json:"icon"`
	Title       string `json:"title"`
	Description string `json:"description"`
}

// UnmarshalJSON accepts both the canonical nested-object shape and the
// legacy flat-array shape (the section key holding the list directly).
func (f *FeaturesContent) UnmarshalJSON(data []byte) error {
	if isJSONArray(data) {
		var items []Feature
		if err := json.Unmarshal(data, &items); err != nil {
			return err
		}
		*f = FeaturesContent{Features: items}
		return nil
	}

	type plain FeaturesContent
	var p plain
	if err := json.Unmarshal(data, &p); err != nil {
		return err
	}
	*f = FeaturesContent(p)
	return nil
}

// TicketsContent holds the copy above the ticket inventory. Ticket names,
// prices and quantities live on TicketType entities, not here.
type TicketsContent struct {
	Heading     *string `json:"heading,omitempty"`
	SubHeading  *string `json:"subHeading,omitempty"`
	Description *string `json:"description,omitempty"`
}

// ScheduleContent holds the copy above the session list. Session entries
// come from EventSession entities, read-only from the theme editor.
type ScheduleContent struct {
	Heading     *string `json:"heading,omitempty"`
	SubHeading  *string `json:"subHeading,omitempty"`
	Description *string `json:"description,omitempty"`
}

// SpeakersContent lists the speaker lineup. Accepts the legacy flat-array
// shape on read.
type SpeakersContent struct {
	Heading    *string   `json:"heading,omitempty"`
	SubHeading *string   `json:"subHeading,omitempty"`
	Speakers   []Speaker `json:"speakers"`
}

// Speaker is a single lineup entry. Social maps a network name
// (twitter, linkedin, ...) to a profile URL.
type Speaker struct {
	Name   string            `json:"name"`
	Role   string            `json:"role"`
	Bio    string            `json:"bio"`
	Image  string            `json:"image"`
	Social map[string]string `json:"social,omitempty"`
}

// UnmarshalJSON accepts both the canonical nested-object shape and the
// legacy flat-array shape.
func (s *SpeakersContent) UnmarshalJSON(data []byte) error {
	if isJSONArray(data) {
		var items []Speaker
		if err := json.Unmarshal(data, &items); err != nil {
			return err
		}
		*s = SpeakersContent{Speakers: items}
		return nil
	}

	type plain SpeakersContent
	var p plain
	if err := json.Unmarshal(data, &p); err != nil {
		return err
	}
	*s = SpeakersContent(p)
	return nil
}

// VenueContent describes the venue. The venue name and city live on the
// Event entity itself.
type VenueContent struct {
	Heading    *string `json:"heading,omitempty"`
	SubHeading *string `json:"subHeading,omitempty"`
	Address    *string `json:"address,omitempty"`
	MapURL     *string `json:"mapUrl,omitempty"`
	Directions *string `json:"directions,omitempty"`
	Parking    *string `json:"parking,omitempty"`
}

// GalleryContent holds the copy above the image gallery. The image URLs
// themselves live on Event.Gallery.
type GalleryContent struct {
	Heading    *string `json:"heading,omitempty"`
	SubHeading *string `json:"subHeading,omitempty"`
}

// FAQContent lists frequently asked questions. Accepts the legacy
// flat-array shape on read.
type FAQContent struct {
	Heading     *string   `json:"heading,omitempty"`
	SubHeading  *string   `json:"subHeading,omitempty"`
	Description *string   `json:"description,omitempty"`
	Items       []FAQItem `json:"faq"`
}

// FAQItem is a single question/answer pair.
type FAQItem struct {
	Question string `json:"question"`
	Answer   string `json:"answer"`
}

// UnmarshalJSON accepts both the canonical nested-object shape and the
// legacy flat-array shape.
func (f *FAQContent) UnmarshalJSON(data []byte) error {
	if isJSONArray(data) {
		var items []FAQItem
		if err := json.Unmarshal(data, &items); err != nil {
			return err
		}
		*f = FAQContent{Items: items}
		return nil
	}

	type plain FAQContent
	var p plain
	if err := json.Unmarshal(data, &p); err != nil {
		return err
	}
	*f = FAQContent(p)
	return nil
}

// FooterContent is the page footer. Always rendered regardless of any
// stored visibility flag.
type FooterContent struct {
	CopyrightText *string        `json:"copyrightText,omitempty"`
	Description   *string        `json:"description,omitempty"`
	Socials       *FooterSocials `json:"socials,omitempty"`
}

// FooterSocials holds the event's social profile links.
type FooterSocials struct {
	Facebook  string `json:"facebook,omitempty"`
	Twitter   string `json:"twitter,omitempty"`
	LinkedIn  string `json:"linkedin,omitempty"`
	Instagram string `json:"instagram,omitempty"`
}

// isJSONArray reports whether the raw JSON value is an array.
func isJSONArray(data []byte) bool {
	trimmed := bytes.TrimLeft(data, " \t\r\n")
	return len(trimmed) > 0 && trimmed[0] == '['
}
