// Tessera - Multi-Tenant Event Ticketing Platform
// Copyright 2026 Tessera Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tessera-hq/tessera

/*
lists.go - Positional List Operations

List items (stats, features, speakers, faq entries, ticket features) are
addressed by position, not by a stable id: deleting index k shifts every
subsequent index. Updates at an out-of-range index are an error and never
silently append. Concurrent edits to the same list are last-write-wins at
save time; no element-wise merge happens anywhere.
*/

package theme

import (
	"github.com/tessera-hq/tessera/internal/models"
)

// replaceAt overwrites the element at index in place.
func replaceAt[T any](list []T, index int, item T) error {
	if index < 0 || index >= len(list) {
		return ErrIndexOutOfRange
	}
	list[index] = item
	return nil
}

// removeAt returns the list with the element at index removed.
func removeAt[T any](list []T, index int) ([]T, error) {
	if index < 0 || index >= len(list) {
		return nil, ErrIndexOutOfRange
	}
	return append(list[:index:index], list[index+1:]...), nil
}

// AddStat appends a statistic to the about section.
func (d *Draft) AddStat(item models.Stat) {
	about := d.About()
	about.Stats = append(about.Stats, item)
}

// UpdateStat replaces the statistic at index.
func (d *Draft) UpdateStat(index int, item models.Stat) error {
	return replaceAt(d.About().Stats, index, item)
}

// DeleteStat removes the statistic at index.
func (d *Draft) DeleteStat(index int) error {
	about := d.About()
	stats, err := removeAt(about.Stats, index)
	if err != nil {
		return err
	}
	about.Stats = stats
	return nil
}

// AddFeature appends a highlight to the features section.
func (d *Draft) AddFeature(item models.Feature) {
	section := d.Features()
	section.Features = append(section.Features, item)
}

// UpdateFeature replaces the highlight at index.
func (d *Draft) UpdateFeature(index int, item models.Feature) error {
	return replaceAt(d.Features().Features, index, item)
}

// DeleteFeature removes the highlight at index.
func (d *Draft) DeleteFeature(index int) error {
	section := d.Features()
	features, err := removeAt(section.Features, index)
	if err != nil {
		return err
	}
	section.Features = features
	return nil
}

// AddSpeaker appends a speaker to the lineup.
func (d *Draft) AddSpeaker(item models.Speaker) {
	section := d.Speakers()
	section.Speakers = append(section.Speakers, item)
}

// UpdateSpeaker replaces the speaker at index.
func (d *Draft) UpdateSpeaker(index int, item models.Speaker) error {
	return replaceAt(d.Speakers().Speakers, index, item)
}

// DeleteSpeaker removes the speaker at index.
func (d *Draft) DeleteSpeaker(index int) error {
	section := d.Speakers()
	speakers, err := removeAt(section.Speakers, index)
	if err != nil {
		return err
	}
	section.Speakers = speakers
	return nil
}

// AddFAQ appends a question/answer pair to the faq section.
func (d *Draft) AddFAQ(item models.FAQItem) {
	section := d.FAQ()
	section.Items = append(section.Items, item)
}

// UpdateFAQ replaces the question/answer pair at index.
func (d *Draft) UpdateFAQ(index int, item models.FAQItem) error {
	return replaceAt(d.FAQ().Items, index, item)
}

// DeleteFAQ removes the question/answer pair at index.
func (d *Draft) DeleteFAQ(index int) error {
	section := d.FAQ()
	items, err := removeAt(section.Items, index)
	if err != nil {
		return err
	}
	section.Items = items
	return nil
}

// SetTicketFeatures replaces the ordered feature list for a ticket type.
func (d *Draft) SetTicketFeatures(ticketTypeID string, features []string) {
	d.State.ThemeContent.TicketFeatures[ticketTypeID] = append([]string(nil), features...)
}

// AddTicketFeature appends a feature string to a ticket type's list,
// creating the list on first use.
func (d *Draft) AddTicketFeature(ticketTypeID, feature string) {
	tf := d.State.ThemeContent.TicketFeatures
	tf[ticketTypeID] = append(tf[ticketTypeID], feature)
}

// UpdateTicketFeature replaces the feature string at index for a ticket type.
func (d *Draft) UpdateTicketFeature(ticketTypeID string, index int, feature string) error {
	list, ok := d.State.ThemeContent.TicketFeatures[ticketTypeID]
	if !ok {
		return ErrUnknownTicketType
	}
	return replaceAt(list, index, feature)
}

// DeleteTicketFeature removes the feature string at index for a ticket type.
func (d *Draft) DeleteTicketFeature(ticketTypeID string, index int) error {
	list, ok := d.State.ThemeContent.TicketFeatures[ticketTypeID]
	if !ok {
		return ErrUnknownTicketType
	}
	updated, err := removeAt(list, index)
	if err != nil {
		return err
	}
	d.State.ThemeContent.TicketFeatures[ticketTypeID] = updated
	return nil
}

// RemoveTicketFeatures drops the feature list for a ticket type, used when
// the ticket type itself is deleted.
func (d *Draft) RemoveTicketFeatures(ticketTypeID string) {
	delete(d.State.ThemeContent.TicketFeatures, ticketTypeID)
}
