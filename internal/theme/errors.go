// Tessera - Multi-Tenant Event Ticketing Platform
// Copyright 2026 Tessera Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tessera-hq/tessera

package theme

import "errors"

var (
	// ErrMissingTheme indicates resolution was attempted without a
	// template. Callers render a theme-not-assigned state instead of
	// treating this as a failure.
	ErrMissingTheme = errors.New("no theme template assigned")

	// ErrUnknownSection indicates a section identifier outside the known
	// set (branding, hero, about, features, tickets, schedule, speakers,
	// venue, gallery, faq, footer).
	ErrUnknownSection = errors.New("unknown section identifier")

	// ErrIndexOutOfRange indicates a positional list operation addressed
	// an index outside the current list bounds. Updates never silently
	// append.
	ErrIndexOutOfRange = errors.New("list index out of range")

	// ErrUnknownTicketType indicates a ticket-feature operation addressed
	// a ticket type with no feature list in the draft.
	ErrUnknownTicketType = errors.New("no feature list for ticket type")
)
