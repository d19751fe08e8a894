// Tessera - Multi-Tenant Event Ticketing Platform
// Copyright 2026 Tessera Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tessera-hq/tessera

/*
Package theme implements the theme content resolution model: the merge of a
platform ThemeTemplate with a per-event override state into the resolved
view a renderer consumes.

Resolution rules:

  - Color and font roles: the event override wins when present and
    non-empty, otherwise the template default applies.
  - Scalar content fields: the event override wins when the key is present,
    including an explicit empty string, which clears inherited text.
  - List fields (stats, features, speakers, faq): replaced wholesale when
    the event defines the list, even as an empty list. No element-wise merge.
  - Visibility: absence of a sectionVisibility key means visible. The
    branding, hero and footer sections render regardless of stored flags.

Resolve is a pure function: no I/O, inputs are never mutated, identical
inputs yield identical output.

The package also provides Draft, an in-memory editable copy of an event's
theme state with typed section accessors and positional list operations.
Drafts are persisted whole-object by the API layer; nothing here touches
storage.
*/
package theme
