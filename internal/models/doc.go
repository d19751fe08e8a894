// Tessera - Multi-Tenant Event Ticketing Platform
// Copyright 2026 Tessera Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tessera-hq/tessera

/*
Package models defines the data structures shared across the Tessera API.

This package is the single source of truth for domain entities, API
request/response structures, and the theme content schema. It contains
no business logic beyond JSON shape normalization; merge and visibility
semantics live in internal/theme.

Key Components:

  - ThemeTemplate: platform-level visual style with default content and tokens
  - Event / EventThemeState: per-event overrides layered on a template
  - SectionContent: the per-section content schema shared by template defaults
    and event overrides
  - ResolvedView: the merged, visibility-filtered structure handed to renderers
  - APIResponse: standardized response envelope for all HTTP endpoints

Model Categories:

1. Database Models (gorm, JSONB columns for nested structures):
  - Tenant, ThemeTemplate, ThemePurchase, Event, TicketType, EventSession

2. Theme Content Schema:
  - SectionContent and its per-section structs (HeroContent, AboutContent, ...)
  - FeaturesContent, SpeakersContent and FAQContent accept a legacy flat-array
    JSON shape on read and normalize to the canonical nested-object shape

3. API Request/Response Models:
  - APIResponse, APIError, Metadata, PaginationInfo
  - Request DTOs with validator tags (requests.go)
*/
package models
