// Tessera - Multi-Tenant Event Ticketing Platform
// Copyright 2026 Tessera Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tessera-hq/tessera

package validation

import (
	"strings"
	"testing"

	"github.com/tessera-hq/tessera/internal/models"
)

func TestSlugValidator(t *testing.T) {
	t.Parallel()

	type subject struct {
		Slug string `validate:"slug"`
	}

	tests := []struct {
		slug  string
		valid bool
	}{
		{"summer-fest", true},
		{"summerfest2026", true},
		{"a", true},
		{"Summer-Fest", false},
		{"summer fest", false},
		{"summer--fest", false},
		{"-summer", false},
		{"summer-", false},
		{"", false},
	}

	for _, tt := range tests {
		t.Run(tt.slug, func(t *testing.T) {
			t.Parallel()

			err := ValidateStruct(&subject{Slug: tt.slug})
			if tt.valid && err != nil {
				t.Errorf("%q should be valid, got %v", tt.slug, err)
			}
			if !tt.valid && err == nil {
				t.Errorf("%q should be rejected", tt.slug)
			}
		})
	}
}

func TestSectionIDValidator(t *testing.T) {
	t.Parallel()

	type subject struct {
		Section string `validate:"sectionid"`
	}

	for _, section := range []string{"hero", "about", "faq", "footer"} {
		if err := ValidateStruct(&subject{Section: section}); err != nil {
			t.Errorf("%q should be valid, got %v", section, err)
		}
	}
	if err := ValidateStruct(&subject{Section: "sidebar"}); err == nil {
		t.Error("unknown section should be rejected")
	}
}

func TestValidateEventRequest(t *testing.T) {
	t.Parallel()

	req := models.CreateEventRequest{
		Name: "Summer Fest",
		Slug: "summer-fest",
	}
	if err := ValidateStruct(&req); err != nil {
		t.Errorf("minimal valid request rejected: %v", err)
	}

	req.Slug = "Not A Slug"
	req.Gallery = []string{"not-a-url"}
	verr := ValidateStruct(&req)
	if verr == nil {
		t.Fatal("invalid request accepted")
	}
	if len(verr.Errors()) != 2 {
		t.Errorf("expected 2 field errors, got %d: %v", len(verr.Errors()), verr)
	}

	apiErr := verr.ToAPIError()
	if apiErr.Code != "VALIDATION_ERROR" {
		t.Errorf("code = %q", apiErr.Code)
	}
	if _, ok := apiErr.Details["fields"]; !ok {
		t.Errorf("multi-error details should list fields, got %v", apiErr.Details)
	}
}

func TestSingleErrorShape(t *testing.T) {
	t.Parallel()

	req := models.TicketTypeRequest{
		Name:     "VIP",
		Currency: "eur", // must be uppercase
	}
	req.EventID = [16]byte{1}

	verr := ValidateStruct(&req)
	if verr == nil {
		t.Fatal("lowercase currency accepted")
	}
	apiErr := verr.ToAPIError()
	if apiErr.Details["field"] != "Currency" {
		t.Errorf("details = %v", apiErr.Details)
	}
	if !strings.Contains(apiErr.Message, "Currency") {
		t.Errorf("message = %q", apiErr.Message)
	}
}
