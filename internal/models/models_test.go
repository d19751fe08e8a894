// Tessera - Multi-Tenant Event Ticketing Platform
// Copyright 2026 Tessera Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tessera-hq/tessera

package models

import (
	"testing"

	json "github.com/goccy/go-json"
)

func TestFeaturesContentAcceptsFlatArray(t *testing.T) {
	t.Parallel()

	var content SectionContent
	raw := `{"features": [{"icon": "star", "title": "A", "description": "first"}]}`
	if err := json.Unmarshal([]byte(raw), &content); err != nil {
		t.Fatalf("unmarshal flat shape: %v", err)
	}

	if content.Features == nil {
		t.Fatal("features section should be present")
	}
	if len(content.Features.Features) != 1 || content.Features.Features[0].Title != "A" {
		t.Errorf("flat array not normalized, got %+v", content.Features.Features)
	}
}

func TestFeaturesContentAcceptsNestedObject(t *testing.T) {
	t.Parallel()

	var content SectionContent
	raw := `{"features": {"heading": "Why attend", "features": [{"title": "B"}]}}`
	if err := json.Unmarshal([]byte(raw), &content); err != nil {
		t.Fatalf("unmarshal nested shape: %v", err)
	}

	if content.Features == nil || content.Features.Heading == nil {
		t.Fatal("nested heading should be present")
	}
	if *content.Features.Heading != "Why attend" {
		t.Errorf("heading = %q", *content.Features.Heading)
	}
	if len(content.Features.Features) != 1 || content.Features.Features[0].Title != "B" {
		t.Errorf("nested list not read, got %+v", content.Features.Features)
	}
}

func TestFeaturesContentMarshalsCanonicalShape(t *testing.T) {
	t.Parallel()

	var content SectionContent
	if err := json.Unmarshal([]byte(`{"features": [{"title": "A"}]}`), &content); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}

	out, err := json.Marshal(content)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}

	var roundTrip map[string]interface{}
	if err := json.Unmarshal(out, &roundTrip); err != nil {
		t.Fatalf("reparse: %v", err)
	}
	section, ok := roundTrip["features"].(map[string]interface{})
	if !ok {
		t.Fatalf("features should serialize as an object, got %T", roundTrip["features"])
	}
	if _, ok := section["features"].([]interface{}); !ok {
		t.Errorf("canonical shape should nest the list under features, got %+v", section)
	}
}

func TestSpeakersAndFAQDualShape(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		raw  string
		want func(t *testing.T, c SectionContent)
	}{
		{
			name: "speakers flat",
			raw:  `{"speakers": [{"name": "Ada", "social": {"twitter": "https://x.com/ada"}}]}`,
			want: func(t *testing.T, c SectionContent) {
				if len(c.Speakers.Speakers) != 1 || c.Speakers.Speakers[0].Name != "Ada" {
					t.Errorf("speakers = %+v", c.Speakers)
				}
			},
		},
		{
			name: "speakers nested",
			raw:  `{"speakers": {"speakers": [{"name": "Grace"}]}}`,
			want: func(t *testing.T, c SectionContent) {
				if len(c.Speakers.Speakers) != 1 || c.Speakers.Speakers[0].Name != "Grace" {
					t.Errorf("speakers = %+v", c.Speakers)
				}
			},
		},
		{
			name: "faq flat",
			raw:  `{"faq": [{"question": "When?", "answer": "June"}]}`,
			want: func(t *testing.T, c SectionContent) {
				if len(c.FAQ.Items) != 1 || c.FAQ.Items[0].Question != "When?" {
					t.Errorf("faq = %+v", c.FAQ)
				}
			},
		},
		{
			name: "faq nested",
			raw:  `{"faq": {"heading": "FAQ", "faq": [{"question": "Where?"}]}}`,
			want: func(t *testing.T, c SectionContent) {
				if len(c.FAQ.Items) != 1 || c.FAQ.Items[0].Question != "Where?" {
					t.Errorf("faq = %+v", c.FAQ)
				}
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			var content SectionContent
			if err := json.Unmarshal([]byte(tt.raw), &content); err != nil {
				t.Fatalf("unmarshal: %v", err)
			}
			tt.want(t, content)
		})
	}
}

func TestEmptyListSurvivesRoundTrip(t *testing.T) {
	t.Parallel()

	// An explicit empty list replaces the template default wholesale, so
	// persistence must not collapse it into an absent key.
	var content SectionContent
	if err := json.Unmarshal([]byte(`{"faq": []}`), &content); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if content.FAQ == nil || content.FAQ.Items == nil {
		t.Fatal("empty faq list should be present and non-nil")
	}
	if len(content.FAQ.Items) != 0 {
		t.Fatalf("faq items = %+v", content.FAQ.Items)
	}

	out, err := json.Marshal(content)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	var again SectionContent
	if err := json.Unmarshal(out, &again); err != nil {
		t.Fatalf("reparse: %v", err)
	}
	if again.FAQ == nil || again.FAQ.Items == nil || len(again.FAQ.Items) != 0 {
		t.Errorf("empty list lost on round trip: %+v", again.FAQ)
	}
}

func TestEmptyStringOverrideSurvivesRoundTrip(t *testing.T) {
	t.Parallel()

	var content SectionContent
	if err := json.Unmarshal([]byte(`{"hero": {"title": ""}}`), &content); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if content.Hero == nil || content.Hero.Title == nil {
		t.Fatal("explicit empty title should count as present")
	}
	if content.Hero.Subtitle != nil {
		t.Error("absent subtitle should stay nil")
	}

	out, err := json.Marshal(content)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	var again SectionContent
	if err := json.Unmarshal(out, &again); err != nil {
		t.Fatalf("reparse: %v", err)
	}
	if again.Hero == nil || again.Hero.Title == nil || *again.Hero.Title != "" {
		t.Error("empty-string override lost on round trip")
	}
}

func TestThemeCustomizationScanNil(t *testing.T) {
	t.Parallel()

	var c ThemeCustomization
	if err := c.Scan(nil); err != nil {
		t.Fatalf("scan of NULL column: %v", err)
	}
	if c.Colors != nil || c.SectionVisibility != nil {
		t.Errorf("NULL column should leave zero value, got %+v", c)
	}

	if err := c.Scan([]byte(`{"colors": {"primary": "#ff5500"}, "sectionVisibility": {"about": false}}`)); err != nil {
		t.Fatalf("scan: %v", err)
	}
	if c.Colors["primary"] != "#ff5500" {
		t.Errorf("colors = %v", c.Colors)
	}
	if visible, ok := c.SectionVisibility["about"]; !ok || visible {
		t.Errorf("sectionVisibility = %v", c.SectionVisibility)
	}
}

func TestIsValidRole(t *testing.T) {
	t.Parallel()

	for _, role := range ValidRoles {
		if !IsValidRole(role) {
			t.Errorf("IsValidRole(%q) = false", role)
		}
	}
	if IsValidRole("superuser") {
		t.Error("unknown role accepted")
	}
	if IsValidRole("") {
		t.Error("empty role accepted")
	}
}
