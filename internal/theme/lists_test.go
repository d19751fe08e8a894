// Tessera - Multi-Tenant Event Ticketing Platform
// Copyright 2026 Tessera Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tessera-hq/tessera

package theme

import (
	"errors"
	"testing"

	"github.com/tessera-hq/tessera/internal/models"
)

func TestStatCRUD(t *testing.T) {
	t.Parallel()

	draft, err := LoadDraft(&models.Event{
		ThemeContent: models.SectionContent{
			About: &models.AboutContent{
				Stats: []models.Stat{{Value: "10k+", Label: "Attendees"}},
			},
		},
	})
	if err != nil {
		t.Fatalf("load draft: %v", err)
	}

	draft.AddStat(models.Stat{Value: "50", Label: "Speakers"})
	stats := draft.State.ThemeContent.About.Stats
	if len(stats) != 2 || stats[1].Label != "Speakers" {
		t.Fatalf("add should append last, got %+v", stats)
	}

	if err := draft.DeleteStat(0); err != nil {
		t.Fatalf("delete: %v", err)
	}
	stats = draft.State.ThemeContent.About.Stats
	if len(stats) != 1 || stats[0].Label != "Speakers" {
		t.Errorf("delete at 0 should shift, got %+v", stats)
	}

	if err := draft.UpdateStat(0, models.Stat{Value: "60", Label: "Speakers"}); err != nil {
		t.Fatalf("update: %v", err)
	}
	if draft.State.ThemeContent.About.Stats[0].Value != "60" {
		t.Errorf("update not applied: %+v", draft.State.ThemeContent.About.Stats)
	}
}

func TestUpdateOutOfRangeNeverAppends(t *testing.T) {
	t.Parallel()

	draft, err := LoadDraft(&models.Event{})
	if err != nil {
		t.Fatalf("load draft: %v", err)
	}
	draft.AddFAQ(models.FAQItem{Question: "When?", Answer: "June"})

	tests := []struct {
		name  string
		index int
	}{
		{"past the end", 1},
		{"far past the end", 10},
		{"negative", -1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := draft.UpdateFAQ(tt.index, models.FAQItem{Question: "X"}); !errors.Is(err, ErrIndexOutOfRange) {
				t.Errorf("expected ErrIndexOutOfRange, got %v", err)
			}
		})
	}

	if len(draft.State.ThemeContent.FAQ.Items) != 1 {
		t.Errorf("failed updates must not append, got %+v", draft.State.ThemeContent.FAQ.Items)
	}
}

func TestDeleteOutOfRange(t *testing.T) {
	t.Parallel()

	draft, err := LoadDraft(&models.Event{})
	if err != nil {
		t.Fatalf("load draft: %v", err)
	}
	draft.AddSpeaker(models.Speaker{Name: "Ada"})

	if err := draft.DeleteSpeaker(1); !errors.Is(err, ErrIndexOutOfRange) {
		t.Errorf("expected ErrIndexOutOfRange, got %v", err)
	}
	if err := draft.DeleteSpeaker(-1); !errors.Is(err, ErrIndexOutOfRange) {
		t.Errorf("expected ErrIndexOutOfRange, got %v", err)
	}
	if len(draft.State.ThemeContent.Speakers.Speakers) != 1 {
		t.Error("failed deletes must not mutate the list")
	}
}

func TestTicketFeatures(t *testing.T) {
	t.Parallel()

	draft, err := LoadDraft(&models.Event{})
	if err != nil {
		t.Fatalf("load draft: %v", err)
	}

	const vip = "tt-vip"

	draft.AddTicketFeature(vip, "Lounge access")
	draft.AddTicketFeature(vip, "Front row")
	if got := draft.State.ThemeContent.TicketFeatures[vip]; len(got) != 2 || got[0] != "Lounge access" {
		t.Fatalf("ticket features = %v", got)
	}

	if err := draft.UpdateTicketFeature(vip, 1, "Backstage tour"); err != nil {
		t.Fatalf("update: %v", err)
	}
	if got := draft.State.ThemeContent.TicketFeatures[vip][1]; got != "Backstage tour" {
		t.Errorf("update not applied: %q", got)
	}

	if err := draft.UpdateTicketFeature("tt-unknown", 0, "x"); !errors.Is(err, ErrUnknownTicketType) {
		t.Errorf("expected ErrUnknownTicketType, got %v", err)
	}

	if err := draft.DeleteTicketFeature(vip, 0); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if got := draft.State.ThemeContent.TicketFeatures[vip]; len(got) != 1 || got[0] != "Backstage tour" {
		t.Errorf("delete should shift, got %v", got)
	}

	draft.SetTicketFeatures(vip, []string{"Replaced"})
	if got := draft.State.ThemeContent.TicketFeatures[vip]; len(got) != 1 || got[0] != "Replaced" {
		t.Errorf("set should replace wholesale, got %v", got)
	}

	draft.RemoveTicketFeatures(vip)
	if _, ok := draft.State.ThemeContent.TicketFeatures[vip]; ok {
		t.Error("remove should drop the list")
	}
}
