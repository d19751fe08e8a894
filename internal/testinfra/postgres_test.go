// Tessera - Multi-Tenant Event Ticketing Platform
// Copyright 2026 Tessera Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tessera-hq/tessera

//go:build integration

package testinfra

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/tessera-hq/tessera/internal/config"
	"github.com/tessera-hq/tessera/internal/database"
	"github.com/tessera-hq/tessera/internal/models"
)

// TestPostgresRoundTrip boots a real Postgres and runs the store
// through the same lifecycle the sqlite unit tests cover: migrate,
// seed, replace theme state, read back. Catches dialect-specific
// breakage (JSONB columns, unique violations) that sqlite hides.
func TestPostgresRoundTrip(t *testing.T) {
	SkipIfNoDocker(t)

	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Minute)
	defer cancel()

	pg, err := NewPostgresContainer(ctx)
	if err != nil {
		t.Fatalf("start postgres: %v", err)
	}
	defer CleanupContainer(t, ctx, pg.Container)

	db, err := database.New(&config.DatabaseConfig{
		URL:          pg.DSN,
		AutoMigrate:  true,
		MaxOpenConns: 5,
		MaxIdleConns: 2,
	})
	if err != nil {
		t.Fatalf("open database: %v", err)
	}
	defer db.Close()

	tenant := &models.Tenant{
		Name:         "Acme Events",
		Slug:         "acme",
		ContactEmail: "hello@acme.example.com",
	}
	if err := db.CreateTenant(ctx, tenant); err != nil {
		t.Fatalf("create tenant: %v", err)
	}

	heroTitle := "Welcome"
	template := &models.ThemeTemplate{
		Name:   "Festival",
		Status: models.ThemeStatusActive,
		DefaultProperties: models.ThemeProperties{
			Colors: map[string]string{"primary": "#1a1a2e"},
		},
		DefaultContent: models.SectionContent{
			Hero: &models.HeroContent{Title: &heroTitle},
		},
	}
	if err := db.CreateThemeTemplate(ctx, template); err != nil {
		t.Fatalf("create template: %v", err)
	}

	event := &models.Event{
		TenantID: tenant.ID,
		Name:     "Summer Fest",
		Slug:     "summer-fest",
		City:     "Lisbon",
		Status:   models.EventStatusPublished,
	}
	if err := db.CreateEvent(ctx, event); err != nil {
		t.Fatalf("create event: %v", err)
	}

	// Duplicate slugs must surface the sentinel under the postgres
	// driver's unique-violation error, not just sqlite's.
	dup := &models.Event{TenantID: tenant.ID, Name: "Clone", Slug: "summer-fest"}
	if err := db.CreateEvent(ctx, dup); !errors.Is(err, database.ErrDuplicateSlug) {
		t.Fatalf("expected ErrDuplicateSlug, got %v", err)
	}

	content := template.DefaultContent
	updated, err := db.ReplaceEventThemeState(ctx, event.ID, database.ThemeStateReplacement{
		ThemeID:      &template.ID,
		ThemeContent: &content,
	})
	if err != nil {
		t.Fatalf("replace theme state: %v", err)
	}
	if updated.ThemeID == nil || *updated.ThemeID != template.ID {
		t.Fatal("theme id not persisted")
	}
	if updated.ThemeVersion != event.ThemeVersion+1 {
		t.Fatalf("expected version bump to %d, got %d", event.ThemeVersion+1, updated.ThemeVersion)
	}

	fetched, err := db.GetEvent(ctx, event.ID)
	if err != nil {
		t.Fatalf("get event: %v", err)
	}
	if fetched.ThemeContent.Hero == nil || fetched.ThemeContent.Hero.Title == nil ||
		*fetched.ThemeContent.Hero.Title != heroTitle {
		t.Fatal("theme content did not round-trip through JSONB")
	}

	stale := event.ThemeVersion
	_, err = db.ReplaceEventThemeState(ctx, event.ID, database.ThemeStateReplacement{
		ExpectedVersion: &stale,
		ThemeContent:    &content,
	})
	if !errors.Is(err, database.ErrVersionConflict) {
		t.Fatalf("expected ErrVersionConflict, got %v", err)
	}
}
