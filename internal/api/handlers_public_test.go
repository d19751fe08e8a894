// Tessera - Multi-Tenant Event Ticketing Platform
// Copyright 2026 Tessera Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tessera-hq/tessera

package api

import (
	"net/http"
	"testing"

	"github.com/tessera-hq/tessera/internal/models"
)

func TestPublicEventWithoutTheme(t *testing.T) {
	t.Parallel()
	env := newTestEnv(t)
	tenant := seedTenant(t, env.db)
	event := seedEvent(t, env.db, tenant.ID)

	rec := env.do(t, http.MethodGet, "/public/events/"+event.Slug, "", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200; missing theme is a state, not an error", rec.Code)
	}

	var payload publicEventPayload
	decodeData(t, rec, &payload)
	if payload.State != publicStateThemeMissing {
		t.Errorf("state = %q, want %q", payload.State, publicStateThemeMissing)
	}
	if payload.View != nil {
		t.Errorf("view should be absent without a template")
	}
	if payload.Event.Name != event.Name {
		t.Errorf("event basics missing: %+v", payload.Event)
	}
	if payload.Tenant == nil || payload.Tenant.Slug != tenant.Slug {
		t.Errorf("tenant info missing: %+v", payload.Tenant)
	}
}

func TestPublicEventNotFound(t *testing.T) {
	t.Parallel()
	env := newTestEnv(t)

	rec := env.do(t, http.MethodGet, "/public/events/no-such-event", "", nil)
	wantErrorCode(t, rec, http.StatusNotFound, "NOT_FOUND")
}

func TestPublicEventResolvesAndCaches(t *testing.T) {
	t.Parallel()
	env := newTestEnv(t)
	tenant := seedTenant(t, env.db)
	token := env.tenantAdminToken(t, tenant.ID)
	template := seedTemplate(t, env.db, "Aurora", "Welcome", false)
	event := seedEvent(t, env.db, tenant.ID)
	adoptTemplate(t, env, token, event.ID, template.ID)

	path := "/public/events/" + event.Slug

	rec := env.do(t, http.MethodGet, path, "", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d (body %q)", rec.Code, rec.Body.String())
	}
	first := decodeEnvelope(t, rec)
	if first.Metadata.Cached {
		t.Error("first read should miss the cache")
	}
	var payload publicEventPayload
	decodeData(t, rec, &payload)
	if payload.State != publicStateResolved || payload.View == nil {
		t.Fatalf("payload not resolved: state=%q view=%v", payload.State, payload.View)
	}
	if got := payload.View.Sections.Hero; got == nil || *got.Title != "Welcome" {
		t.Errorf("resolved hero = %+v, want template default", got)
	}
	if payload.View.StyleOverrides.Colors["primary"] != "#1a1a2e" {
		t.Errorf("style overrides missing template colors: %v", payload.View.StyleOverrides.Colors)
	}

	rec = env.do(t, http.MethodGet, path, "", nil)
	second := decodeEnvelope(t, rec)
	if !second.Metadata.Cached {
		t.Error("second read should hit the cache")
	}

	// A theme save invalidates the entry; the next read resolves fresh.
	title := "Changed"
	rec = env.do(t, http.MethodPut, "/api/v1/tenant-admin/events/"+event.ID.String()+"/theme", token,
		models.UpdateEventThemeRequest{
			ThemeContent: &models.SectionContent{Hero: &models.HeroContent{Title: &title}},
		})
	if rec.Code != http.StatusOK {
		t.Fatalf("save: status %d (body %q)", rec.Code, rec.Body.String())
	}

	rec = env.do(t, http.MethodGet, path, "", nil)
	third := decodeEnvelope(t, rec)
	if third.Metadata.Cached {
		t.Error("read after invalidation should miss the cache")
	}
	decodeData(t, rec, &payload)
	if payload.View == nil || payload.View.Sections.Hero == nil || *payload.View.Sections.Hero.Title != title {
		t.Errorf("stale view served after save: %+v", payload.View)
	}
}

func TestPublicEventHiddenSectionExcluded(t *testing.T) {
	t.Parallel()
	env := newTestEnv(t)
	tenant := seedTenant(t, env.db)
	token := env.tenantAdminToken(t, tenant.ID)
	template := seedTemplate(t, env.db, "Aurora", "Welcome", false)
	event := seedEvent(t, env.db, tenant.ID)
	adoptTemplate(t, env, token, event.ID, template.ID)

	rec := env.do(t, http.MethodPut, "/api/v1/tenant-admin/events/"+event.ID.String()+"/theme", token,
		models.UpdateEventThemeRequest{
			ThemeCustomization: &models.ThemeCustomization{
				SectionVisibility: models.SectionVisibility{"about": false},
			},
		})
	if rec.Code != http.StatusOK {
		t.Fatalf("save visibility: status %d (body %q)", rec.Code, rec.Body.String())
	}

	rec = env.do(t, http.MethodGet, "/public/events/"+event.Slug, "", nil)
	var payload publicEventPayload
	decodeData(t, rec, &payload)
	for _, section := range payload.View.VisibleSections {
		if section == "about" {
			t.Error("hidden section still listed as visible")
		}
	}
	// Hero is always-on and never filtered.
	found := false
	for _, section := range payload.View.VisibleSections {
		if section == "hero" {
			found = true
		}
	}
	if !found {
		t.Error("hero missing from visible sections")
	}
}

func TestEventThemePreviewDoesNotPersist(t *testing.T) {
	t.Parallel()
	env := newTestEnv(t)
	tenant := seedTenant(t, env.db)
	token := env.tenantAdminToken(t, tenant.ID)
	template := seedTemplate(t, env.db, "Aurora", "Welcome", false)
	event := seedEvent(t, env.db, tenant.ID)
	adopted := adoptTemplate(t, env, token, event.ID, template.ID)

	draftTitle := "Draft Only"
	rec := env.do(t, http.MethodPost, "/api/v1/tenant-admin/events/"+event.ID.String()+"/theme/preview", token,
		models.ThemePreviewRequest{
			ThemeContent: &models.SectionContent{Hero: &models.HeroContent{Title: &draftTitle}},
		})
	if rec.Code != http.StatusOK {
		t.Fatalf("preview: status %d (body %q)", rec.Code, rec.Body.String())
	}
	var view models.ResolvedView
	decodeData(t, rec, &view)
	if view.Sections.Hero == nil || *view.Sections.Hero.Title != draftTitle {
		t.Errorf("preview did not apply draft: %+v", view.Sections.Hero)
	}

	rec = env.do(t, http.MethodGet, "/api/v1/tenant-admin/events/"+event.ID.String(), token, nil)
	var persisted models.Event
	decodeData(t, rec, &persisted)
	if persisted.ThemeVersion != adopted.ThemeVersion {
		t.Errorf("preview bumped ThemeVersion: %d -> %d", adopted.ThemeVersion, persisted.ThemeVersion)
	}
	if persisted.ThemeContent.Hero == nil || *persisted.ThemeContent.Hero.Title != "Welcome" {
		t.Errorf("preview mutated persisted content: %+v", persisted.ThemeContent)
	}
}

func TestEventThemePreviewCandidateTemplate(t *testing.T) {
	t.Parallel()
	env := newTestEnv(t)
	tenant := seedTenant(t, env.db)
	token := env.tenantAdminToken(t, tenant.ID)
	current := seedTemplate(t, env.db, "Aurora", "Old", false)
	candidate := seedTemplate(t, env.db, "Borealis", "New", false)
	event := seedEvent(t, env.db, tenant.ID)
	adoptTemplate(t, env, token, event.ID, current.ID)

	// Previewing a candidate template never requires confirmReset; only
	// the persisted switch does.
	rec := env.do(t, http.MethodPost, "/api/v1/tenant-admin/events/"+event.ID.String()+"/theme/preview", token,
		models.ThemePreviewRequest{
			ThemeID:      &candidate.ID,
			ThemeContent: &models.SectionContent{},
		})
	if rec.Code != http.StatusOK {
		t.Fatalf("preview: status %d (body %q)", rec.Code, rec.Body.String())
	}
	var view models.ResolvedView
	decodeData(t, rec, &view)
	if view.Sections.Hero == nil || *view.Sections.Hero.Title != "New" {
		t.Errorf("candidate template defaults not used: %+v", view.Sections.Hero)
	}
}

func TestEventThemePreviewWithoutTemplate(t *testing.T) {
	t.Parallel()
	env := newTestEnv(t)
	tenant := seedTenant(t, env.db)
	token := env.tenantAdminToken(t, tenant.ID)
	event := seedEvent(t, env.db, tenant.ID)

	rec := env.do(t, http.MethodPost, "/api/v1/tenant-admin/events/"+event.ID.String()+"/theme/preview", token,
		models.ThemePreviewRequest{})
	wantErrorCode(t, rec, http.StatusBadRequest, "VALIDATION_ERROR")
}
