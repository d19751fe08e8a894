// Tessera - Multi-Tenant Event Ticketing Platform
// Copyright 2026 Tessera Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tessera-hq/tessera

package cache

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/tessera-hq/tessera/internal/config"
	"github.com/tessera-hq/tessera/internal/models"
)

func newTestCache(t *testing.T, ttl time.Duration) *ResolvedViewCache {
	t.Helper()

	c, err := New(&config.CacheConfig{
		Enabled:  true,
		InMemory: true,
		TTL:      ttl,
	})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	t.Cleanup(func() {
		if err := c.Close(); err != nil {
			t.Errorf("Close: %v", err)
		}
	})
	return c
}

func sampleView() *models.ResolvedView {
	return &models.ResolvedView{
		SiteInfo: models.SiteInfo{Title: "Summit 2026"},
		VisibleSections: []string{
			"branding", "hero", "about", "footer",
		},
	}
}

func TestCacheRoundTrip(t *testing.T) {
	t.Parallel()

	c := newTestCache(t, time.Minute)
	ctx := context.Background()

	if _, err := c.Get(ctx, "summit-2026"); !errors.Is(err, ErrCacheMiss) {
		t.Fatalf("empty cache: err = %v, want ErrCacheMiss", err)
	}

	if err := c.Set(ctx, "summit-2026", sampleView()); err != nil {
		t.Fatalf("Set: %v", err)
	}

	got, err := c.Get(ctx, "summit-2026")
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if got.SiteInfo.Title != "Summit 2026" {
		t.Errorf("title = %q", got.SiteInfo.Title)
	}
	if len(got.VisibleSections) != 4 {
		t.Errorf("visible sections = %v", got.VisibleSections)
	}
}

func TestCacheInvalidate(t *testing.T) {
	t.Parallel()

	c := newTestCache(t, time.Minute)
	ctx := context.Background()

	if err := c.Set(ctx, "summit-2026", sampleView()); err != nil {
		t.Fatalf("Set: %v", err)
	}
	if err := c.Invalidate(ctx, "summit-2026"); err != nil {
		t.Fatalf("Invalidate: %v", err)
	}
	if _, err := c.Get(ctx, "summit-2026"); !errors.Is(err, ErrCacheMiss) {
		t.Errorf("after invalidate: err = %v, want ErrCacheMiss", err)
	}

	// Invalidating an absent key is not an error.
	if err := c.Invalidate(ctx, "never-stored"); err != nil {
		t.Errorf("Invalidate absent: %v", err)
	}
}

func TestCacheTTLExpiry(t *testing.T) {
	t.Parallel()

	c := newTestCache(t, time.Second)
	ctx := context.Background()

	if err := c.Set(ctx, "summit-2026", sampleView()); err != nil {
		t.Fatalf("Set: %v", err)
	}

	time.Sleep(1100 * time.Millisecond)

	if _, err := c.Get(ctx, "summit-2026"); !errors.Is(err, ErrCacheMiss) {
		t.Errorf("after TTL: err = %v, want ErrCacheMiss", err)
	}
}

func TestNilCacheIsPermanentMiss(t *testing.T) {
	t.Parallel()

	var c *ResolvedViewCache
	ctx := context.Background()

	if _, err := c.Get(ctx, "any"); !errors.Is(err, ErrCacheMiss) {
		t.Errorf("nil cache Get: err = %v, want ErrCacheMiss", err)
	}
	if err := c.Set(ctx, "any", sampleView()); err != nil {
		t.Errorf("nil cache Set: %v", err)
	}
	if err := c.Invalidate(ctx, "any"); err != nil {
		t.Errorf("nil cache Invalidate: %v", err)
	}
	if err := c.Close(); err != nil {
		t.Errorf("nil cache Close: %v", err)
	}
}

func TestDisabledCacheReturnsNil(t *testing.T) {
	t.Parallel()

	c, err := New(&config.CacheConfig{Enabled: false})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if c != nil {
		t.Error("disabled cache should be nil")
	}
}
