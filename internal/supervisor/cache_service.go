// Tessera - Multi-Tenant Event Ticketing Platform
// Copyright 2026 Tessera Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tessera-hq/tessera

package supervisor

import (
	"context"
	"time"

	"github.com/tessera-hq/tessera/internal/cache"
)

// CacheGCService runs the resolved-view cache's value-log garbage
// collection as a supervised service. The loop exits cleanly on context
// cancellation; if it ever panics, suture restarts it with backoff.
type CacheGCService struct {
	cache    *cache.ResolvedViewCache
	interval time.Duration
}

// NewCacheGCService wraps the cache GC loop. The interval defaults
// inside the cache when <= 0.
func NewCacheGCService(c *cache.ResolvedViewCache, interval time.Duration) *CacheGCService {
	return &CacheGCService{cache: c, interval: interval}
}

// Serve implements suture.Service.
func (s *CacheGCService) Serve(ctx context.Context) error {
	s.cache.GCLoop(ctx, s.interval)
	return ctx.Err()
}

// String identifies the service in supervisor logs.
func (s *CacheGCService) String() string {
	return "cache-gc"
}
