// Tessera - Multi-Tenant Event Ticketing Platform
// Copyright 2026 Tessera Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tessera-hq/tessera

// Package cache provides a BadgerDB-backed cache for resolved event
// views. Entries are keyed by event slug and expire via Badger's native
// TTL, so the public endpoint serves hot events without touching the
// resolver or the database. Saves to an event's theme state must
// invalidate its entry; a stale resolved view is worse than a slow one.
package cache

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/dgraph-io/badger/v4"
	json "github.com/goccy/go-json"

	"github.com/tessera-hq/tessera/internal/config"
	"github.com/tessera-hq/tessera/internal/logging"
	"github.com/tessera-hq/tessera/internal/metrics"
	"github.com/tessera-hq/tessera/internal/models"
)

const (
	resolvedViewPrefix = "resolved:"
	cacheType          = "resolved_view"
)

// ErrCacheMiss is returned when no live entry exists for a key.
var ErrCacheMiss = errors.New("cache miss")

// ResolvedViewCache caches resolved public views by event slug.
type ResolvedViewCache struct {
	db  *badger.DB
	ttl time.Duration
}

// New opens the cache store per configuration. A nil return with nil
// error means caching is disabled; callers treat a nil cache as a
// permanent miss.
func New(cfg *config.CacheConfig) (*ResolvedViewCache, error) {
	if !cfg.Enabled {
		return nil, nil
	}

	var opts badger.Options
	if cfg.InMemory || cfg.Path == "" {
		opts = badger.DefaultOptions("").WithInMemory(true)
	} else {
		opts = badger.DefaultOptions(cfg.Path)
	}
	opts.Logger = nil

	db, err := badger.Open(opts)
	if err != nil {
		return nil, fmt.Errorf("open badger cache: %w", err)
	}

	ttl := cfg.TTL
	if ttl <= 0 {
		ttl = 5 * time.Minute
	}

	return &ResolvedViewCache{db: db, ttl: ttl}, nil
}

// Get returns the cached resolved view for a slug, or ErrCacheMiss.
func (c *ResolvedViewCache) Get(ctx context.Context, slug string) (*models.ResolvedView, error) {
	if c == nil {
		return nil, ErrCacheMiss
	}

	var view models.ResolvedView
	err := c.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get(c.key(slug))
		if errors.Is(err, badger.ErrKeyNotFound) {
			return ErrCacheMiss
		}
		if err != nil {
			return fmt.Errorf("get resolved view: %w", err)
		}
		return item.Value(func(val []byte) error {
			return json.Unmarshal(val, &view)
		})
	})
	if err != nil {
		if errors.Is(err, ErrCacheMiss) {
			metrics.RecordCacheMiss(cacheType)
		}
		return nil, err
	}

	metrics.RecordCacheHit(cacheType)
	return &view, nil
}

// Set stores a resolved view under the event slug with the cache TTL.
func (c *ResolvedViewCache) Set(ctx context.Context, slug string, view *models.ResolvedView) error {
	if c == nil {
		return nil
	}

	data, err := json.Marshal(view)
	if err != nil {
		return fmt.Errorf("marshal resolved view: %w", err)
	}

	return c.db.Update(func(txn *badger.Txn) error {
		entry := badger.NewEntry(c.key(slug), data).WithTTL(c.ttl)
		return txn.SetEntry(entry)
	})
}

// Invalidate drops the cached view for a slug. Missing keys are fine.
func (c *ResolvedViewCache) Invalidate(ctx context.Context, slug string) error {
	if c == nil {
		return nil
	}

	metrics.RecordCacheInvalidation(cacheType)
	return c.db.Update(func(txn *badger.Txn) error {
		err := txn.Delete(c.key(slug))
		if errors.Is(err, badger.ErrKeyNotFound) {
			return nil
		}
		return err
	})
}

// GCLoop runs value-log garbage collection until the context is
// canceled, blocking the caller. The supervisor tree runs this as the
// cache-gc service; no-op for in-memory stores, where GC always
// reports nothing to collect.
func (c *ResolvedViewCache) GCLoop(ctx context.Context, interval time.Duration) {
	if c == nil {
		return
	}
	if interval <= 0 {
		interval = 10 * time.Minute
	}

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			err := c.db.RunValueLogGC(0.5)
			if err != nil && !errors.Is(err, badger.ErrNoRewrite) {
				logging.Ctx(ctx).Debug().Err(err).Msg("Cache GC pass failed")
			}
		}
	}
}

// Close flushes and closes the underlying store.
func (c *ResolvedViewCache) Close() error {
	if c == nil {
		return nil
	}
	return c.db.Close()
}

func (c *ResolvedViewCache) key(slug string) []byte {
	return []byte(resolvedViewPrefix + slug)
}
