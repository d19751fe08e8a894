// Tessera - Multi-Tenant Event Ticketing Platform
// Copyright 2026 Tessera Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tessera-hq/tessera

package metrics

import (
	"errors"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
)

func TestRecordAPIRequest(t *testing.T) {
	before := testutil.ToFloat64(APIRequestsTotal.WithLabelValues("GET", "/public/events/{slug}", "200"))

	RecordAPIRequest("GET", "/public/events/{slug}", "200", 25*time.Millisecond)

	after := testutil.ToFloat64(APIRequestsTotal.WithLabelValues("GET", "/public/events/{slug}", "200"))
	if after != before+1 {
		t.Errorf("counter = %v, want %v", after, before+1)
	}
}

func TestTrackActiveRequest(t *testing.T) {
	base := testutil.ToFloat64(APIActiveRequests)

	TrackActiveRequest(true)
	if got := testutil.ToFloat64(APIActiveRequests); got != base+1 {
		t.Errorf("after inc = %v, want %v", got, base+1)
	}

	TrackActiveRequest(false)
	if got := testutil.ToFloat64(APIActiveRequests); got != base {
		t.Errorf("after dec = %v, want %v", got, base)
	}
}

func TestRecordDBQueryErrors(t *testing.T) {
	before := testutil.ToFloat64(DBQueryErrors.WithLabelValues("select", "events"))

	RecordDBQuery("select", "events", time.Millisecond, nil)
	if got := testutil.ToFloat64(DBQueryErrors.WithLabelValues("select", "events")); got != before {
		t.Errorf("nil error must not count, got %v", got)
	}

	RecordDBQuery("select", "events", time.Millisecond, errors.New("boom"))
	if got := testutil.ToFloat64(DBQueryErrors.WithLabelValues("select", "events")); got != before+1 {
		t.Errorf("error counter = %v, want %v", got, before+1)
	}
}

func TestRecordThemeResolution(t *testing.T) {
	before := testutil.ToFloat64(ThemeResolutions.WithLabelValues("resolved"))

	RecordThemeResolution("resolved", 100*time.Microsecond)

	if got := testutil.ToFloat64(ThemeResolutions.WithLabelValues("resolved")); got != before+1 {
		t.Errorf("counter = %v, want %v", got, before+1)
	}
}

func TestCacheCounters(t *testing.T) {
	hits := testutil.ToFloat64(CacheHits.WithLabelValues("resolved_view"))
	misses := testutil.ToFloat64(CacheMisses.WithLabelValues("resolved_view"))

	RecordCacheHit("resolved_view")
	RecordCacheMiss("resolved_view")
	RecordCacheMiss("resolved_view")

	if got := testutil.ToFloat64(CacheHits.WithLabelValues("resolved_view")); got != hits+1 {
		t.Errorf("hits = %v, want %v", got, hits+1)
	}
	if got := testutil.ToFloat64(CacheMisses.WithLabelValues("resolved_view")); got != misses+2 {
		t.Errorf("misses = %v, want %v", got, misses+2)
	}
}
