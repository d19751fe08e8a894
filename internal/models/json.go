// Tessera - Multi-Tenant Event Ticketing Platform
// Copyright 2026 Tessera Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tessera-hq/tessera

package models

import (
	"database/sql/driver"
	"fmt"

	json "github.com/goccy/go-json"
)

// jsonValue serializes a nested structure for storage in a JSONB column.
func jsonValue(v interface{}) (driver.Value, error) {
	b, err := json.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal JSONB column: %w", err)
	}
	return b, nil
}

// jsonScan deserializes a JSONB column into dst. NULL columns leave dst at
// its zero value so callers never see a scan error for absent state.
func jsonScan(dst interface{}, src interface{}) error {
	if src == nil {
		return nil
	}

	var b []byte
	switch v := src.(type) {
	case []byte:
		b = v
	case string:
		b = []byte(v)
	default:
		return fmt.Errorf("unsupported JSONB source type %T", src)
	}

	if len(b) == 0 {
		return nil
	}
	if err := json.Unmarshal(b, dst); err != nil {
		return fmt.Errorf("failed to unmarshal JSONB column: %w", err)
	}
	return nil
}
