// Tessera - Multi-Tenant Event Ticketing Platform
// Copyright 2026 Tessera Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tessera-hq/tessera

package database

import (
	"errors"
	"strings"

	"gorm.io/gorm"
)

var (
	// ErrNotFound indicates the addressed record does not exist.
	ErrNotFound = errors.New("record not found")

	// ErrDuplicateSlug indicates a unique slug collision on insert or update.
	ErrDuplicateSlug = errors.New("slug already in use")

	// ErrVersionConflict indicates a theme-state save carried an expected
	// version that no longer matches the stored one. The write is rejected
	// whole; nothing is persisted.
	ErrVersionConflict = errors.New("theme state version conflict")
)

// translateError maps driver and gorm errors onto the package sentinels so
// callers can branch with errors.Is without knowing the backend.
func translateError(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrNotFound
	}
	if isUniqueViolation(err) {
		return ErrDuplicateSlug
	}
	return err
}

// isUniqueViolation detects unique-constraint failures for both the
// postgres and sqlite drivers without importing either error type.
func isUniqueViolation(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	msg := err.Error()
	return strings.Contains(msg, "duplicate key value") ||
		strings.Contains(msg, "UNIQUE constraint failed")
}
