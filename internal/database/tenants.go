// Tessera - Multi-Tenant Event Ticketing Platform
// Copyright 2026 Tessera Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tessera-hq/tessera

package database

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/tessera-hq/tessera/internal/models"
)

// CreateTenant inserts a new organizer account.
func (db *DB) CreateTenant(ctx context.Context, tenant *models.Tenant) error {
	if err := db.orm.WithContext(ctx).Create(tenant).Error; err != nil {
		return fmt.Errorf("failed to create tenant: %w", translateError(err))
	}
	return nil
}

// GetTenant fetches one tenant by ID.
func (db *DB) GetTenant(ctx context.Context, id uuid.UUID) (*models.Tenant, error) {
	var tenant models.Tenant
	err := db.orm.WithContext(ctx).First(&tenant, "id = ?", id).Error
	if err != nil {
		return nil, translateError(err)
	}
	return &tenant, nil
}

// CreateEventSession inserts a schedule entry for an event.
func (db *DB) CreateEventSession(ctx context.Context, session *models.EventSession) error {
	if err := db.orm.WithContext(ctx).Create(session).Error; err != nil {
		return fmt.Errorf("failed to create session: %w", translateError(err))
	}
	return nil
}

// ListEventSessions returns an event's schedule entries in start order.
func (db *DB) ListEventSessions(ctx context.Context, eventID uuid.UUID) ([]models.EventSession, error) {
	var sessions []models.EventSession
	err := db.orm.WithContext(ctx).
		Where("event_id = ?", eventID).
		Order("starts_at ASC").
		Find(&sessions).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list sessions: %w", err)
	}
	return sessions, nil
}
