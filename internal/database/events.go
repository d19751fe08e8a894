// Tessera - Multi-Tenant Event Ticketing Platform
// Copyright 2026 Tessera Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tessera-hq/tessera

package database

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/tessera-hq/tessera/internal/models"
)

// CreateEvent inserts a new event. Theme state starts empty; the event
// adopts a template later through ReplaceEventThemeState.
func (db *DB) CreateEvent(ctx context.Context, event *models.Event) error {
	if err := db.orm.WithContext(ctx).Create(event).Error; err != nil {
		return fmt.Errorf("failed to create event: %w", translateError(err))
	}
	return nil
}

// GetEvent fetches one event with its theme and tenant loaded.
func (db *DB) GetEvent(ctx context.Context, id uuid.UUID) (*models.Event, error) {
	var event models.Event
	err := db.orm.WithContext(ctx).
		Preload("Tenant").
		Preload("Theme").
		Preload("TicketTypes", func(tx *gorm.DB) *gorm.DB { return tx.Order("position ASC") }).
		Preload("Sessions", func(tx *gorm.DB) *gorm.DB { return tx.Order("starts_at ASC") }).
		First(&event, "id = ?", id).Error
	if err != nil {
		return nil, translateError(err)
	}
	return &event, nil
}

// GetEventBySlug fetches one event by its public slug with everything the
// public page needs preloaded.
func (db *DB) GetEventBySlug(ctx context.Context, slug string) (*models.Event, error) {
	var event models.Event
	err := db.orm.WithContext(ctx).
		Preload("Tenant").
		Preload("Theme").
		Preload("TicketTypes", func(tx *gorm.DB) *gorm.DB { return tx.Order("position ASC") }).
		Preload("Sessions", func(tx *gorm.DB) *gorm.DB { return tx.Order("starts_at ASC") }).
		First(&event, "slug = ?", slug).Error
	if err != nil {
		return nil, translateError(err)
	}
	return &event, nil
}

// ListEvents returns one page of a tenant's events with the total count.
func (db *DB) ListEvents(ctx context.Context, tenantID uuid.UUID, page, perPage int) ([]models.Event, int64, error) {
	query := db.orm.WithContext(ctx).
		Model(&models.Event{}).
		Where("tenant_id = ?", tenantID)

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count events: %w", err)
	}

	var events []models.Event
	err := query.
		Order("starts_at DESC").
		Offset((page - 1) * perPage).
		Limit(perPage).
		Find(&events).Error
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list events: %w", err)
	}
	return events, total, nil
}

// UpdateEvent replaces an event's base fields. Theme state is written only
// through ReplaceEventThemeState.
func (db *DB) UpdateEvent(ctx context.Context, event *models.Event) error {
	result := db.orm.WithContext(ctx).
		Model(&models.Event{}).
		Where("id = ?", event.ID).
		Updates(map[string]interface{}{
			"name":        event.Name,
			"slug":        event.Slug,
			"description": event.Description,
			"venue_name":  event.VenueName,
			"city":        event.City,
			"starts_at":   event.StartsAt,
			"ends_at":     event.EndsAt,
			"status":      event.Status,
			"gallery":     event.Gallery,
		})
	if result.Error != nil {
		return fmt.Errorf("failed to update event: %w", translateError(result.Error))
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// DeleteEvent removes an event and its dependent rows. Theme state lives on
// the event row and disappears with it.
func (db *DB) DeleteEvent(ctx context.Context, id uuid.UUID) error {
	return db.orm.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Delete(&models.TicketType{}, "event_id = ?", id).Error; err != nil {
			return fmt.Errorf("failed to delete ticket types: %w", err)
		}
		if err := tx.Delete(&models.EventSession{}, "event_id = ?", id).Error; err != nil {
			return fmt.Errorf("failed to delete sessions: %w", err)
		}
		result := tx.Delete(&models.Event{}, "id = ?", id)
		if result.Error != nil {
			return fmt.Errorf("failed to delete event: %w", result.Error)
		}
		if result.RowsAffected == 0 {
			return ErrNotFound
		}
		return nil
	})
}

// ThemeStateReplacement describes a whole-object theme-state save. Nil
// fields are left untouched; supplied fields fully replace their persisted
// counterparts (no field-level merge). ExpectedVersion, when set, must
// match the stored ThemeVersion or the save fails with ErrVersionConflict.
type ThemeStateReplacement struct {
	ThemeID            *uuid.UUID
	ThemeContent       *models.SectionContent
	ThemeCustomization *models.ThemeCustomization
	SEOSettings        *models.SEOSettings
	ExpectedVersion    *int64
}

// ReplaceEventThemeState persists a theme-state save transactionally and
// increments the event's ThemeVersion. Without ExpectedVersion the save is
// last-write-wins, matching whole-object replace semantics: replaying the
// same state is idempotent apart from the version counter.
func (db *DB) ReplaceEventThemeState(ctx context.Context, eventID uuid.UUID, repl ThemeStateReplacement) (*models.Event, error) {
	err := db.orm.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var current models.Event
		if err := tx.Select("id", "theme_version").First(&current, "id = ?", eventID).Error; err != nil {
			return translateError(err)
		}

		if repl.ExpectedVersion != nil && *repl.ExpectedVersion != current.ThemeVersion {
			return ErrVersionConflict
		}

		updates := map[string]interface{}{
			"theme_version": gorm.Expr("theme_version + 1"),
		}
		if repl.ThemeID != nil {
			updates["theme_id"] = *repl.ThemeID
		}
		if repl.ThemeContent != nil {
			updates["theme_content"] = *repl.ThemeContent
		}
		if repl.ThemeCustomization != nil {
			updates["theme_customization"] = *repl.ThemeCustomization
		}
		if repl.SEOSettings != nil {
			updates["seo_settings"] = *repl.SEOSettings
		}

		query := tx.Model(&models.Event{}).Where("id = ?", eventID)
		if repl.ExpectedVersion != nil {
			// The version becomes part of the write predicate so a racing
			// save between our read and this update is also rejected.
			query = query.Where("theme_version = ?", *repl.ExpectedVersion)
		}

		result := query.Updates(updates)
		if result.Error != nil {
			return fmt.Errorf("failed to save theme state: %w", result.Error)
		}
		if result.RowsAffected == 0 {
			if repl.ExpectedVersion != nil {
				return ErrVersionConflict
			}
			return ErrNotFound
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return db.GetEvent(ctx, eventID)
}
