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

// CreateTicketType inserts a ticket tier for an event.
func (db *DB) CreateTicketType(ctx context.Context, ticket *models.TicketType) error {
	if err := db.orm.WithContext(ctx).Create(ticket).Error; err != nil {
		return fmt.Errorf("failed to create ticket type: %w", translateError(err))
	}
	return nil
}

// GetTicketType fetches one ticket tier by ID.
func (db *DB) GetTicketType(ctx context.Context, id uuid.UUID) (*models.TicketType, error) {
	var ticket models.TicketType
	err := db.orm.WithContext(ctx).First(&ticket, "id = ?", id).Error
	if err != nil {
		return nil, translateError(err)
	}
	return &ticket, nil
}

// ListTicketTypes returns an event's ticket tiers in display order.
func (db *DB) ListTicketTypes(ctx context.Context, eventID uuid.UUID) ([]models.TicketType, error) {
	var tickets []models.TicketType
	err := db.orm.WithContext(ctx).
		Where("event_id = ?", eventID).
		Order("position ASC").
		Find(&tickets).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list ticket types: %w", err)
	}
	return tickets, nil
}

// UpdateTicketType replaces a ticket tier's definition. The sold counter is
// maintained by the purchase flow, not by this endpoint.
func (db *DB) UpdateTicketType(ctx context.Context, ticket *models.TicketType) error {
	result := db.orm.WithContext(ctx).
		Model(&models.TicketType{}).
		Where("id = ?", ticket.ID).
		Updates(map[string]interface{}{
			"name":     ticket.Name,
			"price":    ticket.Price,
			"currency": ticket.Currency,
			"quantity": ticket.Quantity,
			"position": ticket.Position,
		})
	if result.Error != nil {
		return fmt.Errorf("failed to update ticket type: %w", translateError(result.Error))
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// DeleteTicketType removes a ticket tier. The caller is responsible for
// cleaning up the tier's feature list inside the event's themeContent.
func (db *DB) DeleteTicketType(ctx context.Context, id uuid.UUID) error {
	result := db.orm.WithContext(ctx).Delete(&models.TicketType{}, "id = ?", id)
	if result.Error != nil {
		return fmt.Errorf("failed to delete ticket type: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
