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

// CreateThemeTemplate inserts a new template. Platform-admin operation.
func (db *DB) CreateThemeTemplate(ctx context.Context, template *models.ThemeTemplate) error {
	if err := db.orm.WithContext(ctx).Create(template).Error; err != nil {
		return fmt.Errorf("failed to create theme template: %w", translateError(err))
	}
	return nil
}

// GetThemeTemplate fetches one template by ID.
func (db *DB) GetThemeTemplate(ctx context.Context, id uuid.UUID) (*models.ThemeTemplate, error) {
	var template models.ThemeTemplate
	err := db.orm.WithContext(ctx).First(&template, "id = ?", id).Error
	if err != nil {
		return nil, translateError(err)
	}
	return &template, nil
}

// ListThemeTemplates returns one page of templates with the total count.
// An empty status lists every lifecycle state.
func (db *DB) ListThemeTemplates(ctx context.Context, status string, page, perPage int) ([]models.ThemeTemplate, int64, error) {
	query := db.orm.WithContext(ctx).Model(&models.ThemeTemplate{})
	if status != "" {
		query = query.Where("status = ?", status)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count theme templates: %w", err)
	}

	var templates []models.ThemeTemplate
	err := query.
		Order("created_at DESC").
		Offset((page - 1) * perPage).
		Limit(perPage).
		Find(&templates).Error
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list theme templates: %w", err)
	}
	return templates, total, nil
}

// UpdateThemeTemplate fully replaces a template's definition.
func (db *DB) UpdateThemeTemplate(ctx context.Context, template *models.ThemeTemplate) error {
	result := db.orm.WithContext(ctx).
		Model(&models.ThemeTemplate{}).
		Where("id = ?", template.ID).
		Updates(map[string]interface{}{
			"name":               template.Name,
			"description":        template.Description,
			"category":           template.Category,
			"status":             template.Status,
			"is_premium":         template.IsPremium,
			"price":              template.Price,
			"default_properties": template.DefaultProperties,
			"default_content":    template.DefaultContent,
		})
	if result.Error != nil {
		return fmt.Errorf("failed to update theme template: %w", translateError(result.Error))
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// DeleteThemeTemplate removes a template. Events referencing it keep their
// themeId; resolution for them degrades to the theme-not-assigned state.
func (db *DB) DeleteThemeTemplate(ctx context.Context, id uuid.UUID) error {
	result := db.orm.WithContext(ctx).Delete(&models.ThemeTemplate{}, "id = ?", id)
	if result.Error != nil {
		return fmt.Errorf("failed to delete theme template: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// ListAvailableThemes returns the active templates a tenant may adopt:
// every free template plus the premium ones it has purchased.
func (db *DB) ListAvailableThemes(ctx context.Context, tenantID uuid.UUID) ([]models.ThemeTemplate, error) {
	var templates []models.ThemeTemplate
	err := db.orm.WithContext(ctx).
		Where("status = ?", models.ThemeStatusActive).
		Where(
			"is_premium = ? OR id IN (?)",
			false,
			db.orm.Model(&models.ThemePurchase{}).
				Select("theme_id").
				Where("tenant_id = ? AND status = ?", tenantID, models.PurchaseStatusCompleted),
		).
		Order("name ASC").
		Find(&templates).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list available themes: %w", err)
	}
	return templates, nil
}

// ListPurchasedThemes returns a tenant's purchase records with templates
// preloaded.
func (db *DB) ListPurchasedThemes(ctx context.Context, tenantID uuid.UUID) ([]models.ThemePurchase, error) {
	var purchases []models.ThemePurchase
	err := db.orm.WithContext(ctx).
		Preload("Theme").
		Where("tenant_id = ?", tenantID).
		Order("purchased_at DESC").
		Find(&purchases).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list purchased themes: %w", err)
	}
	return purchases, nil
}

// CreateThemePurchase records a tenant's entitlement to a template.
func (db *DB) CreateThemePurchase(ctx context.Context, purchase *models.ThemePurchase) error {
	if err := db.orm.WithContext(ctx).Create(purchase).Error; err != nil {
		return fmt.Errorf("failed to record theme purchase: %w", translateError(err))
	}
	return nil
}

// TenantMayAdoptTheme reports whether the tenant is entitled to the
// template: it is free, or the tenant holds a completed purchase. Inactive
// templates are never adoptable.
func (db *DB) TenantMayAdoptTheme(ctx context.Context, tenantID, themeID uuid.UUID) (bool, error) {
	template, err := db.GetThemeTemplate(ctx, themeID)
	if err != nil {
		return false, err
	}
	if template.Status != models.ThemeStatusActive {
		return false, nil
	}
	if !template.IsPremium {
		return true, nil
	}

	var count int64
	err = db.orm.WithContext(ctx).
		Model(&models.ThemePurchase{}).
		Where("tenant_id = ? AND theme_id = ? AND status = ?", tenantID, themeID, models.PurchaseStatusCompleted).
		Count(&count).Error
	if err != nil {
		return false, fmt.Errorf("failed to check theme entitlement: %w", err)
	}
	return count > 0, nil
}
