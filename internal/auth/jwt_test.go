// Tessera - Multi-Tenant Event Ticketing Platform
// Copyright 2026 Tessera Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tessera-hq/tessera

package auth

import (
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/tessera-hq/tessera/internal/config"
	"github.com/tessera-hq/tessera/internal/models"
)

func testManager(t *testing.T, ttl time.Duration) *JWTManager {
	t.Helper()

	manager, err := NewJWTManager(&config.SecurityConfig{
		JWTSecret: strings.Repeat("s", 32),
		TokenTTL:  ttl,
	})
	if err != nil {
		t.Fatalf("new manager: %v", err)
	}
	return manager
}

func TestGenerateAndValidateToken(t *testing.T) {
	t.Parallel()

	manager := testManager(t, time.Hour)
	tenantID := uuid.New()

	token, err := manager.GenerateToken(AuthSubject{
		ID:       "user-1",
		Username: "ada",
		TenantID: tenantID,
		Roles:    []string{models.RoleTenantAdmin},
	})
	if err != nil {
		t.Fatalf("generate: %v", err)
	}

	subject, err := manager.ValidateToken(token)
	if err != nil {
		t.Fatalf("validate: %v", err)
	}
	if subject.ID != "user-1" || subject.Username != "ada" {
		t.Errorf("subject = %+v", subject)
	}
	if subject.TenantID != tenantID {
		t.Errorf("tenant id = %v, want %v", subject.TenantID, tenantID)
	}
	if !subject.HasRole(models.RoleTenantAdmin) {
		t.Error("role lost in round trip")
	}
	if !subject.BelongsToTenant(tenantID) {
		t.Error("BelongsToTenant should match the claim tenant")
	}
}

func TestPlatformAdminHasNoTenant(t *testing.T) {
	t.Parallel()

	manager := testManager(t, time.Hour)
	token, err := manager.GenerateToken(AuthSubject{
		ID:    "admin-1",
		Roles: []string{models.RolePlatformAdmin},
	})
	if err != nil {
		t.Fatalf("generate: %v", err)
	}

	subject, err := manager.ValidateToken(token)
	if err != nil {
		t.Fatalf("validate: %v", err)
	}
	if subject.TenantID != uuid.Nil {
		t.Errorf("platform admin should carry no tenant, got %v", subject.TenantID)
	}
	if subject.BelongsToTenant(uuid.Nil) {
		t.Error("nil tenant must never satisfy BelongsToTenant")
	}
}

func TestValidateTokenFailures(t *testing.T) {
	t.Parallel()

	manager := testManager(t, time.Hour)

	t.Run("garbage token", func(t *testing.T) {
		t.Parallel()

		if _, err := manager.ValidateToken("not.a.token"); !errors.Is(err, ErrInvalidCredentials) {
			t.Errorf("expected ErrInvalidCredentials, got %v", err)
		}
	})

	t.Run("wrong secret", func(t *testing.T) {
		t.Parallel()

		other := testManager(t, time.Hour)
		other.secret = []byte(strings.Repeat("x", 32))
		token, err := other.GenerateToken(AuthSubject{ID: "user-1"})
		if err != nil {
			t.Fatalf("generate: %v", err)
		}
		if _, err := manager.ValidateToken(token); !errors.Is(err, ErrInvalidCredentials) {
			t.Errorf("expected ErrInvalidCredentials, got %v", err)
		}
	})

	t.Run("expired token", func(t *testing.T) {
		t.Parallel()

		expired := testManager(t, -time.Minute)
		token, err := expired.GenerateToken(AuthSubject{ID: "user-1"})
		if err != nil {
			t.Fatalf("generate: %v", err)
		}
		if _, err := manager.ValidateToken(token); !errors.Is(err, ErrExpiredCredentials) {
			t.Errorf("expected ErrExpiredCredentials, got %v", err)
		}
	})
}

func TestNewJWTManagerRequiresSecret(t *testing.T) {
	t.Parallel()

	if _, err := NewJWTManager(&config.SecurityConfig{}); err == nil {
		t.Error("empty secret accepted")
	}
}
