// Tessera - Multi-Tenant Event Ticketing Platform
// Copyright 2026 Tessera Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tessera-hq/tessera

// Package auth validates bearer JWTs and places an explicit AuthSubject on
// the request context. There is no ambient session state: every protected
// handler receives the subject through its context or the request fails
// closed with 401 before the handler runs. Token issuance happens in an
// external identity service; this package only verifies.
package auth

import (
	"context"
	"errors"

	"github.com/google/uuid"
)

// Standard authentication errors.
var (
	// ErrNoCredentials indicates no bearer token was provided.
	ErrNoCredentials = errors.New("no credentials provided")

	// ErrInvalidCredentials indicates the token failed validation.
	ErrInvalidCredentials = errors.New("invalid credentials")

	// ErrExpiredCredentials indicates the token has expired.
	ErrExpiredCredentials = errors.New("credentials expired")
)

// AuthSubject is an authenticated caller: a platform operator or a tenant
// user. It normalizes the JWT claims the rest of the system acts on.
type AuthSubject struct {
	// ID is the token's sub claim.
	ID string `json:"id"`

	// Username is the human-readable login name.
	Username string `json:"username"`

	// TenantID scopes tenant-admin and viewer subjects to their
	// organizer account. uuid.Nil for platform admins.
	TenantID uuid.UUID `json:"tenant_id,omitempty"`

	// Roles feed the Casbin enforcer.
	Roles []string `json:"roles,omitempty"`
}

// HasRole reports whether the subject carries the role directly. Role
// inheritance (platform_admin > tenant_admin > viewer) is evaluated by the
// authorization service, not here.
func (s *AuthSubject) HasRole(role string) bool {
	for _, r := range s.Roles {
		if r == role {
			return true
		}
	}
	return false
}

// BelongsToTenant reports whether the subject is scoped to the tenant.
func (s *AuthSubject) BelongsToTenant(tenantID uuid.UUID) bool {
	return s.TenantID != uuid.Nil && s.TenantID == tenantID
}

type contextKey string

const subjectKey contextKey = "auth_subject"

// ContextWithSubject stores the subject on the context.
func ContextWithSubject(ctx context.Context, subject *AuthSubject) context.Context {
	return context.WithValue(ctx, subjectKey, subject)
}

// SubjectFromContext retrieves the authenticated subject. The boolean is
// false when the request never passed authentication.
func SubjectFromContext(ctx context.Context) (*AuthSubject, bool) {
	subject, ok := ctx.Value(subjectKey).(*AuthSubject)
	return subject, ok && subject != nil
}
