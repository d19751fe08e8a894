// Tessera - Multi-Tenant Event Ticketing Platform
// Copyright 2026 Tessera Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tessera-hq/tessera

package auth

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/tessera-hq/tessera/internal/config"
)

// Claims are the JWT claims Tessera issues and validates. TenantID is
// empty for platform admins.
type Claims struct {
	Username string   `json:"username"`
	TenantID string   `json:"tenant_id,omitempty"`
	Roles    []string `json:"roles"`
	jwt.RegisteredClaims
}

// JWTManager signs and validates bearer tokens with HMAC-SHA256.
type JWTManager struct {
	secret   []byte
	tokenTTL time.Duration
}

// NewJWTManager builds a manager from the security configuration. The
// secret length floor is enforced by config validation.
func NewJWTManager(cfg *config.SecurityConfig) (*JWTManager, error) {
	if cfg.JWTSecret == "" {
		return nil, errors.New("JWT secret is required")
	}
	return &JWTManager{
		secret:   []byte(cfg.JWTSecret),
		tokenTTL: cfg.TokenTTL,
	}, nil
}

// GenerateToken signs a token for a subject. Used by tests and operational
// tooling; production tokens come from the identity service sharing the
// same secret.
func (m *JWTManager) GenerateToken(subject AuthSubject) (string, error) {
	now := time.Now()
	claims := &Claims{
		Username: subject.Username,
		Roles:    subject.Roles,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   subject.ID,
			ExpiresAt: jwt.NewNumericDate(now.Add(m.tokenTTL)),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
		},
	}
	if subject.TenantID != uuid.Nil {
		claims.TenantID = subject.TenantID.String()
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(m.secret)
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}
	return signed, nil
}

// ValidateToken verifies signature, expiry and signing algorithm, and
// normalizes the claims into an AuthSubject.
func (m *JWTManager) ValidateToken(tokenString string) (*AuthSubject, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return m.secret, nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, ErrExpiredCredentials
		}
		return nil, fmt.Errorf("%w: %s", ErrInvalidCredentials, err)
	}
	if !token.Valid {
		return nil, ErrInvalidCredentials
	}

	subject := &AuthSubject{
		ID:       claims.Subject,
		Username: claims.Username,
		Roles:    claims.Roles,
	}
	if claims.TenantID != "" {
		tenantID, err := uuid.Parse(claims.TenantID)
		if err != nil {
			return nil, fmt.Errorf("%w: malformed tenant_id claim", ErrInvalidCredentials)
		}
		subject.TenantID = tenantID
	}
	return subject, nil
}
