// Tessera - Multi-Tenant Event Ticketing Platform
// Copyright 2026 Tessera Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tessera-hq/tessera

package auth

import (
	"net/http"
	"strings"
	"time"

	json "github.com/goccy/go-json"

	"github.com/tessera-hq/tessera/internal/logging"
	"github.com/tessera-hq/tessera/internal/models"
)

// Middleware authenticates requests and fails closed: a protected route
// group never reaches its handler without a subject on the context.
type Middleware struct {
	manager  *JWTManager
	disabled bool
}

// NewMiddleware builds the authentication middleware. When disabled (local
// development only, guarded by config validation) every request is treated
// as a platform admin.
func NewMiddleware(manager *JWTManager, disabled bool) *Middleware {
	if disabled {
		logger := logging.WithComponent("auth")
		logger.Warn().
			Msg("Authentication is DISABLED; all requests run as platform admin")
	}
	return &Middleware{manager: manager, disabled: disabled}
}

// Authenticate validates the bearer token and stores the subject on the
// request context. Missing or invalid credentials end the request with 401.
func (m *Middleware) Authenticate(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if m.disabled {
			subject := &AuthSubject{
				ID:       "dev",
				Username: "dev",
				Roles:    []string{models.RolePlatformAdmin},
			}
			next.ServeHTTP(w, r.WithContext(ContextWithSubject(r.Context(), subject)))
			return
		}

		token, err := extractBearer(r)
		if err != nil {
			unauthorized(w, r, "Authentication required")
			return
		}

		subject, err := m.manager.ValidateToken(token)
		if err != nil {
			logging.Ctx(r.Context()).Debug().Err(err).Msg("Token validation failed")
			unauthorized(w, r, "Invalid or expired credentials")
			return
		}

		next.ServeHTTP(w, r.WithContext(ContextWithSubject(r.Context(), subject)))
	})
}

// extractBearer pulls the token from the Authorization header.
func extractBearer(r *http.Request) (string, error) {
	header := r.Header.Get("Authorization")
	if header == "" {
		return "", ErrNoCredentials
	}
	const prefix = "Bearer "
	if !strings.HasPrefix(header, prefix) {
		return "", ErrInvalidCredentials
	}
	token := strings.TrimSpace(header[len(prefix):])
	if token == "" {
		return "", ErrNoCredentials
	}
	return token, nil
}

// unauthorized writes the standard 401 envelope.
func unauthorized(w http.ResponseWriter, r *http.Request, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("WWW-Authenticate", `Bearer realm="tessera"`)
	w.WriteHeader(http.StatusUnauthorized)

	response := models.APIResponse{
		Status:   "error",
		Metadata: models.Metadata{Timestamp: time.Now().UTC()},
		Error: &models.APIError{
			Code:    "AUTH_REQUIRED",
			Message: message,
		},
	}
	if err := json.NewEncoder(w).Encode(response); err != nil {
		logging.Ctx(r.Context()).Error().Err(err).Msg("Failed to write auth error response")
	}
}
