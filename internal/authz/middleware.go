// Tessera - Multi-Tenant Event Ticketing Platform
// Copyright 2026 Tessera Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tessera-hq/tessera

package authz

import (
	"net/http"
	"time"

	json "github.com/goccy/go-json"
	"github.com/google/uuid"

	"github.com/tessera-hq/tessera/internal/auth"
	"github.com/tessera-hq/tessera/internal/logging"
	"github.com/tessera-hq/tessera/internal/models"
)

// Middleware enforces path-based authorization on incoming requests.
type Middleware struct {
	enforcer *Enforcer
}

// NewMiddleware creates authorization middleware around an enforcer.
func NewMiddleware(enforcer *Enforcer) *Middleware {
	return &Middleware{enforcer: enforcer}
}

// AuthorizeRequest derives the action from the HTTP method and enforces
// it against the request path. It expects authentication middleware to
// have run first; requests without a subject are rejected.
func (m *Middleware) AuthorizeRequest(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		subject, ok := auth.SubjectFromContext(r.Context())
		if !ok {
			forbidden(w, "no authentication context")
			return
		}

		action := methodToAction(r.Method)
		allowed, err := m.enforcer.EnforceWithRoles(subject.ID, subject.Roles, r.URL.Path, action)
		if err != nil {
			logging.Ctx(r.Context()).Error().Err(err).Msg("Authorization error")
			http.Error(w, "Internal server error", http.StatusInternalServerError)
			return
		}
		if !allowed {
			logging.Ctx(r.Context()).Warn().
				Str("subject", subject.ID).
				Str("path", r.URL.Path).
				Str("action", action).
				Msg("Authorization denied")
			forbidden(w, "insufficient permissions")
			return
		}

		next.ServeHTTP(w, r)
	})
}

// RequireRole enforces that the subject carries the given role, directly
// or through inheritance.
func (m *Middleware) RequireRole(role string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			subject, ok := auth.SubjectFromContext(r.Context())
			if !ok {
				forbidden(w, "no authentication context")
				return
			}
			if !m.subjectHasRole(subject, role) {
				forbidden(w, "insufficient permissions")
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

func (m *Middleware) subjectHasRole(subject *auth.AuthSubject, role string) bool {
	if subject.HasRole(role) {
		return true
	}
	// Inherited roles, e.g. platform_admin satisfies tenant_admin.
	for _, held := range subject.Roles {
		inherited, err := m.enforcer.GetImplicitRolesForUser(held)
		if err != nil {
			continue
		}
		for _, inh := range inherited {
			if inh == role {
				return true
			}
		}
	}
	return false
}

// CheckTenantAccess reports whether the subject may act on resources of
// the given tenant. Platform admins may act anywhere; everyone else is
// confined to their own tenant.
func CheckTenantAccess(subject *auth.AuthSubject, tenantID uuid.UUID) bool {
	if subject == nil {
		return false
	}
	if subject.HasRole(models.RolePlatformAdmin) {
		return true
	}
	return subject.BelongsToTenant(tenantID)
}

// methodToAction maps HTTP methods to policy actions.
func methodToAction(method string) string {
	switch method {
	case http.MethodGet, http.MethodHead, http.MethodOptions:
		return "read"
	case http.MethodPost, http.MethodPut, http.MethodPatch:
		return "write"
	case http.MethodDelete:
		return "delete"
	default:
		return "read"
	}
}

func forbidden(w http.ResponseWriter, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusForbidden)
	//nolint:errcheck // nothing to do if the client is gone
	json.NewEncoder(w).Encode(models.APIResponse{
		Status: "error",
		Error: &models.APIError{
			Code:    "FORBIDDEN",
			Message: message,
		},
		Metadata: models.Metadata{Timestamp: time.Now().UTC()},
	})
}
