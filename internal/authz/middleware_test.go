// Tessera - Multi-Tenant Event Ticketing Platform
// Copyright 2026 Tessera Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tessera-hq/tessera

package authz

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"

	"github.com/tessera-hq/tessera/internal/auth"
	"github.com/tessera-hq/tessera/internal/models"
)

func okHandler(called *bool) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		*called = true
		w.WriteHeader(http.StatusOK)
	})
}

func requestAs(subject *auth.AuthSubject, method, path string) *http.Request {
	req := httptest.NewRequest(method, path, nil)
	if subject != nil {
		req = req.WithContext(auth.ContextWithSubject(req.Context(), subject))
	}
	return req
}

func TestAuthorizeRequest(t *testing.T) {
	t.Parallel()

	mw := NewMiddleware(newTestEnforcer(t))

	tests := []struct {
		name       string
		subject    *auth.AuthSubject
		method     string
		path       string
		wantStatus int
	}{
		{
			name:       "no subject",
			subject:    nil,
			method:     http.MethodGet,
			path:       "/api/v1/tenant-admin/events",
			wantStatus: http.StatusForbidden,
		},
		{
			name:       "viewer reads",
			subject:    &auth.AuthSubject{ID: "u1", Roles: []string{models.RoleViewer}},
			method:     http.MethodGet,
			path:       "/api/v1/tenant-admin/events",
			wantStatus: http.StatusOK,
		},
		{
			name:       "viewer denied write",
			subject:    &auth.AuthSubject{ID: "u1", Roles: []string{models.RoleViewer}},
			method:     http.MethodPut,
			path:       "/api/v1/tenant-admin/events/abc/theme",
			wantStatus: http.StatusForbidden,
		},
		{
			name:       "tenant admin writes",
			subject:    &auth.AuthSubject{ID: "u2", Roles: []string{models.RoleTenantAdmin}},
			method:     http.MethodPut,
			path:       "/api/v1/tenant-admin/events/abc/theme",
			wantStatus: http.StatusOK,
		},
		{
			name:       "tenant admin denied catalog",
			subject:    &auth.AuthSubject{ID: "u2", Roles: []string{models.RoleTenantAdmin}},
			method:     http.MethodPost,
			path:       "/api/v1/platform-admin/themes",
			wantStatus: http.StatusForbidden,
		},
		{
			name:       "platform admin everywhere",
			subject:    &auth.AuthSubject{ID: "u3", Roles: []string{models.RolePlatformAdmin}},
			method:     http.MethodDelete,
			path:       "/api/v1/platform-admin/themes/abc",
			wantStatus: http.StatusOK,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			called := false
			rec := httptest.NewRecorder()
			mw.AuthorizeRequest(okHandler(&called)).ServeHTTP(rec, requestAs(tt.subject, tt.method, tt.path))

			if rec.Code != tt.wantStatus {
				t.Errorf("status = %d, want %d", rec.Code, tt.wantStatus)
			}
			if called != (tt.wantStatus == http.StatusOK) {
				t.Errorf("handler called = %v", called)
			}
		})
	}
}

func TestRequireRoleInheritance(t *testing.T) {
	t.Parallel()

	mw := NewMiddleware(newTestEnforcer(t))
	admin := &auth.AuthSubject{ID: "u4", Roles: []string{models.RolePlatformAdmin}}
	viewer := &auth.AuthSubject{ID: "u5", Roles: []string{models.RoleViewer}}

	called := false
	rec := httptest.NewRecorder()
	mw.RequireRole(models.RoleTenantAdmin)(okHandler(&called)).
		ServeHTTP(rec, requestAs(admin, http.MethodGet, "/api/v1/tenant-admin/events"))
	if rec.Code != http.StatusOK || !called {
		t.Errorf("platform_admin should satisfy tenant_admin requirement, status = %d", rec.Code)
	}

	called = false
	rec = httptest.NewRecorder()
	mw.RequireRole(models.RoleTenantAdmin)(okHandler(&called)).
		ServeHTTP(rec, requestAs(viewer, http.MethodGet, "/api/v1/tenant-admin/events"))
	if rec.Code != http.StatusForbidden || called {
		t.Errorf("viewer must not satisfy tenant_admin requirement, status = %d", rec.Code)
	}
}

func TestCheckTenantAccess(t *testing.T) {
	t.Parallel()

	tenantA := uuid.New()
	tenantB := uuid.New()

	tests := []struct {
		name    string
		subject *auth.AuthSubject
		tenant  uuid.UUID
		want    bool
	}{
		{"nil subject", nil, tenantA, false},
		{"own tenant", &auth.AuthSubject{TenantID: tenantA, Roles: []string{models.RoleTenantAdmin}}, tenantA, true},
		{"other tenant", &auth.AuthSubject{TenantID: tenantA, Roles: []string{models.RoleTenantAdmin}}, tenantB, false},
		{"no tenant claim", &auth.AuthSubject{Roles: []string{models.RoleTenantAdmin}}, tenantA, false},
		{"platform admin crosses tenants", &auth.AuthSubject{Roles: []string{models.RolePlatformAdmin}}, tenantB, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := CheckTenantAccess(tt.subject, tt.tenant); got != tt.want {
				t.Errorf("CheckTenantAccess = %v, want %v", got, tt.want)
			}
		})
	}
}
