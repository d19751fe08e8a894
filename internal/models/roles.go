// Tessera - Multi-Tenant Event Ticketing Platform
// Copyright 2026 Tessera Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tessera-hq/tessera

package models

// Role constants define the standard roles in the system.
// These align with the Casbin policy definitions in internal/authz.
const (
	// RoleViewer has read-only access within its tenant.
	RoleViewer = "viewer"

	// RoleTenantAdmin manages events, ticket types and theme state for
	// its own tenant, and inherits viewer permissions.
	RoleTenantAdmin = "tenant_admin"

	// RolePlatformAdmin manages theme templates platform-wide and
	// inherits tenant_admin permissions.
	RolePlatformAdmin = "platform_admin"
)

// ValidRoles contains all valid role names for validation.
var ValidRoles = []string{RoleViewer, RoleTenantAdmin, RolePlatformAdmin}

// IsValidRole checks if a role name is valid.
func IsValidRole(role string) bool {
	for _, r := range ValidRoles {
		if r == role {
			return true
		}
	}
	return false
}
