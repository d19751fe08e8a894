// Tessera - Multi-Tenant Event Ticketing Platform
// Copyright 2026 Tessera Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tessera-hq/tessera

// Package authz provides role-based authorization using Casbin.
//
// Three roles are defined, each inheriting the permissions of the one
// below it:
//
//	platform_admin > tenant_admin > viewer
//
// Platform admins manage the global theme catalog. Tenant admins manage
// events, theme overrides, and ticketing within their own tenant. Viewers
// get read-only access to tenant-scoped resources.
//
// Path-based policies (request path x derived action) come from an
// embedded model and policy, overridable via files for deployments that
// need custom rules. Decisions are cached with a short TTL since policy
// changes are rare and enforcement sits on every request.
//
// Role membership says nothing about WHICH tenant a caller may touch;
// tenant isolation is enforced separately via CheckTenantAccess.
package authz
