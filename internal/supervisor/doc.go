// Tessera - Multi-Tenant Event Ticketing Platform
// Copyright 2026 Tessera Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tessera-hq/tessera

// Package supervisor wires long-running components into a suture
// supervisor tree. The tree restarts crashed services with backoff and
// gives each layer independent failure isolation, so a misbehaving
// background job cannot take the HTTP listener down with it.
package supervisor
