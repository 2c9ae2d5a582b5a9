// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// Response is the envelope of every JSON body produced by the API.
type Response struct {
	Success bool   `json:"success"`
	Data    any    `json:"data,omitempty"`
	Error   *Error `json:"error,omitempty"`
}

// Error describes a failed request.
type Error struct {
	Message string `json:"message"`

	// Details carries extra diagnostics, e.g. failed validation fields or
	// the roles required by an endpoint.
	Details any `json:"details,omitempty"`
}

// ForbiddenDetails is attached to 403 responses of role checks.
type ForbiddenDetails struct {
	RequiredRoles []Role `json:"requiredRoles"`
	ActualRole    Role   `json:"actualRole"`
}

// VersionResponse is returned by GET /api/version.
type VersionResponse struct {
	Version string     `json:"version"`
	Viewer  *Principal `json:"viewer,omitempty"`
}

// PurgeResponse is returned by the admin session purge endpoint.
type PurgeResponse struct {
	Deleted int64 `json:"deleted"`
}
