// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"errors"
	"fmt"
)

// Role is the closed set of authorization roles. Values match the strings
// persisted in users.role and carried in the "role" access-token claim.
type Role string

const (
	RoleUser        Role = "USER"
	RoleManager     Role = "MANAGER"
	RoleAdmin       Role = "ADMIN"
	RoleSystemAdmin Role = "SYSTEM_ADMIN"
)

// DefaultRole is assigned to self-registered accounts.
const DefaultRole = RoleUser

// ErrUnknownRole is returned by [ParseRole] for strings outside the enumeration.
var ErrUnknownRole = errors.New("unknown role")

// Roles lists every known role from least to most privileged.
func Roles() []Role {
	return []Role{RoleUser, RoleManager, RoleAdmin, RoleSystemAdmin}
}

// ParseRole converts s into a [Role].
func ParseRole(s string) (Role, error) {
	switch r := Role(s); r {
	case RoleUser, RoleManager, RoleAdmin, RoleSystemAdmin:
		return r, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownRole, s)
	}
}

// Valid reports whether r is one of the known roles.
func (r Role) Valid() bool {
	_, err := ParseRole(string(r))
	return err == nil
}

// IsAdministrative reports whether r may act on resources owned by other users.
func (r Role) IsAdministrative() bool {
	switch r {
	case RoleAdmin, RoleSystemAdmin:
		return true
	case RoleUser, RoleManager:
		return false
	default:
		return false
	}
}

// In reports whether r is contained in roles.
func (r Role) In(roles ...Role) bool {
	for _, allowed := range roles {
		if r == allowed {
			return true
		}
	}
	return false
}

func (r Role) String() string {
	return string(r)
}
