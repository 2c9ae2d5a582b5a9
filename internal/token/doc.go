// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package token issues and verifies the signed credentials of the service.
//
// Access tokens are short-lived and carry the principal (subject, email,
// role). Refresh tokens are long-lived, carry only the subject and are
// backed by a stored session. Each class is signed with its own HMAC-SHA256
// secret, so neither can be verified with, or minted from, the other's key.
package token
