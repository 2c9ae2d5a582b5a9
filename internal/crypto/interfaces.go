// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

//go:generate mockgen -source=interfaces.go -destination=../mock/password_hasher_mock.go -package=mock

// PasswordHasher turns plaintext passwords into salted one-way hashes and
// checks candidates against them. Implementations must be safe for
// concurrent use.
type PasswordHasher interface {
	// Hash returns a self-describing hash of password (algorithm, cost and
	// salt are embedded). Two calls with the same input produce different
	// hashes. Failures wrap [ErrHashing].
	Hash(password string) (string, error)

	// Verify reports whether password matches hash. A malformed hash is a
	// mismatch, never an error.
	Verify(password, hash string) bool
}
