// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

// Storages aggregates the repositories built over one database.
type Storages struct {
	UserRepository    UserRepository
	SessionRepository SessionRepository
	Transactor        Transactor
}

// NewStorages wires every repository to db.
func NewStorages(db *DB) *Storages {
	return &Storages{
		UserRepository:    NewUserRepository(db),
		SessionRepository: NewSessionRepository(db),
		Transactor:        NewTransactor(db),
	}
}
