// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 SMS Platform Authors

package store

import (
	"github.com/sms-platform/authgate/internal/logger"
)

// Repositories bundles every persistence contract the services depend on.
type Repositories struct {
	AccountRepository AccountRepository
	TokenRepository   TokenRepository
	AttemptRepository AttemptRepository
}

// NewRepositories wires all repositories to the shared database handle.
func NewRepositories(db *DB, logger *logger.Logger) *Repositories {
	return &Repositories{
		AccountRepository: NewAccountRepository(db, logger),
		TokenRepository:   NewTokenRepository(db, logger),
		AttemptRepository: NewAttemptRepository(db, logger),
	}
}
