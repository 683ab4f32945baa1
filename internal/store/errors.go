// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 SMS Platform Authors

package store

import "errors"

// Sentinel errors returned by repository methods to signal well-known failure
// conditions. Callers should use [errors.Is] to match against these values.
var (
	// ErrAccountAlreadyExists is returned when provisioning fails because an
	// account with the same identifier or account name already exists.
	ErrAccountAlreadyExists = errors.New("account already exists")

	// ErrAccountNotFound is returned when a query expected to match exactly
	// one account produces an empty result set.
	ErrAccountNotFound = errors.New("account not found")

	// ErrTokenNotFound is returned when no second-factor token row exists
	// for the requested identifier.
	ErrTokenNotFound = errors.New("second-factor token not found")
)

// Low-level database operation errors. These are returned (or wrapped) by
// repository methods when a SQL-level operation fails before any domain logic
// can be applied.
var (
	// ErrBuildingSQLQuery is returned when constructing a parameterised SQL
	// query fails (e.g. invalid argument count or unsupported type).
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrBeginningTransaction is returned when the database driver cannot
	// start a new transaction.
	ErrBeginningTransaction = errors.New("failed to begin transaction")

	// ErrCommitingTransaction is returned when committing an open transaction
	// fails. The transaction is considered rolled back at this point.
	ErrCommitingTransaction = errors.New("failed to commit transaction")
)
