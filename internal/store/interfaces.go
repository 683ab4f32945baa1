// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 SMS Platform Authors

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

package store

import (
	"context"

	"github.com/sms-platform/authgate/models"
)

// FailureState is the post-update lockout state of an account, returned by
// [AccountRepository.RecordFailure] so the caller observes the counter value
// and ban flag produced by its own attempt.
type FailureState struct {
	ConsecutiveFailures int
	Banned              bool
}

// AccountRepository is the persistence contract for account rows.
// Lookup methods return [ErrAccountNotFound] when no row matches.
type AccountRepository interface {
	// CreateAccount atomically inserts the account row plus the
	// role-specific profile row (when non-nil) in one transaction.
	// Returns [ErrAccountAlreadyExists] on a duplicate identifier or name.
	CreateAccount(ctx context.Context, account models.Account, profile models.Profile) (models.Account, error)

	// FindByName looks an account up by its unique account name.
	FindByName(ctx context.Context, name string) (models.Account, error)

	// FindByIdentifier looks an account up by its immutable identifier.
	FindByIdentifier(ctx context.Context, identifier string) (models.Account, error)

	// RecordFailure atomically increments the consecutive-failure counter
	// and sets the ban flag once the counter reaches threshold.
	RecordFailure(ctx context.Context, identifier string, threshold int) (FailureState, error)

	// ResetFailures atomically resets the consecutive-failure counter to 0.
	ResetFailures(ctx context.Context, identifier string) error
}

// TokenRepository is the persistence contract for second-factor token rows.
type TokenRepository interface {
	// FindByIdentifier returns the live token for an account, or
	// [ErrTokenNotFound] when none is enrolled.
	FindByIdentifier(ctx context.Context, identifier string) (models.SecondFactorToken, error)

	// Enroll stores (or replaces) the 1:1 token for an account and enables
	// its dual-authentication flag in a single transaction. Returns
	// [ErrAccountNotFound] when no such account exists.
	Enroll(ctx context.Context, token models.SecondFactorToken) error
}

// AttemptRepository is the persistence contract for the append-only attempt
// log. Append must commit independently of any caller transaction so a
// record survives a rolled-back login.
type AttemptRepository interface {
	// Append writes one immutable attempt record with a current timestamp.
	Append(ctx context.Context, record models.AttemptRecord) (models.AttemptRecord, error)

	// List returns attempt records matching filter, newest first.
	List(ctx context.Context, filter models.AttemptFilter) ([]models.AttemptRecord, error)
}
