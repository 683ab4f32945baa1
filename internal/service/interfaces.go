// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 SMS Platform Authors

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock

package service

import (
	"context"

	"github.com/sms-platform/authgate/models"
)

// AuthService is the authentication state machine exposed to transport
// layers. Expected domain outcomes (not-found, mismatch, banned,
// second-factor-pending) are carried as values inside the result, never as
// errors; infrastructure faults surface as [models.OutcomeServerError].
type AuthService interface {
	// Login verifies the primary credential for accountName and advances
	// the lockout state machine. It never panics and never returns an
	// error: every exit path produces a structured [models.LoginResult].
	Login(ctx context.Context, accountName, password string) models.LoginResult

	// VerifySecondFactor checks a submitted one-time token against the
	// stored token for identifier. True only on an exact match.
	VerifySecondFactor(ctx context.Context, identifier, token string) bool
}

// ProvisionService is the account-provisioning collaborator: creation of
// accounts with their role profiles, and second-factor enrollment.
type ProvisionService interface {
	// CreateAccount hashes the plaintext password and atomically creates
	// the account plus its role-specific profile.
	CreateAccount(ctx context.Context, req models.CreateAccountRequest) (models.Account, error)

	// EnrollSecondFactor flips dual authentication on for an account by
	// provisioning its expected one-time token.
	EnrollSecondFactor(ctx context.Context, identifier, token string) error

	// FindByAccount looks an account up by name. Used by startup seeding.
	FindByAccount(ctx context.Context, name string) (models.Account, error)
}

// AuditService exposes read access over the append-only attempt log.
type AuditService interface {
	// ListAttempts returns attempt records matching filter, newest first.
	ListAttempts(ctx context.Context, filter models.AttemptFilter) ([]models.AttemptRecord, error)
}

// AttemptLogger appends audit records for authentication attempts. Append
// failures are reported to the operational log and swallowed: a lost audit
// write must never alter the outcome returned to the caller.
type AttemptLogger interface {
	LogAttempt(ctx context.Context, identifier *string, succeeded bool, detail string, secondFactor bool)
}
