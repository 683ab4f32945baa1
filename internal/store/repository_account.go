// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 SMS Platform Authors

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jackc/pgerrcode"

	"github.com/sms-platform/authgate/internal/logger"
	"github.com/sms-platform/authgate/models"
)

// accountRepository is the PostgreSQL-backed implementation of
// [AccountRepository]. It handles account provisioning, lookup, and the
// atomic lockout-state mutations against the "accounts" table.
//
// All methods obtain a context-scoped logger via [logger.FromContext] for
// structured, request-level tracing of database interactions.
type accountRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewAccountRepository constructs an [AccountRepository] backed by the
// provided database connection and logger.
//
// A debug-level log message is emitted at construction time to aid
// application startup diagnostics.
func NewAccountRepository(db *DB, logger *logger.Logger) AccountRepository {
	logger.Debug().Msg("creating account repository")
	return &accountRepository{
		db:     db,
		logger: logger,
	}
}

// CreateAccount persists a new account row plus its role-specific profile
// row in a single transaction, rolling back entirely on any failure.
//
// The combined uniqueness requirement (identifier PK and account name
// UNIQUE) is enforced by the database inside the same INSERT, so duplicate
// detection and creation cannot race.
//
// Error handling:
//   - PostgreSQL unique_violation (23505) → [ErrAccountAlreadyExists].
//   - Any other driver-level error → wrapped as "unexpected DB error".
func (r *accountRepository) CreateAccount(ctx context.Context, account models.Account, profile models.Profile) (models.Account, error) {
	log := logger.FromContext(ctx)

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		log.Err(err).Str("func", "*accountRepository.CreateAccount").Msg("error: cannot begin transaction")
		return models.Account{}, fmt.Errorf("%w: %w", ErrBeginningTransaction, err)
	}
	defer tx.Rollback()

	var created models.Account
	row := tx.QueryRowContext(ctx, createAccount,
		account.Identifier, account.Name, account.PasswordHash, account.Role, account.DualAuthEnabled)
	if err := row.Scan(&created.Identifier, &created.Name, &created.PasswordHash, &created.Role,
		&created.Banned, &created.ConsecutiveFailures, &created.DualAuthEnabled, &created.CreatedAt); err != nil {
		log.Err(err).Str("func", "*accountRepository.CreateAccount").Msg("error: inserting account")

		switch postgresError(err) {
		case pgerrcode.UniqueViolation:
			return models.Account{}, ErrAccountAlreadyExists
		default:
			return models.Account{}, fmt.Errorf("unexpected DB error: %w", err)
		}
	}

	if profile != nil {
		if err := insertProfile(ctx, tx, profile); err != nil {
			log.Err(err).Str("func", "*accountRepository.CreateAccount").Msg("error: inserting profile")

			switch postgresError(err) {
			case pgerrcode.UniqueViolation:
				return models.Account{}, ErrAccountAlreadyExists
			default:
				return models.Account{}, fmt.Errorf("unexpected DB error: %w", err)
			}
		}
	}

	if err := tx.Commit(); err != nil {
		log.Err(err).Str("func", "*accountRepository.CreateAccount").Msg("error: commit failed")
		return models.Account{}, fmt.Errorf("%w: %w", ErrCommitingTransaction, err)
	}

	return created, nil
}

// insertProfile dispatches on the closed profile variant set.
func insertProfile(ctx context.Context, tx *sql.Tx, profile models.Profile) error {
	switch p := profile.(type) {
	case models.StudentProfile:
		_, err := tx.ExecContext(ctx, createStudentProfile,
			p.Identifier, p.FullName, p.MajorID, p.ClassID, p.EnrollmentTime)
		return err
	case *models.StudentProfile:
		_, err := tx.ExecContext(ctx, createStudentProfile,
			p.Identifier, p.FullName, p.MajorID, p.ClassID, p.EnrollmentTime)
		return err
	default:
		return fmt.Errorf("unsupported profile variant %T", profile)
	}
}

// FindByName retrieves the account whose unique account name matches name.
//
// Error handling:
//   - sql.ErrNoRows → [ErrAccountNotFound].
//   - Any other driver-level error → wrapped as "unexpected DB error".
func (r *accountRepository) FindByName(ctx context.Context, name string) (models.Account, error) {
	return r.findOne(ctx, findAccountByName, name)
}

// FindByIdentifier retrieves the account with the given immutable identifier.
//
// Error handling mirrors [accountRepository.FindByName].
func (r *accountRepository) FindByIdentifier(ctx context.Context, identifier string) (models.Account, error) {
	return r.findOne(ctx, findAccountByIdentifier, identifier)
}

func (r *accountRepository) findOne(ctx context.Context, query, arg string) (models.Account, error) {
	log := logger.FromContext(ctx)

	var found models.Account
	row := r.db.QueryRowContext(ctx, query, arg)
	if err := row.Scan(&found.Identifier, &found.Name, &found.PasswordHash, &found.Role,
		&found.Banned, &found.ConsecutiveFailures, &found.DualAuthEnabled, &found.CreatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Account{}, ErrAccountNotFound
		}

		log.Err(err).Str("func", "*accountRepository.findOne").Msg("error: scanning account")
		return models.Account{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	return found, nil
}

// RecordFailure increments the consecutive-failure counter and flips the ban
// flag once the new count reaches threshold, in one row-atomic UPDATE. Two
// simultaneous wrong-password attempts therefore cannot read the same
// pre-increment value; PostgreSQL serializes the row updates.
//
// Returns the post-update [FailureState] so the caller observes the counter
// value its own attempt produced.
func (r *accountRepository) RecordFailure(ctx context.Context, identifier string, threshold int) (FailureState, error) {
	log := logger.FromContext(ctx)

	var state FailureState
	row := r.db.QueryRowContext(ctx, recordFailure, identifier, threshold)
	if err := row.Scan(&state.ConsecutiveFailures, &state.Banned); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return FailureState{}, ErrAccountNotFound
		}

		log.Err(err).Str("func", "*accountRepository.RecordFailure").Msg("error: recording failure")
		return FailureState{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	return state, nil
}

// ResetFailures sets the consecutive-failure counter back to 0 after a fully
// successful primary-factor check.
func (r *accountRepository) ResetFailures(ctx context.Context, identifier string) error {
	log := logger.FromContext(ctx)

	res, err := r.db.ExecContext(ctx, resetFailures, identifier)
	if err != nil {
		log.Err(err).Str("func", "*accountRepository.ResetFailures").Msg("error: resetting failures")
		return fmt.Errorf("unexpected DB error: %w", err)
	}

	if affected, err := res.RowsAffected(); err == nil && affected == 0 {
		return ErrAccountNotFound
	}

	return nil
}

