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

// tokenRepository is the PostgreSQL-backed implementation of
// [TokenRepository] over the "second_factor_tokens" table.
type tokenRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewTokenRepository constructs a [TokenRepository] backed by the provided
// database connection and logger.
func NewTokenRepository(db *DB, logger *logger.Logger) TokenRepository {
	logger.Debug().Msg("creating second-factor token repository")
	return &tokenRepository{
		db:     db,
		logger: logger,
	}
}

// FindByIdentifier returns the live second-factor token for an account.
//
// Error handling:
//   - sql.ErrNoRows → [ErrTokenNotFound].
//   - Any other driver-level error → wrapped as "unexpected DB error".
func (r *tokenRepository) FindByIdentifier(ctx context.Context, identifier string) (models.SecondFactorToken, error) {
	log := logger.FromContext(ctx)

	var token models.SecondFactorToken
	row := r.db.QueryRowContext(ctx, findSecondFactorToken, identifier)
	if err := row.Scan(&token.Identifier, &token.Token); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.SecondFactorToken{}, ErrTokenNotFound
		}

		log.Err(err).Str("func", "*tokenRepository.FindByIdentifier").Msg("error: scanning token")
		return models.SecondFactorToken{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	return token, nil
}

// Enroll stores (or replaces) the single live token for an account and
// flips its dual-authentication flag on, both inside one transaction so a
// failure between the two writes never leaves a token row with the flag
// still off. The PRIMARY KEY on identifier keeps the 1:1 invariant; a
// second enrollment replaces the previous value instead of adding a row.
func (r *tokenRepository) Enroll(ctx context.Context, token models.SecondFactorToken) error {
	log := logger.FromContext(ctx)

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		log.Err(err).Str("func", "*tokenRepository.Enroll").Msg("error: cannot begin transaction")
		return fmt.Errorf("%w: %w", ErrBeginningTransaction, err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, upsertSecondFactorToken, token.Identifier, token.Token); err != nil {
		log.Err(err).Str("func", "*tokenRepository.Enroll").Msg("error: upserting token")

		switch postgresError(err) {
		case pgerrcode.ForeignKeyViolation:
			return ErrAccountNotFound
		default:
			return fmt.Errorf("unexpected DB error: %w", err)
		}
	}

	res, err := tx.ExecContext(ctx, setDualAuth, token.Identifier, true)
	if err != nil {
		log.Err(err).Str("func", "*tokenRepository.Enroll").Msg("error: updating dual auth flag")
		return fmt.Errorf("unexpected DB error: %w", err)
	}
	if affected, err := res.RowsAffected(); err == nil && affected == 0 {
		return ErrAccountNotFound
	}

	if err := tx.Commit(); err != nil {
		log.Err(err).Str("func", "*tokenRepository.Enroll").Msg("error: commit failed")
		return fmt.Errorf("%w: %w", ErrCommitingTransaction, err)
	}

	return nil
}
