// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 SMS Platform Authors

package store

import (
	"context"
	"fmt"

	"github.com/sms-platform/authgate/internal/logger"
	"github.com/sms-platform/authgate/models"
)

// attemptRepository is the PostgreSQL-backed implementation of
// [AttemptRepository] over the append-only "attempt_log" table.
//
// Append executes directly on the pooled connection in auto-commit mode, so
// each record commits independently of whatever transaction the surrounding
// login may be running. A rolled-back login still leaves its attempt record
// behind.
type attemptRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewAttemptRepository constructs an [AttemptRepository] backed by the
// provided database connection and logger.
func NewAttemptRepository(db *DB, logger *logger.Logger) AttemptRepository {
	logger.Debug().Msg("creating attempt-log repository")
	return &attemptRepository{
		db:     db,
		logger: logger,
	}
}

// Append writes one attempt record and returns it with the server-assigned
// id and timestamp.
func (r *attemptRepository) Append(ctx context.Context, record models.AttemptRecord) (models.AttemptRecord, error) {
	log := logger.FromContext(ctx)

	row := r.db.QueryRowContext(ctx, insertAttempt,
		record.Identifier, record.Succeeded, record.Detail, record.SecondFactor)
	if err := row.Scan(&record.ID, &record.AttemptedAt); err != nil {
		log.Err(err).Str("func", "*attemptRepository.Append").Msg("error: inserting attempt record")
		return models.AttemptRecord{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	return record, nil
}

// List returns attempt records matching filter, newest first.
func (r *attemptRepository) List(ctx context.Context, filter models.AttemptFilter) ([]models.AttemptRecord, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildAttemptQuery(filter)
	if err != nil {
		log.Err(err).Str("func", "*attemptRepository.List").Msg("error: building query")
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*attemptRepository.List").Msg("error: executing query")
		return nil, fmt.Errorf("unexpected DB error: %w", err)
	}
	defer rows.Close()

	// The pre-allocation hint must not trust the caller-supplied limit;
	// anything above the default grows the slice as rows arrive.
	records := make([]models.AttemptRecord, 0, min(filter.Limit, defaultAttemptLimit))
	for rows.Next() {
		var record models.AttemptRecord
		if err := rows.Scan(&record.ID, &record.Identifier, &record.AttemptedAt,
			&record.Succeeded, &record.Detail, &record.SecondFactor); err != nil {
			log.Err(err).Str("func", "*attemptRepository.List").Msg("error: scanning attempt row")
			return nil, fmt.Errorf("unexpected DB error: %w", err)
		}
		records = append(records, record)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("unexpected DB error: %w", err)
	}

	return records, nil
}
