// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 SMS Platform Authors

package store

import (
	sq "github.com/Masterminds/squirrel"

	"github.com/sms-platform/authgate/models"
)

const (
	findAccountByName = `SELECT identifier, account, password_hash, role, banned, consecutive_failures, dual_auth_enabled, created_at
    FROM accounts
    WHERE account = $1;`

	findAccountByIdentifier = `SELECT identifier, account, password_hash, role, banned, consecutive_failures, dual_auth_enabled, created_at
    FROM accounts
    WHERE identifier = $1;`

	createAccount = `INSERT INTO accounts (identifier, account, password_hash, role, dual_auth_enabled)
    VALUES ($1, $2, $3, $4, $5)
    RETURNING identifier, account, password_hash, role, banned, consecutive_failures, dual_auth_enabled, created_at;`

	createStudentProfile = `INSERT INTO student_profiles (identifier, full_name, major_id, class_id, enrollment_time)
    VALUES ($1, $2, $3, $4, $5);`

	// recordFailure is the single-statement read-check-increment-write of the
	// failure counter. The row-level UPDATE serializes concurrent attempts
	// against the same account, so the ban threshold crossing is
	// deterministic: exactly one attempt observes the transition.
	recordFailure = `UPDATE accounts
    SET consecutive_failures = consecutive_failures + 1,
        banned = banned OR consecutive_failures + 1 >= $2
    WHERE identifier = $1
    RETURNING consecutive_failures, banned;`

	resetFailures = `UPDATE accounts
    SET consecutive_failures = 0
    WHERE identifier = $1;`

	setDualAuth = `UPDATE accounts
    SET dual_auth_enabled = $2
    WHERE identifier = $1;`

	findSecondFactorToken = `SELECT identifier, token
    FROM second_factor_tokens
    WHERE identifier = $1;`

	upsertSecondFactorToken = `INSERT INTO second_factor_tokens (identifier, token)
    VALUES ($1, $2)
    ON CONFLICT (identifier) DO UPDATE SET token = EXCLUDED.token;`

	insertAttempt = `INSERT INTO attempt_log (identifier, succeeded, detail, second_factor)
    VALUES ($1, $2, $3, $4)
    RETURNING id, attempted_at;`
)

// defaultAttemptLimit caps audit queries that do not specify their own limit.
const defaultAttemptLimit = 100

// buildAttemptQuery translates an [models.AttemptFilter] into a parameterised
// SELECT over the attempt log, newest first.
func buildAttemptQuery(filter models.AttemptFilter) (string, []any, error) {
	builder := sq.
		Select("id", "identifier", "attempted_at", "succeeded", "detail", "second_factor").
		From(models.AttemptRecord{}.TableName()).
		OrderBy("attempted_at DESC", "id DESC").
		PlaceholderFormat(sq.Dollar)

	if filter.Identifier != "" {
		builder = builder.Where(sq.Eq{"identifier": filter.Identifier})
	}
	if filter.Succeeded != nil {
		builder = builder.Where(sq.Eq{"succeeded": *filter.Succeeded})
	}
	if filter.SecondFactor != nil {
		builder = builder.Where(sq.Eq{"second_factor": *filter.SecondFactor})
	}

	limit := filter.Limit
	if limit == 0 {
		limit = defaultAttemptLimit
	}
	builder = builder.Limit(limit)

	return builder.ToSql()
}
