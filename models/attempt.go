// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 SMS Platform Authors

package models

import "time"

// AttemptRecord is one immutable audit entry for a login or second-factor
// call. Records are append-only: once written they are never updated or
// deleted.
type AttemptRecord struct {
	// ID is the server-assigned sequence number of the record.
	ID int64 `json:"id"`

	// Identifier references the account the attempt targeted. Nil when the
	// submitted account name could not be resolved to any account.
	Identifier *string `json:"identifier"`

	// AttemptedAt is the timestamp the record was written.
	AttemptedAt time.Time `json:"attempted_at"`

	// Succeeded reports whether the attempt passed.
	Succeeded bool `json:"succeeded"`

	// Detail is the human-readable reason recorded with the attempt.
	Detail string `json:"detail"`

	// SecondFactor marks attempts made in a second-factor context.
	SecondFactor bool `json:"second_factor"`
}

// TableName returns the name of the database table
// associated with the AttemptRecord model.
func (r AttemptRecord) TableName() string {
	return "attempt_log"
}

// AttemptFilter narrows an audit query over the attempt log.
// Zero-valued fields are not applied.
type AttemptFilter struct {
	// Identifier restricts results to attempts against one account.
	Identifier string

	// Succeeded restricts results by outcome when non-nil.
	Succeeded *bool

	// SecondFactor restricts results to second-factor attempts when non-nil.
	SecondFactor *bool

	// Limit caps the number of returned records; 0 means the server default.
	Limit uint64
}
