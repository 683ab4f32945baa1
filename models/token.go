// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 SMS Platform Authors

package models

// SecondFactorToken is the current expected one-time value for an account
// with dual authentication enabled. Owned 1:1 by the account; at most one
// live token exists per identifier. Provisioned by enrollment and read-only
// to the authenticator.
type SecondFactorToken struct {
	// Identifier is the owning account's identifier.
	Identifier string `json:"identifier"`

	// Token is the expected one-time value. Never logged.
	Token string `json:"-"`
}

// TableName returns the name of the database table
// associated with the SecondFactorToken model.
func (t SecondFactorToken) TableName() string {
	return "second_factor_tokens"
}
