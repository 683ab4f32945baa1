// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 SMS Platform Authors

package models

import "time"

// Account represents a credential-bearing identity capable of authenticating.
// It carries the lockout state maintained by the authenticator alongside the
// stored credential. Sensitive fields must never be exposed outside trusted
// boundaries.
type Account struct {
	// Identifier is the globally unique, immutable identity of the account
	// holder (e.g. a student or staff number). Assigned at provisioning time.
	Identifier string `json:"identifier"`

	// Name is the unique account name used to log in.
	Name string `json:"account"`

	// PasswordHash is the bcrypt hash of the account password.
	// Plaintext passwords are never stored, logged, or serialized.
	PasswordHash string `json:"-"`

	// Role is the enumerated role tag attached at provisioning time.
	Role Role `json:"role"`

	// Banned marks the account as locked out. Once set, login is rejected
	// unconditionally until an operator clears it.
	Banned bool `json:"banned"`

	// ConsecutiveFailures counts wrong-password attempts since the last
	// successful primary-factor check. Reaching the ban threshold sets Banned.
	ConsecutiveFailures int `json:"-"`

	// DualAuthEnabled indicates a second factor is required after the
	// password check succeeds.
	DualAuthEnabled bool `json:"dual_auth_enabled"`

	// CreatedAt is the timestamp when the account was provisioned.
	CreatedAt time.Time `json:"created_at"`
}

// TableName returns the name of the database table
// associated with the Account model.
func (a Account) TableName() string {
	return "accounts"
}

// Summary returns the caller-facing view of an account: everything except
// credential and counter state. Returned by the login API on success.
type Summary struct {
	Identifier      string `json:"identifier"`
	Name            string `json:"account"`
	Role            Role   `json:"role"`
	DualAuthEnabled bool   `json:"dual_auth_enabled"`
}

// Summarize strips credential-bearing fields from an account.
func (a Account) Summarize() Summary {
	return Summary{
		Identifier:      a.Identifier,
		Name:            a.Name,
		Role:            a.Role,
		DualAuthEnabled: a.DualAuthEnabled,
	}
}
