// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 SMS Platform Authors

package models

// Outcome is the enumerated result of a login call. Callers branch on the
// outcome to decide the next action; every non-success outcome is rendered
// as a failed login except [OutcomeSecondFactorRequired], which prompts for
// a one-time token instead.
type Outcome string

const (
	// OutcomeAccountNotFound — no account with the submitted name exists.
	OutcomeAccountNotFound Outcome = "ACCOUNT_NOT_FOUND"

	// OutcomeCredentialMismatch — the password did not match the stored hash.
	OutcomeCredentialMismatch Outcome = "CREDENTIAL_MISMATCH"

	// OutcomeAccountBanned — the account is locked out; the password is not
	// checked once banned.
	OutcomeAccountBanned Outcome = "ACCOUNT_BANNED"

	// OutcomeLoginSuccess — the primary factor passed and no second factor
	// is required.
	OutcomeLoginSuccess Outcome = "LOGIN_SUCCESS"

	// OutcomeSecondFactorRequired — the primary factor passed; the caller
	// must complete a second-factor verification.
	OutcomeSecondFactorRequired Outcome = "SECOND_FACTOR_REQUIRED"

	// OutcomeServerError — an infrastructure fault interrupted the attempt.
	// The message is opaque; the caller may retry the whole operation.
	OutcomeServerError Outcome = "SERVER_ERROR"
)

// LoginResult is the structured result of one login call.
type LoginResult struct {
	// Outcome is the enumerated result of the call.
	Outcome Outcome `json:"outcome"`

	// Account is the summary of the authenticated account. Populated only
	// for [OutcomeLoginSuccess] and [OutcomeSecondFactorRequired].
	Account *Summary `json:"account,omitempty"`

	// Message is the human-readable companion of the outcome.
	Message string `json:"message"`
}
