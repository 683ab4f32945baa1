// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 SMS Platform Authors

package service

import (
	"context"
	"crypto/subtle"
	"errors"

	"golang.org/x/crypto/bcrypt"

	"github.com/sms-platform/authgate/internal/logger"
	"github.com/sms-platform/authgate/internal/store"
	"github.com/sms-platform/authgate/models"
)

// Attempt-record detail strings. They double as the audit trail vocabulary,
// so changing them is a breaking change for downstream log consumers.
const (
	detailAccountNotFound     = "account not found"
	detailAccountBanned       = "account banned"
	detailPasswordIncorrect   = "password incorrect"
	detailLoginSuccess        = "login success"
	detailSecondFactorPending = "second factor pending"
	detailSecondFactorSuccess = "second factor success"
	detailSecondFactorFailed  = "second factor failed"
)

// Caller-facing messages accompanying each outcome.
const (
	msgAccountNotFound      = "Account does not exist"
	msgAccountBanned        = "Account is banned"
	msgPasswordIncorrect    = "Incorrect password"
	msgLoginSuccess         = "Login successful"
	msgSecondFactorRequired = "Dual authentication required"
	msgServerError          = "Server error"
)

// authService is the concrete implementation of [AuthService]. It drives the
// login state machine: account lookup, ban gating, bcrypt verification,
// failure counting with auto-ban, second-factor gating, and audit logging.
type authService struct {
	// accountRepository is the data-access layer for account rows.
	accountRepository store.AccountRepository

	// tokenRepository resolves stored second-factor tokens.
	tokenRepository store.TokenRepository

	// attempts is the best-effort audit side channel.
	attempts AttemptLogger

	// banThreshold is the consecutive-failure count at which an account is
	// banned.
	banThreshold int

	// logger is the structured logger used for diagnostic and error output.
	logger *logger.Logger
}

// NewAuthService constructs an AuthService wired to the given repositories.
//
// The returned service is safe for concurrent use; all state is read-only
// after construction. Per-account ordering of failure counting is delegated
// to the repository's row-atomic updates.
func NewAuthService(accountRepository store.AccountRepository, tokenRepository store.TokenRepository, attempts AttemptLogger, banThreshold int, logger *logger.Logger) AuthService {
	return &authService{
		accountRepository: accountRepository,
		tokenRepository:   tokenRepository,
		attempts:          attempts,
		banThreshold:      banThreshold,
		logger:            logger,
	}
}

// Login authenticates an account by name and password.
//
// Conditions are evaluated in order; the first match wins:
//  1. unknown account name → ACCOUNT_NOT_FOUND
//  2. banned account → ACCOUNT_BANNED (the password is not checked, so a
//     banned account can never be unlocked by knowing the password, and
//     further attempts leave the failure counter untouched)
//  3. wrong password → CREDENTIAL_MISMATCH, counter incremented, auto-ban
//     once the counter reaches the threshold
//  4. correct password → counter reset; SECOND_FACTOR_REQUIRED when dual
//     authentication is enabled, LOGIN_SUCCESS otherwise
//
// Arbitrary input is fine: empty or garbage strings fall into the
// not-found or mismatch branches. Infrastructure faults are converted to
// SERVER_ERROR with an opaque message and never escape as panics or errors.
// Every branch appends one attempt record as a best-effort side effect.
func (a *authService) Login(ctx context.Context, accountName, password string) models.LoginResult {
	log := logger.FromContext(ctx)

	account, err := a.accountRepository.FindByName(ctx, accountName)
	if err != nil {
		if errors.Is(err, store.ErrAccountNotFound) {
			a.attempts.LogAttempt(ctx, nil, false, detailAccountNotFound, false)
			return models.LoginResult{Outcome: models.OutcomeAccountNotFound, Message: msgAccountNotFound}
		}

		log.Err(err).Str("account", accountName).Msg("account lookup failed")
		return models.LoginResult{Outcome: models.OutcomeServerError, Message: msgServerError}
	}

	identifier := account.Identifier

	if account.Banned {
		a.attempts.LogAttempt(ctx, &identifier, false, detailAccountBanned, false)
		return models.LoginResult{Outcome: models.OutcomeAccountBanned, Message: msgAccountBanned}
	}

	if err := bcrypt.CompareHashAndPassword([]byte(account.PasswordHash), []byte(password)); err != nil {
		if !errors.Is(err, bcrypt.ErrMismatchedHashAndPassword) {
			// Malformed stored hash: an infrastructure problem, not a
			// credential decision.
			log.Err(err).Str("identifier", identifier).Msg("stored password hash is unusable")
			return models.LoginResult{Outcome: models.OutcomeServerError, Message: msgServerError}
		}

		state, err := a.accountRepository.RecordFailure(ctx, identifier, a.banThreshold)
		if err != nil {
			log.Err(err).Str("identifier", identifier).Msg("failure count update failed")
			return models.LoginResult{Outcome: models.OutcomeServerError, Message: msgServerError}
		}

		if state.Banned {
			log.Warn().
				Str("identifier", identifier).
				Int("consecutive_failures", state.ConsecutiveFailures).
				Msg("account banned after repeated failures")
		}

		a.attempts.LogAttempt(ctx, &identifier, false, detailPasswordIncorrect, false)
		return models.LoginResult{Outcome: models.OutcomeCredentialMismatch, Message: msgPasswordIncorrect}
	}

	if err := a.accountRepository.ResetFailures(ctx, identifier); err != nil {
		log.Err(err).Str("identifier", identifier).Msg("failure count reset failed")
		return models.LoginResult{Outcome: models.OutcomeServerError, Message: msgServerError}
	}

	summary := account.Summarize()

	if account.DualAuthEnabled {
		a.attempts.LogAttempt(ctx, &identifier, false, detailSecondFactorPending, true)
		return models.LoginResult{
			Outcome: models.OutcomeSecondFactorRequired,
			Account: &summary,
			Message: msgSecondFactorRequired,
		}
	}

	a.attempts.LogAttempt(ctx, &identifier, true, detailLoginSuccess, false)
	return models.LoginResult{
		Outcome: models.OutcomeLoginSuccess,
		Account: &summary,
		Message: msgLoginSuccess,
	}
}

// VerifySecondFactor checks a submitted one-time token for an account that
// passed the primary factor. True and a success record only on an exact
// match; a missing token row, unknown identifier, or value mismatch all log
// a failure and return false.
//
// The comparison is constant-time. Second-factor failures deliberately do
// not feed the consecutive-failure counter.
func (a *authService) VerifySecondFactor(ctx context.Context, identifier, token string) bool {
	log := logger.FromContext(ctx)

	stored, err := a.tokenRepository.FindByIdentifier(ctx, identifier)
	if err != nil {
		if !errors.Is(err, store.ErrTokenNotFound) {
			log.Err(err).Str("identifier", identifier).Msg("second-factor token lookup failed")
		}

		a.attempts.LogAttempt(ctx, &identifier, false, detailSecondFactorFailed, true)
		return false
	}

	if subtle.ConstantTimeCompare([]byte(stored.Token), []byte(token)) != 1 {
		a.attempts.LogAttempt(ctx, &identifier, false, detailSecondFactorFailed, true)
		return false
	}

	a.attempts.LogAttempt(ctx, &identifier, true, detailSecondFactorSuccess, true)
	return true
}
