// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 SMS Platform Authors

package service

import (
	"context"
	"fmt"

	"golang.org/x/crypto/bcrypt"

	"github.com/sms-platform/authgate/internal/logger"
	"github.com/sms-platform/authgate/internal/store"
	"github.com/sms-platform/authgate/internal/validators"
	"github.com/sms-platform/authgate/models"
)

// provisionService is the concrete implementation of [ProvisionService].
// It owns the plaintext-to-hash boundary: passwords arrive in clear text,
// are bcrypt-hashed here, and never travel further.
type provisionService struct {
	accountRepository store.AccountRepository
	tokenRepository   store.TokenRepository

	validator validators.Validator

	// bcryptCost is the bcrypt work factor; zero selects bcrypt.DefaultCost.
	bcryptCost int

	logger *logger.Logger
}

// NewProvisionService constructs a ProvisionService wired to the given
// repositories and input validator.
func NewProvisionService(accountRepository store.AccountRepository, tokenRepository store.TokenRepository, validator validators.Validator, bcryptCost int, logger *logger.Logger) ProvisionService {
	return &provisionService{
		accountRepository: accountRepository,
		tokenRepository:   tokenRepository,
		validator:         validator,
		bcryptCost:        bcryptCost,
		logger:            logger,
	}
}

// CreateAccount creates a new account with its role-specific profile.
//
// It validates that identifier, account name, and password are non-empty
// and that the role tag belongs to the closed role set, hashes the password
// with bcrypt, and delegates the atomic insert to the repository.
//
// Returns the persisted account or:
//   - ErrInvalidDataProvided on empty fields or an unknown role.
//   - store.ErrAccountAlreadyExists (wrapped) when the identifier or
//     account name is taken.
//   - A wrapped storage error on any other repository failure.
func (p *provisionService) CreateAccount(ctx context.Context, req models.CreateAccountRequest) (models.Account, error) {
	log := logger.FromContext(ctx)

	if err := p.validator.Validate(ctx, req); err != nil {
		log.Err(err).Str("identifier", req.Identifier).Str("account", req.Account).Msg("invalid account data provided")
		return models.Account{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	// Cannot fail after validation; the role tag was already parsed there.
	role, err := models.ParseRole(req.Role)
	if err != nil {
		return models.Account{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	hash, err := p.hashPassword(req.Password)
	if err != nil {
		log.Err(err).Msg("password hashing failed")
		return models.Account{}, fmt.Errorf("password hashing failed: %w", err)
	}

	account := models.Account{
		Identifier:   req.Identifier,
		Name:         req.Account,
		PasswordHash: hash,
		Role:         role,
	}

	created, err := p.accountRepository.CreateAccount(ctx, account, profileFor(role, req))
	if err != nil {
		log.Err(err).Str("identifier", req.Identifier).Msg("account creation ended with error")
		return models.Account{}, fmt.Errorf("account creation ended with error: %w", err)
	}

	log.Info().Str("identifier", created.Identifier).Str("account", created.Name).Msg("account created")
	return created, nil
}

// profileFor resolves the closed profile variant for a role at creation
// time. Roles without dedicated profile data yield nil.
func profileFor(role models.Role, req models.CreateAccountRequest) models.Profile {
	if role != models.RoleStudent {
		return nil
	}

	profile := models.StudentProfile{Identifier: req.Identifier}
	if req.Student != nil {
		profile = *req.Student
		profile.Identifier = req.Identifier
	}

	return profile
}

// EnrollSecondFactor provisions the expected one-time token for an account.
// Token storage and the dual-auth flag flip commit together, so re-enrollment
// replaces the previous value and the flag can never lag behind the token.
func (p *provisionService) EnrollSecondFactor(ctx context.Context, identifier, token string) error {
	log := logger.FromContext(ctx)

	if identifier == "" || token == "" {
		log.Error().Str("identifier", identifier).Msg("invalid enrollment data provided")
		return ErrInvalidDataProvided
	}

	if _, err := p.accountRepository.FindByIdentifier(ctx, identifier); err != nil {
		log.Err(err).Str("identifier", identifier).Msg("enrollment target lookup failed")
		return fmt.Errorf("enrollment target lookup failed: %w", err)
	}

	if err := p.tokenRepository.Enroll(ctx, models.SecondFactorToken{Identifier: identifier, Token: token}); err != nil {
		log.Err(err).Str("identifier", identifier).Msg("second-factor enrollment failed")
		return fmt.Errorf("second-factor enrollment failed: %w", err)
	}

	return nil
}

// FindByAccount looks an account up by its unique name.
func (p *provisionService) FindByAccount(ctx context.Context, name string) (models.Account, error) {
	if name == "" {
		return models.Account{}, ErrInvalidDataProvided
	}

	account, err := p.accountRepository.FindByName(ctx, name)
	if err != nil {
		return models.Account{}, fmt.Errorf("account search by name failed: %w", err)
	}

	return account, nil
}

// hashPassword computes the bcrypt hash of a plaintext password using the
// configured cost.
func (p *provisionService) hashPassword(password string) (string, error) {
	cost := p.bcryptCost
	if cost == 0 {
		cost = bcrypt.DefaultCost
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), cost)
	if err != nil {
		return "", err
	}

	return string(hash), nil
}
