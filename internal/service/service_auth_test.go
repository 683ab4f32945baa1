// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 SMS Platform Authors

package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"golang.org/x/crypto/bcrypt"

	"github.com/sms-platform/authgate/internal/logger"
	"github.com/sms-platform/authgate/internal/mock"
	"github.com/sms-platform/authgate/internal/store"
	"github.com/sms-platform/authgate/models"
)

const testBanThreshold = 5

// newTestAuthSvc builds an authService with all collaborators mocked.
func newTestAuthSvc(
	t *testing.T,
	ctrl *gomock.Controller,
) (
	*authService,
	*mock.MockAccountRepository,
	*mock.MockTokenRepository,
	*mock.MockAttemptLogger,
) {
	t.Helper()
	mockAccounts := mock.NewMockAccountRepository(ctrl)
	mockTokens := mock.NewMockTokenRepository(ctrl)
	mockAttempts := mock.NewMockAttemptLogger(ctrl)

	svc := NewAuthService(mockAccounts, mockTokens, mockAttempts, testBanThreshold, logger.Nop()).(*authService)

	return svc, mockAccounts, mockTokens, mockAttempts
}

// hashOf is a test fixture helper: bcrypt hash of password at min cost.
func hashOf(t *testing.T, password string) string {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)
	return string(hash)
}

func testAccount(t *testing.T, password string) models.Account {
	t.Helper()
	return models.Account{
		Identifier:   "S-2024-001",
		Name:         "jsmith",
		PasswordHash: hashOf(t, password),
		Role:         models.RoleStudent,
	}
}

// ── Login ────────────────────────────────────────────────────────────────────

func TestAuthService_Login_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockAccounts, _, mockAttempts := newTestAuthSvc(t, ctrl)
	ctx := context.Background()

	account := testAccount(t, "correct horse")

	gomock.InOrder(
		mockAccounts.EXPECT().FindByName(ctx, "jsmith").Return(account, nil),
		mockAccounts.EXPECT().ResetFailures(ctx, account.Identifier).Return(nil),
		mockAttempts.EXPECT().LogAttempt(ctx, gomock.Any(), true, detailLoginSuccess, false),
	)

	result := svc.Login(ctx, "jsmith", "correct horse")

	assert.Equal(t, models.OutcomeLoginSuccess, result.Outcome)
	assert.Equal(t, msgLoginSuccess, result.Message)
	require.NotNil(t, result.Account)
	assert.Equal(t, account.Identifier, result.Account.Identifier)
	assert.Equal(t, account.Name, result.Account.Name)
}

func TestAuthService_Login_AccountNotFound(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockAccounts, _, mockAttempts := newTestAuthSvc(t, ctrl)
	ctx := context.Background()

	mockAccounts.EXPECT().FindByName(ctx, "ghost").Return(models.Account{}, store.ErrAccountNotFound)
	// The attempt record for an unknown name carries no identifier.
	mockAttempts.EXPECT().LogAttempt(ctx, gomock.Nil(), false, detailAccountNotFound, false)

	result := svc.Login(ctx, "ghost", "whatever")

	assert.Equal(t, models.OutcomeAccountNotFound, result.Outcome)
	assert.Equal(t, msgAccountNotFound, result.Message)
	assert.Nil(t, result.Account)
}

func TestAuthService_Login_LookupError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockAccounts, _, _ := newTestAuthSvc(t, ctrl)
	ctx := context.Background()

	mockAccounts.EXPECT().FindByName(ctx, "jsmith").Return(models.Account{}, errors.New("connection refused"))

	result := svc.Login(ctx, "jsmith", "correct horse")

	assert.Equal(t, models.OutcomeServerError, result.Outcome)
	assert.Equal(t, msgServerError, result.Message)
}

func TestAuthService_Login_BannedBeforePasswordCheck(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockAccounts, _, mockAttempts := newTestAuthSvc(t, ctrl)
	ctx := context.Background()

	account := testAccount(t, "correct horse")
	account.Banned = true

	// No RecordFailure, no ResetFailures: a banned account short-circuits
	// before the password is even looked at, correct or not.
	mockAccounts.EXPECT().FindByName(ctx, "jsmith").Return(account, nil)
	mockAttempts.EXPECT().LogAttempt(ctx, gomock.Any(), false, detailAccountBanned, false)

	result := svc.Login(ctx, "jsmith", "correct horse")

	assert.Equal(t, models.OutcomeAccountBanned, result.Outcome)
	assert.Equal(t, msgAccountBanned, result.Message)
}

func TestAuthService_Login_WrongPassword(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockAccounts, _, mockAttempts := newTestAuthSvc(t, ctrl)
	ctx := context.Background()

	account := testAccount(t, "correct horse")

	gomock.InOrder(
		mockAccounts.EXPECT().FindByName(ctx, "jsmith").Return(account, nil),
		mockAccounts.EXPECT().RecordFailure(ctx, account.Identifier, testBanThreshold).
			Return(store.FailureState{ConsecutiveFailures: 1, Banned: false}, nil),
		mockAttempts.EXPECT().LogAttempt(ctx, gomock.Any(), false, detailPasswordIncorrect, false),
	)

	result := svc.Login(ctx, "jsmith", "wrong password")

	assert.Equal(t, models.OutcomeCredentialMismatch, result.Outcome)
	assert.Equal(t, msgPasswordIncorrect, result.Message)
	assert.Nil(t, result.Account)
}

func TestAuthService_Login_FifthFailureBans(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockAccounts, _, mockAttempts := newTestAuthSvc(t, ctrl)
	ctx := context.Background()

	account := testAccount(t, "correct horse")

	gomock.InOrder(
		mockAccounts.EXPECT().FindByName(ctx, "jsmith").Return(account, nil),
		mockAccounts.EXPECT().RecordFailure(ctx, account.Identifier, testBanThreshold).
			Return(store.FailureState{ConsecutiveFailures: 5, Banned: true}, nil),
		mockAttempts.EXPECT().LogAttempt(ctx, gomock.Any(), false, detailPasswordIncorrect, false),
	)

	// The attempt that trips the threshold still reports a mismatch; the
	// ban takes effect on the next login.
	result := svc.Login(ctx, "jsmith", "wrong password")

	assert.Equal(t, models.OutcomeCredentialMismatch, result.Outcome)
}

func TestAuthService_Login_RecordFailureError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockAccounts, _, _ := newTestAuthSvc(t, ctrl)
	ctx := context.Background()

	account := testAccount(t, "correct horse")

	gomock.InOrder(
		mockAccounts.EXPECT().FindByName(ctx, "jsmith").Return(account, nil),
		mockAccounts.EXPECT().RecordFailure(ctx, account.Identifier, testBanThreshold).
			Return(store.FailureState{}, errors.New("connection refused")),
	)

	result := svc.Login(ctx, "jsmith", "wrong password")

	assert.Equal(t, models.OutcomeServerError, result.Outcome)
}

func TestAuthService_Login_ResetFailuresError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockAccounts, _, _ := newTestAuthSvc(t, ctrl)
	ctx := context.Background()

	account := testAccount(t, "correct horse")

	gomock.InOrder(
		mockAccounts.EXPECT().FindByName(ctx, "jsmith").Return(account, nil),
		mockAccounts.EXPECT().ResetFailures(ctx, account.Identifier).Return(errors.New("connection refused")),
	)

	result := svc.Login(ctx, "jsmith", "correct horse")

	assert.Equal(t, models.OutcomeServerError, result.Outcome)
}

func TestAuthService_Login_MalformedStoredHash(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockAccounts, _, _ := newTestAuthSvc(t, ctrl)
	ctx := context.Background()

	account := testAccount(t, "correct horse")
	account.PasswordHash = "not-a-bcrypt-hash"

	// An unusable hash is an infrastructure fault, not a mismatch: the
	// failure counter must not move.
	mockAccounts.EXPECT().FindByName(ctx, "jsmith").Return(account, nil)

	result := svc.Login(ctx, "jsmith", "correct horse")

	assert.Equal(t, models.OutcomeServerError, result.Outcome)
}

func TestAuthService_Login_SecondFactorRequired(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockAccounts, _, mockAttempts := newTestAuthSvc(t, ctrl)
	ctx := context.Background()

	account := testAccount(t, "correct horse")
	account.DualAuthEnabled = true

	gomock.InOrder(
		mockAccounts.EXPECT().FindByName(ctx, "jsmith").Return(account, nil),
		mockAccounts.EXPECT().ResetFailures(ctx, account.Identifier).Return(nil),
		// The pending record is not a success yet: the session is not
		// established until the second factor verifies.
		mockAttempts.EXPECT().LogAttempt(ctx, gomock.Any(), false, detailSecondFactorPending, true),
	)

	result := svc.Login(ctx, "jsmith", "correct horse")

	assert.Equal(t, models.OutcomeSecondFactorRequired, result.Outcome)
	assert.Equal(t, msgSecondFactorRequired, result.Message)
	require.NotNil(t, result.Account)
	assert.Equal(t, account.Identifier, result.Account.Identifier)
}

func TestAuthService_Login_EmptyInput(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockAccounts, _, mockAttempts := newTestAuthSvc(t, ctrl)
	ctx := context.Background()

	mockAccounts.EXPECT().FindByName(ctx, "").Return(models.Account{}, store.ErrAccountNotFound)
	mockAttempts.EXPECT().LogAttempt(ctx, gomock.Nil(), false, detailAccountNotFound, false)

	result := svc.Login(ctx, "", "")

	assert.Equal(t, models.OutcomeAccountNotFound, result.Outcome)
}

// ── VerifySecondFactor ───────────────────────────────────────────────────────

func TestAuthService_VerifySecondFactor_Match(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, _, mockTokens, mockAttempts := newTestAuthSvc(t, ctrl)
	ctx := context.Background()

	mockTokens.EXPECT().FindByIdentifier(ctx, "S-2024-001").
		Return(models.SecondFactorToken{Identifier: "S-2024-001", Token: "482913"}, nil)
	mockAttempts.EXPECT().LogAttempt(ctx, gomock.Any(), true, detailSecondFactorSuccess, true)

	assert.True(t, svc.VerifySecondFactor(ctx, "S-2024-001", "482913"))
}

func TestAuthService_VerifySecondFactor_Mismatch(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, _, mockTokens, mockAttempts := newTestAuthSvc(t, ctrl)
	ctx := context.Background()

	mockTokens.EXPECT().FindByIdentifier(ctx, "S-2024-001").
		Return(models.SecondFactorToken{Identifier: "S-2024-001", Token: "482913"}, nil)
	mockAttempts.EXPECT().LogAttempt(ctx, gomock.Any(), false, detailSecondFactorFailed, true)

	assert.False(t, svc.VerifySecondFactor(ctx, "S-2024-001", "000000"))
}

func TestAuthService_VerifySecondFactor_NoTokenEnrolled(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, _, mockTokens, mockAttempts := newTestAuthSvc(t, ctrl)
	ctx := context.Background()

	mockTokens.EXPECT().FindByIdentifier(ctx, "S-2024-001").
		Return(models.SecondFactorToken{}, store.ErrTokenNotFound)
	mockAttempts.EXPECT().LogAttempt(ctx, gomock.Any(), false, detailSecondFactorFailed, true)

	assert.False(t, svc.VerifySecondFactor(ctx, "S-2024-001", "482913"))
}

func TestAuthService_VerifySecondFactor_LookupError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, _, mockTokens, mockAttempts := newTestAuthSvc(t, ctrl)
	ctx := context.Background()

	mockTokens.EXPECT().FindByIdentifier(ctx, "S-2024-001").
		Return(models.SecondFactorToken{}, errors.New("connection refused"))
	mockAttempts.EXPECT().LogAttempt(ctx, gomock.Any(), false, detailSecondFactorFailed, true)

	assert.False(t, svc.VerifySecondFactor(ctx, "S-2024-001", "482913"))
}
