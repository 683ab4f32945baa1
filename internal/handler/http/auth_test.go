// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 SMS Platform Authors

package http

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sms-platform/authgate/internal/logger"
	"github.com/sms-platform/authgate/internal/service"
	"github.com/sms-platform/authgate/models"
)

// ─────────────────────────────────────────────
// Mock AuthService
// ─────────────────────────────────────────────

// mockAuthService implements service.AuthService for unit tests.
// Each method field can be overridden per test case.
type mockAuthService struct {
	loginFn              func(ctx context.Context, accountName, password string) models.LoginResult
	verifySecondFactorFn func(ctx context.Context, identifier, token string) bool
}

func (m *mockAuthService) Login(ctx context.Context, accountName, password string) models.LoginResult {
	return m.loginFn(ctx, accountName, password)
}

func (m *mockAuthService) VerifySecondFactor(ctx context.Context, identifier, token string) bool {
	return m.verifySecondFactorFn(ctx, identifier, token)
}

// ─────────────────────────────────────────────
// Helpers
// ─────────────────────────────────────────────

// newHandlerWithAuth builds a Handler with the given AuthService mock.
func newHandlerWithAuth(t *testing.T, auth service.AuthService) *Handler {
	t.Helper()
	svcs := &service.Services{
		AuthService: auth,
	}
	return NewHandler(svcs, logger.Nop())
}

// jsonBody serialises v to a JSON request body string.
func jsonBody(t *testing.T, v any) string {
	t.Helper()
	b, err := json.Marshal(v)
	require.NoError(t, err)
	return string(b)
}

// decodeLoginResult parses the recorded response body into a LoginResult.
func decodeLoginResult(t *testing.T, rr *httptest.ResponseRecorder) models.LoginResult {
	t.Helper()
	var result models.LoginResult
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &result))
	return result
}

// ─────────────────────────────────────────────
// login
// ─────────────────────────────────────────────

func TestLogin_Success(t *testing.T) {
	summary := models.Summary{Identifier: "S-2024-001", Name: "jsmith", Role: models.RoleStudent}
	h := newHandlerWithAuth(t, &mockAuthService{
		loginFn: func(_ context.Context, accountName, password string) models.LoginResult {
			assert.Equal(t, "jsmith", accountName)
			assert.Equal(t, "correct horse", password)
			return models.LoginResult{
				Outcome: models.OutcomeLoginSuccess,
				Account: &summary,
				Message: "Login successful",
			}
		},
	})

	body := jsonBody(t, models.LoginRequest{Account: "jsmith", Password: "correct horse"})
	req := httptest.NewRequest(http.MethodPost, "/api/auth/login", strings.NewReader(body))
	rr := httptest.NewRecorder()

	h.login(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)
	result := decodeLoginResult(t, rr)
	assert.Equal(t, models.OutcomeLoginSuccess, result.Outcome)
	require.NotNil(t, result.Account)
	assert.Equal(t, "S-2024-001", result.Account.Identifier)
}

func TestLogin_DomainOutcomesAreOK(t *testing.T) {
	tests := []struct {
		name    string
		outcome models.Outcome
	}{
		{name: "account not found", outcome: models.OutcomeAccountNotFound},
		{name: "credential mismatch", outcome: models.OutcomeCredentialMismatch},
		{name: "account banned", outcome: models.OutcomeAccountBanned},
		{name: "second factor required", outcome: models.OutcomeSecondFactorRequired},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := newHandlerWithAuth(t, &mockAuthService{
				loginFn: func(_ context.Context, _, _ string) models.LoginResult {
					return models.LoginResult{Outcome: tt.outcome}
				},
			})

			body := jsonBody(t, models.LoginRequest{Account: "jsmith", Password: "nope"})
			req := httptest.NewRequest(http.MethodPost, "/api/auth/login", strings.NewReader(body))
			rr := httptest.NewRecorder()

			h.login(rr, req)

			// Domain outcomes all travel in the body with HTTP 200; the
			// client branches on the outcome tag.
			assert.Equal(t, http.StatusOK, rr.Code)
			assert.Equal(t, tt.outcome, decodeLoginResult(t, rr).Outcome)
		})
	}
}

func TestLogin_ServerError(t *testing.T) {
	h := newHandlerWithAuth(t, &mockAuthService{
		loginFn: func(_ context.Context, _, _ string) models.LoginResult {
			return models.LoginResult{Outcome: models.OutcomeServerError, Message: "Server error"}
		},
	})

	body := jsonBody(t, models.LoginRequest{Account: "jsmith", Password: "correct horse"})
	req := httptest.NewRequest(http.MethodPost, "/api/auth/login", strings.NewReader(body))
	rr := httptest.NewRecorder()

	h.login(rr, req)

	assert.Equal(t, http.StatusInternalServerError, rr.Code)
	assert.Equal(t, models.OutcomeServerError, decodeLoginResult(t, rr).Outcome)
}

func TestLogin_InvalidJSON(t *testing.T) {
	h := newHandlerWithAuth(t, &mockAuthService{})

	req := httptest.NewRequest(http.MethodPost, "/api/auth/login", strings.NewReader("{not json"))
	rr := httptest.NewRecorder()

	h.login(rr, req)

	assert.Equal(t, http.StatusBadRequest, rr.Code)
}

// ─────────────────────────────────────────────
// secondFactor
// ─────────────────────────────────────────────

func TestSecondFactor_Verified(t *testing.T) {
	h := newHandlerWithAuth(t, &mockAuthService{
		verifySecondFactorFn: func(_ context.Context, identifier, token string) bool {
			assert.Equal(t, "S-2024-001", identifier)
			assert.Equal(t, "482913", token)
			return true
		},
	})

	body := jsonBody(t, models.SecondFactorRequest{Identifier: "S-2024-001", Token: "482913"})
	req := httptest.NewRequest(http.MethodPost, "/api/auth/second-factor", strings.NewReader(body))
	rr := httptest.NewRecorder()

	h.secondFactor(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.JSONEq(t, `{"verified":true}`, rr.Body.String())
}

func TestSecondFactor_Rejected(t *testing.T) {
	h := newHandlerWithAuth(t, &mockAuthService{
		verifySecondFactorFn: func(_ context.Context, _, _ string) bool {
			return false
		},
	})

	body := jsonBody(t, models.SecondFactorRequest{Identifier: "S-2024-001", Token: "000000"})
	req := httptest.NewRequest(http.MethodPost, "/api/auth/second-factor", strings.NewReader(body))
	rr := httptest.NewRecorder()

	h.secondFactor(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.JSONEq(t, `{"verified":false}`, rr.Body.String())
}

func TestSecondFactor_InvalidJSON(t *testing.T) {
	h := newHandlerWithAuth(t, &mockAuthService{})

	req := httptest.NewRequest(http.MethodPost, "/api/auth/second-factor", strings.NewReader("{not json"))
	rr := httptest.NewRecorder()

	h.secondFactor(rr, req)

	assert.Equal(t, http.StatusBadRequest, rr.Code)
}
