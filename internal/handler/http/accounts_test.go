// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 SMS Platform Authors

package http

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sms-platform/authgate/internal/logger"
	"github.com/sms-platform/authgate/internal/service"
	"github.com/sms-platform/authgate/internal/store"
	"github.com/sms-platform/authgate/models"
)

// ─────────────────────────────────────────────
// Mock ProvisionService
// ─────────────────────────────────────────────

type mockProvisionService struct {
	createAccountFn      func(ctx context.Context, req models.CreateAccountRequest) (models.Account, error)
	enrollSecondFactorFn func(ctx context.Context, identifier, token string) error
	findByAccountFn      func(ctx context.Context, name string) (models.Account, error)
}

func (m *mockProvisionService) CreateAccount(ctx context.Context, req models.CreateAccountRequest) (models.Account, error) {
	return m.createAccountFn(ctx, req)
}

func (m *mockProvisionService) EnrollSecondFactor(ctx context.Context, identifier, token string) error {
	return m.enrollSecondFactorFn(ctx, identifier, token)
}

func (m *mockProvisionService) FindByAccount(ctx context.Context, name string) (models.Account, error) {
	return m.findByAccountFn(ctx, name)
}

// newRouterWithProvision wires a full router so that URL parameters resolve
// the way they do in production.
func newRouterWithProvision(t *testing.T, provision service.ProvisionService) http.Handler {
	t.Helper()
	svcs := &service.Services{
		ProvisionService: provision,
	}
	return NewHandler(svcs, logger.Nop()).Init()
}

// jsonUnmarshalBody decodes the recorded response body into v.
func jsonUnmarshalBody(rr *httptest.ResponseRecorder, v any) error {
	return json.Unmarshal(rr.Body.Bytes(), v)
}

// ─────────────────────────────────────────────
// createAccount
// ─────────────────────────────────────────────

func TestCreateAccount_Success(t *testing.T) {
	router := newRouterWithProvision(t, &mockProvisionService{
		createAccountFn: func(_ context.Context, req models.CreateAccountRequest) (models.Account, error) {
			assert.Equal(t, "S-2024-001", req.Identifier)
			assert.Equal(t, "jsmith", req.Account)
			return models.Account{Identifier: req.Identifier, Name: req.Account, Role: models.RoleStudent}, nil
		},
	})

	body := jsonBody(t, models.CreateAccountRequest{
		Identifier: "S-2024-001",
		Account:    "jsmith",
		Password:   "correct horse",
		Role:       "STUDENT",
	})
	req := httptest.NewRequest(http.MethodPost, "/api/accounts", strings.NewReader(body))
	rr := httptest.NewRecorder()

	router.ServeHTTP(rr, req)

	require.Equal(t, http.StatusCreated, rr.Code)

	var created models.Account
	require.NoError(t, jsonUnmarshalBody(rr, &created))
	assert.Equal(t, "S-2024-001", created.Identifier)
	// The password hash must never be serialized.
	assert.NotContains(t, rr.Body.String(), "password")
}

func TestCreateAccount_InvalidData(t *testing.T) {
	router := newRouterWithProvision(t, &mockProvisionService{
		createAccountFn: func(_ context.Context, _ models.CreateAccountRequest) (models.Account, error) {
			return models.Account{}, service.ErrInvalidDataProvided
		},
	})

	body := jsonBody(t, models.CreateAccountRequest{})
	req := httptest.NewRequest(http.MethodPost, "/api/accounts", strings.NewReader(body))
	rr := httptest.NewRecorder()

	router.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusBadRequest, rr.Code)
}

func TestCreateAccount_Duplicate(t *testing.T) {
	router := newRouterWithProvision(t, &mockProvisionService{
		createAccountFn: func(_ context.Context, _ models.CreateAccountRequest) (models.Account, error) {
			return models.Account{}, fmt.Errorf("account creation ended with error: %w", store.ErrAccountAlreadyExists)
		},
	})

	body := jsonBody(t, models.CreateAccountRequest{Identifier: "S-2024-001", Account: "jsmith", Password: "x", Role: "STUDENT"})
	req := httptest.NewRequest(http.MethodPost, "/api/accounts", strings.NewReader(body))
	rr := httptest.NewRecorder()

	router.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusConflict, rr.Code)
	assert.JSONEq(t, `{"error":"account already exists"}`, rr.Body.String())
}

func TestCreateAccount_UnexpectedError(t *testing.T) {
	router := newRouterWithProvision(t, &mockProvisionService{
		createAccountFn: func(_ context.Context, _ models.CreateAccountRequest) (models.Account, error) {
			return models.Account{}, errors.New("connection refused")
		},
	})

	body := jsonBody(t, models.CreateAccountRequest{Identifier: "S-2024-001", Account: "jsmith", Password: "x", Role: "STUDENT"})
	req := httptest.NewRequest(http.MethodPost, "/api/accounts", strings.NewReader(body))
	rr := httptest.NewRecorder()

	router.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusInternalServerError, rr.Code)
}

// ─────────────────────────────────────────────
// enrollSecondFactor
// ─────────────────────────────────────────────

func TestEnrollSecondFactor_Success(t *testing.T) {
	router := newRouterWithProvision(t, &mockProvisionService{
		enrollSecondFactorFn: func(_ context.Context, identifier, token string) error {
			assert.Equal(t, "S-2024-001", identifier)
			assert.Equal(t, "482913", token)
			return nil
		},
	})

	body := jsonBody(t, models.EnrollSecondFactorRequest{Token: "482913"})
	req := httptest.NewRequest(http.MethodPost, "/api/accounts/S-2024-001/second-factor", strings.NewReader(body))
	rr := httptest.NewRecorder()

	router.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusNoContent, rr.Code)
}

func TestEnrollSecondFactor_UnknownAccount(t *testing.T) {
	router := newRouterWithProvision(t, &mockProvisionService{
		enrollSecondFactorFn: func(_ context.Context, _, _ string) error {
			return fmt.Errorf("enrollment target lookup failed: %w", store.ErrAccountNotFound)
		},
	})

	body := jsonBody(t, models.EnrollSecondFactorRequest{Token: "482913"})
	req := httptest.NewRequest(http.MethodPost, "/api/accounts/S-2024-404/second-factor", strings.NewReader(body))
	rr := httptest.NewRecorder()

	router.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusNotFound, rr.Code)
}

func TestEnrollSecondFactor_InvalidJSON(t *testing.T) {
	router := newRouterWithProvision(t, &mockProvisionService{})

	req := httptest.NewRequest(http.MethodPost, "/api/accounts/S-2024-001/second-factor", strings.NewReader("{not json"))
	rr := httptest.NewRecorder()

	router.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusBadRequest, rr.Code)
}
