// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 SMS Platform Authors

package http

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sms-platform/authgate/internal/logger"
	"github.com/sms-platform/authgate/internal/service"
	"github.com/sms-platform/authgate/models"
)

// mockAuditService implements service.AuditService for unit tests.
type mockAuditService struct {
	listAttemptsFn func(ctx context.Context, filter models.AttemptFilter) ([]models.AttemptRecord, error)
}

func (m *mockAuditService) ListAttempts(ctx context.Context, filter models.AttemptFilter) ([]models.AttemptRecord, error) {
	return m.listAttemptsFn(ctx, filter)
}

func newHandlerWithAudit(t *testing.T, audit service.AuditService) *Handler {
	t.Helper()
	svcs := &service.Services{
		AuditService: audit,
	}
	return NewHandler(svcs, logger.Nop())
}

func TestListAttempts_NoFilter(t *testing.T) {
	identifier := "S-2024-001"
	records := []models.AttemptRecord{
		{ID: 2, Identifier: &identifier, AttemptedAt: time.Now(), Succeeded: true, Detail: "login success"},
		{ID: 1, Identifier: &identifier, AttemptedAt: time.Now(), Succeeded: false, Detail: "password incorrect"},
	}

	h := newHandlerWithAudit(t, &mockAuditService{
		listAttemptsFn: func(_ context.Context, filter models.AttemptFilter) ([]models.AttemptRecord, error) {
			assert.Empty(t, filter.Identifier)
			assert.Nil(t, filter.Succeeded)
			assert.Nil(t, filter.SecondFactor)
			assert.Zero(t, filter.Limit)
			return records, nil
		},
	})

	req := httptest.NewRequest(http.MethodGet, "/api/audit/attempts", nil)
	rr := httptest.NewRecorder()

	h.listAttempts(rr, req)

	require.Equal(t, http.StatusOK, rr.Code)

	var got []models.AttemptRecord
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &got))
	assert.Len(t, got, 2)
	assert.Equal(t, int64(2), got[0].ID)
}

func TestListAttempts_FullFilter(t *testing.T) {
	h := newHandlerWithAudit(t, &mockAuditService{
		listAttemptsFn: func(_ context.Context, filter models.AttemptFilter) ([]models.AttemptRecord, error) {
			assert.Equal(t, "S-2024-001", filter.Identifier)
			require.NotNil(t, filter.Succeeded)
			assert.False(t, *filter.Succeeded)
			require.NotNil(t, filter.SecondFactor)
			assert.True(t, *filter.SecondFactor)
			assert.Equal(t, uint64(25), filter.Limit)
			return nil, nil
		},
	})

	req := httptest.NewRequest(http.MethodGet, "/api/audit/attempts?identifier=S-2024-001&succeeded=false&second_factor=true&limit=25", nil)
	rr := httptest.NewRecorder()

	h.listAttempts(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)
}

func TestListAttempts_InvalidFilter(t *testing.T) {
	h := newHandlerWithAudit(t, &mockAuditService{})

	tests := []struct {
		name  string
		query string
	}{
		{name: "bad succeeded", query: "succeeded=maybe"},
		{name: "bad second_factor", query: "second_factor=2"},
		{name: "bad limit", query: "limit=-1"},
		{name: "limit above maximum", query: "limit=1001"},
		{name: "huge limit", query: "limit=4611686018427387904"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/api/audit/attempts?"+tt.query, nil)
			rr := httptest.NewRecorder()

			h.listAttempts(rr, req)

			assert.Equal(t, http.StatusBadRequest, rr.Code)
		})
	}
}

func TestListAttempts_QueryError(t *testing.T) {
	h := newHandlerWithAudit(t, &mockAuditService{
		listAttemptsFn: func(_ context.Context, _ models.AttemptFilter) ([]models.AttemptRecord, error) {
			return nil, errors.New("connection refused")
		},
	})

	req := httptest.NewRequest(http.MethodGet, "/api/audit/attempts", nil)
	rr := httptest.NewRecorder()

	h.listAttempts(rr, req)

	assert.Equal(t, http.StatusInternalServerError, rr.Code)
}
