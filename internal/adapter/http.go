// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 SMS Platform Authors

package adapter

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"github.com/sms-platform/authgate/internal/config"
	"github.com/sms-platform/authgate/internal/logger"
	"github.com/sms-platform/authgate/internal/utils"
	"github.com/sms-platform/authgate/models"
)

type httpServerAdapter struct {
	client *utils.HTTPClient

	logger *logger.Logger
}

// NewHTTPServerAdapter constructs an HTTP/REST implementation of
// [ServerAdapter]. It normalises and validates the base URL from
// adapterCfg.HTTPAddress and configures the underlying HTTP client with the
// resolved base URL and request timeout.
//
// Returns an error if adapterCfg.HTTPAddress is empty or cannot be parsed as
// a valid URL.
func NewHTTPServerAdapter(adapterCfg config.ClientAdapter, logger *logger.Logger) (ServerAdapter, error) {
	client := utils.NewHTTPClient()
	baseURL, err := normalizeBaseURL(adapterCfg.HTTPAddress)
	if err != nil {
		return nil, fmt.Errorf("invalid adapter http address: %w", err)
	}

	client.
		SetBaseURL(baseURL).
		SetTimeout(adapterCfg.RequestTimeout)

	return &httpServerAdapter{client: client, logger: logger}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

// Login implements [ServerAdapter]. It POSTs the credentials to
// POST /api/auth/login and decodes the structured outcome from the body.
// The server carries SERVER_ERROR outcomes in a 500 body, so both 200 and
// 500 responses are decoded; any other status maps through mapHTTPError.
func (h *httpServerAdapter) Login(ctx context.Context, account, password string) (models.LoginResult, error) {
	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(models.LoginRequest{Account: account, Password: password}).
		Post("/api/auth/login")
	if err != nil {
		return models.LoginResult{}, fmt.Errorf("login request: %w", err)
	}

	if resp.StatusCode() != http.StatusOK && resp.StatusCode() != http.StatusInternalServerError {
		return models.LoginResult{}, mapHTTPError(resp)
	}

	var result models.LoginResult
	if err := json.Unmarshal(resp.Body(), &result); err != nil {
		return models.LoginResult{}, fmt.Errorf("login decode response: %w", err)
	}

	return result, nil
}

// VerifySecondFactor implements [ServerAdapter]. It POSTs the one-time token
// to POST /api/auth/second-factor and returns the verification verdict.
func (h *httpServerAdapter) VerifySecondFactor(ctx context.Context, identifier, token string) (bool, error) {
	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(models.SecondFactorRequest{Identifier: identifier, Token: token}).
		Post("/api/auth/second-factor")
	if err != nil {
		return false, fmt.Errorf("second factor request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return false, err
	}

	var result models.SecondFactorResponse
	if err := json.Unmarshal(resp.Body(), &result); err != nil {
		return false, fmt.Errorf("second factor decode response: %w", err)
	}

	return result.Verified, nil
}
