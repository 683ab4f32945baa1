// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 SMS Platform Authors

package http

import (
	"encoding/json"
	"net/http"

	"github.com/sms-platform/authgate/internal/logger"
	"github.com/sms-platform/authgate/internal/utils"
	"github.com/sms-platform/authgate/models"
)

// login runs one authentication attempt. Every domain outcome — success,
// unknown account, wrong password, banned, second factor pending — is a 200
// with the outcome carried in the body; only infrastructure faults map to
// 500. Clients branch on the outcome tag, not on the HTTP status.
func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var req models.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		http.Error(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	result := h.services.AuthService.Login(ctx, req.Account, req.Password)

	if result.Outcome == models.OutcomeServerError {
		log.Error().Str("account", req.Account).Msg("login attempt ended with server error")
		utils.WriteJSON(w, result, http.StatusInternalServerError)
		return
	}

	log.Debug().Str("account", req.Account).Str("outcome", string(result.Outcome)).Msg("login attempt handled")

	utils.WriteJSON(w, result, http.StatusOK)
}

// secondFactor verifies a one-time token for an account that passed the
// primary factor.
func (h *Handler) secondFactor(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var req models.SecondFactorRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		http.Error(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	verified := h.services.AuthService.VerifySecondFactor(ctx, req.Identifier, req.Token)

	log.Debug().Str("identifier", req.Identifier).Bool("verified", verified).Msg("second factor handled")

	utils.WriteJSON(w, models.SecondFactorResponse{Verified: verified}, http.StatusOK)
}
