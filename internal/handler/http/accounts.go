// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 SMS Platform Authors

package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/sms-platform/authgate/internal/logger"
	"github.com/sms-platform/authgate/internal/service"
	"github.com/sms-platform/authgate/internal/store"
	"github.com/sms-platform/authgate/internal/utils"
	"github.com/sms-platform/authgate/models"
)

func (h *Handler) createAccount(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var req models.CreateAccountRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		http.Error(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	created, err := h.services.ProvisionService.CreateAccount(ctx, req)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidDataProvided):
			log.Err(err).Msg("invalid data provided")
			utils.WriteJSON(w, models.ErrorResponse{Error: "invalid data provided"}, http.StatusBadRequest)
			return
		case errors.Is(err, store.ErrAccountAlreadyExists):
			log.Err(err).Msg("account already exists")
			utils.WriteJSON(w, models.ErrorResponse{Error: "account already exists"}, http.StatusConflict)
			return
		default:
			log.Err(err).Msg("unexpected error occurred during account creation")
			http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
			return
		}
	}

	log.Info().Str("identifier", created.Identifier).Msg("account created")

	utils.WriteJSON(w, created, http.StatusCreated)
}

func (h *Handler) enrollSecondFactor(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	identifier := chi.URLParam(r, "identifier")

	var req models.EnrollSecondFactorRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		http.Error(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	if err := h.services.ProvisionService.EnrollSecondFactor(ctx, identifier, req.Token); err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidDataProvided):
			log.Err(err).Msg("invalid data provided")
			utils.WriteJSON(w, models.ErrorResponse{Error: "invalid data provided"}, http.StatusBadRequest)
			return
		case errors.Is(err, store.ErrAccountNotFound):
			log.Err(err).Str("identifier", identifier).Msg("account not found")
			utils.WriteJSON(w, models.ErrorResponse{Error: "account not found"}, http.StatusNotFound)
			return
		default:
			log.Err(err).Msg("unexpected error occurred during second-factor enrollment")
			http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
			return
		}
	}

	log.Info().Str("identifier", identifier).Msg("second factor enrolled")

	w.WriteHeader(http.StatusNoContent)
}
