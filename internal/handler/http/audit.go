// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 SMS Platform Authors

package http

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/sms-platform/authgate/internal/logger"
	"github.com/sms-platform/authgate/internal/utils"
	"github.com/sms-platform/authgate/models"
)

// maxAttemptLimit bounds the limit query parameter so a single request
// cannot demand an arbitrarily large result set.
const maxAttemptLimit = 1000

// listAttempts serves filtered reads over the append-only attempt log.
// Filters arrive as query parameters; all are optional.
func (h *Handler) listAttempts(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	filter, err := attemptFilterFromQuery(r)
	if err != nil {
		log.Err(err).Msg("invalid attempt log filter")
		utils.WriteJSON(w, models.ErrorResponse{Error: "invalid filter parameters"}, http.StatusBadRequest)
		return
	}

	records, err := h.services.AuditService.ListAttempts(ctx, filter)
	if err != nil {
		log.Err(err).Msg("attempt log query failed")
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	utils.WriteJSON(w, records, http.StatusOK)
}

func attemptFilterFromQuery(r *http.Request) (models.AttemptFilter, error) {
	query := r.URL.Query()

	filter := models.AttemptFilter{
		Identifier: query.Get("identifier"),
	}

	if raw := query.Get("succeeded"); raw != "" {
		succeeded, err := strconv.ParseBool(raw)
		if err != nil {
			return models.AttemptFilter{}, err
		}
		filter.Succeeded = &succeeded
	}

	if raw := query.Get("second_factor"); raw != "" {
		secondFactor, err := strconv.ParseBool(raw)
		if err != nil {
			return models.AttemptFilter{}, err
		}
		filter.SecondFactor = &secondFactor
	}

	if raw := query.Get("limit"); raw != "" {
		limit, err := strconv.ParseUint(raw, 10, 64)
		if err != nil {
			return models.AttemptFilter{}, err
		}
		if limit > maxAttemptLimit {
			return models.AttemptFilter{}, fmt.Errorf("limit above maximum of %d", maxAttemptLimit)
		}
		filter.Limit = limit
	}

	return filter, nil
}
