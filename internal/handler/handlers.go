// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 SMS Platform Authors

package handler

import (
	"github.com/sms-platform/authgate/internal/config"
	"github.com/sms-platform/authgate/internal/handler/http"
	"github.com/sms-platform/authgate/internal/logger"
	"github.com/sms-platform/authgate/internal/service"
)

type Handlers struct {
	HTTP *http.Handler
}

func NewHandlers(services *service.Services, cfg config.Server, logger *logger.Logger) (*Handlers, error) {
	logger.Info().Msg("creating new handlers...")

	handlers := &Handlers{}

	if cfg.HTTPAddress != "" {
		handlers.HTTP = http.NewHandler(services, logger)
	}

	if handlers.HTTP == nil {
		return nil, errNoHandlersAreCreated
	}

	return handlers, nil
}
