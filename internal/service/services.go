// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 SMS Platform Authors

package service

import (
	"github.com/sms-platform/authgate/internal/config"
	"github.com/sms-platform/authgate/internal/logger"
	"github.com/sms-platform/authgate/internal/store"
	"github.com/sms-platform/authgate/internal/validators"
)

// Services bundles every service the transport layer depends on.
type Services struct {
	AuthService      AuthService
	ProvisionService ProvisionService
	AuditService     AuditService
}

// NewServices wires all services to the given repositories and application
// settings.
func NewServices(repositories *store.Repositories, cfg config.App, logger *logger.Logger) *Services {
	attempts := NewAttemptLogService(repositories.AttemptRepository, logger)

	return &Services{
		AuthService:      NewAuthService(repositories.AccountRepository, repositories.TokenRepository, attempts, cfg.BanThreshold, logger),
		ProvisionService: NewProvisionService(repositories.AccountRepository, repositories.TokenRepository, validators.NewAccountValidator(), cfg.BcryptCost, logger),
		AuditService:     attempts,
	}
}
