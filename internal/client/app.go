// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 SMS Platform Authors

package client

import (
	"context"
	"errors"
	"fmt"

	"github.com/sms-platform/authgate/internal/adapter"
	"github.com/sms-platform/authgate/internal/config"
	"github.com/sms-platform/authgate/internal/logger"
	"github.com/sms-platform/authgate/internal/tui"
)

type App struct {
	tui *tui.TUI

	logger *logger.Logger
}

func NewApp(cfg *config.ClientConfig, logger *logger.Logger) (*App, error) {
	serverAdapter, err := adapter.NewHTTPServerAdapter(cfg.Adapter, logger)
	if err != nil {
		return nil, fmt.Errorf("create server adapter: %w", err)
	}

	ui, err := tui.New(serverAdapter, logger)
	if err != nil {
		return nil, fmt.Errorf("create tui: %w", err)
	}

	return &App{tui: ui, logger: logger}, nil
}

func (a *App) Run() error {
	ctx := context.Background()

	summary, err := a.tui.LoginFlow(ctx)
	if err != nil {
		if errors.Is(err, tui.ErrUserQuit) {
			a.logger.Info().Msg("user quit before signing in")
			return nil
		}
		return fmt.Errorf("login flow: %w", err)
	}

	if summary != nil {
		a.logger.Info().
			Str("identifier", summary.Identifier).
			Str("account", summary.Name).
			Str("role", string(summary.Role)).
			Msg("signed in")
	}

	return nil
}
