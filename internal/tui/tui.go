// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 SMS Platform Authors

// Package tui implements the interactive terminal login client.
//
// It renders a sign-in form, branches on the structured outcome returned by
// the server (success banner, second-factor prompt, or an error line), and
// reports the authenticated account back to the caller.
package tui

import (
	"context"
	"errors"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/sms-platform/authgate/internal/adapter"
	"github.com/sms-platform/authgate/internal/logger"
	"github.com/sms-platform/authgate/models"
)

// ErrUserQuit is returned by LoginFlow when the user exits before completing
// the authentication flow.
var ErrUserQuit = errors.New("user quit")

type TUI struct {
	server adapter.ServerAdapter
}

func New(server adapter.ServerAdapter, _ *logger.Logger) (*TUI, error) {
	return &TUI{server: server}, nil
}

// LoginFlow runs the interactive login until the user authenticates or
// quits, and returns the authenticated account summary.
func (t *TUI) LoginFlow(ctx context.Context) (*models.Summary, error) {
	login := NewLoginModel(ctx, t.server)
	secondFactor := NewSecondFactorModel(ctx, t.server)

	root := NewRootModel(login, secondFactor)
	finalModel, runErr := tea.NewProgram(root, tea.WithAltScreen()).Run()
	if runErr != nil {
		return nil, runErr
	}

	result, ok := finalModel.(RootModel)
	if !ok {
		return nil, tea.ErrProgramKilled
	}
	if result.quitByUser || !result.done {
		return nil, ErrUserQuit
	}

	return result.Summary(), nil
}
