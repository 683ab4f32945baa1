// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 SMS Platform Authors

package tui

import (
	"context"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/sms-platform/authgate/internal/adapter"
)

// SecondFactorModel is the Bubble Tea model for the dual-authentication
// prompt shown after a successful password check on an account with the
// second factor enabled. It collects a one-time token and dispatches an
// async verification command.
type SecondFactorModel struct {
	ctx    context.Context
	server adapter.ServerAdapter

	// identifier of the account being verified; set by RootModel before
	// this page is shown.
	identifier string

	input      textinput.Model
	submitting bool
	errMsg     string
}

// NewSecondFactorModel creates a [SecondFactorModel] with a pre-configured
// token input.
func NewSecondFactorModel(ctx context.Context, server adapter.ServerAdapter) *SecondFactorModel {
	tokenInput := textinput.New()
	tokenInput.Placeholder = "one-time token"
	tokenInput.CharLimit = 64
	tokenInput.Width = 40
	tokenInput.Focus()

	return &SecondFactorModel{
		ctx:    ctx,
		server: server,
		input:  tokenInput,
	}
}

// SetIdentifier records which account the submitted token belongs to and
// resets the form state from any previous attempt.
func (m *SecondFactorModel) SetIdentifier(identifier string) {
	m.identifier = identifier
	m.input.Reset()
	m.submitting = false
	m.errMsg = ""
}

// Init implements [tea.Model].
func (m *SecondFactorModel) Init() tea.Cmd {
	return textinput.Blink
}

// Update implements [tea.Model]. A rejected token or a transport failure is
// rendered as an error line; a verified token is intercepted by [RootModel]
// before it reaches this method.
func (m *SecondFactorModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if result, ok := msg.(secondFactorResultMsg); ok {
		m.submitting = false
		if result.Err != nil {
			m.errMsg = "Server unavailable: " + result.Err.Error()
		} else if !result.Verified {
			m.errMsg = "Token rejected"
		}
		return m, nil
	}

	keyMsg, ok := msg.(tea.KeyMsg)
	if ok && keyMsg.String() == "enter" {
		if m.submitting {
			return m, nil
		}

		token := strings.TrimSpace(m.input.Value())
		if token == "" {
			m.errMsg = "Token is required"
			return m, nil
		}

		m.errMsg = ""
		m.submitting = true
		return m, m.cmdVerify(token)
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// View implements [tea.Model].
func (m *SecondFactorModel) View() string {
	var b strings.Builder
	b.WriteString("Dual authentication is enabled for this account.\n\n")
	b.WriteString("Token │ [")
	b.WriteString(m.input.View())
	b.WriteString("]\n")

	if m.submitting {
		b.WriteString("\n[Verifying...]\n")
	} else {
		b.WriteString("\n[Verify]\n")
	}

	if m.errMsg != "" {
		b.WriteString("\n")
		b.WriteString(errorStyle.Render("Error: " + m.errMsg))
		b.WriteString("\n")
	}

	return renderPage("SECOND FACTOR", strings.TrimRight(b.String(), "\n"), "enter: submit")
}

func (m *SecondFactorModel) cmdVerify(token string) tea.Cmd {
	ctx := m.ctx
	server := m.server
	identifier := m.identifier

	return func() tea.Msg {
		verified, err := server.VerifySecondFactor(ctx, identifier, token)

		return secondFactorResultMsg{
			Verified: verified,
			Err:      err,
		}
	}
}
