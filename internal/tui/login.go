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

// LoginModel is the Bubble Tea model for the login screen. It renders two
// text inputs (account and password) and dispatches an async login command on
// form submission. The resulting [loginResultMsg] is routed by [RootModel]:
// success and second-factor outcomes navigate away, every other outcome comes
// back here and is rendered as an error line.
type LoginModel struct {
	ctx    context.Context
	server adapter.ServerAdapter

	inputs     []textinput.Model
	focus      int
	submitting bool
	errMsg     string
}

// NewLoginModel creates a [LoginModel] with pre-configured account and
// password inputs. The account field receives focus immediately; the password
// field uses masked echo.
func NewLoginModel(ctx context.Context, server adapter.ServerAdapter) *LoginModel {
	accountInput := textinput.New()
	accountInput.Placeholder = "account"
	accountInput.CharLimit = 64
	accountInput.Width = 40
	accountInput.Focus()

	passwordInput := textinput.New()
	passwordInput.Placeholder = "password"
	passwordInput.CharLimit = 256
	passwordInput.Width = 40
	passwordInput.EchoMode = textinput.EchoPassword
	passwordInput.EchoCharacter = '*'

	return &LoginModel{
		ctx:    ctx,
		server: server,
		inputs: []textinput.Model{accountInput, passwordInput},
	}
}

// Init implements [tea.Model]. Starts the cursor-blink animation for the
// active input.
func (m *LoginModel) Init() tea.Cmd {
	return textinput.Blink
}

// Update implements [tea.Model]. Handled messages:
//   - [loginResultMsg] — clears submitting state; shows the failure reason.
//   - tab / shift+tab  — moves focus between inputs.
//   - enter            — validates inputs and dispatches the async login command.
//
// All other key events are forwarded to the focused input widget.
func (m *LoginModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if result, ok := msg.(loginResultMsg); ok {
		m.submitting = false
		if result.Err != nil {
			m.errMsg = "Server unavailable: " + result.Err.Error()
		} else {
			m.errMsg = result.Result.Message
		}
		return m, nil
	}

	keyMsg, ok := msg.(tea.KeyMsg)
	if ok {
		switch keyMsg.String() {
		case "tab":
			m.focusNext()
			return m, nil
		case "shift+tab":
			m.focusPrev()
			return m, nil
		case "enter":
			if m.submitting {
				return m, nil
			}

			account := strings.TrimSpace(m.inputs[0].Value())
			password := m.inputs[1].Value()
			if account == "" || password == "" {
				m.errMsg = "Account and password are required"
				return m, nil
			}

			m.errMsg = ""
			m.submitting = true
			return m, m.cmdLogin(account, password)
		}
	}

	var cmd tea.Cmd
	m.inputs[m.focus], cmd = m.inputs[m.focus].Update(msg)
	return m, cmd
}

// View implements [tea.Model]. Renders the login form with account and
// password inputs, a submission indicator, and an optional error message.
func (m *LoginModel) View() string {
	var b strings.Builder
	b.WriteString("Field    │ Value\n")
	b.WriteString("─────────┼────────────────────────────────────────────\n")
	b.WriteString("Account  │ [")
	b.WriteString(m.inputs[0].View())
	b.WriteString("]\n")
	b.WriteString("Password │ [")
	b.WriteString(m.inputs[1].View())
	b.WriteString("]\n")

	if m.submitting {
		b.WriteString("\n[Signing in...]\n")
	} else {
		b.WriteString("\n[Sign in]\n")
	}

	if m.errMsg != "" {
		b.WriteString("\n")
		b.WriteString(errorStyle.Render("Error: " + m.errMsg))
		b.WriteString("\n")
	}

	return renderPage("SIGN IN", strings.TrimRight(b.String(), "\n"), "tab: next field │ enter: submit")
}

func (m *LoginModel) cmdLogin(account, password string) tea.Cmd {
	ctx := m.ctx
	server := m.server

	return func() tea.Msg {
		result, err := server.Login(ctx, account, password)

		return loginResultMsg{
			Result: result,
			Err:    err,
		}
	}
}

func (m *LoginModel) focusNext() {
	m.inputs[m.focus].Blur()
	m.focus = (m.focus + 1) % len(m.inputs)
	m.inputs[m.focus].Focus()
}

func (m *LoginModel) focusPrev() {
	m.inputs[m.focus].Blur()
	m.focus = (m.focus - 1 + len(m.inputs)) % len(m.inputs)
	m.inputs[m.focus].Focus()
}
