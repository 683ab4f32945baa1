// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 SMS Platform Authors

package tui

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/sms-platform/authgate/models"
)

// RootModel is a TUI router:
//  1. keeps the active page
//  2. handles global Ctrl+C quit
//  3. routes login and second-factor results between pages
//  4. delegates all other messages to the active page
type RootModel struct {
	pages   map[string]tea.Model
	current tea.Model

	secondFactor *SecondFactorModel

	quitByUser bool
	done       bool
	summary    *models.Summary
}

// NewRootModel registers all pages and opens the login page.
func NewRootModel(login *LoginModel, secondFactor *SecondFactorModel) RootModel {
	pages := map[string]tea.Model{
		"login":         login,
		"second-factor": secondFactor,
	}

	return RootModel{
		pages:        pages,
		current:      login,
		secondFactor: secondFactor,
	}
}

func (r RootModel) Init() tea.Cmd {
	if r.current == nil {
		return nil
	}
	return r.current.Init()
}

func (r RootModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	// Global hotkey for every page.
	if key, ok := msg.(tea.KeyMsg); ok {
		if key.String() == "ctrl+c" {
			r.quitByUser = true
			return r, tea.Quit
		}

		// Any key closes the success banner.
		if r.done {
			return r, tea.Quit
		}
	}

	switch m := msg.(type) {
	case loginResultMsg:
		if m.Err == nil {
			switch m.Result.Outcome {
			case models.OutcomeLoginSuccess:
				r.done = true
				r.summary = m.Result.Account
				return r, nil
			case models.OutcomeSecondFactorRequired:
				r.summary = m.Result.Account
				if r.summary != nil {
					r.secondFactor.SetIdentifier(r.summary.Identifier)
				}
				return r.navigate("second-factor")
			}
		}

	case secondFactorResultMsg:
		if m.Err == nil && m.Verified {
			r.done = true
			return r, nil
		}

	case NavigateTo:
		return r.navigate(m.Page)
	}

	return r.delegate(msg)
}

func (r RootModel) View() string {
	if r.done {
		return r.successView()
	}
	if r.current == nil {
		return ""
	}
	return r.current.View()
}

// Summary returns the authenticated account after a completed run, or nil if
// the user quit before finishing the flow.
func (r RootModel) Summary() *models.Summary {
	if !r.done {
		return nil
	}
	return r.summary
}

func (r RootModel) navigate(page string) (tea.Model, tea.Cmd) {
	next, ok := r.pages[page]
	if !ok {
		return r, nil
	}

	r.current = next
	return r, next.Init()
}

func (r RootModel) delegate(msg tea.Msg) (tea.Model, tea.Cmd) {
	if r.current == nil {
		return r, nil
	}

	updated, cmd := r.current.Update(msg)
	r.current = updated
	return r, cmd
}

func (r RootModel) successView() string {
	var b strings.Builder
	b.WriteString(successStyle.Render("Login successful"))
	b.WriteString("\n\n")

	if r.summary != nil {
		b.WriteString("Account    │ " + r.summary.Name + "\n")
		b.WriteString("Identifier │ " + r.summary.Identifier + "\n")
		b.WriteString("Role       │ " + string(r.summary.Role) + "\n")
	}

	return renderPage("WELCOME", strings.TrimRight(b.String(), "\n"), "any key: exit")
}
