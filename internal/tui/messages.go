// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 SMS Platform Authors

package tui

import (
	"github.com/sms-platform/authgate/models"
)

// NavigateTo switches the root model to another page.
type NavigateTo struct {
	Page string
}

// loginResultMsg carries the outcome of an async login command back into the
// update loop. Err is set only on transport failures; domain outcomes travel
// inside Result.
type loginResultMsg struct {
	Result models.LoginResult
	Err    error
}

// secondFactorResultMsg carries the verdict of an async second-factor
// verification command.
type secondFactorResultMsg struct {
	Verified bool
	Err      error
}
