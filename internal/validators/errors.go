// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 SMS Platform Authors

package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	ErrEmptyIdentifier  = errors.New("identifier is required")
	ErrEmptyAccountName = errors.New("account name is required")
	ErrEmptyPassword    = errors.New("password is required")
	ErrInvalidRole      = errors.New("invalid role")
	ErrEmptyToken       = errors.New("token is required")
)
