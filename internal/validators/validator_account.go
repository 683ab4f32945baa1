// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 SMS Platform Authors

package validators

import (
	"context"
	"fmt"

	"github.com/sms-platform/authgate/models"
)

// Field name constants used to specify which fields should be validated.
// These constants are passed to Validate to restrict validation to a subset
// of fields (field-level scoping).
const (
	// FieldIdentifier targets the unique account identifier.
	FieldIdentifier = "identifier"

	// FieldAccount targets the unique login name.
	FieldAccount = "account"

	// FieldPassword targets the plaintext password supplied at creation.
	FieldPassword = "password"

	// FieldRole targets the role tag, which must belong to the closed role set.
	FieldRole = "role"

	// FieldToken targets the one-time token supplied at enrollment.
	FieldToken = "token"
)

type AccountValidator struct {
}

func NewAccountValidator() Validator {
	return &AccountValidator{}
}

func (v *AccountValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.CreateAccountRequest:
		return v.validateCreateAccountRequest(ctx, value, fields...)
	case *models.CreateAccountRequest:
		return v.validateCreateAccountRequest(ctx, *value, fields...)

	default:
		return ErrUnsupportedType
	}
}

func (v *AccountValidator) validateCreateAccountRequest(_ context.Context, req models.CreateAccountRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldIdentifier, FieldAccount, FieldPassword, FieldRole}
	}

	for _, field := range fields {
		switch field {
		case FieldIdentifier:
			if req.Identifier == "" {
				return ErrEmptyIdentifier
			}
		case FieldAccount:
			if req.Account == "" {
				return ErrEmptyAccountName
			}
		case FieldPassword:
			if req.Password == "" {
				return ErrEmptyPassword
			}
		case FieldRole:
			if _, err := models.ParseRole(req.Role); err != nil {
				return fmt.Errorf("%w: %q", ErrInvalidRole, req.Role)
			}
		default:
			return fmt.Errorf("%w: %q", ErrUnknownField, field)
		}
	}

	return nil
}
