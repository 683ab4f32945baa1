// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 SMS Platform Authors

package validators

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/sms-platform/authgate/models"
)

func validRequest() models.CreateAccountRequest {
	return models.CreateAccountRequest{
		Identifier: "S-2024-001",
		Account:    "jsmith",
		Password:   "correct horse",
		Role:       "STUDENT",
	}
}

func TestAccountValidator_CreateAccountRequest(t *testing.T) {
	v := NewAccountValidator()
	ctx := context.Background()

	tests := []struct {
		name    string
		mutate  func(*models.CreateAccountRequest)
		wantErr error
	}{
		{name: "valid", mutate: func(r *models.CreateAccountRequest) {}},
		{name: "missing identifier", mutate: func(r *models.CreateAccountRequest) { r.Identifier = "" }, wantErr: ErrEmptyIdentifier},
		{name: "missing account name", mutate: func(r *models.CreateAccountRequest) { r.Account = "" }, wantErr: ErrEmptyAccountName},
		{name: "missing password", mutate: func(r *models.CreateAccountRequest) { r.Password = "" }, wantErr: ErrEmptyPassword},
		{name: "unknown role", mutate: func(r *models.CreateAccountRequest) { r.Role = "WIZARD" }, wantErr: ErrInvalidRole},
		{name: "empty role", mutate: func(r *models.CreateAccountRequest) { r.Role = "" }, wantErr: ErrInvalidRole},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := validRequest()
			tt.mutate(&req)

			err := v.Validate(ctx, req)
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestAccountValidator_PointerInput(t *testing.T) {
	v := NewAccountValidator()
	req := validRequest()

	assert.NoError(t, v.Validate(context.Background(), &req))
}

func TestAccountValidator_FieldScoping(t *testing.T) {
	v := NewAccountValidator()
	ctx := context.Background()

	req := validRequest()
	req.Password = ""

	// Only the scoped fields are checked.
	assert.NoError(t, v.Validate(ctx, req, FieldIdentifier, FieldAccount))
	assert.ErrorIs(t, v.Validate(ctx, req, FieldPassword), ErrEmptyPassword)
}

func TestAccountValidator_UnknownField(t *testing.T) {
	v := NewAccountValidator()

	err := v.Validate(context.Background(), validRequest(), "nonexistent")
	assert.ErrorIs(t, err, ErrUnknownField)
}

func TestAccountValidator_UnsupportedType(t *testing.T) {
	v := NewAccountValidator()

	err := v.Validate(context.Background(), 42)
	assert.ErrorIs(t, err, ErrUnsupportedType)
}
