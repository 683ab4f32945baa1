// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 SMS Platform Authors

// Package adapter provides transport-layer abstractions for communicating
// with the authentication server.
//
// The primary abstraction is [ServerAdapter], which decouples the TUI client
// from the underlying protocol. The package ships an HTTP/REST implementation
// ([NewHTTPServerAdapter]).
//
// Error values defined in errors.go are mapped from HTTP status codes by
// mapHTTPError so that callers can use [errors.Is] for transport-agnostic
// error handling (e.g. [ErrConflict] for 409, [ErrNotFound] for 404).
package adapter

import (
	"context"

	"github.com/sms-platform/authgate/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/server_adapter_mock.go -package=mock

// ServerAdapter defines transport-agnostic communication with the
// authentication server. Implementations are responsible for serialisation
// and for mapping transport-level errors to the sentinel values defined in
// this package.
type ServerAdapter interface {
	// Login submits the primary credential and returns the structured
	// outcome produced by the server. Domain outcomes (not-found, mismatch,
	// banned, second-factor-pending) arrive inside the result; the error
	// return covers transport failures only.
	Login(ctx context.Context, account, password string) (models.LoginResult, error)

	// VerifySecondFactor submits a one-time token for an account that
	// passed the primary factor and reports whether it was accepted.
	VerifySecondFactor(ctx context.Context, identifier, token string) (bool, error)
}
