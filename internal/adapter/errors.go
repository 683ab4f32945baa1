// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 SMS Platform Authors

package adapter

import "errors"

// Sentinel errors produced by mapHTTPError. Callers match against them with
// [errors.Is] to react to server responses without inspecting status codes.
var (
	ErrBadRequest          = errors.New("bad request")
	ErrNotFound            = errors.New("not found")
	ErrConflict            = errors.New("conflict")
	ErrInternalServerError = errors.New("internal server error")
)
