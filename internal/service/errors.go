// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 SMS Platform Authors

package service

import "errors"

var (
	// ErrInvalidDataProvided is returned by provisioning operations when a
	// required field is empty or the role tag is not in the closed role set.
	ErrInvalidDataProvided = errors.New("invalid data provided")
)
