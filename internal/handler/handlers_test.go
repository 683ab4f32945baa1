// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 SMS Platform Authors

package handler

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sms-platform/authgate/internal/config"
	"github.com/sms-platform/authgate/internal/logger"
	"github.com/sms-platform/authgate/internal/service"
)

func TestNewHandlers(t *testing.T) {
	handlers, err := NewHandlers(&service.Services{}, config.Server{HTTPAddress: "localhost:8080"}, logger.Nop())
	require.NoError(t, err)
	assert.NotNil(t, handlers.HTTP)
}

func TestNewHandlers_NoAddress(t *testing.T) {
	handlers, err := NewHandlers(&service.Services{}, config.Server{}, logger.Nop())
	assert.ErrorIs(t, err, errNoHandlersAreCreated)
	assert.Nil(t, handlers)
}
