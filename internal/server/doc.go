// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 SMS Platform Authors

// Package server wires and runs the application's transport server.
//
// It provides orchestration for the HTTP server lifecycle, including
// startup, signal handling, and graceful shutdown.
package server
