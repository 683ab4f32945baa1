// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 SMS Platform Authors

package server

// Server is the lifecycle contract for the transport servers hosting the
// authentication API.
//
// RunServer blocks until a stop signal arrives; Shutdown drains in-flight
// login requests and releases resources.
type Server interface {
	// RunServer starts serving requests and blocks until the server stops.
	RunServer()

	// Shutdown gracefully stops the server and frees associated resources.
	Shutdown()
}
