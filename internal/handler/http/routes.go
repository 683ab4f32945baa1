// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 SMS Platform Authors

package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID)
	router.Use(h.withLogging)
	router.Use(withGZip)

	router.Group(func(r chi.Router) {
		r.Post("/api/auth/login", h.login)
		r.Post("/api/auth/second-factor", h.secondFactor)
	})

	router.Group(func(r chi.Router) {
		r.Post("/api/accounts", h.createAccount)
		r.Post("/api/accounts/{identifier}/second-factor", h.enrollSecondFactor)
		r.Get("/api/audit/attempts", h.listAttempts)
	})

	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}
