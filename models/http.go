// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 SMS Platform Authors

package models

// LoginRequest is the payload of POST /api/auth/login.
type LoginRequest struct {
	Account  string `json:"account"`
	Password string `json:"password"`
}

// SecondFactorRequest is the payload of POST /api/auth/second-factor.
type SecondFactorRequest struct {
	Identifier string `json:"identifier"`
	Token      string `json:"token"`
}

// SecondFactorResponse is the result of a second-factor verification call.
type SecondFactorResponse struct {
	Verified bool `json:"verified"`
}

// CreateAccountRequest is the payload of POST /api/accounts.
// Password is accepted in plaintext over the transport and bcrypt-hashed
// before it reaches storage; it is never echoed back.
type CreateAccountRequest struct {
	Identifier string `json:"identifier"`
	Account    string `json:"account"`
	Password   string `json:"password"`
	Role       string `json:"role"`

	// Student carries the role-specific profile when Role is STUDENT.
	Student *StudentProfile `json:"student,omitempty"`
}

// EnrollSecondFactorRequest is the payload of
// POST /api/accounts/{identifier}/second-factor.
type EnrollSecondFactorRequest struct {
	Token string `json:"token"`
}

// ErrorResponse is the uniform error body returned by the HTTP API.
type ErrorResponse struct {
	Error string `json:"error"`
}
