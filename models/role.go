// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 SMS Platform Authors

package models

import "fmt"

// Role is the closed set of role tags an account can carry.
// The zero value is not a valid role; accounts are always provisioned with
// an explicit role.
type Role string

const (
	RoleStudent    Role = "STUDENT"
	RoleTeacher    Role = "TEACHER"
	RoleCounselor  Role = "COUNSELOR"
	RoleGuard      Role = "GUARD"
	RoleAdmin      Role = "ADMIN"
	RoleSuperAdmin Role = "SUPER_ADMIN"
)

// ParseRole validates a raw role string against the closed role set.
func ParseRole(s string) (Role, error) {
	switch Role(s) {
	case RoleStudent, RoleTeacher, RoleCounselor, RoleGuard, RoleAdmin, RoleSuperAdmin:
		return Role(s), nil
	}
	return "", fmt.Errorf("unknown role %q", s)
}

// String implements fmt.Stringer.
func (r Role) String() string {
	return string(r)
}
