// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 SMS Platform Authors

package models

// Profile is the closed set of role-specific profile payloads attached to an
// account at provisioning time. The core treats profile data as opaque; only
// the provisioner resolves the concrete variant and persists it together with
// the account row.
//
// The unexported method keeps the variant set closed to this package.
type Profile interface {
	profile()
}

// StudentProfile is the role-specific record created alongside accounts with
// [RoleStudent].
type StudentProfile struct {
	// Identifier mirrors the owning account's identifier (1:1).
	Identifier string `json:"identifier"`

	// FullName is the student's display name.
	FullName string `json:"name"`

	// MajorID references the student's major.
	MajorID int `json:"major_id"`

	// ClassID references the student's class group.
	ClassID int `json:"class_id"`

	// EnrollmentTime is the enrollment date in its legacy string form.
	EnrollmentTime string `json:"enrollment_time"`
}

func (StudentProfile) profile() {}

// TableName returns the name of the database table
// associated with the StudentProfile model.
func (StudentProfile) TableName() string {
	return "student_profiles"
}
