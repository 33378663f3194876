package models

import "time"

// Employee is a single record of the company staff directory.
// All durable state lives in the employees table; this process never
// caches employee records between requests.
type Employee struct {
	// ID is the server-assigned sequential identifier of the record.
	ID int64 `json:"id"`

	// Name is the employee display name. Stored trimmed and never empty.
	Name string `json:"name"`

	// Email is the employee contact address. Stored lowercased and unique
	// across all records (case-insensitive).
	Email string `json:"email"`

	// Department is free-form text, empty when not provided.
	Department string `json:"department"`

	// Role is free-form text, empty when not provided.
	Role string `json:"role"`

	// DateJoined is set by the server in UTC at creation time and is the
	// sort key of every listing.
	DateJoined time.Time `json:"date_joined"`
}

// TableName returns the name of the database table
// associated with the Employee model.
func (e Employee) TableName() string {
	return "employees"
}

// EmployeeUpdate describes a partial update of an employee record.
// Nil fields were absent from the request body and must stay untouched.
type EmployeeUpdate struct {
	Name       *string `json:"name"`
	Email      *string `json:"email"`
	Department *string `json:"department"`
	Role       *string `json:"role"`
}

// Empty reports whether the update carries no fields at all.
func (u EmployeeUpdate) Empty() bool {
	return u.Name == nil && u.Email == nil && u.Department == nil && u.Role == nil
}

// EmployeeFilter narrows and pages a listing of employee records.
// Department and Role are exact-match filters applied only when non-empty.
// Offset/Limit describe the half-open row range of the requested page.
type EmployeeFilter struct {
	Department string
	Role       string
	Offset     uint64
	Limit      uint64
}
