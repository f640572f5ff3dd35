package models

import "time"

// UserRole is the three-tier role assigned to every account.
type UserRole string

const (
	RoleAdministrator UserRole = "administrator"
	RoleOperator      UserRole = "operator"
	RoleViewer        UserRole = "viewer"
)

// Valid reports whether the role is one of the three known tiers.
func (r UserRole) Valid() bool {
	switch r {
	case RoleAdministrator, RoleOperator, RoleViewer:
		return true
	}
	return false
}

// User represents an account entity used for authentication and authorization.
// Sensitive fields must never be exposed outside trusted boundaries.
type User struct {
	// ID is the internal unique identifier of the user.
	ID int64 `json:"id"`

	// Email is the unique contact address; login accepts it interchangeably
	// with Username.
	Email string `json:"email"`

	// Username is the unique login identifier.
	Username string `json:"username"`

	// FullName is the display name of the user.
	FullName string `json:"full_name"`

	// HashedPassword stores the bcrypt hash of the user's password.
	// Never plaintext, never serialized.
	HashedPassword string `json:"-"`

	// Role determines what the user may do. See the authz package for the
	// full decision table.
	Role UserRole `json:"role"`

	// IsActive gates login; deactivated accounts are rejected with the same
	// status as bad credentials.
	IsActive bool `json:"is_active"`

	// IsVerified marks accounts that completed verification. Informational.
	IsVerified bool `json:"is_verified"`

	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt time.Time  `json:"updated_at"`
	LastLogin *time.Time `json:"last_login,omitempty"`

	// AssignedLocationID, when set, confines an operator to a single site.
	// Nil means the operator is unrestricted.
	AssignedLocationID *int64 `json:"assigned_location_id,omitempty"`
}

// TableName returns the name of the database table
// associated with the User model.
func (u User) TableName() string {
	return "users"
}
