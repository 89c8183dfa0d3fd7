package models

import "time"

// User represents a marketplace account used for authentication and as a
// message counterparty. Sensitive fields must never be exposed outside
// trusted boundaries.
type User struct {
	// UserID is the internal unique identifier of the user.
	// It is not exposed via JSON and is used only at the persistence layer.
	UserID int64 `json:"-"`

	// Login is the unique user login identifier.
	// Typically used during authentication.
	Login string `json:"login"`

	// Name is the display name of the user.
	// It is non-sensitive and may be shown in UI.
	Name string `json:"name"`

	// Password carries the plaintext password on register/login requests only.
	// It is never persisted: the server stores an HMAC-derived AuthHash and the
	// client uses the same password to open the private-key vault locally.
	Password string `json:"password,omitempty"`

	// AuthHash is the HMAC-SHA256 representation of the password stored by the
	// server. Persistence-layer only; never serialized.
	AuthHash string `json:"-"`

	// CreatedAt is the timestamp when the user account was created.
	// Used for auditing and lifecycle management.
	CreatedAt time.Time `json:"created_at"`
}

// TableName returns the name of the database table
// associated with the User model.
func (u User) TableName() string {
	return "users"
}
