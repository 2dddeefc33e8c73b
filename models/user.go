package models

import "time"

// User represents an account entity used for authentication and authorization.
// It contains identity attributes and credential-related data.
// Sensitive fields must never be exposed outside trusted boundaries.
type User struct {
	// UserID is the unique identifier of the user, assigned by the database.
	UserID int64 `json:"id"`

	// Name is the display name of the user.
	Name string `json:"name"`

	// Email is the unique address the user registers and logs in with.
	Email string `json:"email"`

	// Password holds the bcrypt hash of the user's password.
	// It is never serialized to JSON; plaintext passwords exist only in
	// request DTOs and are hashed before they reach this struct.
	Password string `json:"-"`

	// Admin reports whether the user holds the administrative privilege.
	// It is never accepted from client input; the storage layer does not
	// write this column at all, so every insert path produces admin=false.
	Admin bool `json:"admin"`

	// CreatedAt is the timestamp when the user account was created.
	CreatedAt time.Time `json:"createdAt"`
}

// TableName returns the name of the database table
// associated with the User model.
func (u User) TableName() string {
	return "users"
}
