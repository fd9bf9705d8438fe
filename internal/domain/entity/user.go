// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// User is the core entity in the system, representing a registered account.
// PasswordHash is the only credential material kept on the entity; it must
// never be serialized into a response or written to a log.
type User struct {
	ID           uuid.UUID // The unique identifier for the user.
	Username     string    // Unique login identifier chosen by the user.
	Email        string    // The user's unique contact email.
	FirstName    string    // The user's given name.
	LastName     string    // The user's family name.
	PasswordHash string    // bcrypt hash of the user's password.
	IsActive     bool      // Inactive accounts cannot log in or act; users are never hard-deleted.
	CreatedAt    time.Time // Timestamp of when this account was created.
	UpdatedAt    time.Time // Timestamp of the last modification to this account.
}
