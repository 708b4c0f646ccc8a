// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// User is the core account entity, representing a single authenticated person.
// A user owns zero or more business profiles; registration always provisions
// the first one in the same transaction.
type User struct {
	ID           uuid.UUID  // The Global Unique Identifier (GUID) for the user.
	Email        string     // The user's primary contact email, used as the login identifier.
	Name         string     // The user's display name or real name.
	AuthProvider string     // The credential provider, e.g. "local".
	PasswordHash string     // The bcrypt hash of the user's password. Never exposed outward.
	IsActive     bool       // Whether the account is allowed to log in.
	CreatedAt    time.Time  // Timestamp of when this account was created.
	LastLogin    *time.Time // Timestamp of the most recent successful login. Nil if never logged in.
}
