// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// User is the core entity in the system, representing a unique "person" or "account".
// Identity lives in the external identity provider; this record carries the
// marketplace-facing attributes and the role set mirrored from the token claims.
type User struct {
	ID        uuid.UUID // The unique identifier for the user, matching the token 'sub' claim.
	Username  string    // The user's display name.
	Email     string    // The user's primary contact email, unique across accounts.
	IsActive  bool      // Whether the account may act in the marketplace. Deactivation never deletes the row.
	Roles     Roles     // The role set assigned to this account (e.g. admin).
	CreatedAt time.Time // Timestamp of when this user account was created.
	UpdatedAt time.Time // Timestamp of the last modification to this user's data.
}
