// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// Asset is a sellable item owned by exactly one user. Its restricted
// materials live in per-asset data-room buckets in the object store.
type Asset struct {
	ID             uuid.UUID // The unique identifier for the asset.
	Name           string    // Short display name.
	Description    string    // Free-text description shown in listings.
	ForSale        bool      // Whether the asset is currently listed for sale.
	Price          *float64  // Asking price; nil while the asset is not listed.
	AdditionalInfo string    // Free-text sale details (e.g. discounts, terms).
	OwnerID        uuid.UUID // The user who owns this asset.
	CreatedAt      time.Time // Timestamp of when this asset was created.
	UpdatedAt      time.Time // Timestamp of the last modification.
}

// IsOwnedBy reports whether the given user owns this asset.
func (a *Asset) IsOwnedBy(userID uuid.UUID) bool {
	return a.OwnerID == userID
}
