// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Transaction is evidence of a completed purchase. Once a transaction
// exists for a (asset, buyer) pair, that buyer's access to the asset's
// private data room is permanent and independent of any agreement state.
type Transaction struct {
	ID        uuid.UUID // The unique identifier for this transaction record.
	AssetID   uuid.UUID // The purchased asset.
	BuyerID   uuid.UUID // The purchasing user.
	Amount    float64   // Settled amount.
	CreatedAt time.Time // When the purchase completed.
}

// PrivateInvitation is an explicit allow-list entry granting a user access
// to an asset's private data room without a purchase or agreement.
type PrivateInvitation struct {
	ID            uuid.UUID // The unique identifier for this invitation record.
	AssetID       uuid.UUID // The asset whose private data room is opened.
	InvitedUserID uuid.UUID // The invited user.
	CreatedAt     time.Time // When the invitation was issued.
}

// Bucket naming: one bucket per asset per visibility tier. These names are
// part of the storage contract and must stay stable across releases.

// PublicBucket is the object-store bucket holding an asset's public files.
func PublicBucket(assetID uuid.UUID) string {
	return fmt.Sprintf("public-%s", assetID)
}

// PrivateBucket is the object-store bucket holding an asset's restricted files.
func PrivateBucket(assetID uuid.UUID) string {
	return fmt.Sprintf("private-%s", assetID)
}

// NDABucket is the object-store bucket holding an asset's signed agreements.
func NDABucket(assetID uuid.UUID) string {
	return fmt.Sprintf("nda-%s", assetID)
}

// NDADocumentKey is the object key of a signed agreement document.
func NDADocumentKey(assetID uuid.UUID, number int) string {
	return fmt.Sprintf("nda-%s-%d.pdf", assetID, number)
}
