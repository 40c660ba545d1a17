// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// NDAStatus is the lifecycle state of a non-disclosure agreement.
// Transitions only ever move forward: requested -> signed -> confirmed.
type NDAStatus string

const (
	// NDAStatusRequested means the buyer has asked for an NDA but not yet
	// uploaded a signed copy.
	NDAStatusRequested NDAStatus = "requested"
	// NDAStatusSigned means the buyer has uploaded the signed document.
	NDAStatusSigned NDAStatus = "signed"
	// NDAStatusConfirmed is the terminal state, set by the asset owner.
	NDAStatusConfirmed NDAStatus = "confirmed"
)

// String returns the string representation of the status.
func (s NDAStatus) String() string {
	return string(s)
}

// IsValid checks if the status is a known lifecycle state.
func (s NDAStatus) IsValid() bool {
	switch s {
	case NDAStatusRequested, NDAStatusSigned, NDAStatusConfirmed:
		return true
	default:
		return false
	}
}

// NDA tracks one non-disclosure agreement between an asset and a buyer.
// An asset accumulates agreements over time; Number is 1-based, monotonic
// per asset, assigned as count-of-existing+1 at request time and never
// reused or reassigned.
type NDA struct {
	ID          uuid.UUID  // The unique identifier for this agreement record.
	AssetID     uuid.UUID  // The asset whose restricted materials the agreement covers.
	BuyerID     uuid.UUID  // The requesting buyer.
	Number      int        // 1-based sequence number, unique per asset.
	Status      NDAStatus  // Current lifecycle state.
	RequestedAt time.Time  // When the buyer requested the agreement.
	SignedAt    *time.Time // When the signed document was uploaded; nil before.
	ConfirmedAt *time.Time // When the owner confirmed; nil before.
}

// DocumentKey is the object-store key for the signed document of this agreement.
func (n *NDA) DocumentKey() string {
	return NDADocumentKey(n.AssetID, n.Number)
}
