package repository

import (
	"context"

	"dealroom/internal/domain/entity"

	"github.com/google/uuid"
)

// TransactionRepository exposes completed purchases. A purchase record is
// permanent evidence of access; it is only ever read by the entitlement path.
type TransactionRepository interface {
	// FindByAssetAndBuyer retrieves the purchase record for a (asset, buyer)
	// pair, or nil when no purchase exists. Absence is not an error here
	// because the entitlement decision treats it as a normal branch.
	FindByAssetAndBuyer(ctx context.Context, assetID, buyerID uuid.UUID) (*entity.Transaction, error)

	// Create persists a new purchase record.
	Create(ctx context.Context, tx *entity.Transaction) error
}

// InvitationRepository exposes explicit private data-room allow-list entries.
type InvitationRepository interface {
	// FindByAssetAndUser retrieves the invitation for a (asset, user) pair,
	// or nil when the user has not been invited.
	FindByAssetAndUser(ctx context.Context, assetID, userID uuid.UUID) (*entity.PrivateInvitation, error)

	// Create persists a new invitation.
	Create(ctx context.Context, invitation *entity.PrivateInvitation) error

	// Delete removes an invitation. Removing an invitation never revokes
	// access backed by a purchase record.
	Delete(ctx context.Context, assetID, userID uuid.UUID) error
}
