package repository

import (
	"context"
	"errors"

	"dealroom/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrNDANotFound is returned when no agreement matches a (asset, buyer, number) triple.
var ErrNDANotFound = errors.New("nda not found")

// ErrDuplicateNDANumber is returned when an insert collides with an existing
// (asset, number) pair. Callers retry sequence assignment on this error.
var ErrDuplicateNDANumber = errors.New("nda number already taken for this asset")

// NDARepository defines the standard operations for agreement persistence.
type NDARepository interface {
	// CountByAsset returns the number of agreements ever created for an asset.
	// The next sequence number is CountByAsset+1; the read must happen inside
	// the same transaction as the subsequent Create.
	CountByAsset(ctx context.Context, assetID uuid.UUID) (int64, error)

	// Create persists a new agreement. Returns ErrDuplicateNDANumber when a
	// concurrent request already claimed the same (asset, number) pair.
	Create(ctx context.Context, nda *entity.NDA) error

	// Find retrieves the agreement matching the (asset, buyer, number) triple.
	Find(ctx context.Context, assetID, buyerID uuid.UUID, number int) (*entity.NDA, error)

	// Update persists lifecycle changes (status and timestamps) of an agreement.
	Update(ctx context.Context, nda *entity.NDA) error
}
