package repository

import (
	"context"
	"errors"

	"dealroom/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrAssetNotFound is a domain-specific error returned when an asset is not found.
var ErrAssetNotFound = errors.New("asset not found")

// AssetRepository defines the standard operations for asset persistence.
type AssetRepository interface {
	// FindByID retrieves a single asset by its unique ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Asset, error)

	// FindByOwner retrieves all assets owned by the given user, newest first.
	FindByOwner(ctx context.Context, ownerID uuid.UUID) ([]*entity.Asset, error)

	// Create persists a new asset entity to the storage.
	Create(ctx context.Context, asset *entity.Asset) error

	// Update modifies an existing asset entity in the storage.
	Update(ctx context.Context, asset *entity.Asset) error
}
