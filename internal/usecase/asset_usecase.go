package usecase

import (
	"context"

	"dealroom/internal/domain/entity"
	"dealroom/internal/domain/service"

	"github.com/google/uuid"
)

// UpdateAssetInput carries the owner-editable listing fields. Nil pointers
// leave the current value untouched.
type UpdateAssetInput struct {
	Name        *string
	Description *string
}

// OfferAssetInput defines the data required to list an asset for sale.
type OfferAssetInput struct {
	Price          float64
	AdditionalInfo string
}

// AssetUsecase defines the interface for asset listing operations.
type AssetUsecase interface {
	// ListMine returns the assets owned by the authenticated principal.
	ListMine(ctx context.Context, principal *service.Principal) ([]*entity.Asset, error)

	// GetAsset returns a single asset by ID.
	GetAsset(ctx context.Context, assetID uuid.UUID) (*entity.Asset, error)

	// UpdateAsset applies an owner-only update of the listing fields.
	UpdateAsset(ctx context.Context, principal *service.Principal, assetID uuid.UUID, input UpdateAssetInput) (*entity.Asset, error)

	// OfferForSale lists the asset for sale and provisions its public and
	// private data-room buckets. Re-offering an already listed asset is
	// safe: bucket provisioning is idempotent.
	OfferForSale(ctx context.Context, principal *service.Principal, assetID uuid.UUID, input OfferAssetInput) (*entity.Asset, error)
}
