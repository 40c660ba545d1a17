package impl

import (
	"context"
	"log/slog"
	"time"

	"dealroom/internal/domain/entity"
	domainerrors "dealroom/internal/domain/errors"
	"dealroom/internal/domain/repository"
	"dealroom/internal/domain/service"
	"dealroom/internal/errors"
	"dealroom/internal/usecase"

	"github.com/google/uuid"
)

type assetService struct {
	assetRepo repository.AssetRepository
	store     service.ObjectStore
	logger    *slog.Logger
}

// NewAssetService creates a new asset service instance
func NewAssetService(assetRepo repository.AssetRepository, store service.ObjectStore, logger *slog.Logger) usecase.AssetUsecase {
	return &assetService{
		assetRepo: assetRepo,
		store:     store,
		logger:    logger,
	}
}

// ListMine returns the assets owned by the principal.
func (s *assetService) ListMine(ctx context.Context, principal *service.Principal) ([]*entity.Asset, error) {
	ownerID, err := uuid.Parse(principal.Subject)
	if err != nil {
		return nil, domainerrors.ErrInvalidToken.WithDetails("subject claim is not a valid user id")
	}

	assets, err := s.assetRepo.FindByOwner(ctx, ownerID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to find assets by owner")
	}

	return assets, nil
}

// GetAsset returns a single asset by ID.
func (s *assetService) GetAsset(ctx context.Context, assetID uuid.UUID) (*entity.Asset, error) {
	asset, err := s.assetRepo.FindByID(ctx, assetID)
	if err != nil {
		if errors.Is(err, repository.ErrAssetNotFound) {
			return nil, domainerrors.ErrAssetNotFound
		}

		return nil, errors.Wrap(err, "failed to find asset by ID")
	}

	return asset, nil
}

// UpdateAsset applies an owner-only update of the listing fields.
func (s *assetService) UpdateAsset(ctx context.Context, principal *service.Principal, assetID uuid.UUID, input usecase.UpdateAssetInput) (*entity.Asset, error) {
	asset, err := s.ownedAsset(ctx, principal, assetID)
	if err != nil {
		return nil, err
	}

	if input.Name != nil {
		asset.Name = *input.Name
	}
	if input.Description != nil {
		asset.Description = *input.Description
	}
	asset.UpdatedAt = time.Now()

	if err := s.assetRepo.Update(ctx, asset); err != nil {
		return nil, errors.Wrap(err, "failed to update asset")
	}

	return asset, nil
}

// OfferForSale lists the asset for sale and provisions its data-room
// buckets. Provisioning is idempotent, so re-offering after a partial
// failure completes whatever is missing.
func (s *assetService) OfferForSale(ctx context.Context, principal *service.Principal, assetID uuid.UUID, input usecase.OfferAssetInput) (*entity.Asset, error) {
	asset, err := s.ownedAsset(ctx, principal, assetID)
	if err != nil {
		return nil, err
	}

	price := input.Price
	asset.ForSale = true
	asset.Price = &price
	asset.AdditionalInfo = input.AdditionalInfo
	asset.UpdatedAt = time.Now()

	if err := s.assetRepo.Update(ctx, asset); err != nil {
		return nil, errors.Wrap(err, "failed to update asset")
	}

	for _, bucket := range []string{entity.PublicBucket(assetID), entity.PrivateBucket(assetID)} {
		exists, err := s.store.BucketExists(ctx, bucket)
		if err != nil {
			return nil, domainerrors.ErrStorageFailure.WithDetails(err.Error())
		}
		if exists {
			continue
		}
		if err := s.store.MakeBucket(ctx, bucket); err != nil {
			return nil, domainerrors.ErrStorageFailure.WithDetails(err.Error())
		}
	}

	s.logger.InfoContext(ctx, "Asset offered for sale",
		slog.String("asset_id", assetID.String()),
		slog.Float64("price", price),
	)

	return asset, nil
}

// ownedAsset fetches the asset and verifies the principal owns it.
func (s *assetService) ownedAsset(ctx context.Context, principal *service.Principal, assetID uuid.UUID) (*entity.Asset, error) {
	ownerID, err := uuid.Parse(principal.Subject)
	if err != nil {
		return nil, domainerrors.ErrInvalidToken.WithDetails("subject claim is not a valid user id")
	}

	asset, err := s.assetRepo.FindByID(ctx, assetID)
	if err != nil {
		if errors.Is(err, repository.ErrAssetNotFound) {
			return nil, domainerrors.ErrAssetNotFound
		}

		return nil, errors.Wrap(err, "failed to find asset by ID")
	}

	if !asset.IsOwnedBy(ownerID) {
		return nil, domainerrors.ErrForbidden.WithDetails("only the asset owner may modify the listing")
	}

	return asset, nil
}
