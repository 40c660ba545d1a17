package postgres

import (
	"context"

	"dealroom/internal/domain/entity"
	domainerrors "dealroom/internal/domain/errors"
	"dealroom/internal/domain/repository"
	"dealroom/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// assetRepository implements the repository.AssetRepository interface using GORM.
type assetRepository struct {
	db *gorm.DB
}

// NewAssetRepository is the constructor for assetRepository.
func NewAssetRepository(db *gorm.DB) repository.AssetRepository {
	return &assetRepository{
		db: db,
	}
}

// FindByID retrieves a single asset by its unique ID.
func (repo *assetRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Asset, error) {
	var assetM model.AssetModel

	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&assetM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrAssetNotFound
		}

		return nil, errors.Wrap(err, "failed to find asset by ID")
	}

	return toAssetDomain(&assetM), nil
}

// FindByOwner retrieves all assets owned by the given user, newest first.
func (repo *assetRepository) FindByOwner(ctx context.Context, ownerID uuid.UUID) ([]*entity.Asset, error) {
	var assetModels []*model.AssetModel

	if err := repo.db.WithContext(ctx).
		Where("owner_id = ?", ownerID).
		Order("created_at DESC").
		Find(&assetModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find assets by owner")
	}

	assets := make([]*entity.Asset, 0, len(assetModels))
	for _, assetM := range assetModels {
		assets = append(assets, toAssetDomain(assetM))
	}

	return assets, nil
}

// Create persists a new asset entity to the database.
func (repo *assetRepository) Create(ctx context.Context, asset *entity.Asset) error {
	assetM := fromAssetDomain(asset)

	if err := repo.db.WithContext(ctx).Create(assetM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrUserNotFound.WrapMessage("asset owner does not exist")
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("missing required asset information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create asset")
	}

	asset.ID = assetM.ID
	asset.CreatedAt = assetM.CreatedAt
	asset.UpdatedAt = assetM.UpdatedAt

	return nil
}

// Update modifies an existing asset entity in the database.
func (repo *assetRepository) Update(ctx context.Context, asset *entity.Asset) error {
	assetM := fromAssetDomain(asset)

	if err := repo.db.WithContext(ctx).Save(assetM).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to update asset")
	}

	asset.UpdatedAt = assetM.UpdatedAt

	return nil
}

// --- Mapper Functions ---

// toAssetDomain converts a GORM AssetModel to a domain Asset entity.
func toAssetDomain(data *model.AssetModel) *entity.Asset {
	if data == nil {
		return nil
	}

	return &entity.Asset{
		ID:             data.ID,
		Name:           data.Name,
		Description:    data.Description,
		ForSale:        data.ForSale,
		Price:          data.Price,
		AdditionalInfo: data.AdditionalInfo,
		OwnerID:        data.OwnerID,
		CreatedAt:      data.CreatedAt,
		UpdatedAt:      data.UpdatedAt,
	}
}

// fromAssetDomain converts a domain Asset entity to a GORM AssetModel for persistence.
func fromAssetDomain(data *entity.Asset) *model.AssetModel {
	if data == nil {
		return nil
	}

	return &model.AssetModel{
		ID:             data.ID,
		Name:           data.Name,
		Description:    data.Description,
		ForSale:        data.ForSale,
		Price:          data.Price,
		AdditionalInfo: data.AdditionalInfo,
		OwnerID:        data.OwnerID,
	}
}
