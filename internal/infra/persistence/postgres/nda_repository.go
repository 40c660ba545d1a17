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

// ndaRepository implements the repository.NDARepository interface using GORM.
type ndaRepository struct {
	db *gorm.DB
}

// NewNDARepository is the constructor for ndaRepository.
func NewNDARepository(db *gorm.DB) repository.NDARepository {
	return &ndaRepository{
		db: db,
	}
}

// CountByAsset returns the number of agreements ever created for an asset.
func (repo *ndaRepository) CountByAsset(ctx context.Context, assetID uuid.UUID) (int64, error) {
	var count int64

	if err := repo.db.WithContext(ctx).
		Model(&model.NDAModel{}).
		Where("asset_id = ?", assetID).
		Count(&count).Error; err != nil {
		return 0, errors.Wrap(err, "failed to count NDAs for asset")
	}

	return count, nil
}

// Create persists a new agreement. The composite unique index on
// (asset_id, nda_number) surfaces concurrent sequence assignment as
// repository.ErrDuplicateNDANumber so the caller can retry.
func (repo *ndaRepository) Create(ctx context.Context, nda *entity.NDA) error {
	ndaM := fromNDADomain(nda)

	if err := repo.db.WithContext(ctx).Create(ndaM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return repository.ErrDuplicateNDANumber
		}
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrAssetNotFound.WrapMessage("asset or buyer does not exist")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create NDA")
	}

	nda.ID = ndaM.ID

	return nil
}

// Find retrieves the agreement matching the (asset, buyer, number) triple.
func (repo *ndaRepository) Find(ctx context.Context, assetID, buyerID uuid.UUID, number int) (*entity.NDA, error) {
	var ndaM model.NDAModel

	if err := repo.db.WithContext(ctx).
		Where("asset_id = ? AND buyer_id = ? AND nda_number = ?", assetID, buyerID, number).
		First(&ndaM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrNDANotFound
		}

		return nil, errors.Wrap(err, "failed to find NDA")
	}

	return toNDADomain(&ndaM), nil
}

// Update persists lifecycle changes of an agreement.
func (repo *ndaRepository) Update(ctx context.Context, nda *entity.NDA) error {
	ndaM := fromNDADomain(nda)

	if err := repo.db.WithContext(ctx).Save(ndaM).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to update NDA")
	}

	return nil
}

// --- Mapper Functions ---

// toNDADomain converts a GORM NDAModel to a domain NDA entity.
func toNDADomain(data *model.NDAModel) *entity.NDA {
	if data == nil {
		return nil
	}

	return &entity.NDA{
		ID:          data.ID,
		AssetID:     data.AssetID,
		BuyerID:     data.BuyerID,
		Number:      data.NDANumber,
		Status:      entity.NDAStatus(data.Status),
		RequestedAt: data.RequestedAt,
		SignedAt:    data.SignedAt,
		ConfirmedAt: data.ConfirmedAt,
	}
}

// fromNDADomain converts a domain NDA entity to a GORM NDAModel for persistence.
func fromNDADomain(data *entity.NDA) *model.NDAModel {
	if data == nil {
		return nil
	}

	return &model.NDAModel{
		ID:          data.ID,
		AssetID:     data.AssetID,
		BuyerID:     data.BuyerID,
		NDANumber:   data.Number,
		Status:      data.Status.String(),
		RequestedAt: data.RequestedAt,
		SignedAt:    data.SignedAt,
		ConfirmedAt: data.ConfirmedAt,
	}
}
