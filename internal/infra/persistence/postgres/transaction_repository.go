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

// transactionRepository implements the repository.TransactionRepository interface using GORM.
type transactionRepository struct {
	db *gorm.DB
}

// NewTransactionRepository is the constructor for transactionRepository.
func NewTransactionRepository(db *gorm.DB) repository.TransactionRepository {
	return &transactionRepository{
		db: db,
	}
}

// FindByAssetAndBuyer retrieves the purchase record for a (asset, buyer) pair.
// Absence is reported as (nil, nil): the entitlement path treats it as a
// normal decision branch, not a failure.
func (repo *transactionRepository) FindByAssetAndBuyer(ctx context.Context, assetID, buyerID uuid.UUID) (*entity.Transaction, error) {
	var txM model.TransactionModel

	if err := repo.db.WithContext(ctx).
		Where("asset_id = ? AND buyer_id = ?", assetID, buyerID).
		First(&txM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}

		return nil, errors.Wrap(err, "failed to find transaction")
	}

	return toTransactionDomain(&txM), nil
}

// Create persists a new purchase record.
func (repo *transactionRepository) Create(ctx context.Context, tx *entity.Transaction) error {
	txM := fromTransactionDomain(tx)

	if err := repo.db.WithContext(ctx).Create(txM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrAssetNotFound.WrapMessage("asset or buyer does not exist")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create transaction")
	}

	tx.ID = txM.ID
	tx.CreatedAt = txM.CreatedAt

	return nil
}

// --- Mapper Functions ---

func toTransactionDomain(data *model.TransactionModel) *entity.Transaction {
	if data == nil {
		return nil
	}

	return &entity.Transaction{
		ID:        data.ID,
		AssetID:   data.AssetID,
		BuyerID:   data.BuyerID,
		Amount:    data.Amount,
		CreatedAt: data.CreatedAt,
	}
}

func fromTransactionDomain(data *entity.Transaction) *model.TransactionModel {
	if data == nil {
		return nil
	}

	return &model.TransactionModel{
		ID:      data.ID,
		AssetID: data.AssetID,
		BuyerID: data.BuyerID,
		Amount:  data.Amount,
	}
}
