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

// invitationRepository implements the repository.InvitationRepository interface using GORM.
type invitationRepository struct {
	db *gorm.DB
}

// NewInvitationRepository is the constructor for invitationRepository.
func NewInvitationRepository(db *gorm.DB) repository.InvitationRepository {
	return &invitationRepository{
		db: db,
	}
}

// FindByAssetAndUser retrieves the invitation for a (asset, user) pair.
// Absence is reported as (nil, nil); see TransactionRepository.
func (repo *invitationRepository) FindByAssetAndUser(ctx context.Context, assetID, userID uuid.UUID) (*entity.PrivateInvitation, error) {
	var invM model.PrivateInvitationModel

	if err := repo.db.WithContext(ctx).
		Where("asset_id = ? AND invited_user_id = ?", assetID, userID).
		First(&invM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}

		return nil, errors.Wrap(err, "failed to find invitation")
	}

	return toInvitationDomain(&invM), nil
}

// Create persists a new invitation.
func (repo *invitationRepository) Create(ctx context.Context, invitation *entity.PrivateInvitation) error {
	invM := fromInvitationDomain(invitation)

	if err := repo.db.WithContext(ctx).Create(invM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			// Inviting the same user twice is a no-op from the caller's view.
			return nil
		}
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrAssetNotFound.WrapMessage("asset or invited user does not exist")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create invitation")
	}

	invitation.ID = invM.ID
	invitation.CreatedAt = invM.CreatedAt

	return nil
}

// Delete removes an invitation.
func (repo *invitationRepository) Delete(ctx context.Context, assetID, userID uuid.UUID) error {
	if err := repo.db.WithContext(ctx).
		Where("asset_id = ? AND invited_user_id = ?", assetID, userID).
		Delete(&model.PrivateInvitationModel{}).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to delete invitation")
	}

	return nil
}

// --- Mapper Functions ---

func toInvitationDomain(data *model.PrivateInvitationModel) *entity.PrivateInvitation {
	if data == nil {
		return nil
	}

	return &entity.PrivateInvitation{
		ID:            data.ID,
		AssetID:       data.AssetID,
		InvitedUserID: data.InvitedUserID,
		CreatedAt:     data.CreatedAt,
	}
}

func fromInvitationDomain(data *entity.PrivateInvitation) *model.PrivateInvitationModel {
	if data == nil {
		return nil
	}

	return &model.PrivateInvitationModel{
		ID:            data.ID,
		AssetID:       data.AssetID,
		InvitedUserID: data.InvitedUserID,
	}
}
