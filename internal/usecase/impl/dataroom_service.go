package impl

import (
	"context"
	"log/slog"

	"dealroom/internal/domain/entity"
	domainerrors "dealroom/internal/domain/errors"
	"dealroom/internal/domain/repository"
	"dealroom/internal/domain/service"
	"dealroom/internal/errors"
	"dealroom/internal/usecase"

	"github.com/google/uuid"
)

type dataRoomService struct {
	assetRepo      repository.AssetRepository
	txRepo         repository.TransactionRepository
	invitationRepo repository.InvitationRepository
	store          service.ObjectStore
	logger         *slog.Logger
}

// NewDataRoomService creates a new data room service instance
func NewDataRoomService(
	assetRepo repository.AssetRepository,
	txRepo repository.TransactionRepository,
	invitationRepo repository.InvitationRepository,
	store service.ObjectStore,
	logger *slog.Logger,
) usecase.DataRoomUsecase {
	return &dataRoomService{
		assetRepo:      assetRepo,
		txRepo:         txRepo,
		invitationRepo: invitationRepo,
		store:          store,
		logger:         logger,
	}
}

// ListPublicFiles lists the public data room of an asset. No gate.
func (s *dataRoomService) ListPublicFiles(ctx context.Context, assetID uuid.UUID) ([]usecase.DataRoomFile, error) {
	return s.listBucket(ctx, entity.PublicBucket(assetID))
}

// ListPrivateFiles lists the private data room, after the entitlement check.
func (s *dataRoomService) ListPrivateFiles(ctx context.Context, principal *service.Principal, assetID uuid.UUID) ([]usecase.DataRoomFile, error) {
	allowed, err := s.CanAccessRestricted(ctx, principal, assetID)
	if err != nil {
		return nil, err
	}
	if !allowed {
		return nil, domainerrors.ErrForbidden.WithDetails("no entitlement to this data room")
	}

	return s.listBucket(ctx, entity.PrivateBucket(assetID))
}

// CanAccessRestricted decides private data-room access. The checks run in a
// fixed order and every call re-reads current state; a purchase or an
// invitation takes effect on the next request with no caching in between.
func (s *dataRoomService) CanAccessRestricted(ctx context.Context, principal *service.Principal, assetID uuid.UUID) (bool, error) {
	userID, err := uuid.Parse(principal.Subject)
	if err != nil {
		return false, domainerrors.ErrInvalidToken.WithDetails("subject claim is not a valid user id")
	}

	asset, err := s.assetRepo.FindByID(ctx, assetID)
	if err != nil {
		if errors.Is(err, repository.ErrAssetNotFound) {
			return false, domainerrors.ErrAssetNotFound
		}

		return false, errors.Wrap(err, "failed to find asset by ID")
	}

	// While the asset is listed, its owner is shut out of the private room
	// so a sale stays blind.
	if asset.IsOwnedBy(userID) && asset.ForSale {
		return false, nil
	}

	// A completed purchase grants access permanently, whatever happened to
	// agreements or invitations since.
	purchase, err := s.txRepo.FindByAssetAndBuyer(ctx, assetID, userID)
	if err != nil {
		return false, errors.Wrap(err, "failed to look up purchase")
	}
	if purchase != nil {
		return true, nil
	}

	invitation, err := s.invitationRepo.FindByAssetAndUser(ctx, assetID, userID)
	if err != nil {
		return false, errors.Wrap(err, "failed to look up invitation")
	}
	if invitation != nil {
		return true, nil
	}

	return false, nil
}

func (s *dataRoomService) listBucket(ctx context.Context, bucket string) ([]usecase.DataRoomFile, error) {
	exists, err := s.store.BucketExists(ctx, bucket)
	if err != nil {
		return nil, domainerrors.ErrStorageFailure.WithDetails(err.Error())
	}
	if !exists {
		return nil, domainerrors.ErrDataRoomNotFound
	}

	objects, err := s.store.ListObjects(ctx, bucket)
	if err != nil {
		if errors.Is(err, service.ErrBucketNotFound) {
			return nil, domainerrors.ErrDataRoomNotFound
		}

		return nil, domainerrors.ErrStorageFailure.WithDetails(err.Error())
	}

	files := make([]usecase.DataRoomFile, 0, len(objects))
	for _, obj := range objects {
		files = append(files, usecase.DataRoomFile{Key: obj.Key, Size: obj.Size})
	}

	return files, nil
}
