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
	"dealroom/internal/util"

	"github.com/google/uuid"
)

// maxSequenceRetries bounds how often a request retries sequence assignment
// after losing a race for the same number.
const maxSequenceRetries = 3

const ndaContentType = "application/pdf"

type ndaService struct {
	txManager repository.TransactionManager
	ndaRepo   repository.NDARepository
	assetRepo repository.AssetRepository
	userRepo  repository.UserRepository
	store     service.ObjectStore
	logger    *slog.Logger
}

// NewNDAService creates a new NDA service instance
func NewNDAService(
	txManager repository.TransactionManager,
	ndaRepo repository.NDARepository,
	assetRepo repository.AssetRepository,
	userRepo repository.UserRepository,
	store service.ObjectStore,
	logger *slog.Logger,
) usecase.NDAUsecase {
	return &ndaService{
		txManager: txManager,
		ndaRepo:   ndaRepo,
		assetRepo: assetRepo,
		userRepo:  userRepo,
		store:     store,
		logger:    logger,
	}
}

// Request creates a new agreement with the asset's next sequence number.
// Both the asset and the buyer must exist.
// The count and the insert run in one transaction; a unique index on
// (asset, number) turns concurrent assignments of the same number into a
// conflict, which is retried with a fresh count.
func (s *ndaService) Request(ctx context.Context, assetID, buyerID uuid.UUID) (*entity.NDA, error) {
	if _, err := s.findAsset(ctx, assetID); err != nil {
		return nil, err
	}
	if _, err := s.userRepo.FindByID(ctx, buyerID); err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, domainerrors.ErrUserNotFound
		}

		return nil, errors.Wrap(err, "failed to find buyer by ID")
	}

	var nda *entity.NDA
	for attempt := 0; attempt < maxSequenceRetries; attempt++ {
		err := s.txManager.Execute(ctx, func(repos repository.RepositoryFactory) error {
			count, err := repos.NDARepo().CountByAsset(ctx, assetID)
			if err != nil {
				return errors.Wrap(err, "failed to count agreements")
			}

			nda = &entity.NDA{
				ID:          uuid.New(),
				AssetID:     assetID,
				BuyerID:     buyerID,
				Number:      int(count) + 1,
				Status:      entity.NDAStatusRequested,
				RequestedAt: time.Now(),
			}

			return repos.NDARepo().Create(ctx, nda)
		})
		if err == nil {
			return nda, nil
		}
		if !errors.Is(err, repository.ErrDuplicateNDANumber) {
			return nil, errors.Wrap(err, "failed to create agreement")
		}

		s.logger.WarnContext(ctx, "Sequence number conflict, retrying",
			slog.String("asset_id", assetID.String()),
			slog.Int("attempt", attempt+1),
		)
	}

	return nil, domainerrors.ErrConflict.WithDetails("could not assign an agreement number, try again")
}

// Upload stores the signed document then marks the agreement signed. The
// ordering matters: if the write fails, the agreement must stay in its
// current state so the buyer can retry.
func (s *ndaService) Upload(ctx context.Context, assetID uuid.UUID, input usecase.UploadNDAInput) (*entity.NDA, error) {
	nda, err := s.findNDA(ctx, assetID, input.BuyerID, input.Number)
	if err != nil {
		return nil, err
	}

	bucket := entity.NDABucket(assetID)
	exists, err := s.store.BucketExists(ctx, bucket)
	if err != nil {
		return nil, domainerrors.ErrStorageFailure.WithDetails(err.Error())
	}
	if !exists {
		if err := s.store.MakeBucket(ctx, bucket); err != nil {
			return nil, domainerrors.ErrStorageFailure.WithDetails(err.Error())
		}
	}

	contentType := input.ContentType
	if contentType == "" {
		contentType = ndaContentType
	}
	checksummed := util.NewChecksumReader(input.Content)
	if err := s.store.PutObject(ctx, bucket, nda.DocumentKey(), checksummed, input.Size, contentType); err != nil {
		return nil, domainerrors.ErrStorageFailure.WithDetails(err.Error())
	}

	now := time.Now()
	nda.Status = entity.NDAStatusSigned
	nda.SignedAt = &now

	if err := s.ndaRepo.Update(ctx, nda); err != nil {
		return nil, errors.Wrap(err, "failed to mark agreement signed")
	}

	s.logger.InfoContext(ctx, "Signed agreement uploaded",
		slog.String("asset_id", assetID.String()),
		slog.Int("nda_number", nda.Number),
		slog.String("sha256", checksummed.Sum()),
		slog.String("size", util.FormatBytes(input.Size)),
	)

	return nda, nil
}

// Confirm moves the agreement to its terminal state.
func (s *ndaService) Confirm(ctx context.Context, assetID, buyerID uuid.UUID, number int) (*entity.NDA, error) {
	nda, err := s.findNDA(ctx, assetID, buyerID, number)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	nda.Status = entity.NDAStatusConfirmed
	nda.ConfirmedAt = &now

	if err := s.ndaRepo.Update(ctx, nda); err != nil {
		return nil, errors.Wrap(err, "failed to confirm agreement")
	}

	return nda, nil
}

// View streams the signed document to the agreement's buyer or the asset's
// owner. A missing object with an existing record is surfaced as not found
// rather than swallowed.
func (s *ndaService) View(ctx context.Context, principal *service.Principal, assetID, buyerID uuid.UUID, number int) (*usecase.NDADocument, error) {
	callerID, err := uuid.Parse(principal.Subject)
	if err != nil {
		return nil, domainerrors.ErrInvalidToken.WithDetails("subject claim is not a valid user id")
	}

	asset, err := s.findAsset(ctx, assetID)
	if err != nil {
		return nil, err
	}

	// The identity check runs before the agreement lookup, so a third party
	// gets Forbidden whether or not the agreement exists.
	if callerID != buyerID && !asset.IsOwnedBy(callerID) {
		return nil, domainerrors.ErrForbidden.WithDetails("only the buyer or the asset owner may view the agreement")
	}

	nda, err := s.findNDA(ctx, assetID, buyerID, number)
	if err != nil {
		return nil, err
	}

	content, err := s.store.GetObject(ctx, entity.NDABucket(assetID), nda.DocumentKey())
	if err != nil {
		if errors.Is(err, service.ErrObjectNotFound) || errors.Is(err, service.ErrBucketNotFound) {
			return nil, domainerrors.ErrNDADocumentNotFound
		}

		return nil, domainerrors.ErrStorageFailure.WithDetails(err.Error())
	}

	return &usecase.NDADocument{
		NDA:         nda,
		Content:     content,
		ContentType: ndaContentType,
	}, nil
}

func (s *ndaService) findAsset(ctx context.Context, assetID uuid.UUID) (*entity.Asset, error) {
	asset, err := s.assetRepo.FindByID(ctx, assetID)
	if err != nil {
		if errors.Is(err, repository.ErrAssetNotFound) {
			return nil, domainerrors.ErrAssetNotFound
		}

		return nil, errors.Wrap(err, "failed to find asset by ID")
	}

	return asset, nil
}

func (s *ndaService) findNDA(ctx context.Context, assetID, buyerID uuid.UUID, number int) (*entity.NDA, error) {
	nda, err := s.ndaRepo.Find(ctx, assetID, buyerID, number)
	if err != nil {
		if errors.Is(err, repository.ErrNDANotFound) {
			return nil, domainerrors.ErrNDANotFound
		}

		return nil, errors.Wrap(err, "failed to find agreement")
	}

	return nda, nil
}
