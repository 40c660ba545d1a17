package impl

import (
	"bytes"
	"context"
	"io"
	"log/slog"
	"strings"
	"testing"

	"dealroom/internal/domain/entity"
	domainerrors "dealroom/internal/domain/errors"
	"dealroom/internal/domain/repository"
	"dealroom/internal/domain/service"
	mockRepo "dealroom/internal/mocks/repository"
	mockService "dealroom/internal/mocks/service"
	"dealroom/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// ndaServiceFixtures holds all test dependencies for NDA service tests.
type ndaServiceFixtures struct {
	service   usecase.NDAUsecase
	txManager *mockRepo.MockTransactionManager
	factory   *mockRepo.MockRepositoryFactory
	ndaRepo   *mockRepo.MockNDARepository
	assetRepo *mockRepo.MockAssetRepository
	userRepo  *mockRepo.MockUserRepository
	store     *mockService.MockObjectStore
}

func createTestNDAService(t *testing.T) ndaServiceFixtures {
	txManager := mockRepo.NewMockTransactionManager(t)
	factory := mockRepo.NewMockRepositoryFactory(t)
	ndaRepo := mockRepo.NewMockNDARepository(t)
	assetRepo := mockRepo.NewMockAssetRepository(t)
	userRepo := mockRepo.NewMockUserRepository(t)
	store := mockService.NewMockObjectStore(t)
	service := NewNDAService(txManager, ndaRepo, assetRepo, userRepo, store, slog.Default())

	return ndaServiceFixtures{
		service:   service,
		txManager: txManager,
		factory:   factory,
		ndaRepo:   ndaRepo,
		assetRepo: assetRepo,
		userRepo:  userRepo,
		store:     store,
	}
}

// passThroughTx makes the transaction manager run the callback against the
// mocked repository factory, as a committed transaction would.
func (f ndaServiceFixtures) passThroughTx(ctx context.Context) {
	f.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(_ context.Context, fn func(repository.RepositoryFactory) error) error {
			return fn(f.factory)
		})
}

func testAsset(ownerID uuid.UUID) *entity.Asset {
	return &entity.Asset{
		ID:      uuid.New(),
		Name:    "turbine-blueprints",
		OwnerID: ownerID,
	}
}

func buyerPrincipal(id uuid.UUID) *service.Principal {
	return &service.Principal{
		Subject: id.String(),
		Roles:   entity.Roles{entity.RoleBuyer},
	}
}

func TestNDAService_Request_AssignsNextNumber(t *testing.T) {
	fx := createTestNDAService(t)

	ctx := context.Background()
	asset := testAsset(uuid.New())
	buyerID := uuid.New()

	fx.assetRepo.EXPECT().FindByID(ctx, asset.ID).Return(asset, nil)
	fx.userRepo.EXPECT().FindByID(ctx, buyerID).Return(testUser(buyerID), nil)
	fx.passThroughTx(ctx)
	fx.factory.EXPECT().NDARepo().Return(fx.ndaRepo)
	fx.ndaRepo.EXPECT().CountByAsset(ctx, asset.ID).Return(int64(2), nil)
	fx.ndaRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.NDA")).
		Return(nil)

	nda, err := fx.service.Request(ctx, asset.ID, buyerID)
	require.NoError(t, err)
	assert.Equal(t, 3, nda.Number)
	assert.Equal(t, entity.NDAStatusRequested, nda.Status)
	assert.Equal(t, buyerID, nda.BuyerID)
	assert.False(t, nda.RequestedAt.IsZero())
	assert.Nil(t, nda.SignedAt)
	assert.Nil(t, nda.ConfirmedAt)
}

func TestNDAService_Request_FirstAgreementGetsNumberOne(t *testing.T) {
	fx := createTestNDAService(t)

	ctx := context.Background()
	asset := testAsset(uuid.New())
	buyerID := uuid.New()

	fx.assetRepo.EXPECT().FindByID(ctx, asset.ID).Return(asset, nil)
	fx.userRepo.EXPECT().FindByID(ctx, buyerID).Return(testUser(buyerID), nil)
	fx.passThroughTx(ctx)
	fx.factory.EXPECT().NDARepo().Return(fx.ndaRepo)
	fx.ndaRepo.EXPECT().CountByAsset(ctx, asset.ID).Return(int64(0), nil)
	fx.ndaRepo.EXPECT().Create(ctx, mock.AnythingOfType("*entity.NDA")).Return(nil)

	nda, err := fx.service.Request(ctx, asset.ID, buyerID)
	require.NoError(t, err)
	assert.Equal(t, 1, nda.Number)
}

func TestNDAService_Request_RetriesOnSequenceConflict(t *testing.T) {
	fx := createTestNDAService(t)

	ctx := context.Background()
	asset := testAsset(uuid.New())
	buyerID := uuid.New()

	fx.assetRepo.EXPECT().FindByID(ctx, asset.ID).Return(asset, nil)
	fx.userRepo.EXPECT().FindByID(ctx, buyerID).Return(testUser(buyerID), nil)
	fx.passThroughTx(ctx)
	fx.factory.EXPECT().NDARepo().Return(fx.ndaRepo)

	// Another request claims number 2 between our count and our insert; the
	// second attempt re-counts and wins number 3.
	fx.ndaRepo.EXPECT().CountByAsset(ctx, asset.ID).Return(int64(1), nil).Once()
	fx.ndaRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.NDA")).
		Return(repository.ErrDuplicateNDANumber).
		Once()
	fx.ndaRepo.EXPECT().CountByAsset(ctx, asset.ID).Return(int64(2), nil).Once()
	fx.ndaRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.NDA")).
		Return(nil).
		Once()

	nda, err := fx.service.Request(ctx, asset.ID, buyerID)
	require.NoError(t, err)
	assert.Equal(t, 3, nda.Number)
}

func TestNDAService_Request_GivesUpAfterBoundedRetries(t *testing.T) {
	fx := createTestNDAService(t)

	ctx := context.Background()
	asset := testAsset(uuid.New())
	buyerID := uuid.New()

	fx.assetRepo.EXPECT().FindByID(ctx, asset.ID).Return(asset, nil)
	fx.userRepo.EXPECT().FindByID(ctx, buyerID).Return(testUser(buyerID), nil)
	fx.factory.EXPECT().NDARepo().Return(fx.ndaRepo)
	fx.passThroughTx(ctx)
	fx.ndaRepo.EXPECT().CountByAsset(ctx, asset.ID).Return(int64(1), nil).Times(maxSequenceRetries)
	fx.ndaRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.NDA")).
		Return(repository.ErrDuplicateNDANumber).
		Times(maxSequenceRetries)

	_, err := fx.service.Request(ctx, asset.ID, buyerID)
	assert.ErrorIs(t, err, domainerrors.ErrConflict)
}

// An agreement can only be requested for a registered buyer; a request
// naming an unknown user is rejected before any number is assigned.
func TestNDAService_Request_UnknownBuyer(t *testing.T) {
	fx := createTestNDAService(t)

	ctx := context.Background()
	asset := testAsset(uuid.New())
	buyerID := uuid.New()

	fx.assetRepo.EXPECT().FindByID(ctx, asset.ID).Return(asset, nil)
	fx.userRepo.EXPECT().FindByID(ctx, buyerID).Return(nil, repository.ErrUserNotFound)

	_, err := fx.service.Request(ctx, asset.ID, buyerID)
	assert.ErrorIs(t, err, domainerrors.ErrUserNotFound)
}

func TestNDAService_Request_UnknownAsset(t *testing.T) {
	fx := createTestNDAService(t)

	ctx := context.Background()
	assetID := uuid.New()

	fx.assetRepo.EXPECT().FindByID(ctx, assetID).Return(nil, repository.ErrAssetNotFound)

	_, err := fx.service.Request(ctx, assetID, uuid.New())
	assert.ErrorIs(t, err, domainerrors.ErrAssetNotFound)
}

func TestNDAService_Upload_RequiresPriorRequest(t *testing.T) {
	fx := createTestNDAService(t)

	ctx := context.Background()
	assetID := uuid.New()
	buyerID := uuid.New()

	fx.ndaRepo.EXPECT().Find(ctx, assetID, buyerID, 1).Return(nil, repository.ErrNDANotFound)

	_, err := fx.service.Upload(ctx, assetID, usecase.UploadNDAInput{
		BuyerID: buyerID,
		Number:  1,
		Content: strings.NewReader("%PDF-1.7"),
		Size:    8,
	})
	assert.ErrorIs(t, err, domainerrors.ErrNDANotFound)
}

func TestNDAService_Upload_StoresDocumentThenMarksSigned(t *testing.T) {
	fx := createTestNDAService(t)

	ctx := context.Background()
	assetID := uuid.New()
	buyerID := uuid.New()
	nda := &entity.NDA{
		ID:      uuid.New(),
		AssetID: assetID,
		BuyerID: buyerID,
		Number:  2,
		Status:  entity.NDAStatusRequested,
	}
	bucket := entity.NDABucket(assetID)

	fx.ndaRepo.EXPECT().Find(ctx, assetID, buyerID, 2).Return(nda, nil)
	fx.store.EXPECT().BucketExists(ctx, bucket).Return(false, nil)
	fx.store.EXPECT().MakeBucket(ctx, bucket).Return(nil)
	fx.store.EXPECT().
		PutObject(ctx, bucket, nda.DocumentKey(), mock.Anything, int64(8), "application/pdf").
		Return(nil)
	fx.ndaRepo.EXPECT().
		Update(ctx, mock.AnythingOfType("*entity.NDA")).
		Run(func(_ context.Context, updated *entity.NDA) {
			assert.Equal(t, entity.NDAStatusSigned, updated.Status)
			assert.NotNil(t, updated.SignedAt)
		}).
		Return(nil)

	updated, err := fx.service.Upload(ctx, assetID, usecase.UploadNDAInput{
		BuyerID: buyerID,
		Number:  2,
		Content: bytes.NewReader([]byte("%PDF-1.7")),
		Size:    8,
	})
	require.NoError(t, err)
	assert.Equal(t, entity.NDAStatusSigned, updated.Status)
}

func TestNDAService_Upload_StorageFailureLeavesStateUntouched(t *testing.T) {
	fx := createTestNDAService(t)

	ctx := context.Background()
	assetID := uuid.New()
	buyerID := uuid.New()
	nda := &entity.NDA{
		ID:      uuid.New(),
		AssetID: assetID,
		BuyerID: buyerID,
		Number:  1,
		Status:  entity.NDAStatusRequested,
	}
	bucket := entity.NDABucket(assetID)

	fx.ndaRepo.EXPECT().Find(ctx, assetID, buyerID, 1).Return(nda, nil)
	fx.store.EXPECT().BucketExists(ctx, bucket).Return(true, nil)
	fx.store.EXPECT().
		PutObject(ctx, bucket, nda.DocumentKey(), mock.Anything, int64(8), "application/pdf").
		Return(errors.New("connection reset"))

	// No Update expectation: the agreement must stay requested so the
	// buyer can retry the upload.
	_, err := fx.service.Upload(ctx, assetID, usecase.UploadNDAInput{
		BuyerID: buyerID,
		Number:  1,
		Content: strings.NewReader("%PDF-1.7"),
		Size:    8,
	})
	assert.ErrorIs(t, err, domainerrors.ErrStorageFailure)
	assert.Equal(t, entity.NDAStatusRequested, nda.Status)
	assert.Nil(t, nda.SignedAt)
}

func TestNDAService_Confirm_MovesToTerminalState(t *testing.T) {
	fx := createTestNDAService(t)

	ctx := context.Background()
	assetID := uuid.New()
	buyerID := uuid.New()
	nda := &entity.NDA{
		ID:      uuid.New(),
		AssetID: assetID,
		BuyerID: buyerID,
		Number:  1,
		Status:  entity.NDAStatusSigned,
	}

	fx.ndaRepo.EXPECT().Find(ctx, assetID, buyerID, 1).Return(nda, nil)
	fx.ndaRepo.EXPECT().Update(ctx, mock.AnythingOfType("*entity.NDA")).Return(nil)

	confirmed, err := fx.service.Confirm(ctx, assetID, buyerID, 1)
	require.NoError(t, err)
	assert.Equal(t, entity.NDAStatusConfirmed, confirmed.Status)
	assert.NotNil(t, confirmed.ConfirmedAt)
}

// Confirm performs no caller checks: whoever reaches the endpoint with a
// valid token can confirm any agreement, including one that has not been
// signed yet. Both behaviors are intentional ports and this test documents
// them.
func TestNDAService_Confirm_NoCallerOrStatusCheck(t *testing.T) {
	fx := createTestNDAService(t)

	ctx := context.Background()
	assetID := uuid.New()
	buyerID := uuid.New()
	nda := &entity.NDA{
		ID:      uuid.New(),
		AssetID: assetID,
		BuyerID: buyerID,
		Number:  1,
		Status:  entity.NDAStatusRequested,
	}

	fx.ndaRepo.EXPECT().Find(ctx, assetID, buyerID, 1).Return(nda, nil)
	fx.ndaRepo.EXPECT().Update(ctx, mock.AnythingOfType("*entity.NDA")).Return(nil)

	confirmed, err := fx.service.Confirm(ctx, assetID, buyerID, 1)
	require.NoError(t, err)
	assert.Equal(t, entity.NDAStatusConfirmed, confirmed.Status)
}

func TestNDAService_View_BuyerCanView(t *testing.T) {
	fx := createTestNDAService(t)

	ctx := context.Background()
	ownerID := uuid.New()
	buyerID := uuid.New()
	asset := testAsset(ownerID)
	nda := &entity.NDA{AssetID: asset.ID, BuyerID: buyerID, Number: 1, Status: entity.NDAStatusSigned}

	fx.assetRepo.EXPECT().FindByID(ctx, asset.ID).Return(asset, nil)
	fx.ndaRepo.EXPECT().Find(ctx, asset.ID, buyerID, 1).Return(nda, nil)
	fx.store.EXPECT().
		GetObject(ctx, entity.NDABucket(asset.ID), nda.DocumentKey()).
		Return(io.NopCloser(strings.NewReader("%PDF-1.7")), nil)

	doc, err := fx.service.View(ctx, buyerPrincipal(buyerID), asset.ID, buyerID, 1)
	require.NoError(t, err)
	defer doc.Content.Close()

	content, err := io.ReadAll(doc.Content)
	require.NoError(t, err)
	assert.Equal(t, "%PDF-1.7", string(content))
	assert.Equal(t, "application/pdf", doc.ContentType)
}

func TestNDAService_View_OwnerCanView(t *testing.T) {
	fx := createTestNDAService(t)

	ctx := context.Background()
	ownerID := uuid.New()
	buyerID := uuid.New()
	asset := testAsset(ownerID)
	nda := &entity.NDA{AssetID: asset.ID, BuyerID: buyerID, Number: 1, Status: entity.NDAStatusSigned}

	fx.assetRepo.EXPECT().FindByID(ctx, asset.ID).Return(asset, nil)
	fx.ndaRepo.EXPECT().Find(ctx, asset.ID, buyerID, 1).Return(nda, nil)
	fx.store.EXPECT().
		GetObject(ctx, entity.NDABucket(asset.ID), nda.DocumentKey()).
		Return(io.NopCloser(strings.NewReader("%PDF-1.7")), nil)

	doc, err := fx.service.View(ctx, buyerPrincipal(ownerID), asset.ID, buyerID, 1)
	require.NoError(t, err)
	doc.Content.Close()
}

// A third party is rejected before the agreement is even looked up: no
// Find expectation is set here, and the answer is Forbidden whether or not
// the (asset, buyer, number) triple exists.
func TestNDAService_View_StrangerForbidden(t *testing.T) {
	fx := createTestNDAService(t)

	ctx := context.Background()
	asset := testAsset(uuid.New())
	buyerID := uuid.New()

	fx.assetRepo.EXPECT().FindByID(ctx, asset.ID).Return(asset, nil)

	_, err := fx.service.View(ctx, buyerPrincipal(uuid.New()), asset.ID, buyerID, 1)
	assert.ErrorIs(t, err, domainerrors.ErrForbidden)
}

func TestNDAService_View_MissingDocumentSurfaced(t *testing.T) {
	fx := createTestNDAService(t)

	ctx := context.Background()
	buyerID := uuid.New()
	asset := testAsset(uuid.New())
	nda := &entity.NDA{AssetID: asset.ID, BuyerID: buyerID, Number: 1, Status: entity.NDAStatusSigned}

	fx.assetRepo.EXPECT().FindByID(ctx, asset.ID).Return(asset, nil)
	fx.ndaRepo.EXPECT().Find(ctx, asset.ID, buyerID, 1).Return(nda, nil)
	fx.store.EXPECT().
		GetObject(ctx, entity.NDABucket(asset.ID), nda.DocumentKey()).
		Return(nil, service.ErrObjectNotFound)

	_, err := fx.service.View(ctx, buyerPrincipal(buyerID), asset.ID, buyerID, 1)
	assert.ErrorIs(t, err, domainerrors.ErrNDADocumentNotFound)
}
