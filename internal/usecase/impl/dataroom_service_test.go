package impl

import (
	"context"
	"log/slog"
	"testing"

	"dealroom/internal/domain/entity"
	domainerrors "dealroom/internal/domain/errors"
	"dealroom/internal/domain/repository"
	"dealroom/internal/domain/service"
	mockRepo "dealroom/internal/mocks/repository"
	mockService "dealroom/internal/mocks/service"
	"dealroom/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// dataRoomServiceFixtures holds all test dependencies for data room service tests.
type dataRoomServiceFixtures struct {
	service        usecase.DataRoomUsecase
	assetRepo      *mockRepo.MockAssetRepository
	txRepo         *mockRepo.MockTransactionRepository
	invitationRepo *mockRepo.MockInvitationRepository
	store          *mockService.MockObjectStore
}

func createTestDataRoomService(t *testing.T) dataRoomServiceFixtures {
	assetRepo := mockRepo.NewMockAssetRepository(t)
	txRepo := mockRepo.NewMockTransactionRepository(t)
	invitationRepo := mockRepo.NewMockInvitationRepository(t)
	store := mockService.NewMockObjectStore(t)
	service := NewDataRoomService(assetRepo, txRepo, invitationRepo, store, slog.Default())

	return dataRoomServiceFixtures{
		service:        service,
		assetRepo:      assetRepo,
		txRepo:         txRepo,
		invitationRepo: invitationRepo,
		store:          store,
	}
}

// The owner of a listed asset is denied before any grant is consulted, so
// the sale stays blind even if the owner also holds a purchase record.
func TestDataRoomService_Access_ListedAssetOwnerDenied(t *testing.T) {
	fx := createTestDataRoomService(t)

	ctx := context.Background()
	ownerID := uuid.New()
	asset := &entity.Asset{ID: uuid.New(), OwnerID: ownerID, ForSale: true}

	fx.assetRepo.EXPECT().FindByID(ctx, asset.ID).Return(asset, nil)

	allowed, err := fx.service.CanAccessRestricted(ctx, buyerPrincipal(ownerID), asset.ID)
	require.NoError(t, err)
	assert.False(t, allowed)
}

func TestDataRoomService_Access_PurchaseGrantsAccess(t *testing.T) {
	fx := createTestDataRoomService(t)

	ctx := context.Background()
	buyerID := uuid.New()
	asset := &entity.Asset{ID: uuid.New(), OwnerID: uuid.New(), ForSale: true}

	fx.assetRepo.EXPECT().FindByID(ctx, asset.ID).Return(asset, nil)
	fx.txRepo.EXPECT().
		FindByAssetAndBuyer(ctx, asset.ID, buyerID).
		Return(&entity.Transaction{AssetID: asset.ID, BuyerID: buyerID}, nil)

	allowed, err := fx.service.CanAccessRestricted(ctx, buyerPrincipal(buyerID), asset.ID)
	require.NoError(t, err)
	assert.True(t, allowed)
}

func TestDataRoomService_Access_InvitationGrantsAccess(t *testing.T) {
	fx := createTestDataRoomService(t)

	ctx := context.Background()
	userID := uuid.New()
	asset := &entity.Asset{ID: uuid.New(), OwnerID: uuid.New(), ForSale: true}

	fx.assetRepo.EXPECT().FindByID(ctx, asset.ID).Return(asset, nil)
	fx.txRepo.EXPECT().FindByAssetAndBuyer(ctx, asset.ID, userID).Return(nil, nil)
	fx.invitationRepo.EXPECT().
		FindByAssetAndUser(ctx, asset.ID, userID).
		Return(&entity.PrivateInvitation{AssetID: asset.ID, InvitedUserID: userID}, nil)

	allowed, err := fx.service.CanAccessRestricted(ctx, buyerPrincipal(userID), asset.ID)
	require.NoError(t, err)
	assert.True(t, allowed)
}

func TestDataRoomService_Access_StrangerDenied(t *testing.T) {
	fx := createTestDataRoomService(t)

	ctx := context.Background()
	userID := uuid.New()
	asset := &entity.Asset{ID: uuid.New(), OwnerID: uuid.New(), ForSale: true}

	fx.assetRepo.EXPECT().FindByID(ctx, asset.ID).Return(asset, nil)
	fx.txRepo.EXPECT().FindByAssetAndBuyer(ctx, asset.ID, userID).Return(nil, nil)
	fx.invitationRepo.EXPECT().FindByAssetAndUser(ctx, asset.ID, userID).Return(nil, nil)

	allowed, err := fx.service.CanAccessRestricted(ctx, buyerPrincipal(userID), asset.ID)
	require.NoError(t, err)
	assert.False(t, allowed)
}

// The owner of an unlisted asset gets no implicit grant either: with no
// purchase and no invitation the decision falls through to deny.
func TestDataRoomService_Access_UnlistedAssetOwnerFallsThrough(t *testing.T) {
	fx := createTestDataRoomService(t)

	ctx := context.Background()
	ownerID := uuid.New()
	asset := &entity.Asset{ID: uuid.New(), OwnerID: ownerID, ForSale: false}

	fx.assetRepo.EXPECT().FindByID(ctx, asset.ID).Return(asset, nil)
	fx.txRepo.EXPECT().FindByAssetAndBuyer(ctx, asset.ID, ownerID).Return(nil, nil)
	fx.invitationRepo.EXPECT().FindByAssetAndUser(ctx, asset.ID, ownerID).Return(nil, nil)

	allowed, err := fx.service.CanAccessRestricted(ctx, buyerPrincipal(ownerID), asset.ID)
	require.NoError(t, err)
	assert.False(t, allowed)
}

func TestDataRoomService_Access_UnknownAsset(t *testing.T) {
	fx := createTestDataRoomService(t)

	ctx := context.Background()
	assetID := uuid.New()

	fx.assetRepo.EXPECT().FindByID(ctx, assetID).Return(nil, repository.ErrAssetNotFound)

	_, err := fx.service.CanAccessRestricted(ctx, buyerPrincipal(uuid.New()), assetID)
	assert.ErrorIs(t, err, domainerrors.ErrAssetNotFound)
}

func TestDataRoomService_ListPublicFiles(t *testing.T) {
	fx := createTestDataRoomService(t)

	ctx := context.Background()
	assetID := uuid.New()
	bucket := entity.PublicBucket(assetID)

	fx.store.EXPECT().BucketExists(ctx, bucket).Return(true, nil)
	fx.store.EXPECT().ListObjects(ctx, bucket).Return([]service.ObjectInfo{
		{Key: "teaser.pdf", Size: 2048},
		{Key: "summary.md", Size: 512},
	}, nil)

	files, err := fx.service.ListPublicFiles(ctx, assetID)
	require.NoError(t, err)
	require.Len(t, files, 2)
	assert.Equal(t, "teaser.pdf", files[0].Key)
	assert.Equal(t, int64(2048), files[0].Size)
}

func TestDataRoomService_ListPublicFiles_NoRoom(t *testing.T) {
	fx := createTestDataRoomService(t)

	ctx := context.Background()
	assetID := uuid.New()

	fx.store.EXPECT().BucketExists(ctx, entity.PublicBucket(assetID)).Return(false, nil)

	_, err := fx.service.ListPublicFiles(ctx, assetID)
	assert.ErrorIs(t, err, domainerrors.ErrDataRoomNotFound)
}

func TestDataRoomService_ListPrivateFiles_EntitledUser(t *testing.T) {
	fx := createTestDataRoomService(t)

	ctx := context.Background()
	buyerID := uuid.New()
	asset := &entity.Asset{ID: uuid.New(), OwnerID: uuid.New(), ForSale: true}
	bucket := entity.PrivateBucket(asset.ID)

	fx.assetRepo.EXPECT().FindByID(ctx, asset.ID).Return(asset, nil)
	fx.txRepo.EXPECT().
		FindByAssetAndBuyer(ctx, asset.ID, buyerID).
		Return(&entity.Transaction{AssetID: asset.ID, BuyerID: buyerID}, nil)
	fx.store.EXPECT().BucketExists(ctx, bucket).Return(true, nil)
	fx.store.EXPECT().ListObjects(ctx, bucket).Return([]service.ObjectInfo{
		{Key: "financials.xlsx", Size: 4096},
	}, nil)

	files, err := fx.service.ListPrivateFiles(ctx, buyerPrincipal(buyerID), asset.ID)
	require.NoError(t, err)
	require.Len(t, files, 1)
	assert.Equal(t, "financials.xlsx", files[0].Key)
}

func TestDataRoomService_ListPrivateFiles_DeniedUser(t *testing.T) {
	fx := createTestDataRoomService(t)

	ctx := context.Background()
	userID := uuid.New()
	asset := &entity.Asset{ID: uuid.New(), OwnerID: uuid.New(), ForSale: true}

	fx.assetRepo.EXPECT().FindByID(ctx, asset.ID).Return(asset, nil)
	fx.txRepo.EXPECT().FindByAssetAndBuyer(ctx, asset.ID, userID).Return(nil, nil)
	fx.invitationRepo.EXPECT().FindByAssetAndUser(ctx, asset.ID, userID).Return(nil, nil)

	_, err := fx.service.ListPrivateFiles(ctx, buyerPrincipal(userID), asset.ID)
	assert.ErrorIs(t, err, domainerrors.ErrForbidden)
}
