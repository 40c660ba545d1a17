package usecase

import (
	"context"

	"dealroom/internal/domain/service"

	"github.com/google/uuid"
)

// DataRoomFile is one listed object in a data room.
type DataRoomFile struct {
	Key  string
	Size int64
}

// DataRoomUsecase resolves entitlements and lists data-room contents.
//
// Every restricted-access decision is made fresh from current state; nothing
// is cached between requests, so a new purchase or invitation takes effect
// on the very next call.
type DataRoomUsecase interface {
	// ListPublicFiles lists an asset's public data room. No entitlement
	// check applies; absence of the room reads as not found.
	ListPublicFiles(ctx context.Context, assetID uuid.UUID) ([]DataRoomFile, error)

	// ListPrivateFiles lists an asset's private data room, gated by
	// CanAccessRestricted.
	ListPrivateFiles(ctx context.Context, principal *service.Principal, assetID uuid.UUID) ([]DataRoomFile, error)

	// CanAccessRestricted decides whether the principal may read the
	// asset's private data room. The checks run in a fixed order:
	//   1. the owner of an asset that is listed for sale is denied
	//   2. a completed purchase grants permanent access
	//   3. an explicit invitation grants access
	//   4. everyone else is denied
	CanAccessRestricted(ctx context.Context, principal *service.Principal, assetID uuid.UUID) (bool, error)
}
