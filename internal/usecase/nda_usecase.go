package usecase

import (
	"context"
	"io"

	"dealroom/internal/domain/entity"
	"dealroom/internal/domain/service"

	"github.com/google/uuid"
)

// UploadNDAInput carries a signed agreement document.
type UploadNDAInput struct {
	BuyerID     uuid.UUID
	Number      int
	Content     io.Reader
	Size        int64
	ContentType string
}

// NDADocument pairs an agreement with its stored signed document. The
// caller must close Content.
type NDADocument struct {
	NDA         *entity.NDA
	Content     io.ReadCloser
	ContentType string
}

// NDAUsecase drives the agreement lifecycle for an asset. Each agreement
// walks requested -> signed -> confirmed; sequence numbers are assigned at
// request time and never change.
type NDAUsecase interface {
	// Request creates a new agreement for the (asset, buyer) pair and
	// assigns it the asset's next sequence number.
	Request(ctx context.Context, assetID, buyerID uuid.UUID) (*entity.NDA, error)

	// Upload stores the signed document for an existing agreement and, on
	// success, marks the agreement signed. A storage failure leaves the
	// agreement in its prior state.
	Upload(ctx context.Context, assetID uuid.UUID, input UploadNDAInput) (*entity.NDA, error)

	// Confirm moves an agreement to the confirmed state. Any authenticated
	// principal may confirm; see the workflow tests for the implications.
	Confirm(ctx context.Context, assetID, buyerID uuid.UUID, number int) (*entity.NDA, error)

	// View streams the signed document. Only the agreement's buyer and the
	// asset's owner may view it.
	View(ctx context.Context, principal *service.Principal, assetID, buyerID uuid.UUID, number int) (*NDADocument, error)
}
