package handler

import (
	"log/slog"
	"net/http"
	"time"

	deliveryctx "dealroom/internal/delivery/context"
	"dealroom/internal/delivery/http/response"
	"dealroom/internal/domain/entity"
	domainerrors "dealroom/internal/domain/errors"
	"dealroom/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// AssetHandler holds dependencies for asset listing handlers.
type AssetHandler struct {
	uc     usecase.AssetUsecase
	logger *slog.Logger
}

// NewAssetHandler is the constructor for AssetHandler, injected by Fx.
func NewAssetHandler(uc usecase.AssetUsecase, logger *slog.Logger) *AssetHandler {
	return &AssetHandler{
		uc:     uc,
		logger: logger,
	}
}

type updateAssetRequest struct {
	Name        *string `json:"name"`
	Description *string `json:"description"`
}

type offerAssetRequest struct {
	Price          float64 `json:"price" validate:"required,gt=0"`
	AdditionalInfo string  `json:"additional_info"`
}

type assetResponse struct {
	ID             string    `json:"id"`
	Name           string    `json:"name"`
	Description    string    `json:"description"`
	ForSale        bool      `json:"for_sale"`
	Price          *float64  `json:"price,omitempty"`
	AdditionalInfo string    `json:"additional_info,omitempty"`
	OwnerID        string    `json:"owner_id"`
	CreatedAt      time.Time `json:"created_at"`
}

func toAssetResponse(a *entity.Asset) assetResponse {
	return assetResponse{
		ID:             a.ID.String(),
		Name:           a.Name,
		Description:    a.Description,
		ForSale:        a.ForSale,
		Price:          a.Price,
		AdditionalInfo: a.AdditionalInfo,
		OwnerID:        a.OwnerID.String(),
		CreatedAt:      a.CreatedAt,
	}
}

// ListMine handles GET /assets/me.
func (h *AssetHandler) ListMine(c echo.Context) error {
	principal, ok := deliveryctx.GetPrincipal(c)
	if !ok {
		return domainerrors.ErrMissingCredentials
	}

	assets, err := h.uc.ListMine(c.Request().Context(), principal)
	if err != nil {
		return errors.WithStack(err)
	}

	out := make([]assetResponse, 0, len(assets))
	for _, a := range assets {
		out = append(out, toAssetResponse(a))
	}

	return response.Success(c, http.StatusOK, out, "")
}

// Get handles GET /assets/:id.
func (h *AssetHandler) Get(c echo.Context) error {
	assetID, err := assetIDParam(c)
	if err != nil {
		return err
	}

	asset, err := h.uc.GetAsset(c.Request().Context(), assetID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toAssetResponse(asset), "")
}

// Update handles PATCH /assets/:id.
func (h *AssetHandler) Update(c echo.Context) error {
	principal, ok := deliveryctx.GetPrincipal(c)
	if !ok {
		return domainerrors.ErrMissingCredentials
	}

	assetID, err := assetIDParam(c)
	if err != nil {
		return err
	}

	var req updateAssetRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	asset, err := h.uc.UpdateAsset(c.Request().Context(), principal, assetID, usecase.UpdateAssetInput{
		Name:        req.Name,
		Description: req.Description,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toAssetResponse(asset), "Asset updated")
}

// Offer handles POST /assets/:id/offer.
func (h *AssetHandler) Offer(c echo.Context) error {
	principal, ok := deliveryctx.GetPrincipal(c)
	if !ok {
		return domainerrors.ErrMissingCredentials
	}

	assetID, err := assetIDParam(c)
	if err != nil {
		return err
	}

	var req offerAssetRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	asset, err := h.uc.OfferForSale(c.Request().Context(), principal, assetID, usecase.OfferAssetInput{
		Price:          req.Price,
		AdditionalInfo: req.AdditionalInfo,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toAssetResponse(asset), "Asset offered for sale")
}

func assetIDParam(c echo.Context) (uuid.UUID, error) {
	assetID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return uuid.Nil, domainerrors.ErrValidationFailed.WithDetails("id must be a UUID")
	}

	return assetID, nil
}
