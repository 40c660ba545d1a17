package handler

import (
	"log/slog"
	"net/http"
	"strconv"
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

// NDAHandler holds dependencies for agreement workflow handlers.
type NDAHandler struct {
	uc     usecase.NDAUsecase
	logger *slog.Logger
}

// NewNDAHandler is the constructor for NDAHandler, injected by Fx.
func NewNDAHandler(uc usecase.NDAUsecase, logger *slog.Logger) *NDAHandler {
	return &NDAHandler{
		uc:     uc,
		logger: logger,
	}
}

type requestNDARequest struct {
	BuyerID string `json:"buyer_id" validate:"required,uuid"`
}

type confirmNDARequest struct {
	BuyerID string `json:"buyer_id" validate:"required,uuid"`
	Number  int    `json:"nda_number" validate:"required,gt=0"`
}

type ndaResponse struct {
	ID          string     `json:"id"`
	AssetID     string     `json:"asset_id"`
	BuyerID     string     `json:"buyer_id"`
	Number      int        `json:"nda_number"`
	Status      string     `json:"status"`
	RequestedAt time.Time  `json:"requested_at"`
	SignedAt    *time.Time `json:"signed_at,omitempty"`
	ConfirmedAt *time.Time `json:"confirmed_at,omitempty"`
}

func toNDAResponse(n *entity.NDA) ndaResponse {
	return ndaResponse{
		ID:          n.ID.String(),
		AssetID:     n.AssetID.String(),
		BuyerID:     n.BuyerID.String(),
		Number:      n.Number,
		Status:      n.Status.String(),
		RequestedAt: n.RequestedAt,
		SignedAt:    n.SignedAt,
		ConfirmedAt: n.ConfirmedAt,
	}
}

// Request handles POST /assets/:id/nda/request.
func (h *NDAHandler) Request(c echo.Context) error {
	assetID, err := assetIDParam(c)
	if err != nil {
		return err
	}

	var req requestNDARequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}
	buyerID, _ := uuid.Parse(req.BuyerID)

	nda, err := h.uc.Request(c.Request().Context(), assetID, buyerID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, toNDAResponse(nda), "Agreement requested")
}

// Upload handles POST /assets/:id/nda/upload. The body is multipart form
// data with buyer_id, nda_number, and the signed document as "file".
func (h *NDAHandler) Upload(c echo.Context) error {
	assetID, err := assetIDParam(c)
	if err != nil {
		return err
	}

	buyerID, err := uuid.Parse(c.FormValue("buyer_id"))
	if err != nil {
		return domainerrors.ErrValidationFailed.WithDetails("buyer_id must be a UUID")
	}
	number, err := strconv.Atoi(c.FormValue("nda_number"))
	if err != nil || number < 1 {
		return domainerrors.ErrValidationFailed.WithDetails("nda_number must be a positive integer")
	}

	fileHeader, err := c.FormFile("file")
	if err != nil {
		return domainerrors.ErrValidationFailed.WithDetails("file is required")
	}
	file, err := fileHeader.Open()
	if err != nil {
		return errors.Wrap(err, "failed to open uploaded file")
	}
	defer file.Close()

	nda, err := h.uc.Upload(c.Request().Context(), assetID, usecase.UploadNDAInput{
		BuyerID:     buyerID,
		Number:      number,
		Content:     file,
		Size:        fileHeader.Size,
		ContentType: fileHeader.Header.Get("Content-Type"),
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toNDAResponse(nda), "Signed agreement uploaded")
}

// Confirm handles POST /assets/:id/nda/confirm.
func (h *NDAHandler) Confirm(c echo.Context) error {
	assetID, err := assetIDParam(c)
	if err != nil {
		return err
	}

	var req confirmNDARequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}
	buyerID, _ := uuid.Parse(req.BuyerID)

	nda, err := h.uc.Confirm(c.Request().Context(), assetID, buyerID, req.Number)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toNDAResponse(nda), "Agreement confirmed")
}

// View handles GET /assets/:id/nda/view. The document is streamed as-is.
func (h *NDAHandler) View(c echo.Context) error {
	principal, ok := deliveryctx.GetPrincipal(c)
	if !ok {
		return domainerrors.ErrMissingCredentials
	}

	assetID, err := assetIDParam(c)
	if err != nil {
		return err
	}

	buyerID, err := uuid.Parse(c.QueryParam("buyer_id"))
	if err != nil {
		return domainerrors.ErrValidationFailed.WithDetails("buyer_id must be a UUID")
	}
	number, err := strconv.Atoi(c.QueryParam("nda_number"))
	if err != nil || number < 1 {
		return domainerrors.ErrValidationFailed.WithDetails("nda_number must be a positive integer")
	}

	doc, err := h.uc.View(c.Request().Context(), principal, assetID, buyerID, number)
	if err != nil {
		return errors.WithStack(err)
	}
	defer doc.Content.Close()

	return c.Stream(http.StatusOK, doc.ContentType, doc.Content)
}
