package handler

import (
	"log/slog"
	"net/http"

	deliveryctx "dealroom/internal/delivery/context"
	"dealroom/internal/delivery/http/response"
	domainerrors "dealroom/internal/domain/errors"
	"dealroom/internal/usecase"
	"dealroom/internal/util"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// DataRoomHandler holds dependencies for data-room listing handlers.
type DataRoomHandler struct {
	uc     usecase.DataRoomUsecase
	logger *slog.Logger
}

// NewDataRoomHandler is the constructor for DataRoomHandler, injected by Fx.
func NewDataRoomHandler(uc usecase.DataRoomUsecase, logger *slog.Logger) *DataRoomHandler {
	return &DataRoomHandler{
		uc:     uc,
		logger: logger,
	}
}

type fileResponse struct {
	Key       string `json:"key"`
	Size      int64  `json:"size"`
	SizeHuman string `json:"size_human"`
}

func toFileResponses(files []usecase.DataRoomFile) []fileResponse {
	out := make([]fileResponse, 0, len(files))
	for _, f := range files {
		out = append(out, fileResponse{
			Key:       f.Key,
			Size:      f.Size,
			SizeHuman: util.FormatBytes(f.Size),
		})
	}

	return out
}

// ListPublic handles GET /assets/:id/public/list-files.
func (h *DataRoomHandler) ListPublic(c echo.Context) error {
	assetID, err := assetIDParam(c)
	if err != nil {
		return err
	}

	files, err := h.uc.ListPublicFiles(c.Request().Context(), assetID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toFileResponses(files), "")
}

// ListPrivate handles GET /assets/:id/private/list-files.
func (h *DataRoomHandler) ListPrivate(c echo.Context) error {
	principal, ok := deliveryctx.GetPrincipal(c)
	if !ok {
		return domainerrors.ErrMissingCredentials
	}

	assetID, err := assetIDParam(c)
	if err != nil {
		return err
	}

	files, err := h.uc.ListPrivateFiles(c.Request().Context(), principal, assetID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toFileResponses(files), "")
}
