package handler

import (
	"log/slog"
	"net/http"

	"nearby/internal/delivery/http/response"
	domainerrors "nearby/internal/domain/errors"
	"nearby/internal/domain/service"
	"nearby/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// VenueHandlerParams holds dependencies for VenueHandler, injected by Fx.
type VenueHandlerParams struct {
	fx.In

	CatalogUC usecase.CatalogUsecase
	QRCode    service.QRCodeService
	Logger    *slog.Logger
}

// VenueHandler handles single-venue lookups and venue QR deep links
type VenueHandler struct {
	catalogUC usecase.CatalogUsecase
	qrCode    service.QRCodeService
	logger    *slog.Logger
}

// NewVenueHandler is the constructor for VenueHandler
func NewVenueHandler(params VenueHandlerParams) *VenueHandler {
	return &VenueHandler{
		catalogUC: params.CatalogUC,
		qrCode:    params.QRCode,
		logger:    params.Logger,
	}
}

// GetVenue handles retrieving a single venue by id
func (h *VenueHandler) GetVenue(c echo.Context) error {
	venue, ok := h.catalogUC.VenueByID(c.Param("id"))
	if !ok {
		return h.handleAppError(c, domainerrors.ErrVenueNotFound)
	}

	return response.Success(c, http.StatusOK, venue, "Venue retrieved successfully")
}

// GetVenueQRCode handles rendering a venue deep-link QR code as PNG
func (h *VenueHandler) GetVenueQRCode(c echo.Context) error {
	venue, ok := h.catalogUC.VenueByID(c.Param("id"))
	if !ok {
		return h.handleAppError(c, domainerrors.ErrVenueNotFound)
	}

	png, err := h.qrCode.GenerateVenueQR(venue)
	if err != nil {
		h.logger.Error("Failed to generate venue QR code",
			slog.String("venueId", venue.ID),
			slog.String("error", err.Error()),
		)

		return h.handleAppError(c, domainerrors.ErrInternalError)
	}

	return c.Blob(http.StatusOK, "image/png", png)
}

// handleAppError handles application errors
func (h *VenueHandler) handleAppError(c echo.Context, err error) error {
	var appErr domainerrors.AppError
	if errors.As(err, &appErr) {
		return response.Error(c, appErr.HTTPCode(), appErr.ErrorCode(), appErr.Message(), appErr.Details())
	}

	return errors.WithStack(err)
}
