package handler

import (
	"log/slog"
	"net/http"

	"nearby/internal/delivery/http/response"
	"nearby/internal/domain/entity"
	domainerrors "nearby/internal/domain/errors"
	"nearby/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// DirectionsHandlerParams holds dependencies for DirectionsHandler, injected by Fx.
type DirectionsHandlerParams struct {
	fx.In

	DirectionsUC usecase.DirectionsUsecase
	Logger       *slog.Logger
}

// DirectionsHandler handles route requests between two coordinates
type DirectionsHandler struct {
	directionsUC usecase.DirectionsUsecase
	logger       *slog.Logger
}

// NewDirectionsHandler is the constructor for DirectionsHandler
func NewDirectionsHandler(params DirectionsHandlerParams) *DirectionsHandler {
	return &DirectionsHandler{
		directionsUC: params.DirectionsUC,
		logger:       params.Logger,
	}
}

// RouteRequest represents the request body for a directions query
type RouteRequest struct {
	OriginLatitude       float64 `json:"origin_latitude" validate:"min=-90,max=90"`
	OriginLongitude      float64 `json:"origin_longitude" validate:"min=-180,max=180"`
	DestinationLatitude  float64 `json:"destination_latitude" validate:"min=-90,max=90"`
	DestinationLongitude float64 `json:"destination_longitude" validate:"min=-180,max=180"`
}

// GetRoute handles calculating a route between two coordinates
func (h *DirectionsHandler) GetRoute(c echo.Context) error {
	var req RouteRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid route input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	origin := entity.Coordinate{Latitude: req.OriginLatitude, Longitude: req.OriginLongitude}
	destination := entity.Coordinate{Latitude: req.DestinationLatitude, Longitude: req.DestinationLongitude}

	route, err := h.directionsUC.Route(c.Request().Context(), origin, destination)
	if err != nil {
		return h.handleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, route, "Route calculated successfully")
}

// handleAppError handles application errors
func (h *DirectionsHandler) handleAppError(c echo.Context, err error) error {
	var appErr domainerrors.AppError
	if errors.As(err, &appErr) {
		return response.Error(c, appErr.HTTPCode(), appErr.ErrorCode(), appErr.Message(), appErr.Details())
	}

	return errors.WithStack(err)
}
