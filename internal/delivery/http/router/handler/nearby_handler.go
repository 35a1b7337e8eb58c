// Package handler contains the echo request handlers of the HTTP delivery.
package handler

import (
	"log/slog"
	"net/http"

	"nearby/internal/delivery/http/response"
	"nearby/internal/domain/entity"
	domainerrors "nearby/internal/domain/errors"
	"nearby/internal/domain/service"
	"nearby/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// NearbyHandlerParams holds dependencies for NearbyHandler, injected by Fx.
type NearbyHandlerParams struct {
	fx.In

	CatalogUC   usecase.CatalogUsecase
	NearbyUC    usecase.NearbyUsecase
	SelectionUC usecase.SelectionUsecase
	MapView     service.MapView
	Logger      *slog.Logger
}

// NearbyHandler exposes the nearby map screen: the visible venue slice,
// viewport-settle pagination and the detail card selection.
type NearbyHandler struct {
	catalogUC   usecase.CatalogUsecase
	nearbyUC    usecase.NearbyUsecase
	selectionUC usecase.SelectionUsecase
	mapView     service.MapView
	logger      *slog.Logger
}

// NewNearbyHandler is the constructor for NearbyHandler
func NewNearbyHandler(params NearbyHandlerParams) *NearbyHandler {
	return &NearbyHandler{
		catalogUC:   params.CatalogUC,
		nearbyUC:    params.NearbyUC,
		selectionUC: params.SelectionUC,
		mapView:     params.MapView,
		logger:      params.Logger,
	}
}

// SelectVenueRequest represents the request body for selecting a venue
type SelectVenueRequest struct {
	VenueID string `json:"venue_id" validate:"required"`
}

// nearbyVenuesResponse pairs the visible slice with its cursor so clients
// can tell whether more settle events will reveal anything.
type nearbyVenuesResponse struct {
	Venues    any  `json:"venues"`
	PageSize  int  `json:"pageSize"`
	Visible   int  `json:"visible"`
	Exhausted bool `json:"exhausted"`
	Degraded  bool `json:"degraded"`
}

// GetVenues handles retrieving the currently visible venues
func (h *NearbyHandler) GetVenues(c echo.Context) error {
	venues := h.nearbyUC.Visible()
	cursor := h.nearbyUC.Cursor()

	return response.Success(c, http.StatusOK, nearbyVenuesResponse{
		Venues:    venues,
		PageSize:  cursor.PageSize,
		Visible:   len(venues),
		Exhausted: cursor.Exhausted(h.catalogUC.Size()),
		Degraded:  h.catalogUC.Degraded(),
	}, "Visible venues retrieved successfully")
}

// ViewportSettled handles a map region settle event and reveals the next
// page of venues when one is still hidden.
func (h *NearbyHandler) ViewportSettled(c echo.Context) error {
	venues := h.nearbyUC.OnViewportSettled()
	h.mapView.SetMarkers(venueMarkers(venues))

	cursor := h.nearbyUC.Cursor()

	return response.Success(c, http.StatusOK, nearbyVenuesResponse{
		Venues:    venues,
		PageSize:  cursor.PageSize,
		Visible:   len(venues),
		Exhausted: cursor.Exhausted(h.catalogUC.Size()),
		Degraded:  h.catalogUC.Degraded(),
	}, "Viewport settled")
}

// SelectVenue handles opening the detail card for a venue
func (h *NearbyHandler) SelectVenue(c echo.Context) error {
	var req SelectVenueRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid selection input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	if err := h.selectionUC.Select(req.VenueID); err != nil {
		if errors.Is(err, usecase.ErrVenueNotInCatalog) {
			return h.handleAppError(c, domainerrors.ErrVenueNotFound)
		}

		return h.handleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, h.selectionSnapshot(), "Venue selected successfully")
}

// CloseSelection handles dismissing the detail card
func (h *NearbyHandler) CloseSelection(c echo.Context) error {
	h.selectionUC.Close()

	return response.Success(c, http.StatusOK, h.selectionSnapshot(), "Selection closed")
}

// GetSelection handles retrieving the current selection state
func (h *NearbyHandler) GetSelection(c echo.Context) error {
	return response.Success(c, http.StatusOK, h.selectionSnapshot(), "Selection state retrieved successfully")
}

type selectionSnapshot struct {
	State     any `json:"state"`
	Transform any `json:"transform"`
}

func (h *NearbyHandler) selectionSnapshot() selectionSnapshot {
	return selectionSnapshot{
		State:     h.selectionUC.State(),
		Transform: h.selectionUC.Transform(),
	}
}

// venueMarkers maps the visible venues to markers for the map view.
func venueMarkers(venues []*entity.Venue) []service.Marker {
	markers := make([]service.Marker, 0, len(venues))
	for _, venue := range venues {
		markers = append(markers, service.Marker{
			ID:         venue.ID,
			Coordinate: venue.Coordinate,
		})
	}

	return markers
}

// handleAppError handles application errors
func (h *NearbyHandler) handleAppError(c echo.Context, err error) error {
	var appErr domainerrors.AppError
	if errors.As(err, &appErr) {
		return response.Error(c, appErr.HTTPCode(), appErr.ErrorCode(), appErr.Message(), appErr.Details())
	}

	return errors.WithStack(err)
}

// HealthCheck is a simple handler to check if the service is up.
func HealthCheck(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
}
