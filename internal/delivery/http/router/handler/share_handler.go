package handler

import (
	"log/slog"
	"net/http"

	deliverycontext "nearby/internal/delivery/context"
	"nearby/internal/delivery/http/response"
	"nearby/internal/domain/entity"
	domainerrors "nearby/internal/domain/errors"
	"nearby/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// ShareHandlerParams holds dependencies for ShareHandler, injected by Fx.
type ShareHandlerParams struct {
	fx.In

	CatalogUC usecase.CatalogUsecase
	ShareUC   usecase.ShareUsecase
	Logger    *slog.Logger
}

// ShareHandler handles venue share recording and the share/chat read sides
type ShareHandler struct {
	catalogUC usecase.CatalogUsecase
	shareUC   usecase.ShareUsecase
	logger    *slog.Logger
}

// NewShareHandler is the constructor for ShareHandler
func NewShareHandler(params ShareHandlerParams) *ShareHandler {
	return &ShareHandler{
		catalogUC: params.CatalogUC,
		shareUC:   params.ShareUC,
		logger:    params.Logger,
	}
}

// CreateShareRequest represents the request body for sharing a venue
type CreateShareRequest struct {
	VenueID       string `json:"venue_id" validate:"required"`
	RecipientID   string `json:"recipient_id" validate:"required"`
	RecipientName string `json:"recipient_name" validate:"required"`
	IsGroup       bool   `json:"is_group"`
}

// CreateShare handles recording a venue share to a recipient
func (h *ShareHandler) CreateShare(c echo.Context) error {
	var req CreateShareRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid share input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	venue, ok := h.catalogUC.VenueByID(req.VenueID)
	if !ok {
		return h.handleAppError(c, domainerrors.ErrVenueNotFound)
	}

	recipient := entity.Recipient{
		ID:      req.RecipientID,
		Name:    req.RecipientName,
		IsGroup: req.IsGroup,
	}

	ctx := c.Request().Context()
	record, err := h.shareUC.Share(ctx, venue, recipient)
	if err != nil {
		var appErr domainerrors.AppError
		if !errors.As(err, &appErr) {
			h.logger.Error("Share failed", slog.String("error", err.Error()))

			return h.handleAppError(c, domainerrors.ErrShareFailed)
		}

		return h.handleAppError(c, err)
	}

	deliverycontext.GetLoggerOrDefault(ctx, h.logger).Info("Venue shared",
		slog.String("shareId", record.ID.String()),
		slog.String("cafeId", record.CafeID),
		slog.String("recipientId", record.RecipientID),
	)

	return response.Success(c, http.StatusCreated, record, "Venue shared successfully")
}

// GetShareHistory handles retrieving the global share history
func (h *ShareHandler) GetShareHistory(c echo.Context) error {
	history, err := h.shareUC.History(c.Request().Context())
	if err != nil {
		return h.handleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, history, "Share history retrieved successfully")
}

// GetChatMessages handles retrieving a recipient's chat log
func (h *ShareHandler) GetChatMessages(c echo.Context) error {
	recipientID := c.Param("recipientId")
	if recipientID == "" {
		return response.BadRequest(c, "INVALID_ID", "Invalid recipient ID")
	}

	messages, err := h.shareUC.Messages(c.Request().Context(), recipientID)
	if err != nil {
		return h.handleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, messages, "Chat messages retrieved successfully")
}

// handleAppError handles application errors
func (h *ShareHandler) handleAppError(c echo.Context, err error) error {
	var appErr domainerrors.AppError
	if errors.As(err, &appErr) {
		return response.Error(c, appErr.HTTPCode(), appErr.ErrorCode(), appErr.Message(), appErr.Details())
	}

	return errors.WithStack(err)
}
