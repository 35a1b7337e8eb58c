package handler

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"nearby/config"
	"nearby/internal/delivery/http/validator"
	"nearby/internal/domain/service"
	"nearby/internal/infra/location"
	"nearby/internal/infra/persistence/memory"
	"nearby/internal/usecase/impl"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type noopPublisher struct{}

func (noopPublisher) PublishShareEvent(context.Context, *service.ShareEvent) error { return nil }
func (noopPublisher) Close() error                                                 { return nil }

func newShareHandlerFixture(t *testing.T) (*ShareHandler, *echo.Echo) {
	t.Helper()

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	cfg := &config.Config{}
	catalogUC := impl.NewCatalogService(cfg, location.NewProvider(cfg), logger)
	shareUC := impl.NewShareService(memory.NewKVStore(), noopPublisher{}, logger)

	handler := &ShareHandler{
		catalogUC: catalogUC,
		shareUC:   shareUC,
		logger:    logger,
	}

	e := echo.New()
	e.Validator = validator.New()

	return handler, e
}

func TestShareHandler_CreateShare_Integration(t *testing.T) {
	handler, e := newShareHandlerFixture(t)

	body := `{"venue_id":"cafe-blue-bottle","recipient_id":"friend-1","recipient_name":"Alex"}`
	req := httptest.NewRequest(http.MethodPost, "/shares", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	require.NoError(t, handler.CreateShare(c))
	assert.Equal(t, http.StatusCreated, rec.Code)

	responseBody := rec.Body.String()
	assert.Contains(t, responseBody, `"success":true`)
	assert.Contains(t, responseBody, `"cafeId":"cafe-blue-bottle"`)
	assert.Contains(t, responseBody, `"recipientId":"friend-1"`)

	// The share must be readable back through the chat log.
	req = httptest.NewRequest(http.MethodGet, "/chats/friend-1/messages", nil)
	rec = httptest.NewRecorder()
	c = e.NewContext(req, rec)
	c.SetParamNames("recipientId")
	c.SetParamValues("friend-1")

	require.NoError(t, handler.GetChatMessages(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Check out Blue Bottle Coffee!")
	assert.Contains(t, rec.Body.String(), `"sender":"me"`)
}

func TestShareHandler_CreateShare_UnknownVenue(t *testing.T) {
	handler, e := newShareHandlerFixture(t)

	body := `{"venue_id":"no-such-venue","recipient_id":"friend-1","recipient_name":"Alex"}`
	req := httptest.NewRequest(http.MethodPost, "/shares", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	require.NoError(t, handler.CreateShare(c))
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, rec.Body.String(), "VENUE_NOT_FOUND")
}

func TestShareHandler_CreateShare_MissingFields(t *testing.T) {
	handler, e := newShareHandlerFixture(t)

	body := `{"venue_id":"cafe-blue-bottle"}`
	req := httptest.NewRequest(http.MethodPost, "/shares", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	require.NoError(t, handler.CreateShare(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "VALIDATION_ERROR")
}

func TestShareHandler_GetShareHistory_Empty(t *testing.T) {
	handler, e := newShareHandlerFixture(t)

	req := httptest.NewRequest(http.MethodGet, "/shares", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	require.NoError(t, handler.GetShareHistory(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"success":true`)
}
