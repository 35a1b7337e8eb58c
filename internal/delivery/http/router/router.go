// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"nearby/internal/delivery/http/middleware"
	"nearby/internal/delivery/http/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	NearbyHandler       *handler.NearbyHandler
	ShareHandler        *handler.ShareHandler
	DirectionsHandler   *handler.DirectionsHandler
	VenueHandler        *handler.VenueHandler
	RequestIDMiddleware *middleware.RequestIDMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	nearbyHandler       *handler.NearbyHandler
	shareHandler        *handler.ShareHandler
	directionsHandler   *handler.DirectionsHandler
	venueHandler        *handler.VenueHandler
	requestIDMiddleware *middleware.RequestIDMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		nearbyHandler:       params.NearbyHandler,
		shareHandler:        params.ShareHandler,
		directionsHandler:   params.DirectionsHandler,
		venueHandler:        params.VenueHandler,
		requestIDMiddleware: params.RequestIDMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	e.Use(r.requestIDMiddleware.Process)

	// Nearby screen: visible venues, viewport pagination, detail card
	nearbyGroup := e.Group("/nearby")
	{
		nearbyGroup.GET("/venues", r.nearbyHandler.GetVenues)
		nearbyGroup.POST("/viewport/settled", r.nearbyHandler.ViewportSettled)
		nearbyGroup.GET("/selection", r.nearbyHandler.GetSelection)
		nearbyGroup.POST("/selection", r.nearbyHandler.SelectVenue)
		nearbyGroup.DELETE("/selection", r.nearbyHandler.CloseSelection)
	}

	// Venue lookups and deep links
	venueGroup := e.Group("/venues")
	{
		venueGroup.GET("/:id", r.venueHandler.GetVenue)
		venueGroup.GET("/:id/qrcode", r.venueHandler.GetVenueQRCode)
	}

	// Share recording and read sides
	e.POST("/shares", r.shareHandler.CreateShare)
	e.GET("/shares", r.shareHandler.GetShareHistory)
	e.GET("/chats/:recipientId/messages", r.shareHandler.GetChatMessages)

	// Directions
	e.POST("/directions", r.directionsHandler.GetRoute)
}
