package usecase

import (
	"context"

	"nearby/internal/domain/entity"
)

// RouteResult represents a renderable path between two coordinates
type RouteResult struct {
	Origin      entity.Coordinate   `json:"origin"`
	Destination entity.Coordinate   `json:"destination"`
	Path        []entity.Coordinate `json:"path"`         // Interpolated polyline, origin first
	DistanceKm  float64             `json:"distance_km"`  // Great-circle distance in kilometers
	DurationMin float64             `json:"duration_min"` // Estimated travel time in minutes
}

// DirectionsUsecase answers explicit "get directions" requests. It is not
// part of the Nearby correctness surface; the current implementation
// returns a straight-line path with a speed-based duration estimate.
type DirectionsUsecase interface {
	// Route calculates a renderable path from origin to destination
	Route(ctx context.Context, origin, destination entity.Coordinate) (*RouteResult, error)
}
