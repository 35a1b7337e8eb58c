package impl

import (
	"context"

	"nearby/config"
	"nearby/internal/domain/entity"
	"nearby/internal/usecase"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geo"
	"github.com/pkg/errors"
)

const (
	// fallback defaults to keep directions functional when config is missing/invalid
	defaultDirectionsSpeedKmh = 30.0
	defaultPathPoints         = 16
)

// directionsService answers explicit "get directions" requests with a
// straight-line path. Road-network routing stays an external concern; the
// Nearby flow only needs a renderable polyline and a rough estimate.
type directionsService struct {
	speedKmh   float64
	pathPoints int
}

// NewDirectionsService creates a new directions service instance
func NewDirectionsService(cfg *config.Config) usecase.DirectionsUsecase {
	speedKmh := defaultDirectionsSpeedKmh
	pathPoints := defaultPathPoints

	if cfg.Directions != nil {
		if cfg.Directions.DefaultSpeedKmh > 0 {
			speedKmh = cfg.Directions.DefaultSpeedKmh
		}
		if cfg.Directions.PathPoints > 1 {
			pathPoints = cfg.Directions.PathPoints
		}
	}

	return &directionsService{
		speedKmh:   speedKmh,
		pathPoints: pathPoints,
	}
}

// Route calculates a renderable straight-line path with a speed-based
// duration estimate.
func (s *directionsService) Route(ctx context.Context, origin, destination entity.Coordinate) (*usecase.RouteResult, error) {
	if ctx.Err() != nil {
		return nil, errors.Wrap(ctx.Err(), "directions calculation canceled")
	}

	originPoint := orb.Point{origin.Longitude, origin.Latitude}
	destinationPoint := orb.Point{destination.Longitude, destination.Latitude}

	distanceM := geo.DistanceHaversine(originPoint, destinationPoint)
	distanceKm := distanceM / 1000

	path := make([]entity.Coordinate, 0, s.pathPoints)
	for i := 0; i < s.pathPoints; i++ {
		t := float64(i) / float64(s.pathPoints-1)
		path = append(path, entity.Coordinate{
			Latitude:  origin.Latitude + (destination.Latitude-origin.Latitude)*t,
			Longitude: origin.Longitude + (destination.Longitude-origin.Longitude)*t,
		})
	}

	return &usecase.RouteResult{
		Origin:      origin,
		Destination: destination,
		Path:        path,
		DistanceKm:  distanceKm,
		DurationMin: distanceKm / s.speedKmh * 60,
	}, nil
}
