// Package mapview provides the server-side stand-in for the external
// mapping SDK: marker and recenter commands are recorded and logged instead
// of rendered.
package mapview

import (
	"log/slog"
	"sync"

	"nearby/internal/domain/entity"
	"nearby/internal/domain/service"
)

type logMapView struct {
	logger *slog.Logger

	mu      sync.Mutex
	markers []service.Marker
	center  entity.Coordinate
	span    float64
}

// NewLogMapView creates a MapView that logs the commands it receives.
func NewLogMapView(logger *slog.Logger) service.MapView {
	return &logMapView{logger: logger}
}

// SetMarkers replaces the markers shown on the map.
func (v *logMapView) SetMarkers(markers []service.Marker) {
	v.mu.Lock()
	v.markers = markers
	v.mu.Unlock()

	v.logger.Debug("Map markers updated", slog.Int("count", len(markers)))
}

// CenterOn recenters the viewport on a coordinate.
func (v *logMapView) CenterOn(coordinate entity.Coordinate, span float64) {
	v.mu.Lock()
	v.center = coordinate
	v.span = span
	v.mu.Unlock()

	v.logger.Debug("Map recentered",
		slog.Float64("latitude", coordinate.Latitude),
		slog.Float64("longitude", coordinate.Longitude),
		slog.Float64("span", span),
	)
}
