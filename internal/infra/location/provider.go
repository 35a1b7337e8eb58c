// Package location provides the configured stand-in for the OS location
// service. The real permission prompt and GPS sampling live outside this
// repository; the provider reports whatever the deployment configures.
package location

import (
	"context"

	"nearby/config"
	"nearby/internal/domain/entity"
	"nearby/internal/domain/service"
)

type configProvider struct {
	granted  bool
	position entity.Coordinate
}

// NewProvider creates a LocationProvider backed by static configuration.
// Without a location section the provider behaves as permission denied,
// which keeps the Nearby flow on the seed catalog.
func NewProvider(cfg *config.Config) service.LocationProvider {
	if cfg.Location == nil {
		return &configProvider{granted: false}
	}

	return &configProvider{
		granted: cfg.Location.PermissionGranted,
		position: entity.Coordinate{
			Latitude:  cfg.Location.Latitude,
			Longitude: cfg.Location.Longitude,
		},
	}
}

func (p *configProvider) RequestForegroundPermission(_ context.Context) (bool, error) {
	return p.granted, nil
}

func (p *configProvider) CurrentPosition(_ context.Context) (entity.Coordinate, error) {
	return p.position, nil
}
