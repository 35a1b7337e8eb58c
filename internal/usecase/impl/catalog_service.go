package impl

import (
	"context"
	"fmt"
	"log/slog"
	"math/rand"
	"sync"
	"time"

	"nearby/config"
	"nearby/internal/domain/entity"
	"nearby/internal/domain/service"
	"nearby/internal/usecase"

	"github.com/google/uuid"
	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geo"
)

const (
	defaultRandomVenueCount = 15
	defaultScatterRadiusM   = 1500.0
)

type catalogService struct {
	randomVenueCount int
	scatterRadiusM   float64

	locationProvider service.LocationProvider
	logger           *slog.Logger
	rng              *rand.Rand

	mu        sync.RWMutex
	venues    []*entity.Venue
	byID      map[string]*entity.Venue
	populated bool
	degraded  bool
}

// NewCatalogService creates a catalog preloaded with the seed venues.
// Generated venues are added by Populate once the user position resolves.
func NewCatalogService(cfg *config.Config, locationProvider service.LocationProvider, logger *slog.Logger) usecase.CatalogUsecase {
	// If Catalog is not configured, provide a default configuration
	if cfg.Catalog == nil {
		cfg.Catalog = &config.CatalogConfig{
			PageSize:         defaultPageSize,
			RandomVenueCount: defaultRandomVenueCount,
			ScatterRadiusM:   defaultScatterRadiusM,
		}
	}

	randomCount := cfg.Catalog.RandomVenueCount
	if randomCount < 0 {
		randomCount = 0
	}

	radius := cfg.Catalog.ScatterRadiusM
	if radius <= 0 {
		radius = defaultScatterRadiusM
	}

	seed := cfg.Catalog.GeneratorSeed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	catalog := &catalogService{
		randomVenueCount: randomCount,
		scatterRadiusM:   radius,
		locationProvider: locationProvider,
		logger:           logger,
		rng:              rand.New(rand.NewSource(seed)),
		byID:             make(map[string]*entity.Venue),
	}

	for _, venue := range seedVenues() {
		catalog.venues = append(catalog.venues, venue)
		catalog.byID[venue.ID] = venue
	}

	return catalog
}

// Populate resolves the location permission flow and scatters generated
// venues around the device position. A denied permission degrades to the
// seed catalog and is not an error; only a failing position read is.
func (s *catalogService) Populate(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.populated {
		return nil
	}
	s.populated = true

	granted, err := s.locationProvider.RequestForegroundPermission(ctx)
	if err != nil {
		return fmt.Errorf("failed to request location permission: %w", err)
	}

	if !granted {
		s.degraded = true
		s.logger.Warn("Location permission denied, using seed venues only")

		return nil
	}

	position, err := s.locationProvider.CurrentPosition(ctx)
	if err != nil {
		return fmt.Errorf("failed to read current position: %w", err)
	}

	generated := s.generateAround(position)
	for _, venue := range generated {
		s.venues = append(s.venues, venue)
		s.byID[venue.ID] = venue
	}

	s.logger.Info("Catalog populated",
		slog.Int("seed", len(s.venues)-len(generated)),
		slog.Int("generated", len(generated)),
	)

	return nil
}

// Venues returns all venues in stable catalog order.
func (s *catalogService) Venues() []*entity.Venue {
	s.mu.RLock()
	defer s.mu.RUnlock()

	venues := make([]*entity.Venue, len(s.venues))
	copy(venues, s.venues)

	return venues
}

// VenueByID looks a venue up by its stable id.
func (s *catalogService) VenueByID(id string) (*entity.Venue, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	venue, ok := s.byID[id]

	return venue, ok
}

// Size returns the current catalog size.
func (s *catalogService) Size() int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return len(s.venues)
}

// Degraded reports whether the catalog runs on seed data only.
func (s *catalogService) Degraded() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.degraded
}

// generateAround scatters venues at a random bearing and distance within
// the configured radius of the center position. Caller holds the lock.
func (s *catalogService) generateAround(center entity.Coordinate) []*entity.Venue {
	centerPoint := orb.Point{center.Longitude, center.Latitude}
	venues := make([]*entity.Venue, 0, s.randomVenueCount)

	for i := 0; i < s.randomVenueCount; i++ {
		bearing := s.rng.Float64()*360 - 180
		distance := s.rng.Float64() * s.scatterRadiusM
		point := geo.PointAtBearingAndDistance(centerPoint, bearing, distance)

		name := generatedNames[s.rng.Intn(len(generatedNames))]
		venues = append(venues, &entity.Venue{
			ID:          "gen-" + uuid.NewString(),
			Name:        name,
			Address:     fmt.Sprintf("%d %s", 10+s.rng.Intn(980), generatedStreets[s.rng.Intn(len(generatedStreets))]),
			Rating:      3.5 + s.rng.Float64()*1.5,
			Status:      "Open",
			ClosingTime: generatedClosingTimes[s.rng.Intn(len(generatedClosingTimes))],
			Coordinate: entity.Coordinate{
				Latitude:  point.Lat(),
				Longitude: point.Lon(),
			},
			Images: []string{fmt.Sprintf("https://images.nearby.dev/generated/%02d.jpg", s.rng.Intn(40))},
		})
	}

	return venues
}

var generatedNames = []string{
	"Bean There", "Daily Grind", "Mokapot", "The Percolator", "Crema",
	"Ristretto Room", "Slow Pour", "Kettle & Cup", "Roast Station",
	"Third Wave", "Cortado Corner", "The Drip", "Steam & Bean",
}

var generatedStreets = []string{
	"Valencia St", "Mission St", "Divisadero St", "Hayes St", "Polk St",
	"Columbus Ave", "Irving St", "Clement St",
}

var generatedClosingTimes = []string{
	"Closes 5PM", "Closes 6PM", "Closes 8PM", "Closes 10PM", "Open 24 hours",
}
