// Package usecase defines the interfaces and DTOs of the application layer.
package usecase

import (
	"context"

	"nearby/internal/domain/entity"
)

// CatalogUsecase holds the full set of venues known to a Nearby session:
// the static seed dataset plus venues generated around the resolved user
// position. The catalog is read-only after Populate and safe for
// unsynchronized reads.
type CatalogUsecase interface {
	// Populate resolves location permission and, when granted, scatters
	// generated venues around the device position. On a denied permission
	// the catalog keeps only the seed venues and reports degraded mode;
	// Populate never fails because of a denied permission.
	Populate(ctx context.Context) error

	// Venues returns all venues in stable catalog order.
	Venues() []*entity.Venue

	// VenueByID looks a venue up by its stable id.
	VenueByID(id string) (*entity.Venue, bool)

	// Size returns the current catalog size.
	Size() int

	// Degraded reports whether the catalog runs on seed data only because
	// location permission was denied.
	Degraded() bool
}
