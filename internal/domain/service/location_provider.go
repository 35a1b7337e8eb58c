package service

import (
	"context"

	"nearby/internal/domain/entity"
)

// LocationProvider abstracts the operating-system location service. On a
// denied permission the Nearby flow keeps working against the static seed
// catalog only.
type LocationProvider interface {
	// RequestForegroundPermission reports whether foreground location
	// access is granted. A false result is not an error.
	RequestForegroundPermission(ctx context.Context) (bool, error)

	// CurrentPosition returns the device position. Only valid after a
	// granted permission.
	CurrentPosition(ctx context.Context) (entity.Coordinate, error)
}
