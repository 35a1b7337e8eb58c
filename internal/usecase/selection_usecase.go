package usecase

import (
	"nearby/internal/domain/entity"

	"github.com/pkg/errors"
)

// ErrVenueNotInCatalog is returned by Select in strict mode when the venue
// id does not reference an existing venue.
var ErrVenueNotInCatalog = errors.New("venue not in catalog")

// SelectionUsecase enforces single-selection semantics for the venue detail
// card and owns its open/close animation lifecycle. At most one venue is
// active; a Select issued while another card is open or animating cancels
// the in-flight animation outright and restarts the open animation for the
// new venue.
type SelectionUsecase interface {
	// Select activates a venue: cancels any in-flight animation, replaces
	// the active venue id, restarts the open animation from its start
	// values and recenters the map on the venue. Unknown ids fail with
	// ErrVenueNotInCatalog in strict mode and are ignored otherwise.
	Select(venueID string) error

	// Close animates the card back to its closed values and clears the
	// active venue. Calling Close while already closed is a no-op.
	Close()

	// IsSelected reports whether venueID is the active venue. Pure query.
	IsSelected(venueID string) bool

	// State returns the tagged selection state.
	State() entity.SelectionState

	// Transform returns the card's current animated offset and opacity.
	Transform() entity.CardTransform
}
