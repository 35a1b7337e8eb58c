package entity

// SelectionPhase is the tagged state of the detail card state machine.
type SelectionPhase string

const (
	SelectionClosed  SelectionPhase = "closed"
	SelectionOpening SelectionPhase = "opening"
	SelectionOpen    SelectionPhase = "open"
	SelectionClosing SelectionPhase = "closing"
)

// SelectionState reports the current phase and, outside Closed, the single
// active venue. From a caller's perspective the machine is always in exactly
// one of Closed or Open(venueID); Opening/Closing are the animated
// transitions between them.
type SelectionState struct {
	Phase   SelectionPhase `json:"phase"`
	VenueID string         `json:"venueId,omitempty"`
}

// CardTransform holds the two coupled animated parameters of the detail
// card. Offset is the vertical translation in points (positive = pushed
// below the resting position), Opacity is 0..1.
type CardTransform struct {
	Offset  float64 `json:"offset"`
	Opacity float64 `json:"opacity"`
}

// CardClosed and CardOpen are the animation endpoints of the detail card.
var (
	CardClosed = CardTransform{Offset: 300, Opacity: 0}
	CardOpen   = CardTransform{Offset: 0, Opacity: 1}
)
