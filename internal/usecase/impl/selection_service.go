package impl

import (
	"log/slog"
	"sync"
	"time"

	"nearby/config"
	"nearby/internal/domain/entity"
	"nearby/internal/domain/service"
	"nearby/internal/usecase"
)

const (
	defaultOpenDuration  = 300 * time.Millisecond
	defaultCloseDuration = 200 * time.Millisecond
	defaultMapZoomSpan   = 0.01
)

// selectionService is the detail card state machine. Every animation run is
// tagged with a generation; bumping the generation invalidates all pending
// callbacks of the superseded run, so a Select issued mid-animation cancels
// outright instead of queueing, and two open animations can never overlap.
type selectionService struct {
	catalog  usecase.CatalogUsecase
	mapView  service.MapView
	animator service.Animator
	logger   *slog.Logger

	openDuration  time.Duration
	closeDuration time.Duration
	zoomSpan      float64
	strict        bool

	mu         sync.Mutex
	phase      entity.SelectionPhase
	venueID    string
	transform  entity.CardTransform
	generation uint64
	cancelAnim func()
}

// NewSelectionService creates the single-selection controller for the venue
// detail card.
func NewSelectionService(
	cfg *config.Config,
	catalog usecase.CatalogUsecase,
	mapView service.MapView,
	animator service.Animator,
	logger *slog.Logger,
) usecase.SelectionUsecase {
	// If Selection is not configured, provide a default configuration
	if cfg.Selection == nil {
		cfg.Selection = &config.SelectionConfig{
			OpenDuration:  defaultOpenDuration,
			CloseDuration: defaultCloseDuration,
			MapZoomSpan:   defaultMapZoomSpan,
		}
	}

	openDuration := cfg.Selection.OpenDuration
	if openDuration <= 0 {
		openDuration = defaultOpenDuration
	}

	closeDuration := cfg.Selection.CloseDuration
	if closeDuration <= 0 {
		closeDuration = defaultCloseDuration
	}

	zoomSpan := cfg.Selection.MapZoomSpan
	if zoomSpan <= 0 {
		zoomSpan = defaultMapZoomSpan
	}

	return &selectionService{
		catalog:       catalog,
		mapView:       mapView,
		animator:      animator,
		logger:        logger,
		openDuration:  openDuration,
		closeDuration: closeDuration,
		zoomSpan:      zoomSpan,
		strict:        cfg.Selection.StrictVenueCheck,
		phase:         entity.SelectionClosed,
		transform:     entity.CardClosed,
	}
}

// Select activates a venue and restarts the open animation from its start
// values. Selecting while another card is open or animating supersedes the
// in-flight animation; it never queues behind it.
func (s *selectionService) Select(venueID string) error {
	venue, ok := s.catalog.VenueByID(venueID)
	if !ok {
		if s.strict {
			return usecase.ErrVenueNotInCatalog
		}
		s.logger.Warn("Ignoring selection of unknown venue", slog.String("venueId", venueID))

		return nil
	}

	s.mu.Lock()
	cancel := s.takeCancelLocked()
	s.generation++
	gen := s.generation
	s.phase = entity.SelectionOpening
	s.venueID = venueID
	s.transform = entity.CardClosed
	s.mu.Unlock()

	if cancel != nil {
		cancel()
	}

	s.mapView.CenterOn(venue.Coordinate, s.zoomSpan)

	s.startAnimation(gen, s.openDuration, entity.CardClosed, entity.CardOpen, func() {
		s.phase = entity.SelectionOpen
	})

	return nil
}

// Close animates the card back from wherever the open animation got to and
// clears the active venue on completion. A Close while already closed or
// closing is a no-op.
func (s *selectionService) Close() {
	s.mu.Lock()
	if s.phase == entity.SelectionClosed || s.phase == entity.SelectionClosing {
		s.mu.Unlock()

		return
	}

	cancel := s.takeCancelLocked()
	s.generation++
	gen := s.generation
	s.phase = entity.SelectionClosing
	from := s.transform
	s.mu.Unlock()

	if cancel != nil {
		cancel()
	}

	s.startAnimation(gen, s.closeDuration, from, entity.CardClosed, func() {
		s.phase = entity.SelectionClosed
		s.venueID = ""
	})
}

// IsSelected reports whether venueID is the active venue.
func (s *selectionService) IsSelected(venueID string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.phase != entity.SelectionOpening && s.phase != entity.SelectionOpen {
		return false
	}

	return s.venueID == venueID
}

// State returns the tagged selection state.
func (s *selectionService) State() entity.SelectionState {
	s.mu.Lock()
	defer s.mu.Unlock()

	state := entity.SelectionState{Phase: s.phase}
	if s.phase != entity.SelectionClosed {
		state.VenueID = s.venueID
	}

	return state
}

// Transform returns the card's current animated offset and opacity.
func (s *selectionService) Transform() entity.CardTransform {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.transform
}

// takeCancelLocked detaches the in-flight cancel function. The caller must
// invoke it after releasing the mutex: the animator delivers callbacks that
// take the same mutex.
func (s *selectionService) takeCancelLocked() func() {
	cancel := s.cancelAnim
	s.cancelAnim = nil

	return cancel
}

// startAnimation runs one eased animation between two transforms. Frames
// and completion are guarded by the generation captured at start, so a
// superseded run mutates nothing even if its callbacks are already queued.
func (s *selectionService) startAnimation(gen uint64, duration time.Duration, from, to entity.CardTransform, onComplete func()) {
	cancel := s.animator.Animate(duration,
		func(progress float64) {
			eased := easeOutCubic(progress)

			s.mu.Lock()
			if s.generation == gen {
				s.transform = lerpTransform(from, to, eased)
			}
			s.mu.Unlock()
		},
		func(completed bool) {
			if !completed {
				return
			}

			s.mu.Lock()
			if s.generation == gen {
				s.transform = to
				onComplete()
			}
			s.mu.Unlock()
		},
	)

	s.mu.Lock()
	if s.generation == gen {
		s.cancelAnim = cancel
		s.mu.Unlock()

		return
	}
	s.mu.Unlock()

	// Superseded before the run was registered.
	cancel()
}

func easeOutCubic(progress float64) float64 {
	inverse := 1 - progress

	return 1 - inverse*inverse*inverse
}

func lerpTransform(from, to entity.CardTransform, t float64) entity.CardTransform {
	return entity.CardTransform{
		Offset:  from.Offset + (to.Offset-from.Offset)*t,
		Opacity: from.Opacity + (to.Opacity-from.Opacity)*t,
	}
}
