package impl

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"sync"
	"time"

	"nearby/internal/domain/entity"
	"nearby/internal/domain/repository"
	"nearby/internal/domain/service"
	"nearby/internal/usecase"

	"github.com/pkg/errors"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// stubCatalog is a fixed, growable venue list implementing CatalogUsecase.
type stubCatalog struct {
	mu     sync.Mutex
	venues []*entity.Venue
}

func newStubCatalog(venues ...*entity.Venue) *stubCatalog {
	return &stubCatalog{venues: venues}
}

func (c *stubCatalog) Populate(_ context.Context) error { return nil }

func (c *stubCatalog) Venues() []*entity.Venue {
	c.mu.Lock()
	defer c.mu.Unlock()

	venues := make([]*entity.Venue, len(c.venues))
	copy(venues, c.venues)

	return venues
}

func (c *stubCatalog) VenueByID(id string) (*entity.Venue, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	for _, venue := range c.venues {
		if venue.ID == id {
			return venue, true
		}
	}

	return nil, false
}

func (c *stubCatalog) Size() int {
	c.mu.Lock()
	defer c.mu.Unlock()

	return len(c.venues)
}

func (c *stubCatalog) Degraded() bool { return false }

func (c *stubCatalog) add(venues ...*entity.Venue) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.venues = append(c.venues, venues...)
}

var _ usecase.CatalogUsecase = (*stubCatalog)(nil)

func makeVenues(count int) []*entity.Venue {
	venues := make([]*entity.Venue, 0, count)
	for i := 0; i < count; i++ {
		venues = append(venues, &entity.Venue{
			ID:   fmt.Sprintf("venue-%03d", i),
			Name: fmt.Sprintf("Venue %d", i),
			Coordinate: entity.Coordinate{
				Latitude:  37.7 + float64(i)*0.001,
				Longitude: -122.4 - float64(i)*0.001,
			},
		})
	}

	return venues
}

// fakeLocationProvider drives the catalog permission flow.
type fakeLocationProvider struct {
	granted       bool
	permissionErr error
	position      entity.Coordinate
	positionErr   error
}

func (p *fakeLocationProvider) RequestForegroundPermission(_ context.Context) (bool, error) {
	return p.granted, p.permissionErr
}

func (p *fakeLocationProvider) CurrentPosition(_ context.Context) (entity.Coordinate, error) {
	return p.position, p.positionErr
}

// fakeMapView records marker and recenter calls.
type fakeMapView struct {
	mu      sync.Mutex
	markers [][]service.Marker
	centers []entity.Coordinate
}

func (v *fakeMapView) SetMarkers(markers []service.Marker) {
	v.mu.Lock()
	defer v.mu.Unlock()

	v.markers = append(v.markers, markers)
}

func (v *fakeMapView) CenterOn(coordinate entity.Coordinate, _ float64) {
	v.mu.Lock()
	defer v.mu.Unlock()

	v.centers = append(v.centers, coordinate)
}

func (v *fakeMapView) centeredOn() []entity.Coordinate {
	v.mu.Lock()
	defer v.mu.Unlock()

	centers := make([]entity.Coordinate, len(v.centers))
	copy(centers, v.centers)

	return centers
}

// animRun is one recorded animation started on a manualAnimator.
type animRun struct {
	duration time.Duration
	frame    func(progress float64)
	done     func(completed bool)

	mu       sync.Mutex
	canceled bool
}

func (r *animRun) isCanceled() bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	return r.canceled
}

// settle drives the run to completion the way the real animator would.
func (r *animRun) settle() {
	r.frame(1)
	r.done(true)
}

// manualAnimator records animation runs and lets tests drive frames and
// completion deterministically.
type manualAnimator struct {
	mu   sync.Mutex
	runs []*animRun
}

func (a *manualAnimator) Animate(duration time.Duration, frame func(progress float64), done func(completed bool)) (cancel func()) {
	run := &animRun{duration: duration, frame: frame, done: done}

	a.mu.Lock()
	a.runs = append(a.runs, run)
	a.mu.Unlock()

	return func() {
		run.mu.Lock()
		alreadyCanceled := run.canceled
		run.canceled = true
		run.mu.Unlock()

		if !alreadyCanceled {
			done(false)
		}
	}
}

func (a *manualAnimator) run(index int) *animRun {
	a.mu.Lock()
	defer a.mu.Unlock()

	return a.runs[index]
}

func (a *manualAnimator) runCount() int {
	a.mu.Lock()
	defer a.mu.Unlock()

	return len(a.runs)
}

var _ service.Animator = (*manualAnimator)(nil)

// failingKVStore wraps a store and fails writes to one key.
type failingKVStore struct {
	repository.KVStore
	failKey string
}

func (s *failingKVStore) Set(ctx context.Context, key, value string) error {
	if key == s.failKey {
		return errors.New("write rejected")
	}

	return s.KVStore.Set(ctx, key, value)
}

// fakePublisher records published share events.
type fakePublisher struct {
	mu     sync.Mutex
	events []*service.ShareEvent
	err    error
}

func (p *fakePublisher) PublishShareEvent(_ context.Context, event *service.ShareEvent) error {
	if p.err != nil {
		return p.err
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	p.events = append(p.events, event)

	return nil
}

func (p *fakePublisher) Close() error { return nil }

func (p *fakePublisher) published() []*service.ShareEvent {
	p.mu.Lock()
	defer p.mu.Unlock()

	events := make([]*service.ShareEvent, len(p.events))
	copy(events, p.events)

	return events
}
