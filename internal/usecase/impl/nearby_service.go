package impl

import (
	"sync"

	"nearby/config"
	"nearby/internal/domain/entity"
	"nearby/internal/usecase"
)

const defaultPageSize = 10

// nearbyService implements the viewport paginator. The reveal policy is
// index-based on purpose: a settle event reveals the next page regardless
// of the viewport geometry, until the catalog is exhausted.
type nearbyService struct {
	catalog usecase.CatalogUsecase

	mu     sync.Mutex
	cursor entity.PageCursor
}

// NewNearbyService creates a new viewport paginator over the catalog.
func NewNearbyService(cfg *config.Config, catalog usecase.CatalogUsecase) usecase.NearbyUsecase {
	pageSize := defaultPageSize
	if cfg.Catalog != nil && cfg.Catalog.PageSize > 0 {
		pageSize = cfg.Catalog.PageSize
	}

	return &nearbyService{
		catalog: catalog,
		cursor: entity.PageCursor{
			PageSize:    pageSize,
			PagesLoaded: 1,
		},
	}
}

// Initialize resets the cursor to the first page and returns it.
func (s *nearbyService) Initialize() []*entity.Venue {
	s.mu.Lock()
	s.cursor.PagesLoaded = 1
	s.mu.Unlock()

	return s.Visible()
}

// OnViewportSettled reveals another page while any venue is still hidden.
// The visible count is re-derived against the current catalog size on
// every call: the catalog can grow after the user position resolves.
func (s *nearbyService) OnViewportSettled() []*entity.Venue {
	s.mu.Lock()
	if !s.cursor.Exhausted(s.catalog.Size()) {
		s.cursor.PagesLoaded++
	}
	s.mu.Unlock()

	return s.Visible()
}

// Visible returns the current visible slice without advancing.
func (s *nearbyService) Visible() []*entity.Venue {
	venues := s.catalog.Venues()

	s.mu.Lock()
	count := s.cursor.VisibleCount(len(venues))
	s.mu.Unlock()

	return venues[:count]
}

// Cursor returns the current page cursor.
func (s *nearbyService) Cursor() entity.PageCursor {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.cursor
}
