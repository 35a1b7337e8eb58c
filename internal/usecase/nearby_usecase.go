package usecase

import "nearby/internal/domain/entity"

// NearbyUsecase is the viewport paginator: it maps viewport-settle events
// to a monotonically growing visible slice of the catalog in fixed-size
// pages. Deliberately index-based rather than spatially filtered; every
// venue becomes visible after enough settle events and no venue is visible
// before its page is reached.
type NearbyUsecase interface {
	// Initialize resets the cursor to the first page and returns it.
	Initialize() []*entity.Venue

	// OnViewportSettled handles a region-settled signal. If any venue is
	// still hidden another page is revealed; otherwise the slice is
	// returned unchanged. Synchronous and infallible.
	OnViewportSettled() []*entity.Venue

	// Visible returns the current visible slice without advancing.
	Visible() []*entity.Venue

	// Cursor returns the current page cursor.
	Cursor() entity.PageCursor
}
