package impl

import (
	"testing"

	"nearby/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func pagedConfig(pageSize int) *config.Config {
	return &config.Config{
		Catalog: &config.CatalogConfig{PageSize: pageSize},
	}
}

func TestNearbyService_Initialize_FirstPage(t *testing.T) {
	catalog := newStubCatalog(makeVenues(25)...)
	nearby := NewNearbyService(pagedConfig(10), catalog)

	visible := nearby.Initialize()

	require.Len(t, visible, 10)
	assert.Equal(t, "venue-000", visible[0].ID)
	assert.Equal(t, "venue-009", visible[9].ID)

	cursor := nearby.Cursor()
	assert.Equal(t, 10, cursor.PageSize)
	assert.Equal(t, 1, cursor.PagesLoaded)
	assert.False(t, cursor.Exhausted(catalog.Size()))
}

func TestNearbyService_OnViewportSettled_RevealsPages(t *testing.T) {
	catalog := newStubCatalog(makeVenues(25)...)
	nearby := NewNearbyService(pagedConfig(10), catalog)
	nearby.Initialize()

	assert.Len(t, nearby.OnViewportSettled(), 20)
	assert.Len(t, nearby.OnViewportSettled(), 25)

	// Catalog exhausted, further settles change nothing.
	assert.Len(t, nearby.OnViewportSettled(), 25)
	assert.Len(t, nearby.OnViewportSettled(), 25)
	assert.Equal(t, 3, nearby.Cursor().PagesLoaded)
}

func TestNearbyService_VisibleCount_Monotonic(t *testing.T) {
	catalog := newStubCatalog(makeVenues(25)...)
	nearby := NewNearbyService(pagedConfig(10), catalog)
	nearby.Initialize()

	previous := 0
	for i := 0; i < 6; i++ {
		visible := nearby.OnViewportSettled()
		require.GreaterOrEqual(t, len(visible), previous)
		previous = len(visible)
	}
}

func TestNearbyService_VisiblePrefix_IsStable(t *testing.T) {
	catalog := newStubCatalog(makeVenues(25)...)
	nearby := NewNearbyService(pagedConfig(10), catalog)

	first := nearby.Initialize()
	second := nearby.OnViewportSettled()

	// Every already-visible venue stays visible at the same position.
	for i, venue := range first {
		assert.Equal(t, venue.ID, second[i].ID)
	}
}

func TestNearbyService_CatalogGrowth_RevealsNewVenues(t *testing.T) {
	catalog := newStubCatalog(makeVenues(6)...)
	nearby := NewNearbyService(pagedConfig(10), catalog)

	// A small catalog is fully visible on the first page.
	require.Len(t, nearby.Initialize(), 6)
	assert.True(t, nearby.Cursor().Exhausted(catalog.Size()))

	// Generated venues arrive after the position resolves; the same cursor
	// now exposes more of the first page.
	catalog.add(makeVenues(21)[6:]...)
	require.Len(t, nearby.Visible(), 10)

	assert.Len(t, nearby.OnViewportSettled(), 20)
	assert.Len(t, nearby.OnViewportSettled(), 21)
}

func TestNearbyService_Initialize_ResetsCursor(t *testing.T) {
	catalog := newStubCatalog(makeVenues(25)...)
	nearby := NewNearbyService(pagedConfig(10), catalog)
	nearby.Initialize()
	nearby.OnViewportSettled()
	nearby.OnViewportSettled()

	visible := nearby.Initialize()

	assert.Len(t, visible, 10)
	assert.Equal(t, 1, nearby.Cursor().PagesLoaded)
}

func TestNearbyService_DefaultPageSize(t *testing.T) {
	catalog := newStubCatalog(makeVenues(25)...)
	nearby := NewNearbyService(&config.Config{}, catalog)

	assert.Len(t, nearby.Initialize(), defaultPageSize)
}
