package entity

// PageCursor tracks how many fixed-size pages of the catalog have been
// revealed on the map. PagesLoaded only ever grows for a screen instance,
// so the visible count is monotonically non-decreasing.
type PageCursor struct {
	PageSize    int `json:"pageSize"`
	PagesLoaded int `json:"pagesLoaded"`
}

// VisibleCount derives the number of visible venues against the current
// catalog size. The catalog can grow after construction (generated venues
// arrive once the user position resolves), so the count is never cached.
func (c PageCursor) VisibleCount(catalogSize int) int {
	visible := c.PagesLoaded * c.PageSize
	if visible > catalogSize {
		return catalogSize
	}

	return visible
}

// Exhausted reports whether every venue in a catalog of the given size is
// already visible.
func (c PageCursor) Exhausted(catalogSize int) bool {
	return c.VisibleCount(catalogSize) >= catalogSize
}
