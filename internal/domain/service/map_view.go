package service

import "nearby/internal/domain/entity"

// Marker is the id+coordinate pair handed to the external map view.
type Marker struct {
	ID         string            `json:"id"`
	Coordinate entity.Coordinate `json:"coordinate"`
}

// MapView abstracts the external mapping SDK. The core only pushes markers
// and issues imperative recenter commands; rendering and tile fetching stay
// outside this repository.
type MapView interface {
	// SetMarkers replaces the markers shown on the map.
	SetMarkers(markers []Marker)

	// CenterOn recenters the viewport on a coordinate with the given
	// latitude/longitude span.
	CenterOn(coordinate entity.Coordinate, span float64)
}
