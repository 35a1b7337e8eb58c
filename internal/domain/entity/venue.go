// Package entity contains the core business objects of the project.
package entity

// Coordinate is a geographic coordinate in degrees.
type Coordinate struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// Venue is the core entity for a coffee shop shown on the Nearby map.
// Venues are created once by the catalog (seed data or generator) when the
// screen mounts and are immutable afterwards; they are never deleted during
// a session.
type Venue struct {
	ID          string     `json:"id"`                  // Stable identifier, unique within the catalog.
	Name        string     `json:"name"`                // Display name.
	Address     string     `json:"address"`             // Human-readable street address.
	Rating      float64    `json:"rating"`              // 0.0 to 5.0.
	Status      string     `json:"status"`              // Display string, e.g. "Open", not machine-validated.
	ClosingTime string     `json:"closingTime"`         // Display string, e.g. "Closes 10PM".
	Coordinate  Coordinate `json:"coordinate"`          // Map position.
	Images      []string   `json:"images"`              // Ordered image references, at least one.
	VisitDate   string     `json:"visitDate,omitempty"` // Display string, set only for recently visited entries.
}
