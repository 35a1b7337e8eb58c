package impl

import "nearby/internal/domain/entity"

// seedVenues returns a fresh copy of the static seed dataset. The Nearby
// screen always has these even when location permission is denied.
func seedVenues() []*entity.Venue {
	return []*entity.Venue{
		{
			ID:          "cafe-blue-bottle",
			Name:        "Blue Bottle Coffee",
			Address:     "66 Mint St, San Francisco",
			Rating:      4.6,
			Status:      "Open",
			ClosingTime: "Closes 6PM",
			Coordinate:  entity.Coordinate{Latitude: 37.7821, Longitude: -122.4074},
			Images: []string{
				"https://images.nearby.dev/seed/blue-bottle-1.jpg",
				"https://images.nearby.dev/seed/blue-bottle-2.jpg",
			},
		},
		{
			ID:          "cafe-sightglass",
			Name:        "Sightglass Coffee",
			Address:     "270 7th St, San Francisco",
			Rating:      4.5,
			Status:      "Open",
			ClosingTime: "Closes 7PM",
			Coordinate:  entity.Coordinate{Latitude: 37.7767, Longitude: -122.4088},
			Images: []string{
				"https://images.nearby.dev/seed/sightglass-1.jpg",
			},
		},
		{
			ID:          "cafe-ritual",
			Name:        "Ritual Coffee Roasters",
			Address:     "1026 Valencia St, San Francisco",
			Rating:      4.4,
			Status:      "Open",
			ClosingTime: "Closes 8PM",
			Coordinate:  entity.Coordinate{Latitude: 37.7564, Longitude: -122.4214},
			Images: []string{
				"https://images.nearby.dev/seed/ritual-1.jpg",
				"https://images.nearby.dev/seed/ritual-2.jpg",
			},
			VisitDate: "Mar 12",
		},
		{
			ID:          "cafe-four-barrel",
			Name:        "Four Barrel Coffee",
			Address:     "375 Valencia St, San Francisco",
			Rating:      4.3,
			Status:      "Open",
			ClosingTime: "Closes 6PM",
			Coordinate:  entity.Coordinate{Latitude: 37.7670, Longitude: -122.4219},
			Images: []string{
				"https://images.nearby.dev/seed/four-barrel-1.jpg",
			},
		},
		{
			ID:          "cafe-saint-frank",
			Name:        "Saint Frank Coffee",
			Address:     "2340 Polk St, San Francisco",
			Rating:      4.5,
			Status:      "Closing soon",
			ClosingTime: "Closes 5PM",
			Coordinate:  entity.Coordinate{Latitude: 37.7997, Longitude: -122.4220},
			Images: []string{
				"https://images.nearby.dev/seed/saint-frank-1.jpg",
			},
			VisitDate: "Feb 27",
		},
		{
			ID:          "cafe-andytown",
			Name:        "Andytown Coffee Roasters",
			Address:     "3655 Lawton St, San Francisco",
			Rating:      4.7,
			Status:      "Open",
			ClosingTime: "Closes 3PM",
			Coordinate:  entity.Coordinate{Latitude: 37.7570, Longitude: -122.5021},
			Images: []string{
				"https://images.nearby.dev/seed/andytown-1.jpg",
				"https://images.nearby.dev/seed/andytown-2.jpg",
			},
		},
	}
}
