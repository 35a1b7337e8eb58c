package qrcode

import (
	"bytes"
	"encoding/json"
	"testing"

	"nearby/internal/domain/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var pngMagic = []byte{0x89, 'P', 'N', 'G'}

func TestQRCodeService_GenerateVenueQR(t *testing.T) {
	service := NewQRCodeService(256, "M")
	venue := &entity.Venue{
		ID:   "cafe-blue-bottle",
		Name: "Blue Bottle Coffee",
		Coordinate: entity.Coordinate{
			Latitude:  37.7825,
			Longitude: -122.4077,
		},
	}

	png, err := service.GenerateVenueQR(venue)
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(png, pngMagic))
}

func TestQRCodeService_ParseVenueQR_RoundTrip(t *testing.T) {
	service := NewQRCodeService(256, "M")
	venue := &entity.Venue{
		ID:   "cafe-sightglass",
		Name: "Sightglass Coffee",
		Coordinate: entity.Coordinate{
			Latitude:  37.7767,
			Longitude: -122.4089,
		},
	}

	payload, err := json.Marshal(venueQRData{
		Type:       venueQRType,
		VenueID:    venue.ID,
		Name:       venue.Name,
		Coordinate: venue.Coordinate,
	})
	require.NoError(t, err)

	link, err := service.ParseVenueQR(string(payload))
	require.NoError(t, err)
	assert.Equal(t, venue.ID, link.VenueID)
	assert.Equal(t, venue.Name, link.Name)
	assert.Equal(t, venue.Coordinate, link.Coordinate)
}

func TestQRCodeService_ParseVenueQR_RejectsForeignPayloads(t *testing.T) {
	service := NewQRCodeService(256, "M")

	_, err := service.ParseVenueQR("not json at all")
	require.Error(t, err)

	_, err = service.ParseVenueQR(`{"type":"wifi","venue_id":"x"}`)
	require.Error(t, err)

	_, err = service.ParseVenueQR(`{"type":"venue"}`)
	require.Error(t, err)
}
