package service

import "nearby/internal/domain/entity"

// VenueLink is the payload encoded in a venue deep-link QR code.
type VenueLink struct {
	VenueID    string            `json:"venue_id"`
	Name       string            `json:"name"`
	Coordinate entity.Coordinate `json:"coordinate"`
}

// QRCodeService generates scannable deep links for venues so a share can
// cross devices without going through a chat thread.
type QRCodeService interface {
	// GenerateVenueQR renders a PNG QR code for the venue deep link.
	GenerateVenueQR(venue *entity.Venue) ([]byte, error)

	// ParseVenueQR decodes QR payload data back into a venue link.
	ParseVenueQR(qrData string) (*VenueLink, error)
}
