// Package qrcode renders venue deep links as QR codes.
package qrcode

import (
	"encoding/json"
	"fmt"

	"nearby/internal/domain/entity"
	"nearby/internal/domain/service"

	"github.com/skip2/go-qrcode"
)

type qrcodeService struct {
	size                 int
	errorCorrectionLevel qrcode.RecoveryLevel
}

// venueQRData is the QR payload; Type guards against scanning unrelated codes.
type venueQRData struct {
	Type       string            `json:"type"`
	VenueID    string            `json:"venue_id"`
	Name       string            `json:"name"`
	Coordinate entity.Coordinate `json:"coordinate"`
}

const venueQRType = "venue"

// NewQRCodeService creates a new QR code service instance
func NewQRCodeService(size int, errorCorrectionLevel string) service.QRCodeService {
	var level qrcode.RecoveryLevel
	switch errorCorrectionLevel {
	case "L":
		level = qrcode.Low
	case "M":
		level = qrcode.Medium
	case "Q":
		level = qrcode.High
	case "H":
		level = qrcode.Highest
	default:
		level = qrcode.Medium
	}

	return &qrcodeService{
		size:                 size,
		errorCorrectionLevel: level,
	}
}

// GenerateVenueQR renders a PNG QR code for the venue deep link
func (s *qrcodeService) GenerateVenueQR(venue *entity.Venue) ([]byte, error) {
	data := venueQRData{
		Type:       venueQRType,
		VenueID:    venue.ID,
		Name:       venue.Name,
		Coordinate: venue.Coordinate,
	}

	jsonData, err := json.Marshal(data)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal QR code data: %w", err)
	}

	qrCode, err := qrcode.New(string(jsonData), s.errorCorrectionLevel)
	if err != nil {
		return nil, fmt.Errorf("failed to create QR code: %w", err)
	}

	pngBytes, err := qrCode.PNG(s.size)
	if err != nil {
		return nil, fmt.Errorf("failed to generate PNG: %w", err)
	}

	return pngBytes, nil
}

// ParseVenueQR decodes QR payload data back into a venue link
func (s *qrcodeService) ParseVenueQR(qrData string) (*service.VenueLink, error) {
	var data venueQRData
	if err := json.Unmarshal([]byte(qrData), &data); err != nil {
		return nil, fmt.Errorf("failed to unmarshal QR code data: %w", err)
	}

	if data.Type != venueQRType {
		return nil, fmt.Errorf("invalid QR code type: %s", data.Type)
	}
	if data.VenueID == "" {
		return nil, fmt.Errorf("missing venue id in QR code data")
	}

	return &service.VenueLink{
		VenueID:    data.VenueID,
		Name:       data.Name,
		Coordinate: data.Coordinate,
	}, nil
}
