// Package qrcode renders redeemed voucher codes as QR images for
// hand-out at the admin console.
package qrcode

import (
	"encoding/json"
	"fmt"

	"givebox/internal/domain/service"

	"github.com/skip2/go-qrcode"
)

type qrcodeService struct {
	size                 int
	errorCorrectionLevel qrcode.RecoveryLevel
}

// QRCodeData represents the QR code data structure
type QRCodeData struct {
	RedeemedCode string `json:"redeemed_code"`
	Type         string `json:"type"`
}

// NewQRCodeService creates a new QR code service instance
func NewQRCodeService(size int, errorCorrectionLevel string) service.QRCodeService {
	// Set error correction level
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

// GenerateOfferQR generates a QR code PNG for a redeemed voucher code.
func (s *qrcodeService) GenerateOfferQR(redeemedCode string) ([]byte, error) {
	data := QRCodeData{
		RedeemedCode: redeemedCode,
		Type:         "redeemed_offer",
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

// ParseOfferQR parses QR code data and returns the redeemed voucher code.
func (s *qrcodeService) ParseOfferQR(qrData string) (string, error) {
	var data QRCodeData
	if err := json.Unmarshal([]byte(qrData), &data); err != nil {
		return "", fmt.Errorf("failed to unmarshal QR code data: %w", err)
	}

	if data.Type != "redeemed_offer" {
		return "", fmt.Errorf("invalid QR code type: %s", data.Type)
	}

	if data.RedeemedCode == "" {
		return "", fmt.Errorf("QR code carries no redeemed code")
	}

	return data.RedeemedCode, nil
}
