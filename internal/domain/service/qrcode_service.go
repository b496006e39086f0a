package service

// QRCodeService defines the interface for QR code generation and parsing services
type QRCodeService interface {
	// GenerateOfferQR generates a QR code PNG for a redeemed voucher code.
	GenerateOfferQR(redeemedCode string) ([]byte, error)

	// ParseOfferQR parses QR code data and returns the redeemed voucher code.
	ParseOfferQR(qrData string) (string, error)
}
