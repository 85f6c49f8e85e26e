package service

// QRCodeService defines the interface for QR code generation
type QRCodeService interface {
	// GenerateHandoffQR encodes the order hand-off link as a PNG image
	GenerateHandoffQR(link string) ([]byte, error)
}
