package service

import "github.com/google/uuid"

// QRCodeService generates and parses receipt QR codes attached to orders.
type QRCodeService interface {
	// GenerateReceiptQR returns a PNG QR code encoding the order reference.
	GenerateReceiptQR(orderID uuid.UUID) ([]byte, error)

	// ParseReceiptQR decodes QR payload data back into the order ID.
	ParseReceiptQR(qrData string) (uuid.UUID, error)
}
