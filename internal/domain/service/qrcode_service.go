package service

import (
	"github.com/google/uuid"
)

// QRCodeService defines the interface for QR code generation services
type QRCodeService interface {
	// GenerateBusinessQR generates a QR code pointing at the public page of a business
	GenerateBusinessQR(businessID uuid.UUID) ([]byte, error)
}
