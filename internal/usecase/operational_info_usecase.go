package usecase

import (
	"context"

	"vault/internal/domain/entity"

	"github.com/google/uuid"
)

// --- Input DTOs ---

// CreateOperationalInfoInput defines the data required to record a
// business's operational facts.
type CreateOperationalInfoInput struct {
	BusinessID            uuid.UUID `json:"business_id" validate:"required"`
	OpeningHours          string    `json:"opening_hours"`
	ClosingHours          string    `json:"closing_hours"`
	OffDays               []string  `json:"off_days"`
	DeliveryOptions       string    `json:"delivery_options"`
	ReservationOptions    string    `json:"reservation_options"`
	WifiAvailable         bool      `json:"wifi_available"`
	AccessibilityFeatures string    `json:"accessibility_features"`
	NearbyParkingSpot     string    `json:"nearby_parking_spot"`
	SpecialNotes          string    `json:"special_notes"`
}

// UpdateOperationalInfoInput defines the partial update payload.
// Nil fields are left untouched.
type UpdateOperationalInfoInput struct {
	OpeningHours          *string  `json:"opening_hours"`
	ClosingHours          *string  `json:"closing_hours"`
	OffDays               []string `json:"off_days"`
	DeliveryOptions       *string  `json:"delivery_options"`
	ReservationOptions    *string  `json:"reservation_options"`
	WifiAvailable         *bool    `json:"wifi_available"`
	AccessibilityFeatures *string  `json:"accessibility_features"`
	NearbyParkingSpot     *string  `json:"nearby_parking_spot"`
	SpecialNotes          *string  `json:"special_notes"`
}

// OperationalInfoUsecase defines the interface for operational-info
// operations. Each business carries at most one record.
type OperationalInfoUsecase interface {
	// CreateOperationalInfo records the operational facts of a business.
	// A second record for the same business is rejected as a conflict.
	CreateOperationalInfo(ctx context.Context, input *CreateOperationalInfoInput) (*entity.OperationalInfo, error)

	// GetOperationalInfo retrieves the record of a business.
	GetOperationalInfo(ctx context.Context, businessID uuid.UUID) (*entity.OperationalInfo, error)

	// UpdateOperationalInfo applies a partial update to the record of a
	// business and stamps the modification time.
	UpdateOperationalInfo(ctx context.Context, businessID uuid.UUID, input *UpdateOperationalInfoInput) (*entity.OperationalInfo, error)

	// DeleteOperationalInfo removes the record of a business.
	DeleteOperationalInfo(ctx context.Context, businessID uuid.UUID) error
}
