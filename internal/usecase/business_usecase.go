package usecase

import (
	"context"

	"vault/internal/domain/entity"

	"github.com/google/uuid"
)

// --- Input DTOs ---

// CreateBusinessInput defines the data required to create a business profile.
type CreateBusinessInput struct {
	OwnerID            uuid.UUID `json:"owner_id" validate:"required"`
	Name               string    `json:"name" validate:"required"`
	Description        string    `json:"description"`
	BusinessType       string    `json:"business_type"`
	Phone              string    `json:"phone"`
	Website            string    `json:"website"`
	Address            string    `json:"address"`
	Latitude           *float64  `json:"latitude"`
	Longitude          *float64  `json:"longitude"`
	Timezone           string    `json:"timezone"`
	QuoteSlogan        string    `json:"quote_slogan"`
	IdentificationMark string    `json:"identification_mark"`
	Published          bool      `json:"published"`
}

// UpdateBusinessInput defines the partial update payload for a business.
// Nil fields are left untouched.
type UpdateBusinessInput struct {
	Name               *string  `json:"name"`
	Description        *string  `json:"description"`
	BusinessType       *string  `json:"business_type"`
	Phone              *string  `json:"phone"`
	Website            *string  `json:"website"`
	Address            *string  `json:"address"`
	Latitude           *float64 `json:"latitude"`
	Longitude          *float64 `json:"longitude"`
	Timezone           *string  `json:"timezone"`
	QuoteSlogan        *string  `json:"quote_slogan"`
	IdentificationMark *string  `json:"identification_mark"`
	Published          *bool    `json:"published"`
	Version            *int     `json:"version"`
}

// BusinessUsecase defines the interface for business-profile operations,
// including the cached public directory view.
type BusinessUsecase interface {
	// CreateBusiness creates a profile after verifying the owner exists.
	CreateBusiness(ctx context.Context, input *CreateBusinessInput) (*entity.BusinessProfile, error)

	// GetBusiness retrieves a single profile by ID.
	GetBusiness(ctx context.Context, id uuid.UUID) (*entity.BusinessProfile, error)

	// GetBusinessByOwner retrieves the first profile owned by a user.
	GetBusinessByOwner(ctx context.Context, ownerID uuid.UUID) (*entity.BusinessProfile, error)

	// ListBusinesses retrieves a page of profiles, newest first. The limit
	// is clamped to the 1..100 range and defaults to 10.
	ListBusinesses(ctx context.Context, limit, offset int) ([]*entity.BusinessProfile, error)

	// UpdateBusiness applies a partial update and stamps the modification time.
	UpdateBusiness(ctx context.Context, id uuid.UUID, input *UpdateBusinessInput) (*entity.BusinessProfile, error)

	// GetDirectory serves the aggregated public directory, reading through
	// the TTL snapshot cache.
	GetDirectory(ctx context.Context) ([]*entity.DirectoryEntry, error)

	// BusinessQR renders a PNG QR code pointing at the public page of a
	// business.
	BusinessQR(ctx context.Context, id uuid.UUID) ([]byte, error)
}
