package usecase

import (
	"context"

	"vault/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// --- Input DTOs ---

// CreateServiceInput defines the data required to add a service offering.
type CreateServiceInput struct {
	BusinessID  uuid.UUID       `json:"business_id" validate:"required"`
	ServiceType string          `json:"service_type"`
	Name        string          `json:"name" validate:"required"`
	Description string          `json:"description"`
	Price       decimal.Decimal `json:"price"`
	Currency    string          `json:"currency"`
	IsAvailable *bool           `json:"is_available"`
}

// UpdateServiceInput defines the partial update payload for a service.
// Nil fields are left untouched.
type UpdateServiceInput struct {
	ServiceType *string          `json:"service_type"`
	Name        *string          `json:"name"`
	Description *string          `json:"description"`
	Price       *decimal.Decimal `json:"price"`
	Currency    *string          `json:"currency"`
	IsAvailable *bool            `json:"is_available"`
}

// ServiceUsecase defines the interface for service-offering operations.
type ServiceUsecase interface {
	// CreateService adds an offering after verifying the business exists.
	// Currency defaults to entity.DefaultCurrency and availability to true.
	CreateService(ctx context.Context, input *CreateServiceInput) (*entity.Service, error)

	// GetService retrieves a single offering by ID.
	GetService(ctx context.Context, id uuid.UUID) (*entity.Service, error)

	// ListServices retrieves a page of a business's offerings, newest first.
	ListServices(ctx context.Context, businessID uuid.UUID, limit, offset int) ([]*entity.Service, error)

	// UpdateService applies a partial update.
	UpdateService(ctx context.Context, id uuid.UUID, input *UpdateServiceInput) (*entity.Service, error)

	// DeleteService removes an offering.
	DeleteService(ctx context.Context, id uuid.UUID) error
}
