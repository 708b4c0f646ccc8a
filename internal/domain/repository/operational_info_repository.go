// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"
	"errors"

	"vault/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrOperationalInfoNotFound is returned when a business has no operational info record.
var ErrOperationalInfoNotFound = errors.New("operational info not found")

// OperationalInfoRepository defines the interface for operational-info persistence.
// A business has at most one record; the use case layer enforces this with an
// existence check before creation.
type OperationalInfoRepository interface {
	// FindByBusiness retrieves the operational info of a business.
	// Returns ErrOperationalInfoNotFound when the business has none.
	FindByBusiness(ctx context.Context, businessID uuid.UUID) (*entity.OperationalInfo, error)

	// Create persists a new operational info record.
	Create(ctx context.Context, info *entity.OperationalInfo) error

	// Update modifies an existing operational info record.
	Update(ctx context.Context, info *entity.OperationalInfo) error

	// DeleteByBusiness removes the operational info record of a business.
	DeleteByBusiness(ctx context.Context, businessID uuid.UUID) error
}
