// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"
	"errors"

	"vault/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrServiceNotFound is returned when a service offering is not found.
var ErrServiceNotFound = errors.New("service not found")

// ServiceRepository defines the interface for service-offering persistence.
type ServiceRepository interface {
	// FindByID retrieves a single service by its unique ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Service, error)

	// FindByBusiness retrieves services of a business ordered by creation
	// date, newest first. A limit of 0 returns all rows.
	FindByBusiness(ctx context.Context, businessID uuid.UUID, limit, offset int) ([]*entity.Service, error)

	// Create persists a new service.
	Create(ctx context.Context, service *entity.Service) error

	// Update modifies an existing service.
	Update(ctx context.Context, service *entity.Service) error

	// Delete removes a service by ID.
	Delete(ctx context.Context, id uuid.UUID) error
}
