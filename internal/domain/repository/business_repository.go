// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"
	"errors"

	"vault/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrBusinessNotFound is returned when a business profile is not found.
var ErrBusinessNotFound = errors.New("business not found")

// BusinessRepository defines the interface for business-profile persistence.
type BusinessRepository interface {
	// FindByID retrieves a single business by its unique ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.BusinessProfile, error)

	// FindByOwner retrieves the first business owned by the given user.
	FindByOwner(ctx context.Context, ownerID uuid.UUID) (*entity.BusinessProfile, error)

	// FindAll retrieves every business profile in the system, in no
	// particular order. Used by the directory aggregation.
	FindAll(ctx context.Context) ([]*entity.BusinessProfile, error)

	// List retrieves a page of businesses ordered by creation date, newest first.
	List(ctx context.Context, limit, offset int) ([]*entity.BusinessProfile, error)

	// Create persists a new business profile.
	Create(ctx context.Context, business *entity.BusinessProfile) error

	// Update modifies an existing business profile.
	Update(ctx context.Context, business *entity.BusinessProfile) error
}
