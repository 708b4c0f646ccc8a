// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"
	"errors"

	"vault/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrMetadataNotFound is returned when an AI metadata record is not found.
var ErrMetadataNotFound = errors.New("ai metadata not found")

// AiMetadataRepository defines the interface for AI-metadata persistence.
type AiMetadataRepository interface {
	// FindByID retrieves a single metadata record by its unique ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.AiMetadata, error)

	// FindLatestByBusiness retrieves the current metadata record of a
	// business. Returns ErrMetadataNotFound when the business has none.
	FindLatestByBusiness(ctx context.Context, businessID uuid.UUID) (*entity.AiMetadata, error)

	// FindByBusiness retrieves a page of metadata records of a business
	// ordered by generation time, newest first.
	FindByBusiness(ctx context.Context, businessID uuid.UUID, limit, offset int) ([]*entity.AiMetadata, error)

	// Create persists a new metadata record.
	Create(ctx context.Context, meta *entity.AiMetadata) error

	// Update modifies an existing metadata record in place.
	Update(ctx context.Context, meta *entity.AiMetadata) error

	// Delete removes a metadata record by ID.
	Delete(ctx context.Context, id uuid.UUID) error
}
