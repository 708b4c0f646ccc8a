// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"
	"errors"

	"vault/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrFeedNotFound is returned when a JSON-LD feed row is not found.
var ErrFeedNotFound = errors.New("jsonld feed not found")

// JsonLDFeedRepository defines the interface for structured-data feed
// persistence. Feed rows are append-only: there is no update operation.
type JsonLDFeedRepository interface {
	// FindByID retrieves a single feed row by its unique ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.JsonLDFeed, error)

	// FindByBusiness retrieves the full feed history of a business ordered
	// by generation time, newest first.
	FindByBusiness(ctx context.Context, businessID uuid.UUID) ([]*entity.JsonLDFeed, error)

	// CountByBusiness returns the number of feed rows a business has.
	CountByBusiness(ctx context.Context, businessID uuid.UUID) (int64, error)

	// Create appends a new feed row.
	Create(ctx context.Context, feed *entity.JsonLDFeed) error

	// Delete removes a feed row by ID.
	Delete(ctx context.Context, id uuid.UUID) error
}
