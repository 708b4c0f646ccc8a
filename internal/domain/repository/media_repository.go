// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"
	"errors"

	"vault/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrMediaNotFound is returned when a media asset is not found.
var ErrMediaNotFound = errors.New("media asset not found")

// MediaRepository defines the interface for media-asset persistence.
type MediaRepository interface {
	// FindByID retrieves a single asset by its unique ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.MediaAsset, error)

	// FindByBusiness retrieves assets of a business in insertion order
	// (upload time ascending). A limit of 0 returns all rows. The directory
	// aggregation and JSON-LD synthesis rely on this order to pick the
	// first-ever uploaded asset.
	FindByBusiness(ctx context.Context, businessID uuid.UUID, limit int) ([]*entity.MediaAsset, error)

	// ListByBusiness retrieves a page of assets ordered by upload time,
	// newest first. Used by the media listing endpoint.
	ListByBusiness(ctx context.Context, businessID uuid.UUID, limit, offset int) ([]*entity.MediaAsset, error)

	// CountByBusiness returns the number of assets a business has.
	CountByBusiness(ctx context.Context, businessID uuid.UUID) (int64, error)

	// Create persists a new asset record.
	Create(ctx context.Context, asset *entity.MediaAsset) error

	// Delete removes an asset record by ID.
	Delete(ctx context.Context, id uuid.UUID) error
}
