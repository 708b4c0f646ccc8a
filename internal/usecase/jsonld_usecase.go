package usecase

import (
	"context"

	"vault/internal/domain/entity"

	"github.com/google/uuid"
)

// JsonLDUsecase defines the interface for Schema.org structured-data feeds.
// Feeds are append-only snapshots; every generation adds a row.
type JsonLDUsecase interface {
	// GenerateFeed synthesizes a JSON-LD document from the business profile
	// and all of its related records, persists it and returns the new row.
	GenerateFeed(ctx context.Context, businessID uuid.UUID) (*entity.JsonLDFeed, error)

	// ListFeeds retrieves the full feed history of a business, newest first.
	ListFeeds(ctx context.Context, businessID uuid.UUID) ([]*entity.JsonLDFeed, error)

	// GetFeed retrieves a single feed row by ID.
	GetFeed(ctx context.Context, id uuid.UUID) (*entity.JsonLDFeed, error)

	// DeleteFeed removes a feed row.
	DeleteFeed(ctx context.Context, id uuid.UUID) error
}
