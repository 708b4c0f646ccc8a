package usecase

import (
	"context"

	"vault/internal/domain/entity"

	"github.com/google/uuid"
)

// --- Input DTOs ---

// CreateMetadataInput defines the data for manually recording AI metadata,
// e.g. when importing results produced out of band.
type CreateMetadataInput struct {
	BusinessID        uuid.UUID `json:"business_id" validate:"required"`
	ExtractedInsights string    `json:"extracted_insights"`
	DetectedEntities  string    `json:"detected_entities"`
	Keywords          string    `json:"keywords"`
	IntentLabels      string    `json:"intent_labels"`
}

// AiMetadataUsecase defines the interface for SEO metadata operations,
// including the model-backed generator.
type AiMetadataUsecase interface {
	// CreateMetadata records a metadata entry after verifying the business
	// exists.
	CreateMetadata(ctx context.Context, input *CreateMetadataInput) (*entity.AiMetadata, error)

	// ListMetadata retrieves a page of a business's metadata records,
	// newest first.
	ListMetadata(ctx context.Context, businessID uuid.UUID, limit, offset int) ([]*entity.AiMetadata, error)

	// GetMetadata retrieves a single record by ID.
	GetMetadata(ctx context.Context, id uuid.UUID) (*entity.AiMetadata, error)

	// DeleteMetadata removes a record.
	DeleteMetadata(ctx context.Context, id uuid.UUID) error

	// GenerateMetadata collates the business profile, its offerings and its
	// hours into a prompt, asks the language model for SEO signals and
	// upserts the business's metadata record with the parsed result.
	GenerateMetadata(ctx context.Context, businessID uuid.UUID) (*entity.AiMetadata, error)
}
