package usecase

import (
	"context"
	"io"

	"vault/internal/domain/entity"

	"github.com/google/uuid"
)

// --- Input DTOs ---

// UploadMediaInput carries one multipart file upload. Content is streamed
// into blob storage; Size is the declared length used for validation.
type UploadMediaInput struct {
	BusinessID uuid.UUID
	MediaType  string
	Filename   string
	AltText    string
	Size       int64
	Content    io.Reader
}

// MediaUsecase defines the interface for media-asset operations.
type MediaUsecase interface {
	// UploadMedia validates the file against the declared media type and
	// the size limit, stores the binary and records the asset.
	UploadMedia(ctx context.Context, input *UploadMediaInput) (*entity.MediaAsset, error)

	// GetMedia retrieves a single asset record by ID.
	GetMedia(ctx context.Context, id uuid.UUID) (*entity.MediaAsset, error)

	// ListMedia retrieves a page of a business's assets, newest first.
	ListMedia(ctx context.Context, businessID uuid.UUID, limit, offset int) ([]*entity.MediaAsset, error)

	// DeleteMedia removes the asset record and makes a best-effort attempt
	// to remove the stored binary.
	DeleteMedia(ctx context.Context, id uuid.UUID) error
}
