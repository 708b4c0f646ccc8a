// Package entity contains the core business objects of the project.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// Media asset categories. The upload path validates file extensions against
// the declared category.
const (
	MediaTypeImage    = "image"
	MediaTypeVideo    = "video"
	MediaTypeDocument = "document"
)

// MediaAsset is a reference to an uploaded image, video or document that
// belongs to a business. The binary itself lives in blob storage; only the
// public URL is recorded here.
type MediaAsset struct {
	ID         uuid.UUID // The Global Unique Identifier (GUID) for the asset.
	BusinessID uuid.UUID // The business this asset belongs to.
	MediaType  string    // One of MediaTypeImage, MediaTypeVideo, MediaTypeDocument.
	URL        string    // Public URL under which the asset is served.
	AltText    string    // Alternative text for accessibility. May be empty.
	UploadedAt time.Time // Timestamp of when the asset was uploaded.
}
