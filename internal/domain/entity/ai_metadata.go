// Package entity contains the core business objects of the project.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// AiMetadata holds the latest AI-extracted SEO signals for a business.
// The generator updates an existing row in place, so a business carries at
// most one current record; readers treat it as an optional enrichment
// source. All fields are stored as comma-separated strings for portability.
type AiMetadata struct {
	ID                uuid.UUID // The Global Unique Identifier (GUID) for the record.
	BusinessID        uuid.UUID // The business this metadata describes.
	ExtractedInsights string    // Marketing hooks distilled by the model.
	DetectedEntities  string    // Named entities the model recognized.
	Keywords          string    // SEO keywords, comma-separated.
	IntentLabels      string    // Search intents the business matches, comma-separated.
	GeneratedAt       time.Time // Timestamp of the last (re)generation.
}
