// Package entity contains the core business objects of the project.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// JsonLDFeed is one immutable snapshot of the Schema.org structured-data
// document generated for a business. Every synthesis appends a new row;
// history is never mutated or deduplicated.
type JsonLDFeed struct {
	ID               uuid.UUID // The Global Unique Identifier (GUID) for the feed row.
	BusinessID       uuid.UUID // The business the document describes.
	SchemaType       string    // The Schema.org @type, e.g. "Cafe" or "LocalBusiness".
	JsonLDData       string    // The serialized JSON-LD document.
	IsValid          bool      // Whether the document passed construction-time validation.
	ValidationErrors *string   // Validation detail when IsValid is false. Nil otherwise.
	GeneratedAt      time.Time // Timestamp of when this snapshot was produced.
}
