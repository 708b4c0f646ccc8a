// Package entity contains the core business objects of the project.
package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Visibility check categories.
const (
	CheckTypeVisibility         = "visibility"
	CheckTypeContentEnhancement = "content_enhancement"
	CheckTypeSchemaCompleteness = "schema_completeness"
)

// Visibility suggestion lifecycle states.
const (
	SuggestionStatusPending     = "pending"
	SuggestionStatusImplemented = "implemented"
	SuggestionStatusRejected    = "rejected"
)

// VisibilityCheckRequest logs one audit request for a business profile.
type VisibilityCheckRequest struct {
	ID          uuid.UUID // The Global Unique Identifier (GUID) for the request.
	BusinessID  uuid.UUID // The business being audited.
	CheckType   string    // One of the CheckType constants.
	InputData   string    // A short summary of the profile facts fed to the audit.
	RequestedAt time.Time // Timestamp of when the audit was requested.
}

// VisibilityCheckResult stores the scores and findings of one completed
// audit run, whether produced by the model or by the heuristic fallback.
type VisibilityCheckResult struct {
	ID              uuid.UUID       // The Global Unique Identifier (GUID) for the result.
	RequestID       uuid.UUID       // The audit request this result answers.
	BusinessID      uuid.UUID       // The business that was audited.
	VisibilityScore decimal.Decimal // Score in the 0-100 range, two decimal digits.
	IssuesFound     string          // Semicolon-separated list of detected issues.
	Recommendations string          // Actionable recommendations, composite string.
	OutputSnapshot  string          // Bounded excerpt of the raw model output, for troubleshooting.
	CompletedAt     time.Time       // Timestamp of when the audit finished.
}

// VisibilitySuggestion is one actionable SEO task generated for the owner.
type VisibilitySuggestion struct {
	ID             uuid.UUID  // The Global Unique Identifier (GUID) for the suggestion.
	BusinessID     uuid.UUID  // The business the suggestion applies to.
	SuggestionType string     // e.g. "metadata_enhancement", "content_update", "seo".
	Title          string     // Short description of the task.
	Status         string     // One of the SuggestionStatus constants.
	SuggestedAt    time.Time  // Timestamp of when the suggestion was created.
	ResolvedAt     *time.Time // Timestamp of resolution. Nil while pending.
}
