package usecase

import (
	"context"

	"vault/internal/domain/entity"

	"github.com/google/uuid"
)

// --- Input DTOs ---

// CreateCheckInput logs an audit request without running the engine.
type CreateCheckInput struct {
	BusinessID uuid.UUID `json:"business_id" validate:"required"`
	CheckType  string    `json:"check_type" validate:"required"`
	InputData  string    `json:"input_data"`
}

// CreateSuggestionInput records one actionable improvement for the owner.
type CreateSuggestionInput struct {
	BusinessID     uuid.UUID `json:"business_id" validate:"required"`
	SuggestionType string    `json:"suggestion_type" validate:"required"`
	Title          string    `json:"title" validate:"required"`
}

// ExternalAuditInput names the external website to audit.
type ExternalAuditInput struct {
	URL string `json:"url" validate:"required,url"`
}

// ExternalAuditReport is the loosely shaped report of an external website
// audit. The model owns the exact keys; scrape and model failures surface
// as structured error entries instead of transport errors.
type ExternalAuditReport map[string]any

// VisibilityUsecase defines the interface for the SEO visibility engine.
type VisibilityUsecase interface {
	// CreateCheckRequest logs an audit request for a business.
	CreateCheckRequest(ctx context.Context, input *CreateCheckInput) (*entity.VisibilityCheckRequest, error)

	// ListCheckRequests retrieves a page of a business's audit requests,
	// newest first.
	ListCheckRequests(ctx context.Context, businessID uuid.UUID, limit, offset int) ([]*entity.VisibilityCheckRequest, error)

	// ListResults retrieves a page of a business's audit results, newest first.
	ListResults(ctx context.Context, businessID uuid.UUID, limit, offset int) ([]*entity.VisibilityCheckResult, error)

	// CreateSuggestion records an improvement suggestion in the pending state.
	CreateSuggestion(ctx context.Context, input *CreateSuggestionInput) (*entity.VisibilitySuggestion, error)

	// ListSuggestions retrieves a page of a business's suggestions, newest
	// first. An empty status matches every state.
	ListSuggestions(ctx context.Context, businessID uuid.UUID, status string, limit, offset int) ([]*entity.VisibilitySuggestion, error)

	// RunAudit collates the profile facts, asks the model for a strict
	// visibility grade and persists the result. When the model is
	// unavailable it falls back to a deterministic heuristic score, so a
	// result row is recorded either way.
	RunAudit(ctx context.Context, businessID uuid.UUID) (*entity.VisibilityCheckResult, error)

	// AuditExternalSite scrapes a live website and asks the model to grade
	// its SEO health. Failures come back inside the report, never as an
	// error.
	AuditExternalSite(ctx context.Context, input *ExternalAuditInput) (ExternalAuditReport, error)
}
