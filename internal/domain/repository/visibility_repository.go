// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"
	"errors"

	"vault/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrCheckRequestNotFound is returned when an audit request row is not found.
var ErrCheckRequestNotFound = errors.New("visibility check request not found")

// VisibilityRepository defines the interface for audit request, result and
// suggestion persistence. All three tables are part of the same audit
// workflow, so they share one repository.
type VisibilityRepository interface {
	// CreateCheckRequest records a new audit request.
	CreateCheckRequest(ctx context.Context, req *entity.VisibilityCheckRequest) error

	// FindCheckRequestByID retrieves a single audit request by ID.
	FindCheckRequestByID(ctx context.Context, id uuid.UUID) (*entity.VisibilityCheckRequest, error)

	// FindChecksByBusiness retrieves a page of a business's audit requests,
	// newest first.
	FindChecksByBusiness(ctx context.Context, businessID uuid.UUID, limit, offset int) ([]*entity.VisibilityCheckRequest, error)

	// CreateResult records a completed audit result.
	CreateResult(ctx context.Context, result *entity.VisibilityCheckResult) error

	// FindResultsByBusiness retrieves a page of a business's audit results,
	// newest first.
	FindResultsByBusiness(ctx context.Context, businessID uuid.UUID, limit, offset int) ([]*entity.VisibilityCheckResult, error)

	// CreateSuggestion records a new improvement suggestion.
	CreateSuggestion(ctx context.Context, suggestion *entity.VisibilitySuggestion) error

	// FindSuggestionsByBusiness retrieves a page of a business's suggestions,
	// newest first. An empty status matches every state.
	FindSuggestionsByBusiness(ctx context.Context, businessID uuid.UUID, status string, limit, offset int) ([]*entity.VisibilitySuggestion, error)
}
