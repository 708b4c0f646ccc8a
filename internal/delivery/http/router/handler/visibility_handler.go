package handler

import (
	"log/slog"
	"net/http"

	"vault/internal/delivery/http/response"
	"vault/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// VisibilityHandlerParams holds dependencies for VisibilityHandler, injected by Fx.
type VisibilityHandlerParams struct {
	fx.In

	VisibilityUC usecase.VisibilityUsecase
	Logger       *slog.Logger
}

// VisibilityHandler holds dependencies for the SEO visibility handlers.
type VisibilityHandler struct {
	visibilityUC usecase.VisibilityUsecase
	logger       *slog.Logger
}

// NewVisibilityHandler is the constructor for VisibilityHandler.
func NewVisibilityHandler(params VisibilityHandlerParams) *VisibilityHandler {
	return &VisibilityHandler{
		visibilityUC: params.VisibilityUC,
		logger:       params.Logger,
	}
}

// CreateCheckRequest handles logging an audit request without running the engine.
func (h *VisibilityHandler) CreateCheckRequest(c echo.Context) error {
	var input *usecase.CreateCheckInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid check input")
	}

	if err := c.Validate(input); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	check, err := h.visibilityUC.CreateCheckRequest(c.Request().Context(), input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, check, "Check request created successfully")
}

// ListCheckRequests handles retrieving a page of a business's audit requests.
func (h *VisibilityHandler) ListCheckRequests(c echo.Context) error {
	businessID, err := queryUUID(c, "business_id")
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid business ID")
	}

	limit, offset := pagination(c)

	checks, err := h.visibilityUC.ListCheckRequests(c.Request().Context(), businessID, limit, offset)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, checks, "Check requests retrieved successfully")
}

// ListResults handles retrieving a page of a business's audit results.
func (h *VisibilityHandler) ListResults(c echo.Context) error {
	businessID, err := queryUUID(c, "business_id")
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid business ID")
	}

	limit, offset := pagination(c)

	results, err := h.visibilityUC.ListResults(c.Request().Context(), businessID, limit, offset)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, results, "Check results retrieved successfully")
}

// CreateSuggestion handles recording an improvement suggestion.
func (h *VisibilityHandler) CreateSuggestion(c echo.Context) error {
	var input *usecase.CreateSuggestionInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid suggestion input")
	}

	if err := c.Validate(input); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	suggestion, err := h.visibilityUC.CreateSuggestion(c.Request().Context(), input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, suggestion, "Suggestion created successfully")
}

// ListSuggestions handles retrieving a page of a business's suggestions,
// optionally filtered by status.
func (h *VisibilityHandler) ListSuggestions(c echo.Context) error {
	businessID, err := queryUUID(c, "business_id")
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid business ID")
	}

	limit, offset := pagination(c)

	suggestions, err := h.visibilityUC.ListSuggestions(c.Request().Context(), businessID, c.QueryParam("status"), limit, offset)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, suggestions, "Suggestions retrieved successfully")
}

// RunAudit handles grading a business profile. The heuristic fallback makes
// this endpoint succeed even when the model is unavailable.
func (h *VisibilityHandler) RunAudit(c echo.Context) error {
	businessID, err := queryUUID(c, "business_id")
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid business ID")
	}

	result, err := h.visibilityUC.RunAudit(c.Request().Context(), businessID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, result, "Audit completed successfully")
}

// AuditExternalSite handles grading a live external website. Scrape and
// model failures come back inside the report body.
func (h *VisibilityHandler) AuditExternalSite(c echo.Context) error {
	var input *usecase.ExternalAuditInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid audit input")
	}

	if err := c.Validate(input); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	report, err := h.visibilityUC.AuditExternalSite(c.Request().Context(), input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, report, "External audit completed")
}
