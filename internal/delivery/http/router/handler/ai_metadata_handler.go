package handler

import (
	"log/slog"
	"net/http"

	"vault/internal/delivery/http/response"
	"vault/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// AiMetadataHandler holds dependencies for SEO metadata handlers.
type AiMetadataHandler struct {
	metadataUC usecase.AiMetadataUsecase
	logger     *slog.Logger
}

// NewAiMetadataHandler is the constructor for AiMetadataHandler.
func NewAiMetadataHandler(metadataUC usecase.AiMetadataUsecase, logger *slog.Logger) *AiMetadataHandler {
	return &AiMetadataHandler{
		metadataUC: metadataUC,
		logger:     logger,
	}
}

// CreateMetadata handles manually recording a metadata entry.
func (h *AiMetadataHandler) CreateMetadata(c echo.Context) error {
	var input *usecase.CreateMetadataInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid metadata input")
	}

	if err := c.Validate(input); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	metadata, err := h.metadataUC.CreateMetadata(c.Request().Context(), input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, metadata, "Metadata created successfully")
}

// ListMetadata handles retrieving a page of a business's metadata records.
func (h *AiMetadataHandler) ListMetadata(c echo.Context) error {
	businessID, err := queryUUID(c, "business_id")
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid business ID")
	}

	limit, offset := pagination(c)

	records, err := h.metadataUC.ListMetadata(c.Request().Context(), businessID, limit, offset)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, records, "Metadata retrieved successfully")
}

// GetMetadata handles retrieving a single metadata record.
func (h *AiMetadataHandler) GetMetadata(c echo.Context) error {
	id, err := pathUUID(c, "id")
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid metadata ID")
	}

	metadata, err := h.metadataUC.GetMetadata(c.Request().Context(), id)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, metadata, "Metadata retrieved successfully")
}

// DeleteMetadata handles removing a metadata record.
func (h *AiMetadataHandler) DeleteMetadata(c echo.Context) error {
	id, err := pathUUID(c, "id")
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid metadata ID")
	}

	if err := h.metadataUC.DeleteMetadata(c.Request().Context(), id); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]string{"message": "Metadata deleted"}, "Metadata deleted successfully")
}

// GenerateMetadata handles running the SEO metadata generator for a business.
func (h *AiMetadataHandler) GenerateMetadata(c echo.Context) error {
	businessID, err := queryUUID(c, "business_id")
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid business ID")
	}

	metadata, err := h.metadataUC.GenerateMetadata(c.Request().Context(), businessID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, metadata, "Metadata generated successfully")
}
