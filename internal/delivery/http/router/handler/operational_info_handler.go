package handler

import (
	"log/slog"
	"net/http"

	"vault/internal/delivery/http/response"
	"vault/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// OperationalInfoHandler holds dependencies for operational-info handlers.
type OperationalInfoHandler struct {
	opInfoUC usecase.OperationalInfoUsecase
	logger   *slog.Logger
}

// NewOperationalInfoHandler is the constructor for OperationalInfoHandler.
func NewOperationalInfoHandler(opInfoUC usecase.OperationalInfoUsecase, logger *slog.Logger) *OperationalInfoHandler {
	return &OperationalInfoHandler{
		opInfoUC: opInfoUC,
		logger:   logger,
	}
}

// CreateOperationalInfo handles recording a business's operational facts.
// Each business carries at most one record.
func (h *OperationalInfoHandler) CreateOperationalInfo(c echo.Context) error {
	var input *usecase.CreateOperationalInfoInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid operational info input")
	}

	if err := c.Validate(input); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	info, err := h.opInfoUC.CreateOperationalInfo(c.Request().Context(), input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, info, "Operational info created successfully")
}

// GetOperationalInfo handles retrieving the record of a business.
func (h *OperationalInfoHandler) GetOperationalInfo(c echo.Context) error {
	businessID, err := pathUUID(c, "businessID")
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid business ID")
	}

	info, err := h.opInfoUC.GetOperationalInfo(c.Request().Context(), businessID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, info, "Operational info retrieved successfully")
}

// UpdateOperationalInfo handles a partial update of the record of a business.
func (h *OperationalInfoHandler) UpdateOperationalInfo(c echo.Context) error {
	businessID, err := pathUUID(c, "businessID")
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid business ID")
	}

	var input *usecase.UpdateOperationalInfoInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid operational info input")
	}

	info, err := h.opInfoUC.UpdateOperationalInfo(c.Request().Context(), businessID, input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, info, "Operational info updated successfully")
}

// DeleteOperationalInfo handles removing the record of a business.
func (h *OperationalInfoHandler) DeleteOperationalInfo(c echo.Context) error {
	businessID, err := pathUUID(c, "businessID")
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid business ID")
	}

	if err := h.opInfoUC.DeleteOperationalInfo(c.Request().Context(), businessID); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]string{"message": "Operational info deleted"}, "Operational info deleted successfully")
}
