package handler

import (
	"log/slog"
	"net/http"

	"vault/internal/delivery/http/response"
	"vault/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// ServiceHandler holds dependencies for service-offering handlers.
type ServiceHandler struct {
	serviceUC usecase.ServiceUsecase
	logger    *slog.Logger
}

// NewServiceHandler is the constructor for ServiceHandler.
func NewServiceHandler(serviceUC usecase.ServiceUsecase, logger *slog.Logger) *ServiceHandler {
	return &ServiceHandler{
		serviceUC: serviceUC,
		logger:    logger,
	}
}

// CreateService handles adding a service offering to a business.
func (h *ServiceHandler) CreateService(c echo.Context) error {
	var input *usecase.CreateServiceInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid service input")
	}

	if err := c.Validate(input); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	svc, err := h.serviceUC.CreateService(c.Request().Context(), input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, svc, "Service created successfully")
}

// GetService handles retrieving a single service offering.
func (h *ServiceHandler) GetService(c echo.Context) error {
	id, err := pathUUID(c, "id")
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid service ID")
	}

	svc, err := h.serviceUC.GetService(c.Request().Context(), id)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, svc, "Service retrieved successfully")
}

// ListServices handles retrieving a page of a business's offerings.
func (h *ServiceHandler) ListServices(c echo.Context) error {
	businessID, err := queryUUID(c, "business_id")
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid business ID")
	}

	limit, offset := pagination(c)

	services, err := h.serviceUC.ListServices(c.Request().Context(), businessID, limit, offset)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, services, "Services retrieved successfully")
}

// UpdateService handles a partial update of a service offering.
func (h *ServiceHandler) UpdateService(c echo.Context) error {
	id, err := pathUUID(c, "id")
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid service ID")
	}

	var input *usecase.UpdateServiceInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid service input")
	}

	svc, err := h.serviceUC.UpdateService(c.Request().Context(), id, input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, svc, "Service updated successfully")
}

// DeleteService handles removing a service offering.
func (h *ServiceHandler) DeleteService(c echo.Context) error {
	id, err := pathUUID(c, "id")
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid service ID")
	}

	if err := h.serviceUC.DeleteService(c.Request().Context(), id); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]string{"message": "Service deleted"}, "Service deleted successfully")
}
