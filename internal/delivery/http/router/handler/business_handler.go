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

// BusinessHandlerParams holds dependencies for BusinessHandler, injected by Fx.
type BusinessHandlerParams struct {
	fx.In

	BusinessUC usecase.BusinessUsecase
	Logger     *slog.Logger
}

// BusinessHandler holds dependencies for business-profile handlers.
type BusinessHandler struct {
	businessUC usecase.BusinessUsecase
	logger     *slog.Logger
}

// NewBusinessHandler is the constructor for BusinessHandler.
func NewBusinessHandler(params BusinessHandlerParams) *BusinessHandler {
	return &BusinessHandler{
		businessUC: params.BusinessUC,
		logger:     params.Logger,
	}
}

// CreateBusiness handles creating a new business profile.
func (h *BusinessHandler) CreateBusiness(c echo.Context) error {
	var input *usecase.CreateBusinessInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid business input")
	}

	if err := c.Validate(input); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	business, err := h.businessUC.CreateBusiness(c.Request().Context(), input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, business, "Business created successfully")
}

// GetBusiness handles retrieving a single business profile.
func (h *BusinessHandler) GetBusiness(c echo.Context) error {
	id, err := pathUUID(c, "id")
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid business ID")
	}

	business, err := h.businessUC.GetBusiness(c.Request().Context(), id)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, business, "Business retrieved successfully")
}

// GetBusinessByOwner handles retrieving the profile owned by a user.
func (h *BusinessHandler) GetBusinessByOwner(c echo.Context) error {
	ownerID, err := pathUUID(c, "ownerID")
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid owner ID")
	}

	business, err := h.businessUC.GetBusinessByOwner(c.Request().Context(), ownerID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, business, "Business retrieved successfully")
}

// ListBusinesses handles retrieving a page of business profiles.
func (h *BusinessHandler) ListBusinesses(c echo.Context) error {
	limit, offset := pagination(c)

	businesses, err := h.businessUC.ListBusinesses(c.Request().Context(), limit, offset)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, businesses, "Businesses retrieved successfully")
}

// UpdateBusiness handles a partial update of a business profile.
func (h *BusinessHandler) UpdateBusiness(c echo.Context) error {
	id, err := pathUUID(c, "id")
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid business ID")
	}

	var input *usecase.UpdateBusinessInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid business input")
	}

	business, err := h.businessUC.UpdateBusiness(c.Request().Context(), id, input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, business, "Business updated successfully")
}

// GetDirectory handles the aggregated public directory view.
func (h *BusinessHandler) GetDirectory(c echo.Context) error {
	entries, err := h.businessUC.GetDirectory(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, entries, "Directory retrieved successfully")
}

// BusinessQR renders a PNG QR code pointing at the public business page.
func (h *BusinessHandler) BusinessQR(c echo.Context) error {
	id, err := pathUUID(c, "id")
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid business ID")
	}

	png, err := h.businessUC.BusinessQR(c.Request().Context(), id)
	if err != nil {
		return errors.WithStack(err)
	}

	return c.Blob(http.StatusOK, "image/png", png)
}
