package handler

import (
	"log/slog"
	"net/http"

	"vault/internal/delivery/http/response"
	"vault/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// CouponHandler holds dependencies for coupon handlers.
type CouponHandler struct {
	couponUC usecase.CouponUsecase
	logger   *slog.Logger
}

// NewCouponHandler is the constructor for CouponHandler.
func NewCouponHandler(couponUC usecase.CouponUsecase, logger *slog.Logger) *CouponHandler {
	return &CouponHandler{
		couponUC: couponUC,
		logger:   logger,
	}
}

// CreateCoupon handles publishing a coupon for a business.
func (h *CouponHandler) CreateCoupon(c echo.Context) error {
	var input *usecase.CreateCouponInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid coupon input")
	}

	if err := c.Validate(input); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	coupon, err := h.couponUC.CreateCoupon(c.Request().Context(), input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, coupon, "Coupon created successfully")
}

// GetCoupon handles retrieving a single coupon.
func (h *CouponHandler) GetCoupon(c echo.Context) error {
	id, err := pathUUID(c, "id")
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid coupon ID")
	}

	coupon, err := h.couponUC.GetCoupon(c.Request().Context(), id)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, coupon, "Coupon retrieved successfully")
}

// ListCoupons handles retrieving a page of a business's coupons.
func (h *CouponHandler) ListCoupons(c echo.Context) error {
	businessID, err := queryUUID(c, "business_id")
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid business ID")
	}

	limit, offset := pagination(c)

	coupons, err := h.couponUC.ListCoupons(c.Request().Context(), businessID, limit, offset)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, coupons, "Coupons retrieved successfully")
}

// UpdateCoupon handles a partial update of a coupon.
func (h *CouponHandler) UpdateCoupon(c echo.Context) error {
	id, err := pathUUID(c, "id")
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid coupon ID")
	}

	var input *usecase.UpdateCouponInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid coupon input")
	}

	coupon, err := h.couponUC.UpdateCoupon(c.Request().Context(), id, input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, coupon, "Coupon updated successfully")
}

// DeleteCoupon handles removing a coupon.
func (h *CouponHandler) DeleteCoupon(c echo.Context) error {
	id, err := pathUUID(c, "id")
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid coupon ID")
	}

	if err := h.couponUC.DeleteCoupon(c.Request().Context(), id); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]string{"message": "Coupon deleted"}, "Coupon deleted successfully")
}
