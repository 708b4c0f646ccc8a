package usecase

import (
	"context"
	"time"

	"vault/internal/domain/entity"

	"github.com/google/uuid"
)

// --- Input DTOs ---

// CreateCouponInput defines the data required to publish a coupon.
type CreateCouponInput struct {
	BusinessID      uuid.UUID `json:"business_id" validate:"required"`
	Code            string    `json:"code" validate:"required"`
	Description     string    `json:"description"`
	DiscountValue   string    `json:"discount_value"`
	ValidFrom       time.Time `json:"valid_from"`
	ValidUntil      time.Time `json:"valid_until"`
	TermsConditions string    `json:"terms_conditions"`
	IsActive        *bool     `json:"is_active"`
}

// UpdateCouponInput defines the partial update payload for a coupon.
// Nil fields are left untouched.
type UpdateCouponInput struct {
	Code            *string    `json:"code"`
	Description     *string    `json:"description"`
	DiscountValue   *string    `json:"discount_value"`
	ValidFrom       *time.Time `json:"valid_from"`
	ValidUntil      *time.Time `json:"valid_until"`
	TermsConditions *string    `json:"terms_conditions"`
	IsActive        *bool      `json:"is_active"`
}

// CouponUsecase defines the interface for coupon operations.
type CouponUsecase interface {
	// CreateCoupon publishes a coupon after verifying the business exists.
	// Coupons are active by default.
	CreateCoupon(ctx context.Context, input *CreateCouponInput) (*entity.Coupon, error)

	// GetCoupon retrieves a single coupon by ID.
	GetCoupon(ctx context.Context, id uuid.UUID) (*entity.Coupon, error)

	// ListCoupons retrieves a page of a business's coupons ordered by
	// expiry date, latest-expiring first.
	ListCoupons(ctx context.Context, businessID uuid.UUID, limit, offset int) ([]*entity.Coupon, error)

	// UpdateCoupon applies a partial update.
	UpdateCoupon(ctx context.Context, id uuid.UUID, input *UpdateCouponInput) (*entity.Coupon, error)

	// DeleteCoupon removes a coupon.
	DeleteCoupon(ctx context.Context, id uuid.UUID) error
}
