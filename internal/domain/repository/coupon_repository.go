// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"
	"errors"

	"vault/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrCouponNotFound is returned when a coupon is not found.
var ErrCouponNotFound = errors.New("coupon not found")

// CouponRepository defines the interface for coupon persistence.
type CouponRepository interface {
	// FindByID retrieves a single coupon by its unique ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Coupon, error)

	// FindByBusiness retrieves coupons of a business ordered by expiry
	// date, latest-expiring first. A limit of 0 returns all rows.
	FindByBusiness(ctx context.Context, businessID uuid.UUID, limit, offset int) ([]*entity.Coupon, error)

	// FindActiveByBusiness retrieves only the coupons of a business whose
	// is_active flag is set.
	FindActiveByBusiness(ctx context.Context, businessID uuid.UUID) ([]*entity.Coupon, error)

	// Create persists a new coupon.
	Create(ctx context.Context, coupon *entity.Coupon) error

	// Update modifies an existing coupon.
	Update(ctx context.Context, coupon *entity.Coupon) error

	// Delete removes a coupon by ID.
	Delete(ctx context.Context, id uuid.UUID) error
}
