// Package entity contains the core business objects of the project.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// Coupon is a promotional code published by a business. Only active coupons
// are exposed in structured-data feeds.
type Coupon struct {
	ID              uuid.UUID // The Global Unique Identifier (GUID) for the coupon.
	BusinessID      uuid.UUID // The business this coupon belongs to.
	Code            string    // The redeemable code, e.g. "WELCOME10".
	Description     string    // Human-readable description of the offer.
	DiscountValue   string    // Discount as entered by the owner, e.g. "10%" or "50 INR".
	ValidFrom       time.Time // Start of the validity window.
	ValidUntil      time.Time // End of the validity window.
	TermsConditions string    // Free-text terms and conditions.
	IsActive        bool      // Whether the coupon is currently redeemable.
}
