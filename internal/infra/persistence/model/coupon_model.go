package model

import (
	"time"

	"github.com/google/uuid"
)

// CouponModel mirrors the 'coupons' table.
type CouponModel struct {
	ID              uuid.UUID `gorm:"column:coupon_id;type:uuid;primary_key;default:uuid_generate_v7()"`
	BusinessID      uuid.UUID `gorm:"type:uuid;not null;index"`
	Code            string    `gorm:"type:varchar(64);not null"`
	Description     string    `gorm:"type:text"`
	DiscountValue   string    `gorm:"type:varchar(64);not null"`
	ValidFrom       time.Time `gorm:"not null"`
	ValidUntil      time.Time `gorm:"not null"`
	TermsConditions string    `gorm:"type:text"`
	IsActive        bool      `gorm:"not null;default:true"`
}

// TableName explicitly sets the table name for GORM.
func (CouponModel) TableName() string {
	return "coupons"
}
