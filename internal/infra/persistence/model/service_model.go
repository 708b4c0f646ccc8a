package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ServiceModel mirrors the 'services' table. Prices are NUMERIC(10,2) so
// financial values never round through floats.
type ServiceModel struct {
	ID          uuid.UUID       `gorm:"column:service_id;type:uuid;primary_key;default:uuid_generate_v7()"`
	BusinessID  uuid.UUID       `gorm:"type:uuid;not null;index"`
	ServiceType string          `gorm:"type:varchar(50);not null"`
	Name        string          `gorm:"type:varchar(255);not null"`
	Description string          `gorm:"type:text"`
	Price       decimal.Decimal `gorm:"type:numeric(10,2);not null"`
	Currency    string          `gorm:"type:varchar(3);not null;default:INR"`
	IsAvailable bool            `gorm:"not null;default:true"`
	CreatedAt   time.Time
	UpdatedAt   *time.Time
}

// TableName explicitly sets the table name for GORM.
func (ServiceModel) TableName() string {
	return "services"
}
