package model

import (
	"time"

	"github.com/google/uuid"
)

// OperationalInfoModel mirrors the 'operational_info' table. Off days are
// stored as a JSONB array through GORM's json serializer.
type OperationalInfoModel struct {
	ID                    uuid.UUID `gorm:"column:info_id;type:uuid;primary_key;default:uuid_generate_v7()"`
	BusinessID            uuid.UUID `gorm:"type:uuid;not null;uniqueIndex"`
	OpeningHours          string    `gorm:"type:varchar(20);not null"`
	ClosingHours          string    `gorm:"type:varchar(20);not null"`
	OffDays               []string  `gorm:"serializer:json;type:jsonb"`
	DeliveryOptions       string    `gorm:"type:text"`
	ReservationOptions    string    `gorm:"type:text"`
	WifiAvailable         bool      `gorm:"not null;default:false"`
	AccessibilityFeatures string    `gorm:"type:text"`
	NearbyParkingSpot     string    `gorm:"type:text"`
	SpecialNotes          string    `gorm:"type:text"`
	CreatedAt             time.Time
	UpdatedAt             *time.Time
}

// TableName explicitly sets the table name for GORM.
func (OperationalInfoModel) TableName() string {
	return "operational_info"
}
