package model

import (
	"time"

	"github.com/google/uuid"
)

// BusinessProfileModel mirrors the 'business_profiles' table, the central
// hub every other table hangs off.
type BusinessProfileModel struct {
	ID                 uuid.UUID `gorm:"column:business_id;type:uuid;primary_key;default:uuid_generate_v7()"`
	OwnerID            uuid.UUID `gorm:"type:uuid;not null;index"`
	Name               string    `gorm:"type:varchar(255);not null"`
	Description        string    `gorm:"type:text"`
	BusinessType       string    `gorm:"type:varchar(50)"`
	Phone              string    `gorm:"type:varchar(50)"`
	Website            string    `gorm:"type:varchar(255)"`
	Address            string    `gorm:"type:text"`
	Latitude           *float64
	Longitude          *float64
	Timezone           string `gorm:"type:varchar(64)"`
	QuoteSlogan        string `gorm:"type:text"`
	IdentificationMark string `gorm:"type:varchar(255)"`
	Published          bool   `gorm:"not null;default:true"`
	Version            int    `gorm:"not null;default:1"`
	CreatedAt          time.Time
	UpdatedAt          *time.Time `gorm:"column:updated"`

	Services    []ServiceModel         `gorm:"foreignKey:BusinessID"`
	MediaAssets []MediaAssetModel      `gorm:"foreignKey:BusinessID"`
	Coupons     []CouponModel          `gorm:"foreignKey:BusinessID"`
	AiMetadata  []AiMetadataModel      `gorm:"foreignKey:BusinessID"`
	Operational []OperationalInfoModel `gorm:"foreignKey:BusinessID"`
}

// TableName explicitly sets the table name for GORM.
func (BusinessProfileModel) TableName() string {
	return "business_profiles"
}
