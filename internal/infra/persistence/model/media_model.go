package model

import (
	"time"

	"github.com/google/uuid"
)

// MediaAssetModel mirrors the 'media_assets' table.
type MediaAssetModel struct {
	ID         uuid.UUID `gorm:"column:asset_id;type:uuid;primary_key;default:uuid_generate_v7()"`
	BusinessID uuid.UUID `gorm:"type:uuid;not null;index"`
	MediaType  string    `gorm:"type:varchar(20);not null"`
	URL        string    `gorm:"type:text;not null"`
	AltText    string    `gorm:"type:text"`
	UploadedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (MediaAssetModel) TableName() string {
	return "media_assets"
}
