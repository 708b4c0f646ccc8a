package model

import (
	"time"

	"github.com/google/uuid"
)

// JsonLDFeedModel mirrors the 'jsonld_feed' table. Rows are append-only;
// the full document is stored as serialized JSON.
type JsonLDFeedModel struct {
	ID               uuid.UUID `gorm:"column:feed_id;type:uuid;primary_key;default:uuid_generate_v7()"`
	BusinessID       uuid.UUID `gorm:"type:uuid;not null;index"`
	SchemaType       string    `gorm:"type:varchar(50);not null"`
	JsonLDData       string    `gorm:"column:jsonld_data;type:text;not null"`
	IsValid          bool      `gorm:"not null;default:false"`
	ValidationErrors *string   `gorm:"type:text"`
	GeneratedAt      time.Time `gorm:"not null"`
}

// TableName explicitly sets the table name for GORM.
func (JsonLDFeedModel) TableName() string {
	return "jsonld_feed"
}
