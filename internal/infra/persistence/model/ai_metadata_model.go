package model

import (
	"time"

	"github.com/google/uuid"
)

// AiMetadataModel mirrors the 'ai_metadata' table.
type AiMetadataModel struct {
	ID                uuid.UUID `gorm:"column:ai_metadata_id;type:uuid;primary_key;default:uuid_generate_v7()"`
	BusinessID        uuid.UUID `gorm:"type:uuid;not null;index"`
	ExtractedInsights string    `gorm:"type:text"`
	DetectedEntities  string    `gorm:"type:text"`
	Keywords          string    `gorm:"type:text"`
	IntentLabels      string    `gorm:"type:text"`
	GeneratedAt       time.Time `gorm:"not null"`
}

// TableName explicitly sets the table name for GORM.
func (AiMetadataModel) TableName() string {
	return "ai_metadata"
}
