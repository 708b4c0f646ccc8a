package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// VisibilityCheckRequestModel mirrors the 'visibility_check_request' table.
type VisibilityCheckRequestModel struct {
	ID          uuid.UUID `gorm:"column:request_id;type:uuid;primary_key;default:uuid_generate_v7()"`
	BusinessID  uuid.UUID `gorm:"type:uuid;not null;index"`
	CheckType   string    `gorm:"type:varchar(50);not null"`
	InputData   string    `gorm:"type:text"`
	RequestedAt time.Time `gorm:"not null"`
}

// TableName explicitly sets the table name for GORM.
func (VisibilityCheckRequestModel) TableName() string {
	return "visibility_check_request"
}

// VisibilityCheckResultModel mirrors the 'visibility_check_result' table.
type VisibilityCheckResultModel struct {
	ID              uuid.UUID       `gorm:"column:result_id;type:uuid;primary_key;default:uuid_generate_v7()"`
	RequestID       uuid.UUID       `gorm:"type:uuid;not null;index"`
	BusinessID      uuid.UUID       `gorm:"type:uuid;not null;index"`
	VisibilityScore decimal.Decimal `gorm:"type:numeric(5,2)"`
	IssuesFound     string          `gorm:"type:text"`
	Recommendations string          `gorm:"type:text"`
	OutputSnapshot  string          `gorm:"type:text"`
	CompletedAt     time.Time       `gorm:"not null"`
}

// TableName explicitly sets the table name for GORM.
func (VisibilityCheckResultModel) TableName() string {
	return "visibility_check_result"
}

// VisibilitySuggestionModel mirrors the 'visibility_suggestions' table.
type VisibilitySuggestionModel struct {
	ID             uuid.UUID `gorm:"column:suggestion_id;type:uuid;primary_key;default:uuid_generate_v7()"`
	BusinessID     uuid.UUID `gorm:"type:uuid;not null;index"`
	SuggestionType string    `gorm:"type:varchar(50);not null"`
	Title          string    `gorm:"type:varchar(255);not null"`
	Status         string    `gorm:"type:varchar(20);not null;default:pending"`
	SuggestedAt    time.Time `gorm:"not null"`
	ResolvedAt     *time.Time
}

// TableName explicitly sets the table name for GORM.
func (VisibilitySuggestionModel) TableName() string {
	return "visibility_suggestions"
}
