package model

import (
	"time"

	"github.com/google/uuid"
)

// UserModel mirrors the 'users' table. The email column is CITEXT so
// uniqueness is case-insensitive at the database level.
type UserModel struct {
	ID           uuid.UUID `gorm:"column:user_id;type:uuid;primary_key;default:uuid_generate_v7()"`
	Email        string    `gorm:"type:citext;unique;not null"`
	Name         string    `gorm:"type:varchar(100)"`
	AuthProvider string    `gorm:"type:varchar(50);not null"`
	PasswordHash string    `gorm:"type:varchar(255)"`
	IsActive     bool      `gorm:"not null;default:true"`
	CreatedAt    time.Time
	LastLogin    *time.Time

	Businesses []BusinessProfileModel `gorm:"foreignKey:OwnerID"`
}

// TableName explicitly sets the table name for GORM.
func (UserModel) TableName() string {
	return "users"
}
