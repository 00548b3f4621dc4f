package models

import (
	"time"

	"github.com/google/uuid"

	"github.com/aselbek/bazar-backend/pkg/enums"
)

// User represents the canonical identity entity.
type User struct {
	ID             uuid.UUID        `gorm:"column:id;type:uuid;primaryKey"`
	Username       string           `gorm:"column:username;type:text;not null;uniqueIndex"`
	Email          string           `gorm:"column:email;type:text;not null"`
	PasswordHash   string           `gorm:"column:password_hash;not null"`
	FirstName      string           `gorm:"column:first_name;not null"`
	LastName       string           `gorm:"column:last_name;not null"`
	Age            *int             `gorm:"column:age"`
	PhoneNumber    *string          `gorm:"column:phone_number"`
	Status         enums.UserStatus `gorm:"column:status;not null;default:'simple'"`
	IsActive       bool             `gorm:"column:is_active;not null;default:true"`
	DateRegistered time.Time        `gorm:"column:date_registered;autoCreateTime"`
	CreatedAt      time.Time        `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt      time.Time        `gorm:"column:updated_at;autoUpdateTime"`
}
