package models

import (
	"time"

	"github.com/google/uuid"
)

// Review holds a single user rating of a product. There is deliberately no
// unique index on (user_id, product_id): repeat reviews are permitted.
type Review struct {
	ID         int64     `gorm:"column:id;primaryKey;autoIncrement"`
	UserID     uuid.UUID `gorm:"column:user_id;type:uuid;not null;index"`
	ProductID  int64     `gorm:"column:product_id;not null;index"`
	Rating     int       `gorm:"column:rating;not null"`
	Comment    string    `gorm:"column:comment;not null"`
	CreateDate time.Time `gorm:"column:create_date;autoCreateTime"`
	User       *User     `gorm:"foreignKey:UserID"`
}
