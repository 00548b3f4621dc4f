package models

import "github.com/google/uuid"

// Basket is the per-user accumulator; the unique index on user_id is what
// makes lazy creation race-safe.
type Basket struct {
	ID     int64        `gorm:"column:id;primaryKey;autoIncrement"`
	UserID uuid.UUID    `gorm:"column:user_id;type:uuid;not null;uniqueIndex"`
	Items  []BasketItem `gorm:"foreignKey:BasketID;constraint:OnDelete:CASCADE"`
}
