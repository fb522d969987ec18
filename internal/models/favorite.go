package models

import (
	"time"
)

// Favorite is one row per (user, place), enforced by the composite index.
type Favorite struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	UserID    uint      `gorm:"not null;index;uniqueIndex:idx_user_place" json:"user_id"`
	PlaceID   uint      `gorm:"not null;index;uniqueIndex:idx_user_place" json:"place_id"`
	Place     Place     `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"place"`
	CreatedAt time.Time `json:"created_at"`
}
