package models

import (
	"time"
)

// Person is the optional 1:1 profile extension of a User.
type Person struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	UserID      uint      `gorm:"not null;uniqueIndex" json:"user_id"`
	User        User      `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"user"`
	Bio         string    `gorm:"size:500" json:"bio"`
	Nationality string    `gorm:"size:100" json:"nationality"`
	Languages   string    `gorm:"size:200" json:"languages"`
	Interests   string    `gorm:"size:500" json:"interests"`
	Location    string    `gorm:"size:200" json:"location"`
	IsPublic    bool      `gorm:"default:true" json:"is_public"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}
