package models

import (
	"time"
)

// Comment is a threaded reply attached to a Review. ParentID must reference
// a comment on the same review. Moderation hides via IsPublic instead of
// deleting, though direct delete is also exposed.
type Comment struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	ReviewID  uint      `gorm:"not null;index" json:"review_id"`
	Review    Review    `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"-"`
	UserID    uint      `gorm:"not null;index" json:"user_id"`
	User      User      `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"user"`
	ParentID  *uint     `gorm:"index" json:"parent_id"` // nil for top-level comments
	Content   string    `gorm:"type:text;not null" json:"content"`
	IsPublic  bool      `gorm:"default:true" json:"is_public"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	// Not database columns, filled when assembling a thread
	ContentHTML string     `gorm:"-" json:"content_html,omitempty"`
	Replies     []*Comment `gorm:"-" json:"replies,omitempty"`
}
