package models

import (
	"time"
)

// Review is one user's rating of one place, unique per (place, user).
type Review struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	PlaceID      uint      `gorm:"not null;index;uniqueIndex:idx_place_user" json:"place_id"`
	Place        Place     `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"-"`
	UserID       uint      `gorm:"not null;index;uniqueIndex:idx_place_user" json:"user_id"`
	User         User      `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"user"`
	Rating       int       `gorm:"not null" json:"rating"` // 1-5
	Title        string    `gorm:"size:200" json:"title"`
	Content      string    `gorm:"type:text" json:"content"` // markdown source
	HelpfulCount int       `gorm:"default:0" json:"helpful_count"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`

	// Not a database column, rendered from Content on detail reads
	ContentHTML string `gorm:"-" json:"content_html,omitempty"`
}

// ReviewHelpfulVote records one user's helpful vote on one review.
type ReviewHelpfulVote struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	ReviewID  uint      `gorm:"not null;index;uniqueIndex:idx_review_voter" json:"review_id"`
	Review    Review    `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"-"`
	UserID    uint      `gorm:"not null;index;uniqueIndex:idx_review_voter" json:"user_id"`
	CreatedAt time.Time `json:"created_at"`
}
