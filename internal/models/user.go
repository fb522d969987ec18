package models

import (
	"time"
)

// Roles assignable to a user. New registrations always start as RoleUser.
const (
	RoleUser      = "user"
	RoleAdmin     = "admin"
	RoleModerator = "moderator"
)

type User struct {
	ID         uint       `gorm:"primaryKey" json:"id"`
	Username   string     `gorm:"uniqueIndex;size:50;not null" json:"username"`
	Email      string     `gorm:"uniqueIndex;not null" json:"email"`
	Password   string     `gorm:"not null" json:"-"` // bcrypt hash
	FirstName  string     `gorm:"size:100" json:"first_name"`
	LastName   string     `gorm:"size:100" json:"last_name"`
	Role       string     `gorm:"size:20;default:'user';not null" json:"role"` // user, admin, moderator
	IsActive   bool       `gorm:"default:true" json:"is_active"`
	IsVerified bool       `gorm:"default:false" json:"is_verified"`
	LastLogin  *time.Time `json:"last_login"`
	CreatedAt  time.Time  `json:"created_at"`
	UpdatedAt  time.Time  `json:"updated_at"`
	// No DeletedAt: users are soft-disabled via IsActive, never hard-deleted
}

// IsAdmin reports whether the user passes every ownership gate.
func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin
}

// IsModerator reports whether the user may moderate comments.
func (u *User) IsModerator() bool {
	return u.Role == RoleModerator || u.Role == RoleAdmin
}

// UserStats aggregates a user's activity counts for the profile stats endpoint.
type UserStats struct {
	PlacesCreated  int64 `json:"places_created"`
	ReviewsWritten int64 `json:"reviews_written"`
	FavoritesCount int64 `json:"favorites_count"`
	CommentsPosted int64 `json:"comments_posted"`
}
