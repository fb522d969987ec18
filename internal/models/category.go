package models

import (
	"time"
)

// Category is a taxonomy node. ParentID builds a self-referential tree;
// a category referenced by places or subcategories cannot be deleted.
type Category struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	Name        string    `gorm:"size:100;not null;uniqueIndex" json:"name"`
	Description string    `gorm:"size:300" json:"description"`
	Icon        string    `gorm:"size:50" json:"icon"`
	ParentID    *uint     `gorm:"index" json:"parent_id"`
	SortOrder   int       `gorm:"default:0" json:"sort_order"`
	IsActive    bool      `gorm:"default:true" json:"is_active"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`

	// PlaceCount is read-only, filled by the counted listing; Children is
	// assembled in memory when building the tree.
	PlaceCount int64       `gorm:"->;-:migration" json:"place_count"`
	Children   []*Category `gorm:"-" json:"children,omitempty"`
}
