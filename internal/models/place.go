package models

import (
	"time"
)

// Price range buckets accepted for a place.
const (
	PriceFree   = "free"
	PriceLow    = "low"
	PriceMedium = "medium"
	PriceHigh   = "high"
	PriceLuxury = "luxury"
)

// ValidPriceRange reports whether s is one of the accepted buckets.
func ValidPriceRange(s string) bool {
	switch s {
	case PriceFree, PriceLow, PriceMedium, PriceHigh, PriceLuxury:
		return true
	}
	return false
}

type Place struct {
	ID            uint       `gorm:"primaryKey" json:"id"`
	Name          string     `gorm:"size:200;not null" json:"name"`
	Description   string     `gorm:"type:text" json:"description"`
	Address       string     `gorm:"size:300;not null" json:"address"`
	Latitude      float64    `gorm:"not null" json:"latitude"`
	Longitude     float64    `gorm:"not null" json:"longitude"`
	PriceRange    string     `gorm:"size:20;default:'medium'" json:"price_range"`
	IsVerified    bool       `gorm:"default:false" json:"is_verified"`
	IsFeatured    bool       `gorm:"default:false" json:"is_featured"`
	IsActive      bool       `gorm:"default:true" json:"is_active"`
	AverageRating float64    `gorm:"default:0" json:"average_rating"`
	TotalReviews  int        `gorm:"default:0" json:"total_reviews"`
	TotalVisits   int        `gorm:"default:0" json:"total_visits"`
	CreatedBy     uint       `gorm:"not null;index" json:"created_by"`
	Creator       User       `gorm:"foreignKey:CreatedBy;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"creator"`
	Categories    []Category `gorm:"many2many:place_categories;" json:"categories"`
	CreatedAt     time.Time  `json:"created_at"`
	UpdatedAt     time.Time  `json:"updated_at"`

	// Read-only, filled by the nearby search's computed column
	Distance float64 `gorm:"->;-:migration" json:"distance,omitempty"` // km
}

// PlaceStats aggregates review/favorite activity for one place.
type PlaceStats struct {
	PlaceID         uint          `json:"place_id"`
	AverageRating   float64       `json:"average_rating"`
	TotalReviews    int64         `json:"total_reviews"`
	TotalVisits     int           `json:"total_visits"`
	FavoriteCount   int64         `json:"favorite_count"`
	RatingBreakdown map[int]int64 `json:"rating_breakdown"`
}
