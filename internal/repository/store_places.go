package repository

import (
	"turiapp/internal/models"

	"gorm.io/gorm"
)

// CreatePlace creates the place row and its category associations in one
// transaction; a failing category append rolls back the place insert.
func (s *Store) CreatePlace(p *models.Place, categoryIDs []uint) error {
	return translate(s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(p).Error; err != nil {
			return err
		}
		if len(categoryIDs) > 0 {
			if err := tx.Model(p).Association("Categories").Append(categoryRefs(categoryIDs)); err != nil {
				return err
			}
		}
		return nil
	}))
}

// UpdatePlace saves the place and, when replaceCategories is set, swaps the
// full category association inside the same transaction.
func (s *Store) UpdatePlace(p *models.Place, categoryIDs []uint, replaceCategories bool) error {
	return translate(s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Save(p).Error; err != nil {
			return err
		}
		if replaceCategories {
			if err := tx.Model(p).Association("Categories").Replace(categoryRefs(categoryIDs)); err != nil {
				return err
			}
		}
		return nil
	}))
}

func categoryRefs(ids []uint) []models.Category {
	refs := make([]models.Category, len(ids))
	for i, id := range ids {
		refs[i] = models.Category{ID: id}
	}
	return refs
}

func (s *Store) GetPlace(id uint) (*models.Place, error) {
	var place models.Place
	err := s.db.Preload("Categories").Preload("Creator").
		Where("is_active = ?", true).
		First(&place, id).Error
	if err != nil {
		return nil, translate(err)
	}
	return &place, nil
}

func (s *Store) ListPlaces(opts PlaceListOptions) ([]models.Place, int64, error) {
	query := s.db.Model(&models.Place{}).Where("places.is_active = ?", true)

	if opts.CategoryID != 0 {
		query = query.
			Joins("JOIN place_categories pc ON pc.place_id = places.id").
			Where("pc.category_id = ?", opts.CategoryID)
	}
	if opts.PriceRange != "" {
		query = query.Where("price_range = ?", opts.PriceRange)
	}
	if opts.Verified != nil {
		query = query.Where("is_verified = ?", *opts.Verified)
	}
	if opts.Search != "" {
		pattern := "%" + opts.Search + "%"
		query = query.Where("name ILIKE ? OR description ILIKE ?", pattern, pattern)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, translate(err)
	}

	var places []models.Place
	err := query.Preload("Categories").
		Order("places.created_at DESC").
		Limit(opts.Limit).Offset(opts.Offset).
		Find(&places).Error
	return places, total, translate(err)
}

// NearbyPlaces runs a haversine distance query. The alias cannot appear in
// WHERE on postgres, hence the wrapping subquery.
func (s *Store) NearbyPlaces(lat, lng, radiusKm float64, limit int) ([]models.Place, error) {
	var places []models.Place
	err := s.db.Raw(`
		SELECT * FROM (
			SELECT places.*,
				(6371 * acos(least(1.0,
					cos(radians(?)) * cos(radians(latitude)) *
					cos(radians(longitude) - radians(?)) +
					sin(radians(?)) * sin(radians(latitude))
				))) AS distance
			FROM places
			WHERE is_active = true
		) nearby
		WHERE nearby.distance <= ?
		ORDER BY nearby.distance ASC
		LIMIT ?`,
		lat, lng, lat, radiusKm, limit,
	).Scan(&places).Error
	return places, translate(err)
}

func (s *Store) PopularPlaces(limit int) ([]models.Place, error) {
	var places []models.Place
	err := s.db.Preload("Categories").
		Where("is_active = ?", true).
		Order("total_visits DESC, average_rating DESC").
		Limit(limit).
		Find(&places).Error
	return places, translate(err)
}

func (s *Store) FeaturedPlaces(limit int) ([]models.Place, error) {
	var places []models.Place
	err := s.db.Preload("Categories").
		Where("is_active = ? AND is_featured = ?", true, true).
		Order("average_rating DESC").
		Limit(limit).
		Find(&places).Error
	return places, translate(err)
}

func (s *Store) SoftDeletePlace(id uint) error {
	res := s.db.Model(&models.Place{}).Where("id = ? AND is_active = ?", id, true).Update("is_active", false)
	if res.Error != nil {
		return translate(res.Error)
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *Store) IncrementVisits(id uint) error {
	return translate(s.db.Model(&models.Place{}).Where("id = ?", id).
		UpdateColumn("total_visits", gorm.Expr("total_visits + 1")).Error)
}

func (s *Store) PlaceStats(id uint) (*models.PlaceStats, error) {
	var place models.Place
	if err := s.db.First(&place, id).Error; err != nil {
		return nil, translate(err)
	}

	stats := &models.PlaceStats{
		PlaceID:         place.ID,
		AverageRating:   place.AverageRating,
		TotalVisits:     place.TotalVisits,
		RatingBreakdown: make(map[int]int64),
	}

	if err := s.db.Model(&models.Review{}).Where("place_id = ?", id).Count(&stats.TotalReviews).Error; err != nil {
		return nil, translate(err)
	}
	if err := s.db.Model(&models.Favorite{}).Where("place_id = ?", id).Count(&stats.FavoriteCount).Error; err != nil {
		return nil, translate(err)
	}

	var rows []struct {
		Rating int
		Count  int64
	}
	err := s.db.Model(&models.Review{}).
		Select("rating, COUNT(*) AS count").
		Where("place_id = ?", id).
		Group("rating").
		Scan(&rows).Error
	if err != nil {
		return nil, translate(err)
	}
	for _, r := range rows {
		stats.RatingBreakdown[r.Rating] = r.Count
	}
	return stats, nil
}
