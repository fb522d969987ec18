package repository

import (
	"turiapp/internal/models"
)

func (s *Store) CreateFavorite(f *models.Favorite) error {
	return translate(s.db.Create(f).Error)
}

func (s *Store) DeleteFavorite(id uint) error {
	res := s.db.Delete(&models.Favorite{}, id)
	if res.Error != nil {
		return translate(res.Error)
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *Store) GetFavorite(id uint) (*models.Favorite, error) {
	var favorite models.Favorite
	if err := s.db.Preload("Place").First(&favorite, id).Error; err != nil {
		return nil, translate(err)
	}
	return &favorite, nil
}

func (s *Store) GetFavoriteByUserAndPlace(userID, placeID uint) (*models.Favorite, error) {
	var favorite models.Favorite
	err := s.db.Where("user_id = ? AND place_id = ?", userID, placeID).First(&favorite).Error
	if err != nil {
		return nil, translate(err)
	}
	return &favorite, nil
}

func (s *Store) ListFavoritesByUser(userID uint, limit, offset int) ([]models.Favorite, int64, error) {
	query := s.db.Model(&models.Favorite{}).Where("user_id = ?", userID)

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, translate(err)
	}

	var favorites []models.Favorite
	err := query.Preload("Place").Preload("Place.Categories").
		Order("created_at DESC").
		Limit(limit).Offset(offset).
		Find(&favorites).Error
	return favorites, total, translate(err)
}
