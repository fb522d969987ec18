package repository

import (
	"turiapp/internal/models"
)

func (s *Store) CreateComment(c *models.Comment) error {
	return translate(s.db.Create(c).Error)
}

func (s *Store) UpdateComment(c *models.Comment) error {
	return translate(s.db.Save(c).Error)
}

func (s *Store) DeleteComment(id uint) error {
	res := s.db.Delete(&models.Comment{}, id)
	if res.Error != nil {
		return translate(res.Error)
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *Store) GetComment(id uint) (*models.Comment, error) {
	var comment models.Comment
	if err := s.db.Preload("User").First(&comment, id).Error; err != nil {
		return nil, translate(err)
	}
	return &comment, nil
}

// ListCommentsByReview returns every comment of a review, oldest first.
// Thread assembly happens in the service.
func (s *Store) ListCommentsByReview(reviewID uint) ([]models.Comment, error) {
	var comments []models.Comment
	err := s.db.Preload("User").
		Where("review_id = ?", reviewID).
		Order("created_at ASC").
		Find(&comments).Error
	return comments, translate(err)
}

func (s *Store) HasTopLevelComment(reviewID, userID uint) (bool, error) {
	var count int64
	err := s.db.Model(&models.Comment{}).
		Where("review_id = ? AND user_id = ? AND parent_id IS NULL", reviewID, userID).
		Count(&count).Error
	return count > 0, translate(err)
}

func (s *Store) SetCommentVisibility(id uint, public bool) error {
	res := s.db.Model(&models.Comment{}).Where("id = ?", id).Update("is_public", public)
	if res.Error != nil {
		return translate(res.Error)
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
