package repository

import (
	"turiapp/internal/models"

	"gorm.io/gorm"
)

// recalcPlaceRating rewrites the owning place's aggregates from the review
// table. Always called inside the transaction that changed the reviews.
func recalcPlaceRating(tx *gorm.DB, placeID uint) error {
	return tx.Model(&models.Place{}).Where("id = ?", placeID).Updates(map[string]interface{}{
		"average_rating": gorm.Expr("(SELECT COALESCE(AVG(rating), 0) FROM reviews WHERE place_id = ?)", placeID),
		"total_reviews":  gorm.Expr("(SELECT COUNT(*) FROM reviews WHERE place_id = ?)", placeID),
	}).Error
}

func (s *Store) CreateReview(r *models.Review) error {
	return translate(s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(r).Error; err != nil {
			return err
		}
		return recalcPlaceRating(tx, r.PlaceID)
	}))
}

func (s *Store) UpdateReview(r *models.Review) error {
	return translate(s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Save(r).Error; err != nil {
			return err
		}
		return recalcPlaceRating(tx, r.PlaceID)
	}))
}

func (s *Store) DeleteReview(id uint) error {
	return translate(s.db.Transaction(func(tx *gorm.DB) error {
		var review models.Review
		if err := tx.First(&review, id).Error; err != nil {
			return err
		}
		if err := tx.Delete(&review).Error; err != nil {
			return err
		}
		return recalcPlaceRating(tx, review.PlaceID)
	}))
}

func (s *Store) GetReview(id uint) (*models.Review, error) {
	var review models.Review
	if err := s.db.Preload("User").First(&review, id).Error; err != nil {
		return nil, translate(err)
	}
	return &review, nil
}

func (s *Store) GetReviewByPlaceAndUser(placeID, userID uint) (*models.Review, error) {
	var review models.Review
	err := s.db.Where("place_id = ? AND user_id = ?", placeID, userID).First(&review).Error
	if err != nil {
		return nil, translate(err)
	}
	return &review, nil
}

func (s *Store) ListReviews(opts ReviewListOptions) ([]models.Review, int64, error) {
	query := s.db.Model(&models.Review{})
	if opts.PlaceID != 0 {
		query = query.Where("place_id = ?", opts.PlaceID)
	}
	if opts.UserID != 0 {
		query = query.Where("user_id = ?", opts.UserID)
	}
	if opts.MinRating > 0 {
		query = query.Where("rating >= ?", opts.MinRating)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, translate(err)
	}

	var reviews []models.Review
	err := query.Preload("User").
		Order("created_at DESC").
		Limit(opts.Limit).Offset(opts.Offset).
		Find(&reviews).Error
	return reviews, total, translate(err)
}

// AddHelpfulVote inserts the vote and bumps helpful_count together. The
// unique index on (review_id, user_id) makes a duplicate insert fail before
// the counter moves.
func (s *Store) AddHelpfulVote(reviewID, userID uint) error {
	return translate(s.db.Transaction(func(tx *gorm.DB) error {
		vote := models.ReviewHelpfulVote{ReviewID: reviewID, UserID: userID}
		if err := tx.Create(&vote).Error; err != nil {
			return err
		}
		return tx.Model(&models.Review{}).Where("id = ?", reviewID).
			UpdateColumn("helpful_count", gorm.Expr("helpful_count + 1")).Error
	}))
}

func (s *Store) HasHelpfulVote(reviewID, userID uint) (bool, error) {
	var count int64
	err := s.db.Model(&models.ReviewHelpfulVote{}).
		Where("review_id = ? AND user_id = ?", reviewID, userID).
		Count(&count).Error
	return count > 0, translate(err)
}
