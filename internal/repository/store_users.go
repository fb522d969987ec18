package repository

import (
	"time"

	"turiapp/internal/models"
)

func (s *Store) CreateUser(u *models.User) error {
	return translate(s.db.Create(u).Error)
}

func (s *Store) GetUser(id uint) (*models.User, error) {
	var user models.User
	if err := s.db.First(&user, id).Error; err != nil {
		return nil, translate(err)
	}
	return &user, nil
}

func (s *Store) GetUserByEmail(email string) (*models.User, error) {
	var user models.User
	if err := s.db.Where("email = ?", email).First(&user).Error; err != nil {
		return nil, translate(err)
	}
	return &user, nil
}

func (s *Store) GetUserByUsername(username string) (*models.User, error) {
	var user models.User
	if err := s.db.Where("username = ?", username).First(&user).Error; err != nil {
		return nil, translate(err)
	}
	return &user, nil
}

// GetUserByIdentifier looks a user up by email or username, whichever matches.
func (s *Store) GetUserByIdentifier(identifier string) (*models.User, error) {
	var user models.User
	if err := s.db.Where("email = ? OR username = ?", identifier, identifier).First(&user).Error; err != nil {
		return nil, translate(err)
	}
	return &user, nil
}

func (s *Store) ListUsers(opts UserListOptions) ([]models.User, int64, error) {
	query := s.db.Model(&models.User{})
	if opts.Role != "" {
		query = query.Where("role = ?", opts.Role)
	}
	if opts.Active != nil {
		query = query.Where("is_active = ?", *opts.Active)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, translate(err)
	}

	var users []models.User
	err := query.Order("created_at DESC").Limit(opts.Limit).Offset(opts.Offset).Find(&users).Error
	return users, total, translate(err)
}

func (s *Store) UpdateUser(u *models.User) error {
	return translate(s.db.Save(u).Error)
}

func (s *Store) UpdateLastLogin(id uint, when time.Time) error {
	return translate(s.db.Model(&models.User{}).Where("id = ?", id).Update("last_login", when).Error)
}

func (s *Store) UpdatePassword(id uint, hash string) error {
	return translate(s.db.Model(&models.User{}).Where("id = ?", id).Update("password", hash).Error)
}

// DeactivateUser soft-disables; user rows are never hard-deleted.
func (s *Store) DeactivateUser(id uint) error {
	res := s.db.Model(&models.User{}).Where("id = ?", id).Update("is_active", false)
	if res.Error != nil {
		return translate(res.Error)
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *Store) UserStats(id uint) (*models.UserStats, error) {
	stats := &models.UserStats{}
	if err := s.db.Model(&models.Place{}).Where("created_by = ?", id).Count(&stats.PlacesCreated).Error; err != nil {
		return nil, translate(err)
	}
	if err := s.db.Model(&models.Review{}).Where("user_id = ?", id).Count(&stats.ReviewsWritten).Error; err != nil {
		return nil, translate(err)
	}
	if err := s.db.Model(&models.Favorite{}).Where("user_id = ?", id).Count(&stats.FavoritesCount).Error; err != nil {
		return nil, translate(err)
	}
	if err := s.db.Model(&models.Comment{}).Where("user_id = ?", id).Count(&stats.CommentsPosted).Error; err != nil {
		return nil, translate(err)
	}
	return stats, nil
}
