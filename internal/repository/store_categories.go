package repository

import (
	"turiapp/internal/models"

	"gorm.io/gorm"
)

func (s *Store) CreateCategory(c *models.Category) error {
	return translate(s.db.Create(c).Error)
}

func (s *Store) UpdateCategory(c *models.Category) error {
	return translate(s.db.Save(c).Error)
}

func (s *Store) GetCategory(id uint) (*models.Category, error) {
	var category models.Category
	if err := s.db.First(&category, id).Error; err != nil {
		return nil, translate(err)
	}
	return &category, nil
}

func (s *Store) GetCategoryByName(name string) (*models.Category, error) {
	var category models.Category
	if err := s.db.Where("name = ?", name).First(&category).Error; err != nil {
		return nil, translate(err)
	}
	return &category, nil
}

func (s *Store) ListCategories(includeInactive bool) ([]models.Category, error) {
	query := s.db.Model(&models.Category{})
	if !includeInactive {
		query = query.Where("is_active = ?", true)
	}
	var categories []models.Category
	err := query.Order("sort_order ASC, id ASC").Find(&categories).Error
	return categories, translate(err)
}

// ListCategoriesWithPlaceCounts returns the active categories with the number
// of places attached to each, in one grouped query.
func (s *Store) ListCategoriesWithPlaceCounts() ([]models.Category, error) {
	var categories []models.Category
	err := s.db.Raw(`
		SELECT categories.*, COUNT(pc.place_id) AS place_count
		FROM categories
		LEFT JOIN place_categories pc ON pc.category_id = categories.id
		WHERE categories.is_active = true
		GROUP BY categories.id
		ORDER BY categories.sort_order ASC, categories.id ASC`,
	).Scan(&categories).Error
	return categories, translate(err)
}

func (s *Store) CountSubcategories(id uint) (int64, error) {
	var count int64
	err := s.db.Model(&models.Category{}).Where("parent_id = ?", id).Count(&count).Error
	return count, translate(err)
}

func (s *Store) CountCategoryPlaces(id uint) (int64, error) {
	var count int64
	err := s.db.Table("place_categories").Where("category_id = ?", id).Count(&count).Error
	return count, translate(err)
}

// ReorderCategories applies every sort_order update in one transaction;
// an unknown id rolls the whole batch back.
func (s *Store) ReorderCategories(orders []CategoryOrder) error {
	return translate(s.db.Transaction(func(tx *gorm.DB) error {
		for _, o := range orders {
			res := tx.Model(&models.Category{}).Where("id = ?", o.ID).Update("sort_order", o.SortOrder)
			if res.Error != nil {
				return res.Error
			}
			if res.RowsAffected == 0 {
				return gorm.ErrRecordNotFound
			}
		}
		return nil
	}))
}

func (s *Store) SoftDeleteCategory(id uint) error {
	res := s.db.Model(&models.Category{}).Where("id = ? AND is_active = ?", id, true).Update("is_active", false)
	if res.Error != nil {
		return translate(res.Error)
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
