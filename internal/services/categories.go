package services

import (
	"errors"

	"turiapp/internal/apperrors"
	"turiapp/internal/models"
	"turiapp/internal/repository"

	"github.com/rs/zerolog"
)

type CategoryService struct {
	categories repository.CategoryStore
	log        zerolog.Logger
}

func NewCategoryService(categories repository.CategoryStore, log zerolog.Logger) *CategoryService {
	return &CategoryService{categories: categories, log: log}
}

func (s *CategoryService) List() ([]models.Category, error) {
	categories, err := s.categories.ListCategories(false)
	if err != nil {
		return nil, apperrors.NewInternal(err)
	}
	return categories, nil
}

// Tree returns the active categories as a parent→children forest with place
// counts, built in one pass over the flat list.
func (s *CategoryService) Tree() ([]*models.Category, error) {
	flat, err := s.categories.ListCategoriesWithPlaceCounts()
	if err != nil {
		return nil, apperrors.NewInternal(err)
	}
	return BuildCategoryTree(flat), nil
}

// BuildCategoryTree indexes children under their parent id in a single pass.
// Nodes whose parent is missing from the list are treated as roots.
func BuildCategoryTree(flat []models.Category) []*models.Category {
	byID := make(map[uint]*models.Category, len(flat))
	for i := range flat {
		byID[flat[i].ID] = &flat[i]
	}
	var roots []*models.Category
	for i := range flat {
		node := &flat[i]
		if node.ParentID != nil {
			if parent, ok := byID[*node.ParentID]; ok {
				parent.Children = append(parent.Children, node)
				continue
			}
		}
		roots = append(roots, node)
	}
	return roots
}

func (s *CategoryService) Get(id uint) (*models.Category, error) {
	category, err := s.categories.GetCategory(id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, apperrors.NewNotFound("Category")
		}
		return nil, apperrors.NewInternal(err)
	}
	return category, nil
}

type CategoryInput struct {
	Name        string
	Description string
	Icon        string
	ParentID    *uint
	SortOrder   int
}

func (s *CategoryService) Create(input CategoryInput) (*models.Category, error) {
	if _, err := s.categories.GetCategoryByName(input.Name); err == nil {
		return nil, apperrors.NewConflict("Category name already exists")
	}
	if input.ParentID != nil {
		if _, err := s.categories.GetCategory(*input.ParentID); err != nil {
			return nil, apperrors.NewValidation("parent category does not exist")
		}
	}

	category := &models.Category{
		Name:        input.Name,
		Description: input.Description,
		Icon:        input.Icon,
		ParentID:    input.ParentID,
		SortOrder:   input.SortOrder,
		IsActive:    true,
	}
	if err := s.categories.CreateCategory(category); err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			return nil, apperrors.NewConflict("Category name already exists")
		}
		return nil, apperrors.NewInternal(err)
	}
	return category, nil
}

func (s *CategoryService) Update(id uint, input CategoryInput) (*models.Category, error) {
	category, err := s.Get(id)
	if err != nil {
		return nil, err
	}
	if input.Name != category.Name {
		if _, err := s.categories.GetCategoryByName(input.Name); err == nil {
			return nil, apperrors.NewConflict("Category name already exists")
		}
	}
	if input.ParentID != nil {
		if err := s.checkParent(id, *input.ParentID); err != nil {
			return nil, err
		}
	}

	category.Name = input.Name
	category.Description = input.Description
	category.Icon = input.Icon
	category.ParentID = input.ParentID
	category.SortOrder = input.SortOrder

	if err := s.categories.UpdateCategory(category); err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			return nil, apperrors.NewConflict("Category name already exists")
		}
		return nil, apperrors.NewInternal(err)
	}
	return category, nil
}

// checkParent rejects self-parenting and cycles by walking up from the
// proposed parent.
func (s *CategoryService) checkParent(id, parentID uint) error {
	if parentID == id {
		return apperrors.NewValidation("a category cannot be its own parent")
	}
	current := parentID
	for {
		parent, err := s.categories.GetCategory(current)
		if err != nil {
			return apperrors.NewValidation("parent category does not exist")
		}
		if parent.ParentID == nil {
			return nil
		}
		if *parent.ParentID == id {
			return apperrors.NewValidation("a category cannot become a subcategory of its own descendant")
		}
		current = *parent.ParentID
	}
}

// Reorder applies a batch of sort_order changes atomically.
func (s *CategoryService) Reorder(orders []repository.CategoryOrder) error {
	if len(orders) == 0 {
		return apperrors.NewValidation("orders must not be empty")
	}
	if err := s.categories.ReorderCategories(orders); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return apperrors.NewNotFound("Category")
		}
		return apperrors.NewInternal(err)
	}
	return nil
}

// Delete refuses while places or subcategories still reference the
// category, then soft-deletes.
func (s *CategoryService) Delete(id uint) error {
	if _, err := s.Get(id); err != nil {
		return err
	}
	placeCount, err := s.categories.CountCategoryPlaces(id)
	if err != nil {
		return apperrors.NewInternal(err)
	}
	childCount, err := s.categories.CountSubcategories(id)
	if err != nil {
		return apperrors.NewInternal(err)
	}
	if placeCount > 0 || childCount > 0 {
		return apperrors.NewConflict("Cannot delete category: it has associated places or subcategories")
	}
	if err := s.categories.SoftDeleteCategory(id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return apperrors.NewNotFound("Category")
		}
		return apperrors.NewInternal(err)
	}
	s.log.Info().Uint("category_id", id).Msg("category deleted")
	return nil
}
