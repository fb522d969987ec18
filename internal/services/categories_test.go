package services

import (
	"testing"

	"turiapp/internal/apperrors"
	"turiapp/internal/models"
	"turiapp/internal/repository"
	"turiapp/internal/repository/memory"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newCategoryService(store *memory.Store) *CategoryService {
	return NewCategoryService(store, testLogger())
}

func TestCreateCategoryRejectsDuplicateName(t *testing.T) {
	store := memory.New()
	svc := newCategoryService(store)

	_, err := svc.Create(CategoryInput{Name: "Museos"})
	require.NoError(t, err)

	_, err = svc.Create(CategoryInput{Name: "Museos"})
	assertAppError(t, err, apperrors.CodeConflict, "Category name already exists")
}

func TestCategoryParentValidation(t *testing.T) {
	store := memory.New()
	svc := newCategoryService(store)

	missing := uint(999)
	_, err := svc.Create(CategoryInput{Name: "Museos", ParentID: &missing})
	assertAppError(t, err, apperrors.CodeValidation, "")

	root, err := svc.Create(CategoryInput{Name: "Cultura"})
	require.NoError(t, err)
	child, err := svc.Create(CategoryInput{Name: "Museos", ParentID: &root.ID})
	require.NoError(t, err)

	// a category cannot be its own parent
	_, err = svc.Update(root.ID, CategoryInput{Name: "Cultura", ParentID: &root.ID})
	assertAppError(t, err, apperrors.CodeValidation, "")

	// nor become a child of its own descendant
	_, err = svc.Update(root.ID, CategoryInput{Name: "Cultura", ParentID: &child.ID})
	assertAppError(t, err, apperrors.CodeValidation, "")
}

func TestCategoryTreeNestsChildrenWithCounts(t *testing.T) {
	store := memory.New()
	svc := newCategoryService(store)
	owner := seedUser(t, store, "ana", models.RoleUser)

	root, err := svc.Create(CategoryInput{Name: "Cultura", SortOrder: 1})
	require.NoError(t, err)
	child, err := svc.Create(CategoryInput{Name: "Museos", ParentID: &root.ID, SortOrder: 2})
	require.NoError(t, err)
	seedPlace(t, store, owner, "Museo del Prado", child.ID)

	tree, err := svc.Tree()
	require.NoError(t, err)
	require.Len(t, tree, 1)
	assert.Equal(t, "Cultura", tree[0].Name)
	require.Len(t, tree[0].Children, 1)
	assert.Equal(t, "Museos", tree[0].Children[0].Name)
	assert.Equal(t, int64(1), tree[0].Children[0].PlaceCount)
}

func TestReorderIsAllOrNothing(t *testing.T) {
	store := memory.New()
	svc := newCategoryService(store)

	first, err := svc.Create(CategoryInput{Name: "Cultura", SortOrder: 1})
	require.NoError(t, err)
	second, err := svc.Create(CategoryInput{Name: "Museos", SortOrder: 2})
	require.NoError(t, err)

	err = svc.Reorder(nil)
	assertAppError(t, err, apperrors.CodeValidation, "")

	err = svc.Reorder([]repository.CategoryOrder{
		{ID: first.ID, SortOrder: 9},
		{ID: 999, SortOrder: 1},
	})
	assertAppError(t, err, apperrors.CodeNotFound, "Category not found")

	// the failed batch must not have applied partially
	got, err := svc.Get(first.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, got.SortOrder)

	require.NoError(t, svc.Reorder([]repository.CategoryOrder{
		{ID: first.ID, SortOrder: 2},
		{ID: second.ID, SortOrder: 1},
	}))
	got, err = svc.Get(first.ID)
	require.NoError(t, err)
	assert.Equal(t, 2, got.SortOrder)
}

func TestDeleteCategoryGuards(t *testing.T) {
	store := memory.New()
	svc := newCategoryService(store)
	owner := seedUser(t, store, "ana", models.RoleUser)

	root, err := svc.Create(CategoryInput{Name: "Cultura"})
	require.NoError(t, err)
	child, err := svc.Create(CategoryInput{Name: "Museos", ParentID: &root.ID})
	require.NoError(t, err)
	seedPlace(t, store, owner, "Museo del Prado", child.ID)

	err = svc.Delete(root.ID)
	assertAppError(t, err, apperrors.CodeConflict, "Cannot delete category: it has associated places or subcategories")

	err = svc.Delete(child.ID)
	assertAppError(t, err, apperrors.CodeConflict, "Cannot delete category: it has associated places or subcategories")

	empty, err := svc.Create(CategoryInput{Name: "Vacía"})
	require.NoError(t, err)
	require.NoError(t, svc.Delete(empty.ID))

	listed, err := svc.List()
	require.NoError(t, err)
	for _, c := range listed {
		assert.NotEqual(t, "Vacía", c.Name)
	}
}
