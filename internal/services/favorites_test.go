package services

import (
	"testing"

	"turiapp/internal/apperrors"
	"turiapp/internal/models"
	"turiapp/internal/repository/memory"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newFavoriteService(store *memory.Store) *FavoriteService {
	return NewFavoriteService(store, store, testLogger())
}

func TestAddFavoriteRejectsDuplicates(t *testing.T) {
	store := memory.New()
	svc := newFavoriteService(store)
	owner := seedUser(t, store, "ana", models.RoleUser)
	fan := seedUser(t, store, "bob", models.RoleUser)
	place := seedPlace(t, store, owner, "Museo del Prado")

	_, err := svc.Add(fan.ID, place.ID)
	require.NoError(t, err)

	_, err = svc.Add(fan.ID, place.ID)
	assertAppError(t, err, apperrors.CodeConflict, "Place is already in favorites")

	_, err = svc.Add(fan.ID, 999)
	assertAppError(t, err, apperrors.CodeNotFound, "Place not found")
}

func TestToggleAlternatesState(t *testing.T) {
	store := memory.New()
	svc := newFavoriteService(store)
	owner := seedUser(t, store, "ana", models.RoleUser)
	fan := seedUser(t, store, "bob", models.RoleUser)
	place := seedPlace(t, store, owner, "Museo del Prado")

	favorited, err := svc.Toggle(fan.ID, place.ID)
	require.NoError(t, err)
	assert.True(t, favorited)

	favorited, err = svc.Toggle(fan.ID, place.ID)
	require.NoError(t, err)
	assert.False(t, favorited)

	_, _, err = svc.List(fan.ID, 10, 0)
	require.NoError(t, err)
	_, total, err := svc.List(fan.ID, 10, 0)
	require.NoError(t, err)
	assert.Zero(t, total)
}

func TestRemoveByIDChecksOwnership(t *testing.T) {
	store := memory.New()
	svc := newFavoriteService(store)
	owner := seedUser(t, store, "ana", models.RoleUser)
	fan := seedUser(t, store, "bob", models.RoleUser)
	stranger := seedUser(t, store, "eva", models.RoleUser)
	admin := seedUser(t, store, "root", models.RoleAdmin)
	place := seedPlace(t, store, owner, "Museo del Prado")

	favorite, err := svc.Add(fan.ID, place.ID)
	require.NoError(t, err)

	err = svc.RemoveByID(stranger, favorite.ID)
	assertAppError(t, err, apperrors.CodeForbidden, "Unauthorized to remove this favorite")

	require.NoError(t, svc.RemoveByID(admin, favorite.ID))
	err = svc.RemoveByID(fan, favorite.ID)
	assertAppError(t, err, apperrors.CodeNotFound, "Favorite not found")
}

func TestBulkFavoritesIsolatesFailures(t *testing.T) {
	store := memory.New()
	svc := newFavoriteService(store)
	owner := seedUser(t, store, "ana", models.RoleUser)
	fan := seedUser(t, store, "bob", models.RoleUser)
	first := seedPlace(t, store, owner, "Museo del Prado")
	second := seedPlace(t, store, owner, "Parque del Retiro")

	_, err := svc.Add(fan.ID, second.ID)
	require.NoError(t, err)

	result, err := svc.Bulk(fan.ID, BulkAdd, []uint{first.ID, second.ID, 999})
	require.NoError(t, err)
	assert.Equal(t, 3, result.Total)
	assert.Equal(t, 1, result.Successful)
	assert.Equal(t, 2, result.Failed)
	require.Len(t, result.Results, 3)
	assert.True(t, result.Results[0].Success)
	assert.Equal(t, "Place is already in favorites", result.Results[1].Error)
	assert.Equal(t, "Place not found", result.Results[2].Error)

	result, err = svc.Bulk(fan.ID, BulkRemove, []uint{first.ID, second.ID})
	require.NoError(t, err)
	assert.Equal(t, 2, result.Successful)

	_, err = svc.Bulk(fan.ID, "archive", []uint{first.ID})
	assertAppError(t, err, apperrors.CodeValidation, "")
	_, err = svc.Bulk(fan.ID, BulkAdd, nil)
	assertAppError(t, err, apperrors.CodeValidation, "")
}
