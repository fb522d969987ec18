package services

import (
	"testing"

	"turiapp/internal/apperrors"
	"turiapp/internal/models"
	"turiapp/internal/repository/memory"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testLogger() zerolog.Logger {
	return zerolog.Nop()
}

func assertAppError(t *testing.T, err error, code, message string) {
	t.Helper()
	var appErr *apperrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, code, appErr.Code)
	if message != "" {
		assert.Equal(t, message, appErr.Message)
	}
}

func seedUser(t *testing.T, store *memory.Store, username, role string) *models.User {
	t.Helper()
	user := &models.User{
		Username: username,
		Email:    username + "@example.com",
		Password: "not-a-real-hash",
		Role:     role,
		IsActive: true,
	}
	require.NoError(t, store.CreateUser(user))
	return user
}

func seedCategory(t *testing.T, store *memory.Store, name string) *models.Category {
	t.Helper()
	category := &models.Category{Name: name, IsActive: true}
	require.NoError(t, store.CreateCategory(category))
	return category
}

func seedPlace(t *testing.T, store *memory.Store, owner *models.User, name string, categoryIDs ...uint) *models.Place {
	t.Helper()
	place := &models.Place{
		Name:       name,
		Address:    "Calle Mayor 1",
		Latitude:   40.4168,
		Longitude:  -3.7038,
		PriceRange: models.PriceMedium,
		IsActive:   true,
		CreatedBy:  owner.ID,
	}
	require.NoError(t, store.CreatePlace(place, categoryIDs))
	return place
}

func seedReview(t *testing.T, store *memory.Store, place *models.Place, user *models.User, rating int) *models.Review {
	t.Helper()
	review := &models.Review{
		PlaceID: place.ID,
		UserID:  user.ID,
		Rating:  rating,
		Title:   "A visit",
		Content: "It was fine.",
	}
	require.NoError(t, store.CreateReview(review))
	return review
}
