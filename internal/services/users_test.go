package services

import (
	"testing"

	"turiapp/internal/apperrors"
	"turiapp/internal/models"
	"turiapp/internal/repository/memory"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newUserService(store *memory.Store) *UserService {
	return NewUserService(store, testLogger())
}

func TestUpdateProfileOwnership(t *testing.T) {
	store := memory.New()
	svc := newUserService(store)
	user := seedUser(t, store, "ana", models.RoleUser)
	stranger := seedUser(t, store, "bob", models.RoleUser)
	admin := seedUser(t, store, "root", models.RoleAdmin)

	name := "Ana"
	_, err := svc.UpdateProfile(stranger, user.ID, UpdateUserInput{FirstName: &name})
	assertAppError(t, err, apperrors.CodeForbidden, "Unauthorized to update this user")

	updated, err := svc.UpdateProfile(user, user.ID, UpdateUserInput{FirstName: &name})
	require.NoError(t, err)
	assert.Equal(t, "Ana", updated.FirstName)

	_, err = svc.UpdateProfile(admin, user.ID, UpdateUserInput{FirstName: &name})
	require.NoError(t, err)
}

func TestUpdateProfileUniquenessRechecks(t *testing.T) {
	store := memory.New()
	svc := newUserService(store)
	user := seedUser(t, store, "ana", models.RoleUser)
	seedUser(t, store, "bob", models.RoleUser)

	taken := "bob@example.com"
	_, err := svc.UpdateProfile(user, user.ID, UpdateUserInput{Email: &taken})
	assertAppError(t, err, apperrors.CodeConflict, "Email is already registered")

	takenName := "bob"
	_, err = svc.UpdateProfile(user, user.ID, UpdateUserInput{Username: &takenName})
	assertAppError(t, err, apperrors.CodeConflict, "Username is already taken")

	// keeping your own email is not a conflict
	own := "ana@example.com"
	_, err = svc.UpdateProfile(user, user.ID, UpdateUserInput{Email: &own})
	require.NoError(t, err)
}

func TestDeactivateIsSoft(t *testing.T) {
	store := memory.New()
	svc := newUserService(store)
	user := seedUser(t, store, "ana", models.RoleUser)

	require.NoError(t, svc.Deactivate(user.ID))
	got, err := svc.Get(user.ID)
	require.NoError(t, err)
	assert.False(t, got.IsActive)

	err = svc.Deactivate(999)
	assertAppError(t, err, apperrors.CodeNotFound, "User not found")
}

func TestUserStatsCountsActivity(t *testing.T) {
	store := memory.New()
	svc := newUserService(store)
	user := seedUser(t, store, "ana", models.RoleUser)
	other := seedUser(t, store, "bob", models.RoleUser)

	place := seedPlace(t, store, user, "Museo del Prado")
	seedReview(t, store, place, other, 4)
	require.NoError(t, store.CreateFavorite(&models.Favorite{UserID: user.ID, PlaceID: place.ID}))

	stats, err := svc.Stats(user.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(1), stats.PlacesCreated)
	assert.Equal(t, int64(0), stats.ReviewsWritten)
	assert.Equal(t, int64(1), stats.FavoritesCount)

	_, err = svc.Stats(999)
	assertAppError(t, err, apperrors.CodeNotFound, "User not found")
}
