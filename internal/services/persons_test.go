package services

import (
	"testing"

	"turiapp/internal/apperrors"
	"turiapp/internal/models"
	"turiapp/internal/repository/memory"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newPersonService(store *memory.Store) *PersonService {
	return NewPersonService(store, testLogger())
}

func TestOnePersonProfilePerUser(t *testing.T) {
	store := memory.New()
	svc := newPersonService(store)
	user := seedUser(t, store, "ana", models.RoleUser)

	_, err := svc.Create(user.ID, PersonInput{Bio: "Viajera"})
	require.NoError(t, err)

	_, err = svc.Create(user.ID, PersonInput{Bio: "Otra vez"})
	assertAppError(t, err, apperrors.CodeConflict, "Profile already exists for this user")
}

func TestPrivateProfileVisibility(t *testing.T) {
	store := memory.New()
	svc := newPersonService(store)
	owner := seedUser(t, store, "ana", models.RoleUser)
	stranger := seedUser(t, store, "bob", models.RoleUser)
	admin := seedUser(t, store, "root", models.RoleAdmin)

	hidden := false
	person, err := svc.Create(owner.ID, PersonInput{Bio: "Viajera", IsPublic: &hidden})
	require.NoError(t, err)

	_, err = svc.Get(person.ID, nil)
	assertAppError(t, err, apperrors.CodeForbidden, "This profile is private")
	_, err = svc.Get(person.ID, stranger)
	assertAppError(t, err, apperrors.CodeForbidden, "This profile is private")

	got, err := svc.Get(person.ID, owner)
	require.NoError(t, err)
	assert.Equal(t, "Viajera", got.Bio)
	_, err = svc.Get(person.ID, admin)
	require.NoError(t, err)
}

func TestUpdateOwnProfile(t *testing.T) {
	store := memory.New()
	svc := newPersonService(store)
	owner := seedUser(t, store, "ana", models.RoleUser)

	_, err := svc.Update(owner.ID, PersonInput{Bio: "Nada aún"})
	assertAppError(t, err, apperrors.CodeNotFound, "Person not found")

	_, err = svc.Create(owner.ID, PersonInput{Bio: "Viajera"})
	require.NoError(t, err)

	public := true
	updated, err := svc.Update(owner.ID, PersonInput{Bio: "Viajera y fotógrafa", IsPublic: &public})
	require.NoError(t, err)
	assert.Equal(t, "Viajera y fotógrafa", updated.Bio)
	assert.True(t, updated.IsPublic)
}
