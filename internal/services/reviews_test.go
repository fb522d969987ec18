package services

import (
	"testing"

	"turiapp/internal/apperrors"
	"turiapp/internal/models"
	"turiapp/internal/repository/memory"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newReviewService(store *memory.Store) *ReviewService {
	return NewReviewService(store, store, testLogger())
}

func TestOneReviewPerPlaceAndUser(t *testing.T) {
	store := memory.New()
	svc := newReviewService(store)
	owner := seedUser(t, store, "ana", models.RoleUser)
	reviewer := seedUser(t, store, "bob", models.RoleUser)
	place := seedPlace(t, store, owner, "Museo del Prado")

	_, err := svc.Create(reviewer, ReviewInput{PlaceID: place.ID, Rating: 5, Title: "Imprescindible"})
	require.NoError(t, err)

	_, err = svc.Create(reviewer, ReviewInput{PlaceID: place.ID, Rating: 3, Title: "Otra vez"})
	assertAppError(t, err, apperrors.CodeConflict, "User has already reviewed this place")

	_, err = svc.Create(reviewer, ReviewInput{PlaceID: 999, Rating: 3, Title: "Dónde"})
	assertAppError(t, err, apperrors.CodeNotFound, "Place not found")
}

func TestReviewWritesRecomputePlaceAggregates(t *testing.T) {
	store := memory.New()
	svc := newReviewService(store)
	owner := seedUser(t, store, "ana", models.RoleUser)
	place := seedPlace(t, store, owner, "Museo del Prado")

	first := seedUser(t, store, "bob", models.RoleUser)
	second := seedUser(t, store, "eva", models.RoleUser)

	review, err := svc.Create(first, ReviewInput{PlaceID: place.ID, Rating: 5, Title: "Imprescindible"})
	require.NoError(t, err)
	_, err = svc.Create(second, ReviewInput{PlaceID: place.ID, Rating: 3, Title: "Bien"})
	require.NoError(t, err)

	got, err := store.GetPlace(place.ID)
	require.NoError(t, err)
	assert.Equal(t, 2, got.TotalReviews)
	assert.InDelta(t, 4.0, got.AverageRating, 0.001)

	rating := 1
	_, err = svc.Update(first, review.ID, UpdateReviewInput{Rating: &rating})
	require.NoError(t, err)
	got, err = store.GetPlace(place.ID)
	require.NoError(t, err)
	assert.InDelta(t, 2.0, got.AverageRating, 0.001)

	require.NoError(t, svc.Delete(first, review.ID))
	got, err = store.GetPlace(place.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, got.TotalReviews)
	assert.InDelta(t, 3.0, got.AverageRating, 0.001)
}

func TestReviewOwnership(t *testing.T) {
	store := memory.New()
	svc := newReviewService(store)
	owner := seedUser(t, store, "ana", models.RoleUser)
	author := seedUser(t, store, "bob", models.RoleUser)
	stranger := seedUser(t, store, "eva", models.RoleUser)
	admin := seedUser(t, store, "root", models.RoleAdmin)
	place := seedPlace(t, store, owner, "Museo del Prado")
	review := seedReview(t, store, place, author, 4)

	title := "Editado"
	_, err := svc.Update(stranger, review.ID, UpdateReviewInput{Title: &title})
	assertAppError(t, err, apperrors.CodeForbidden, "Unauthorized to update this review")

	// updates are author-only, even for admins
	_, err = svc.Update(admin, review.ID, UpdateReviewInput{Title: &title})
	assertAppError(t, err, apperrors.CodeForbidden, "Unauthorized to update this review")

	err = svc.Delete(stranger, review.ID)
	assertAppError(t, err, apperrors.CodeForbidden, "Unauthorized to delete this review")

	require.NoError(t, svc.Delete(admin, review.ID))
}

func TestMarkHelpfulOncePerUser(t *testing.T) {
	store := memory.New()
	svc := newReviewService(store)
	owner := seedUser(t, store, "ana", models.RoleUser)
	author := seedUser(t, store, "bob", models.RoleUser)
	voter := seedUser(t, store, "eva", models.RoleUser)
	place := seedPlace(t, store, owner, "Museo del Prado")
	review := seedReview(t, store, place, author, 4)

	count, err := svc.MarkHelpful(voter, review.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, count)

	_, err = svc.MarkHelpful(voter, review.ID)
	assertAppError(t, err, apperrors.CodeConflict, "You have already marked this review as helpful")

	_, err = svc.MarkHelpful(voter, 999)
	assertAppError(t, err, apperrors.CodeNotFound, "Review not found")
}

func TestReviewDetailRendersMarkdown(t *testing.T) {
	store := memory.New()
	svc := newReviewService(store)
	owner := seedUser(t, store, "ana", models.RoleUser)
	author := seedUser(t, store, "bob", models.RoleUser)
	place := seedPlace(t, store, owner, "Museo del Prado")

	created, err := svc.Create(author, ReviewInput{
		PlaceID: place.ID,
		Rating:  5,
		Title:   "Imprescindible",
		Content: "**Velázquez** <script>alert(1)</script>",
	})
	require.NoError(t, err)

	got, err := svc.Get(created.ID)
	require.NoError(t, err)
	assert.Contains(t, got.ContentHTML, "<strong>Velázquez</strong>")
	assert.NotContains(t, got.ContentHTML, "<script>")
}
