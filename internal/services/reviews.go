package services

import (
	"errors"

	"turiapp/internal/apperrors"
	"turiapp/internal/models"
	"turiapp/internal/repository"
	"turiapp/internal/utils"

	"github.com/rs/zerolog"
)

type ReviewService struct {
	reviews repository.ReviewStore
	places  repository.PlaceStore
	log     zerolog.Logger
}

func NewReviewService(reviews repository.ReviewStore, places repository.PlaceStore, log zerolog.Logger) *ReviewService {
	return &ReviewService{reviews: reviews, places: places, log: log}
}

type ReviewInput struct {
	PlaceID uint
	Rating  int
	Title   string
	Content string
}

// Create enforces one review per (place, user). The pre-check gives the
// friendly message; the unique index settles concurrent attempts.
func (s *ReviewService) Create(actor *models.User, input ReviewInput) (*models.Review, error) {
	if _, err := s.places.GetPlace(input.PlaceID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, apperrors.NewNotFound("Place")
		}
		return nil, apperrors.NewInternal(err)
	}
	if _, err := s.reviews.GetReviewByPlaceAndUser(input.PlaceID, actor.ID); err == nil {
		return nil, apperrors.NewConflict("User has already reviewed this place")
	}

	review := &models.Review{
		PlaceID: input.PlaceID,
		UserID:  actor.ID,
		Rating:  input.Rating,
		Title:   input.Title,
		Content: input.Content,
	}
	if err := s.reviews.CreateReview(review); err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			return nil, apperrors.NewConflict("User has already reviewed this place")
		}
		return nil, apperrors.NewInternal(err)
	}

	s.log.Info().Uint("review_id", review.ID).Uint("place_id", input.PlaceID).Uint("user_id", actor.ID).Msg("review created")
	return review, nil
}

func (s *ReviewService) Get(id uint) (*models.Review, error) {
	review, err := s.reviews.GetReview(id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, apperrors.NewNotFound("Review")
		}
		return nil, apperrors.NewInternal(err)
	}
	review.ContentHTML = utils.RenderMarkdown(review.Content)
	return review, nil
}

func (s *ReviewService) List(opts repository.ReviewListOptions) ([]models.Review, int64, error) {
	reviews, total, err := s.reviews.ListReviews(opts)
	if err != nil {
		return nil, 0, apperrors.NewInternal(err)
	}
	for i := range reviews {
		reviews[i].ContentHTML = utils.RenderMarkdown(reviews[i].Content)
	}
	return reviews, total, nil
}

type UpdateReviewInput struct {
	Rating  *int
	Title   *string
	Content *string
}

func (s *ReviewService) Update(actor *models.User, id uint, input UpdateReviewInput) (*models.Review, error) {
	review, err := s.reviews.GetReview(id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, apperrors.NewNotFound("Review")
		}
		return nil, apperrors.NewInternal(err)
	}
	if review.UserID != actor.ID {
		return nil, apperrors.NewForbidden("Unauthorized to update this review")
	}

	if input.Rating != nil {
		review.Rating = *input.Rating
	}
	if input.Title != nil {
		review.Title = *input.Title
	}
	if input.Content != nil {
		review.Content = *input.Content
	}

	if err := s.reviews.UpdateReview(review); err != nil {
		return nil, apperrors.NewInternal(err)
	}
	return review, nil
}

func (s *ReviewService) Delete(actor *models.User, id uint) error {
	review, err := s.reviews.GetReview(id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return apperrors.NewNotFound("Review")
		}
		return apperrors.NewInternal(err)
	}
	if !canModify(actor, review.UserID) {
		return apperrors.NewForbidden("Unauthorized to delete this review")
	}
	if err := s.reviews.DeleteReview(id); err != nil {
		return apperrors.NewInternal(err)
	}
	s.log.Info().Uint("review_id", id).Uint("user_id", actor.ID).Msg("review deleted")
	return nil
}

// MarkHelpful records one helpful vote per user per review and returns the
// new count.
func (s *ReviewService) MarkHelpful(actor *models.User, reviewID uint) (int, error) {
	if _, err := s.reviews.GetReview(reviewID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return 0, apperrors.NewNotFound("Review")
		}
		return 0, apperrors.NewInternal(err)
	}
	voted, err := s.reviews.HasHelpfulVote(reviewID, actor.ID)
	if err != nil {
		return 0, apperrors.NewInternal(err)
	}
	if voted {
		return 0, apperrors.NewConflict("You have already marked this review as helpful")
	}
	if err := s.reviews.AddHelpfulVote(reviewID, actor.ID); err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			return 0, apperrors.NewConflict("You have already marked this review as helpful")
		}
		return 0, apperrors.NewInternal(err)
	}
	review, err := s.reviews.GetReview(reviewID)
	if err != nil {
		return 0, apperrors.NewInternal(err)
	}
	return review.HelpfulCount, nil
}
