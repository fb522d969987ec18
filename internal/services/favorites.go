package services

import (
	"errors"
	"fmt"

	"turiapp/internal/apperrors"
	"turiapp/internal/models"
	"turiapp/internal/repository"

	"github.com/rs/zerolog"
)

// Bulk actions accepted by Bulk.
const (
	BulkAdd    = "add"
	BulkRemove = "remove"
)

type FavoriteService struct {
	favorites repository.FavoriteStore
	places    repository.PlaceStore
	log       zerolog.Logger
}

func NewFavoriteService(favorites repository.FavoriteStore, places repository.PlaceStore, log zerolog.Logger) *FavoriteService {
	return &FavoriteService{favorites: favorites, places: places, log: log}
}

type BulkItemResult struct {
	PlaceID uint   `json:"place_id"`
	Success bool   `json:"success"`
	Error   string `json:"error,omitempty"`
}

type BulkResult struct {
	Successful int              `json:"successful"`
	Failed     int              `json:"failed"`
	Total      int              `json:"total"`
	Results    []BulkItemResult `json:"results"`
}

// Add favorites a place for the user. Saving twice is a conflict.
func (s *FavoriteService) Add(userID, placeID uint) (*models.Favorite, error) {
	if _, err := s.places.GetPlace(placeID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, apperrors.NewNotFound("Place")
		}
		return nil, apperrors.NewInternal(err)
	}
	if _, err := s.favorites.GetFavoriteByUserAndPlace(userID, placeID); err == nil {
		return nil, apperrors.NewConflict("Place is already in favorites")
	}

	favorite := &models.Favorite{UserID: userID, PlaceID: placeID}
	if err := s.favorites.CreateFavorite(favorite); err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			return nil, apperrors.NewConflict("Place is already in favorites")
		}
		return nil, apperrors.NewInternal(err)
	}

	s.log.Info().Uint("user_id", userID).Uint("place_id", placeID).Msg("favorite added")
	return favorite, nil
}

// RemoveByID deletes a favorite row after the ownership gate.
func (s *FavoriteService) RemoveByID(actor *models.User, id uint) error {
	favorite, err := s.favorites.GetFavorite(id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return apperrors.NewNotFound("Favorite")
		}
		return apperrors.NewInternal(err)
	}
	if !canModify(actor, favorite.UserID) {
		return apperrors.NewForbidden("Unauthorized to remove this favorite")
	}
	if err := s.favorites.DeleteFavorite(favorite.ID); err != nil {
		return apperrors.NewInternal(err)
	}
	return nil
}

// Remove unfavorites by (user, place); bulk remove goes through here.
func (s *FavoriteService) Remove(userID, placeID uint) error {
	favorite, err := s.favorites.GetFavoriteByUserAndPlace(userID, placeID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return apperrors.NewNotFound("Favorite")
		}
		return apperrors.NewInternal(err)
	}
	if err := s.favorites.DeleteFavorite(favorite.ID); err != nil {
		return apperrors.NewInternal(err)
	}
	return nil
}

func (s *FavoriteService) List(userID uint, limit, offset int) ([]models.Favorite, int64, error) {
	favorites, total, err := s.favorites.ListFavoritesByUser(userID, limit, offset)
	if err != nil {
		return nil, 0, apperrors.NewInternal(err)
	}
	return favorites, total, nil
}

// Toggle flips the favorite state and reports whether the place ended up
// favorited.
func (s *FavoriteService) Toggle(userID, placeID uint) (bool, error) {
	if _, err := s.places.GetPlace(placeID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return false, apperrors.NewNotFound("Place")
		}
		return false, apperrors.NewInternal(err)
	}

	favorite, err := s.favorites.GetFavoriteByUserAndPlace(userID, placeID)
	if err == nil {
		if err := s.favorites.DeleteFavorite(favorite.ID); err != nil {
			return false, apperrors.NewInternal(err)
		}
		return false, nil
	}
	if !errors.Is(err, repository.ErrNotFound) {
		return false, apperrors.NewInternal(err)
	}

	if err := s.favorites.CreateFavorite(&models.Favorite{UserID: userID, PlaceID: placeID}); err != nil {
		// a concurrent toggle got there first, the place is favorited
		if errors.Is(err, repository.ErrDuplicate) {
			return true, nil
		}
		return false, apperrors.NewInternal(err)
	}
	return true, nil
}

// Bulk applies add or remove over a batch of places. Items fail
// independently; the summary reports per-item outcomes.
func (s *FavoriteService) Bulk(userID uint, action string, placeIDs []uint) (*BulkResult, error) {
	if action != BulkAdd && action != BulkRemove {
		return nil, apperrors.NewValidation("action must be one of: add, remove")
	}
	if len(placeIDs) == 0 {
		return nil, apperrors.NewValidation("place_ids must not be empty")
	}

	result := &BulkResult{Total: len(placeIDs), Results: make([]BulkItemResult, 0, len(placeIDs))}
	for _, placeID := range placeIDs {
		item := BulkItemResult{PlaceID: placeID, Success: true}

		var err error
		if action == BulkAdd {
			_, err = s.Add(userID, placeID)
		} else {
			err = s.Remove(userID, placeID)
		}
		if err != nil {
			item.Success = false
			var appErr *apperrors.AppError
			if errors.As(err, &appErr) {
				item.Error = appErr.Message
			} else {
				item.Error = fmt.Sprintf("could not %s favorite", action)
			}
		}

		if item.Success {
			result.Successful++
		} else {
			result.Failed++
		}
		result.Results = append(result.Results, item)
	}

	s.log.Info().Uint("user_id", userID).Str("action", action).Int("successful", result.Successful).Int("failed", result.Failed).Msg("bulk favorites processed")
	return result, nil
}
