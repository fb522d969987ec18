package services

import (
	"errors"
	"fmt"

	"turiapp/internal/apperrors"
	"turiapp/internal/models"
	"turiapp/internal/repository"

	"github.com/rs/zerolog"
)

type PlaceService struct {
	places     repository.PlaceStore
	categories repository.CategoryStore
	log        zerolog.Logger
}

func NewPlaceService(places repository.PlaceStore, categories repository.CategoryStore, log zerolog.Logger) *PlaceService {
	return &PlaceService{places: places, categories: categories, log: log}
}

type PlaceInput struct {
	Name        string
	Description string
	Address     string
	Latitude    float64
	Longitude   float64
	PriceRange  string
	CategoryIDs []uint
}

// Create inserts the place and its category links in one transaction.
func (s *PlaceService) Create(actor *models.User, input PlaceInput) (*models.Place, error) {
	if err := s.checkCategories(input.CategoryIDs); err != nil {
		return nil, err
	}

	priceRange := input.PriceRange
	if priceRange == "" {
		priceRange = models.PriceMedium
	}
	place := &models.Place{
		Name:        input.Name,
		Description: input.Description,
		Address:     input.Address,
		Latitude:    input.Latitude,
		Longitude:   input.Longitude,
		PriceRange:  priceRange,
		IsActive:    true,
		CreatedBy:   actor.ID,
	}
	if err := s.places.CreatePlace(place, input.CategoryIDs); err != nil {
		return nil, apperrors.NewInternal(err)
	}

	s.log.Info().Uint("place_id", place.ID).Uint("user_id", actor.ID).Msg("place created")
	return place, nil
}

func (s *PlaceService) checkCategories(ids []uint) error {
	for _, id := range ids {
		if _, err := s.categories.GetCategory(id); err != nil {
			return apperrors.NewValidation(fmt.Sprintf("category %d does not exist", id))
		}
	}
	return nil
}

// Get returns the place and counts the visit.
func (s *PlaceService) Get(id uint) (*models.Place, error) {
	place, err := s.places.GetPlace(id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, apperrors.NewNotFound("Place")
		}
		return nil, apperrors.NewInternal(err)
	}
	if err := s.places.IncrementVisits(id); err != nil {
		// the visit counter never blocks a read
		s.log.Warn().Err(err).Uint("place_id", id).Msg("visit counter update failed")
	} else {
		place.TotalVisits++
	}
	return place, nil
}

type UpdatePlaceInput struct {
	Name        *string
	Description *string
	Address     *string
	Latitude    *float64
	Longitude   *float64
	PriceRange  *string
	IsVerified  *bool
	IsFeatured  *bool
	CategoryIDs *[]uint
}

// Update applies field and category changes after the ownership gate.
// Only admins may touch the verified/featured flags.
func (s *PlaceService) Update(actor *models.User, id uint, input UpdatePlaceInput) (*models.Place, error) {
	place, err := s.places.GetPlace(id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, apperrors.NewNotFound("Place")
		}
		return nil, apperrors.NewInternal(err)
	}
	if !canModify(actor, place.CreatedBy) {
		return nil, apperrors.NewForbidden("Unauthorized to update this place")
	}

	if input.Name != nil {
		place.Name = *input.Name
	}
	if input.Description != nil {
		place.Description = *input.Description
	}
	if input.Address != nil {
		place.Address = *input.Address
	}
	if input.Latitude != nil {
		place.Latitude = *input.Latitude
	}
	if input.Longitude != nil {
		place.Longitude = *input.Longitude
	}
	if input.PriceRange != nil {
		place.PriceRange = *input.PriceRange
	}
	if actor.IsAdmin() {
		if input.IsVerified != nil {
			place.IsVerified = *input.IsVerified
		}
		if input.IsFeatured != nil {
			place.IsFeatured = *input.IsFeatured
		}
	}

	var categoryIDs []uint
	replaceCategories := input.CategoryIDs != nil
	if replaceCategories {
		categoryIDs = *input.CategoryIDs
		if err := s.checkCategories(categoryIDs); err != nil {
			return nil, err
		}
	}
	// clear preloaded association so gorm saves columns, not relations
	place.Categories = nil

	if err := s.places.UpdatePlace(place, categoryIDs, replaceCategories); err != nil {
		return nil, apperrors.NewInternal(err)
	}
	return place, nil
}

// Delete soft-deletes after the ownership gate.
func (s *PlaceService) Delete(actor *models.User, id uint) error {
	place, err := s.places.GetPlace(id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return apperrors.NewNotFound("Place")
		}
		return apperrors.NewInternal(err)
	}
	if !canModify(actor, place.CreatedBy) {
		return apperrors.NewForbidden("Unauthorized to delete this place")
	}
	if err := s.places.SoftDeletePlace(id); err != nil {
		return apperrors.NewInternal(err)
	}
	s.log.Info().Uint("place_id", id).Uint("user_id", actor.ID).Msg("place deleted")
	return nil
}

func (s *PlaceService) List(opts repository.PlaceListOptions) ([]models.Place, int64, error) {
	places, total, err := s.places.ListPlaces(opts)
	if err != nil {
		return nil, 0, apperrors.NewInternal(err)
	}
	return places, total, nil
}

func (s *PlaceService) Nearby(lat, lng, radiusKm float64, limit int) ([]models.Place, error) {
	places, err := s.places.NearbyPlaces(lat, lng, radiusKm, limit)
	if err != nil {
		return nil, apperrors.NewInternal(err)
	}
	return places, nil
}

func (s *PlaceService) Popular(limit int) ([]models.Place, error) {
	places, err := s.places.PopularPlaces(limit)
	if err != nil {
		return nil, apperrors.NewInternal(err)
	}
	return places, nil
}

func (s *PlaceService) Featured(limit int) ([]models.Place, error) {
	places, err := s.places.FeaturedPlaces(limit)
	if err != nil {
		return nil, apperrors.NewInternal(err)
	}
	return places, nil
}

func (s *PlaceService) Stats(id uint) (*models.PlaceStats, error) {
	stats, err := s.places.PlaceStats(id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, apperrors.NewNotFound("Place")
		}
		return nil, apperrors.NewInternal(err)
	}
	return stats, nil
}
