package services

import (
	"errors"

	"turiapp/internal/apperrors"
	"turiapp/internal/models"
	"turiapp/internal/repository"

	"github.com/rs/zerolog"
)

type PersonService struct {
	persons repository.PersonStore
	log     zerolog.Logger
}

func NewPersonService(persons repository.PersonStore, log zerolog.Logger) *PersonService {
	return &PersonService{persons: persons, log: log}
}

type PersonInput struct {
	Bio         string
	Nationality string
	Languages   string
	Interests   string
	Location    string
	IsPublic    *bool
}

// Create makes the one person profile a user may have.
func (s *PersonService) Create(userID uint, input PersonInput) (*models.Person, error) {
	if _, err := s.persons.GetPersonByUser(userID); err == nil {
		return nil, apperrors.NewConflict("Profile already exists for this user")
	}

	person := &models.Person{
		UserID:      userID,
		Bio:         input.Bio,
		Nationality: input.Nationality,
		Languages:   input.Languages,
		Interests:   input.Interests,
		Location:    input.Location,
		IsPublic:    true,
	}
	if input.IsPublic != nil {
		person.IsPublic = *input.IsPublic
	}
	if err := s.persons.CreatePerson(person); err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			return nil, apperrors.NewConflict("Profile already exists for this user")
		}
		return nil, apperrors.NewInternal(err)
	}
	return person, nil
}

// Get returns a profile, hiding private ones from everyone but the owner
// and admins.
func (s *PersonService) Get(id uint, viewer *models.User) (*models.Person, error) {
	person, err := s.persons.GetPerson(id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, apperrors.NewNotFound("Person")
		}
		return nil, apperrors.NewInternal(err)
	}
	if !person.IsPublic {
		if viewer == nil || !canModify(viewer, person.UserID) {
			return nil, apperrors.NewForbidden("This profile is private")
		}
	}
	return person, nil
}

func (s *PersonService) GetByUser(userID uint) (*models.Person, error) {
	person, err := s.persons.GetPersonByUser(userID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, apperrors.NewNotFound("Person")
		}
		return nil, apperrors.NewInternal(err)
	}
	return person, nil
}

// Update edits the caller's own profile.
func (s *PersonService) Update(userID uint, input PersonInput) (*models.Person, error) {
	person, err := s.GetByUser(userID)
	if err != nil {
		return nil, err
	}

	person.Bio = input.Bio
	person.Nationality = input.Nationality
	person.Languages = input.Languages
	person.Interests = input.Interests
	person.Location = input.Location
	if input.IsPublic != nil {
		person.IsPublic = *input.IsPublic
	}

	if err := s.persons.UpdatePerson(person); err != nil {
		return nil, apperrors.NewInternal(err)
	}
	return person, nil
}
