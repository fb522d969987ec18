package services

import (
	"errors"

	"turiapp/internal/apperrors"
	"turiapp/internal/models"
	"turiapp/internal/repository"

	"github.com/rs/zerolog"
)

type UserService struct {
	users repository.UserStore
	log   zerolog.Logger
}

func NewUserService(users repository.UserStore, log zerolog.Logger) *UserService {
	return &UserService{users: users, log: log}
}

func (s *UserService) Get(id uint) (*models.User, error) {
	user, err := s.users.GetUser(id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, apperrors.NewNotFound("User")
		}
		return nil, apperrors.NewInternal(err)
	}
	return user, nil
}

func (s *UserService) List(opts repository.UserListOptions) ([]models.User, int64, error) {
	users, total, err := s.users.ListUsers(opts)
	if err != nil {
		return nil, 0, apperrors.NewInternal(err)
	}
	return users, total, nil
}

// UpdateUserInput carries partial profile updates; nil means "leave as is".
type UpdateUserInput struct {
	Username  *string
	Email     *string
	FirstName *string
	LastName  *string
}

// UpdateProfile lets the owner or an admin edit a profile. Changing the
// email or username re-checks uniqueness against other users.
func (s *UserService) UpdateProfile(actor *models.User, id uint, input UpdateUserInput) (*models.User, error) {
	if !canModify(actor, id) {
		return nil, apperrors.NewForbidden("Unauthorized to update this user")
	}
	user, err := s.Get(id)
	if err != nil {
		return nil, err
	}

	if input.Email != nil && *input.Email != user.Email {
		if other, err := s.users.GetUserByEmail(*input.Email); err == nil && other.ID != id {
			return nil, apperrors.NewConflict("Email is already registered")
		}
		user.Email = *input.Email
	}
	if input.Username != nil && *input.Username != user.Username {
		if other, err := s.users.GetUserByUsername(*input.Username); err == nil && other.ID != id {
			return nil, apperrors.NewConflict("Username is already taken")
		}
		user.Username = *input.Username
	}
	if input.FirstName != nil {
		user.FirstName = *input.FirstName
	}
	if input.LastName != nil {
		user.LastName = *input.LastName
	}

	if err := s.users.UpdateUser(user); err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			return nil, apperrors.NewConflict("Email or username is already taken")
		}
		return nil, apperrors.NewInternal(err)
	}
	return user, nil
}

// Deactivate soft-disables a user; rows are never hard-deleted.
func (s *UserService) Deactivate(id uint) error {
	if err := s.users.DeactivateUser(id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return apperrors.NewNotFound("User")
		}
		return apperrors.NewInternal(err)
	}
	s.log.Info().Uint("user_id", id).Msg("user deactivated")
	return nil
}

func (s *UserService) Stats(id uint) (*models.UserStats, error) {
	if _, err := s.Get(id); err != nil {
		return nil, err
	}
	stats, err := s.users.UserStats(id)
	if err != nil {
		return nil, apperrors.NewInternal(err)
	}
	return stats, nil
}
