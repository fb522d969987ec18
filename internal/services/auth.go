package services

import (
	"errors"
	"time"

	"turiapp/internal/apperrors"
	"turiapp/internal/models"
	"turiapp/internal/repository"
	"turiapp/internal/utils"

	"github.com/rs/zerolog"
)

// AuthService owns registration, login and the password lifecycle.
type AuthService struct {
	users  repository.UserStore
	tokens *TokenService
	mailer *Mailer
	log    zerolog.Logger
}

func NewAuthService(users repository.UserStore, tokens *TokenService, mailer *Mailer, log zerolog.Logger) *AuthService {
	return &AuthService{users: users, tokens: tokens, mailer: mailer, log: log}
}

type RegisterInput struct {
	Username  string
	Email     string
	Password  string
	FirstName string
	LastName  string
}

// Register creates a new user and returns it with a fresh access token.
// The pre-checks give precise conflict messages; the store's unique indexes
// are the authoritative guard if a concurrent registration slips between
// check and insert.
func (s *AuthService) Register(input RegisterInput) (*models.User, string, error) {
	if _, err := s.users.GetUserByEmail(input.Email); err == nil {
		return nil, "", apperrors.NewConflict("Email is already registered")
	}
	if _, err := s.users.GetUserByUsername(input.Username); err == nil {
		return nil, "", apperrors.NewConflict("Username is already taken")
	}

	hash, err := utils.HashPassword(input.Password)
	if err != nil {
		return nil, "", apperrors.NewInternal(err)
	}

	user := &models.User{
		Username:   input.Username,
		Email:      input.Email,
		Password:   hash,
		FirstName:  input.FirstName,
		LastName:   input.LastName,
		Role:       models.RoleUser,
		IsActive:   true,
		IsVerified: false,
	}
	if err := s.users.CreateUser(user); err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			return nil, "", apperrors.NewConflict("Email or username is already taken")
		}
		return nil, "", apperrors.NewInternal(err)
	}

	token, err := s.tokens.Generate(user)
	if err != nil {
		return nil, "", apperrors.NewInternal(err)
	}

	if s.mailer != nil {
		s.mailer.SendWelcomeEmail(user.Email, user.Username)
	}

	s.log.Info().Uint("user_id", user.ID).Str("username", user.Username).Msg("user registered")
	return user, token, nil
}

// Login authenticates by email or username. Failed attempts never touch
// last_login and never reveal which part of the credentials was wrong.
func (s *AuthService) Login(identifier, password string) (*models.User, string, error) {
	user, err := s.users.GetUserByIdentifier(identifier)
	if err != nil {
		return nil, "", apperrors.NewUnauthorized("Credenciales inválidas")
	}
	if !user.IsActive {
		return nil, "", apperrors.NewUnauthorized("Usuario inactivo")
	}
	if !utils.CheckPasswordHash(password, user.Password) {
		s.log.Warn().Uint("user_id", user.ID).Msg("login failed: bad password")
		return nil, "", apperrors.NewUnauthorized("Credenciales inválidas")
	}

	now := time.Now()
	if err := s.users.UpdateLastLogin(user.ID, now); err != nil {
		return nil, "", apperrors.NewInternal(err)
	}
	user.LastLogin = &now

	token, err := s.tokens.Generate(user)
	if err != nil {
		return nil, "", apperrors.NewInternal(err)
	}

	s.log.Info().Uint("user_id", user.ID).Msg("user logged in")
	return user, token, nil
}

// ChangePassword rewrites the hash only after the current password verifies.
func (s *AuthService) ChangePassword(userID uint, current, newPassword string) error {
	user, err := s.users.GetUser(userID)
	if err != nil {
		return apperrors.NewNotFound("User")
	}
	if !utils.CheckPasswordHash(current, user.Password) {
		return apperrors.NewUnauthorized("Current password is incorrect")
	}
	hash, err := utils.HashPassword(newPassword)
	if err != nil {
		return apperrors.NewInternal(err)
	}
	if err := s.users.UpdatePassword(user.ID, hash); err != nil {
		return apperrors.NewInternal(err)
	}
	s.log.Info().Uint("user_id", user.ID).Msg("password changed")
	return nil
}

// RequestPasswordReset mails a reset token when the email is known and does
// nothing otherwise. It returns the token for callers that need it; the
// handler sends the same response either way so the endpoint cannot be used
// to enumerate accounts.
func (s *AuthService) RequestPasswordReset(email string) (string, error) {
	user, err := s.users.GetUserByEmail(email)
	if err != nil {
		return "", nil
	}
	token, err := s.tokens.GenerateReset(user)
	if err != nil {
		return "", apperrors.NewInternal(err)
	}
	if s.mailer != nil {
		s.mailer.SendPasswordResetEmail(user.Email, token)
	}
	s.log.Info().Uint("user_id", user.ID).Msg("password reset token issued")
	return token, nil
}

// ResetPassword consumes a reset token. Any parse failure, wrong purpose or
// unknown subject maps to the same unauthorized answer.
func (s *AuthService) ResetPassword(tokenString, newPassword string) error {
	claims, err := s.tokens.Parse(tokenString)
	if err != nil || claims.Purpose != PurposePasswordReset {
		return apperrors.NewUnauthorized("Invalid or expired reset token")
	}
	user, err := s.users.GetUser(claims.UserID)
	if err != nil {
		return apperrors.NewUnauthorized("Invalid or expired reset token")
	}
	hash, err := utils.HashPassword(newPassword)
	if err != nil {
		return apperrors.NewInternal(err)
	}
	if err := s.users.UpdatePassword(user.ID, hash); err != nil {
		return apperrors.NewInternal(err)
	}
	s.log.Info().Uint("user_id", user.ID).Msg("password reset")
	return nil
}
