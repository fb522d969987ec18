package services

import (
	"testing"
	"time"

	"turiapp/internal/apperrors"
	"turiapp/internal/models"
	"turiapp/internal/repository/memory"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newAuthService(store *memory.Store) (*AuthService, *TokenService) {
	tokens := NewTokenService("test-secret", time.Hour)
	return NewAuthService(store, tokens, nil, testLogger()), tokens
}

func TestRegisterIssuesTokenWithClaims(t *testing.T) {
	store := memory.New()
	svc, tokens := newAuthService(store)

	user, token, err := svc.Register(RegisterInput{
		Username: "ana",
		Email:    "ana@example.com",
		Password: "supersecret",
	})
	require.NoError(t, err)
	assert.Equal(t, models.RoleUser, user.Role)
	assert.True(t, user.IsActive)
	assert.False(t, user.IsVerified)
	assert.NotEqual(t, "supersecret", user.Password)

	claims, err := tokens.Parse(token)
	require.NoError(t, err)
	assert.Equal(t, user.ID, claims.UserID)
	assert.Equal(t, "ana", claims.Username)
	assert.Equal(t, "ana@example.com", claims.Email)
	assert.Equal(t, models.RoleUser, claims.Role)
	assert.Empty(t, claims.Purpose)
}

func TestRegisterRejectsTakenEmailAndUsername(t *testing.T) {
	store := memory.New()
	svc, _ := newAuthService(store)

	_, _, err := svc.Register(RegisterInput{Username: "ana", Email: "ana@example.com", Password: "supersecret"})
	require.NoError(t, err)

	_, _, err = svc.Register(RegisterInput{Username: "other", Email: "ana@example.com", Password: "supersecret"})
	assertAppError(t, err, apperrors.CodeConflict, "Email is already registered")

	_, _, err = svc.Register(RegisterInput{Username: "ana", Email: "new@example.com", Password: "supersecret"})
	assertAppError(t, err, apperrors.CodeConflict, "Username is already taken")
}

func TestLoginByEmailOrUsername(t *testing.T) {
	store := memory.New()
	svc, _ := newAuthService(store)
	_, _, err := svc.Register(RegisterInput{Username: "ana", Email: "ana@example.com", Password: "supersecret"})
	require.NoError(t, err)

	byEmail, _, err := svc.Login("ana@example.com", "supersecret")
	require.NoError(t, err)
	require.NotNil(t, byEmail.LastLogin)

	byUsername, token, err := svc.Login("ana", "supersecret")
	require.NoError(t, err)
	assert.Equal(t, byEmail.ID, byUsername.ID)
	assert.NotEmpty(t, token)
}

func TestLoginFailuresAreUniform(t *testing.T) {
	store := memory.New()
	svc, _ := newAuthService(store)
	user, _, err := svc.Register(RegisterInput{Username: "ana", Email: "ana@example.com", Password: "supersecret"})
	require.NoError(t, err)

	_, _, err = svc.Login("nobody@example.com", "supersecret")
	assertAppError(t, err, apperrors.CodeUnauthorized, "Credenciales inválidas")

	_, _, err = svc.Login("ana@example.com", "wrongpassword")
	assertAppError(t, err, apperrors.CodeUnauthorized, "Credenciales inválidas")

	// failed attempts never touch last_login
	stored, err := store.GetUser(user.ID)
	require.NoError(t, err)
	assert.Nil(t, stored.LastLogin)

	require.NoError(t, store.DeactivateUser(user.ID))
	_, _, err = svc.Login("ana@example.com", "supersecret")
	assertAppError(t, err, apperrors.CodeUnauthorized, "Usuario inactivo")
}

func TestChangePasswordVerifiesCurrent(t *testing.T) {
	store := memory.New()
	svc, _ := newAuthService(store)
	user, _, err := svc.Register(RegisterInput{Username: "ana", Email: "ana@example.com", Password: "supersecret"})
	require.NoError(t, err)

	err = svc.ChangePassword(user.ID, "wrongpassword", "newsecret123")
	assertAppError(t, err, apperrors.CodeUnauthorized, "Current password is incorrect")

	require.NoError(t, svc.ChangePassword(user.ID, "supersecret", "newsecret123"))

	_, _, err = svc.Login("ana", "supersecret")
	assertAppError(t, err, apperrors.CodeUnauthorized, "Credenciales inválidas")
	_, _, err = svc.Login("ana", "newsecret123")
	require.NoError(t, err)
}

func TestPasswordResetFlow(t *testing.T) {
	store := memory.New()
	svc, _ := newAuthService(store)
	_, accessToken, err := svc.Register(RegisterInput{Username: "ana", Email: "ana@example.com", Password: "supersecret"})
	require.NoError(t, err)

	// unknown email yields no token and no error
	token, err := svc.RequestPasswordReset("nobody@example.com")
	require.NoError(t, err)
	assert.Empty(t, token)

	token, err = svc.RequestPasswordReset("ana@example.com")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	// an access token must never pass as a reset token
	err = svc.ResetPassword(accessToken, "newsecret123")
	assertAppError(t, err, apperrors.CodeUnauthorized, "Invalid or expired reset token")

	require.NoError(t, svc.ResetPassword(token, "newsecret123"))
	_, _, err = svc.Login("ana@example.com", "newsecret123")
	require.NoError(t, err)
}
