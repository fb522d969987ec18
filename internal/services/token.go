package services

import (
	"errors"
	"fmt"
	"time"

	"turiapp/internal/models"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// PurposePasswordReset marks tokens that may only be spent on a password
// reset, never as an access token.
const PurposePasswordReset = "password_reset"

const resetTokenTTL = 15 * time.Minute

// Claims is the JWT payload carried by every issued token.
type Claims struct {
	UserID     uint   `json:"userId"`
	Username   string `json:"username"`
	Email      string `json:"email"`
	Role       string `json:"role"`
	IsVerified bool   `json:"isVerified"`
	Purpose    string `json:"purpose,omitempty"`
	jwt.RegisteredClaims
}

// TokenService signs and verifies the HS256 tokens used for auth and
// password resets.
type TokenService struct {
	secret  []byte
	expires time.Duration
}

func NewTokenService(secret string, expires time.Duration) *TokenService {
	return &TokenService{secret: []byte(secret), expires: expires}
}

// Generate issues an access token for the user.
func (s *TokenService) Generate(u *models.User) (string, error) {
	return s.sign(u, "", s.expires)
}

// GenerateReset issues a short-lived single-purpose reset token.
func (s *TokenService) GenerateReset(u *models.User) (string, error) {
	return s.sign(u, PurposePasswordReset, resetTokenTTL)
}

func (s *TokenService) sign(u *models.User, purpose string, ttl time.Duration) (string, error) {
	now := time.Now()
	claims := &Claims{
		UserID:     u.ID,
		Username:   u.Username,
		Email:      u.Email,
		Role:       u.Role,
		IsVerified: u.IsVerified,
		Purpose:    purpose,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        uuid.NewString(),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
			IssuedAt:  jwt.NewNumericDate(now),
			Issuer:    "turiapp",
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.secret)
}

// Parse verifies signature and expiry and returns the claims. Callers
// distinguish expiry via IsTokenExpired.
func (s *TokenService) Parse(tokenString string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return s.secret, nil
	})
	if err != nil {
		return nil, err
	}
	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil, errors.New("invalid token claims")
	}
	return claims, nil
}

// IsTokenExpired reports whether a Parse failure was caused by expiry.
func IsTokenExpired(err error) bool {
	return errors.Is(err, jwt.ErrTokenExpired)
}
