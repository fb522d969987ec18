package middleware

import (
	"net/http"
	"strings"

	"turiapp/internal/apperrors"
	"turiapp/internal/models"
	"turiapp/internal/repository"
	"turiapp/internal/services"

	"github.com/gin-gonic/gin"
)

// UserKey is where LoadUser stores the authenticated *models.User in the
// gin context.
const UserKey = "user"

func abortWithError(c *gin.Context, status int, code, message string) {
	c.AbortWithStatusJSON(status, gin.H{
		"success": false,
		"error":   code,
		"message": message,
	})
}

// LoadUser parses an optional Bearer token and puts the matching active
// user on the context. A malformed or expired token fails the request even
// on public routes; no token at all just leaves the context anonymous.
func LoadUser(tokens *services.TokenService, users repository.UserStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if header == "" {
			c.Next()
			return
		}

		tokenString, ok := strings.CutPrefix(header, "Bearer ")
		if !ok {
			abortWithError(c, http.StatusUnauthorized, apperrors.CodeTokenInvalid, "Invalid authorization header")
			return
		}

		claims, err := tokens.Parse(tokenString)
		if err != nil {
			if services.IsTokenExpired(err) {
				abortWithError(c, http.StatusUnauthorized, apperrors.CodeTokenExpired, "Token has expired")
				return
			}
			abortWithError(c, http.StatusUnauthorized, apperrors.CodeTokenInvalid, "Invalid token")
			return
		}
		if claims.Purpose != "" {
			// reset tokens are not access tokens
			abortWithError(c, http.StatusUnauthorized, apperrors.CodeTokenInvalid, "Invalid token")
			return
		}

		user, err := users.GetUser(claims.UserID)
		if err != nil || !user.IsActive {
			abortWithError(c, http.StatusUnauthorized, apperrors.CodeTokenInvalid, "Invalid token")
			return
		}

		c.Set(UserKey, user)
		c.Next()
	}
}

// RequireAuth rejects anonymous requests. It assumes LoadUser ran first.
func RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		if _, exists := c.Get(UserKey); !exists {
			abortWithError(c, http.StatusUnauthorized, apperrors.CodeTokenMissing, "Authentication required")
			return
		}
		c.Next()
	}
}

// RequireRoles gates a route to the given roles.
func RequireRoles(roles ...string) gin.HandlerFunc {
	return func(c *gin.Context) {
		value, exists := c.Get(UserKey)
		if !exists {
			abortWithError(c, http.StatusUnauthorized, apperrors.CodeTokenMissing, "Authentication required")
			return
		}
		user := value.(*models.User)
		for _, role := range roles {
			if user.Role == role {
				c.Next()
				return
			}
		}
		abortWithError(c, http.StatusForbidden, apperrors.CodeForbidden, "Insufficient permissions")
	}
}
