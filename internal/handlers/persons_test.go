package handlers

import (
	"fmt"
	"net/http"
	"strings"
	"testing"
	"time"

	"turiapp/internal/middleware"
	"turiapp/internal/models"
	"turiapp/internal/repository/memory"
	"turiapp/internal/services"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newPersonRouter(t *testing.T) (*gin.Engine, string) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	store := memory.New()
	tokens := services.NewTokenService("test-secret", time.Hour)
	h := NewPersonHandler(services.NewPersonService(store, zerolog.Nop()))

	r := gin.New()
	r.Use(middleware.LoadUser(tokens, store))
	r.POST("/api/persons", middleware.RequireAuth(), h.Create)

	user := &models.User{Username: "ana", Email: "ana@example.com", Password: "x", Role: models.RoleUser, IsActive: true}
	require.NoError(t, store.CreateUser(user))
	token, err := tokens.Generate(user)
	require.NoError(t, err)
	return r, token
}

func TestCreatePersonLengthCaps(t *testing.T) {
	r, token := newPersonRouter(t)

	w, body := postJSON(r, "/api/persons",
		fmt.Sprintf(`{"bio":"%s"}`, strings.Repeat("b", 501)), token)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "VALIDATION_ERROR", body["error"])
	assert.Contains(t, body["details"], "Bio must be at most 500 characters")

	w, body = postJSON(r, "/api/persons",
		fmt.Sprintf(`{"languages":"%s"}`, strings.Repeat("l", 201)), token)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, body["details"], "Languages must be at most 200 characters")

	w, body = postJSON(r, "/api/persons",
		fmt.Sprintf(`{"bio":"%s","languages":"es, en"}`, strings.Repeat("b", 500)), token)
	assert.Equal(t, http.StatusCreated, w.Code)
	assert.Equal(t, "Profile created successfully", body["message"])
}
