package router

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"turiapp/internal/handlers"
	"turiapp/internal/middleware"
	"turiapp/internal/models"
	"turiapp/internal/repository/memory"
	"turiapp/internal/services"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestEngine(t *testing.T) (*gin.Engine, *memory.Store) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	store := memory.New()
	log := zerolog.Nop()
	tokens := services.NewTokenService("test-secret", time.Hour)

	r := gin.New()
	r.Use(middleware.LoadUser(tokens, store))
	RegisterRoutes(r, Handlers{
		Meta:       handlers.NewMetaHandler(),
		Auth:       handlers.NewAuthHandler(services.NewAuthService(store, tokens, nil, log)),
		Users:      handlers.NewUserHandler(services.NewUserService(store, log)),
		Persons:    handlers.NewPersonHandler(services.NewPersonService(store, log)),
		Places:     handlers.NewPlaceHandler(services.NewPlaceService(store, store, log)),
		Categories: handlers.NewCategoryHandler(services.NewCategoryService(store, log)),
		Reviews:    handlers.NewReviewHandler(services.NewReviewService(store, store, log)),
		Comments:   handlers.NewCommentHandler(services.NewCommentService(store, store, log)),
		Favorites:  handlers.NewFavoriteHandler(services.NewFavoriteService(store, store, log)),
	})
	return r, store
}

func TestCreateUserAliasRegisters(t *testing.T) {
	r, _ := newTestEngine(t)

	req := httptest.NewRequest(http.MethodPost, "/api/users",
		strings.NewReader(`{"username":"ana","email":"ana@example.com","password":"supersecret"}`))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusCreated, w.Code)
	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	data := body["data"].(map[string]interface{})
	assert.NotEmpty(t, data["token"])
	assert.Equal(t, "ana", data["user"].(map[string]interface{})["username"])
}

func TestGetCommentRouteMounted(t *testing.T) {
	r, store := newTestEngine(t)

	author := &models.User{Username: "ana", Email: "ana@example.com", Password: "x", Role: models.RoleUser, IsActive: true}
	require.NoError(t, store.CreateUser(author))
	place := &models.Place{Name: "Museo", Address: "Calle Mayor 1", Latitude: 40.4, Longitude: -3.7, PriceRange: models.PriceMedium, IsActive: true, CreatedBy: author.ID}
	require.NoError(t, store.CreatePlace(place, nil))
	review := &models.Review{PlaceID: place.ID, UserID: author.ID, Rating: 4, Title: "Bien", Content: "Me gustó"}
	require.NoError(t, store.CreateReview(review))
	comment := &models.Comment{ReviewID: review.ID, UserID: author.ID, Content: "De acuerdo", IsPublic: true}
	require.NoError(t, store.CreateComment(comment))

	req := httptest.NewRequest(http.MethodGet, fmt.Sprintf("/api/comments/%d", comment.ID), nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	data := body["data"].(map[string]interface{})
	assert.Equal(t, "De acuerdo", data["content"])

	// hidden comments stay invisible to anonymous readers
	require.NoError(t, store.SetCommentVisibility(comment.ID, false))
	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, fmt.Sprintf("/api/comments/%d", comment.ID), nil))
	assert.Equal(t, http.StatusNotFound, w.Code)
}
