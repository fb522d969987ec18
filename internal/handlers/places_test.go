package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
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

func newPlaceRouter(t *testing.T) (*gin.Engine, *memory.Store, string) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	store := memory.New()
	tokens := services.NewTokenService("test-secret", time.Hour)
	placeService := services.NewPlaceService(store, store, zerolog.Nop())
	h := NewPlaceHandler(placeService)

	r := gin.New()
	r.Use(middleware.LoadUser(tokens, store))
	r.GET("/api/places/nearby", h.Nearby)
	r.GET("/api/places", h.List)
	r.POST("/api/places", middleware.RequireAuth(), h.Create)

	user := &models.User{Username: "ana", Email: "ana@example.com", Password: "x", Role: models.RoleUser, IsActive: true}
	require.NoError(t, store.CreateUser(user))
	token, err := tokens.Generate(user)
	require.NoError(t, err)
	return r, store, token
}

func TestCreatePlaceValidatesCoordinates(t *testing.T) {
	r, _, token := newPlaceRouter(t)

	w, body := postJSON(r, "/api/places",
		`{"name":"Museo","address":"Calle Mayor 1","latitude":123.0,"longitude":-3.7}`, token)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "VALIDATION_ERROR", body["error"])

	w, body = postJSON(r, "/api/places",
		`{"name":"Museo","address":"Calle Mayor 1","latitude":40.4,"longitude":-3.7,"price_range":"platinum"}`, token)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "VALIDATION_ERROR", body["error"])

	w, body = postJSON(r, "/api/places",
		`{"name":"Museo","address":"Calle Mayor 1","latitude":40.4,"longitude":-3.7,"price_range":"low"}`, token)
	assert.Equal(t, http.StatusCreated, w.Code)
	data := body["data"].(map[string]interface{})
	assert.Equal(t, "low", data["price_range"])
}

func TestCreatePlaceAcceptsZeroCoordinates(t *testing.T) {
	r, _, token := newPlaceRouter(t)

	w, body := postJSON(r, "/api/places",
		`{"name":"Parque Ecuador","address":"Quito","latitude":0,"longitude":-78.5}`, token)
	assert.Equal(t, http.StatusCreated, w.Code)
	data := body["data"].(map[string]interface{})
	assert.Equal(t, float64(0), data["latitude"])

	w, body = postJSON(r, "/api/places",
		`{"name":"Observatorio","address":"Greenwich","latitude":51.47,"longitude":0}`, token)
	assert.Equal(t, http.StatusCreated, w.Code)
	data = body["data"].(map[string]interface{})
	assert.Equal(t, float64(0), data["longitude"])

	// absent coordinates still fail the required check
	w, body = postJSON(r, "/api/places",
		`{"name":"Sin sitio","address":"Ninguna"}`, token)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "VALIDATION_ERROR", body["error"])
}

func TestNearbyValidatesQuery(t *testing.T) {
	r, _, _ := newPlaceRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/api/places/nearby?latitude=abc&longitude=-3.7", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	req = httptest.NewRequest(http.MethodGet, "/api/places/nearby?latitude=40.4&longitude=-3.7&radius=500", nil)
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	req = httptest.NewRequest(http.MethodGet, "/api/places/nearby?latitude=40.4&longitude=-3.7", nil)
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestListPlacesPaginationEnvelope(t *testing.T) {
	r, store, _ := newPlaceRouter(t)
	owner, err := store.GetUserByUsername("ana")
	require.NoError(t, err)
	for _, name := range []string{"Uno", "Dos", "Tres"} {
		place := &models.Place{
			Name: name, Address: "x", Latitude: 40.4, Longitude: -3.7,
			PriceRange: models.PriceMedium, IsActive: true, CreatedBy: owner.ID,
		}
		require.NoError(t, store.CreatePlace(place, nil))
	}

	req := httptest.NewRequest(http.MethodGet, "/api/places?page=2&per_page=2", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)

	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	data := body["data"].(map[string]interface{})
	items := data["items"].([]interface{})
	assert.Len(t, items, 1)

	pagination := data["pagination"].(map[string]interface{})
	assert.Equal(t, float64(2), pagination["page"])
	assert.Equal(t, float64(3), pagination["total"])
	assert.Equal(t, float64(2), pagination["total_pages"])
}
