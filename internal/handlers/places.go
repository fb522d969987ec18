package handlers

import (
	"turiapp/internal/apperrors"
	"turiapp/internal/repository"
	"turiapp/internal/services"
	"turiapp/internal/utils"

	"github.com/gin-gonic/gin"
)

const (
	defaultNearbyRadiusKm = 5.0
	maxNearbyRadiusKm     = 100.0
	defaultListLimit      = 10
	maxListLimit          = 50
)

type PlaceHandler struct {
	places *services.PlaceService
}

func NewPlaceHandler(places *services.PlaceService) *PlaceHandler {
	return &PlaceHandler{places: places}
}

// Latitude and Longitude are pointers so that 0 (equator, prime meridian)
// still counts as present for the required check.
type createPlaceRequest struct {
	Name        string   `json:"name" binding:"required,min=2,max=200"`
	Description string   `json:"description" binding:"max=5000"`
	Address     string   `json:"address" binding:"required,max=300"`
	Latitude    *float64 `json:"latitude" binding:"required,gte=-90,lte=90"`
	Longitude   *float64 `json:"longitude" binding:"required,gte=-180,lte=180"`
	PriceRange  string   `json:"price_range" binding:"omitempty,oneof=free low medium high luxury"`
	CategoryIDs []uint   `json:"category_ids"`
}

// Create handles POST /api/places.
func (h *PlaceHandler) Create(c *gin.Context) {
	var req createPlaceRequest
	if !bindJSON(c, &req) {
		return
	}

	place, err := h.places.Create(currentUser(c), services.PlaceInput{
		Name:        req.Name,
		Description: req.Description,
		Address:     req.Address,
		Latitude:    *req.Latitude,
		Longitude:   *req.Longitude,
		PriceRange:  req.PriceRange,
		CategoryIDs: req.CategoryIDs,
	})
	if err != nil {
		respondError(c, err)
		return
	}
	respondCreated(c, place, "Place created successfully")
}

// Get handles GET /api/places/:id and counts the visit.
func (h *PlaceHandler) Get(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	place, err := h.places.Get(id)
	if err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, place)
}

// List handles GET /api/places with category, price, verification and text
// search filters.
func (h *PlaceHandler) List(c *gin.Context) {
	page, perPage, limit, offset := pagination(c)

	opts := repository.PlaceListOptions{
		PriceRange: c.Query("price_range"),
		Search:     c.Query("search"),
		Limit:      limit,
		Offset:     offset,
	}
	if raw := c.Query("category_id"); raw != "" {
		id, ok := utils.StringToUint(raw)
		if !ok {
			respondError(c, apperrors.NewValidation("category_id must be a positive integer"))
			return
		}
		opts.CategoryID = id
	}
	if raw := c.Query("verified"); raw != "" {
		verified := raw == "true"
		opts.Verified = &verified
	}

	places, total, err := h.places.List(opts)
	if err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, paginated(places, total, page, perPage))
}

type updatePlaceRequest struct {
	Name        *string  `json:"name" binding:"omitempty,min=2,max=200"`
	Description *string  `json:"description" binding:"omitempty,max=5000"`
	Address     *string  `json:"address" binding:"omitempty,max=300"`
	Latitude    *float64 `json:"latitude" binding:"omitempty,gte=-90,lte=90"`
	Longitude   *float64 `json:"longitude" binding:"omitempty,gte=-180,lte=180"`
	PriceRange  *string  `json:"price_range" binding:"omitempty,oneof=free low medium high luxury"`
	IsVerified  *bool    `json:"is_verified"`
	IsFeatured  *bool    `json:"is_featured"`
	CategoryIDs *[]uint  `json:"category_ids"`
}

// Update handles PUT /api/places/:id.
func (h *PlaceHandler) Update(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	var req updatePlaceRequest
	if !bindJSON(c, &req) {
		return
	}

	place, err := h.places.Update(currentUser(c), id, services.UpdatePlaceInput{
		Name:        req.Name,
		Description: req.Description,
		Address:     req.Address,
		Latitude:    req.Latitude,
		Longitude:   req.Longitude,
		PriceRange:  req.PriceRange,
		IsVerified:  req.IsVerified,
		IsFeatured:  req.IsFeatured,
		CategoryIDs: req.CategoryIDs,
	})
	if err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, place)
}

// Delete handles DELETE /api/places/:id.
func (h *PlaceHandler) Delete(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	if err := h.places.Delete(currentUser(c), id); err != nil {
		respondError(c, err)
		return
	}
	respondMessage(c, "Place deleted successfully")
}

// ListByCategory handles GET /api/categories/:id/places.
func (h *PlaceHandler) ListByCategory(c *gin.Context) {
	categoryID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	page, perPage, limit, offset := pagination(c)

	places, total, err := h.places.List(repository.PlaceListOptions{
		CategoryID: categoryID,
		Limit:      limit,
		Offset:     offset,
	})
	if err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, paginated(places, total, page, perPage))
}

// Nearby handles GET /api/places/nearby, radius in kilometers.
func (h *PlaceHandler) Nearby(c *gin.Context) {
	lat, okLat := utils.StringToFloat(c.Query("latitude"))
	lng, okLng := utils.StringToFloat(c.Query("longitude"))
	if !okLat || !okLng || lat < -90 || lat > 90 || lng < -180 || lng > 180 {
		respondError(c, apperrors.NewValidation("latitude must be between -90 and 90", "longitude must be between -180 and 180"))
		return
	}

	radius := defaultNearbyRadiusKm
	if raw := c.Query("radius"); raw != "" {
		r, ok := utils.StringToFloat(raw)
		if !ok || r <= 0 || r > maxNearbyRadiusKm {
			respondError(c, apperrors.NewValidation("radius must be between 0 and 100 kilometers"))
			return
		}
		radius = r
	}

	places, err := h.places.Nearby(lat, lng, radius, listLimit(c))
	if err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, places)
}

// Popular handles GET /api/places/popular.
func (h *PlaceHandler) Popular(c *gin.Context) {
	places, err := h.places.Popular(listLimit(c))
	if err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, places)
}

// Featured handles GET /api/places/featured.
func (h *PlaceHandler) Featured(c *gin.Context) {
	places, err := h.places.Featured(listLimit(c))
	if err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, places)
}

// Stats handles GET /api/places/:id/stats.
func (h *PlaceHandler) Stats(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	stats, err := h.places.Stats(id)
	if err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, stats)
}

func listLimit(c *gin.Context) int {
	limit := utils.StringToInt(c.DefaultQuery("limit", "0"))
	if limit < 1 {
		return defaultListLimit
	}
	if limit > maxListLimit {
		return maxListLimit
	}
	return limit
}
