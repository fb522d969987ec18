package handlers

import (
	"turiapp/internal/services"

	"github.com/gin-gonic/gin"
)

type FavoriteHandler struct {
	favorites *services.FavoriteService
}

func NewFavoriteHandler(favorites *services.FavoriteService) *FavoriteHandler {
	return &FavoriteHandler{favorites: favorites}
}

// List handles GET /api/favorites for the authenticated user.
func (h *FavoriteHandler) List(c *gin.Context) {
	page, perPage, limit, offset := pagination(c)

	favorites, total, err := h.favorites.List(currentUser(c).ID, limit, offset)
	if err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, paginated(favorites, total, page, perPage))
}

type favoriteRequest struct {
	PlaceID uint `json:"place_id" binding:"required"`
}

// Add handles POST /api/favorites.
func (h *FavoriteHandler) Add(c *gin.Context) {
	var req favoriteRequest
	if !bindJSON(c, &req) {
		return
	}

	favorite, err := h.favorites.Add(currentUser(c).ID, req.PlaceID)
	if err != nil {
		respondError(c, err)
		return
	}
	respondCreated(c, favorite, "Place added to favorites")
}

// Remove handles DELETE /api/favorites/:id by favorite id, owner or admin.
func (h *FavoriteHandler) Remove(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	if err := h.favorites.RemoveByID(currentUser(c), id); err != nil {
		respondError(c, err)
		return
	}
	respondMessage(c, "Favorite removed successfully")
}

// Toggle handles POST /api/favorites/place/:id/toggle and reports the
// resulting state.
func (h *FavoriteHandler) Toggle(c *gin.Context) {
	placeID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	favorited, err := h.favorites.Toggle(currentUser(c).ID, placeID)
	if err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, gin.H{"place_id": placeID, "favorited": favorited})
}

type bulkFavoritesRequest struct {
	Action   string `json:"action" binding:"required,oneof=add remove"`
	PlaceIDs []uint `json:"place_ids" binding:"required,min=1"`
}

// Bulk handles POST /api/favorites/bulk. Items succeed or fail
// independently; the summary carries per-item outcomes.
func (h *FavoriteHandler) Bulk(c *gin.Context) {
	var req bulkFavoritesRequest
	if !bindJSON(c, &req) {
		return
	}

	result, err := h.favorites.Bulk(currentUser(c).ID, req.Action, req.PlaceIDs)
	if err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, result)
}
