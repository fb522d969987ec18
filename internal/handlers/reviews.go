package handlers

import (
	"turiapp/internal/apperrors"
	"turiapp/internal/repository"
	"turiapp/internal/services"
	"turiapp/internal/utils"

	"github.com/gin-gonic/gin"
)

type ReviewHandler struct {
	reviews *services.ReviewService
}

func NewReviewHandler(reviews *services.ReviewService) *ReviewHandler {
	return &ReviewHandler{reviews: reviews}
}

// List handles GET /api/reviews with place_id, user_id and min_rating
// filters, newest first.
func (h *ReviewHandler) List(c *gin.Context) {
	page, perPage, limit, offset := pagination(c)

	opts := repository.ReviewListOptions{
		Limit:  limit,
		Offset: offset,
	}
	if raw := c.Query("place_id"); raw != "" {
		id, ok := utils.StringToUint(raw)
		if !ok {
			respondError(c, apperrors.NewValidation("place_id must be a positive integer"))
			return
		}
		opts.PlaceID = id
	}
	if raw := c.Query("user_id"); raw != "" {
		id, ok := utils.StringToUint(raw)
		if !ok {
			respondError(c, apperrors.NewValidation("user_id must be a positive integer"))
			return
		}
		opts.UserID = id
	}
	if raw := c.Query("min_rating"); raw != "" {
		opts.MinRating = clampRating(raw)
	}

	reviews, total, err := h.reviews.List(opts)
	if err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, paginated(reviews, total, page, perPage))
}

// Get handles GET /api/reviews/:id.
func (h *ReviewHandler) Get(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	review, err := h.reviews.Get(id)
	if err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, review)
}

type createReviewRequest struct {
	PlaceID uint   `json:"place_id" binding:"required"`
	Rating  int    `json:"rating" binding:"required,gte=1,lte=5"`
	Title   string `json:"title" binding:"required,min=3,max=200"`
	Content string `json:"content" binding:"max=5000"`
}

// Create handles POST /api/reviews.
func (h *ReviewHandler) Create(c *gin.Context) {
	var req createReviewRequest
	if !bindJSON(c, &req) {
		return
	}

	review, err := h.reviews.Create(currentUser(c), services.ReviewInput{
		PlaceID: req.PlaceID,
		Rating:  req.Rating,
		Title:   req.Title,
		Content: req.Content,
	})
	if err != nil {
		respondError(c, err)
		return
	}
	respondCreated(c, review, "Review created successfully")
}

type updateReviewRequest struct {
	Rating  *int    `json:"rating" binding:"omitempty,gte=1,lte=5"`
	Title   *string `json:"title" binding:"omitempty,min=3,max=200"`
	Content *string `json:"content" binding:"omitempty,max=5000"`
}

// Update handles PUT /api/reviews/:id, author only.
func (h *ReviewHandler) Update(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	var req updateReviewRequest
	if !bindJSON(c, &req) {
		return
	}

	review, err := h.reviews.Update(currentUser(c), id, services.UpdateReviewInput{
		Rating:  req.Rating,
		Title:   req.Title,
		Content: req.Content,
	})
	if err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, review)
}

// Delete handles DELETE /api/reviews/:id, author or admin.
func (h *ReviewHandler) Delete(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	if err := h.reviews.Delete(currentUser(c), id); err != nil {
		respondError(c, err)
		return
	}
	respondMessage(c, "Review deleted successfully")
}

// MarkHelpful handles POST /api/reviews/:id/helpful.
func (h *ReviewHandler) MarkHelpful(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	count, err := h.reviews.MarkHelpful(currentUser(c), id)
	if err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, gin.H{"helpful_count": count})
}

func clampRating(raw string) int {
	r := utils.StringToInt(raw)
	if r < 1 {
		return 0
	}
	if r > 5 {
		return 5
	}
	return r
}
