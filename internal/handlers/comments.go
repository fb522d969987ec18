package handlers

import (
	"turiapp/internal/apperrors"
	"turiapp/internal/services"
	"turiapp/internal/utils"

	"github.com/gin-gonic/gin"
)

type CommentHandler struct {
	comments *services.CommentService
}

func NewCommentHandler(comments *services.CommentService) *CommentHandler {
	return &CommentHandler{comments: comments}
}

// Thread handles GET /api/comments?review_id= and returns the review's
// nested comment tree.
func (h *CommentHandler) Thread(c *gin.Context) {
	reviewID, ok := utils.StringToUint(c.Query("review_id"))
	if !ok || reviewID == 0 {
		respondError(c, apperrors.NewValidation("review_id must be a positive integer"))
		return
	}
	thread, err := h.comments.Thread(reviewID, currentUser(c))
	if err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, thread)
}

// Get handles GET /api/comments/:id.
func (h *CommentHandler) Get(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	comment, err := h.comments.Get(id, currentUser(c))
	if err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, comment)
}

type createCommentRequest struct {
	ReviewID uint   `json:"review_id" binding:"required"`
	Content  string `json:"content" binding:"required,min=1,max=2000"`
	ParentID *uint  `json:"parent_id"`
}

// Create handles POST /api/comments.
func (h *CommentHandler) Create(c *gin.Context) {
	var req createCommentRequest
	if !bindJSON(c, &req) {
		return
	}

	comment, err := h.comments.Create(currentUser(c), services.CommentInput{
		ReviewID: req.ReviewID,
		ParentID: req.ParentID,
		Content:  req.Content,
	})
	if err != nil {
		respondError(c, err)
		return
	}
	respondCreated(c, comment, "Comment created successfully")
}

type updateCommentRequest struct {
	Content string `json:"content" binding:"required,min=1,max=2000"`
}

// Update handles PUT /api/comments/:id, author only.
func (h *CommentHandler) Update(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	var req updateCommentRequest
	if !bindJSON(c, &req) {
		return
	}

	comment, err := h.comments.Update(currentUser(c), id, req.Content)
	if err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, comment)
}

// Delete handles DELETE /api/comments/:id, author or moderator.
func (h *CommentHandler) Delete(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	if err := h.comments.Delete(currentUser(c), id); err != nil {
		respondError(c, err)
		return
	}
	respondMessage(c, "Comment deleted successfully")
}

type moderateCommentRequest struct {
	Action string `json:"action" binding:"required,oneof=hide show delete"`
}

// Moderate handles POST /api/comments/:id/moderate, moderators and admins.
func (h *CommentHandler) Moderate(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	var req moderateCommentRequest
	if !bindJSON(c, &req) {
		return
	}

	if err := h.comments.Moderate(currentUser(c), id, req.Action); err != nil {
		respondError(c, err)
		return
	}
	respondMessage(c, "Comment moderated successfully")
}
