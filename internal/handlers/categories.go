package handlers

import (
	"turiapp/internal/repository"
	"turiapp/internal/services"

	"github.com/gin-gonic/gin"
)

type CategoryHandler struct {
	categories *services.CategoryService
}

func NewCategoryHandler(categories *services.CategoryService) *CategoryHandler {
	return &CategoryHandler{categories: categories}
}

// List handles GET /api/categories, flat by default or nested with place
// counts when ?tree=true.
func (h *CategoryHandler) List(c *gin.Context) {
	if c.Query("tree") == "true" {
		tree, err := h.categories.Tree()
		if err != nil {
			respondError(c, err)
			return
		}
		respondOK(c, tree)
		return
	}

	categories, err := h.categories.List()
	if err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, categories)
}

// Get handles GET /api/categories/:id.
func (h *CategoryHandler) Get(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	category, err := h.categories.Get(id)
	if err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, category)
}

type categoryRequest struct {
	Name        string `json:"name" binding:"required,min=2,max=100"`
	Description string `json:"description" binding:"max=300"`
	Icon        string `json:"icon" binding:"max=50"`
	ParentID    *uint  `json:"parent_id"`
	SortOrder   int    `json:"sort_order"`
}

// Create handles POST /api/categories, admin only.
func (h *CategoryHandler) Create(c *gin.Context) {
	var req categoryRequest
	if !bindJSON(c, &req) {
		return
	}

	category, err := h.categories.Create(services.CategoryInput{
		Name:        req.Name,
		Description: req.Description,
		Icon:        req.Icon,
		ParentID:    req.ParentID,
		SortOrder:   req.SortOrder,
	})
	if err != nil {
		respondError(c, err)
		return
	}
	respondCreated(c, category, "Category created successfully")
}

// Update handles PUT /api/categories/:id, admin only.
func (h *CategoryHandler) Update(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	var req categoryRequest
	if !bindJSON(c, &req) {
		return
	}

	category, err := h.categories.Update(id, services.CategoryInput{
		Name:        req.Name,
		Description: req.Description,
		Icon:        req.Icon,
		ParentID:    req.ParentID,
		SortOrder:   req.SortOrder,
	})
	if err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, category)
}

type reorderRequest struct {
	Orders []repository.CategoryOrder `json:"orders" binding:"required"`
}

// Reorder handles PUT /api/categories/reorder, admin only. The whole batch
// applies or none of it does.
func (h *CategoryHandler) Reorder(c *gin.Context) {
	var req reorderRequest
	if !bindJSON(c, &req) {
		return
	}

	if err := h.categories.Reorder(req.Orders); err != nil {
		respondError(c, err)
		return
	}
	respondMessage(c, "Categories reordered successfully")
}

// Delete handles DELETE /api/categories/:id, admin only.
func (h *CategoryHandler) Delete(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	if err := h.categories.Delete(id); err != nil {
		respondError(c, err)
		return
	}
	respondMessage(c, "Category deleted successfully")
}
