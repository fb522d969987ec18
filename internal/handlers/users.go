package handlers

import (
	"turiapp/internal/repository"
	"turiapp/internal/services"

	"github.com/gin-gonic/gin"
)

type UserHandler struct {
	users *services.UserService
}

func NewUserHandler(users *services.UserService) *UserHandler {
	return &UserHandler{users: users}
}

// Get handles GET /api/users/:id.
func (h *UserHandler) Get(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	user, err := h.users.Get(id)
	if err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, user)
}

// List handles GET /api/users, admin only.
func (h *UserHandler) List(c *gin.Context) {
	page, perPage, limit, offset := pagination(c)

	opts := repository.UserListOptions{
		Role:   c.Query("role"),
		Limit:  limit,
		Offset: offset,
	}
	if raw := c.Query("active"); raw != "" {
		active := raw == "true"
		opts.Active = &active
	}

	users, total, err := h.users.List(opts)
	if err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, paginated(users, total, page, perPage))
}

type updateUserRequest struct {
	Username  *string `json:"username" binding:"omitempty,min=3,max=50"`
	Email     *string `json:"email" binding:"omitempty,email"`
	FirstName *string `json:"first_name" binding:"omitempty,max=100"`
	LastName  *string `json:"last_name" binding:"omitempty,max=100"`
}

// Update handles PUT /api/users/:id. Owners edit themselves; admins edit
// anyone.
func (h *UserHandler) Update(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	var req updateUserRequest
	if !bindJSON(c, &req) {
		return
	}

	user, err := h.users.UpdateProfile(currentUser(c), id, services.UpdateUserInput{
		Username:  req.Username,
		Email:     req.Email,
		FirstName: req.FirstName,
		LastName:  req.LastName,
	})
	if err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, user)
}

// Deactivate handles DELETE /api/users/:id, admin only.
func (h *UserHandler) Deactivate(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	if err := h.users.Deactivate(id); err != nil {
		respondError(c, err)
		return
	}
	respondMessage(c, "User deactivated successfully")
}

// Stats handles GET /api/users/:id/stats.
func (h *UserHandler) Stats(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	stats, err := h.users.Stats(id)
	if err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, stats)
}
