package handlers

import (
	"turiapp/internal/services"

	"github.com/gin-gonic/gin"
)

type PersonHandler struct {
	persons *services.PersonService
}

func NewPersonHandler(persons *services.PersonService) *PersonHandler {
	return &PersonHandler{persons: persons}
}

type personRequest struct {
	Bio         string `json:"bio" binding:"max=500"`
	Nationality string `json:"nationality" binding:"max=100"`
	Languages   string `json:"languages" binding:"max=200"`
	Interests   string `json:"interests" binding:"max=500"`
	Location    string `json:"location" binding:"max=200"`
	IsPublic    *bool  `json:"is_public"`
}

// Create handles POST /api/persons, one profile per authenticated user.
func (h *PersonHandler) Create(c *gin.Context) {
	var req personRequest
	if !bindJSON(c, &req) {
		return
	}

	person, err := h.persons.Create(currentUser(c).ID, services.PersonInput{
		Bio:         req.Bio,
		Nationality: req.Nationality,
		Languages:   req.Languages,
		Interests:   req.Interests,
		Location:    req.Location,
		IsPublic:    req.IsPublic,
	})
	if err != nil {
		respondError(c, err)
		return
	}
	respondCreated(c, person, "Profile created successfully")
}

// Get handles GET /api/persons/:id. Private profiles stay hidden from
// everyone but the owner and admins.
func (h *PersonHandler) Get(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	person, err := h.persons.Get(id, currentUser(c))
	if err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, person)
}

// Me handles GET /api/persons/me.
func (h *PersonHandler) Me(c *gin.Context) {
	person, err := h.persons.GetByUser(currentUser(c).ID)
	if err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, person)
}

// Update handles PUT /api/persons/me.
func (h *PersonHandler) Update(c *gin.Context) {
	var req personRequest
	if !bindJSON(c, &req) {
		return
	}

	person, err := h.persons.Update(currentUser(c).ID, services.PersonInput{
		Bio:         req.Bio,
		Nationality: req.Nationality,
		Languages:   req.Languages,
		Interests:   req.Interests,
		Location:    req.Location,
		IsPublic:    req.IsPublic,
	})
	if err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, person)
}
