package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

type MetaHandler struct{}

func NewMetaHandler() *MetaHandler {
	return &MetaHandler{}
}

// Health handles GET /health.
func (h *MetaHandler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status": "ok",
		"time":   time.Now().UTC().Format(time.RFC3339),
	})
}

var apiResources = gin.H{
	"auth":       "/api/auth",
	"users":      "/api/users",
	"persons":    "/api/persons",
	"places":     "/api/places",
	"categories": "/api/categories",
	"reviews":    "/api/reviews",
	"comments":   "/api/comments",
	"favorites":  "/api/favorites",
}

// Overview handles GET /api and lists the mounted resource groups.
func (h *MetaHandler) Overview(c *gin.Context) {
	respondOK(c, gin.H{
		"name":      "TuriApp API",
		"version":   "1.0",
		"resources": apiResources,
	})
}

// Capabilities handles GET /swagger.json and GET /docs with a static
// capability document.
func (h *MetaHandler) Capabilities(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"openapi": "3.0.0",
		"info": gin.H{
			"title":       "TuriApp API",
			"description": "Places, reviews and favorites for travelers",
			"version":     "1.0",
		},
		"paths": apiResources,
	})
}
