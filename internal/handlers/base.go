package handlers

import (
	"errors"
	"fmt"
	"net/http"

	"turiapp/internal/apperrors"
	"turiapp/internal/middleware"
	"turiapp/internal/models"
	"turiapp/internal/utils"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
)

const (
	defaultPerPage = 20
	maxPerPage     = 100
)

// respondOK wraps data in the success envelope, with an optional
// human-readable message alongside it.
func respondOK(c *gin.Context, data interface{}, message ...string) {
	c.JSON(http.StatusOK, successBody(data, message))
}

func respondCreated(c *gin.Context, data interface{}, message ...string) {
	c.JSON(http.StatusCreated, successBody(data, message))
}

func successBody(data interface{}, message []string) gin.H {
	body := gin.H{"success": true, "data": data}
	if len(message) > 0 {
		body["message"] = message[0]
	}
	return body
}

// respondMessage is for operations whose only payload is a confirmation.
func respondMessage(c *gin.Context, message string) {
	c.JSON(http.StatusOK, gin.H{"success": true, "message": message})
}

// respondError maps any error onto the failure envelope, treating unknown
// errors as internal.
func respondError(c *gin.Context, err error) {
	appErr := apperrors.From(err)
	body := gin.H{"success": false, "error": appErr.Code, "message": appErr.Message}
	if len(appErr.Details) > 0 {
		body["details"] = appErr.Details
	}
	c.JSON(appErr.Status, body)
}

// paginated shapes a list response with its paging metadata.
func paginated(items interface{}, total int64, page, perPage int) gin.H {
	totalPages := int64(0)
	if perPage > 0 {
		totalPages = (total + int64(perPage) - 1) / int64(perPage)
	}
	return gin.H{
		"items": items,
		"pagination": gin.H{
			"page":        page,
			"per_page":    perPage,
			"total":       total,
			"total_pages": totalPages,
		},
	}
}

// currentUser returns the authenticated user, or nil on public routes.
func currentUser(c *gin.Context) *models.User {
	if value, exists := c.Get(middleware.UserKey); exists {
		return value.(*models.User)
	}
	return nil
}

// parseIDParam reads a positive integer path parameter, responding with a
// validation error itself when the value is unusable.
func parseIDParam(c *gin.Context, name string) (uint, bool) {
	id, ok := utils.StringToUint(c.Param(name))
	if !ok || id == 0 {
		respondError(c, apperrors.NewValidation(name+" must be a positive integer"))
		return 0, false
	}
	return id, true
}

// pagination reads page/per_page query parameters with sane defaults and a
// hard cap, returning both the page numbers and the derived limit/offset.
func pagination(c *gin.Context) (page, perPage, limit, offset int) {
	page = utils.StringToInt(c.DefaultQuery("page", "1"))
	if page < 1 {
		page = 1
	}
	perPage = utils.StringToInt(c.DefaultQuery("per_page", "0"))
	if perPage < 1 {
		perPage = defaultPerPage
	}
	if perPage > maxPerPage {
		perPage = maxPerPage
	}
	return page, perPage, perPage, (page - 1) * perPage
}

// bindJSON decodes the request body and converts binding failures into
// field-level validation details.
func bindJSON(c *gin.Context, obj interface{}) bool {
	if err := c.ShouldBindJSON(obj); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) {
			details := make([]string, 0, len(verrs))
			for _, fe := range verrs {
				details = append(details, fieldMessage(fe))
			}
			respondError(c, apperrors.NewValidation(details...))
			return false
		}
		respondError(c, apperrors.NewValidation("request body is not valid JSON"))
		return false
	}
	return true
}

func fieldMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", fe.Field())
	case "email":
		return fmt.Sprintf("%s must be a valid email address", fe.Field())
	case "min":
		return fmt.Sprintf("%s must be at least %s characters", fe.Field(), fe.Param())
	case "max":
		return fmt.Sprintf("%s must be at most %s characters", fe.Field(), fe.Param())
	case "gte":
		return fmt.Sprintf("%s must be at least %s", fe.Field(), fe.Param())
	case "lte":
		return fmt.Sprintf("%s must be at most %s", fe.Field(), fe.Param())
	case "oneof":
		return fmt.Sprintf("%s must be one of: %s", fe.Field(), fe.Param())
	default:
		return fmt.Sprintf("%s is invalid", fe.Field())
	}
}
