package services

import (
	"turiapp/internal/models"
)

// canModify is the ownership gate: the resource's owner or an admin.
func canModify(actor *models.User, ownerID uint) bool {
	return actor.ID == ownerID || actor.IsAdmin()
}
