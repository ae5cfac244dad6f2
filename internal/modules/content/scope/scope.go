// Package scope resolves the organization a mutation is allowed to touch.
// Every content row belongs to exactly one organization; a mutation may
// only target the organization owned by the authenticated user.
package scope

import (
	"errors"

	"github.com/folio-space/core/internal/middleware"
	"github.com/folio-space/core/internal/models"
	"github.com/folio-space/core/internal/pkg/response"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

var ErrNoOrganization = errors.New("no organization for user")

// OrgForUser returns the organization id owned by userID.
func OrgForUser(db *gorm.DB, userID string) (string, error) {
	var p models.ProfileModel
	if err := db.Select("organization_id").Where("user_id = ?", userID).First(&p).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", ErrNoOrganization
		}
		return "", err
	}
	return p.OrganizationID, nil
}

// RequireOwnerOrg resolves the caller's organization and writes the error
// response itself when the caller has none. The boolean reports success.
func RequireOwnerOrg(c *gin.Context, db *gorm.DB) (string, bool) {
	userID := middleware.CurrentUserID(c)
	if userID == "" {
		response.Unauthorized(c)
		return "", false
	}
	orgID, err := OrgForUser(db, userID)
	if err != nil {
		if errors.Is(err, ErrNoOrganization) {
			response.ForbiddenMsg(c, "no organization for user")
			return "", false
		}
		response.InternalError(c, err)
		return "", false
	}
	return orgID, true
}

// IsOwnerOf reports whether the request's authenticated user owns orgID.
func IsOwnerOf(c *gin.Context, db *gorm.DB, orgID string) bool {
	userID := middleware.CurrentUserID(c)
	if userID == "" || orgID == "" {
		return false
	}
	owned, err := OrgForUser(db, userID)
	return err == nil && owned == orgID
}
