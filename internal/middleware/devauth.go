//go:build devauth

package middleware

import (
	"github.com/folio-space/core/internal/models"
	"gorm.io/gorm"
)

// devViewerID returns the first owner's user id so local development runs
// fully authenticated without credentials. Only compiled with the devauth
// build tag; release builds get the no-op in devauth_release.go.
func devViewerID(db *gorm.DB) string {
	var u models.UserModel
	if err := db.Select("id").Order("created_at ASC").First(&u).Error; err != nil {
		return ""
	}
	return u.ID
}
