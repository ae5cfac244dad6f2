package profile

import (
	"errors"

	"github.com/folio-space/core/internal/middleware"
	"github.com/folio-space/core/internal/models"
	"github.com/folio-space/core/internal/pkg/response"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// UpdateDTO carries owner-editable profile fields. Pointer fields are
// only applied when present, so a partial PATCH leaves the rest alone.
type UpdateDTO struct {
	Username    *string `json:"username" binding:"omitempty,min=3,max=32,alphanum"`
	DisplayName *string `json:"display_name"`
	Headline    *string `json:"headline"`
	Avatar      *string `json:"avatar"`
	IsPublic    *bool   `json:"is_public"`
}

type Handler struct {
	db *gorm.DB
}

func NewHandler(db *gorm.DB) *Handler { return &Handler{db: db} }

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup, authMW gin.HandlerFunc) {
	g := rg.Group("/profile", authMW)
	g.GET("", h.get)
	g.PUT("", h.update)
	g.PATCH("", h.update)
}

// GET /profile returns the authenticated owner's profile, public or not.
func (h *Handler) get(c *gin.Context) {
	p, ok := h.ownProfile(c)
	if !ok {
		return
	}
	response.OK(c, p)
}

// PUT/PATCH /profile applies a partial update; flipping is_public publishes or
// unpublishes the whole portfolio.
func (h *Handler) update(c *gin.Context) {
	p, ok := h.ownProfile(c)
	if !ok {
		return
	}
	var dto UpdateDTO
	if err := c.ShouldBindJSON(&dto); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	updates := map[string]interface{}{}
	if dto.Username != nil {
		updates["username"] = *dto.Username
	}
	if dto.DisplayName != nil {
		updates["display_name"] = *dto.DisplayName
	}
	if dto.Headline != nil {
		updates["headline"] = *dto.Headline
	}
	if dto.Avatar != nil {
		updates["avatar"] = *dto.Avatar
	}
	if dto.IsPublic != nil {
		updates["is_public"] = *dto.IsPublic
	}
	if len(updates) > 0 {
		if err := h.db.Model(p).Updates(updates).Error; err != nil {
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				response.Conflict(c, "username is already taken")
				return
			}
			response.InternalError(c, err)
			return
		}
	}
	response.OK(c, p)
}

func (h *Handler) ownProfile(c *gin.Context) (*models.ProfileModel, bool) {
	userID := middleware.CurrentUserID(c)
	if userID == "" {
		response.Unauthorized(c)
		return nil, false
	}
	var p models.ProfileModel
	if err := h.db.First(&p, "user_id = ?", userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			response.NotFoundMsg(c, "profile not found")
			return nil, false
		}
		response.InternalError(c, err)
		return nil, false
	}
	return &p, true
}
