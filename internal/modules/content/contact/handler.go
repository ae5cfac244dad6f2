package contact

import (
	"errors"

	"github.com/folio-space/core/internal/modules/content/scope"
	"github.com/folio-space/core/internal/pkg/response"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type Handler struct {
	svc *Service
}

func NewHandler(svc *Service) *Handler { return &Handler{svc: svc} }

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup, authMW gin.HandlerFunc) {
	g := rg.Group("/contact")
	g.GET("", h.get)

	a := g.Group("", authMW)
	a.PUT("", h.upsert)
	a.POST("/links", h.addLink)
	a.PUT("/links/:id", h.updateLink)
	a.DELETE("/links/:id", h.deleteLink)
}

// GET /contact?org=...
func (h *Handler) get(c *gin.Context) {
	orgID := c.Query("org")
	if orgID == "" {
		response.BadRequest(c, "org query parameter is required")
		return
	}
	m, err := h.svc.GetForOrg(c.Request.Context(), orgID)
	if err != nil {
		response.InternalError(c, err)
		return
	}
	if m == nil {
		response.NotFoundMsg(c, "contact section not found")
		return
	}
	response.OK(c, m)
}

func (h *Handler) upsert(c *gin.Context) {
	orgID, ok := scope.RequireOwnerOrg(c, h.svc.db)
	if !ok {
		return
	}
	var dto UpsertDTO
	if err := c.ShouldBindJSON(&dto); err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	m, err := h.svc.Upsert(c.Request.Context(), orgID, &dto)
	if err != nil {
		response.InternalError(c, err)
		return
	}
	response.OK(c, m)
}

func (h *Handler) addLink(c *gin.Context) {
	orgID, ok := scope.RequireOwnerOrg(c, h.svc.db)
	if !ok {
		return
	}
	var dto SocialLinkDTO
	if err := c.ShouldBindJSON(&dto); err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	m, err := h.svc.AddLink(c.Request.Context(), orgID, &dto)
	if err != nil {
		response.InternalError(c, err)
		return
	}
	response.Created(c, m)
}

func (h *Handler) updateLink(c *gin.Context) {
	orgID, ok := scope.RequireOwnerOrg(c, h.svc.db)
	if !ok {
		return
	}
	var dto SocialLinkDTO
	if err := c.ShouldBindJSON(&dto); err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	m, err := h.svc.UpdateLink(c.Request.Context(), c.Param("id"), orgID, &dto)
	if err != nil {
		if errors.Is(err, errNotOwned) {
			response.Forbidden(c)
			return
		}
		response.InternalError(c, err)
		return
	}
	if m == nil {
		response.NotFoundMsg(c, "social link not found")
		return
	}
	response.OK(c, m)
}

func (h *Handler) deleteLink(c *gin.Context) {
	orgID, ok := scope.RequireOwnerOrg(c, h.svc.db)
	if !ok {
		return
	}
	if err := h.svc.DeleteLink(c.Request.Context(), c.Param("id"), orgID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			response.NotFoundMsg(c, "social link not found")
			return
		}
		if errors.Is(err, errNotOwned) {
			response.Forbidden(c)
			return
		}
		response.InternalError(c, err)
		return
	}
	response.NoContent(c)
}
