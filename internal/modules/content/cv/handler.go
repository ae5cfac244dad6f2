package cv

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
	g := rg.Group("/cv")
	g.GET("", h.get)

	a := g.Group("", authMW)
	a.PUT("", h.upsertSection)
	a.POST("/versions", h.addVersion)
	a.PUT("/versions/:id", h.updateVersion)
	a.DELETE("/versions/:id", h.deleteVersion)
}

// GET /cv?org=... Owners see every version, visitors only active ones.
func (h *Handler) get(c *gin.Context) {
	orgID := c.Query("org")
	if orgID == "" {
		response.BadRequest(c, "org query parameter is required")
		return
	}
	load := h.svc.ActiveForOrg
	if scope.IsOwnerOf(c, h.svc.db, orgID) {
		load = h.svc.GetForOrg
	}
	m, err := load(c.Request.Context(), orgID)
	if err != nil {
		response.InternalError(c, err)
		return
	}
	if m == nil {
		response.NotFoundMsg(c, "cv section not found")
		return
	}
	response.OK(c, m)
}

func (h *Handler) upsertSection(c *gin.Context) {
	orgID, ok := scope.RequireOwnerOrg(c, h.svc.db)
	if !ok {
		return
	}
	var dto SectionDTO
	if err := c.ShouldBindJSON(&dto); err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	m, err := h.svc.UpsertSection(c.Request.Context(), orgID, &dto)
	if err != nil {
		response.InternalError(c, err)
		return
	}
	response.OK(c, m)
}

func (h *Handler) addVersion(c *gin.Context) {
	orgID, ok := scope.RequireOwnerOrg(c, h.svc.db)
	if !ok {
		return
	}
	var dto VersionDTO
	if err := c.ShouldBindJSON(&dto); err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	m, err := h.svc.AddVersion(c.Request.Context(), orgID, &dto)
	if err != nil {
		response.InternalError(c, err)
		return
	}
	response.Created(c, m)
}

func (h *Handler) updateVersion(c *gin.Context) {
	orgID, ok := scope.RequireOwnerOrg(c, h.svc.db)
	if !ok {
		return
	}
	var dto VersionDTO
	if err := c.ShouldBindJSON(&dto); err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	m, err := h.svc.UpdateVersion(c.Request.Context(), c.Param("id"), orgID, &dto)
	if err != nil {
		if errors.Is(err, ErrNotOwned) {
			response.Forbidden(c)
			return
		}
		response.InternalError(c, err)
		return
	}
	if m == nil {
		response.NotFoundMsg(c, "cv version not found")
		return
	}
	response.OK(c, m)
}

func (h *Handler) deleteVersion(c *gin.Context) {
	orgID, ok := scope.RequireOwnerOrg(c, h.svc.db)
	if !ok {
		return
	}
	if err := h.svc.DeleteVersion(c.Request.Context(), c.Param("id"), orgID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			response.NotFoundMsg(c, "cv version not found")
			return
		}
		if errors.Is(err, ErrNotOwned) {
			response.Forbidden(c)
			return
		}
		response.InternalError(c, err)
		return
	}
	response.NoContent(c)
}
