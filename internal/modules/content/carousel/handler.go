package carousel

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
	g := rg.Group("/carousel")
	g.GET("", h.get)

	a := g.Group("", authMW)
	a.POST("/slides", h.addSlide)
	a.PUT("/slides/:id", h.updateSlide)
	a.DELETE("/slides/:id", h.deleteSlide)
	a.PUT("/slides/order", h.reorder)
}

// GET /carousel?org=...
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
		response.NotFoundMsg(c, "carousel not found")
		return
	}
	response.OK(c, m)
}

func (h *Handler) addSlide(c *gin.Context) {
	orgID, ok := scope.RequireOwnerOrg(c, h.svc.db)
	if !ok {
		return
	}
	var dto SlideDTO
	if err := c.ShouldBindJSON(&dto); err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	m, err := h.svc.AddSlide(c.Request.Context(), orgID, &dto)
	if err != nil {
		response.InternalError(c, err)
		return
	}
	response.Created(c, m)
}

func (h *Handler) updateSlide(c *gin.Context) {
	orgID, ok := scope.RequireOwnerOrg(c, h.svc.db)
	if !ok {
		return
	}
	var dto SlideDTO
	if err := c.ShouldBindJSON(&dto); err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	m, err := h.svc.UpdateSlide(c.Request.Context(), c.Param("id"), orgID, &dto)
	if err != nil {
		if errors.Is(err, errNotOwned) {
			response.Forbidden(c)
			return
		}
		response.InternalError(c, err)
		return
	}
	if m == nil {
		response.NotFoundMsg(c, "slide not found")
		return
	}
	response.OK(c, m)
}

func (h *Handler) deleteSlide(c *gin.Context) {
	orgID, ok := scope.RequireOwnerOrg(c, h.svc.db)
	if !ok {
		return
	}
	if err := h.svc.DeleteSlide(c.Request.Context(), c.Param("id"), orgID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			response.NotFoundMsg(c, "slide not found")
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

func (h *Handler) reorder(c *gin.Context) {
	orgID, ok := scope.RequireOwnerOrg(c, h.svc.db)
	if !ok {
		return
	}
	var dto ReorderDTO
	if err := c.ShouldBindJSON(&dto); err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	if err := h.svc.Reorder(c.Request.Context(), orgID, dto.IDs); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			response.NotFoundMsg(c, "carousel not found")
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
