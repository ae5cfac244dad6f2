package journey

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
	g := rg.Group("/journey")
	g.GET("", h.get)

	a := g.Group("", authMW)
	a.PUT("", h.upsertTimeline)
	a.POST("/milestones", h.addMilestone)
	a.PUT("/milestones/:id", h.updateMilestone)
	a.DELETE("/milestones/:id", h.deleteMilestone)
	a.PUT("/milestones/order", h.reorder)
}

// GET /journey?org=...
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
		response.NotFoundMsg(c, "journey not found")
		return
	}
	response.OK(c, m)
}

func (h *Handler) upsertTimeline(c *gin.Context) {
	orgID, ok := scope.RequireOwnerOrg(c, h.svc.db)
	if !ok {
		return
	}
	var dto TimelineDTO
	if err := c.ShouldBindJSON(&dto); err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	m, err := h.svc.UpsertTimeline(c.Request.Context(), orgID, &dto)
	if err != nil {
		response.InternalError(c, err)
		return
	}
	response.OK(c, m)
}

func (h *Handler) addMilestone(c *gin.Context) {
	orgID, ok := scope.RequireOwnerOrg(c, h.svc.db)
	if !ok {
		return
	}
	var dto MilestoneDTO
	if err := c.ShouldBindJSON(&dto); err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	m, err := h.svc.AddMilestone(c.Request.Context(), orgID, &dto)
	if err != nil {
		response.InternalError(c, err)
		return
	}
	response.Created(c, m)
}

func (h *Handler) updateMilestone(c *gin.Context) {
	orgID, ok := scope.RequireOwnerOrg(c, h.svc.db)
	if !ok {
		return
	}
	var dto MilestoneDTO
	if err := c.ShouldBindJSON(&dto); err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	m, err := h.svc.UpdateMilestone(c.Request.Context(), c.Param("id"), orgID, &dto)
	if err != nil {
		if errors.Is(err, errNotOwned) {
			response.Forbidden(c)
			return
		}
		response.InternalError(c, err)
		return
	}
	if m == nil {
		response.NotFoundMsg(c, "milestone not found")
		return
	}
	response.OK(c, m)
}

func (h *Handler) deleteMilestone(c *gin.Context) {
	orgID, ok := scope.RequireOwnerOrg(c, h.svc.db)
	if !ok {
		return
	}
	if err := h.svc.DeleteMilestone(c.Request.Context(), c.Param("id"), orgID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			response.NotFoundMsg(c, "milestone not found")
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
			response.NotFoundMsg(c, "journey not found")
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
