package casestudy

import (
	"errors"

	"github.com/folio-space/core/internal/models"
	"github.com/folio-space/core/internal/modules/content/scope"
	"github.com/folio-space/core/internal/pkg/pagination"
	"github.com/folio-space/core/internal/pkg/response"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type Handler struct {
	svc *Service
}

func NewHandler(svc *Service) *Handler { return &Handler{svc: svc} }

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup, authMW gin.HandlerFunc) {
	g := rg.Group("/case-studies")

	g.GET("", h.list)
	g.GET("/:id", h.get)

	a := g.Group("", authMW)
	a.POST("", h.create)
	a.PUT("/:id", h.update)
	a.PATCH("/:id", h.update)
	a.DELETE("/:id", h.delete)
}

// GET /case-studies?org=...&page=&size=
func (h *Handler) list(c *gin.Context) {
	orgID := c.Query("org")
	if orgID == "" {
		response.BadRequest(c, "org query parameter is required")
		return
	}
	isOwner := scope.IsOwnerOf(c, h.svc.db, orgID)

	tx := h.svc.db.WithContext(c.Request.Context()).
		Model(&models.CaseStudyModel{}).
		Where("organization_id = ?", orgID).
		Order("created_at DESC")
	if !isOwner {
		tx = tx.Where("is_published = ?", true)
	}

	var items []models.CaseStudyModel
	meta, err := pagination.Paginate(tx, pagination.FromContext(c), &items)
	if err != nil {
		response.InternalError(c, err)
		return
	}
	response.Paged(c, items, meta)
}

// GET /case-studies/:id
func (h *Handler) get(c *gin.Context) {
	cs, err := h.svc.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		response.InternalError(c, err)
		return
	}
	if cs == nil {
		response.NotFoundMsg(c, "case study not found")
		return
	}
	if !cs.IsPublished && !scope.IsOwnerOf(c, h.svc.db, cs.OrganizationID) {
		response.NotFoundMsg(c, "case study not found")
		return
	}
	response.OK(c, cs)
}

func (h *Handler) create(c *gin.Context) {
	orgID, ok := scope.RequireOwnerOrg(c, h.svc.db)
	if !ok {
		return
	}
	var dto CreateDTO
	if err := c.ShouldBindJSON(&dto); err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	cs, err := h.svc.Create(c.Request.Context(), orgID, &dto)
	if err != nil {
		response.InternalError(c, err)
		return
	}
	response.Created(c, cs)
}

func (h *Handler) update(c *gin.Context) {
	orgID, ok := scope.RequireOwnerOrg(c, h.svc.db)
	if !ok {
		return
	}
	var dto UpdateDTO
	if err := c.ShouldBindJSON(&dto); err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	cs, err := h.svc.Update(c.Request.Context(), c.Param("id"), orgID, &dto)
	if err != nil {
		if errors.Is(err, errNotOwned) {
			response.Forbidden(c)
			return
		}
		response.InternalError(c, err)
		return
	}
	if cs == nil {
		response.NotFoundMsg(c, "case study not found")
		return
	}
	response.OK(c, cs)
}

func (h *Handler) delete(c *gin.Context) {
	orgID, ok := scope.RequireOwnerOrg(c, h.svc.db)
	if !ok {
		return
	}
	if err := h.svc.Delete(c.Request.Context(), c.Param("id"), orgID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			response.NotFoundMsg(c, "case study not found")
			return
		}
		response.InternalError(c, err)
		return
	}
	response.NoContent(c)
}
