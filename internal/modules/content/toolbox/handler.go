package toolbox

import (
	"errors"
	"reflect"

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
	g := rg.Group("/toolbox")
	g.GET("", h.get)

	a := g.Group("", authMW)
	a.POST("/categories", h.createCategory)
	a.PUT("/categories/:id", h.updateCategory)
	a.DELETE("/categories/:id", h.deleteCategory)
	a.POST("/categories/:id/skills", h.createSkill)
	a.PUT("/skills/:id", h.updateSkill)
	a.DELETE("/skills/:id", h.deleteSkill)
	a.POST("/tools", h.createTool)
	a.PUT("/tools/:id", h.updateTool)
	a.DELETE("/tools/:id", h.deleteTool)
}

// GET /toolbox?org=...
func (h *Handler) get(c *gin.Context) {
	orgID := c.Query("org")
	if orgID == "" {
		response.BadRequest(c, "org query parameter is required")
		return
	}
	tb, err := h.svc.GetForOrg(c.Request.Context(), orgID)
	if err != nil {
		response.InternalError(c, err)
		return
	}
	response.OK(c, tb)
}

func (h *Handler) createCategory(c *gin.Context) {
	orgID, ok := scope.RequireOwnerOrg(c, h.svc.db)
	if !ok {
		return
	}
	var dto CategoryDTO
	if err := c.ShouldBindJSON(&dto); err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	m, err := h.svc.CreateCategory(c.Request.Context(), orgID, &dto)
	if err != nil {
		response.InternalError(c, err)
		return
	}
	response.Created(c, m)
}

func (h *Handler) updateCategory(c *gin.Context) {
	orgID, ok := scope.RequireOwnerOrg(c, h.svc.db)
	if !ok {
		return
	}
	var dto CategoryDTO
	if err := c.ShouldBindJSON(&dto); err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	m, err := h.svc.UpdateCategory(c.Request.Context(), c.Param("id"), orgID, &dto)
	h.writeSingle(c, m, err, "skill category not found")
}

func (h *Handler) deleteCategory(c *gin.Context) {
	orgID, ok := scope.RequireOwnerOrg(c, h.svc.db)
	if !ok {
		return
	}
	h.writeDelete(c, h.svc.DeleteCategory(c.Request.Context(), c.Param("id"), orgID), "skill category not found")
}

func (h *Handler) createSkill(c *gin.Context) {
	orgID, ok := scope.RequireOwnerOrg(c, h.svc.db)
	if !ok {
		return
	}
	var dto SkillDTO
	if err := c.ShouldBindJSON(&dto); err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	m, err := h.svc.CreateSkill(c.Request.Context(), c.Param("id"), orgID, &dto)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			response.NotFoundMsg(c, "skill category not found")
			return
		}
		if errors.Is(err, errNotOwned) {
			response.Forbidden(c)
			return
		}
		response.InternalError(c, err)
		return
	}
	response.Created(c, m)
}

func (h *Handler) updateSkill(c *gin.Context) {
	orgID, ok := scope.RequireOwnerOrg(c, h.svc.db)
	if !ok {
		return
	}
	var dto SkillDTO
	if err := c.ShouldBindJSON(&dto); err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	m, err := h.svc.UpdateSkill(c.Request.Context(), c.Param("id"), orgID, &dto)
	h.writeSingle(c, m, err, "skill not found")
}

func (h *Handler) deleteSkill(c *gin.Context) {
	orgID, ok := scope.RequireOwnerOrg(c, h.svc.db)
	if !ok {
		return
	}
	h.writeDelete(c, h.svc.DeleteSkill(c.Request.Context(), c.Param("id"), orgID), "skill not found")
}

func (h *Handler) createTool(c *gin.Context) {
	orgID, ok := scope.RequireOwnerOrg(c, h.svc.db)
	if !ok {
		return
	}
	var dto ToolDTO
	if err := c.ShouldBindJSON(&dto); err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	m, err := h.svc.CreateTool(c.Request.Context(), orgID, &dto)
	if err != nil {
		response.InternalError(c, err)
		return
	}
	response.Created(c, m)
}

func (h *Handler) updateTool(c *gin.Context) {
	orgID, ok := scope.RequireOwnerOrg(c, h.svc.db)
	if !ok {
		return
	}
	var dto ToolDTO
	if err := c.ShouldBindJSON(&dto); err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	m, err := h.svc.UpdateTool(c.Request.Context(), c.Param("id"), orgID, &dto)
	h.writeSingle(c, m, err, "tool not found")
}

func (h *Handler) deleteTool(c *gin.Context) {
	orgID, ok := scope.RequireOwnerOrg(c, h.svc.db)
	if !ok {
		return
	}
	h.writeDelete(c, h.svc.DeleteTool(c.Request.Context(), c.Param("id"), orgID), "tool not found")
}

// writeSingle maps the common (model, error) service result to a response.
// A nil model with a nil error means the row was not found.
func (h *Handler) writeSingle(c *gin.Context, m interface{}, err error, notFound string) {
	if err != nil {
		if errors.Is(err, errNotOwned) {
			response.Forbidden(c)
			return
		}
		response.InternalError(c, err)
		return
	}
	if isNil(m) {
		response.NotFoundMsg(c, notFound)
		return
	}
	response.OK(c, m)
}

func (h *Handler) writeDelete(c *gin.Context, err error, notFound string) {
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			response.NotFoundMsg(c, notFound)
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

// isNil treats a typed nil pointer inside an interface as absent.
func isNil(v interface{}) bool {
	if v == nil {
		return true
	}
	rv := reflect.ValueOf(v)
	return rv.Kind() == reflect.Ptr && rv.IsNil()
}
