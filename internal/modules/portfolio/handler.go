package portfolio

import (
	"errors"

	"github.com/folio-space/core/internal/middleware"
	"github.com/folio-space/core/internal/pkg/response"
	"github.com/gin-gonic/gin"
)

type Handler struct {
	resolver  *Resolver
	assembler *Assembler
}

func NewHandler(resolver *Resolver, assembler *Assembler) *Handler {
	return &Handler{resolver: resolver, assembler: assembler}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	g := rg.Group("/portfolio")
	g.GET("", h.home)
	g.GET("/u/:username", h.byUsername)
}

// GET /portfolio serves the viewer's own portfolio when authenticated, else
// the instance's newest public one.
func (h *Handler) home(c *gin.Context) {
	h.serve(c, "")
}

// GET /portfolio/u/:username serves a specific public portfolio.
func (h *Handler) byUsername(c *gin.Context) {
	h.serve(c, c.Param("username"))
}

func (h *Handler) serve(c *gin.Context, username string) {
	ctx := c.Request.Context()
	viewerID := middleware.CurrentUserID(c)

	profile, err := h.resolver.Resolve(ctx, username, viewerID)
	if err != nil {
		if errors.Is(err, ErrProfileNotFound) {
			response.NotFoundMsg(c, "portfolio not found")
			return
		}
		response.InternalError(c, err)
		return
	}

	isOwner := viewerID != "" && profile.UserID == viewerID
	response.OK(c, h.assembler.Assemble(ctx, *profile, isOwner))
}
