package render

import (
	"errors"
	"html/template"
	"net/http"

	"github.com/folio-space/core/internal/middleware"
	"github.com/folio-space/core/internal/modules/content/casestudy"
	"github.com/folio-space/core/internal/modules/portfolio"
	"github.com/folio-space/core/internal/pkg/response"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type Handler struct {
	resolver    *portfolio.Resolver
	assembler   *portfolio.Assembler
	caseStudies *casestudy.Service
	db          *gorm.DB
	tmpl        *template.Template
}

func NewHandler(resolver *portfolio.Resolver, assembler *portfolio.Assembler, caseStudies *casestudy.Service, db *gorm.DB) *Handler {
	return &Handler{
		resolver:    resolver,
		assembler:   assembler,
		caseStudies: caseStudies,
		db:          db,
		tmpl:        template.Must(template.New("page").Parse(pageTemplate)),
	}
}

// RegisterRoutes wires the composed-page API under the group and the
// server-rendered landing page at the engine root.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup, engine *gin.Engine) {
	g := rg.Group("/page")
	g.GET("", h.page)
	g.GET("/u/:username", h.pageByUsername)
	g.GET("/case-studies/:id", h.caseStudyPage)
	g.GET("/admin", h.adminPage)

	engine.GET("/", h.index)
}

// GET /page
func (h *Handler) page(c *gin.Context) {
	h.servePage(c, "")
}

// GET /page/u/:username
func (h *Handler) pageByUsername(c *gin.Context) {
	h.servePage(c, c.Param("username"))
}

func (h *Handler) servePage(c *gin.Context, username string) {
	p, err := h.compose(c, username)
	if err != nil {
		if errors.Is(err, portfolio.ErrProfileNotFound) {
			response.NotFoundMsg(c, "portfolio not found")
			return
		}
		response.InternalError(c, err)
		return
	}
	response.OK(c, p)
}

// GET / serves a minimal server-rendered view of the home portfolio.
func (h *Handler) index(c *gin.Context) {
	p, err := h.compose(c, "")
	if err != nil {
		if errors.Is(err, portfolio.ErrProfileNotFound) {
			c.String(http.StatusNotFound, "no portfolio here yet")
			return
		}
		c.String(http.StatusInternalServerError, "something went wrong")
		return
	}
	c.Status(http.StatusOK)
	c.Header("Content-Type", "text/html; charset=utf-8")
	if err := h.tmpl.Execute(c.Writer, p); err != nil {
		_ = c.Error(err)
	}
}

func (h *Handler) compose(c *gin.Context, username string) (*Page, error) {
	ctx := c.Request.Context()
	viewerID := middleware.CurrentUserID(c)

	profile, err := h.resolver.Resolve(ctx, username, viewerID)
	if err != nil {
		return nil, err
	}
	isOwner := viewerID != "" && profile.UserID == viewerID
	return ComposePage(h.assembler.Assemble(ctx, *profile, isOwner)), nil
}

const pageTemplate = `<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<title>{{.Profile.DisplayName}}{{if not .Profile.DisplayName}}{{.Profile.Username}}{{end}}</title>
</head>
<body>
<header>
<h1>{{.Profile.DisplayName}}{{if not .Profile.DisplayName}}{{.Profile.Username}}{{end}}</h1>
{{if .Profile.Headline}}<p>{{.Profile.Headline}}</p>{{end}}
</header>
{{range .Blocks}}
<section data-section="{{.Section}}" data-state="{{.State}}">
{{if eq .State "failed"}}<p>This section could not be loaded.</p>{{end}}
</section>
{{end}}
</body>
</html>
`
