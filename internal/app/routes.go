package app

import (
	"github.com/folio-space/core/internal/middleware"
	"github.com/folio-space/core/internal/modules/auth"
	"github.com/folio-space/core/internal/modules/content/carousel"
	"github.com/folio-space/core/internal/modules/content/casestudy"
	"github.com/folio-space/core/internal/modules/content/contact"
	"github.com/folio-space/core/internal/modules/content/cv"
	"github.com/folio-space/core/internal/modules/content/journey"
	"github.com/folio-space/core/internal/modules/content/story"
	"github.com/folio-space/core/internal/modules/content/toolbox"
	"github.com/folio-space/core/internal/modules/portfolio"
	"github.com/folio-space/core/internal/modules/profile"
	"github.com/folio-space/core/internal/modules/render"
	"github.com/folio-space/core/internal/modules/storage/cvfile"
	"github.com/folio-space/core/internal/pkg/response"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func (a *App) registerRoutes() {
	api := a.engine.Group("/api/v1")
	authMW := middleware.Auth(a.db)

	// Content services double as the portfolio section fetchers.
	caseStudySvc := casestudy.NewService(a.db)
	storySvc := story.NewService(a.db)
	toolboxSvc := toolbox.NewService(a.db)
	journeySvc := journey.NewService(a.db)
	contactSvc := contact.NewService(a.db)
	cvSvc := cv.NewService(a.db)
	carouselSvc := carousel.NewService(a.db)

	auth.NewHandler(auth.NewService(a.db)).RegisterRoutes(api, authMW)
	profile.NewHandler(a.db).RegisterRoutes(api, authMW)

	casestudy.NewHandler(caseStudySvc).RegisterRoutes(api, authMW)
	story.NewHandler(storySvc).RegisterRoutes(api, authMW)
	toolbox.NewHandler(toolboxSvc).RegisterRoutes(api, authMW)
	journey.NewHandler(journeySvc).RegisterRoutes(api, authMW)
	contact.NewHandler(contactSvc).RegisterRoutes(api, authMW)
	cv.NewHandler(cvSvc).RegisterRoutes(api, authMW)
	carousel.NewHandler(carouselSvc).RegisterRoutes(api, authMW)

	resolver := portfolio.NewResolver(a.db)
	assembler := portfolio.NewAssembler(&portfolio.Fetchers{
		CaseStudies: caseStudySvc,
		Story:       storySvc,
		Toolbox:     toolboxSvc,
		Journey:     journeySvc,
		Contact:     contactSvc,
		CV:          cvSvc,
		Carousel:    carouselSvc,
	}, a.logger)
	portfolio.NewHandler(resolver, assembler).RegisterRoutes(api)
	render.NewHandler(resolver, assembler, caseStudySvc, a.db).RegisterRoutes(api, a.engine)

	s3Client, err := cvfile.NewClient(a.cfg.Storage)
	if err != nil {
		a.logger.Warn("cv file storage disabled", zap.Error(err))
		s3Client = nil
	}
	cvfile.NewHandler(cvfile.NewService(s3Client, a.cfg.Storage, cvSvc), a.db).
		RegisterRoutes(api, authMW)

	a.engine.GET("/healthz", func(c *gin.Context) {
		c.JSON(200, gin.H{"ok": 1})
	})
	a.engine.NoRoute(func(c *gin.Context) {
		response.NotFound(c)
	})
}
