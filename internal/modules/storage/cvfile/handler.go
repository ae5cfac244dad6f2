package cvfile

import (
	"errors"
	"net/http"

	"github.com/folio-space/core/internal/modules/content/cv"
	"github.com/folio-space/core/internal/modules/content/scope"
	"github.com/folio-space/core/internal/pkg/response"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

var ErrVersionNotFound = errors.New("cv version not found")

// maxUploadSize caps CV files at 20 MiB.
const maxUploadSize = 20 << 20

type Handler struct {
	svc *Service
	db  *gorm.DB
}

func NewHandler(svc *Service, db *gorm.DB) *Handler {
	return &Handler{svc: svc, db: db}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup, authMW gin.HandlerFunc) {
	g := rg.Group("/cv/versions/:id")
	g.GET("/download", h.download)
	g.POST("/file", authMW, h.upload)
}

// POST /cv/versions/:id/file accepts a multipart upload of the version's file.
func (h *Handler) upload(c *gin.Context) {
	orgID, ok := scope.RequireOwnerOrg(c, h.db)
	if !ok {
		return
	}
	if !h.svc.Configured() {
		response.UnprocessableEntity(c, "object storage is not configured")
		return
	}

	fh, err := c.FormFile("file")
	if err != nil {
		response.BadRequest(c, "file field is required")
		return
	}
	if fh.Size > maxUploadSize {
		response.BadRequest(c, "file exceeds the 20 MiB limit")
		return
	}
	f, err := fh.Open()
	if err != nil {
		response.InternalError(c, err)
		return
	}
	defer f.Close()

	mimeType := fh.Header.Get("Content-Type")
	if mimeType == "" {
		mimeType = "application/octet-stream"
	}
	key, err := h.svc.Upload(c.Request.Context(), orgID, c.Param("id"), fh.Filename, mimeType, fh.Size, f)
	if err != nil {
		if errors.Is(err, cv.ErrNotOwned) {
			response.Forbidden(c)
			return
		}
		response.InternalError(c, err)
		return
	}
	response.OK(c, gin.H{"key": key})
}

// GET /cv/versions/:id/download resolves and redirects to the file.
func (h *Handler) download(c *gin.Context) {
	url, err := h.svc.DownloadURL(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, ErrVersionNotFound) {
			response.NotFoundMsg(c, "cv version not found")
			return
		}
		if errors.Is(err, ErrStorageNotConfigured) {
			response.UnprocessableEntity(c, "object storage is not configured")
			return
		}
		response.InternalError(c, err)
		return
	}
	c.Redirect(http.StatusFound, url)
}
