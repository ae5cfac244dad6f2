package auth

import (
	"errors"

	"github.com/folio-space/core/internal/middleware"
	"github.com/folio-space/core/internal/models"
	"github.com/folio-space/core/internal/pkg/response"
	sessionpkg "github.com/folio-space/core/internal/pkg/session"
	"github.com/gin-gonic/gin"
)

type Handler struct {
	svc *Service
}

func NewHandler(svc *Service) *Handler { return &Handler{svc: svc} }

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup, authMW gin.HandlerFunc) {
	a := rg.Group("/auth")

	a.POST("/login", h.login)
	a.POST("/register", h.register)
	a.POST("/logout", authMW, h.logout)
	// OptionalAuth already runs globally, so session introspection just
	// reads whatever identity it resolved.
	a.GET("/session", h.session)

	a.GET("/sessions", authMW, h.listSessions)
	a.DELETE("/sessions/:id", authMW, h.revokeSession)
	a.DELETE("/sessions", authMW, h.revokeOtherSessions)
}

func (h *Handler) login(c *gin.Context) {
	var dto LoginDTO
	if err := c.ShouldBindJSON(&dto); err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	token, err := h.svc.Login(dto.Username, dto.Password, c.ClientIP(), c.Request.UserAgent())
	if err != nil {
		if errors.Is(err, errAuthUserNotFound) || errors.Is(err, errAuthWrongPassword) {
			response.ForbiddenMsg(c, "invalid credentials")
			return
		}
		response.InternalError(c, err)
		return
	}
	setAuthTokenCookie(c, token)
	response.OK(c, loginResponse{Token: token})
}

func (h *Handler) register(c *gin.Context) {
	var dto RegisterDTO
	if err := c.ShouldBindJSON(&dto); err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	u, p, err := h.svc.Register(&dto)
	if err != nil {
		if errors.Is(err, errOwnerAlreadyRegistered) {
			response.Conflict(c, "owner already registered")
			return
		}
		response.InternalError(c, err)
		return
	}
	response.Created(c, gin.H{
		"id":              u.ID,
		"username":        u.Username,
		"organization_id": p.OrganizationID,
	})
}

func (h *Handler) logout(c *gin.Context) {
	if err := h.svc.Logout(middleware.CurrentUserID(c), middleware.CurrentSessionID(c)); err != nil {
		response.InternalError(c, err)
		return
	}
	clearAuthTokenCookie(c)
	response.NoContent(c)
}

func (h *Handler) session(c *gin.Context) {
	userID := middleware.CurrentUserID(c)
	if userID == "" {
		response.OK(c, gin.H{"authenticated": false})
		return
	}
	var profile models.ProfileModel
	_ = h.svc.db.Where("user_id = ?", userID).First(&profile).Error
	response.OK(c, gin.H{
		"authenticated":   true,
		"user_id":         userID,
		"organization_id": profile.OrganizationID,
		"username":        profile.Username,
	})
}

func (h *Handler) listSessions(c *gin.Context) {
	sessions, err := sessionpkg.ListActive(h.svc.db, middleware.CurrentUserID(c))
	if err != nil {
		response.InternalError(c, err)
		return
	}
	response.OK(c, sessions)
}

func (h *Handler) revokeSession(c *gin.Context) {
	if err := sessionpkg.Revoke(h.svc.db, middleware.CurrentUserID(c), c.Param("id")); err != nil {
		response.NotFoundMsg(c, "session not found")
		return
	}
	response.NoContent(c)
}

func (h *Handler) revokeOtherSessions(c *gin.Context) {
	if err := sessionpkg.RevokeAllExcept(h.svc.db, middleware.CurrentUserID(c), middleware.CurrentSessionID(c)); err != nil {
		response.InternalError(c, err)
		return
	}
	response.NoContent(c)
}

func setAuthTokenCookie(c *gin.Context, token string) {
	c.SetCookie("folio-token", token, int(sessionpkg.DefaultTTL.Seconds()), "/", "", false, true)
}

func clearAuthTokenCookie(c *gin.Context) {
	c.SetCookie("folio-token", "", -1, "/", "", false, true)
}
