package render

import (
	"errors"
	"net/http"
	"strings"

	"github.com/folio-space/core/internal/middleware"
	"github.com/folio-space/core/internal/modules/content/scope"
	"github.com/folio-space/core/internal/modules/portfolio"
	"github.com/folio-space/core/internal/modules/view"
	"github.com/folio-space/core/internal/pkg/response"
	"github.com/gin-gonic/gin"
)

// navView is the payload for navigation endpoints: the state the client
// landed in, the transition that got it there, and the content for that
// state. Page is set for home and admin, CaseStudy for the detail view.
// Notice carries a flash message when a failure forced the move.
type navView struct {
	State      view.State      `json:"state"`
	Transition view.Transition `json:"transition"`
	Page       *Page           `json:"page,omitempty"`
	CaseStudy  *CaseStudyView  `json:"case_study,omitempty"`
	Notice     string          `json:"notice,omitempty"`
}

// GET /page/case-studies/:id
//
// Opens the case study detail view. A fetch failure or an invisible
// record does not surface as an error page: the machine falls back to
// home and the composed home page is returned with the reason attached.
func (h *Handler) caseStudyPage(c *gin.Context) {
	machine := view.New(middleware.IsAuthenticated(c))

	_, opened, err := machine.OpenCaseStudy(strings.TrimSpace(c.Param("id")))
	if err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	cs, err := h.caseStudies.GetByID(c.Request.Context(), opened.CaseStudyID)
	visible := err == nil && cs != nil &&
		(cs.IsPublished || scope.IsOwnerOf(c, h.db, cs.OrganizationID))
	if !visible {
		reason := "case study not found"
		if err != nil {
			reason = "case study unavailable"
		}
		h.fallHome(c, machine, reason)
		return
	}

	response.OK(c, navView{
		State:      machine.State(),
		Transition: opened,
		CaseStudy:  CaseStudyToView(cs),
	})
}

// GET /page/admin
//
// Opens the management view. Unauthenticated visitors land in the login
// state with a 401 instead.
func (h *Handler) adminPage(c *gin.Context) {
	machine := view.New(middleware.IsAuthenticated(c))

	state, t, err := machine.OpenAdmin()
	if err != nil {
		if errors.Is(err, view.ErrAuthRequired) {
			c.JSON(http.StatusUnauthorized, navView{State: state, Transition: t, Notice: t.Reason})
			return
		}
		response.InternalError(c, err)
		return
	}

	p, err := h.compose(c, "")
	if err != nil {
		if errors.Is(err, portfolio.ErrProfileNotFound) {
			response.NotFoundMsg(c, "portfolio not found")
			return
		}
		response.InternalError(c, err)
		return
	}
	response.OK(c, navView{State: state, Transition: t, Page: p})
}

// fallHome runs the failure transition and answers with the home page.
func (h *Handler) fallHome(c *gin.Context, machine *view.Machine, reason string) {
	state, t := machine.CaseStudyFailed(reason)

	p, err := h.compose(c, "")
	if err != nil && !errors.Is(err, portfolio.ErrProfileNotFound) {
		response.InternalError(c, err)
		return
	}
	response.OK(c, navView{State: state, Transition: t, Page: p, Notice: t.Reason})
}
