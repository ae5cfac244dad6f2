package casestudy

import (
	"errors"

	"github.com/folio-space/core/internal/models"
)

type CreateDTO struct {
	Title      string                    `json:"title" binding:"required"`
	Slug       string                    `json:"slug"`
	Summary    string                    `json:"summary"`
	CoverImage string                    `json:"cover_image"`
	Sections   []models.CaseStudySection `json:"sections"`
	Publish    bool                      `json:"publish"`
}

type UpdateDTO struct {
	Title       *string                    `json:"title"`
	Slug        *string                    `json:"slug"`
	Summary     *string                    `json:"summary"`
	CoverImage  *string                    `json:"cover_image"`
	Sections    *[]models.CaseStudySection `json:"sections"`
	IsPublished *bool                      `json:"is_published"`
}

var errNotOwned = errors.New("case study belongs to another organization")
