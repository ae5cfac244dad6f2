package story

import "github.com/folio-space/core/internal/models"

// UpsertDTO replaces the organization's story block. Missing fields clear.
type UpsertDTO struct {
	Title      string   `json:"title"`
	Subtitle   string   `json:"subtitle"`
	Paragraphs []string `json:"paragraphs"`
	Image      string   `json:"image"`
}

func (d *UpsertDTO) apply(m *models.StoryModel) {
	m.Title = d.Title
	m.Subtitle = d.Subtitle
	m.Paragraphs = models.StringArray(d.Paragraphs)
	m.Image = d.Image
}
