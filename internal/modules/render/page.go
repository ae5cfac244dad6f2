package render

import (
	"github.com/folio-space/core/internal/models"
	"github.com/folio-space/core/internal/modules/portfolio"
)

// Block is one renderable page section. State mirrors the fetch outcome
// so the client can distinguish "nothing here" from "could not load".
type Block struct {
	Section  string      `json:"section"`
	State    string      `json:"state"`
	Editable bool        `json:"editable,omitempty"`
	Data     interface{} `json:"data,omitempty"`
}

// Page is the composed portfolio page.
type Page struct {
	Profile models.ProfileModel `json:"profile"`
	IsOwner bool                `json:"is_owner"`
	Blocks  []Block             `json:"blocks"`
}

// StoryView is the story block with paragraphs rendered to HTML.
type StoryView struct {
	Title      string   `json:"title"`
	Subtitle   string   `json:"subtitle"`
	Paragraphs []string `json:"paragraphs"`
	Image      string   `json:"image"`
}

// CaseStudyView is a case study with markdown section bodies rendered.
type CaseStudyView struct {
	ID         string                 `json:"id"`
	Title      string                 `json:"title"`
	Slug       string                 `json:"slug"`
	Summary    string                 `json:"summary"`
	CoverImage string                 `json:"cover_image"`
	Published  bool                   `json:"published"`
	Sections   []caseStudySectionView `json:"sections"`
}

type caseStudySectionView struct {
	Type  models.CaseStudySectionType `json:"type"`
	Title string                      `json:"title"`
	Body  string                      `json:"body"`
	Media []string                    `json:"media,omitempty"`
	URL   string                      `json:"url,omitempty"`
}

// ComposePage turns an assembled aggregate into a page tree. Empty
// sections are dropped; failed ones stay visible so the client can show
// a retry affordance instead of silently losing content. A loaded journey
// with zero milestones still renders its header. Only owners get editable
// blocks.
func ComposePage(agg *portfolio.Aggregate) *Page {
	p := &Page{Profile: agg.Profile, IsOwner: agg.IsOwner, Blocks: []Block{}}

	appendBlock(p, "projects", agg.Projects.State, agg.IsOwner, projectsView(agg.Projects.Data))
	appendBlock(p, "story", agg.Story.State, agg.IsOwner, storyView(agg.Story.Data))
	appendBlock(p, "toolbox", agg.Toolbox.State, agg.IsOwner, agg.Toolbox.Data)
	appendBlock(p, "journey", agg.Journey.State, agg.IsOwner, agg.Journey.Data)
	appendBlock(p, "contact", agg.Contact.State, agg.IsOwner, agg.Contact.Data)
	appendBlock(p, "cv", agg.CV.State, agg.IsOwner, agg.CV.Data)
	appendBlock(p, "carousel", agg.Carousel.State, agg.IsOwner, agg.Carousel.Data)

	return p
}

// appendBlock adds one section block. Empty optional sections vanish for
// visitors but stay (as placeholders to fill in) for the owner.
func appendBlock(p *Page, section string, state portfolio.State, isOwner bool, data interface{}) {
	if state == portfolio.StateEmpty && !isOwner {
		return
	}
	b := Block{Section: section, State: string(state), Editable: isOwner}
	if state == portfolio.StateLoaded {
		b.Data = data
	}
	p.Blocks = append(p.Blocks, b)
}

func storyView(m *models.StoryModel) *StoryView {
	if m == nil {
		return nil
	}
	paras, err := MarkdownAll([]string(m.Paragraphs))
	if err != nil {
		paras = []string(m.Paragraphs)
	}
	return &StoryView{
		Title:      m.Title,
		Subtitle:   m.Subtitle,
		Paragraphs: paras,
		Image:      m.Image,
	}
}

func projectsView(items []models.CaseStudyModel) []CaseStudyView {
	if items == nil {
		return nil
	}
	out := make([]CaseStudyView, 0, len(items))
	for i := range items {
		out = append(out, *CaseStudyToView(&items[i]))
	}
	return out
}

// CaseStudyToView renders one case study's enabled sections, markdown
// bodies included. Disabled sections never reach the page.
func CaseStudyToView(m *models.CaseStudyModel) *CaseStudyView {
	v := &CaseStudyView{
		ID:         m.ID,
		Title:      m.Title,
		Slug:       m.Slug,
		Summary:    m.Summary,
		CoverImage: m.CoverImage,
		Published:  m.IsPublished,
		Sections:   []caseStudySectionView{},
	}
	for _, sec := range m.Sections {
		if !sec.Enabled {
			continue
		}
		body, err := Markdown(sec.Body)
		if err != nil {
			body = sec.Body
		}
		v.Sections = append(v.Sections, caseStudySectionView{
			Type:  sec.Type,
			Title: sec.Title,
			Body:  body,
			Media: []string(sec.Media),
			URL:   sec.URL,
		})
	}
	return v
}
