package render

import (
	"errors"
	"strings"
	"testing"

	"github.com/folio-space/core/internal/models"
	"github.com/folio-space/core/internal/modules/content/toolbox"
	"github.com/folio-space/core/internal/modules/portfolio"
)

var errTest = errors.New("backend unavailable")

func TestMarkdownEscapesRawHTML(t *testing.T) {
	out, err := Markdown("**bold** <script>alert(1)</script>")
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if !strings.Contains(out, "<strong>bold</strong>") {
		t.Fatalf("markdown emphasis not rendered: %q", out)
	}
	if strings.Contains(out, "<script>") {
		t.Fatalf("raw html must be escaped: %q", out)
	}
}

func TestComposePageDropsEmptySectionsForVisitors(t *testing.T) {
	agg := &portfolio.Aggregate{
		Profile: models.ProfileModel{Username: "ada"},
		Story: portfolio.Loaded(&models.StoryModel{
			Title:      "About",
			Paragraphs: models.StringArray{"plain *markdown*"},
		}),
		Projects: portfolio.Empty[[]models.CaseStudyModel](),
		Toolbox:  portfolio.Empty[*toolbox.Toolbox](),
		Journey:  portfolio.Empty[*models.JourneyTimelineModel](),
		Contact:  portfolio.Empty[*models.ContactSectionModel](),
		CV:       portfolio.Empty[*models.CVSectionModel](),
		Carousel: portfolio.Empty[*models.CarouselModel](),
	}

	p := ComposePage(agg)
	if len(p.Blocks) != 1 {
		t.Fatalf("visitor page should only carry the loaded story, got %d blocks", len(p.Blocks))
	}
	b := p.Blocks[0]
	if b.Section != "story" || b.Editable {
		t.Fatalf("unexpected block: %+v", b)
	}
	sv, ok := b.Data.(*StoryView)
	if !ok {
		t.Fatalf("story block data has wrong type: %T", b.Data)
	}
	if !strings.Contains(sv.Paragraphs[0], "<em>markdown</em>") {
		t.Fatalf("story paragraph not rendered to html: %q", sv.Paragraphs[0])
	}
}

func TestComposePageKeepsPlaceholdersForOwner(t *testing.T) {
	agg := &portfolio.Aggregate{
		Profile:  models.ProfileModel{Username: "ada"},
		IsOwner:  true,
		Projects: portfolio.Empty[[]models.CaseStudyModel](),
		Story:    portfolio.Empty[*models.StoryModel](),
		Toolbox:  portfolio.Empty[*toolbox.Toolbox](),
		Journey:  portfolio.Empty[*models.JourneyTimelineModel](),
		Contact:  portfolio.Empty[*models.ContactSectionModel](),
		CV:       portfolio.Empty[*models.CVSectionModel](),
		Carousel: portfolio.Empty[*models.CarouselModel](),
	}

	p := ComposePage(agg)
	if len(p.Blocks) != 7 {
		t.Fatalf("owner should see every section as an editable placeholder, got %d", len(p.Blocks))
	}
	for _, b := range p.Blocks {
		if !b.Editable {
			t.Errorf("owner block %s should be editable", b.Section)
		}
	}
}

func TestComposePageKeepsFailedSectionsVisible(t *testing.T) {
	agg := &portfolio.Aggregate{
		Profile:  models.ProfileModel{Username: "ada"},
		Projects: portfolio.Empty[[]models.CaseStudyModel](),
		Story:    portfolio.Failed[*models.StoryModel](errTest),
		Toolbox:  portfolio.Empty[*toolbox.Toolbox](),
		Journey:  portfolio.Empty[*models.JourneyTimelineModel](),
		Contact:  portfolio.Empty[*models.ContactSectionModel](),
		CV:       portfolio.Empty[*models.CVSectionModel](),
		Carousel: portfolio.Empty[*models.CarouselModel](),
	}

	p := ComposePage(agg)
	if len(p.Blocks) != 1 {
		t.Fatalf("failed section should stay on the page, got %d blocks", len(p.Blocks))
	}
	if p.Blocks[0].State != "failed" || p.Blocks[0].Data != nil {
		t.Fatalf("failed block should carry state but no data: %+v", p.Blocks[0])
	}
}

func TestCaseStudyViewSkipsDisabledSections(t *testing.T) {
	cs := &models.CaseStudyModel{
		Title: "Redesign",
		Sections: []models.CaseStudySection{
			{Type: models.SectionHero, Enabled: true, Body: "# Hero"},
			{Type: models.SectionProblem, Enabled: false, Body: "hidden"},
		},
	}
	v := CaseStudyToView(cs)
	if len(v.Sections) != 1 {
		t.Fatalf("disabled sections must be dropped, got %d", len(v.Sections))
	}
	if !strings.Contains(v.Sections[0].Body, "<h1") {
		t.Fatalf("section body not rendered: %q", v.Sections[0].Body)
	}
}
