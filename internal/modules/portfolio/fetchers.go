package portfolio

import (
	"context"

	"github.com/folio-space/core/internal/models"
	"github.com/folio-space/core/internal/modules/content/carousel"
	"github.com/folio-space/core/internal/modules/content/casestudy"
	"github.com/folio-space/core/internal/modules/content/contact"
	"github.com/folio-space/core/internal/modules/content/cv"
	"github.com/folio-space/core/internal/modules/content/journey"
	"github.com/folio-space/core/internal/modules/content/story"
	"github.com/folio-space/core/internal/modules/content/toolbox"
)

// Fetchers wraps the per-section read services behind a uniform
// SectionResult contract: a missing row is StateEmpty, a query error is
// StateFailed, anything else is StateLoaded.
type Fetchers struct {
	CaseStudies *casestudy.Service
	Story       *story.Service
	Toolbox     *toolbox.Service
	Journey     *journey.Service
	Contact     *contact.Service
	CV          *cv.Service
	Carousel    *carousel.Service
}

func (f *Fetchers) fetchProjects(ctx context.Context, orgID string, isOwner bool) SectionResult[[]models.CaseStudyModel] {
	items, err := f.CaseStudies.ListForOrg(ctx, orgID, isOwner)
	if err != nil {
		return Failed[[]models.CaseStudyModel](err)
	}
	if len(items) == 0 {
		return Empty[[]models.CaseStudyModel]()
	}
	return Loaded(items)
}

func (f *Fetchers) fetchStory(ctx context.Context, orgID string) SectionResult[*models.StoryModel] {
	m, err := f.Story.GetForOrg(ctx, orgID)
	if err != nil {
		return Failed[*models.StoryModel](err)
	}
	if m == nil {
		return Empty[*models.StoryModel]()
	}
	return Loaded(m)
}

func (f *Fetchers) fetchToolbox(ctx context.Context, orgID string) SectionResult[*toolbox.Toolbox] {
	tb, err := f.Toolbox.GetForOrg(ctx, orgID)
	if err != nil {
		return Failed[*toolbox.Toolbox](err)
	}
	if tb.IsEmpty() {
		return Empty[*toolbox.Toolbox]()
	}
	return Loaded(tb)
}

// fetchJourney treats a timeline row with zero milestones as loaded: the
// owner created the section, so its header still renders.
func (f *Fetchers) fetchJourney(ctx context.Context, orgID string) SectionResult[*models.JourneyTimelineModel] {
	m, err := f.Journey.GetForOrg(ctx, orgID)
	if err != nil {
		return Failed[*models.JourneyTimelineModel](err)
	}
	if m == nil {
		return Empty[*models.JourneyTimelineModel]()
	}
	return Loaded(m)
}

func (f *Fetchers) fetchContact(ctx context.Context, orgID string) SectionResult[*models.ContactSectionModel] {
	m, err := f.Contact.GetForOrg(ctx, orgID)
	if err != nil {
		return Failed[*models.ContactSectionModel](err)
	}
	if m == nil {
		return Empty[*models.ContactSectionModel]()
	}
	return Loaded(m)
}

func (f *Fetchers) fetchCV(ctx context.Context, orgID string, isOwner bool) SectionResult[*models.CVSectionModel] {
	load := f.CV.ActiveForOrg
	if isOwner {
		load = f.CV.GetForOrg
	}
	m, err := load(ctx, orgID)
	if err != nil {
		return Failed[*models.CVSectionModel](err)
	}
	if m == nil {
		return Empty[*models.CVSectionModel]()
	}
	return Loaded(m)
}

func (f *Fetchers) fetchCarousel(ctx context.Context, orgID string) SectionResult[*models.CarouselModel] {
	m, err := f.Carousel.GetForOrg(ctx, orgID)
	if err != nil {
		return Failed[*models.CarouselModel](err)
	}
	if m == nil || len(m.Slides) == 0 {
		return Empty[*models.CarouselModel]()
	}
	return Loaded(m)
}
