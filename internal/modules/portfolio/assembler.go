package portfolio

import (
	"context"
	"fmt"
	"sync"

	"github.com/folio-space/core/internal/models"
	"github.com/folio-space/core/internal/modules/content/toolbox"
	"go.uber.org/zap"
)

// Assembler runs every section fetcher concurrently and joins the
// results into one Aggregate. Sections fail independently: a broken
// section never aborts its siblings and never fails the page.
type Assembler struct {
	fetchers *Fetchers
	logger   *zap.Logger
}

func NewAssembler(fetchers *Fetchers, logger *zap.Logger) *Assembler {
	return &Assembler{fetchers: fetchers, logger: logger}
}

// Assemble fetches all sections for one organization. The WaitGroup join
// is deliberate: a cancel-on-first-error group would violate section
// independence by tearing down healthy fetches when one fails.
func (a *Assembler) Assemble(ctx context.Context, profile models.ProfileModel, isOwner bool) *Aggregate {
	agg := &Aggregate{Profile: profile, IsOwner: isOwner}
	orgID := profile.OrganizationID

	var wg sync.WaitGroup
	wg.Add(7)

	go runSection(&wg, a.logger, "projects", &agg.Projects, func() SectionResult[[]models.CaseStudyModel] {
		return a.fetchers.fetchProjects(ctx, orgID, isOwner)
	})
	go runSection(&wg, a.logger, "story", &agg.Story, func() SectionResult[*models.StoryModel] {
		return a.fetchers.fetchStory(ctx, orgID)
	})
	go runSection(&wg, a.logger, "toolbox", &agg.Toolbox, func() SectionResult[*toolbox.Toolbox] {
		return a.fetchers.fetchToolbox(ctx, orgID)
	})
	go runSection(&wg, a.logger, "journey", &agg.Journey, func() SectionResult[*models.JourneyTimelineModel] {
		return a.fetchers.fetchJourney(ctx, orgID)
	})
	go runSection(&wg, a.logger, "contact", &agg.Contact, func() SectionResult[*models.ContactSectionModel] {
		return a.fetchers.fetchContact(ctx, orgID)
	})
	go runSection(&wg, a.logger, "cv", &agg.CV, func() SectionResult[*models.CVSectionModel] {
		return a.fetchers.fetchCV(ctx, orgID, isOwner)
	})
	go runSection(&wg, a.logger, "carousel", &agg.Carousel, func() SectionResult[*models.CarouselModel] {
		return a.fetchers.fetchCarousel(ctx, orgID)
	})

	wg.Wait()
	return agg
}

// runSection runs one fetch, converting a panic into StateFailed so a bad
// section cannot take the whole assembly down.
func runSection[T any](wg *sync.WaitGroup, logger *zap.Logger, name string, dst *SectionResult[T], fetch func() SectionResult[T]) {
	defer wg.Done()
	defer func() {
		if r := recover(); r != nil {
			*dst = Failed[T](fmt.Errorf("section panic: %v", r))
			logger.Error("portfolio section panicked",
				zap.String("section", name),
				zap.Any("panic", r))
		}
	}()
	res := fetch()
	if res.State == StateFailed {
		logger.Warn("portfolio section failed",
			zap.String("section", name),
			zap.Error(res.Err))
	}
	*dst = res
}
