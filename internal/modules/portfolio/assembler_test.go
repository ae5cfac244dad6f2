package portfolio

import (
	"context"
	"testing"
	"time"

	"github.com/folio-space/core/internal/models"
	"github.com/folio-space/core/internal/modules/content/carousel"
	"github.com/folio-space/core/internal/modules/content/casestudy"
	"github.com/folio-space/core/internal/modules/content/contact"
	"github.com/folio-space/core/internal/modules/content/cv"
	"github.com/folio-space/core/internal/modules/content/journey"
	"github.com/folio-space/core/internal/modules/content/story"
	"github.com/folio-space/core/internal/modules/content/toolbox"
	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

func newAssembler(db *gorm.DB) *Assembler {
	return NewAssembler(&Fetchers{
		CaseStudies: casestudy.NewService(db),
		Story:       story.NewService(db),
		Toolbox:     toolbox.NewService(db),
		Journey:     journey.NewService(db),
		Contact:     contact.NewService(db),
		CV:          cv.NewService(db),
		Carousel:    carousel.NewService(db),
	}, zap.NewNop())
}

// Private profiles keep these fixtures out of the newest-public lookup
// exercised elsewhere in this package.
func seedOrg(t *testing.T, db *gorm.DB) models.ProfileModel {
	t.Helper()
	return seedProfile(t, db, "asm-"+uuid.New().String()[:8], false, 24*time.Hour)
}

func TestAssembleEmptyPortfolio(t *testing.T) {
	db := testDB(t)
	a := newAssembler(db)

	profile := seedOrg(t, db)
	agg := a.Assemble(context.Background(), profile, false)

	if agg.Profile.ID != profile.ID {
		t.Fatalf("aggregate lost the profile")
	}
	for name, state := range map[string]State{
		"projects": agg.Projects.State,
		"story":    agg.Story.State,
		"toolbox":  agg.Toolbox.State,
		"journey":  agg.Journey.State,
		"contact":  agg.Contact.State,
		"cv":       agg.CV.State,
		"carousel": agg.Carousel.State,
	} {
		if state != StateEmpty {
			t.Errorf("section %s: expected empty, got %s", name, state)
		}
	}
}

func TestAssembleDraftVisibility(t *testing.T) {
	db := testDB(t)
	a := newAssembler(db)
	ctx := context.Background()

	profile := seedOrg(t, db)
	published := models.CaseStudyModel{Title: "Shipped", IsPublished: true}
	published.OrganizationID = profile.OrganizationID
	draft := models.CaseStudyModel{Title: "WIP"}
	draft.OrganizationID = profile.OrganizationID
	if err := db.Create(&published).Error; err != nil {
		t.Fatalf("seed published: %v", err)
	}
	if err := db.Create(&draft).Error; err != nil {
		t.Fatalf("seed draft: %v", err)
	}

	visitor := a.Assemble(ctx, profile, false)
	if visitor.Projects.State != StateLoaded || len(visitor.Projects.Data) != 1 {
		t.Fatalf("visitor should see exactly the published case study, got %+v", visitor.Projects)
	}
	if visitor.Projects.Data[0].ID != published.ID {
		t.Fatalf("visitor saw the draft")
	}

	owner := a.Assemble(ctx, profile, true)
	if owner.Projects.State != StateLoaded || len(owner.Projects.Data) != 2 {
		t.Fatalf("owner should see both case studies, got %+v", owner.Projects)
	}
}

func TestAssembleJourneyWithoutMilestones(t *testing.T) {
	db := testDB(t)
	a := newAssembler(db)

	profile := seedOrg(t, db)
	tl := models.JourneyTimelineModel{
		OrganizationID: profile.OrganizationID,
		Title:          "My Journey",
	}
	if err := db.Create(&tl).Error; err != nil {
		t.Fatalf("seed timeline: %v", err)
	}

	agg := a.Assemble(context.Background(), profile, false)
	if agg.Journey.State != StateLoaded {
		t.Fatalf("timeline with zero milestones should still load, got %s", agg.Journey.State)
	}
	if len(agg.Journey.Data.Milestones) != 0 {
		t.Fatalf("expected zero milestones, got %d", len(agg.Journey.Data.Milestones))
	}
}

func TestAssembleSectionsLoadIndependently(t *testing.T) {
	db := testDB(t)
	a := newAssembler(db)

	profile := seedOrg(t, db)
	st := models.StoryModel{
		OrganizationID: profile.OrganizationID,
		Title:          "About",
		Paragraphs:     models.StringArray{"hello"},
	}
	if err := db.Create(&st).Error; err != nil {
		t.Fatalf("seed story: %v", err)
	}
	ct := models.ContactSectionModel{
		OrganizationID: profile.OrganizationID,
		Email:          "me@example.com",
	}
	if err := db.Create(&ct).Error; err != nil {
		t.Fatalf("seed contact: %v", err)
	}

	agg := a.Assemble(context.Background(), profile, false)
	if agg.Story.State != StateLoaded {
		t.Fatalf("story should load, got %s", agg.Story.State)
	}
	if agg.Contact.State != StateLoaded {
		t.Fatalf("contact should load, got %s", agg.Contact.State)
	}
	if agg.Toolbox.State != StateEmpty || agg.Carousel.State != StateEmpty {
		t.Fatalf("untouched sections should stay empty")
	}
}

// Dropping a table forces one fetcher to fail; the rest of the page must
// survive.
func TestFailedSectionDoesNotPoisonSiblings(t *testing.T) {
	db := testDB(t)
	a := newAssembler(db)

	profile := seedOrg(t, db)
	ct := models.ContactSectionModel{
		OrganizationID: profile.OrganizationID,
		Email:          "still@here.example",
	}
	if err := db.Create(&ct).Error; err != nil {
		t.Fatalf("seed contact: %v", err)
	}

	if err := db.Migrator().DropTable(&models.StoryModel{}); err != nil {
		t.Fatalf("drop stories: %v", err)
	}
	t.Cleanup(func() {
		if err := db.AutoMigrate(&models.StoryModel{}); err != nil {
			t.Fatalf("restore stories: %v", err)
		}
	})

	agg := a.Assemble(context.Background(), profile, false)
	if agg.Story.State != StateFailed {
		t.Fatalf("story should fail with its table gone, got %s", agg.Story.State)
	}
	if agg.Story.Err == nil {
		t.Fatalf("failed section should carry its error")
	}
	if agg.Contact.State != StateLoaded {
		t.Fatalf("contact should load despite the story failure, got %s", agg.Contact.State)
	}
}
