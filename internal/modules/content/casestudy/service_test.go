package casestudy

import (
	"context"
	"errors"
	"testing"

	"github.com/folio-space/core/internal/database"
	"github.com/folio-space/core/internal/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

func testService(t *testing.T) *Service {
	t.Helper()
	db, err := database.OpenEphemeral()
	if err != nil {
		t.Fatalf("open test database: %v", err)
	}
	return NewService(db)
}

func TestListForOrgHidesDraftsFromVisitors(t *testing.T) {
	svc := testService(t)
	ctx := context.Background()
	orgID := uuid.New().String()

	if _, err := svc.Create(ctx, orgID, &CreateDTO{Title: "Shipped", Publish: true}); err != nil {
		t.Fatalf("create published: %v", err)
	}
	if _, err := svc.Create(ctx, orgID, &CreateDTO{Title: "Draft"}); err != nil {
		t.Fatalf("create draft: %v", err)
	}

	visitor, err := svc.ListForOrg(ctx, orgID, false)
	if err != nil {
		t.Fatalf("visitor list: %v", err)
	}
	if len(visitor) != 1 || visitor[0].Title != "Shipped" {
		t.Fatalf("visitor should only see published work, got %+v", visitor)
	}

	owner, err := svc.ListForOrg(ctx, orgID, true)
	if err != nil {
		t.Fatalf("owner list: %v", err)
	}
	if len(owner) != 2 {
		t.Fatalf("owner should see drafts too, got %d", len(owner))
	}
}

func TestUpdateRejectsForeignOrganization(t *testing.T) {
	svc := testService(t)
	ctx := context.Background()
	orgID := uuid.New().String()

	cs, err := svc.Create(ctx, orgID, &CreateDTO{Title: "Mine"})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	newTitle := "Stolen"
	if _, err := svc.Update(ctx, cs.ID, uuid.New().String(), &UpdateDTO{Title: &newTitle}); !errors.Is(err, errNotOwned) {
		t.Fatalf("expected errNotOwned, got %v", err)
	}
}

func TestUpdateAppliesOnlyProvidedFields(t *testing.T) {
	svc := testService(t)
	ctx := context.Background()
	orgID := uuid.New().String()

	cs, err := svc.Create(ctx, orgID, &CreateDTO{Title: "Before", Summary: "keep me"})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	publish := true
	got, err := svc.Update(ctx, cs.ID, orgID, &UpdateDTO{IsPublished: &publish})
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if !got.IsPublished {
		t.Fatalf("publish flag not applied")
	}
	if got.Title != "Before" || got.Summary != "keep me" {
		t.Fatalf("untouched fields changed: %+v", got)
	}
}

func TestMutationsHonorCallerContext(t *testing.T) {
	svc := testService(t)
	orgID := uuid.New().String()

	cs, err := svc.Create(context.Background(), orgID, &CreateDTO{Title: "Stable"})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	canceled, cancel := context.WithCancel(context.Background())
	cancel()

	title := "Changed"
	if _, err := svc.Update(canceled, cs.ID, orgID, &UpdateDTO{Title: &title}); !errors.Is(err, context.Canceled) {
		t.Fatalf("update with canceled context should fail, got %v", err)
	}
	if err := svc.Delete(canceled, cs.ID, orgID); !errors.Is(err, context.Canceled) {
		t.Fatalf("delete with canceled context should fail, got %v", err)
	}

	got, err := svc.GetByID(context.Background(), cs.ID)
	if err != nil || got == nil {
		t.Fatalf("record should survive canceled mutations: %v", err)
	}
	if got.Title != "Stable" {
		t.Fatalf("canceled update must not apply, got %q", got.Title)
	}
}

func TestNormalizeSectionsDropsUntyped(t *testing.T) {
	in := []models.CaseStudySection{
		{Type: models.SectionHero, Enabled: true},
		{Enabled: true},
		{Type: models.SectionLinks},
	}
	out := normalizeSections(in)
	if len(out) != 2 {
		t.Fatalf("untyped section should be dropped, got %d", len(out))
	}
	if out[0].Type != models.SectionHero || out[1].Type != models.SectionLinks {
		t.Fatalf("section order must be preserved: %+v", out)
	}
}

func TestDeleteScopedToOrganization(t *testing.T) {
	svc := testService(t)
	ctx := context.Background()
	orgID := uuid.New().String()

	cs, err := svc.Create(ctx, orgID, &CreateDTO{Title: "Gone soon"})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	if err := svc.Delete(ctx, cs.ID, uuid.New().String()); !errors.Is(err, gorm.ErrRecordNotFound) {
		t.Fatalf("foreign delete should be not found, got %v", err)
	}
	if err := svc.Delete(ctx, cs.ID, orgID); err != nil {
		t.Fatalf("own delete: %v", err)
	}
}
