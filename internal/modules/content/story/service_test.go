package story

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

func TestUpsertCreatesThenUpdatesInPlace(t *testing.T) {
	svc := testService(t)
	ctx := context.Background()
	orgID := uuid.New().String()

	first, err := svc.Upsert(ctx, orgID, &UpsertDTO{
		Title:      "About me",
		Paragraphs: []string{"I build things."},
	})
	if err != nil {
		t.Fatalf("first upsert: %v", err)
	}

	second, err := svc.Upsert(ctx, orgID, &UpsertDTO{
		Title:      "Still about me",
		Paragraphs: []string{"I build things.", "Mostly on weekends."},
	})
	if err != nil {
		t.Fatalf("second upsert: %v", err)
	}
	if second.ID != first.ID {
		t.Fatalf("second upsert created a new row: %s != %s", second.ID, first.ID)
	}

	var count int64
	if err := svc.db.Model(&models.StoryModel{}).
		Where("organization_id = ?", orgID).
		Count(&count).Error; err != nil {
		t.Fatalf("count stories: %v", err)
	}
	if count != 1 {
		t.Fatalf("expected one story row per organization, got %d", count)
	}

	got, err := svc.GetForOrg(ctx, orgID)
	if err != nil {
		t.Fatalf("get story: %v", err)
	}
	if got.Title != "Still about me" || len(got.Paragraphs) != 2 {
		t.Fatalf("upsert did not replace content: %+v", got)
	}
}

func TestGetForOrgAbsentIsNotAnError(t *testing.T) {
	svc := testService(t)

	got, err := svc.GetForOrg(context.Background(), uuid.New().String())
	if err != nil {
		t.Fatalf("absent story must not error: %v", err)
	}
	if got != nil {
		t.Fatalf("expected nil story, got %+v", got)
	}
}

func TestDeleteScopedToOrganization(t *testing.T) {
	svc := testService(t)
	ctx := context.Background()
	orgID := uuid.New().String()

	if _, err := svc.Upsert(ctx, orgID, &UpsertDTO{Title: "mine"}); err != nil {
		t.Fatalf("seed story: %v", err)
	}

	if err := svc.Delete(ctx, uuid.New().String()); !errors.Is(err, gorm.ErrRecordNotFound) {
		t.Fatalf("deleting another org's story should be not found, got %v", err)
	}
	if err := svc.Delete(ctx, orgID); err != nil {
		t.Fatalf("delete own story: %v", err)
	}
	got, err := svc.GetForOrg(ctx, orgID)
	if err != nil || got != nil {
		t.Fatalf("story should be gone, got %+v err=%v", got, err)
	}
}
