package portfolio

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/folio-space/core/internal/database"
	"github.com/folio-space/core/internal/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

func testDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := database.OpenEphemeral()
	if err != nil {
		t.Fatalf("open test database: %v", err)
	}
	return db
}

func seedProfile(t *testing.T, db *gorm.DB, username string, public bool, age time.Duration) models.ProfileModel {
	t.Helper()
	p := models.ProfileModel{
		UserID:         uuid.New().String(),
		OrganizationID: uuid.New().String(),
		Username:       username,
		DisplayName:    username,
		IsPublic:       public,
	}
	if err := db.Create(&p).Error; err != nil {
		t.Fatalf("seed profile %s: %v", username, err)
	}
	created := time.Now().Add(-age)
	if err := db.Model(&p).Update("created_at", created).Error; err != nil {
		t.Fatalf("backdate profile %s: %v", username, err)
	}
	p.CreatedAt = created
	return p
}

func TestResolveByUsername(t *testing.T) {
	db := testDB(t)
	r := NewResolver(db)
	ctx := context.Background()

	pub := seedProfile(t, db, "ada-"+uuid.New().String()[:8], true, time.Hour)
	priv := seedProfile(t, db, "grace-"+uuid.New().String()[:8], false, time.Hour)

	got, err := r.Resolve(ctx, pub.Username, "")
	if err != nil {
		t.Fatalf("resolve public username: %v", err)
	}
	if got.ID != pub.ID {
		t.Fatalf("resolved wrong profile: got %s want %s", got.ID, pub.ID)
	}

	if _, err := r.Resolve(ctx, priv.Username, ""); !errors.Is(err, ErrProfileNotFound) {
		t.Fatalf("private username should be not found, got %v", err)
	}

	// Even the owner cannot reach their private profile through the
	// username route.
	if _, err := r.Resolve(ctx, priv.Username, priv.UserID); !errors.Is(err, ErrProfileNotFound) {
		t.Fatalf("private username with owner viewer should be not found, got %v", err)
	}

	if _, err := r.Resolve(ctx, "nobody-here", ""); !errors.Is(err, ErrProfileNotFound) {
		t.Fatalf("unknown username should be not found, got %v", err)
	}
}

func TestResolveOwnProfile(t *testing.T) {
	db := testDB(t)
	r := NewResolver(db)
	ctx := context.Background()

	priv := seedProfile(t, db, "own-"+uuid.New().String()[:8], false, time.Hour)

	got, err := r.Resolve(ctx, "", priv.UserID)
	if err != nil {
		t.Fatalf("resolve own private profile: %v", err)
	}
	if got.ID != priv.ID {
		t.Fatalf("resolved wrong profile: got %s want %s", got.ID, priv.ID)
	}

	if _, err := r.Resolve(ctx, "", uuid.New().String()); !errors.Is(err, ErrProfileNotFound) {
		t.Fatalf("viewer without profile should be not found, got %v", err)
	}
}

func TestResolveNewestPublic(t *testing.T) {
	db := testDB(t)
	r := NewResolver(db)
	ctx := context.Background()

	seedProfile(t, db, "old-"+uuid.New().String()[:8], true, 48*time.Hour)
	newest := seedProfile(t, db, "new-"+uuid.New().String()[:8], true, time.Minute)
	seedProfile(t, db, "hidden-"+uuid.New().String()[:8], false, time.Second)

	got, err := r.Resolve(ctx, "", "")
	if err != nil {
		t.Fatalf("resolve newest public: %v", err)
	}
	if got.ID != newest.ID {
		t.Fatalf("expected newest public profile %s, got %s", newest.ID, got.ID)
	}
}

func TestResolveNoPublicProfiles(t *testing.T) {
	db := testDB(t)
	r := NewResolver(db)

	// Hide everything that other tests may have left behind.
	if err := db.Model(&models.ProfileModel{}).
		Where("is_public = ?", true).
		Update("is_public", false).Error; err != nil {
		t.Fatalf("hide profiles: %v", err)
	}

	_, err := r.Resolve(context.Background(), "", "")
	if !errors.Is(err, ErrNoPublicProfiles) {
		t.Fatalf("expected ErrNoPublicProfiles, got %v", err)
	}
	if !errors.Is(err, ErrProfileNotFound) {
		t.Fatalf("ErrNoPublicProfiles should unwrap to ErrProfileNotFound, got %v", err)
	}
}
