package auth

import (
	"errors"
	"testing"

	"github.com/folio-space/core/internal/database"
	"github.com/folio-space/core/internal/middleware"
	"github.com/folio-space/core/internal/models"
)

func testService(t *testing.T) *Service {
	t.Helper()
	db, err := database.OpenEphemeral()
	if err != nil {
		t.Fatalf("open test database: %v", err)
	}
	// Single-owner checks count users globally and usernames are unique,
	// so start each test with clean auth tables.
	for _, m := range []interface{}{&models.UserSession{}, &models.ProfileModel{}, &models.UserModel{}} {
		if err := db.Unscoped().Where("1 = 1").Delete(m).Error; err != nil {
			t.Fatalf("reset auth tables: %v", err)
		}
	}
	return NewService(db)
}

func TestRegisterBootstrapsOwnerAndProfile(t *testing.T) {
	svc := testService(t)

	u, p, err := svc.Register(&RegisterDTO{
		Username: "ada",
		Password: "correct-horse",
	})
	if err != nil {
		t.Fatalf("register: %v", err)
	}
	if u.Password == "correct-horse" {
		t.Fatalf("password stored in plaintext")
	}
	if p.UserID != u.ID {
		t.Fatalf("profile not bound to user")
	}
	if p.OrganizationID == "" {
		t.Fatalf("registration must mint an organization id")
	}
	if p.IsPublic {
		t.Fatalf("new profiles must start private")
	}

	if _, _, err := svc.Register(&RegisterDTO{Username: "eve", Password: "sneaky-pass"}); !errors.Is(err, errOwnerAlreadyRegistered) {
		t.Fatalf("second registration should be rejected, got %v", err)
	}
}

func TestLoginIssuesValidatableToken(t *testing.T) {
	svc := testService(t)

	if _, _, err := svc.Register(&RegisterDTO{Username: "ada", Password: "correct-horse"}); err != nil {
		t.Fatalf("register: %v", err)
	}

	token, err := svc.Login("ada", "correct-horse", "127.0.0.1", "go-test")
	if err != nil {
		t.Fatalf("login: %v", err)
	}
	if token == "" {
		t.Fatalf("login returned an empty token")
	}

	userID, err := middleware.ValidateToken(svc.db, token)
	if err != nil {
		t.Fatalf("issued token failed validation: %v", err)
	}
	if userID == "" {
		t.Fatalf("validated token carries no user")
	}
}

func TestLogoutRevokesSession(t *testing.T) {
	svc := testService(t)

	if _, _, err := svc.Register(&RegisterDTO{Username: "ada", Password: "correct-horse"}); err != nil {
		t.Fatalf("register: %v", err)
	}
	token, err := svc.Login("ada", "correct-horse", "127.0.0.1", "go-test")
	if err != nil {
		t.Fatalf("login: %v", err)
	}

	claims, err := middleware.ValidateTokenClaims(svc.db, token)
	if err != nil {
		t.Fatalf("validate: %v", err)
	}
	if err := svc.Logout(claims.UserID, claims.SessionID); err != nil {
		t.Fatalf("logout: %v", err)
	}
	if _, err := middleware.ValidateTokenClaims(svc.db, token); err == nil {
		t.Fatalf("token should be rejected after logout")
	}
}
