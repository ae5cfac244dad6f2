package view

import (
	"errors"
	"testing"
)

func TestZeroValueStartsAtHome(t *testing.T) {
	var m Machine
	if m.State() != StateHome {
		t.Fatalf("zero machine should start at home, got %s", m.State())
	}
}

func TestOpenCaseStudyRequiresID(t *testing.T) {
	m := New(false)

	if _, _, err := m.OpenCaseStudy(""); !errors.Is(err, ErrMissingCaseStudyID) {
		t.Fatalf("expected ErrMissingCaseStudyID, got %v", err)
	}
	if m.State() != StateHome {
		t.Fatalf("rejected transition must not move the machine, got %s", m.State())
	}

	next, tr, err := m.OpenCaseStudy("cs-1")
	if err != nil {
		t.Fatalf("open case study: %v", err)
	}
	if next != StateCaseStudy || tr.CaseStudyID != "cs-1" || tr.From != StateHome {
		t.Fatalf("unexpected transition: %+v", tr)
	}
}

func TestCaseStudyFailureReturnsHomeWithReason(t *testing.T) {
	m := New(false)
	if _, _, err := m.OpenCaseStudy("cs-gone"); err != nil {
		t.Fatalf("open case study: %v", err)
	}

	next, tr := m.CaseStudyFailed("case study not found")
	if next != StateHome {
		t.Fatalf("failure should land on home, got %s", next)
	}
	if tr.From != StateCaseStudy || tr.Reason != "case study not found" {
		t.Fatalf("transition should carry the failure reason: %+v", tr)
	}
}

func TestAdminRequiresAuthentication(t *testing.T) {
	anon := New(false)
	next, tr, err := anon.OpenAdmin()
	if !errors.Is(err, ErrAuthRequired) {
		t.Fatalf("expected ErrAuthRequired, got %v", err)
	}
	if next != StateLogin || tr.To != StateLogin {
		t.Fatalf("unauthenticated admin should divert to login, got %s", next)
	}

	owner := New(true)
	next, _, err = owner.OpenAdmin()
	if err != nil || next != StateAdmin {
		t.Fatalf("authenticated admin open failed: state=%s err=%v", next, err)
	}
}

func TestLoginThenAdmin(t *testing.T) {
	m := New(false)
	if next, _ := m.OpenLogin(); next != StateLogin {
		t.Fatalf("open login failed, got %s", next)
	}
	m.SetAuthenticated(true)
	if next, _, err := m.OpenAdmin(); err != nil || next != StateAdmin {
		t.Fatalf("admin after login failed: state=%s err=%v", next, err)
	}
}

func TestLogoutDropsAuthAndGoesHome(t *testing.T) {
	m := New(true)
	if _, _, err := m.OpenAdmin(); err != nil {
		t.Fatalf("open admin: %v", err)
	}

	next, tr := m.Logout()
	if next != StateHome || tr.From != StateAdmin {
		t.Fatalf("logout should land home from admin: %+v", tr)
	}
	if _, _, err := m.OpenAdmin(); !errors.Is(err, ErrAuthRequired) {
		t.Fatalf("admin after logout should require auth, got %v", err)
	}
}

func TestGoHomeFromAnywhere(t *testing.T) {
	m := New(true)
	if _, _, err := m.OpenCaseStudy("cs-2"); err != nil {
		t.Fatalf("open case study: %v", err)
	}
	if next, tr := m.GoHome(); next != StateHome || tr.From != StateCaseStudy {
		t.Fatalf("go home from case study failed: %+v", tr)
	}
}
