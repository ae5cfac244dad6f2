// Package view models client navigation as an explicit state machine.
// The server keeps no per-client view state; the machine exists so the
// navigation rules live in one tested place instead of being implied by
// scattered handler checks.
package view

import "errors"

type State string

const (
	StateHome      State = "home"
	StateCaseStudy State = "caseStudy"
	StateAdmin     State = "admin"
	StateLogin     State = "login"
)

var (
	ErrMissingCaseStudyID = errors.New("case study id required")
	ErrAuthRequired       = errors.New("authentication required")
)

// Transition records one accepted state change. CaseStudyID is set when
// entering StateCaseStudy; Reason is set when a failure forced the move.
type Transition struct {
	From        State  `json:"from"`
	To          State  `json:"to"`
	CaseStudyID string `json:"case_study_id,omitempty"`
	Reason      string `json:"reason,omitempty"`
}

// Machine validates navigation from a current state. The zero value
// starts at StateHome.
type Machine struct {
	state         State
	authenticated bool
}

func New(authenticated bool) *Machine {
	return &Machine{state: StateHome, authenticated: authenticated}
}

func (m *Machine) State() State {
	if m.state == "" {
		return StateHome
	}
	return m.state
}

// SetAuthenticated flips the auth flag, as after login or logout.
func (m *Machine) SetAuthenticated(ok bool) { m.authenticated = ok }

// OpenCaseStudy enters the case study detail view. An id is mandatory:
// there is no "current" case study to fall back to.
func (m *Machine) OpenCaseStudy(id string) (State, Transition, error) {
	if id == "" {
		return m.State(), Transition{}, ErrMissingCaseStudyID
	}
	t := Transition{From: m.State(), To: StateCaseStudy, CaseStudyID: id}
	m.state = StateCaseStudy
	return m.state, t, nil
}

// CaseStudyFailed returns to home carrying the failure reason, so the
// home view can surface why the detail never appeared.
func (m *Machine) CaseStudyFailed(reason string) (State, Transition) {
	t := Transition{From: m.State(), To: StateHome, Reason: reason}
	m.state = StateHome
	return m.state, t
}

// OpenAdmin enters the management view. Unauthenticated visitors are
// redirected to login instead.
func (m *Machine) OpenAdmin() (State, Transition, error) {
	if !m.authenticated {
		t := Transition{From: m.State(), To: StateLogin, Reason: "auth required"}
		m.state = StateLogin
		return m.state, t, ErrAuthRequired
	}
	t := Transition{From: m.State(), To: StateAdmin}
	m.state = StateAdmin
	return m.state, t, nil
}

// OpenLogin enters the login view from anywhere.
func (m *Machine) OpenLogin() (State, Transition) {
	t := Transition{From: m.State(), To: StateLogin}
	m.state = StateLogin
	return m.state, t
}

// GoHome returns to the portfolio view from anywhere.
func (m *Machine) GoHome() (State, Transition) {
	t := Transition{From: m.State(), To: StateHome}
	m.state = StateHome
	return m.state, t
}

// Logout drops authentication and returns home.
func (m *Machine) Logout() (State, Transition) {
	m.authenticated = false
	t := Transition{From: m.State(), To: StateHome, Reason: "logged out"}
	m.state = StateHome
	return m.state, t
}
