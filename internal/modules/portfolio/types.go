package portfolio

import (
	"encoding/json"
	"errors"

	"github.com/folio-space/core/internal/models"
	"github.com/folio-space/core/internal/modules/content/toolbox"
)

var (
	// ErrProfileNotFound is returned when no profile matches the
	// resolution strategy.
	ErrProfileNotFound = errors.New("profile not found")
	// ErrNoPublicProfiles is returned when an anonymous visitor hits an
	// instance with no public profile at all. It unwraps to
	// ErrProfileNotFound.
	ErrNoPublicProfiles = errors.New("no public profiles")
)

// State classifies how a section fetch ended. Absent content is not a
// failure: an organization that never wrote a story gets StateEmpty, a
// database error gets StateFailed.
type State string

const (
	StateLoaded State = "loaded"
	StateEmpty  State = "empty"
	StateFailed State = "failed"
)

// SectionResult is the tagged outcome of one section fetch. Data is only
// meaningful for StateLoaded; Err only for StateFailed.
type SectionResult[T any] struct {
	State State
	Data  T
	Err   error
}

func Loaded[T any](data T) SectionResult[T] {
	return SectionResult[T]{State: StateLoaded, Data: data}
}

func Empty[T any]() SectionResult[T] {
	return SectionResult[T]{State: StateEmpty}
}

func Failed[T any](err error) SectionResult[T] {
	return SectionResult[T]{State: StateFailed, Err: err}
}

// MarshalJSON keeps the wire shape stable: failed sections expose no
// internal error text, only their state.
func (r SectionResult[T]) MarshalJSON() ([]byte, error) {
	out := struct {
		State State       `json:"state"`
		Data  interface{} `json:"data,omitempty"`
	}{State: r.State}
	if r.State == StateLoaded {
		out.Data = r.Data
	}
	return json.Marshal(out)
}

// Aggregate is the fully assembled portfolio view model. Profile is always
// present; every section is independently loaded, empty, or failed.
type Aggregate struct {
	Profile  models.ProfileModel                         `json:"profile"`
	Projects SectionResult[[]models.CaseStudyModel]      `json:"projects"`
	Story    SectionResult[*models.StoryModel]           `json:"story"`
	Toolbox  SectionResult[*toolbox.Toolbox]             `json:"toolbox"`
	Journey  SectionResult[*models.JourneyTimelineModel] `json:"journey"`
	Contact  SectionResult[*models.ContactSectionModel]  `json:"contact"`
	CV       SectionResult[*models.CVSectionModel]       `json:"cv"`
	Carousel SectionResult[*models.CarouselModel]        `json:"carousel"`
	IsOwner  bool                                        `json:"is_owner"`
}
