package models

// CaseStudySectionType enumerates the block types a case study may carry.
type CaseStudySectionType string

const (
	SectionHero       CaseStudySectionType = "hero"
	SectionOverview   CaseStudySectionType = "overview"
	SectionProblem    CaseStudySectionType = "problem"
	SectionProcess    CaseStudySectionType = "process"
	SectionShowcase   CaseStudySectionType = "showcase"
	SectionReflection CaseStudySectionType = "reflection"
	SectionGallery    CaseStudySectionType = "gallery"
	SectionDocument   CaseStudySectionType = "document"
	SectionVideo      CaseStudySectionType = "video"
	SectionFigma      CaseStudySectionType = "figma"
	SectionMiro       CaseStudySectionType = "miro"
	SectionLinks      CaseStudySectionType = "links"
)

// CaseStudySection is one independently toggled content block.
type CaseStudySection struct {
	Type    CaseStudySectionType `json:"type"`
	Enabled bool                 `json:"enabled"`
	Title   string               `json:"title,omitempty"`
	Body    string               `json:"body,omitempty"` // markdown
	Media   StringArray          `json:"media,omitempty"`
	URL     string               `json:"url,omitempty"`
}

// CaseStudyModel stores a work sample. Only published case studies are
// visible to non-owner viewers.
type CaseStudyModel struct {
	OrgScoped
	Title       string             `json:"title"        gorm:"not null"`
	Slug        string             `json:"slug"         gorm:"index"`
	Summary     string             `json:"summary"      gorm:"type:text"`
	CoverImage  string             `json:"cover_image"`
	Sections    []CaseStudySection `json:"sections"     gorm:"type:longtext;serializer:json"`
	IsPublished bool               `json:"is_published" gorm:"index;default:false"`
}

func (CaseStudyModel) TableName() string { return "case_studies" }
