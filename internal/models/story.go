package models

// StoryModel is the narrative "about me" block. One row per organization;
// the unique index enforces what the data layer previously only assumed.
type StoryModel struct {
	Base
	OrganizationID string      `json:"organization_id" gorm:"type:char(36);uniqueIndex;not null"`
	Title          string      `json:"title"`
	Subtitle       string      `json:"subtitle"`
	Paragraphs     StringArray `json:"paragraphs" gorm:"type:longtext"` // markdown per paragraph
	Image          string      `json:"image"`
}

func (StoryModel) TableName() string { return "stories" }
