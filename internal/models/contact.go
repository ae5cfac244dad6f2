package models

// ContactSectionModel holds contact metadata. One row per organization.
type ContactSectionModel struct {
	Base
	OrganizationID string            `json:"organization_id" gorm:"type:char(36);uniqueIndex;not null"`
	Email          string            `json:"email"`
	Location       string            `json:"location"`
	ResumeURL      string            `json:"resume_url"`
	SocialLinks    []SocialLinkModel `json:"social_links" gorm:"foreignKey:ContactID"`
}

func (ContactSectionModel) TableName() string { return "contact_sections" }

// SocialLinkModel is one ordered social link under a contact section.
type SocialLinkModel struct {
	Base
	ContactID string `json:"-"        gorm:"type:char(36);index;not null"`
	Platform  string `json:"platform" gorm:"not null"`
	URL       string `json:"url"      gorm:"not null"`
	Order     int    `json:"order"    gorm:"column:order_num"`
}

func (SocialLinkModel) TableName() string { return "social_links" }
