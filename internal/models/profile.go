package models

// ProfileModel maps a human-facing username to an organization. It is the
// root of every portfolio lookup: all other content entities are resolved
// by organization id, never by username directly.
type ProfileModel struct {
	Base
	UserID         string `json:"user_id"         gorm:"type:char(36);uniqueIndex;not null"`
	OrganizationID string `json:"organization_id" gorm:"type:char(36);uniqueIndex;not null"`
	Username       string `json:"username"        gorm:"uniqueIndex;not null"`
	DisplayName    string `json:"display_name"`
	Headline       string `json:"headline"`
	Avatar         string `json:"avatar"`
	IsPublic       bool   `json:"is_public"       gorm:"index;default:false"`
}

func (ProfileModel) TableName() string { return "profiles" }
