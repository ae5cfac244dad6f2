package models

// CVSectionModel holds the CV download block. One row per organization.
type CVSectionModel struct {
	Base
	OrganizationID string           `json:"organization_id" gorm:"type:char(36);uniqueIndex;not null"`
	Title          string           `json:"title"`
	Versions       []CVVersionModel `json:"versions" gorm:"foreignKey:SectionID"`
}

func (CVSectionModel) TableName() string { return "cv_sections" }

// CVVersionModel is one named CV variant, backed either by an uploaded
// object (ObjectKey set) or an external link (ExternalURL set).
type CVVersionModel struct {
	Base
	SectionID   string `json:"-"            gorm:"type:char(36);index;not null"`
	Label       string `json:"label"        gorm:"not null"`
	ObjectKey   string `json:"-"`
	FileName    string `json:"file_name"`
	FileSize    int64  `json:"file_size"`
	MimeType    string `json:"mime_type"`
	ExternalURL string `json:"external_url"`
	IsActive    bool   `json:"is_active"    gorm:"default:true"`
	Order       int    `json:"order"        gorm:"column:order_num"`
}

func (CVVersionModel) TableName() string { return "cv_versions" }
