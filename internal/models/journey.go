package models

// JourneyTimelineModel holds career milestones. One timeline per
// organization, enforced by the unique index.
type JourneyTimelineModel struct {
	Base
	OrganizationID string           `json:"organization_id" gorm:"type:char(36);uniqueIndex;not null"`
	Title          string           `json:"title"`
	Milestones     []MilestoneModel `json:"milestones" gorm:"foreignKey:TimelineID"`
}

func (JourneyTimelineModel) TableName() string { return "journey_timelines" }

// MilestoneModel is one career entry on a timeline.
type MilestoneModel struct {
	Base
	TimelineID  string `json:"-"           gorm:"type:char(36);index;not null"`
	Title       string `json:"title"       gorm:"not null"`
	Company     string `json:"company"`
	Period      string `json:"period"`
	Description string `json:"description" gorm:"type:text"`
	IsActive    bool   `json:"is_active"   gorm:"default:true"`
	Order       int    `json:"order"       gorm:"column:order_num"`
}

func (MilestoneModel) TableName() string { return "milestones" }
