package models

// SkillCategoryModel groups named skills with a manual display order.
type SkillCategoryModel struct {
	OrgScoped
	Name   string       `json:"name"  gorm:"not null"`
	Order  int          `json:"order" gorm:"column:order_num"`
	Skills []SkillModel `json:"skills" gorm:"foreignKey:CategoryID"`
}

func (SkillCategoryModel) TableName() string { return "skill_categories" }

// SkillModel is a single named skill with a 0-100 proficiency level.
type SkillModel struct {
	Base
	CategoryID string `json:"-"     gorm:"type:char(36);index;not null"`
	Name       string `json:"name"  gorm:"not null"`
	Level      int    `json:"level"` // 0-100
	Order      int    `json:"order" gorm:"column:order_num"`
}

func (SkillModel) TableName() string { return "skills" }

// ToolModel is a named/iconed technology badge.
type ToolModel struct {
	OrgScoped
	Name  string `json:"name"  gorm:"not null"`
	Icon  string `json:"icon"`
	Order int    `json:"order" gorm:"column:order_num"`
}

func (ToolModel) TableName() string { return "tools" }
