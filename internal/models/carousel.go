package models

// CarouselModel holds the showcase image strip. One row per organization.
type CarouselModel struct {
	Base
	OrganizationID string       `json:"organization_id" gorm:"type:char(36);uniqueIndex;not null"`
	Slides         []SlideModel `json:"slides" gorm:"foreignKey:CarouselID"`
}

func (CarouselModel) TableName() string { return "carousels" }

// SlideModel is one ordered showcase image.
type SlideModel struct {
	Base
	CarouselID  string `json:"-"           gorm:"type:char(36);index;not null"`
	Image       string `json:"image"       gorm:"not null"`
	Title       string `json:"title"`
	Description string `json:"description" gorm:"type:text"`
	Order       int    `json:"order"       gorm:"column:order_num"`
}

func (SlideModel) TableName() string { return "slides" }
