package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Base is the base model for all entities.
type Base struct {
	ID        string         `json:"id"       gorm:"type:char(36);primaryKey"`
	CreatedAt time.Time      `json:"created"`
	UpdatedAt time.Time      `json:"modified"`
	DeletedAt gorm.DeletedAt `json:"-"        gorm:"index"`
}

func (b *Base) BeforeCreate(tx *gorm.DB) error {
	if b.ID == "" {
		b.ID = uuid.New().String()
	}
	return nil
}

// OrgScoped is embedded by every content entity. OrganizationID is the
// tenant-isolation key: one organization per portfolio owner, and every
// content row belongs to exactly one organization.
type OrgScoped struct {
	Base
	OrganizationID string `json:"organization_id" gorm:"type:char(36);index;not null"`
}
