package journey

import "errors"

var errNotOwned = errors.New("resource belongs to another organization")

// TimelineDTO upserts the organization's timeline header.
type TimelineDTO struct {
	Title string `json:"title"`
}

// MilestoneDTO creates or replaces one career entry.
type MilestoneDTO struct {
	Title       string `json:"title" binding:"required"`
	Company     string `json:"company"`
	Period      string `json:"period"`
	Description string `json:"description"`
	IsActive    *bool  `json:"is_active"`
	Order       int    `json:"order"`
}

// ReorderDTO carries milestone ids in their new display order.
type ReorderDTO struct {
	IDs []string `json:"ids" binding:"required,min=1"`
}
