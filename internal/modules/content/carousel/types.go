package carousel

import "errors"

var errNotOwned = errors.New("resource belongs to another organization")

// SlideDTO creates or replaces one showcase slide.
type SlideDTO struct {
	Image       string `json:"image" binding:"required"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Order       int    `json:"order"`
}

// ReorderDTO carries slide ids in their new display order.
type ReorderDTO struct {
	IDs []string `json:"ids" binding:"required,min=1"`
}
