package cv

import "errors"

// ErrNotOwned is returned when a mutation targets a row belonging to a
// different organization. Exported for the file storage module, which
// resolves versions through this service.
var ErrNotOwned = errors.New("resource belongs to another organization")

// SectionDTO upserts the organization's CV block header.
type SectionDTO struct {
	Title string `json:"title"`
}

// VersionDTO creates or updates a CV version. Link-backed versions carry
// ExternalURL; uploaded versions get their object key attached separately.
type VersionDTO struct {
	Label       string `json:"label" binding:"required"`
	ExternalURL string `json:"external_url" binding:"omitempty,url"`
	IsActive    *bool  `json:"is_active"`
	Order       int    `json:"order"`
}
