package contact

import "errors"

var errNotOwned = errors.New("resource belongs to another organization")

// UpsertDTO replaces the organization's contact block.
type UpsertDTO struct {
	Email     string `json:"email" binding:"omitempty,email"`
	Location  string `json:"location"`
	ResumeURL string `json:"resume_url"`
}

// SocialLinkDTO creates or replaces one social link.
type SocialLinkDTO struct {
	Platform string `json:"platform" binding:"required"`
	URL      string `json:"url" binding:"required,url"`
	Order    int    `json:"order"`
}
