package casestudy

import (
	"context"
	"errors"

	"github.com/folio-space/core/internal/models"
	"gorm.io/gorm"
)

type Service struct{ db *gorm.DB }

func NewService(db *gorm.DB) *Service { return &Service{db: db} }

// ListForOrg returns case studies newest-first. Unpublished items are only
// included when the caller owns the organization.
func (s *Service) ListForOrg(ctx context.Context, orgID string, includeDrafts bool) ([]models.CaseStudyModel, error) {
	tx := s.db.WithContext(ctx).
		Where("organization_id = ?", orgID).
		Order("created_at DESC")
	if !includeDrafts {
		tx = tx.Where("is_published = ?", true)
	}
	var items []models.CaseStudyModel
	err := tx.Find(&items).Error
	return items, err
}

// GetByID fetches one case study by id. Returns (nil, nil) when absent.
func (s *Service) GetByID(ctx context.Context, id string) (*models.CaseStudyModel, error) {
	var cs models.CaseStudyModel
	if err := s.db.WithContext(ctx).First(&cs, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &cs, nil
}

func (s *Service) Create(ctx context.Context, orgID string, dto *CreateDTO) (*models.CaseStudyModel, error) {
	cs := models.CaseStudyModel{
		Title:       dto.Title,
		Slug:        dto.Slug,
		Summary:     dto.Summary,
		CoverImage:  dto.CoverImage,
		Sections:    normalizeSections(dto.Sections),
		IsPublished: dto.Publish,
	}
	cs.OrganizationID = orgID
	return &cs, s.db.WithContext(ctx).Create(&cs).Error
}

func (s *Service) Update(ctx context.Context, id, orgID string, dto *UpdateDTO) (*models.CaseStudyModel, error) {
	cs, err := s.GetByID(ctx, id)
	if err != nil || cs == nil {
		return cs, err
	}
	if cs.OrganizationID != orgID {
		return nil, errNotOwned
	}

	updates := map[string]interface{}{}
	if dto.Title != nil {
		updates["title"] = *dto.Title
	}
	if dto.Slug != nil {
		updates["slug"] = *dto.Slug
	}
	if dto.Summary != nil {
		updates["summary"] = *dto.Summary
	}
	if dto.CoverImage != nil {
		updates["cover_image"] = *dto.CoverImage
	}
	if dto.IsPublished != nil {
		updates["is_published"] = *dto.IsPublished
	}
	if dto.Sections != nil {
		cs.Sections = normalizeSections(*dto.Sections)
		if err := s.db.WithContext(ctx).Model(cs).Update("sections", cs.Sections).Error; err != nil {
			return nil, err
		}
	}
	if len(updates) > 0 {
		if err := s.db.WithContext(ctx).Model(cs).Updates(updates).Error; err != nil {
			return nil, err
		}
	}
	return s.GetByID(ctx, id)
}

func (s *Service) Delete(ctx context.Context, id, orgID string) error {
	res := s.db.WithContext(ctx).
		Where("id = ? AND organization_id = ?", id, orgID).
		Delete(&models.CaseStudyModel{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// normalizeSections drops blocks with no type and keeps the declared order.
func normalizeSections(in []models.CaseStudySection) []models.CaseStudySection {
	if len(in) == 0 {
		return []models.CaseStudySection{}
	}
	out := make([]models.CaseStudySection, 0, len(in))
	for _, sec := range in {
		if sec.Type == "" {
			continue
		}
		out = append(out, sec)
	}
	return out
}
