package story

import (
	"context"
	"errors"

	"github.com/folio-space/core/internal/models"
	"gorm.io/gorm"
)

type Service struct{ db *gorm.DB }

func NewService(db *gorm.DB) *Service { return &Service{db: db} }

// GetForOrg returns the organization's story, or (nil, nil) when none
// exists. Newest-first ordering is kept even though the unique index
// allows at most one live row.
func (s *Service) GetForOrg(ctx context.Context, orgID string) (*models.StoryModel, error) {
	var m models.StoryModel
	err := s.db.WithContext(ctx).
		Where("organization_id = ?", orgID).
		Order("created_at DESC").
		First(&m).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &m, nil
}

// Upsert creates the story on first write and replaces it afterwards.
func (s *Service) Upsert(ctx context.Context, orgID string, dto *UpsertDTO) (*models.StoryModel, error) {
	existing, err := s.GetForOrg(ctx, orgID)
	if err != nil {
		return nil, err
	}
	if existing == nil {
		m := models.StoryModel{OrganizationID: orgID}
		dto.apply(&m)
		return &m, s.db.WithContext(ctx).Create(&m).Error
	}
	dto.apply(existing)
	return existing, s.db.WithContext(ctx).Save(existing).Error
}

func (s *Service) Delete(ctx context.Context, orgID string) error {
	res := s.db.WithContext(ctx).
		Where("organization_id = ?", orgID).
		Delete(&models.StoryModel{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
