package journey

import (
	"context"
	"errors"

	"github.com/folio-space/core/internal/models"
	"gorm.io/gorm"
)

type Service struct{ db *gorm.DB }

func NewService(db *gorm.DB) *Service { return &Service{db: db} }

// GetForOrg returns the organization's timeline with milestones in display
// order, or (nil, nil) when no timeline exists. A timeline with zero
// milestones is a valid, present section.
func (s *Service) GetForOrg(ctx context.Context, orgID string) (*models.JourneyTimelineModel, error) {
	var m models.JourneyTimelineModel
	err := s.db.WithContext(ctx).
		Where("organization_id = ?", orgID).
		Order("created_at DESC").
		Preload("Milestones", func(tx *gorm.DB) *gorm.DB {
			return tx.Order("order_num ASC, created_at ASC")
		}).
		First(&m).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &m, nil
}

// UpsertTimeline creates the timeline on first write, updates it afterwards.
func (s *Service) UpsertTimeline(ctx context.Context, orgID string, dto *TimelineDTO) (*models.JourneyTimelineModel, error) {
	existing, err := s.GetForOrg(ctx, orgID)
	if err != nil {
		return nil, err
	}
	if existing == nil {
		m := models.JourneyTimelineModel{OrganizationID: orgID, Title: dto.Title}
		if err := s.db.WithContext(ctx).Create(&m).Error; err != nil {
			return nil, err
		}
		m.Milestones = []models.MilestoneModel{}
		return &m, nil
	}
	existing.Title = dto.Title
	return existing, s.db.WithContext(ctx).Model(existing).Update("title", dto.Title).Error
}

// AddMilestone appends a milestone, creating the timeline implicitly when
// the organization has none yet.
func (s *Service) AddMilestone(ctx context.Context, orgID string, dto *MilestoneDTO) (*models.MilestoneModel, error) {
	tl, err := s.GetForOrg(ctx, orgID)
	if err != nil {
		return nil, err
	}
	if tl == nil {
		tl, err = s.UpsertTimeline(ctx, orgID, &TimelineDTO{})
		if err != nil {
			return nil, err
		}
	}
	m := models.MilestoneModel{
		TimelineID:  tl.ID,
		Title:       dto.Title,
		Company:     dto.Company,
		Period:      dto.Period,
		Description: dto.Description,
		IsActive:    true,
		Order:       dto.Order,
	}
	if dto.IsActive != nil {
		m.IsActive = *dto.IsActive
	}
	return &m, s.db.WithContext(ctx).Create(&m).Error
}

func (s *Service) UpdateMilestone(ctx context.Context, id, orgID string, dto *MilestoneDTO) (*models.MilestoneModel, error) {
	m, err := s.milestoneForOrg(ctx, id, orgID)
	if err != nil || m == nil {
		return m, err
	}
	m.Title = dto.Title
	m.Company = dto.Company
	m.Period = dto.Period
	m.Description = dto.Description
	m.Order = dto.Order
	if dto.IsActive != nil {
		m.IsActive = *dto.IsActive
	}
	return m, s.db.WithContext(ctx).Save(m).Error
}

func (s *Service) DeleteMilestone(ctx context.Context, id, orgID string) error {
	m, err := s.milestoneForOrg(ctx, id, orgID)
	if err != nil {
		return err
	}
	if m == nil {
		return gorm.ErrRecordNotFound
	}
	return s.db.WithContext(ctx).Delete(m).Error
}

// Reorder rewrites order_num to match the given id sequence. Ids not
// belonging to the organization's timeline are rejected.
func (s *Service) Reorder(ctx context.Context, orgID string, ids []string) error {
	tl, err := s.GetForOrg(ctx, orgID)
	if err != nil {
		return err
	}
	if tl == nil {
		return gorm.ErrRecordNotFound
	}
	owned := make(map[string]struct{}, len(tl.Milestones))
	for _, m := range tl.Milestones {
		owned[m.ID] = struct{}{}
	}
	for _, id := range ids {
		if _, ok := owned[id]; !ok {
			return errNotOwned
		}
	}
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for i, id := range ids {
			if err := tx.Model(&models.MilestoneModel{}).
				Where("id = ?", id).
				Update("order_num", i).Error; err != nil {
				return err
			}
		}
		return nil
	})
}

func (s *Service) milestoneForOrg(ctx context.Context, id, orgID string) (*models.MilestoneModel, error) {
	var m models.MilestoneModel
	err := s.db.WithContext(ctx).First(&m, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	var tl models.JourneyTimelineModel
	if err := s.db.WithContext(ctx).
		Select("organization_id").
		First(&tl, "id = ?", m.TimelineID).Error; err != nil {
		return nil, err
	}
	if tl.OrganizationID != orgID {
		return nil, errNotOwned
	}
	return &m, nil
}
