package carousel

import (
	"context"
	"errors"

	"github.com/folio-space/core/internal/models"
	"gorm.io/gorm"
)

type Service struct{ db *gorm.DB }

func NewService(db *gorm.DB) *Service { return &Service{db: db} }

// GetForOrg returns the organization's carousel with slides in display
// order, or (nil, nil) when none exists.
func (s *Service) GetForOrg(ctx context.Context, orgID string) (*models.CarouselModel, error) {
	var m models.CarouselModel
	err := s.db.WithContext(ctx).
		Where("organization_id = ?", orgID).
		Order("created_at DESC").
		Preload("Slides", func(tx *gorm.DB) *gorm.DB {
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

// AddSlide appends a slide, creating the carousel implicitly when the
// organization has none yet.
func (s *Service) AddSlide(ctx context.Context, orgID string, dto *SlideDTO) (*models.SlideModel, error) {
	car, err := s.GetForOrg(ctx, orgID)
	if err != nil {
		return nil, err
	}
	if car == nil {
		car = &models.CarouselModel{OrganizationID: orgID}
		if err := s.db.WithContext(ctx).Create(car).Error; err != nil {
			return nil, err
		}
	}
	m := models.SlideModel{
		CarouselID:  car.ID,
		Image:       dto.Image,
		Title:       dto.Title,
		Description: dto.Description,
		Order:       dto.Order,
	}
	return &m, s.db.WithContext(ctx).Create(&m).Error
}

func (s *Service) UpdateSlide(ctx context.Context, id, orgID string, dto *SlideDTO) (*models.SlideModel, error) {
	m, err := s.slideForOrg(ctx, id, orgID)
	if err != nil || m == nil {
		return m, err
	}
	m.Image = dto.Image
	m.Title = dto.Title
	m.Description = dto.Description
	m.Order = dto.Order
	return m, s.db.WithContext(ctx).Save(m).Error
}

func (s *Service) DeleteSlide(ctx context.Context, id, orgID string) error {
	m, err := s.slideForOrg(ctx, id, orgID)
	if err != nil {
		return err
	}
	if m == nil {
		return gorm.ErrRecordNotFound
	}
	return s.db.WithContext(ctx).Delete(m).Error
}

// Reorder rewrites order_num to match the given id sequence.
func (s *Service) Reorder(ctx context.Context, orgID string, ids []string) error {
	car, err := s.GetForOrg(ctx, orgID)
	if err != nil {
		return err
	}
	if car == nil {
		return gorm.ErrRecordNotFound
	}
	owned := make(map[string]struct{}, len(car.Slides))
	for _, sl := range car.Slides {
		owned[sl.ID] = struct{}{}
	}
	for _, id := range ids {
		if _, ok := owned[id]; !ok {
			return errNotOwned
		}
	}
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for i, id := range ids {
			if err := tx.Model(&models.SlideModel{}).
				Where("id = ?", id).
				Update("order_num", i).Error; err != nil {
				return err
			}
		}
		return nil
	})
}

func (s *Service) slideForOrg(ctx context.Context, id, orgID string) (*models.SlideModel, error) {
	var m models.SlideModel
	err := s.db.WithContext(ctx).First(&m, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	var car models.CarouselModel
	if err := s.db.WithContext(ctx).
		Select("organization_id").
		First(&car, "id = ?", m.CarouselID).Error; err != nil {
		return nil, err
	}
	if car.OrganizationID != orgID {
		return nil, errNotOwned
	}
	return &m, nil
}
