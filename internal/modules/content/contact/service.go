package contact

import (
	"context"
	"errors"

	"github.com/folio-space/core/internal/models"
	"gorm.io/gorm"
)

type Service struct{ db *gorm.DB }

func NewService(db *gorm.DB) *Service { return &Service{db: db} }

// GetForOrg returns the organization's contact section with links in
// display order, or (nil, nil) when none exists.
func (s *Service) GetForOrg(ctx context.Context, orgID string) (*models.ContactSectionModel, error) {
	var m models.ContactSectionModel
	err := s.db.WithContext(ctx).
		Where("organization_id = ?", orgID).
		Order("created_at DESC").
		Preload("SocialLinks", func(tx *gorm.DB) *gorm.DB {
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

// Upsert creates the contact section on first write, updates it afterwards.
func (s *Service) Upsert(ctx context.Context, orgID string, dto *UpsertDTO) (*models.ContactSectionModel, error) {
	existing, err := s.GetForOrg(ctx, orgID)
	if err != nil {
		return nil, err
	}
	if existing == nil {
		m := models.ContactSectionModel{
			OrganizationID: orgID,
			Email:          dto.Email,
			Location:       dto.Location,
			ResumeURL:      dto.ResumeURL,
		}
		if err := s.db.WithContext(ctx).Create(&m).Error; err != nil {
			return nil, err
		}
		m.SocialLinks = []models.SocialLinkModel{}
		return &m, nil
	}
	existing.Email = dto.Email
	existing.Location = dto.Location
	existing.ResumeURL = dto.ResumeURL
	err = s.db.WithContext(ctx).Model(existing).Updates(map[string]interface{}{
		"email":      dto.Email,
		"location":   dto.Location,
		"resume_url": dto.ResumeURL,
	}).Error
	return existing, err
}

// AddLink appends a social link, creating the contact section implicitly
// when the organization has none yet.
func (s *Service) AddLink(ctx context.Context, orgID string, dto *SocialLinkDTO) (*models.SocialLinkModel, error) {
	sec, err := s.GetForOrg(ctx, orgID)
	if err != nil {
		return nil, err
	}
	if sec == nil {
		sec, err = s.Upsert(ctx, orgID, &UpsertDTO{})
		if err != nil {
			return nil, err
		}
	}
	m := models.SocialLinkModel{
		ContactID: sec.ID,
		Platform:  dto.Platform,
		URL:       dto.URL,
		Order:     dto.Order,
	}
	return &m, s.db.WithContext(ctx).Create(&m).Error
}

func (s *Service) UpdateLink(ctx context.Context, id, orgID string, dto *SocialLinkDTO) (*models.SocialLinkModel, error) {
	m, err := s.linkForOrg(ctx, id, orgID)
	if err != nil || m == nil {
		return m, err
	}
	m.Platform = dto.Platform
	m.URL = dto.URL
	m.Order = dto.Order
	return m, s.db.WithContext(ctx).Save(m).Error
}

func (s *Service) DeleteLink(ctx context.Context, id, orgID string) error {
	m, err := s.linkForOrg(ctx, id, orgID)
	if err != nil {
		return err
	}
	if m == nil {
		return gorm.ErrRecordNotFound
	}
	return s.db.WithContext(ctx).Delete(m).Error
}

func (s *Service) linkForOrg(ctx context.Context, id, orgID string) (*models.SocialLinkModel, error) {
	var m models.SocialLinkModel
	err := s.db.WithContext(ctx).First(&m, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	var sec models.ContactSectionModel
	if err := s.db.WithContext(ctx).
		Select("organization_id").
		First(&sec, "id = ?", m.ContactID).Error; err != nil {
		return nil, err
	}
	if sec.OrganizationID != orgID {
		return nil, errNotOwned
	}
	return &m, nil
}
