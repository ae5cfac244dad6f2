package cv

import (
	"context"
	"errors"

	"github.com/folio-space/core/internal/models"
	"gorm.io/gorm"
)

type Service struct{ db *gorm.DB }

func NewService(db *gorm.DB) *Service { return &Service{db: db} }

// GetForOrg returns the organization's CV section with versions in display
// order, or (nil, nil) when none exists.
func (s *Service) GetForOrg(ctx context.Context, orgID string) (*models.CVSectionModel, error) {
	var m models.CVSectionModel
	err := s.db.WithContext(ctx).
		Where("organization_id = ?", orgID).
		Order("created_at DESC").
		Preload("Versions", func(tx *gorm.DB) *gorm.DB {
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

// ActiveForOrg narrows GetForOrg to versions visible to the public page.
func (s *Service) ActiveForOrg(ctx context.Context, orgID string) (*models.CVSectionModel, error) {
	sec, err := s.GetForOrg(ctx, orgID)
	if err != nil || sec == nil {
		return sec, err
	}
	active := sec.Versions[:0]
	for _, v := range sec.Versions {
		if v.IsActive {
			active = append(active, v)
		}
	}
	sec.Versions = active
	return sec, nil
}

// UpsertSection creates the section on first write, updates it afterwards.
func (s *Service) UpsertSection(ctx context.Context, orgID string, dto *SectionDTO) (*models.CVSectionModel, error) {
	sec, err := s.EnsureSection(ctx, orgID)
	if err != nil {
		return nil, err
	}
	sec.Title = dto.Title
	return sec, s.db.WithContext(ctx).Model(sec).Update("title", dto.Title).Error
}

// EnsureSection returns the organization's section, creating an empty one
// when missing.
func (s *Service) EnsureSection(ctx context.Context, orgID string) (*models.CVSectionModel, error) {
	sec, err := s.GetForOrg(ctx, orgID)
	if err != nil {
		return nil, err
	}
	if sec != nil {
		return sec, nil
	}
	m := models.CVSectionModel{OrganizationID: orgID}
	if err := s.db.WithContext(ctx).Create(&m).Error; err != nil {
		return nil, err
	}
	m.Versions = []models.CVVersionModel{}
	return &m, nil
}

// AddVersion appends a version row, creating the section implicitly.
func (s *Service) AddVersion(ctx context.Context, orgID string, dto *VersionDTO) (*models.CVVersionModel, error) {
	sec, err := s.EnsureSection(ctx, orgID)
	if err != nil {
		return nil, err
	}
	m := models.CVVersionModel{
		SectionID:   sec.ID,
		Label:       dto.Label,
		ExternalURL: dto.ExternalURL,
		IsActive:    true,
		Order:       dto.Order,
	}
	if dto.IsActive != nil {
		m.IsActive = *dto.IsActive
	}
	return &m, s.db.WithContext(ctx).Create(&m).Error
}

func (s *Service) UpdateVersion(ctx context.Context, id, orgID string, dto *VersionDTO) (*models.CVVersionModel, error) {
	m, err := s.VersionForOrg(ctx, id, orgID)
	if err != nil || m == nil {
		return m, err
	}
	m.Label = dto.Label
	m.ExternalURL = dto.ExternalURL
	m.Order = dto.Order
	if dto.IsActive != nil {
		m.IsActive = *dto.IsActive
	}
	return m, s.db.WithContext(ctx).Save(m).Error
}

func (s *Service) DeleteVersion(ctx context.Context, id, orgID string) error {
	m, err := s.VersionForOrg(ctx, id, orgID)
	if err != nil {
		return err
	}
	if m == nil {
		return gorm.ErrRecordNotFound
	}
	return s.db.WithContext(ctx).Delete(m).Error
}

// VersionForOrg resolves a version and verifies it belongs to orgID.
// Returns (nil, nil) when absent and ErrNotOwned on an org mismatch.
func (s *Service) VersionForOrg(ctx context.Context, id, orgID string) (*models.CVVersionModel, error) {
	var m models.CVVersionModel
	err := s.db.WithContext(ctx).First(&m, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	var sec models.CVSectionModel
	if err := s.db.WithContext(ctx).
		Select("organization_id").
		First(&sec, "id = ?", m.SectionID).Error; err != nil {
		return nil, err
	}
	if sec.OrganizationID != orgID {
		return nil, ErrNotOwned
	}
	return &m, nil
}

// VersionByID resolves a version without an ownership check, for public
// download resolution.
func (s *Service) VersionByID(ctx context.Context, id string) (*models.CVVersionModel, error) {
	var m models.CVVersionModel
	err := s.db.WithContext(ctx).First(&m, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &m, nil
}

// AttachObject records an uploaded object against a version and clears any
// external URL, making the upload authoritative.
func (s *Service) AttachObject(ctx context.Context, versionID, key, fileName string, size int64, mimeType string) error {
	return s.db.WithContext(ctx).Model(&models.CVVersionModel{}).
		Where("id = ?", versionID).
		Updates(map[string]interface{}{
			"object_key":   key,
			"file_name":    fileName,
			"file_size":    size,
			"mime_type":    mimeType,
			"external_url": "",
		}).Error
}
