package toolbox

import (
	"context"
	"errors"

	"github.com/folio-space/core/internal/models"
	"gorm.io/gorm"
)

type Service struct{ db *gorm.DB }

func NewService(db *gorm.DB) *Service { return &Service{db: db} }

// GetForOrg loads the full toolbox for one organization, categories and
// tools ordered by their manual order then name.
func (s *Service) GetForOrg(ctx context.Context, orgID string) (*Toolbox, error) {
	var tb Toolbox
	err := s.db.WithContext(ctx).
		Where("organization_id = ?", orgID).
		Order("order_num ASC, name ASC").
		Preload("Skills", func(tx *gorm.DB) *gorm.DB {
			return tx.Order("order_num ASC, name ASC")
		}).
		Find(&tb.Categories).Error
	if err != nil {
		return nil, err
	}
	err = s.db.WithContext(ctx).
		Where("organization_id = ?", orgID).
		Order("order_num ASC, name ASC").
		Find(&tb.Tools).Error
	if err != nil {
		return nil, err
	}
	return &tb, nil
}

func (s *Service) CreateCategory(ctx context.Context, orgID string, dto *CategoryDTO) (*models.SkillCategoryModel, error) {
	m := models.SkillCategoryModel{Name: dto.Name, Order: dto.Order}
	m.OrganizationID = orgID
	return &m, s.db.WithContext(ctx).Create(&m).Error
}

func (s *Service) UpdateCategory(ctx context.Context, id, orgID string, dto *CategoryDTO) (*models.SkillCategoryModel, error) {
	m, err := s.categoryForOrg(ctx, id, orgID)
	if err != nil || m == nil {
		return m, err
	}
	m.Name = dto.Name
	m.Order = dto.Order
	return m, s.db.WithContext(ctx).Save(m).Error
}

func (s *Service) DeleteCategory(ctx context.Context, id, orgID string) error {
	m, err := s.categoryForOrg(ctx, id, orgID)
	if err != nil {
		return err
	}
	if m == nil {
		return gorm.ErrRecordNotFound
	}
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("category_id = ?", id).Delete(&models.SkillModel{}).Error; err != nil {
			return err
		}
		return tx.Delete(m).Error
	})
}

func (s *Service) CreateSkill(ctx context.Context, categoryID, orgID string, dto *SkillDTO) (*models.SkillModel, error) {
	cat, err := s.categoryForOrg(ctx, categoryID, orgID)
	if err != nil {
		return nil, err
	}
	if cat == nil {
		return nil, gorm.ErrRecordNotFound
	}
	m := models.SkillModel{
		CategoryID: categoryID,
		Name:       dto.Name,
		Level:      dto.Level,
		Order:      dto.Order,
	}
	return &m, s.db.WithContext(ctx).Create(&m).Error
}

func (s *Service) UpdateSkill(ctx context.Context, id, orgID string, dto *SkillDTO) (*models.SkillModel, error) {
	m, err := s.skillForOrg(ctx, id, orgID)
	if err != nil || m == nil {
		return m, err
	}
	m.Name = dto.Name
	m.Level = dto.Level
	m.Order = dto.Order
	return m, s.db.WithContext(ctx).Save(m).Error
}

func (s *Service) DeleteSkill(ctx context.Context, id, orgID string) error {
	m, err := s.skillForOrg(ctx, id, orgID)
	if err != nil {
		return err
	}
	if m == nil {
		return gorm.ErrRecordNotFound
	}
	return s.db.WithContext(ctx).Delete(m).Error
}

func (s *Service) CreateTool(ctx context.Context, orgID string, dto *ToolDTO) (*models.ToolModel, error) {
	m := models.ToolModel{Name: dto.Name, Icon: dto.Icon, Order: dto.Order}
	m.OrganizationID = orgID
	return &m, s.db.WithContext(ctx).Create(&m).Error
}

func (s *Service) UpdateTool(ctx context.Context, id, orgID string, dto *ToolDTO) (*models.ToolModel, error) {
	var m models.ToolModel
	err := s.db.WithContext(ctx).First(&m, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	if m.OrganizationID != orgID {
		return nil, errNotOwned
	}
	m.Name = dto.Name
	m.Icon = dto.Icon
	m.Order = dto.Order
	return &m, s.db.WithContext(ctx).Save(&m).Error
}

func (s *Service) DeleteTool(ctx context.Context, id, orgID string) error {
	res := s.db.WithContext(ctx).
		Where("id = ? AND organization_id = ?", id, orgID).
		Delete(&models.ToolModel{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (s *Service) categoryForOrg(ctx context.Context, id, orgID string) (*models.SkillCategoryModel, error) {
	var m models.SkillCategoryModel
	err := s.db.WithContext(ctx).First(&m, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	if m.OrganizationID != orgID {
		return nil, errNotOwned
	}
	return &m, nil
}

func (s *Service) skillForOrg(ctx context.Context, id, orgID string) (*models.SkillModel, error) {
	var m models.SkillModel
	err := s.db.WithContext(ctx).First(&m, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	cat, err := s.categoryForOrg(ctx, m.CategoryID, orgID)
	if err != nil {
		return nil, err
	}
	if cat == nil {
		return nil, errNotOwned
	}
	return &m, nil
}
