package auth

import (
	"errors"
	"time"

	"github.com/folio-space/core/internal/models"
	sessionpkg "github.com/folio-space/core/internal/pkg/session"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type Service struct{ db *gorm.DB }

func NewService(db *gorm.DB) *Service { return &Service{db: db} }

// failureDelay slows down credential guessing.
const failureDelay = 3 * time.Second

func (s *Service) Login(username, password, ip, ua string) (string, error) {
	var u models.UserModel
	if err := s.db.Select("id, password").
		Where("username = ?", username).First(&u).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			time.Sleep(failureDelay)
			return "", errAuthUserNotFound
		}
		return "", err
	}
	if err := bcrypt.CompareHashAndPassword([]byte(u.Password), []byte(password)); err != nil {
		time.Sleep(failureDelay)
		return "", errAuthWrongPassword
	}

	now := time.Now()
	_ = s.db.Model(&u).Updates(map[string]interface{}{
		"last_login_time": &now,
		"last_login_ip":   ip,
	}).Error

	token, _, err := sessionpkg.Issue(s.db, u.ID, ip, ua, sessionpkg.DefaultTTL)
	return token, err
}

// Register creates the single owner account together with its organization
// and profile row. The profile starts private until the owner publishes it.
func (s *Service) Register(dto *RegisterDTO) (*models.UserModel, *models.ProfileModel, error) {
	var count int64
	s.db.Model(&models.UserModel{}).Count(&count)
	if count > 0 {
		return nil, nil, errOwnerAlreadyRegistered
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(dto.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, nil, err
	}

	u := models.UserModel{Username: dto.Username, Password: string(hash), Mail: dto.Mail}
	p := models.ProfileModel{
		OrganizationID: uuid.New().String(),
		Username:       dto.Username,
		DisplayName:    dto.DisplayName,
	}
	if p.DisplayName == "" {
		p.DisplayName = dto.Username
	}

	err = s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&u).Error; err != nil {
			return err
		}
		p.UserID = u.ID
		return tx.Create(&p).Error
	})
	if err != nil {
		return nil, nil, err
	}
	return &u, &p, nil
}

func (s *Service) Logout(userID, sessionID string) error {
	if sessionID == "" {
		return nil
	}
	err := sessionpkg.Revoke(s.db, userID, sessionID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil
	}
	return err
}
