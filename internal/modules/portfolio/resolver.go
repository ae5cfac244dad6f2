package portfolio

import (
	"context"
	"errors"
	"fmt"

	"github.com/folio-space/core/internal/models"
	"gorm.io/gorm"
)

// Resolver decides whose portfolio a request is looking at.
type Resolver struct {
	db *gorm.DB
}

func NewResolver(db *gorm.DB) *Resolver { return &Resolver{db: db} }

// Resolve picks the profile for a request, in strict precedence order:
//
//  1. An explicit username wins. It must match a public profile; a
//     private or unknown username is ErrProfileNotFound even for its
//     own authenticated owner, who is expected to use the home route.
//  2. No username but an authenticated viewer: the viewer's own profile,
//     public or not.
//  3. Anonymous home: the newest public profile on the instance.
func (r *Resolver) Resolve(ctx context.Context, username, viewerUserID string) (*models.ProfileModel, error) {
	switch {
	case username != "":
		return r.byUsername(ctx, username)
	case viewerUserID != "":
		return r.own(ctx, viewerUserID)
	default:
		return r.newestPublic(ctx)
	}
}

func (r *Resolver) byUsername(ctx context.Context, username string) (*models.ProfileModel, error) {
	var p models.ProfileModel
	err := r.db.WithContext(ctx).
		Where("username = ? AND is_public = ?", username, true).
		First(&p).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProfileNotFound
		}
		return nil, fmt.Errorf("resolve by username: %w", err)
	}
	return &p, nil
}

func (r *Resolver) own(ctx context.Context, userID string) (*models.ProfileModel, error) {
	var p models.ProfileModel
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		First(&p).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProfileNotFound
		}
		return nil, fmt.Errorf("resolve own profile: %w", err)
	}
	return &p, nil
}

func (r *Resolver) newestPublic(ctx context.Context) (*models.ProfileModel, error) {
	var p models.ProfileModel
	err := r.db.WithContext(ctx).
		Where("is_public = ?", true).
		Order("created_at DESC").
		First(&p).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: %w", ErrProfileNotFound, ErrNoPublicProfiles)
		}
		return nil, fmt.Errorf("resolve newest public profile: %w", err)
	}
	return &p, nil
}
