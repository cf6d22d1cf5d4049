package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/Anmol-Srv/blog-api/internal/model"
)

type ProfileRepository interface {
	Create(ctx context.Context, profile *model.Profile) error
	FindByUserID(ctx context.Context, userID uint) (*model.Profile, error)
	ExistsForUser(ctx context.Context, userID uint) (bool, error)
	Save(ctx context.Context, profile *model.Profile) error
	DeleteByUserID(ctx context.Context, userID uint) (bool, error)
}

type profileRepository struct {
	db *gorm.DB
}

func NewProfileRepository(db *gorm.DB) ProfileRepository { return &profileRepository{db: db} }

func (r *profileRepository) Create(ctx context.Context, profile *model.Profile) error {
	return r.db.WithContext(ctx).Create(profile).Error
}

func (r *profileRepository) FindByUserID(ctx context.Context, userID uint) (*model.Profile, error) {
	var p model.Profile
	err := r.db.WithContext(ctx).
		Preload("User").
		Where("user_id = ?", userID).
		First(&p).Error
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *profileRepository) ExistsForUser(ctx context.Context, userID uint) (bool, error) {
	var cnt int64
	if err := r.db.WithContext(ctx).
		Model(&model.Profile{}).
		Where("user_id = ?", userID).
		Count(&cnt).Error; err != nil {
		return false, err
	}
	return cnt > 0, nil
}

func (r *profileRepository) Save(ctx context.Context, profile *model.Profile) error {
	return r.db.WithContext(ctx).Save(profile).Error
}

func (r *profileRepository) DeleteByUserID(ctx context.Context, userID uint) (bool, error) {
	res := r.db.WithContext(ctx).Where("user_id = ?", userID).Delete(&model.Profile{})
	return res.RowsAffected > 0, res.Error
}
