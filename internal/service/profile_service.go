package service

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/Anmol-Srv/blog-api/internal/model"
	"github.com/Anmol-Srv/blog-api/internal/repository"
)

type ProfileService interface {
	Create(ctx context.Context, bio string, userID uint) (*model.Profile, error)
	GetByUserID(ctx context.Context, userID uint) (*model.Profile, error)
	Update(ctx context.Context, userID uint, bio string) (*model.Profile, error)
	Delete(ctx context.Context, userID uint) error
}

type profileService struct {
	profiles repository.ProfileRepository
	users    repository.UserRepository
}

func NewProfileService(profiles repository.ProfileRepository, users repository.UserRepository) ProfileService {
	return &profileService{profiles: profiles, users: users}
}

func (s *profileService) Create(ctx context.Context, bio string, userID uint) (*model.Profile, error) {
	if _, err := s.users.FindByID(ctx, userID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}

	// 1:1 约束在应用层先行检查，唯一索引只是并发兜底
	exists, err := s.profiles.ExistsForUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, ErrProfileExists
	}

	p := &model.Profile{Bio: bio, UserID: userID}
	if err := s.profiles.Create(ctx, p); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrProfileExists
		}
		return nil, err
	}
	return p, nil
}

func (s *profileService) GetByUserID(ctx context.Context, userID uint) (*model.Profile, error) {
	p, err := s.profiles.FindByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProfileNotFound
		}
		return nil, err
	}
	return p, nil
}

func (s *profileService) Update(ctx context.Context, userID uint, bio string) (*model.Profile, error) {
	p, err := s.profiles.FindByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProfileNotFound
		}
		return nil, err
	}
	p.Bio = bio
	p.User = nil // 不随更新回写关联
	if err := s.profiles.Save(ctx, p); err != nil {
		return nil, err
	}
	return p, nil
}

func (s *profileService) Delete(ctx context.Context, userID uint) error {
	ok, err := s.profiles.DeleteByUserID(ctx, userID)
	if err != nil {
		return err
	}
	if !ok {
		return ErrProfileNotFound
	}
	return nil
}
