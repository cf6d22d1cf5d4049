package service

import (
	"context"
	"errors"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/Anmol-Srv/blog-api/internal/model"
	"github.com/Anmol-Srv/blog-api/internal/repository"
	"github.com/Anmol-Srv/blog-api/pkg/logger"
)

type UserService interface {
	Create(ctx context.Context, firstName, lastName, email string) (*model.User, error)
	Get(ctx context.Context, id uint) (*model.User, error)
	List(ctx context.Context) ([]model.User, error)
	Update(ctx context.Context, id uint, firstName, lastName, email *string) (*model.User, error)
	Delete(ctx context.Context, id uint) error
}

type userService struct {
	users repository.UserRepository
}

func NewUserService(users repository.UserRepository) UserService {
	return &userService{users: users}
}

func (s *userService) Create(ctx context.Context, firstName, lastName, email string) (*model.User, error) {
	u := &model.User{FirstName: firstName, LastName: lastName, Email: email}
	if err := s.users.Create(ctx, u); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrEmailTaken
		}
		return nil, err
	}
	// 注册审计日志：提交成功后显式记录，不走存储层回调
	logger.Info("new user registered",
		zap.Uint("id", u.ID),
		zap.String("name", u.FirstName+" "+u.LastName),
		zap.String("email", u.Email),
	)
	return u, nil
}

func (s *userService) Get(ctx context.Context, id uint) (*model.User, error) {
	u, err := s.users.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return u, nil
}

func (s *userService) List(ctx context.Context) ([]model.User, error) {
	return s.users.FindAll(ctx)
}

func (s *userService) Update(ctx context.Context, id uint, firstName, lastName, email *string) (*model.User, error) {
	u, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if firstName != nil {
		u.FirstName = *firstName
	}
	if lastName != nil {
		u.LastName = *lastName
	}
	if email != nil {
		u.Email = *email
	}
	if err := s.users.Save(ctx, u); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrEmailTaken
		}
		return nil, err
	}
	return u, nil
}

func (s *userService) Delete(ctx context.Context, id uint) error {
	ok, err := s.users.Delete(ctx, id)
	if err != nil {
		return err
	}
	if !ok {
		return ErrUserNotFound
	}
	return nil
}
