package service

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/Anmol-Srv/blog-api/internal/model"
	"github.com/Anmol-Srv/blog-api/internal/repository"
)

type TagService interface {
	Create(ctx context.Context, name string) (*model.Tag, error)
	List(ctx context.Context) ([]model.Tag, error)
	Update(ctx context.Context, id uint, name string) (*model.Tag, error)
	Delete(ctx context.Context, id uint) error
}

type tagService struct {
	tags repository.TagRepository
}

func NewTagService(tags repository.TagRepository) TagService {
	return &tagService{tags: tags}
}

func (s *tagService) Create(ctx context.Context, name string) (*model.Tag, error) {
	t := &model.Tag{Name: name}
	if err := s.tags.Create(ctx, t); err != nil {
		return nil, err
	}
	return t, nil
}

func (s *tagService) List(ctx context.Context) ([]model.Tag, error) {
	return s.tags.FindAll(ctx)
}

func (s *tagService) Update(ctx context.Context, id uint, name string) (*model.Tag, error) {
	t, err := s.tags.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrTagNotFound
		}
		return nil, err
	}
	t.Name = name
	if err := s.tags.Save(ctx, t); err != nil {
		return nil, err
	}
	return t, nil
}

func (s *tagService) Delete(ctx context.Context, id uint) error {
	ok, err := s.tags.Delete(ctx, id)
	if err != nil {
		return err
	}
	if !ok {
		return ErrTagNotFound
	}
	return nil
}
