package service

import (
	"context"
	"errors"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/Anmol-Srv/blog-api/internal/model"
	"github.com/Anmol-Srv/blog-api/internal/repository"
	"github.com/Anmol-Srv/blog-api/pkg/logger"
)

// 更新时的标题最短长度。创建路径沿用源系统行为，不做长度校验。
const minTitleLen = 5

// PostPage 分页结果
type PostPage struct {
	Posts       []model.Post `json:"posts"`
	TotalPages  int          `json:"totalPages"`
	CurrentPage int          `json:"currentPage"`
}

// PostUpdate 部分更新，nil 字段保持不变
type PostUpdate struct {
	Title       *string
	Content     *string
	Status      *string
	PublishedAt *time.Time
}

type PostService interface {
	Create(ctx context.Context, title, content string, userID uint, status string, tagNames []string) (*model.Post, error)
	Get(ctx context.Context, id uint) (*model.Post, error)
	List(ctx context.Context, page, limit int, status string) (*PostPage, error)
	Update(ctx context.Context, id uint, upd PostUpdate) (*model.Post, error)
	Delete(ctx context.Context, id uint) error
	AttachTag(ctx context.Context, postID, tagID uint) error
	DetachTag(ctx context.Context, postID, tagID uint) error
}

type postService struct {
	posts repository.PostRepository
	tags  repository.TagRepository
}

func NewPostService(posts repository.PostRepository, tags repository.TagRepository) PostService {
	return &postService{posts: posts, tags: tags}
}

func (s *postService) Create(ctx context.Context, title, content string, userID uint, status string, tagNames []string) (*model.Post, error) {
	if status == "" {
		status = model.PostStatusDraft
	}
	if !model.ValidPostStatus(status) {
		return nil, ErrInvalidStatus
	}

	p := &model.Post{
		Title:   title,
		Content: content,
		UserID:  userID,
		Status:  status,
		Slug:    model.NewSlug(title),
	}
	if err := s.posts.CreateWithTags(ctx, p, tagNames); err != nil {
		// 事务内只有作者查找会缺记录
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}

	// 提交成功后的显式审计日志，替代存储层 afterCreate 回调
	logger.Info("new post created",
		zap.Uint("id", p.ID),
		zap.Uint("userId", p.UserID),
		zap.String("title", p.Title),
		zap.String("status", p.Status),
		zap.Int("tags", len(p.Tags)),
	)
	return p, nil
}

func (s *postService) Get(ctx context.Context, id uint) (*model.Post, error) {
	p, err := s.posts.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrPostNotFound
		}
		return nil, err
	}
	return p, nil
}

func (s *postService) List(ctx context.Context, page, limit int, status string) (*PostPage, error) {
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 10
	}
	if status == "" {
		status = model.PostStatusActive
	}
	if !model.ValidPostStatus(status) {
		return nil, ErrInvalidStatus
	}

	offset := (page - 1) * limit
	posts, total, err := s.posts.FindPage(ctx, status, offset, limit)
	if err != nil {
		return nil, err
	}

	totalPages := int((total + int64(limit) - 1) / int64(limit))
	return &PostPage{Posts: posts, TotalPages: totalPages, CurrentPage: page}, nil
}

func (s *postService) Update(ctx context.Context, id uint, upd PostUpdate) (*model.Post, error) {
	// 校验先于任何写入
	if upd.Title != nil && len([]rune(*upd.Title)) < minTitleLen {
		return nil, ErrTitleTooShort
	}
	if upd.Status != nil && !model.ValidPostStatus(*upd.Status) {
		return nil, ErrInvalidStatus
	}

	p, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if upd.Title != nil {
		p.Title = *upd.Title
	}
	if upd.Content != nil {
		p.Content = *upd.Content
	}
	if upd.Status != nil {
		p.Status = *upd.Status
	}
	if upd.PublishedAt != nil {
		p.PublishedAt = upd.PublishedAt
	}

	p.User = nil
	tags := p.Tags
	p.Tags = nil // Save 不触达关联表
	if err := s.posts.Save(ctx, p); err != nil {
		return nil, err
	}
	p.Tags = tags
	return p, nil
}

func (s *postService) Delete(ctx context.Context, id uint) error {
	ok, err := s.posts.Delete(ctx, id)
	if err != nil {
		return err
	}
	if !ok {
		return ErrPostNotFound
	}
	return nil
}

func (s *postService) AttachTag(ctx context.Context, postID, tagID uint) error {
	if err := s.checkPair(ctx, postID, tagID); err != nil {
		return err
	}
	return s.posts.AttachTag(ctx, postID, tagID)
}

func (s *postService) DetachTag(ctx context.Context, postID, tagID uint) error {
	if err := s.checkPair(ctx, postID, tagID); err != nil {
		return err
	}
	return s.posts.DetachTag(ctx, postID, tagID)
}

func (s *postService) checkPair(ctx context.Context, postID, tagID uint) error {
	if _, err := s.posts.FindByID(ctx, postID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrPostNotFound
		}
		return err
	}
	if _, err := s.tags.FindByID(ctx, tagID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrTagNotFound
		}
		return err
	}
	return nil
}
