package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/Anmol-Srv/blog-api/internal/model"
)

type PostRepository interface {
	// CreateWithTags 在单个事务内完成：校验作者存在、写入文章、
	// 逐个 find-or-create 标签、写入关联行。任一步失败整体回滚。
	CreateWithTags(ctx context.Context, post *model.Post, tagNames []string) error
	FindByID(ctx context.Context, id uint) (*model.Post, error)
	FindPage(ctx context.Context, status string, offset, limit int) ([]model.Post, int64, error)
	Save(ctx context.Context, post *model.Post) error
	Delete(ctx context.Context, id uint) (bool, error)
	AttachTag(ctx context.Context, postID, tagID uint) error
	DetachTag(ctx context.Context, postID, tagID uint) error
}

type postRepository struct {
	db *gorm.DB
}

func NewPostRepository(db *gorm.DB) PostRepository { return &postRepository{db: db} }

func (r *postRepository) CreateWithTags(ctx context.Context, post *model.Post, tagNames []string) error {
	var resolved []model.Tag

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var author model.User
		if err := tx.First(&author, post.UserID).Error; err != nil {
			return fmt.Errorf("author %d: %w", post.UserID, err)
		}

		if err := tx.Create(post).Error; err != nil {
			return err
		}

		seen := make(map[uint]bool, len(tagNames))
		for _, name := range tagNames {
			var tag model.Tag
			// map 条件：按名字精确匹配，空串也是合法标签名，
			// struct 条件会把零值字段丢掉导致匹配到任意行
			if err := tx.Where(map[string]any{"name": name}).FirstOrCreate(&tag).Error; err != nil {
				return fmt.Errorf("tag %q: %w", name, err)
			}
			// 同请求内重复的标签名只关联一次
			if err := tx.Clauses(clause.OnConflict{DoNothing: true}).
				Create(&model.PostTag{PostID: post.ID, TagID: tag.ID}).Error; err != nil {
				return err
			}
			if !seen[tag.ID] {
				seen[tag.ID] = true
				resolved = append(resolved, tag)
			}
		}
		return nil
	})
	if err != nil {
		return err
	}

	// 事务提交之后才把结果暴露给调用方
	post.Tags = resolved
	return nil
}

func (r *postRepository) FindByID(ctx context.Context, id uint) (*model.Post, error) {
	var p model.Post
	err := r.db.WithContext(ctx).
		Preload("User").
		Preload("Tags").
		First(&p, id).Error
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *postRepository) FindPage(ctx context.Context, status string, offset, limit int) ([]model.Post, int64, error) {
	var total int64
	if err := r.db.WithContext(ctx).
		Model(&model.Post{}).
		Where("status = ?", status).
		Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var posts []model.Post
	err := r.db.WithContext(ctx).
		Preload("User").
		Preload("Tags").
		Where("status = ?", status).
		Order("created_at DESC, id DESC").
		Offset(offset).
		Limit(limit).
		Find(&posts).Error
	return posts, total, err
}

func (r *postRepository) Save(ctx context.Context, post *model.Post) error {
	return r.db.WithContext(ctx).Save(post).Error
}

func (r *postRepository) Delete(ctx context.Context, id uint) (bool, error) {
	res := r.db.WithContext(ctx).Delete(&model.Post{}, id)
	return res.RowsAffected > 0, res.Error
}

// AttachTag 幂等：复合主键冲突时不报错，也不产生第二行
func (r *postRepository) AttachTag(ctx context.Context, postID, tagID uint) error {
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(&model.PostTag{PostID: postID, TagID: tagID}).Error
}

func (r *postRepository) DetachTag(ctx context.Context, postID, tagID uint) error {
	return r.db.WithContext(ctx).
		Where("post_id = ? AND tag_id = ?", postID, tagID).
		Delete(&model.PostTag{}).Error
}
