package repository

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/Anmol-Srv/blog-api/internal/model"
)

func newPost(userID uint, title, status string) *model.Post {
	return &model.Post{
		Title:   title,
		Content: "content of " + title,
		UserID:  userID,
		Status:  status,
		Slug:    model.NewSlug(title),
	}
}

func TestCreateWithTags_NovelNames(t *testing.T) {
	db := setupDB(t)
	repo := NewPostRepository(db)
	ctx := context.Background()
	u := createUser(t, db, "Alice", "Johnson", "alice@example.com")

	p := newPost(u.ID, "First Post", model.PostStatusDraft)
	require.NoError(t, repo.CreateWithTags(ctx, p, []string{"Technology", "Programming", "Web Development"}))

	require.NotZero(t, p.ID)
	require.Len(t, p.Tags, 3)
	// 顺序与请求一致
	assert.Equal(t, "Technology", p.Tags[0].Name)
	assert.Equal(t, "Programming", p.Tags[1].Name)
	assert.Equal(t, "Web Development", p.Tags[2].Name)

	assert.EqualValues(t, 3, countRows(t, db, &model.Tag{}))
	assert.EqualValues(t, 3, countRows(t, db, &model.PostTag{}))
}

func TestCreateWithTags_DeduplicatesRepeatedNames(t *testing.T) {
	db := setupDB(t)
	repo := NewPostRepository(db)
	ctx := context.Background()
	u := createUser(t, db, "Alice", "Johnson", "alice@example.com")

	p := newPost(u.ID, "First Post", model.PostStatusDraft)
	require.NoError(t, repo.CreateWithTags(ctx, p, []string{"Go", "Rust", "Go"}))

	assert.Len(t, p.Tags, 2)
	assert.EqualValues(t, 2, countRows(t, db, &model.Tag{}))
	assert.EqualValues(t, 2, countRows(t, db, &model.PostTag{}))
}

func TestCreateWithTags_ReusesExistingTag(t *testing.T) {
	db := setupDB(t)
	repo := NewPostRepository(db)
	ctx := context.Background()
	u := createUser(t, db, "Alice", "Johnson", "alice@example.com")
	require.NoError(t, db.Create(&model.Tag{Name: "Go"}).Error)

	p := newPost(u.ID, "First Post", model.PostStatusDraft)
	require.NoError(t, repo.CreateWithTags(ctx, p, []string{"Go", "Rust"}))

	// Go 被复用而不是重建
	assert.EqualValues(t, 2, countRows(t, db, &model.Tag{}))
	assert.EqualValues(t, 2, countRows(t, db, &model.PostTag{}))
}

func TestCreateWithTags_EmptyNameMatchesExactly(t *testing.T) {
	db := setupDB(t)
	repo := NewPostRepository(db)
	ctx := context.Background()
	u := createUser(t, db, "Alice", "Johnson", "alice@example.com")
	// 库里已有别的标签，空名不能误匹配到它
	require.NoError(t, db.Create(&model.Tag{Name: "Unrelated"}).Error)

	p := newPost(u.ID, "First Post", model.PostStatusDraft)
	require.NoError(t, repo.CreateWithTags(ctx, p, []string{""}))

	require.Len(t, p.Tags, 1)
	assert.Equal(t, "", p.Tags[0].Name)
	assert.NotEqual(t, "Unrelated", p.Tags[0].Name)
	assert.EqualValues(t, 2, countRows(t, db, &model.Tag{}))
	assert.EqualValues(t, 1, countRows(t, db, &model.PostTag{}))
}

func TestCreateWithTags_MissingAuthorRollsBack(t *testing.T) {
	db := setupDB(t)
	repo := NewPostRepository(db)
	ctx := context.Background()

	p := newPost(999, "Ghost Post", model.PostStatusDraft)
	err := repo.CreateWithTags(ctx, p, []string{"Technology"})
	require.ErrorIs(t, err, gorm.ErrRecordNotFound)

	// 无任何残留写入
	assert.EqualValues(t, 0, countRows(t, db, &model.Post{}))
	assert.EqualValues(t, 0, countRows(t, db, &model.Tag{}))
	assert.EqualValues(t, 0, countRows(t, db, &model.PostTag{}))
}

func TestFindPage_StatusFilterAndOrder(t *testing.T) {
	db := setupDB(t)
	repo := NewPostRepository(db)
	ctx := context.Background()
	u := createUser(t, db, "Alice", "Johnson", "alice@example.com")

	base := time.Date(2024, 10, 1, 12, 0, 0, 0, time.UTC)
	mk := func(title, status string, offsetMin int) {
		p := newPost(u.ID, title, status)
		p.CreatedAt = base.Add(time.Duration(offsetMin) * time.Minute)
		require.NoError(t, db.Create(p).Error)
	}
	mk("draft one", model.PostStatusDraft, 0)
	mk("active one", model.PostStatusActive, 1)
	mk("draft two", model.PostStatusDraft, 2)
	mk("draft three", model.PostStatusDraft, 3)

	posts, total, err := repo.FindPage(ctx, model.PostStatusDraft, 0, 2)
	require.NoError(t, err)
	assert.EqualValues(t, 3, total)
	require.Len(t, posts, 2)
	// 新的在前
	assert.Equal(t, "draft three", posts[0].Title)
	assert.Equal(t, "draft two", posts[1].Title)
	for _, p := range posts {
		assert.Equal(t, model.PostStatusDraft, p.Status)
	}

	// 第二页
	posts, _, err = repo.FindPage(ctx, model.PostStatusDraft, 2, 2)
	require.NoError(t, err)
	require.Len(t, posts, 1)
	assert.Equal(t, "draft one", posts[0].Title)
}

func TestAttachTag_Idempotent(t *testing.T) {
	db := setupDB(t)
	repo := NewPostRepository(db)
	ctx := context.Background()
	u := createUser(t, db, "Alice", "Johnson", "alice@example.com")

	p := newPost(u.ID, "First Post", model.PostStatusActive)
	require.NoError(t, db.Create(p).Error)
	tag := model.Tag{Name: "Go"}
	require.NoError(t, db.Create(&tag).Error)

	require.NoError(t, repo.AttachTag(ctx, p.ID, tag.ID))
	require.NoError(t, repo.AttachTag(ctx, p.ID, tag.ID))

	assert.EqualValues(t, 1, countRows(t, db, &model.PostTag{}))
}

func TestDetachTag(t *testing.T) {
	db := setupDB(t)
	repo := NewPostRepository(db)
	ctx := context.Background()
	u := createUser(t, db, "Alice", "Johnson", "alice@example.com")

	p := newPost(u.ID, "First Post", model.PostStatusActive)
	require.NoError(t, db.Create(p).Error)
	tag := model.Tag{Name: "Go"}
	require.NoError(t, db.Create(&tag).Error)
	require.NoError(t, repo.AttachTag(ctx, p.ID, tag.ID))

	require.NoError(t, repo.DetachTag(ctx, p.ID, tag.ID))
	assert.EqualValues(t, 0, countRows(t, db, &model.PostTag{}))

	// 再摘一次也不报错，集合语义
	require.NoError(t, repo.DetachTag(ctx, p.ID, tag.ID))
}

func TestFindByID_PreloadsUserAndTags(t *testing.T) {
	db := setupDB(t)
	repo := NewPostRepository(db)
	ctx := context.Background()
	u := createUser(t, db, "Alice", "Johnson", "alice@example.com")

	p := newPost(u.ID, "First Post", model.PostStatusActive)
	require.NoError(t, repo.CreateWithTags(ctx, p, []string{"Go"}))

	got, err := repo.FindByID(ctx, p.ID)
	require.NoError(t, err)
	require.NotNil(t, got.User)
	assert.Equal(t, "alice@example.com", got.User.Email)
	require.Len(t, got.Tags, 1)
	assert.Equal(t, "Go", got.Tags[0].Name)
}
