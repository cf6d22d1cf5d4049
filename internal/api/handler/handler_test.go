package handler_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/Anmol-Srv/blog-api/internal/api/handler"
	"github.com/Anmol-Srv/blog-api/internal/api/router"
	"github.com/Anmol-Srv/blog-api/internal/model"
	"github.com/Anmol-Srv/blog-api/internal/repository"
	"github.com/Anmol-Srv/blog-api/internal/service"
)

// newServer 完整路由 + 内存库，覆盖从 HTTP 到存储的整条链路
func newServer(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger:         gormlogger.Default.LogMode(gormlogger.Silent),
		TranslateError: true,
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&model.User{}, &model.Profile{}, &model.Post{}, &model.Tag{}, &model.PostTag{},
	))

	userRepo := repository.NewUserRepository(db)
	profileRepo := repository.NewProfileRepository(db)
	postRepo := repository.NewPostRepository(db)
	tagRepo := repository.NewTagRepository(db)

	h := handler.New(
		service.NewUserService(userRepo),
		service.NewProfileService(profileRepo, userRepo),
		service.NewPostService(postRepo, tagRepo),
		service.NewTagService(tagRepo),
	)

	r := gin.New()
	router.RegisterRoutes(r, h)
	return r
}

func do(t *testing.T, r *gin.Engine, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decode[T any](t *testing.T, w *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &v))
	return v
}

func TestEndToEnd_UserPostWithTags(t *testing.T) {
	r := newServer(t)

	w := do(t, r, http.MethodPost, "/users", gin.H{
		"firstName": "Alice", "lastName": "Johnson", "email": "alice@example.com",
	})
	require.Equal(t, http.StatusCreated, w.Code)
	alice := decode[model.User](t, w)
	require.NotZero(t, alice.ID)

	w = do(t, r, http.MethodPost, "/posts", gin.H{
		"title":   "Alice's first post",
		"content": "Alice discusses web development tips.",
		"userId":  alice.ID,
		"status":  "active",
		"tags":    []string{"Technology", "Programming"},
	})
	require.Equal(t, http.StatusCreated, w.Code)
	created := decode[model.Post](t, w)
	require.Len(t, created.Tags, 2)

	w = do(t, r, http.MethodGet, "/posts/1", nil)
	require.Equal(t, http.StatusOK, w.Code)
	got := decode[model.Post](t, w)
	require.Len(t, got.Tags, 2)
	names := []string{got.Tags[0].Name, got.Tags[1].Name}
	assert.ElementsMatch(t, []string{"Technology", "Programming"}, names)
	require.NotNil(t, got.User)
	assert.Equal(t, "alice@example.com", got.User.Email)
}

func TestCreateUser_InvalidEmail(t *testing.T) {
	r := newServer(t)

	w := do(t, r, http.MethodPost, "/users", gin.H{
		"firstName": "Alice", "lastName": "Johnson", "email": "not-an-email",
	})
	require.Equal(t, http.StatusBadRequest, w.Code)
	body := decode[map[string]string](t, w)
	assert.Contains(t, body, "error")
}

func TestCreatePost_MissingUserIs400(t *testing.T) {
	r := newServer(t)

	w := do(t, r, http.MethodPost, "/posts", gin.H{
		"title": "Ghost Post", "content": "boo", "userId": 999,
	})
	require.Equal(t, http.StatusBadRequest, w.Code)
	body := decode[map[string]string](t, w)
	assert.Equal(t, "User not found", body["error"])
}

func TestUpdatePost_ShortTitle(t *testing.T) {
	r := newServer(t)

	do(t, r, http.MethodPost, "/users", gin.H{
		"firstName": "Alice", "lastName": "Johnson", "email": "alice@example.com",
	})
	w := do(t, r, http.MethodPost, "/posts", gin.H{
		"title": "Original Title", "content": "hello", "userId": 1,
	})
	require.Equal(t, http.StatusCreated, w.Code)

	w = do(t, r, http.MethodPut, "/posts/1", gin.H{"title": "abc"})
	require.Equal(t, http.StatusBadRequest, w.Code)

	w = do(t, r, http.MethodGet, "/posts/1", nil)
	got := decode[model.Post](t, w)
	assert.Equal(t, "Original Title", got.Title)
}

func TestListPosts_DraftPaged(t *testing.T) {
	r := newServer(t)

	do(t, r, http.MethodPost, "/users", gin.H{
		"firstName": "Alice", "lastName": "Johnson", "email": "alice@example.com",
	})
	for _, p := range []gin.H{
		{"title": "draft one", "content": "c", "userId": 1, "status": "draft"},
		{"title": "draft two", "content": "c", "userId": 1, "status": "draft"},
		{"title": "draft three", "content": "c", "userId": 1, "status": "draft"},
		{"title": "active one", "content": "c", "userId": 1, "status": "active"},
	} {
		w := do(t, r, http.MethodPost, "/posts", p)
		require.Equal(t, http.StatusCreated, w.Code)
	}

	w := do(t, r, http.MethodGet, "/posts?page=1&limit=2&status=draft", nil)
	require.Equal(t, http.StatusOK, w.Code)
	page := decode[service.PostPage](t, w)
	assert.Equal(t, 1, page.CurrentPage)
	assert.Equal(t, 2, page.TotalPages)
	require.Len(t, page.Posts, 2)
	for _, p := range page.Posts {
		assert.Equal(t, model.PostStatusDraft, p.Status)
	}
}

func TestListPosts_NonNumericPagingFallsBack(t *testing.T) {
	r := newServer(t)

	do(t, r, http.MethodPost, "/users", gin.H{
		"firstName": "Alice", "lastName": "Johnson", "email": "alice@example.com",
	})
	w := do(t, r, http.MethodPost, "/posts", gin.H{
		"title": "active one", "content": "c", "userId": 1, "status": "active",
	})
	require.Equal(t, http.StatusCreated, w.Code)

	// 非数字的 page/limit 按默认值处理
	w = do(t, r, http.MethodGet, "/posts?page=abc&limit=xyz", nil)
	require.Equal(t, http.StatusOK, w.Code)
	page := decode[service.PostPage](t, w)
	assert.Equal(t, 1, page.CurrentPage)
	assert.Equal(t, 1, page.TotalPages)
	require.Len(t, page.Posts, 1)
}

func TestAttachTagTwice_PostHasItOnce(t *testing.T) {
	r := newServer(t)

	do(t, r, http.MethodPost, "/users", gin.H{
		"firstName": "Alice", "lastName": "Johnson", "email": "alice@example.com",
	})
	do(t, r, http.MethodPost, "/posts", gin.H{
		"title": "First Post", "content": "hello", "userId": 1,
	})
	w := do(t, r, http.MethodPost, "/tags", gin.H{"name": "Go"})
	require.Equal(t, http.StatusCreated, w.Code)
	tag := decode[model.Tag](t, w)

	for i := 0; i < 2; i++ {
		w = do(t, r, http.MethodPost, "/posts/1/tags", gin.H{"tagId": tag.ID})
		require.Equal(t, http.StatusOK, w.Code)
	}

	w = do(t, r, http.MethodGet, "/posts/1", nil)
	got := decode[model.Post](t, w)
	assert.Len(t, got.Tags, 1)

	// 摘除后再取，标签为空
	w = do(t, r, http.MethodDelete, "/posts/1/tags", gin.H{"tagId": tag.ID})
	require.Equal(t, http.StatusOK, w.Code)
	w = do(t, r, http.MethodGet, "/posts/1", nil)
	got = decode[model.Post](t, w)
	assert.Len(t, got.Tags, 0)
}

func TestAttachTag_MissingSide(t *testing.T) {
	r := newServer(t)

	w := do(t, r, http.MethodPost, "/posts/1/tags", gin.H{"tagId": 1})
	require.Equal(t, http.StatusNotFound, w.Code)
	body := decode[map[string]string](t, w)
	assert.Equal(t, "Post or Tag not found", body["message"])
}

func TestDeleteProfile_Missing(t *testing.T) {
	r := newServer(t)

	w := do(t, r, http.MethodDelete, "/profiles/999", nil)
	require.Equal(t, http.StatusNotFound, w.Code)
	body := decode[map[string]string](t, w)
	assert.Equal(t, "Profile not found", body["message"])
}

func TestProfileLifecycle(t *testing.T) {
	r := newServer(t)

	do(t, r, http.MethodPost, "/users", gin.H{
		"firstName": "Alice", "lastName": "Johnson", "email": "alice@example.com",
	})

	w := do(t, r, http.MethodPost, "/profiles", gin.H{"bio": "web developer", "userId": 1})
	require.Equal(t, http.StatusCreated, w.Code)

	// 同一用户第二份资料被拒
	w = do(t, r, http.MethodPost, "/profiles", gin.H{"bio": "again", "userId": 1})
	require.Equal(t, http.StatusConflict, w.Code)

	w = do(t, r, http.MethodPut, "/profiles/1", gin.H{"bio": "updated"})
	require.Equal(t, http.StatusOK, w.Code)
	p := decode[model.Profile](t, w)
	assert.Equal(t, "updated", p.Bio)

	w = do(t, r, http.MethodDelete, "/profiles/1", nil)
	require.Equal(t, http.StatusNoContent, w.Code)
	w = do(t, r, http.MethodGet, "/profiles/1", nil)
	require.Equal(t, http.StatusNotFound, w.Code)
}

func TestDeletePost(t *testing.T) {
	r := newServer(t)

	do(t, r, http.MethodPost, "/users", gin.H{
		"firstName": "Alice", "lastName": "Johnson", "email": "alice@example.com",
	})
	do(t, r, http.MethodPost, "/posts", gin.H{
		"title": "First Post", "content": "hello", "userId": 1,
	})

	w := do(t, r, http.MethodDelete, "/posts/1", nil)
	require.Equal(t, http.StatusNoContent, w.Code)
	w = do(t, r, http.MethodDelete, "/posts/1", nil)
	require.Equal(t, http.StatusNotFound, w.Code)
}
