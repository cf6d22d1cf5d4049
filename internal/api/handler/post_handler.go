package handler

import (
	"errors"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/Anmol-Srv/blog-api/internal/service"
	"github.com/Anmol-Srv/blog-api/pkg/response"
)

type createPostRequest struct {
	Title   string   `json:"title" binding:"required"`
	Content string   `json:"content" binding:"required"`
	UserID  uint     `json:"userId" binding:"required"`
	Status  string   `json:"status" binding:"omitempty,oneof=active draft archived"`
	Tags    []string `json:"tags"`
}

type updatePostRequest struct {
	Title       *string    `json:"title"`
	Content     *string    `json:"content"`
	Status      *string    `json:"status" binding:"omitempty,oneof=active draft archived"`
	PublishedAt *time.Time `json:"publishedAt"`
}

type tagIDRequest struct {
	TagID uint `json:"tagId" binding:"required"`
}

// CreatePost 创建文章，可同时携带标签名列表，整体在一个事务内落库
// @Summary 创建文章
// @Tags 文章
// @Accept json
// @Produce json
// @Param request body createPostRequest true "文章信息"
// @Success 201 {object} model.Post
// @Failure 400 {object} map[string]string
// @Router /posts [post]
func (h *Handler) CreatePost(c *gin.Context) {
	var req createPostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	p, err := h.posts.Create(c.Request.Context(), req.Title, req.Content, req.UserID, req.Status, req.Tags)
	if err != nil {
		// 与源 API 一致：创建失败统一 400，含作者不存在
		if errors.Is(err, service.ErrUserNotFound) {
			response.BadRequest(c, "User not found")
			return
		}
		h.fail(c, err)
		return
	}
	response.Created(c, p)
}

// ListPosts 分页列出文章，默认 page=1 limit=10 status=active
// @Summary 文章列表
// @Tags 文章
// @Param page query int false "页码" default(1)
// @Param limit query int false "每页数量" default(10)
// @Param status query string false "状态过滤" Enums(active, draft, archived) default(active)
// @Produce json
// @Success 200 {object} service.PostPage
// @Failure 400 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Router /posts [get]
func (h *Handler) ListPosts(c *gin.Context) {
	page := queryInt(c, "page", 1)
	limit := queryInt(c, "limit", 10)
	status := c.DefaultQuery("status", "")

	result, err := h.posts.List(c.Request.Context(), page, limit, status)
	if err != nil {
		h.fail(c, err)
		return
	}
	response.OK(c, result)
}

// GetPost 按 ID 查询文章，带作者和标签
// @Summary 查询文章
// @Tags 文章
// @Param id path int true "文章 ID"
// @Produce json
// @Success 200 {object} model.Post
// @Failure 404 {object} map[string]string
// @Router /posts/{id} [get]
func (h *Handler) GetPost(c *gin.Context) {
	id, ok := parseUintParam(c, "id")
	if !ok {
		return
	}
	p, err := h.posts.Get(c.Request.Context(), id)
	if err != nil {
		h.fail(c, err)
		return
	}
	response.OK(c, p)
}

// UpdatePost 部分更新文章；新标题不足 5 字符时拒绝且不落库
// @Summary 更新文章
// @Tags 文章
// @Accept json
// @Produce json
// @Param id path int true "文章 ID"
// @Param request body updatePostRequest true "变更字段"
// @Success 200 {object} model.Post
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /posts/{id} [put]
func (h *Handler) UpdatePost(c *gin.Context) {
	id, ok := parseUintParam(c, "id")
	if !ok {
		return
	}
	var req updatePostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	p, err := h.posts.Update(c.Request.Context(), id, service.PostUpdate{
		Title:       req.Title,
		Content:     req.Content,
		Status:      req.Status,
		PublishedAt: req.PublishedAt,
	})
	if err != nil {
		h.fail(c, err)
		return
	}
	response.OK(c, p)
}

// DeletePost 删除文章
// @Summary 删除文章
// @Tags 文章
// @Param id path int true "文章 ID"
// @Success 204
// @Failure 404 {object} map[string]string
// @Router /posts/{id} [delete]
func (h *Handler) DeletePost(c *gin.Context) {
	id, ok := parseUintParam(c, "id")
	if !ok {
		return
	}
	if err := h.posts.Delete(c.Request.Context(), id); err != nil {
		h.fail(c, err)
		return
	}
	response.NoContent(c)
}

// AttachTag 给文章挂标签，重复挂载等价于挂一次
// @Summary 文章加标签
// @Tags 文章
// @Accept json
// @Produce json
// @Param id path int true "文章 ID"
// @Param request body tagIDRequest true "标签 ID"
// @Success 200 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /posts/{id}/tags [post]
func (h *Handler) AttachTag(c *gin.Context) {
	postID, ok := parseUintParam(c, "id")
	if !ok {
		return
	}
	var req tagIDRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	if err := h.posts.AttachTag(c.Request.Context(), postID, req.TagID); err != nil {
		if errors.Is(err, service.ErrPostNotFound) || errors.Is(err, service.ErrTagNotFound) {
			response.NotFound(c, "Post or Tag not found")
			return
		}
		h.fail(c, err)
		return
	}
	response.Message(c, "Tag added to post successfully")
}

// DetachTag 摘除文章上的标签
// @Summary 文章去标签
// @Tags 文章
// @Accept json
// @Produce json
// @Param id path int true "文章 ID"
// @Param request body tagIDRequest true "标签 ID"
// @Success 200 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /posts/{id}/tags [delete]
func (h *Handler) DetachTag(c *gin.Context) {
	postID, ok := parseUintParam(c, "id")
	if !ok {
		return
	}
	var req tagIDRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	if err := h.posts.DetachTag(c.Request.Context(), postID, req.TagID); err != nil {
		if errors.Is(err, service.ErrPostNotFound) || errors.Is(err, service.ErrTagNotFound) {
			response.NotFound(c, "Post or Tag not found")
			return
		}
		h.fail(c, err)
		return
	}
	response.Message(c, "Tag removed from post successfully")
}
