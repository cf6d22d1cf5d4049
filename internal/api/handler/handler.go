package handler

import (
	"errors"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/Anmol-Srv/blog-api/internal/service"
	"github.com/Anmol-Srv/blog-api/pkg/response"
)

// Handler 聚合全部业务 service，路由层只面向它注册方法
type Handler struct {
	users    service.UserService
	profiles service.ProfileService
	posts    service.PostService
	tags     service.TagService
}

func New(users service.UserService, profiles service.ProfileService, posts service.PostService, tags service.TagService) *Handler {
	return &Handler{users: users, profiles: profiles, posts: posts, tags: tags}
}

// parseUintParam 解析路径参数，失败时写出 400 并返回 false
func parseUintParam(c *gin.Context, name string) (uint, bool) {
	v, err := strconv.ParseUint(c.Param(name), 10, 64)
	if err != nil {
		response.BadRequest(c, "invalid "+name)
		return 0, false
	}
	return uint(v), true
}

// queryInt 解析整型查询参数，缺失或非法时退回默认值
func queryInt(c *gin.Context, name string, def int) int {
	v, err := strconv.Atoi(c.DefaultQuery(name, strconv.Itoa(def)))
	if err != nil {
		return def
	}
	return v
}

// fail 把业务错误映射为 HTTP 状态码和响应体
func (h *Handler) fail(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrUserNotFound):
		response.NotFound(c, "User not found")
	case errors.Is(err, service.ErrProfileNotFound):
		response.NotFound(c, "Profile not found")
	case errors.Is(err, service.ErrPostNotFound):
		response.NotFound(c, "Post not found")
	case errors.Is(err, service.ErrTagNotFound):
		response.NotFound(c, "Tag not found")
	case errors.Is(err, service.ErrEmailTaken),
		errors.Is(err, service.ErrProfileExists):
		response.Conflict(c, err.Error())
	case errors.Is(err, service.ErrInvalidStatus),
		errors.Is(err, service.ErrTitleTooShort):
		response.BadRequest(c, err.Error())
	default:
		response.InternalError(c, err)
	}
}
