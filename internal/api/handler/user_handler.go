package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/Anmol-Srv/blog-api/pkg/response"
)

type createUserRequest struct {
	FirstName string `json:"firstName" binding:"required"`
	LastName  string `json:"lastName" binding:"required"`
	Email     string `json:"email" binding:"required,email"`
}

type updateUserRequest struct {
	FirstName *string `json:"firstName"`
	LastName  *string `json:"lastName"`
	Email     *string `json:"email" binding:"omitempty,email"`
}

// CreateUser 注册新用户
// @Summary 创建用户
// @Tags 用户
// @Accept json
// @Produce json
// @Param request body createUserRequest true "用户信息"
// @Success 201 {object} model.User
// @Failure 400 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /users [post]
func (h *Handler) CreateUser(c *gin.Context) {
	var req createUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	u, err := h.users.Create(c.Request.Context(), req.FirstName, req.LastName, req.Email)
	if err != nil {
		h.fail(c, err)
		return
	}
	response.Created(c, u)
}

// ListUsers 用户列表
// @Summary 用户列表
// @Tags 用户
// @Produce json
// @Success 200 {array} model.User
// @Router /users [get]
func (h *Handler) ListUsers(c *gin.Context) {
	users, err := h.users.List(c.Request.Context())
	if err != nil {
		h.fail(c, err)
		return
	}
	response.OK(c, users)
}

// GetUser 按 ID 查询用户
// @Summary 查询用户
// @Tags 用户
// @Param id path int true "用户 ID"
// @Produce json
// @Success 200 {object} model.User
// @Failure 404 {object} map[string]string
// @Router /users/{id} [get]
func (h *Handler) GetUser(c *gin.Context) {
	id, ok := parseUintParam(c, "id")
	if !ok {
		return
	}
	u, err := h.users.Get(c.Request.Context(), id)
	if err != nil {
		h.fail(c, err)
		return
	}
	response.OK(c, u)
}

// UpdateUser 部分更新用户
// @Summary 更新用户
// @Tags 用户
// @Accept json
// @Produce json
// @Param id path int true "用户 ID"
// @Param request body updateUserRequest true "变更字段"
// @Success 200 {object} model.User
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /users/{id} [put]
func (h *Handler) UpdateUser(c *gin.Context) {
	id, ok := parseUintParam(c, "id")
	if !ok {
		return
	}
	var req updateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	u, err := h.users.Update(c.Request.Context(), id, req.FirstName, req.LastName, req.Email)
	if err != nil {
		h.fail(c, err)
		return
	}
	response.OK(c, u)
}

// DeleteUser 删除用户
// @Summary 删除用户
// @Tags 用户
// @Param id path int true "用户 ID"
// @Success 204
// @Failure 404 {object} map[string]string
// @Router /users/{id} [delete]
func (h *Handler) DeleteUser(c *gin.Context) {
	id, ok := parseUintParam(c, "id")
	if !ok {
		return
	}
	if err := h.users.Delete(c.Request.Context(), id); err != nil {
		h.fail(c, err)
		return
	}
	response.NoContent(c)
}
