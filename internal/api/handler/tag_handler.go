package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/Anmol-Srv/blog-api/pkg/response"
)

type tagRequest struct {
	Name string `json:"name" binding:"required"`
}

// CreateTag 创建标签（标签名允许重复）
// @Summary 创建标签
// @Tags 标签
// @Accept json
// @Produce json
// @Param request body tagRequest true "标签信息"
// @Success 201 {object} model.Tag
// @Failure 400 {object} map[string]string
// @Router /tags [post]
func (h *Handler) CreateTag(c *gin.Context) {
	var req tagRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	t, err := h.tags.Create(c.Request.Context(), req.Name)
	if err != nil {
		h.fail(c, err)
		return
	}
	response.Created(c, t)
}

// ListTags 全部标签
// @Summary 标签列表
// @Tags 标签
// @Produce json
// @Success 200 {array} model.Tag
// @Router /tags [get]
func (h *Handler) ListTags(c *gin.Context) {
	tags, err := h.tags.List(c.Request.Context())
	if err != nil {
		h.fail(c, err)
		return
	}
	response.OK(c, tags)
}

// UpdateTag 重命名标签
// @Summary 更新标签
// @Tags 标签
// @Accept json
// @Produce json
// @Param id path int true "标签 ID"
// @Param request body tagRequest true "标签信息"
// @Success 200 {object} model.Tag
// @Failure 404 {object} map[string]string
// @Router /tags/{id} [put]
func (h *Handler) UpdateTag(c *gin.Context) {
	id, ok := parseUintParam(c, "id")
	if !ok {
		return
	}
	var req tagRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	t, err := h.tags.Update(c.Request.Context(), id, req.Name)
	if err != nil {
		h.fail(c, err)
		return
	}
	response.OK(c, t)
}

// DeleteTag 删除标签
// @Summary 删除标签
// @Tags 标签
// @Param id path int true "标签 ID"
// @Success 204
// @Failure 404 {object} map[string]string
// @Router /tags/{id} [delete]
func (h *Handler) DeleteTag(c *gin.Context) {
	id, ok := parseUintParam(c, "id")
	if !ok {
		return
	}
	if err := h.tags.Delete(c.Request.Context(), id); err != nil {
		h.fail(c, err)
		return
	}
	response.NoContent(c)
}
