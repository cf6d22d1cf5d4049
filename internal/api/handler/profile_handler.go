package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/Anmol-Srv/blog-api/pkg/response"
)

type createProfileRequest struct {
	Bio    string `json:"bio"`
	UserID uint   `json:"userId" binding:"required"`
}

type updateProfileRequest struct {
	Bio string `json:"bio"`
}

// CreateProfile 为用户创建资料（每个用户至多一条）
// @Summary 创建资料
// @Tags 资料
// @Accept json
// @Produce json
// @Param request body createProfileRequest true "资料信息"
// @Success 201 {object} model.Profile
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /profiles [post]
func (h *Handler) CreateProfile(c *gin.Context) {
	var req createProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	p, err := h.profiles.Create(c.Request.Context(), req.Bio, req.UserID)
	if err != nil {
		h.fail(c, err)
		return
	}
	response.Created(c, p)
}

// GetProfile 按用户 ID 查询资料
// @Summary 查询资料
// @Tags 资料
// @Param userId path int true "用户 ID"
// @Produce json
// @Success 200 {object} model.Profile
// @Failure 404 {object} map[string]string
// @Router /profiles/{userId} [get]
func (h *Handler) GetProfile(c *gin.Context) {
	userID, ok := parseUintParam(c, "userId")
	if !ok {
		return
	}
	p, err := h.profiles.GetByUserID(c.Request.Context(), userID)
	if err != nil {
		h.fail(c, err)
		return
	}
	response.OK(c, p)
}

// UpdateProfile 更新资料
// @Summary 更新资料
// @Tags 资料
// @Accept json
// @Produce json
// @Param userId path int true "用户 ID"
// @Param request body updateProfileRequest true "变更字段"
// @Success 200 {object} model.Profile
// @Failure 404 {object} map[string]string
// @Router /profiles/{userId} [put]
func (h *Handler) UpdateProfile(c *gin.Context) {
	userID, ok := parseUintParam(c, "userId")
	if !ok {
		return
	}
	var req updateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	p, err := h.profiles.Update(c.Request.Context(), userID, req.Bio)
	if err != nil {
		h.fail(c, err)
		return
	}
	response.OK(c, p)
}

// DeleteProfile 删除资料
// @Summary 删除资料
// @Tags 资料
// @Param userId path int true "用户 ID"
// @Success 204
// @Failure 404 {object} map[string]string
// @Router /profiles/{userId} [delete]
func (h *Handler) DeleteProfile(c *gin.Context) {
	userID, ok := parseUintParam(c, "userId")
	if !ok {
		return
	}
	if err := h.profiles.Delete(c.Request.Context(), userID); err != nil {
		h.fail(c, err)
		return
	}
	response.NoContent(c)
}
