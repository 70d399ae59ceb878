package me

import (
	"github.com/gin-gonic/gin"

	"terminal-terrace/tutoring-service/internal/dto"
	"terminal-terrace/tutoring-service/internal/middleware"
	"terminal-terrace/tutoring-service/internal/response"
	"terminal-terrace/tutoring-service/internal/users"
)

type MeHandler struct {
	userRepo *users.Repository
}

// GetCurrentUser 获取当前登录用户信息
// @Summary 获取当前用户信息
// @Description 按令牌主体重新加载用户记录，密码散列不会出现在响应中
// @Tags 认证
// @Produce json
// @Success 200 {object} dto.Response
// @Router /auth/me [get]
func (h *MeHandler) GetCurrentUser(c *gin.Context) {
	caller, ok := middleware.Caller(c)
	if !ok {
		dto.ErrorResponse(c, response.NewBusinessError(
			response.WithErrorCode(response.Unauthorized),
			response.WithErrorMessage("未登录"),
		))
		return
	}

	// 令牌有效但用户记录已不存在
	u, err := h.userRepo.FindByID(caller.ID)
	if err != nil {
		dto.ErrorResponse(c, response.NewBusinessError(
			response.WithErrorCode(response.NotFound),
			response.WithErrorMessage("用户不存在"),
		))
		return
	}

	dto.SuccessResponse(c, u)
}
