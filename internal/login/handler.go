package login

import (
	"github.com/gin-gonic/gin"

	"terminal-terrace/tutoring-service/internal/dto"
	"terminal-terrace/tutoring-service/internal/response"
)

type Handler struct {
	service *Service
}

// Login 账号密码登录
// @Summary 登录
// @Description 账号密码登录，返回 JWT 访问令牌和用户投影
// @Tags 认证
// @Accept json
// @Produce json
// @Param request body LoginRequest true "登录信息"
// @Success 200 {object} LoginResponse
// @Router /auth/login [post]
func (h *Handler) Login(c *gin.Context) {
	// 解析参数
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		dto.ErrorResponse(c, response.NewBusinessError(
			response.WithErrorCode(response.ParseError),
			response.WithErrorMessage("用户名和密码不能为空"),
		))
		return
	}

	result, bizErr := h.service.Login(req)
	if bizErr != nil {
		dto.ErrorResponse(c, bizErr)
		return
	}

	dto.SuccessResponse(c, result)
}
