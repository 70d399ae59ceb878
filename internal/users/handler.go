package users

import (
	"github.com/gin-gonic/gin"

	"terminal-terrace/tutoring-service/internal/dto"
	"terminal-terrace/tutoring-service/internal/middleware"
	"terminal-terrace/tutoring-service/internal/response"
)

type Handler struct {
	service *Service
}

// Create 创建用户
// @Summary 创建用户（仅管理员）
// @Tags 用户
// @Accept json
// @Produce json
// @Param request body CreateUserRequest true "用户信息"
// @Success 200 {object} dto.Response
// @Router /users [post]
func (h *Handler) Create(c *gin.Context) {
	caller, ok := middleware.Caller(c)
	if !ok {
		dto.ErrorResponse(c, unauthenticated())
		return
	}

	// 解析参数
	var req CreateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		dto.ErrorResponse(c, response.NewBusinessError(
			response.WithErrorCode(response.ParseError),
			response.WithErrorMessage("请检查参数"),
		))
		return
	}

	result, bizErr := h.service.Create(caller, req)
	if bizErr != nil {
		dto.ErrorResponse(c, bizErr)
		return
	}

	dto.SuccessResponse(c, result)
}

// List 用户列表
// @Summary 全部用户列表（仅管理员）
// @Tags 用户
// @Produce json
// @Success 200 {object} dto.Response
// @Router /users [get]
func (h *Handler) List(c *gin.Context) {
	caller, ok := middleware.Caller(c)
	if !ok {
		dto.ErrorResponse(c, unauthenticated())
		return
	}

	list, bizErr := h.service.List(caller)
	if bizErr != nil {
		dto.ErrorResponse(c, bizErr)
		return
	}

	dto.SuccessResponse(c, list)
}

// ListTutors 导师列表
// @Summary 全部导师列表（仅管理员）
// @Tags 用户
// @Produce json
// @Success 200 {object} dto.Response
// @Router /users/tutors [get]
func (h *Handler) ListTutors(c *gin.Context) {
	caller, ok := middleware.Caller(c)
	if !ok {
		dto.ErrorResponse(c, unauthenticated())
		return
	}

	list, bizErr := h.service.ListTutors(caller)
	if bizErr != nil {
		dto.ErrorResponse(c, bizErr)
		return
	}

	dto.SuccessResponse(c, list)
}

// ListOwnStudents 当前导师的学生列表
// @Summary 当前导师的学生列表（仅导师）
// @Tags 用户
// @Produce json
// @Success 200 {object} dto.Response
// @Router /users/students [get]
func (h *Handler) ListOwnStudents(c *gin.Context) {
	caller, ok := middleware.Caller(c)
	if !ok {
		dto.ErrorResponse(c, unauthenticated())
		return
	}

	list, bizErr := h.service.ListOwnStudents(caller)
	if bizErr != nil {
		dto.ErrorResponse(c, bizErr)
		return
	}

	dto.SuccessResponse(c, list)
}

func unauthenticated() *response.BusinessError {
	return response.NewBusinessError(
		response.WithErrorCode(response.Unauthorized),
		response.WithErrorMessage("未登录"),
	)
}
