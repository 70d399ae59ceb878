package meeting

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"terminal-terrace/tutoring-service/internal/dto"
	"terminal-terrace/tutoring-service/internal/middleware"
	"terminal-terrace/tutoring-service/internal/response"
)

type Handler struct {
	service *Service
}

// Create 创建会议记录
// @Summary 创建会议记录（仅导师）
// @Tags 会议
// @Accept json
// @Produce json
// @Param request body CreateMeetingRequest true "会议信息"
// @Success 200 {object} dto.Response
// @Router /meetings [post]
func (h *Handler) Create(c *gin.Context) {
	caller, ok := middleware.Caller(c)
	if !ok {
		dto.ErrorResponse(c, unauthenticated())
		return
	}

	// 解析参数
	var req CreateMeetingRequest
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

// ListByTutor 某导师的会议记录
// @Summary 某导师的会议记录（管理员任意，导师仅本人）
// @Tags 会议
// @Produce json
// @Param id path int true "导师 ID"
// @Success 200 {object} dto.Response
// @Router /meetings/tutor/{id} [get]
func (h *Handler) ListByTutor(c *gin.Context) {
	caller, ok := middleware.Caller(c)
	if !ok {
		dto.ErrorResponse(c, unauthenticated())
		return
	}

	tutorID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		dto.ErrorResponse(c, invalidID())
		return
	}

	list, bizErr := h.service.ListByTutor(caller, tutorID)
	if bizErr != nil {
		dto.ErrorResponse(c, bizErr)
		return
	}

	dto.SuccessResponse(c, list)
}

// ListByStudent 某学生的会议记录
// @Summary 某学生的会议记录（管理员任意，学生本人，或该学生的导师）
// @Tags 会议
// @Produce json
// @Param id path int true "学生 ID"
// @Success 200 {object} dto.Response
// @Router /meetings/student/{id} [get]
func (h *Handler) ListByStudent(c *gin.Context) {
	caller, ok := middleware.Caller(c)
	if !ok {
		dto.ErrorResponse(c, unauthenticated())
		return
	}

	studentID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		dto.ErrorResponse(c, invalidID())
		return
	}

	list, bizErr := h.service.ListByStudent(caller, studentID)
	if bizErr != nil {
		dto.ErrorResponse(c, bizErr)
		return
	}

	dto.SuccessResponse(c, list)
}

// ListAll 全部会议记录
// @Summary 全部会议记录（仅管理员）
// @Tags 会议
// @Produce json
// @Success 200 {object} dto.Response
// @Router /meetings/admin [get]
func (h *Handler) ListAll(c *gin.Context) {
	caller, ok := middleware.Caller(c)
	if !ok {
		dto.ErrorResponse(c, unauthenticated())
		return
	}

	list, bizErr := h.service.ListAll(caller)
	if bizErr != nil {
		dto.ErrorResponse(c, bizErr)
		return
	}

	dto.SuccessResponse(c, list)
}

// GetByID 按 ID 查询会议记录
// @Summary 按 ID 查询会议记录
// @Tags 会议
// @Produce json
// @Param id path int true "会议 ID"
// @Success 200 {object} dto.Response
// @Router /meetings/{id} [get]
func (h *Handler) GetByID(c *gin.Context) {
	caller, ok := middleware.Caller(c)
	if !ok {
		dto.ErrorResponse(c, unauthenticated())
		return
	}

	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		// 与原系统一致：非法 ID 视为记录不存在
		dto.ErrorResponse(c, response.NewBusinessError(
			response.WithErrorCode(response.NotFound),
			response.WithErrorMessage("会议记录不存在"),
		))
		return
	}

	result, bizErr := h.service.GetByID(caller, id)
	if bizErr != nil {
		dto.ErrorResponse(c, bizErr)
		return
	}

	dto.SuccessResponse(c, result)
}

func unauthenticated() *response.BusinessError {
	return response.NewBusinessError(
		response.WithErrorCode(response.Unauthorized),
		response.WithErrorMessage("未登录"),
	)
}

func invalidID() *response.BusinessError {
	return response.NewBusinessError(
		response.WithErrorCode(response.InvalidParameter),
		response.WithErrorMessage("ID 必须是整数"),
	)
}
