package dto

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"terminal-terrace/tutoring-service/config"
	res "terminal-terrace/tutoring-service/internal/response"
)

// Response 统一响应格式
type Response struct {
	Code    int    `json:"code" example:"100"`        // 状态码：100-成功，其他-失败
	Message string `json:"message" example:"success"` // 响应消息
	Data    any    `json:"data,omitempty"`            // 响应数据
}

func SuccessResponse(c *gin.Context, data any) {
	c.JSON(http.StatusOK, res.SuccessResponse(data))
}

func ErrorResponse(c *gin.Context, err *res.BusinessError) {
	msg := err.Msg

	// 未预期错误：服务端记录细节，线上只返回笼统消息
	if err.Code == res.Fail {
		zap.L().Error("internal error",
			zap.String("path", c.FullPath()),
			zap.Error(err.Err),
		)
		if err.Err != nil && debugMode() {
			msg = msg + ": " + err.Err.Error()
		}
	}

	c.JSON(httpStatus(err.Code), res.ErrorResponse(err.Code, msg))
}

func debugMode() bool {
	return config.Conf != nil && config.Conf.Server.Mode == "debug"
}

// httpStatus 业务错误码到 HTTP 状态的映射
func httpStatus(code res.ResponseCode) int {
	switch code {
	case res.ParseError, res.InvalidParameter:
		return http.StatusBadRequest
	case res.Unauthorized:
		return http.StatusUnauthorized
	case res.Forbidden:
		return http.StatusForbidden
	case res.NotFound:
		return http.StatusNotFound
	case res.TooManyRequests:
		return http.StatusTooManyRequests
	default:
		return http.StatusInternalServerError
	}
}
