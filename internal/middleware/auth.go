package middleware

import (
	"errors"
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"terminal-terrace/tutoring-service/internal/dto"
	"terminal-terrace/tutoring-service/internal/model/user"
	"terminal-terrace/tutoring-service/internal/pkg"
	"terminal-terrace/tutoring-service/internal/policy"
	"terminal-terrace/tutoring-service/internal/response"
)

// extractToken 从 cookie 或请求头中提取 token
// 支持三种方式：
// 1. cookie 中的 access_token
// 2. Authorization header (Bearer token)
// 3. x-auth-token header（兼容旧客户端）
func extractToken(c *gin.Context) (string, error) {
	if token, err := c.Cookie("access_token"); err == nil && token != "" {
		return token, nil
	}

	if authHeader := c.GetHeader("Authorization"); authHeader != "" {
		if strings.HasPrefix(authHeader, "Bearer ") {
			return strings.TrimPrefix(authHeader, "Bearer "), nil
		}
		return "", errors.New("认证格式错误")
	}

	if token := c.GetHeader("x-auth-token"); token != "" {
		return token, nil
	}

	return "", errors.New("未提供认证令牌")
}

// JWTAuth JWT 认证中间件（必需认证）
// 缺少、无效、过期的令牌统一返回 401，不进入任何处理器
func JWTAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString, err := extractToken(c)
		if err != nil {
			dto.ErrorResponse(c, response.NewBusinessError(
				response.WithErrorCode(response.Unauthorized),
				response.WithErrorMessage(err.Error()),
			))
			c.Abort()
			return
		}

		claims, err := pkg.ParseAccessToken(tokenString)
		if err != nil {
			// 过期和签名错误分开记录，对外表现一致
			if errors.Is(err, pkg.ErrExpiredToken) {
				zap.L().Debug("token expired", zap.String("path", c.FullPath()))
			}
			dto.ErrorResponse(c, response.NewBusinessError(
				response.WithErrorCode(response.Unauthorized),
				response.WithErrorMessage("无效的认证令牌"),
			))
			c.Abort()
			return
		}

		// 将用户信息存入上下文
		c.Set("user_id", claims.UserID)
		c.Set("username", claims.Username)
		c.Set("user_role", claims.Role)
		c.Next()
	}
}

// Caller 从上下文取出已认证的调用者，供各处理器做策略判定
func Caller(c *gin.Context) (policy.Caller, bool) {
	userID, exists := c.Get("user_id")
	if !exists {
		return policy.Caller{}, false
	}
	role, exists := c.Get("user_role")
	if !exists {
		return policy.Caller{}, false
	}

	id, ok := userID.(int)
	if !ok {
		return policy.Caller{}, false
	}
	r, ok := role.(user.Role)
	if !ok {
		return policy.Caller{}, false
	}

	return policy.Caller{ID: id, Role: r}, true
}
