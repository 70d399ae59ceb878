package login

import "terminal-terrace/tutoring-service/internal/model/user"

// LoginRequest 登录请求
type LoginRequest struct {
	Username string `json:"username" binding:"required" example:"tutor1"`  // 用户名
	Password string `json:"password" binding:"required" example:"passone"` // 密码
}

// LoginUser 登录响应中的用户投影
type LoginUser struct {
	ID       int       `json:"id" example:"1"`
	Username string    `json:"username" example:"tutor1"`
	Role     user.Role `json:"role" example:"tutor"`
}

// LoginResponse 登录响应
type LoginResponse struct {
	Token string    `json:"token" example:"eyJhbGciOiJIUzI1NiIsInR5cCI6IkpXVCJ9..."` // JWT 访问令牌
	User  LoginUser `json:"user"`
}
