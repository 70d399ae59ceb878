package users

// CreateUserRequest 创建用户请求（仅管理员）
type CreateUserRequest struct {
	Username string `json:"username" binding:"required" example:"tutor1"`    // 用户名，全局唯一
	Password string `json:"password" binding:"required" example:"passone"`   // 明文密码，服务端加密存储
	Role     string `json:"role" binding:"required" enums:"admin,tutor,student"` // 角色
	Name     string `json:"name" example:"Tutor One"`                        // 显示名称，可选
	TutorID  *int   `json:"tutor_id" example:"2"`                            // 学生所分配的导师，仅 role=student 时有效
}
