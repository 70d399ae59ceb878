package users

import (
	"github.com/gin-gonic/gin"

	"terminal-terrace/tutoring-service/internal/database"
	"terminal-terrace/tutoring-service/internal/middleware"
)

func RegisterRoutes(r *gin.RouterGroup) {
	h := &Handler{service: NewService(NewRepository(database.GetDB()))}

	// 全部接口需要认证，角色判定在服务层统一走策略函数
	r.POST("", middleware.JWTAuth(), h.Create)
	r.GET("", middleware.JWTAuth(), h.List)
	r.GET("/tutors", middleware.JWTAuth(), h.ListTutors)
	r.GET("/students", middleware.JWTAuth(), h.ListOwnStudents)
}
