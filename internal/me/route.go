package me

import (
	"github.com/gin-gonic/gin"

	"terminal-terrace/tutoring-service/internal/database"
	"terminal-terrace/tutoring-service/internal/middleware"
	"terminal-terrace/tutoring-service/internal/users"
)

func RegisterRoutes(r *gin.RouterGroup) {
	handler := &MeHandler{userRepo: users.NewRepository(database.GetDB())}

	// 需要认证的接口
	r.GET("/me", middleware.JWTAuth(), handler.GetCurrentUser)
}
