package login

import (
	"github.com/gin-gonic/gin"

	"terminal-terrace/tutoring-service/internal/database"
	"terminal-terrace/tutoring-service/internal/users"
)

func RegisterRoutes(r *gin.RouterGroup) {
	h := &Handler{service: NewService(
		users.NewRepository(database.GetDB()),
		NewAttemptRepository(database.RedisDB),
	)}

	r.POST("/login", h.Login)
}
