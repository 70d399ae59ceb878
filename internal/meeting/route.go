package meeting

import (
	"github.com/gin-gonic/gin"

	"terminal-terrace/tutoring-service/internal/database"
	"terminal-terrace/tutoring-service/internal/middleware"
	"terminal-terrace/tutoring-service/internal/users"
)

func RegisterRoutes(r *gin.RouterGroup) {
	db := database.GetDB()
	h := &Handler{service: NewService(NewRepository(db), users.NewRepository(db))}

	r.POST("", middleware.JWTAuth(), h.Create)
	r.GET("/admin", middleware.JWTAuth(), h.ListAll)
	r.GET("/tutor/:id", middleware.JWTAuth(), h.ListByTutor)
	r.GET("/student/:id", middleware.JWTAuth(), h.ListByStudent)
	r.GET("/:id", middleware.JWTAuth(), h.GetByID)
}
