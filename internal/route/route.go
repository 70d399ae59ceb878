package route

import (
	"os"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"terminal-terrace/tutoring-service/config"
	"terminal-terrace/tutoring-service/internal/login"
	"terminal-terrace/tutoring-service/internal/me"
	"terminal-terrace/tutoring-service/internal/meeting"
	"terminal-terrace/tutoring-service/internal/users"
)

func initRoute(r *gin.Engine) {
	// Swagger 文档路由
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// API 路由组
	api := r.Group("/api")
	{
		authGroup := api.Group("/auth")
		login.RegisterRoutes(authGroup)
		me.RegisterRoutes(authGroup)

		users.RegisterRoutes(api.Group("/users"))
		meeting.RegisterRoutes(api.Group("/meetings"))
	}
}

func SetupRouter() *gin.Engine {
	if config.Conf != nil && config.Conf.Server.Mode == "release" {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.Default()

	// 允许多个前端端口
	allowedOrigins := []string{
		"http://localhost:5173",
	}

	// 如果设置了环境变量，添加到允许列表
	if envOrigin := os.Getenv("FRONTEND_URL"); envOrigin != "" {
		allowedOrigins = append(allowedOrigins, envOrigin)
	}

	// 设置跨域请求
	r.Use(cors.New(cors.Config{
		AllowOrigins: allowedOrigins,
		AllowMethods: []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders: []string{"Origin", "Content-Type", "Accept", "Authorization", "x-auth-token"},
	}))

	initRoute(r)

	return r
}
