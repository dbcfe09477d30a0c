package app

import (
	"quiz_api_backend/docs"
	"quiz_api_backend/internal/config"
	"quiz_api_backend/internal/middleware"
	"quiz_api_backend/internal/model"
	"quiz_api_backend/pkg/monitoring"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

func (a *App) registerRoutes(router *gin.Engine, c *controllers, cfg *config.Config) {
	docs.SwaggerInfo.BasePath = "/api"
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler, ginSwagger.URL("/swagger/doc.json")))

	router.GET("/metrics", monitoring.PrometheusHandler())

	// 公共路由（无需登录）
	public := router.Group("/api")
	{
		public.GET("/health", c.health.HealthCheck)
		public.POST("/register", c.auth.Register)
		public.POST("/login", c.auth.Login)
		public.POST("/token/refresh", c.auth.Refresh)
	}

	// 任意已认证用户
	authGroup := router.Group("/api")
	authGroup.Use(middleware.AuthMiddleware(cfg))
	{
		authGroup.GET("/test-auth", c.auth.TestAuth)
		authGroup.GET("/quizzes/active", c.quiz.ListActive)
		authGroup.POST("/quizzes/:id/submit", c.submission.Submit)
		authGroup.GET("/submissions/history", c.submission.History)
	}

	// 管理员路由
	admin := router.Group("/api")
	admin.Use(middleware.AuthMiddleware(cfg), middleware.RoleMiddleware(model.Admin))
	{
		admin.GET("/categories", c.category.List)
		admin.POST("/categories", c.category.Create)
		admin.GET("/categories/:id", c.category.Get)
		admin.PUT("/categories/:id", c.category.Update)
		admin.PATCH("/categories/:id", c.category.Patch)
		admin.DELETE("/categories/:id", c.category.Delete)

		admin.GET("/quizzes", c.quiz.List)
		admin.POST("/quizzes", c.quiz.Create)
		admin.GET("/quizzes/:id", c.quiz.Get)
		admin.PUT("/quizzes/:id", c.quiz.Update)
		admin.PATCH("/quizzes/:id", c.quiz.Patch)
		admin.DELETE("/quizzes/:id", c.quiz.Delete)
		admin.PATCH("/quizzes/:id/toggle-active", c.quiz.ToggleActive)

		admin.GET("/questions", c.question.List)
		admin.POST("/questions", c.question.Create)
		admin.GET("/questions/:id", c.question.Get)
		admin.PUT("/questions/:id", c.question.Update)
		admin.DELETE("/questions/:id", c.question.Delete)
		admin.PATCH("/questions/:id/toggle-active", c.question.ToggleActive)

		admin.GET("/options", c.option.List)
		admin.POST("/options", c.option.Create)
		admin.GET("/options/:id", c.option.Get)
		admin.PUT("/options/:id", c.option.Update)
		admin.DELETE("/options/:id", c.option.Delete)

		admin.GET("/admin/submissions", c.submission.ListAll)
	}
}
