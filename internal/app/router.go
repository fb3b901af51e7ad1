package app

import (
	"physics_master_backend/docs"
	"physics_master_backend/internal/config"
	"physics_master_backend/internal/middleware"
	"physics_master_backend/internal/model"
	"physics_master_backend/pkg/monitoring"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

func (a *App) registerRoutes(router *gin.Engine, c *controllers, cfg *config.Config) {
	docs.SwaggerInfo.BasePath = "/api"
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler, ginSwagger.URL("/swagger/doc.json")))

	router.GET("/metrics", monitoring.PrometheusHandler())

	a.registerPublicRoutes(router, c)
	a.registerAdminRoutes(router, c, cfg)
}

func (a *App) registerPublicRoutes(router *gin.Engine, c *controllers) {
	public := router.Group("/api")
	{
		public.GET("/health", c.health.HealthCheck)

		public.POST("/auth/register", c.auth.Register)
		public.POST("/auth/login", c.auth.Login)
		public.GET("/auth/me", middleware.AuthMiddleware(a.Config), c.auth.Me)

		public.GET("/questions/sample", c.exam.GetSamplePaper)
		public.GET("/questions/full", c.exam.GetFullPaper)
		public.POST("/test/submit", c.exam.SubmitTest)

		public.POST("/payment/verify", c.payment.VerifyPayment)
		public.GET("/payment/check-access/:userId/:setNumber", c.payment.CheckAccess)

		public.GET("/study-materials", c.material.List)
		public.POST("/feedback", c.feedback.Submit)
		public.GET("/stats", c.stats.GetStats)
	}
}

func (a *App) registerAdminRoutes(router *gin.Engine, c *controllers, cfg *config.Config) {
	router.POST("/api/admin/login", c.auth.AdminLogin)

	admin := router.Group("/api/admin")
	admin.Use(middleware.AuthMiddleware(cfg), middleware.RoleMiddleware(model.RoleAdmin))
	{
		admin.GET("/questions", c.admin.ListQuestions)
		admin.POST("/questions", c.admin.BulkInsertQuestions)
		admin.PUT("/questions/:id", c.admin.UpdateQuestion)
		admin.DELETE("/questions/:id", c.admin.DeleteQuestion)

		admin.GET("/question-sets", c.admin.ListSets)
		admin.DELETE("/question-sets/:setNumber", c.admin.DeleteSet)

		admin.GET("/users", c.admin.ListUsers)
		admin.GET("/test-attempts", c.admin.ListAttempts)

		admin.POST("/study-materials", c.material.Create)
		admin.DELETE("/study-materials/:id", c.material.Delete)

		admin.GET("/feedback", c.feedback.List)
	}
}
