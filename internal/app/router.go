package app

import (
	"studyhub_backend/docs"
	"studyhub_backend/internal/config"
	"studyhub_backend/internal/middleware"
	"studyhub_backend/internal/model"
	"studyhub_backend/pkg/monitoring"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

func (a *App) registerRoutes(router *gin.Engine, c *controllers, cfg *config.Config) {
	docs.SwaggerInfo.BasePath = "/api"
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler, ginSwagger.URL("/swagger/doc.json")))

	router.GET("/metrics", monitoring.PrometheusHandler())

	public := router.Group("/api")
	{
		public.GET("/health", c.health.HealthCheck)
		public.POST("/register", c.auth.Register)
		public.POST("/login", c.auth.Login)
	}

	profile := router.Group("/api/profile")
	profile.Use(middleware.AuthMiddleware(cfg), middleware.ActivityMiddleware(a.Redis))
	{
		profile.PUT("/updateProfile", c.profile.UpdateProfile)
		profile.DELETE("/deleteProfile", c.profile.DeleteProfile)
		profile.GET("/getUserDetails", c.profile.GetUserDetails)
		profile.GET("/getEnrolledCourses", c.enrollment.GetEnrolledCourses)
		profile.PUT("/updateDisplayPicture", c.profile.UpdateDisplayPicture)

		profile.GET("/instructorDashboard",
			middleware.RoleMiddleware(model.Instructor),
			c.instructor.Dashboard,
		)
	}
}
