package app

import (
	"skill_graph_backend/docs"
	"skill_graph_backend/internal/config"
	"skill_graph_backend/internal/middleware"
	"skill_graph_backend/pkg/monitoring"

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
		public.GET("/skill-graph/radar", c.skillGraph.GetSkillRadar)
	}

	authGroup := router.Group("/api")
	authGroup.Use(middleware.CurrentUserMiddleware(cfg))
	{
		authGroup.GET("/skill-graph", c.skillGraph.GetSkillGraph)
		authGroup.GET("/skill-graph/progress", c.skillGraph.GetCourseProgress)
	}
}
