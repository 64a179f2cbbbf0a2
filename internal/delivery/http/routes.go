package http

import (
	"github.com/copysmith/backend/config"
	"github.com/gin-gonic/gin"
)

// SetupRouter creates and configures the Gin router
func SetupRouter(cfg *config.Config, handler *Handler) *gin.Engine {
	// Set Gin mode based on environment
	if cfg.Server.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	router.SetHTMLTemplate(loadTemplates())

	// Global middleware
	router.Use(RecoveryMiddleware())
	router.Use(LoggerMiddleware())
	router.Use(CORSMiddleware(cfg.Server.AllowedOrigins))
	router.Use(SessionMiddleware())

	// Health check endpoint
	router.GET("/health", handler.HealthCheck)

	// Form page
	router.GET("/", handler.Index)
	router.POST("/", handler.SubmitForm)

	// API v1 routes
	v1 := router.Group("/api/v1")
	{
		v1.GET("/options", handler.Options)
		v1.POST("/attributes/parse", handler.ParseAttributes)
		v1.POST("/descriptions", handler.CreateDescription)
	}

	return router
}
