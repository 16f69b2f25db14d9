package router

import (
	"github.com/gin-gonic/gin"

	"jobtrail/internal/config"
	"jobtrail/internal/handler"
	"jobtrail/internal/middleware"
)

// Setup configures the Gin engine with all routes and middleware.
func Setup(
	cfg *config.Config,
	jobH *handler.JobHandler,
	extractH *handler.ExtractHandler,
	screenshotH *handler.ScreenshotHandler,
	healthH *handler.HealthHandler,
) *gin.Engine {
	r := gin.New()

	// Global middleware
	r.Use(middleware.Recovery())
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger())
	r.Use(middleware.CORS(cfg.CORS.AllowedOrigins))

	// Health checks
	r.GET("/healthz", healthH.Liveness)
	r.GET("/readyz", healthH.Readiness)

	v1 := r.Group("/api/v1")

	// Job routes. Static paths before the :id wildcard.
	jobs := v1.Group("/jobs")
	jobs.POST("", jobH.Create)
	jobs.GET("", jobH.List)
	jobs.GET("/stats", jobH.Stats)
	jobs.GET("/export", jobH.Export)
	jobs.GET("/:id", jobH.GetByID)
	jobs.PUT("/:id", jobH.Update)
	jobs.DELETE("/:id", jobH.Delete)

	// Screenshot extraction
	v1.POST("/extract", extractH.Extract)
	v1.POST("/screenshots", screenshotH.Upload)
	v1.DELETE("/screenshots", screenshotH.Delete)

	return r
}
