package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/hirestack/jobboard-go/internal/api/handlers"
	"github.com/hirestack/jobboard-go/internal/api/middleware"
)

// JobRoutes registers the job listing endpoints. They are public;
// OptionalAuth only attributes search tracking for signed-in callers.
func JobRoutes(rg *gin.RouterGroup, h *handlers.JobHandler) {
	jobs := rg.Group("/jobs")
	jobs.Use(middleware.OptionalAuth())
	{
		jobs.GET("", h.ListJobs)
		jobs.GET("/stats/summary", h.GetJobStats)
		jobs.GET("/:id", h.GetJob)
	}
}
