package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/hirestack/jobboard-go/internal/api/handlers"
)

func RegisterRoutes(r *gin.Engine, h *handlers.Handlers) {
	r.GET("/healthz", h.Job.Health)

	JobRoutes(r.Group("/"), h.Job)
}
