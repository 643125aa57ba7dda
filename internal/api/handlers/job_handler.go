package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/hirestack/jobboard-go/internal/api/middleware"
	appjob "github.com/hirestack/jobboard-go/internal/application/job"
	"github.com/hirestack/jobboard-go/internal/config"
	"github.com/hirestack/jobboard-go/internal/domain/job"
	"github.com/hirestack/jobboard-go/pkg/response"
)

// JobHandler handles the job listing endpoints.
type JobHandler struct {
	svc *appjob.Service
}

// NewJobHandler creates a new job handler.
func NewJobHandler(svc *appjob.Service) *JobHandler {
	return &JobHandler{svc: svc}
}

// ListJobs handles GET /jobs. User input never fails the request: bad
// pagination clamps, empty filters are ignored. Backend trouble is
// absorbed by the fallback coordinator; only a total outage surfaces,
// as a safe 500 envelope.
func (h *JobHandler) ListJobs(c *gin.Context) {
	params := appjob.ListParams{
		Title:    c.Query("title"),
		Location: c.Query("location"),
		Keywords: c.Query("keywords"),
		Query:    c.Query("q"),
		SortBy:   c.Query("sortBy"),
		Page:     c.Query("page"),
		Limit:    c.Query("limit"),
	}

	var userID *uint
	if uid, ok := middleware.UserIDFromContext(c); ok {
		userID = &uid
	}

	res, err := h.svc.List(c.Request.Context(), userID, params)
	if err != nil {
		c.JSON(http.StatusInternalServerError, response.ErrorResponse{
			Error:  "job search is temporarily unavailable",
			Detail: devDetail(err),
		})
		return
	}

	c.JSON(http.StatusOK, response.SuccessResponse{Code: 0, Message: "success", Data: res})
}

// GetJob handles GET /jobs/:id. A malformed identifier is rejected
// before either backend is touched.
func (h *JobHandler) GetJob(c *gin.Context) {
	id := c.Param("id")

	j, fallback, err := h.svc.Get(c.Request.Context(), id)
	switch {
	case errors.Is(err, job.ErrInvalidJobID):
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "invalid id format"})
		return
	case errors.Is(err, job.ErrJobNotFound):
		c.JSON(http.StatusNotFound, response.ErrorResponse{Error: "job not found"})
		return
	case err != nil:
		c.JSON(http.StatusInternalServerError, response.ErrorResponse{
			Error:  "failed to load job",
			Detail: devDetail(err),
		})
		return
	}

	c.JSON(http.StatusOK, response.SuccessResponse{
		Code:    0,
		Message: "success",
		Data:    gin.H{"job": j, "fallback": fallback},
	})
}

// GetJobStats handles GET /jobs/stats/summary.
func (h *JobHandler) GetJobStats(c *gin.Context) {
	stats, err := h.svc.Stats(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, response.ErrorResponse{
			Error:  "job stats are temporarily unavailable",
			Detail: devDetail(err),
		})
		return
	}

	c.JSON(http.StatusOK, response.SuccessResponse{Code: 0, Message: "success", Data: stats})
}

// Health handles GET /healthz.
func (h *JobHandler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, h.svc.Health())
}

// devDetail exposes internal error text only in development.
func devDetail(err error) string {
	if err == nil || !config.IsDevelopment() {
		return ""
	}
	return err.Error()
}
