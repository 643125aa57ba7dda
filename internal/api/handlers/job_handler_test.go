package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	appjob "github.com/hirestack/jobboard-go/internal/application/job"
	"github.com/hirestack/jobboard-go/internal/domain/job"
	"github.com/hirestack/jobboard-go/internal/repository"
	"github.com/hirestack/jobboard-go/internal/repository/mock_repository"
	"github.com/hirestack/jobboard-go/pkg/logging"
)

const testJobID = "11111111-1111-4111-8111-111111111111"

func setupRouter(t *testing.T) (*mock_repository.MockJobRepository, *gin.Engine) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	ctrl := gomock.NewController(t)
	t.Cleanup(func() { ctrl.Finish() })

	primary := mock_repository.NewMockJobRepository(ctrl)
	svc := appjob.NewService(&repository.Repos{Primary: primary}, nil, logging.NewNop())
	h := NewJobHandler(svc)

	r := gin.New()
	jobs := r.Group("/jobs")
	jobs.GET("", h.ListJobs)
	jobs.GET("/stats/summary", h.GetJobStats)
	jobs.GET("/:id", h.GetJob)
	return primary, r
}

func doRequest(r *gin.Engine, path string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	r.ServeHTTP(w, req)
	return w
}

func TestListJobsEnvelope(t *testing.T) {
	primary, r := setupRouter(t)

	primary.EXPECT().
		Search(gomock.Any(), gomock.Any(), job.SortRecent, job.PageRequest{Page: 1, Limit: 10}).
		Return([]job.Job{{ID: testJobID, Title: "Backend Engineer", Active: true}}, int64(1), nil)

	w := doRequest(r, "/jobs")
	require.Equal(t, http.StatusOK, w.Code)

	var body struct {
		Code    int    `json:"code"`
		Message string `json:"message"`
		Data    struct {
			Jobs     []map[string]any `json:"jobs"`
			Total    int64            `json:"total"`
			Page     int              `json:"page"`
			Limit    int              `json:"limit"`
			Fallback bool             `json:"fallback"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, 0, body.Code)
	assert.Equal(t, "success", body.Message)
	assert.Len(t, body.Data.Jobs, 1)
	assert.Equal(t, int64(1), body.Data.Total)
	assert.False(t, body.Data.Fallback)
}

func TestListJobsClampsLimit(t *testing.T) {
	primary, r := setupRouter(t)

	primary.EXPECT().
		Search(gomock.Any(), gomock.Any(), gomock.Any(), job.PageRequest{Page: 1, Limit: job.MaxPageLimit}).
		Return([]job.Job{}, int64(0), nil)

	w := doRequest(r, "/jobs?limit=5000")
	require.Equal(t, http.StatusOK, w.Code)

	var body struct {
		Data struct {
			Limit int `json:"limit"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, job.MaxPageLimit, body.Data.Limit)
}

func TestListJobsTotalOutage(t *testing.T) {
	primary, r := setupRouter(t)

	primary.EXPECT().
		Search(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		Return(nil, int64(0), errors.New("pq: connection refused"))

	w := doRequest(r, "/jobs")
	require.Equal(t, http.StatusInternalServerError, w.Code)

	var body struct {
		Error  string `json:"error"`
		Detail string `json:"detail"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "job search is temporarily unavailable", body.Error)
	// Internal error text stays out of the envelope outside development.
	assert.Empty(t, body.Detail)
}

func TestGetJobInvalidID(t *testing.T) {
	// No Search/GetByID expectations: a malformed id never reaches the repo.
	_, r := setupRouter(t)

	w := doRequest(r, "/jobs/not-a-uuid")
	require.Equal(t, http.StatusBadRequest, w.Code)

	var body struct {
		Error string `json:"error"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "invalid id format", body.Error)
}

func TestGetJobNotFound(t *testing.T) {
	primary, r := setupRouter(t)

	primary.EXPECT().GetByID(gomock.Any(), testJobID).Return(nil, job.ErrJobNotFound)

	w := doRequest(r, "/jobs/"+testJobID)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestGetJobSuccess(t *testing.T) {
	primary, r := setupRouter(t)

	primary.EXPECT().GetByID(gomock.Any(), testJobID).Return(&job.Job{ID: testJobID, Title: "Backend Engineer"}, nil)

	w := doRequest(r, "/jobs/"+testJobID)
	require.Equal(t, http.StatusOK, w.Code)

	var body struct {
		Data struct {
			Job      map[string]any `json:"job"`
			Fallback bool           `json:"fallback"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, testJobID, body.Data.Job["id"])
	assert.False(t, body.Data.Fallback)
}

func TestGetJobStats(t *testing.T) {
	primary, r := setupRouter(t)

	primary.EXPECT().Stats(gomock.Any(), 10).Return(&job.Stats{
		TotalJobs:    4,
		TopLocations: []job.StatEntry{{Value: "Berlin", Count: 2}},
		TopCompanies: []job.StatEntry{{Value: "Initech", Count: 2}},
	}, nil)

	w := doRequest(r, "/jobs/stats/summary")
	require.Equal(t, http.StatusOK, w.Code)

	var body struct {
		Data struct {
			TotalJobs    int64            `json:"totalJobs"`
			TopLocations []map[string]any `json:"topLocations"`
			Fallback     bool             `json:"fallback"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, int64(4), body.Data.TotalJobs)
	require.Len(t, body.Data.TopLocations, 1)
	assert.Equal(t, "Berlin", body.Data.TopLocations[0]["value"])
	assert.False(t, body.Data.Fallback)
}
