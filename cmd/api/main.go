package main

import (
	"context"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/hirestack/jobboard-go/internal/api/handlers"
	"github.com/hirestack/jobboard-go/internal/api/middleware"
	"github.com/hirestack/jobboard-go/internal/api/routes"
	"github.com/hirestack/jobboard-go/internal/application"
	"github.com/hirestack/jobboard-go/internal/config"
	"github.com/hirestack/jobboard-go/internal/config/db"
	"github.com/hirestack/jobboard-go/internal/domain/job"
	"github.com/hirestack/jobboard-go/internal/repository"
	"github.com/hirestack/jobboard-go/internal/tracker"
	"github.com/hirestack/jobboard-go/pkg/logging"
)

func main() {
	config.LoadConfig()

	logger := logging.New(config.LogLevel)
	defer logger.Sync()

	middleware.Init()

	repos := &repository.Repos{}

	// The structured store is the primary backend, but its absence is
	// survivable: listings keep working from the snapshot.
	if err := db.Init(); err != nil {
		logger.Warn("job store unavailable at startup, serving snapshot only", "error", err)
	} else {
		if err := db.DB.AutoMigrate(&job.Job{}); err != nil {
			logger.Fatal("failed to migrate database", "error", err)
		}
		repos.Primary = repository.NewJobRepo(db.DB)
	}

	// The fallback dataset is loaded once and never refreshed.
	snapshot, err := repository.LoadSnapshot(config.SnapshotFile)
	if err != nil {
		logger.Warn("fallback snapshot not loaded", "error", err)
	} else {
		repos.Fallback = repository.NewMemoryJobRepo(snapshot)
		logger.Info("fallback snapshot loaded", "jobs", len(snapshot))
	}

	if repos.Primary == nil && repos.Fallback == nil {
		logger.Fatal("no job backend available: database unreachable and no snapshot")
	}

	var trk tracker.SearchTracker = tracker.Noop{}
	if config.RedisURL != "" {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		rt, err := tracker.NewRedisTracker(ctx, config.RedisURL)
		cancel()
		if err != nil {
			logger.Warn("search tracker disabled", "error", err)
		} else {
			trk = rt
			defer rt.Close()
		}
	}

	services := application.New(repos, trk, logger)

	if !config.IsDevelopment() {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.CORSMiddleware())
	router.Use(middleware.RequestLogger(logger))

	routes.RegisterRoutes(router, handlers.New(services))

	port := ":" + config.ServerPort
	logger.Info("starting API server", "port", port)
	if err := router.Run(port); err != nil {
		logger.Fatal("failed to start", "error", err)
	}
}
