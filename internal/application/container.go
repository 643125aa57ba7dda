package application

import (
	appjob "github.com/hirestack/jobboard-go/internal/application/job"
	"github.com/hirestack/jobboard-go/internal/repository"
	"github.com/hirestack/jobboard-go/internal/tracker"
	"github.com/hirestack/jobboard-go/pkg/logging"
)

type Services struct {
	Job *appjob.Service
}

func New(repos *repository.Repos, trk tracker.SearchTracker, log *logging.Logger) *Services {
	return &Services{
		Job: appjob.NewService(repos, trk, log),
	}
}
