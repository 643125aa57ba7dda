package handlers

import (
	"github.com/hirestack/jobboard-go/internal/application"
)

type Handlers struct {
	Job *JobHandler
}

func New(svc *application.Services) *Handlers {
	return &Handlers{
		Job: NewJobHandler(svc.Job),
	}
}
