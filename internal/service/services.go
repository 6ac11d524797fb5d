package service

import (
	"github.com/deppfellow/acm/internal/lib/job"
	"github.com/deppfellow/acm/internal/metric"
	"github.com/deppfellow/acm/internal/repository"
	"github.com/deppfellow/acm/internal/server"
)

type Services struct {
	Auth     *AuthService
	Job      *job.JobService
	Employee *EmployeeService
	Module   *ModuleService
}

func NewServices(s *server.Server, repos *repository.Repositories) (*Services, error) {
	authService := NewAuthService(s)

	var notifier ChangeNotifier
	if s.Job != nil {
		notifier = job.NewNotifier(s.Job.Client)
	}

	var metrics *metric.Metrics
	if s.Metrics != nil {
		metrics = s.Metrics.Metrics
	}

	resolver := NewModuleResolver(repos.Module, s.Logger)

	return &Services{
		Job:      s.Job,
		Auth:     authService,
		Employee: NewEmployeeService(repos.Employee, resolver, notifier, metrics, s.Logger),
		Module:   NewModuleService(repos.Module),
	}, nil
}
