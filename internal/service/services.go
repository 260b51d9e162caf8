package service

import (
	"github.com/stacygol/bloglist/internal/lib/job"
	"github.com/stacygol/bloglist/internal/repository"
	"github.com/stacygol/bloglist/internal/server"
)

type Services struct {
	Blogs   *BlogService
	Users   *UserService
	Persons *PersonService
	Stats   *StatsService
	Job     *job.JobService
}

// NewServices wires the services and registers the stats refresher with
// the job worker. The worker is started by the caller once this returns.
// Without a job service, blog writes only drop the cached stats.
func NewServices(s *server.Server, repos *repository.Repositories) (*Services, error) {
	stats := NewStatsService(repos.Blogs, repos.Stats, s.Config.Stats.CacheTTL, s.Logger)

	var enqueuer StatsEnqueuer
	if s.Job != nil {
		s.Job.InitHandlers(stats)
		enqueuer = s.Job
	}

	return &Services{
		Blogs:   NewBlogService(repos.Blogs, enqueuer, stats, s.Logger),
		Users:   NewUserService(repos.Users, s.Config.Auth.PasswordHashCost, s.Logger),
		Persons: NewPersonService(repos.Persons),
		Stats:   stats,
		Job:     s.Job,
	}, nil
}
