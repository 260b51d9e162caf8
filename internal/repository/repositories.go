package repository

import (
	"github.com/stacygol/bloglist/internal/server"
)

type Repositories struct {
	Blogs   *BlogRepository
	Users   *UserRepository
	Persons *PersonRepository
	Stats   *StatsCache
}

func NewRepositories(s *server.Server) *Repositories {
	return &Repositories{
		Blogs:   NewBlogRepository(s.DB.Pool),
		Users:   NewUserRepository(s.DB.Pool),
		Persons: NewPersonRepository(s.DB.Pool),
		Stats:   NewStatsCache(s.Redis),
	}
}
