package handler

import (
	"github.com/stacygol/bloglist/internal/server"
	"github.com/stacygol/bloglist/internal/service"
)

type Handlers struct {
	Blog    *BlogHandler
	User    *UserHandler
	Person  *PersonHandler
	Health  *HealthHandler
	OpenAPI *OpenAPIHandler
}

func NewHandlers(s *server.Server, services *service.Services) *Handlers {
	return &Handlers{
		Blog:    NewBlogHandler(s, services.Blogs, services.Stats),
		User:    NewUserHandler(s, services.Users),
		Person:  NewPersonHandler(s, services.Persons),
		Health:  NewHealthHandler(s),
		OpenAPI: NewOpenAPIHandler(s),
	}
}
