package handler

import (
	"github.com/labstack/echo/v4"

	"github.com/stacygol/bloglist/internal/model"
	"github.com/stacygol/bloglist/internal/server"
	"github.com/stacygol/bloglist/internal/service"
)

type BlogHandler struct {
	Handler
	blogs *service.BlogService
	stats *service.StatsService
}

func NewBlogHandler(s *server.Server, blogs *service.BlogService, stats *service.StatsService) *BlogHandler {
	return &BlogHandler{
		Handler: NewHandler(s),
		blogs:   blogs,
		stats:   stats,
	}
}

func (h *BlogHandler) ListBlogs(c echo.Context, _ *model.NoParams) ([]model.Blog, error) {
	return h.blogs.List(c.Request().Context())
}

func (h *BlogHandler) CreateBlog(c echo.Context, req *model.CreateBlogRequest) (*model.Blog, error) {
	return h.blogs.Create(c.Request().Context(), req)
}

func (h *BlogHandler) UpdateBlog(c echo.Context, req *model.UpdateBlogRequest) (*model.Blog, error) {
	return h.blogs.Update(c.Request().Context(), req)
}

func (h *BlogHandler) DeleteBlog(c echo.Context, req *model.DeleteBlogRequest) error {
	return h.blogs.Delete(c.Request().Context(), req.ID())
}

func (h *BlogHandler) GetStats(c echo.Context, _ *model.NoParams) (*model.BlogStats, error) {
	return h.stats.Get(c.Request().Context())
}
