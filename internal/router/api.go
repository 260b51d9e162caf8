package router

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/stacygol/bloglist/internal/handler"
)

func registerBlogRoutes(api *echo.Group, h *handler.BlogHandler) {
	blogs := api.Group("/blogs")

	blogs.GET("", handler.Handle(h.Handler, h.ListBlogs, http.StatusOK))
	blogs.POST("", handler.Handle(h.Handler, h.CreateBlog, http.StatusOK))
	blogs.GET("/stats", handler.Handle(h.Handler, h.GetStats, http.StatusOK))
	blogs.PUT("/:id", handler.Handle(h.Handler, h.UpdateBlog, http.StatusOK))
	blogs.DELETE("/:id", handler.HandleNoContent(h.Handler, h.DeleteBlog, http.StatusNoContent))
}

func registerUserRoutes(api *echo.Group, h *handler.UserHandler) {
	users := api.Group("/users")

	users.GET("", handler.Handle(h.Handler, h.ListUsers, http.StatusOK))
	users.POST("", handler.Handle(h.Handler, h.RegisterUser, http.StatusCreated))
}

func registerPersonRoutes(api *echo.Group, h *handler.PersonHandler) {
	persons := api.Group("/persons")

	persons.GET("", handler.Handle(h.Handler, h.ListPersons, http.StatusOK))
	persons.POST("", handler.Handle(h.Handler, h.CreatePerson, http.StatusOK))
	persons.GET("/:id", handler.Handle(h.Handler, h.GetPerson, http.StatusOK))
	persons.PUT("/:id", handler.Handle(h.Handler, h.UpdatePerson, http.StatusOK))
	persons.DELETE("/:id", handler.HandleNoContent(h.Handler, h.DeletePerson, http.StatusNoContent))
}

func registerInfoRoute(r *echo.Echo, h *handler.PersonHandler) {
	r.GET("/info", handler.HandleText(h.Handler, h.Info, http.StatusOK))
}
