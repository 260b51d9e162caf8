package router

import (
	"github.com/labstack/echo/v4"

	"github.com/stacygol/bloglist/internal/handler"
	"github.com/stacygol/bloglist/internal/middleware"
)

// registerSystemRoutes adds the routes that sit outside the API.
func registerSystemRoutes(r *echo.Echo, h *handler.Handlers, m *middleware.Middlewares) {
	r.GET("/status", h.Health.CheckHealth)
	r.GET("/metrics", echo.WrapHandler(m.Metrics.Handler()))

	r.Static("/static", handler.DocsDir)
	r.GET("/docs", h.OpenAPI.ServeOpenAPIUI)
}
