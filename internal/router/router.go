// Package router builds the echo instance: global middleware in order,
// the error handler, and every route.
package router

import (
	"github.com/labstack/echo/v4"

	"github.com/stacygol/bloglist/internal/handler"
	"github.com/stacygol/bloglist/internal/middleware"
	"github.com/stacygol/bloglist/internal/server"
)

func NewRouter(s *server.Server, h *handler.Handlers) *echo.Echo {
	middlewares := middleware.NewMiddlewares(s)

	router := echo.New()
	router.HideBanner = true
	router.HidePort = true
	router.HTTPErrorHandler = middlewares.Global.GlobalErrorHandler

	// The request id and context logger come first so every later layer,
	// including the limiter's rejections, logs with them.
	router.Use(
		middleware.RequestID(),
		middlewares.Tracing.NewRelicMiddleware(),
		middlewares.Tracing.EnhanceTracing(),
		middlewares.ContextEnhancer.EnhanceContext(),
		middlewares.Global.RequestLogger(),
		middlewares.Metrics.Instrument(),
		middlewares.Global.Recover(),
		middlewares.Global.CORS(),
		middlewares.Global.Secure(),
		middlewares.RateLimit.Limit(),
		middlewares.Global.Static(),
	)

	registerSystemRoutes(router, h, middlewares)

	api := router.Group("/api")
	registerBlogRoutes(api, h.Blog)
	registerUserRoutes(api, h.User)
	registerPersonRoutes(api, h.Person)

	registerInfoRoute(router, h.Person)

	return router
}
