package handler

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/stacygol/bloglist/internal/middleware"
	"github.com/stacygol/bloglist/internal/server"
)

const defaultHealthCheckTimeout = 5 * time.Second

var errDatabaseNotConfigured = errors.New("database not configured")

type HealthHandler struct {
	Handler
}

func NewHealthHandler(s *server.Server) *HealthHandler {
	return &HealthHandler{
		Handler: NewHandler(s),
	}
}

// CheckHealth pings the configured dependencies. Only the database decides
// the overall status: without Redis the API still serves every route.
func (h *HealthHandler) CheckHealth(c echo.Context) error {
	start := time.Now()

	logger := middleware.GetLogger(c).With().
		Str("operation", "health_check").
		Logger()

	checks := map[string]any{}
	response := map[string]any{
		"status":      "healthy",
		"timestamp":   time.Now().UTC(),
		"environment": h.server.Config.Primary.Env,
		"checks":      checks,
	}

	isHealthy := true
	enabled, timeout := h.checkSettings()

	if enabled["database"] {
		dbStart := time.Now()
		if err := h.pingDatabase(c.Request().Context(), timeout); err != nil {
			isHealthy = false
			checks["database"] = h.failedCheck(&logger, "database", dbStart, err)
		} else {
			checks["database"] = passedCheck(&logger, "database", dbStart)
		}
	}

	if enabled["redis"] && h.server.Redis != nil {
		redisStart := time.Now()

		ctx, cancel := context.WithTimeout(c.Request().Context(), timeout)
		err := h.server.Redis.Ping(ctx).Err()
		cancel()

		if err != nil {
			checks["redis"] = h.failedCheck(&logger, "redis", redisStart, err)
		} else {
			checks["redis"] = passedCheck(&logger, "redis", redisStart)
		}
	}

	if !isHealthy {
		response["status"] = "unhealthy"

		logger.Warn().
			Dur("total_duration", time.Since(start)).
			Msg("health check failed")

		return c.JSON(http.StatusServiceUnavailable, response)
	}

	return c.JSON(http.StatusOK, response)
}

// checkSettings reads observability.health_checks. Entries may arrive as
// one comma separated string from the environment.
func (h *HealthHandler) checkSettings() (map[string]bool, time.Duration) {
	obs := h.server.Config.Observability
	if obs == nil {
		return map[string]bool{"database": true, "redis": true}, defaultHealthCheckTimeout
	}

	enabled := map[string]bool{}
	for _, entry := range obs.HealthChecks.Checks {
		for _, name := range strings.Split(entry, ",") {
			enabled[strings.TrimSpace(name)] = true
		}
	}

	timeout := obs.HealthChecks.Timeout
	if timeout <= 0 {
		timeout = defaultHealthCheckTimeout
	}
	return enabled, timeout
}

func (h *HealthHandler) pingDatabase(ctx context.Context, timeout time.Duration) error {
	if h.server.DB == nil || h.server.DB.Pool == nil {
		return errDatabaseNotConfigured
	}

	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()
	return h.server.DB.Pool.Ping(ctx)
}

func (h *HealthHandler) failedCheck(logger *zerolog.Logger, name string, start time.Time, err error) map[string]any {
	elapsed := time.Since(start)

	logger.Error().
		Err(err).
		Str("check", name).
		Dur("response_time", elapsed).
		Msg("health check failed")

	if app := h.server.LoggerService.GetApplication(); app != nil {
		app.RecordCustomEvent("HealthCheckError", map[string]any{
			"check_type":       name,
			"operation":        "health_check",
			"error_type":       name + "_unhealthy",
			"response_time_ms": elapsed.Milliseconds(),
			"error_message":    err.Error(),
		})
	}

	return map[string]any{
		"status":        "unhealthy",
		"response_time": elapsed.String(),
		"error":         err.Error(),
	}
}

func passedCheck(logger *zerolog.Logger, name string, start time.Time) map[string]any {
	elapsed := time.Since(start)

	logger.Debug().
		Str("check", name).
		Dur("response_time", elapsed).
		Msg("health check passed")

	return map[string]any{
		"status":        "healthy",
		"response_time": elapsed.String(),
	}
}
