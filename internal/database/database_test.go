package database

import (
	"bytes"
	"context"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"

	"github.com/stacygol/bloglist/internal/config"
	"github.com/stacygol/bloglist/internal/logger"
)

func TestSlowQueryTracer(t *testing.T) {
	var buf bytes.Buffer
	log := zerolog.New(&buf)

	clock := time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC)
	tracer := &slowQueryTracer{
		threshold: 100 * time.Millisecond,
		logger:    &log,
		now:       func() time.Time { return clock },
	}

	ctx := tracer.TraceQueryStart(context.Background(), nil, pgx.TraceQueryStartData{SQL: "SELECT 1"})
	clock = clock.Add(10 * time.Millisecond)
	tracer.TraceQueryEnd(ctx, nil, pgx.TraceQueryEndData{})
	require.Empty(t, buf.String())

	ctx = tracer.TraceQueryStart(context.Background(), nil, pgx.TraceQueryStartData{SQL: "SELECT pg_sleep(1)"})
	clock = clock.Add(time.Second)
	tracer.TraceQueryEnd(ctx, nil, pgx.TraceQueryEndData{})
	require.Contains(t, buf.String(), "slow query")
	require.Contains(t, buf.String(), "pg_sleep")
}

func TestQueryTracer_Selection(t *testing.T) {
	log := zerolog.Nop()
	cfg := &config.Config{Primary: config.Primary{Env: "production"}}
	var noAPM *logger.LoggerService

	require.Nil(t, queryTracer(cfg, &log, noAPM))

	cfg.Observability = config.DefaultObservabilityConfig()
	require.IsType(t, &slowQueryTracer{}, queryTracer(cfg, &log, noAPM))

	cfg.Primary.Env = "local"
	require.IsType(t, &multiTracer{}, queryTracer(cfg, &log, noAPM))
}
