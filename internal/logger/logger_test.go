package logger

import (
	"testing"

	"github.com/jackc/pgx/v5/tracelog"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"

	"github.com/stacygol/bloglist/internal/config"
)

func TestGetPgxTraceLogLevel(t *testing.T) {
	cases := map[zerolog.Level]tracelog.LogLevel{
		zerolog.TraceLevel: tracelog.LogLevelTrace,
		zerolog.DebugLevel: tracelog.LogLevelDebug,
		zerolog.InfoLevel:  tracelog.LogLevelInfo,
		zerolog.WarnLevel:  tracelog.LogLevelWarn,
		zerolog.ErrorLevel: tracelog.LogLevelError,
		zerolog.Disabled:   tracelog.LogLevelNone,
	}
	for level, want := range cases {
		require.Equal(t, want, GetPgxTraceLogLevel(level), level.String())
	}
}

func TestNewLoggerService_NoLicenseDisablesAPM(t *testing.T) {
	svc := NewLoggerService(config.DefaultObservabilityConfig())

	require.Nil(t, svc.GetApplication())
	svc.Shutdown()

	var nilSvc *LoggerService
	require.Nil(t, nilSvc.GetApplication())
}

func TestNewLogger_UsesConfiguredLevel(t *testing.T) {
	cfg := config.DefaultObservabilityConfig()
	cfg.Logging.Level = "warn"

	l := NewLogger(cfg)
	require.Equal(t, zerolog.WarnLevel, l.GetLevel())
}

func TestWithTraceContext_NilTransaction(t *testing.T) {
	base := zerolog.Nop()
	require.Equal(t, base, WithTraceContext(base, nil))
}
