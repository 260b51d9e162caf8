package middleware

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"
)

func TestRequestID(t *testing.T) {
	tests := []struct {
		name   string
		header string
		keep   bool
	}{
		{name: "generated when missing", header: "", keep: false},
		{name: "caller id reused", header: "web-42:retry.1", keep: true},
		{name: "control characters replaced", header: "abc\ninjected", keep: false},
		{name: "oversized id replaced", header: strings.Repeat("a", maxRequestIDLength+1), keep: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := echo.New()
			req := httptest.NewRequest(http.MethodGet, "/api/blogs", nil)
			if tt.header != "" {
				req.Header.Set(RequestIDHeader, tt.header)
			}
			rec := httptest.NewRecorder()
			c := e.NewContext(req, rec)

			var seen string
			err := RequestID()(func(c echo.Context) error {
				seen = GetRequestID(c)
				return nil
			})(c)
			require.NoError(t, err)

			require.Equal(t, seen, rec.Header().Get(RequestIDHeader))
			if tt.keep {
				require.Equal(t, tt.header, seen)
				return
			}
			_, parseErr := uuid.Parse(seen)
			require.NoError(t, parseErr)
		})
	}
}
