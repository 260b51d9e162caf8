package router

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/stacygol/bloglist/internal/config"
	"github.com/stacygol/bloglist/internal/handler"
	"github.com/stacygol/bloglist/internal/model"
	"github.com/stacygol/bloglist/internal/repository/memory"
	"github.com/stacygol/bloglist/internal/server"
	"github.com/stacygol/bloglist/internal/service"
)

// syncRefresh runs the stats refresh in the request, standing in for the
// job worker.
type syncRefresh struct {
	stats *service.StatsService
}

func (r syncRefresh) EnqueueStatsRefresh(ctx context.Context, _ string) error {
	return r.stats.RefreshStats(ctx)
}

type testApp struct {
	router  *echo.Echo
	blogs   *memory.BlogRepository
	users   *memory.UserRepository
	persons *memory.PersonRepository
	cfg     *config.Config
}

func newTestApp(t *testing.T, configure ...func(*config.Config)) *testApp {
	t.Helper()

	cfg := &config.Config{
		Primary: config.Primary{Env: "test"},
		Server: config.ServerConfig{
			Port:               "0",
			CORSAllowedOrigins: []string{"*"},
			StaticDir:          t.TempDir(),
			RateLimit:          -1,
		},
		Auth:  config.AuthConfig{PasswordHashCost: bcrypt.MinCost},
		Stats: config.StatsConfig{CacheTTL: time.Minute},
	}
	for _, fn := range configure {
		fn(cfg)
	}

	log := zerolog.Nop()
	srv := &server.Server{Config: cfg, Logger: &log}

	app := &testApp{
		blogs:   memory.NewBlogRepository(),
		users:   memory.NewUserRepository(),
		persons: memory.NewPersonRepository(),
		cfg:     cfg,
	}

	stats := service.NewStatsService(app.blogs, memory.NewStatsCache(), cfg.Stats.CacheTTL, &log)
	services := &service.Services{
		Blogs:   service.NewBlogService(app.blogs, syncRefresh{stats: stats}, stats, &log),
		Users:   service.NewUserService(app.users, cfg.Auth.PasswordHashCost, &log),
		Persons: service.NewPersonService(app.persons),
		Stats:   stats,
	}

	app.router = NewRouter(srv, handler.NewHandlers(srv, services))
	return app
}

func (a *testApp) do(t *testing.T, method, target, body string) *httptest.ResponseRecorder {
	t.Helper()

	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, target, nil)
	} else {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}

	rec := httptest.NewRecorder()
	a.router.ServeHTTP(rec, req)
	return rec
}

func decode[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()

	var v T
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &v), rec.Body.String())
	return v
}

type errorBody struct {
	Code   string `json:"code"`
	Error  string `json:"error"`
	Status int    `json:"status"`
}

func (a *testApp) blogCount(t *testing.T) int {
	t.Helper()

	blogs, err := a.blogs.List(context.Background())
	require.NoError(t, err)
	return len(blogs)
}

func (a *testApp) seedBlog(t *testing.T, blog model.Blog) model.Blog {
	t.Helper()

	created, err := a.blogs.Create(context.Background(), &blog)
	require.NoError(t, err)
	return *created
}

func TestBlogs_CreateAndList(t *testing.T) {
	app := newTestApp(t)

	rec := app.do(t, http.MethodPost, "/api/blogs", `{"title":"Type wars","author":"Robert C. Martin","url":"http://blog.cleancoder.com"}`)
	require.Equal(t, http.StatusOK, rec.Code)

	created := decode[model.Blog](t, rec)
	require.NotEqual(t, uuid.Nil, created.ID)
	require.Equal(t, 0, created.Likes)

	rec = app.do(t, http.MethodGet, "/api/blogs", "")
	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, []model.Blog{created}, decode[[]model.Blog](t, rec))
}

func TestBlogs_ListEmptyIsArray(t *testing.T) {
	app := newTestApp(t)

	rec := app.do(t, http.MethodGet, "/api/blogs", "")
	require.Equal(t, http.StatusOK, rec.Code)
	require.JSONEq(t, `[]`, rec.Body.String())
}

func TestBlogs_CreateRequiresTitleAndURL(t *testing.T) {
	app := newTestApp(t)

	cases := map[string]struct {
		body    string
		message string
	}{
		"missing title": {`{"author":"a","url":"http://x"}`, "title is required"},
		"empty title":   {`{"title":"","url":"http://x"}`, "title is required"},
		"missing url":   {`{"title":"t","author":"a"}`, "url is required"},
	}

	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			rec := app.do(t, http.MethodPost, "/api/blogs", tc.body)
			require.Equal(t, http.StatusBadRequest, rec.Code)
			require.Equal(t, tc.message, decode[errorBody](t, rec).Error)
		})
	}

	require.Equal(t, 0, app.blogCount(t))
}

func TestBlogs_LikesOutsideIntegerRange(t *testing.T) {
	app := newTestApp(t)
	existing := app.seedBlog(t, model.Blog{Title: "a", URL: "u", Likes: 5})

	rec := app.do(t, http.MethodPost, "/api/blogs", `{"title":"t","url":"u","likes":3000000000}`)
	require.Equal(t, http.StatusBadRequest, rec.Code)
	require.Equal(t, "likes must not exceed 2147483647", decode[errorBody](t, rec).Error)

	rec = app.do(t, http.MethodPut, "/api/blogs/"+existing.ID.String(), `{"title":"a","url":"u","likes":3000000000}`)
	require.Equal(t, http.StatusBadRequest, rec.Code)

	rec = app.do(t, http.MethodPost, "/api/blogs", `{"title":"t","url":"u","likes":2147483647}`)
	require.Equal(t, http.StatusOK, rec.Code)

	blogs := decode[[]model.Blog](t, app.do(t, http.MethodGet, "/api/blogs", ""))
	require.Len(t, blogs, 2)
	require.Equal(t, 5, blogs[0].Likes)
}

func TestBlogs_CreateRejectsMalformedBody(t *testing.T) {
	app := newTestApp(t)

	rec := app.do(t, http.MethodPost, "/api/blogs", `{"title":`)
	require.Equal(t, http.StatusBadRequest, rec.Code)
	require.Equal(t, 0, app.blogCount(t))
}

func TestBlogs_Delete(t *testing.T) {
	app := newTestApp(t)
	existing := app.seedBlog(t, model.Blog{Title: "a", URL: "u"})

	rec := app.do(t, http.MethodDelete, "/api/blogs/"+uuid.NewString(), "")
	require.Equal(t, http.StatusNotFound, rec.Code)
	require.Equal(t, "Blog not found", decode[errorBody](t, rec).Error)
	require.Equal(t, 1, app.blogCount(t))

	rec = app.do(t, http.MethodDelete, "/api/blogs/"+existing.ID.String(), "")
	require.Equal(t, http.StatusNoContent, rec.Code)
	require.Empty(t, rec.Body.String())
	require.Equal(t, 0, app.blogCount(t))
}

func TestBlogs_MalformedID(t *testing.T) {
	app := newTestApp(t)

	for _, method := range []string{http.MethodDelete, http.MethodPut} {
		rec := app.do(t, method, "/api/blogs/5a3d5da59070081a82a3445", "")
		require.Equal(t, http.StatusBadRequest, rec.Code, method)

		body := decode[errorBody](t, rec)
		require.Equal(t, "malformatted id", body.Error)
		require.Equal(t, "MALFORMATTED_ID", body.Code)
	}
}

func TestBlogs_Update(t *testing.T) {
	app := newTestApp(t)
	existing := app.seedBlog(t, model.Blog{Title: "a", Author: "b", URL: "u", Likes: 3})

	rec := app.do(t, http.MethodPut, "/api/blogs/"+existing.ID.String(), `{"title":"a","author":"b","url":"u","likes":4}`)
	require.Equal(t, http.StatusOK, rec.Code)
	updated := decode[model.Blog](t, rec)
	require.Equal(t, 4, updated.Likes)
	require.Equal(t, existing.ID, updated.ID)

	rec = app.do(t, http.MethodGet, "/api/blogs", "")
	require.Equal(t, []model.Blog{updated}, decode[[]model.Blog](t, rec))
}

func TestBlogs_UpdateUnknownAndInvalid(t *testing.T) {
	app := newTestApp(t)
	existing := app.seedBlog(t, model.Blog{Title: "a", URL: "u"})

	rec := app.do(t, http.MethodPut, "/api/blogs/"+uuid.NewString(), `{"title":"a","url":"u","likes":1}`)
	require.Equal(t, http.StatusNotFound, rec.Code)

	rec = app.do(t, http.MethodPut, "/api/blogs/"+uuid.NewString(), "")
	require.Equal(t, http.StatusNotFound, rec.Code)

	rec = app.do(t, http.MethodPut, "/api/blogs/"+existing.ID.String(), `{"title":"","url":"u"}`)
	require.Equal(t, http.StatusBadRequest, rec.Code)
	require.Equal(t, "title is required", decode[errorBody](t, rec).Error)
}

func TestBlogs_Stats(t *testing.T) {
	app := newTestApp(t)

	rec := app.do(t, http.MethodGet, "/api/blogs/stats", "")
	require.Equal(t, http.StatusOK, rec.Code)
	empty := decode[model.BlogStats](t, rec)
	require.Equal(t, 0, empty.TotalLikes)
	require.Nil(t, empty.FavoriteBlog)

	app.do(t, http.MethodPost, "/api/blogs", `{"title":"a","author":"Ann","url":"u","likes":1}`)
	app.do(t, http.MethodPost, "/api/blogs", `{"title":"b","author":"Bob","url":"u","likes":4}`)

	rec = app.do(t, http.MethodGet, "/api/blogs/stats", "")
	require.Equal(t, http.StatusOK, rec.Code)
	stats := decode[model.BlogStats](t, rec)
	require.Equal(t, 2, stats.BlogCount)
	require.Equal(t, 5, stats.TotalLikes)
	require.Equal(t, &model.FavoriteBlog{Title: "b", Author: "Bob", Likes: 4}, stats.FavoriteBlog)
	require.Equal(t, &model.AuthorBlogs{Author: "Ann", Blogs: 1}, stats.MostBlogs)
}

func TestUsers_Register(t *testing.T) {
	app := newTestApp(t)

	rec := app.do(t, http.MethodPost, "/api/users", `{"username":"mluukkai","name":"Matti Luukkainen","password":"salainen"}`)
	require.Equal(t, http.StatusCreated, rec.Code)
	require.NotContains(t, rec.Body.String(), "password")

	created := decode[map[string]any](t, rec)
	require.Equal(t, "mluukkai", created["username"])
	require.Equal(t, "Matti Luukkainen", created["name"])
	require.NotEmpty(t, created["id"])

	rec = app.do(t, http.MethodGet, "/api/users", "")
	require.Equal(t, http.StatusOK, rec.Code)
	require.NotContains(t, rec.Body.String(), "password")
	require.Len(t, decode[[]model.User](t, rec), 1)
}

func TestUsers_RegisterRejectsInvalid(t *testing.T) {
	app := newTestApp(t)
	rec := app.do(t, http.MethodPost, "/api/users", `{"username":"root","password":"sekret"}`)
	require.Equal(t, http.StatusCreated, rec.Code)

	cases := map[string]struct {
		body    string
		message string
	}{
		"short username": {`{"username":"ml","password":"salainen"}`, "Username and password are required."},
		"short password": {`{"username":"mluukkai","password":"sa"}`, "Username and password are required."},
		"missing":        {`{"name":"x"}`, "Username and password are required."},
		"duplicate":      {`{"username":"root","password":"salainen"}`, "Username is already taken."},
	}

	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			rec := app.do(t, http.MethodPost, "/api/users", tc.body)
			require.Equal(t, http.StatusBadRequest, rec.Code)
			require.Contains(t, decode[errorBody](t, rec).Error, tc.message)
		})
	}

	users, err := app.users.List(context.Background())
	require.NoError(t, err)
	require.Len(t, users, 1)
}

func TestPersons_CRUD(t *testing.T) {
	app := newTestApp(t)

	rec := app.do(t, http.MethodPost, "/api/persons", `{"name":"Arto Hellas","number":"04-0123456"}`)
	require.Equal(t, http.StatusOK, rec.Code)
	created := decode[model.Person](t, rec)

	rec = app.do(t, http.MethodGet, "/api/persons/"+created.ID.String(), "")
	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, created, decode[model.Person](t, rec))

	rec = app.do(t, http.MethodPut, "/api/persons/"+created.ID.String(), `{"name":"Arto Hellas","number":"09-555"}`)
	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, "09-555", decode[model.Person](t, rec).Number)

	rec = app.do(t, http.MethodGet, "/api/persons", "")
	require.Len(t, decode[[]model.Person](t, rec), 1)

	rec = app.do(t, http.MethodDelete, "/api/persons/"+created.ID.String(), "")
	require.Equal(t, http.StatusNoContent, rec.Code)

	rec = app.do(t, http.MethodDelete, "/api/persons/"+created.ID.String(), "")
	require.Equal(t, http.StatusNoContent, rec.Code)

	rec = app.do(t, http.MethodGet, "/api/persons/"+created.ID.String(), "")
	require.Equal(t, http.StatusNotFound, rec.Code)
	require.Equal(t, "Person not found", decode[errorBody](t, rec).Error)
}

func TestPersons_Validation(t *testing.T) {
	app := newTestApp(t)

	for _, body := range []string{
		`{"name":"Arto Hellas"}`,
		`{"name":"Arto Hellas","number":"0401234556"}`,
		`{"name":"Ar","number":"04-0123456"}`,
	} {
		rec := app.do(t, http.MethodPost, "/api/persons", body)
		require.Equal(t, http.StatusBadRequest, rec.Code, body)
	}

	rec := app.do(t, http.MethodPut, "/api/persons/"+uuid.NewString(), `{"name":"Arto Hellas","number":"04-0123456"}`)
	require.Equal(t, http.StatusNotFound, rec.Code)
}

func TestInfo(t *testing.T) {
	app := newTestApp(t)
	app.do(t, http.MethodPost, "/api/persons", `{"name":"Arto Hellas","number":"04-0123456"}`)

	rec := app.do(t, http.MethodGet, "/info", "")
	require.Equal(t, http.StatusOK, rec.Code)
	require.True(t, strings.HasPrefix(rec.Header().Get(echo.HeaderContentType), echo.MIMETextPlain))

	lines := strings.SplitN(rec.Body.String(), "\n", 2)
	require.Len(t, lines, 2)
	require.Equal(t, "Phonebook has info for 1 people", lines[0])
	_, err := time.Parse(time.RFC1123, lines[1])
	require.NoError(t, err)
}

func TestUnknownEndpoint(t *testing.T) {
	app := newTestApp(t)

	for _, tc := range []struct{ method, path string }{
		{http.MethodGet, "/api/nothing-here"},
		{http.MethodGet, "/no-such-page"},
		{http.MethodPatch, "/api/blogs"},
	} {
		rec := app.do(t, tc.method, tc.path, "")
		require.Equal(t, http.StatusNotFound, rec.Code, tc.path)
		require.Equal(t, "unknown endpoint", decode[errorBody](t, rec).Error)
	}
}

func TestStaticFrontend(t *testing.T) {
	app := newTestApp(t)
	require.NoError(t, os.WriteFile(filepath.Join(app.cfg.Server.StaticDir, "index.html"), []byte("<h1>bloglist</h1>"), 0o600))

	rec := app.do(t, http.MethodGet, "/", "")
	require.Equal(t, http.StatusOK, rec.Code)
	require.Contains(t, rec.Body.String(), "<h1>bloglist</h1>")
}

func TestRequestIDHeader(t *testing.T) {
	app := newTestApp(t)

	rec := app.do(t, http.MethodGet, "/api/blogs", "")
	require.NotEmpty(t, rec.Header().Get("X-Request-ID"))

	req := httptest.NewRequest(http.MethodGet, "/api/blogs", nil)
	req.Header.Set("X-Request-ID", "abc-123")
	rec = httptest.NewRecorder()
	app.router.ServeHTTP(rec, req)
	require.Equal(t, "abc-123", rec.Header().Get("X-Request-ID"))
}

func TestStatusWithoutDatabase(t *testing.T) {
	app := newTestApp(t)

	rec := app.do(t, http.MethodGet, "/status", "")
	require.Equal(t, http.StatusServiceUnavailable, rec.Code)

	body := decode[map[string]any](t, rec)
	require.Equal(t, "unhealthy", body["status"])
}

func TestMetrics(t *testing.T) {
	app := newTestApp(t)
	app.do(t, http.MethodGet, "/api/blogs", "")
	app.do(t, http.MethodGet, "/api/missing", "")

	rec := app.do(t, http.MethodGet, "/metrics", "")
	require.Equal(t, http.StatusOK, rec.Code)
	require.Contains(t, rec.Body.String(), `http_requests_total{method="GET",route="/api/blogs",status="200"} 1`)
	require.Contains(t, rec.Body.String(), "http_request_duration_seconds")
}

func TestRateLimit(t *testing.T) {
	app := newTestApp(t, func(cfg *config.Config) {
		cfg.Server.RateLimit = 1
		cfg.Server.RateLimitBurst = 1
	})

	rec := app.do(t, http.MethodGet, "/api/blogs", "")
	require.Equal(t, http.StatusOK, rec.Code)

	rec = app.do(t, http.MethodGet, "/api/blogs", "")
	require.Equal(t, http.StatusTooManyRequests, rec.Code)
	require.Equal(t, "TOO_MANY_REQUESTS", decode[errorBody](t, rec).Code)
}
