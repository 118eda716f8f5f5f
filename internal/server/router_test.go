package server_test

import (
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"regexp"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"

	"github.com/mongoflow/web/internal/handlers"
	"github.com/mongoflow/web/internal/metrics"
	"github.com/mongoflow/web/internal/middleware"
	"github.com/mongoflow/web/internal/server"
	"github.com/mongoflow/web/internal/shell"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

var navLinkRe = regexp.MustCompile(`<a href="([^"]*)"[^>]*>([^<]*)</a>`)

// testRouter builds the full application router.
func testRouter(t *testing.T, m *metrics.Metrics) http.Handler {
	t.Helper()

	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelError}))

	sh, err := shell.Default("MongoFlow")
	require.NoError(t, err)

	h := handlers.New(sh, m, logger)
	return server.NewRouter(h, sh, server.RouterOptions{Logger: logger, Metrics: m})
}

func get(t *testing.T, h http.Handler, method, path string) *httptest.ResponseRecorder {
	t.Helper()
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(method, path, nil))
	return rec
}

func TestRouter_ShellRoutes(t *testing.T) {
	router := testRouter(t, metrics.New())

	tests := []struct {
		path       string
		wantStatus int
		want       string
		notWant    string
	}{
		{"/", http.StatusOK, `data-view="dashboard"`, `data-view="items"`},
		{"/items", http.StatusOK, `data-view="items"`, `data-view="dashboard"`},
		{"/items/", http.StatusNotFound, `<main class="app-main"></main>`, `data-view=`},
		{"/does/not/exist", http.StatusNotFound, `<main class="app-main"></main>`, `data-view=`},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			rec := get(t, router, http.MethodGet, tt.path)

			assert.Equal(t, tt.wantStatus, rec.Code)
			body := rec.Body.String()
			assert.Contains(t, body, tt.want)
			assert.NotContains(t, body, tt.notWant)

			assert.Equal(t, 1, strings.Count(body, "<header"))
			assert.Equal(t, 1, strings.Count(body, "<footer"))

			header := body[strings.Index(body, "<header"):strings.Index(body, "</header>")]
			links := navLinkRe.FindAllStringSubmatch(header, -1)
			require.Len(t, links, 2)
			assert.Equal(t, []string{"/", "Dashboard"}, links[0][1:])
			assert.Equal(t, []string{"/items", "Items"}, links[1][1:])

			assert.NotEmpty(t, rec.Header().Get(middleware.RequestIDHeader))
		})
	}
}

func TestRouter_Head(t *testing.T) {
	router := testRouter(t, nil)

	rec := get(t, router, http.MethodHead, "/")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Empty(t, rec.Body.String())
}

func TestRouter_MethodNotAllowed(t *testing.T) {
	router := testRouter(t, nil)

	rec := get(t, router, http.MethodPost, "/items")
	assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
}

func TestRouter_Health(t *testing.T) {
	router := testRouter(t, nil)

	rec := get(t, router, http.MethodGet, "/health")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"healthy"}`, rec.Body.String())
}

func TestRouter_HealthHead(t *testing.T) {
	router := testRouter(t, nil)

	rec := get(t, router, http.MethodHead, "/health")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
	assert.Empty(t, rec.Body.String())

	rec = get(t, router, http.MethodPost, "/health")
	assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
}

func TestRouter_Metrics(t *testing.T) {
	router := testRouter(t, metrics.New())

	get(t, router, http.MethodGet, "/items")
	get(t, router, http.MethodGet, "/nowhere")

	rec := get(t, router, http.MethodGet, "/metrics")
	require.Equal(t, http.StatusOK, rec.Code)

	body := rec.Body.String()
	assert.Contains(t, body, `mongoflow_http_requests_total{method="GET",route="/items",status="200"} 1`)
	assert.Contains(t, body, `mongoflow_http_requests_total{method="GET",route="unmatched",status="404"} 1`)
	assert.Contains(t, body, `mongoflow_shell_renders_total{view="items"} 1`)
	assert.Contains(t, body, `mongoflow_shell_renders_total{view="unmatched"} 1`)
}

func TestRouter_MetricsDisabled(t *testing.T) {
	router := testRouter(t, nil)

	// Without metrics /metrics is just another unmatched shell path.
	rec := get(t, router, http.MethodGet, "/metrics")
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, rec.Body.String(), `<main class="app-main"></main>`)
}

func TestRouter_NavigationSequence(t *testing.T) {
	router := testRouter(t, nil)

	for _, path := range []string{"/", "/items", "/", "/items", "/gone", "/"} {
		body := get(t, router, http.MethodGet, path).Body.String()
		assert.Equal(t, 1, strings.Count(body, "<header"), path)
		assert.Equal(t, 1, strings.Count(body, "<footer"), path)
	}
}
