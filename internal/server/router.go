package server

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"

	"github.com/mongoflow/web/internal/handlers"
	"github.com/mongoflow/web/internal/metrics"
	"github.com/mongoflow/web/internal/middleware"
	"github.com/mongoflow/web/internal/shell"
)

// RouterOptions configures the HTTP router.
type RouterOptions struct {
	Logger *slog.Logger
	// Metrics enables request metrics and GET /metrics when set.
	Metrics *metrics.Metrics
}

// NewRouter mounts every shell route plus the operational endpoints.
// Paths chi cannot match fall through to the shell, which renders the
// layout with no view.
func NewRouter(h *handlers.Handlers, sh *shell.Shell, opts RouterOptions) http.Handler {
	r := chi.NewRouter()

	// Global middleware
	r.Use(middleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(middleware.Logger(opts.Logger))
	r.Use(middleware.Recovery(opts.Logger))
	if opts.Metrics != nil {
		r.Use(middleware.Metrics(opts.Metrics))
	}

	// Operational
	r.Get("/health", h.Health)
	r.Head("/health", h.Health)
	if opts.Metrics != nil {
		r.Method(http.MethodGet, "/metrics", opts.Metrics.Handler())
	}

	// Shell routes
	for _, route := range sh.Routes() {
		r.Get(route.Pattern, h.Page)
		r.Head(route.Pattern, h.Page)
	}
	r.NotFound(h.Page)

	return r
}
