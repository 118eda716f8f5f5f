package handlers

import (
	"log/slog"

	"github.com/mongoflow/web/internal/metrics"
	"github.com/mongoflow/web/internal/shell"
)

// Handlers contains all HTTP handler dependencies.
type Handlers struct {
	shell   *shell.Shell
	metrics *metrics.Metrics
	logger  *slog.Logger
}

// New creates a new Handlers instance with all dependencies.
// metrics may be nil when metrics are disabled.
func New(
	sh *shell.Shell,
	m *metrics.Metrics,
	logger *slog.Logger,
) *Handlers {
	return &Handlers{
		shell:   sh,
		metrics: m,
		logger:  logger,
	}
}
