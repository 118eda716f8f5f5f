package handlers

import (
	"bytes"
	"net/http"

	"github.com/mongoflow/web/internal/middleware"
)

// Page renders the shell for the request path. Paths outside the route
// table get the layout with an empty content region and a 404 status.
func (h *Handlers) Page(w http.ResponseWriter, r *http.Request) {
	page := h.shell.Resolve(r.URL.Path)

	// Render fully before writing so a failure can still become a 500.
	var buf bytes.Buffer
	if err := page.Component().Render(r.Context(), &buf); err != nil {
		h.logger.Error("failed to render page",
			"path", r.URL.Path,
			"error", err,
			"request_id", middleware.GetRequestID(r.Context()),
		)
		http.Error(w, "Failed to render page", http.StatusInternalServerError)
		return
	}

	if h.metrics != nil {
		h.metrics.ObserveRender(page.Route.Name)
	}

	status := http.StatusOK
	if !page.Matched {
		status = http.StatusNotFound
		h.logger.Debug("no route for path", "path", r.URL.Path)
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	if r.Method != http.MethodHead {
		w.Write(buf.Bytes())
	}
}
